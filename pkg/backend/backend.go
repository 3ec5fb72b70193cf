// Package backend identifies the host package manager spiv dispatches to.
package backend

import (
	"fmt"
	"strings"
)

// Tag identifies a concrete package-manager backend.
type Tag int

const (
	// None means no supported package manager was found.
	None Tag = iota
	// WindowsNative is winget, presumed present on Windows.
	WindowsNative
	// Apt is the Debian/Ubuntu package manager.
	Apt
	// Dnf is the Fedora/RHEL package manager.
	Dnf
	// Pacman is the Arch Linux package manager.
	Pacman
)

// probeOrder is the fixed priority used on Unix-like hosts.
var probeOrder = []Tag{Apt, Dnf, Pacman}

var tools = map[Tag]string{
	WindowsNative: "winget",
	Apt:           "apt",
	Dnf:           "dnf",
	Pacman:        "pacman",
}

var displayNames = map[Tag]string{
	None:          "none",
	WindowsNative: "winget (Windows)",
	Apt:           "APT (Debian/Ubuntu)",
	Dnf:           "DNF (Fedora/RHEL)",
	Pacman:        "pacman (Arch Linux)",
}

// Tool returns the executable name for the backend, or "" for None.
func (t Tag) Tool() string {
	return tools[t]
}

// String returns a human-readable backend name.
func (t Tag) String() string {
	if name, ok := displayNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Tag(%d)", int(t))
}

// IsLinux reports whether the backend is one of the Linux package managers.
func (t Tag) IsLinux() bool {
	return t == Apt || t == Dnf || t == Pacman
}

// ParseTag resolves a tool name such as "apt" or "winget" to its Tag.
//
// Parameters:
//   - name: Tool name, case-insensitive
//
// Returns:
//   - Tag: The matching backend
//   - error: When name is not a supported tool
func ParseTag(name string) (Tag, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for tag, tool := range tools {
		if tool == want {
			return tag, nil
		}
	}
	return None, fmt.Errorf("unsupported backend %q (want one of: winget, apt, dnf, pacman)", name)
}

// resolutionHints maps backends to installation instructions.
var resolutionHints = map[Tag]string{
	WindowsNative: "Install App Installer from the Microsoft Store: https://aka.ms/getwinget",
	Apt:           "apt ships with Debian and Ubuntu based distributions",
	Dnf:           "dnf ships with Fedora, RHEL 8+ and derivatives",
	Pacman:        "pacman ships with Arch Linux and derivatives",
}

// ResolutionHint returns installation guidance for a backend, or "".
func ResolutionHint(t Tag) string {
	return resolutionHints[t]
}
