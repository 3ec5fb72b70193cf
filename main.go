// Package main is the entry point for the spiv CLI application.
//
// spiv gives one flag vocabulary for searching, installing and upgrading
// packages with whichever native package manager the host provides.
package main

import "github.com/ajxudir/spiv/cmd"

// main runs the spiv CLI; all parsing and dispatch live in the cmd package.
func main() {
	cmd.Execute()
}
