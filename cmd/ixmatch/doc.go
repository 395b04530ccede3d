// Package main hosts the ixmatch CLI entrypoint and command graph.
//
// The Cobra-based command tree resolves the two channel directories, wires
// configuration and structured logging, and surfaces the matching workflow
// through the match, revert, and config commands. Heavy lifting lives in the
// internal packages; this package stays declarative.
package main
