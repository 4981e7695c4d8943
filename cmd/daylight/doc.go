// Package main hosts the daylight CLI entrypoint and command graph.
//
// Run without arguments, daylight prints a status-bar menu in the xbar line
// protocol, so the binary can be dropped into an xbar or SwiftBar plugin
// folder as-is. The Cobra command tree also offers a tabular or JSON stats
// view and configuration scaffolding. This package only resolves config,
// the date and the logger; the computations live in the internal packages.
package main
