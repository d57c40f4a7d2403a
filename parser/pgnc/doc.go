/*
Package pgnc/main provides a command line tool for inspecting PGN files.
In batch mode it parses the files given as arguments and prints their
diagnostics, sorted by source position. With -repl it starts an
interactive session where PGN fragments may be entered line by line and
the resulting syntax tree and diagnostics inspected with simple
commands.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pgn.parser'
func tracer() tracing.Trace {
	return tracing.Select("pgn.parser")
}
