package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	pgn "github.com/PenguinF/sandra-three-sub010"
	"github.com/PenguinF/sandra-three-sub010/cst"
	"github.com/PenguinF/sandra-three-sub010/located"
	"github.com/PenguinF/sandra-three-sub010/parser"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

// main() runs pgnc, a small inspection tool for PGN files. Without -repl
// it parses every file given as an argument and prints the diagnostics,
// sorted by source position. With -repl it starts an interactive session
// for experimenting with PGN fragments.
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	tree := flag.Bool("tree", false, "Print the syntax tree of each file")
	repl := flag.Bool("repl", false, "Start an interactive session")
	flag.Parse()
	tracer().SetTraceLevel(traceLevel(*tlevel))
	//
	if *repl || flag.NArg() == 0 {
		pterm.Info.Println("Welcome to pgnc")
		tracer().Infof("Quit with :quit or <ctrl>D")
		intp, err := newIntp()
		if err != nil {
			tracer().Errorf(err.Error())
			os.Exit(3)
		}
		intp.REPL()
		return
	}
	failed := 0
	for _, name := range flag.Args() {
		if !processFile(name, *tree) {
			failed++
		}
	}
	if failed > 0 {
		os.Exit(1)
	}
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// processFile parses one PGN file and prints its diagnostics. It returns
// false if the file could not be read or had diagnostics.
func processFile(name string, showTree bool) bool {
	data, err := ioutil.ReadFile(name)
	if err != nil {
		pterm.Error.Println(err.Error())
		return false
	}
	root, errs := parser.Parse(string(data))
	pterm.Info.Printf("%s: %d diagnostic(s)\n", name, len(errs))
	printDiagnostics(errs)
	if showTree {
		printTree(root)
	}
	return len(errs) == 0
}

// printDiagnostics prints diagnostics ordered by their position in the
// source, not by discovery order: a scanner error deep inside a game may
// have been found long before a tag error near the top of the file.
func printDiagnostics(errs []pgn.Error) {
	for _, e := range sortBySpan(errs) {
		pterm.Error.Println(e.String())
	}
}

// indexedError keeps the discovery index as a tie breaker, so that
// duplicate diagnostics on the same span survive the ordered set.
type indexedError struct {
	index int
	err   pgn.Error
}

func compareIndexedErrors(a, b interface{}) int {
	ea, eb := a.(indexedError), b.(indexedError)
	if c := utils.UInt64Comparator(ea.err.Span.From(), eb.err.Span.From()); c != 0 {
		return c
	}
	return utils.IntComparator(ea.index, eb.index)
}

func sortBySpan(errs []pgn.Error) []pgn.Error {
	set := treeset.NewWith(compareIndexedErrors)
	for i, e := range errs {
		set.Add(indexedError{index: i, err: e})
	}
	sorted := make([]pgn.Error, 0, set.Size())
	it := set.Iterator()
	for it.Next() {
		sorted = append(sorted, it.Value().(indexedError).err)
	}
	return sorted
}

// printTree renders the syntax tree of a parsed buffer on the terminal.
func printTree(root *cst.Root) {
	ll := leveledNode(located.Wrap(root), pterm.LeveledList{}, 0)
	tracer().Debugf("|ll| = %d", len(ll))
	pterm.DefaultTree.WithRoot(pterm.NewTreeFromLeveledList(ll)).Render()
}

func leveledNode(node *located.Node, ll pterm.LeveledList, level int) pterm.LeveledList {
	ll = append(ll, pterm.LeveledListItem{
		Level: level,
		Text:  nodeLabel(node),
	})
	for i := 0; i < node.NumChildren(); i++ {
		ll = leveledNode(node.Child(i), ll, level+1)
	}
	return ll
}

func nodeLabel(node *located.Node) string {
	if t, ok := node.Content().(*cst.Terminal); ok {
		return fmt.Sprintf("%s %s %q", node.Kind(), node.Span(), t.Lexeme())
	}
	return fmt.Sprintf("%s %s", node.Kind(), node.Span())
}

// Intp is the state of an interactive session: the readline instance and
// the result of the last parse.
type Intp struct {
	repl *readline.Instance
	root *cst.Root
	errs []pgn.Error
}

func newIntp() (*Intp, error) {
	repl, err := readline.New("pgn> ")
	if err != nil {
		return nil, err
	}
	return &Intp{repl: repl}, nil
}

// REPL starts interactive mode. Lines starting with ':' are commands,
// everything else is parsed as PGN.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if strings.HasPrefix(line, ":") {
			if intp.command(line) {
				break
			}
			continue
		}
		intp.root, intp.errs = parser.Parse(line)
		pterm.Info.Printf("%d diagnostic(s)\n", len(intp.errs))
	}
	println("Good bye!")
}

// command executes a single REPL command and reports whether to quit.
func (intp *Intp) command(line string) bool {
	switch line {
	case ":quit", ":q":
		return true
	case ":tree", ":t":
		if intp.root == nil {
			pterm.Error.Println("nothing parsed yet")
			return false
		}
		printTree(intp.root)
	case ":errors", ":e":
		if intp.root == nil {
			pterm.Error.Println("nothing parsed yet")
			return false
		}
		printDiagnostics(intp.errs)
	case ":help", ":h":
		pterm.Info.Println(":tree print last syntax tree, :errors print last diagnostics, :quit leave")
	default:
		pterm.Error.Printf("unknown command %s, try :help\n", line)
	}
	return false
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}
