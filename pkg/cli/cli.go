package cli

import (
	"io"
	"log/slog"

	"github.com/khalid-nowaf/radixtree/pkg/radix"
)

const Description = "Load words into a radix tree and query it"

// Context carries the tree and the output sinks shared by every command.
type Context struct {
	tree   *radix.Tree
	out    io.Writer
	logger *slog.Logger
	stats  *Stats
}

// Stats counts what a command did, for the summary log line.
type Stats struct {
	Input   int // words loaded
	Removed int // words removed
	Queried int // lookups done
	Found   int // lookups that hit
	Output  int // records written
}

func NewContext(tree *radix.Tree, out io.Writer, logger *slog.Logger) *Context {
	return &Context{
		tree:   tree,
		out:    out,
		logger: logger,
		stats:  &Stats{},
	}
}

type Grammar struct {
	LogLevel string    `help:"Minimum level of diagnostics written to stderr" enum:"debug,info,warn,error" default:"info"`
	Check    CheckCmd  `cmd:"" help:"Load words from files and look up queries"`
	Script   ScriptCmd `cmd:"" help:"Run a YAML script of insert, remove and contains steps"`
}

var CLI Grammar

// NewLogger builds the text logger used for diagnostics, falling back to info
// on an unknown level.
func NewLogger(level string, w io.Writer) *slog.Logger {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		l = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l}))
}
