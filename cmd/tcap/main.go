// tcap renders terminfo capabilities, in the manner of tput.
//
// Usage:
//
//	tcap [-T term] [-config file] [-snapshot file] capname [args...]
//	tcap [-T term] -L
//	tcap [-T term] -disasm capname
//	tcap [-T term] -explain capname [args...]
//
// A string capability is rendered to stdout. Arguments that parse as
// integers are passed as Integers, 'c' as a Character and anything else as
// Text. A numeric capability is printed in decimal; a boolean capability
// prints nothing and sets the exit status. With -explain the rendered output
// is printed one control sequence per line instead.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"

	"github.com/hnimtadd/tcap"
	"github.com/hnimtadd/tcap/config"
	"github.com/hnimtadd/tcap/logger"
	"github.com/hnimtadd/tcap/terminfo/ansi"
	"github.com/hnimtadd/tcap/terminfo/caps"
	"github.com/hnimtadd/tcap/terminfo/database"
)

// exit statuses
const (
	exitOK      = 0
	exitFalse   = 1 // boolean capability not set
	exitUsage   = 2
	exitMissing = 3 // terminal or capability not found
	exitError   = 4
)

const usage = "usage: tcap [-T term] [-config file] [-snapshot file] [-L] [-disasm] [-explain] capname [args...]\n"

type options struct {
	term     string
	config   string
	snapshot string
	list     bool
	disasm   bool
	explain  bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var opts options
	fs := flag.NewFlagSet("tcap", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}
	fs.StringVar(&opts.term, "T", "", "terminal type (default: $TERM, then the configured default)")
	fs.StringVar(&opts.config, "config", "", "configuration file (default: tcap.yaml or tcap.toml found from the working directory up)")
	fs.StringVar(&opts.snapshot, "snapshot", "", "read the description from this CBOR snapshot, writing it first if missing")
	fs.BoolVar(&opts.list, "L", false, "list the terminal's capabilities")
	fs.BoolVar(&opts.disasm, "disasm", false, "print the compiled program of a string capability instead of rendering it")
	fs.BoolVar(&opts.explain, "explain", false, "split the rendered output into text and control sequences, one per line")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if !opts.list && fs.NArg() < 1 {
		fs.Usage()
		return exitUsage
	}

	cfg, err := loadConfig(opts.config)
	if err != nil {
		fmt.Fprintf(stderr, "tcap: %v\n", err)
		return exitUsage
	}
	log, err := cfg.Logger(stderr)
	if err != nil {
		fmt.Fprintf(stderr, "tcap: %v\n", err)
		return exitUsage
	}

	name := opts.term
	if name == "" {
		name = cfg.TermName()
	}
	desc, err := loadDescription(name, opts.snapshot, cfg, log)
	if err != nil {
		fmt.Fprintf(stderr, "tcap: %v\n", err)
		if errors.Is(err, database.ErrNotFound) {
			return exitMissing
		}
		return exitError
	}
	term, err := tcap.New(desc, tcap.Options{Encoding: cfg.Encoding, Logger: log})
	if err != nil {
		fmt.Fprintf(stderr, "tcap: %v\n", err)
		return exitUsage
	}

	if opts.list {
		list(stdout, term, isTerminal(stdout))
		return exitOK
	}

	capname := fs.Arg(0)
	if opts.disasm {
		return disasm(stdout, stderr, term, capname)
	}
	if opts.explain {
		return explain(stdout, stderr, term, capname, parseArgs(fs.Args()[1:]))
	}
	return query(stdout, stderr, term, capname, parseArgs(fs.Args()[1:]))
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	found, err := config.Find(".")
	if err != nil {
		return nil, err
	}
	if found == "" {
		return config.Default(), nil
	}
	return config.Load(found)
}

// loadDescription reads the terminal from the snapshot when one exists for
// the same terminal name, and otherwise from the terminfo directories,
// refreshing the snapshot afterwards.
func loadDescription(name, snapshot string, cfg *config.Config, log logger.Logger) (*database.Terminal, error) {
	if snapshot != "" {
		if data, err := os.ReadFile(snapshot); err == nil {
			desc, err := database.UnmarshalSnapshot(data)
			switch {
			case err != nil:
				log.Warn("ignoring unreadable snapshot", "path", snapshot, "error", err)
			case desc.Name != name:
				log.Info("snapshot is for another terminal", "path", snapshot, "snapshot", desc.Name, "terminal", name)
			default:
				log.Debug("loaded snapshot", "path", snapshot, "terminal", name)
				return desc, nil
			}
		}
	}

	desc, err := database.Load(name, database.LoadOptions{Dirs: cfg.Dirs(), Logger: log})
	if err != nil {
		return nil, err
	}
	if snapshot != "" {
		data, err := database.MarshalSnapshot(desc)
		if err != nil {
			return nil, err
		}
		if err := os.WriteFile(snapshot, data, 0o644); err != nil {
			return nil, fmt.Errorf("writing snapshot: %w", err)
		}
		log.Debug("wrote snapshot", "path", snapshot, "terminal", name)
	}
	return desc, nil
}

// parseArgs maps command-line words to render arguments.
func parseArgs(words []string) []any {
	args := make([]any, len(words))
	for i, w := range words {
		if n, err := strconv.Atoi(w); err == nil {
			args[i] = n
			continue
		}
		if len(w) == 3 && w[0] == '\'' && w[2] == '\'' {
			args[i] = w[1]
			continue
		}
		args[i] = w
	}
	return args
}

// kindOf classifies capname. Extended names are classified by the map that
// holds them; an extended boolean that is not set still counts as a bool.
func kindOf(term *tcap.Terminal, capname string) caps.Kind {
	if _, kind, ok := caps.Lookup(capname); ok {
		return kind
	}
	desc := term.Description()
	if _, ok := desc.Strings[capname]; ok {
		return caps.KindString
	}
	if _, ok := desc.Numbers[capname]; ok {
		return caps.KindNumber
	}
	if slices.Contains(desc.Extended, capname) {
		return caps.KindBool
	}
	return caps.KindString
}

func query(stdout, stderr io.Writer, term *tcap.Terminal, capname string, args []any) int {
	switch kindOf(term, capname) {
	case caps.KindBool:
		if term.Bool(capname) {
			return exitOK
		}
		return exitFalse
	case caps.KindNumber:
		n, ok := term.Number(capname)
		if !ok {
			fmt.Fprintf(stderr, "tcap: %s: %s not present\n", term.Name(), capname)
			return exitMissing
		}
		fmt.Fprintln(stdout, n)
		return exitOK
	}

	if err := term.Render(stdout, capname, args...); err != nil {
		return fail(stderr, term, err)
	}
	return exitOK
}

// fail reports a capability error and returns its exit status.
func fail(stderr io.Writer, term *tcap.Terminal, err error) int {
	fmt.Fprintf(stderr, "tcap: %s: %v\n", term.Name(), err)
	if errors.Is(err, tcap.ErrNoCapability) {
		return exitMissing
	}
	return exitError
}

func disasm(stdout, stderr io.Writer, term *tcap.Terminal, capname string) int {
	c, err := term.Capability(capname)
	if err != nil {
		return fail(stderr, term, err)
	}
	fmt.Fprintf(stdout, "%s=%s max-arg=%d\n", c.Name, ansi.Quote(c.Program.Format), c.Program.MaxArg)
	fmt.Fprint(stdout, c.Program.String())
	return exitOK
}
