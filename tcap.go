// Package tcap renders terminal control sequences from terminfo
// descriptions.
//
// A Terminal wraps one decoded description. String capabilities are compiled
// on first use and rendered with typed arguments:
//
//	term, err := tcap.Load(tcap.Options{})
//	...
//	err = term.Render(os.Stdout, "cup", 4, 10)
//
// A Terminal owns a single execution context shared by all its
// capabilities, so static variables set by one capability are visible to
// the next. It is not safe for concurrent use; callers that render from
// several goroutines must serialize access.
package tcap

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/text/encoding"

	"github.com/hnimtadd/tcap/logger"
	"github.com/hnimtadd/tcap/terminfo/caps"
	"github.com/hnimtadd/tcap/terminfo/database"
	"github.com/hnimtadd/tcap/terminfo/param"
)

// ErrNoCapability reports a string capability the terminal does not have.
var ErrNoCapability = errors.New("capability not present")

// Options configures Load and New.
type Options struct {
	// Name is the terminal to load. Empty means $TERM, then "dumb".
	Name string
	// SearchPaths replaces the standard terminfo directories when set.
	SearchPaths []string
	// Encoding is the IANA name of the terminal's character set. Empty or
	// UTF-8 passes text arguments through unchanged.
	Encoding string
	Logger   logger.Logger
	// Isolated keeps the compiled programs private to the Terminal instead
	// of sharing them through the process-wide registry.
	Isolated bool
}

type Terminal struct {
	desc *database.Terminal
	enc  encoding.Encoding
	log  logger.Logger

	ctx      param.Context
	programs *programs
}

// Load locates and decodes the description named by opts and wraps it.
func Load(opts Options) (*Terminal, error) {
	desc, err := database.Load(opts.Name, database.LoadOptions{
		Dirs:   opts.SearchPaths,
		Logger: opts.Logger,
	})
	if err != nil {
		return nil, err
	}
	return New(desc, opts)
}

// New wraps an already decoded description. opts.Name and
// opts.SearchPaths are ignored.
//
// Unless opts.Isolated is set, compiled programs are kept in a process-wide
// registry keyed by the description's fingerprint. Entries are never
// evicted: the registry grows with every distinct description seen for the
// lifetime of the process. Programs that load many one-off descriptions
// should set Isolated.
func New(desc *database.Terminal, opts Options) (*Terminal, error) {
	enc, err := lookupEncoding(opts.Encoding)
	if err != nil {
		return nil, err
	}
	log := logger.OrNop(opts.Logger)
	progs := newPrograms()
	if !opts.Isolated {
		progs = shared.lookup(desc, log)
	}
	return &Terminal{
		desc:     desc,
		enc:      enc,
		log:      log,
		programs: progs,
	}, nil
}

// Name returns the name the terminal was loaded under.
func (t *Terminal) Name() string { return t.desc.Name }

// Names returns every name of the entry, the long description last.
func (t *Terminal) Names() []string { return t.desc.Names }

// Description returns the decoded description.
func (t *Terminal) Description() *database.Terminal { return t.desc }

// Bool reports a boolean capability. name may be a long name or a capname.
func (t *Terminal) Bool(name string) bool {
	return t.desc.Bools[caps.Canonical(name)]
}

// Number returns a numeric capability.
func (t *Terminal) Number(name string) (int, bool) {
	n, ok := t.desc.Numbers[caps.Canonical(name)]
	return n, ok
}

// StringCap returns the raw, uncompiled format of a string capability.
func (t *Terminal) StringCap(name string) (string, bool) {
	s, ok := t.desc.Strings[caps.Canonical(name)]
	return s, ok
}

// Capability returns the compiled string capability name. The format is
// compiled on first use; a compile error is remembered and returned again
// on later calls without recompiling.
func (t *Terminal) Capability(name string) (*Capability, error) {
	long := caps.Canonical(name)
	format, ok := t.desc.Strings[long]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoCapability, name)
	}
	prog, err := t.programs.compile(long, format, t.log)
	if err != nil {
		return nil, fmt.Errorf("capability %s: %w", long, err)
	}
	return &Capability{Name: long, Program: prog, term: t}, nil
}

// Render writes capability name rendered with args to w. See
// Capability.Render for the argument mapping.
func (t *Terminal) Render(w io.Writer, name string, args ...any) error {
	c, err := t.Capability(name)
	if err != nil {
		return err
	}
	return c.Render(w, args...)
}

// Sprint renders capability name and returns the result.
func (t *Terminal) Sprint(name string, args ...any) (string, error) {
	c, err := t.Capability(name)
	if err != nil {
		return "", err
	}
	return c.Sprint(args...)
}

// Static returns static variable i (0 for A) of the shared context.
func (t *Terminal) Static(i int) param.Value { return t.ctx.Static(i) }

// ResetStatics clears the static variables of the shared context.
func (t *Terminal) ResetStatics() { t.ctx.ResetStatics() }

// Capability is a compiled string capability bound to its terminal.
type Capability struct {
	Name    string
	Program *param.Program

	term *Terminal
}

// Render writes the capability rendered with args to w. Arguments map to
// values as follows: integer kinds other than uint8 become Integers (wrapped
// to 32 bits), uint8 becomes a Character, string and []byte become Text in
// the terminal's encoding, bool becomes 0 or 1, and a param.Value is used
// as is.
func (c *Capability) Render(w io.Writer, args ...any) error {
	values, err := c.term.values(args)
	if err != nil {
		return fmt.Errorf("capability %s: %w", c.Name, err)
	}
	if err := c.Program.Render(w, &c.term.ctx, values...); err != nil {
		return fmt.Errorf("capability %s: %w", c.Name, err)
	}
	return nil
}

// Sprint renders the capability and returns the result.
func (c *Capability) Sprint(args ...any) (string, error) {
	values, err := c.term.values(args)
	if err != nil {
		return "", fmt.Errorf("capability %s: %w", c.Name, err)
	}
	s, err := c.Program.Sprint(&c.term.ctx, values...)
	if err != nil {
		return "", fmt.Errorf("capability %s: %w", c.Name, err)
	}
	return s, nil
}
