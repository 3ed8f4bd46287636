package tcap

import (
	"sync"

	"github.com/hnimtadd/tcap/logger"
	"github.com/hnimtadd/tcap/terminfo/database"
	"github.com/hnimtadd/tcap/terminfo/param"
)

// registry shares compiled programs between terminals whose descriptions
// carry the same capability values, such as an entry loaded under two of
// its aliases. Programs are immutable, so sharing them is safe; execution
// contexts stay per Terminal.
type registry struct {
	mu   sync.Mutex
	sets map[uint64]*programs
}

var shared = &registry{sets: make(map[uint64]*programs)}

func (r *registry) lookup(desc *database.Terminal, log logger.Logger) *programs {
	fp, err := desc.Fingerprint()
	if err != nil {
		log.Warn("terminal not fingerprinted, programs not shared", "terminal", desc.Name, "error", err)
		return newPrograms()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.sets[fp]; ok {
		log.Debug("sharing compiled programs", "terminal", desc.Name, "fingerprint", fp)
		return p
	}
	p := newPrograms()
	r.sets[fp] = p
	return p
}

type compiled struct {
	prog *param.Program
	err  error
}

// programs caches compile results, failures included, by capability name.
type programs struct {
	mu    sync.Mutex
	cache map[string]compiled
}

func newPrograms() *programs {
	return &programs{cache: make(map[string]compiled)}
}

func (p *programs) compile(name, format string, log logger.Logger) (*param.Program, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if c, ok := p.cache[name]; ok {
		return c.prog, c.err
	}
	prog, err := param.Compile(format)
	if err != nil {
		log.Warn("capability does not compile", "capability", name, "error", err)
	}
	p.cache[name] = compiled{prog: prog, err: err}
	return prog, err
}

func (p *programs) size() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.cache)
}

func (r *registry) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sets)
}
