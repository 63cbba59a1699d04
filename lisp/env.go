package lisp

import (
	"io"
	"os"
	"sort"
	"sync/atomic"
)

var scopeCount uint64

func getScopeID() uint {
	return uint(atomic.AddUint64(&scopeCount, 1))
}

// Runtime holds the host collaborators shared by a root Scope and every
// snapshot taken from it.
type Runtime struct {
	Reader  Reader
	Sources SourceProvider
	Stdout  io.Writer
	Stderr  io.Writer
	Stack   *CallStack
}

// Scope maps identifiers to values.  A Scope is never shared for concurrent
// mutation: procedure application and let evaluation operate on private
// snapshots.
type Scope struct {
	ID       uint
	Bindings map[string]*Expr
	Runtime  *Runtime
}

// NewScope returns a new, empty Scope with a default Runtime.
func NewScope() *Scope {
	return &Scope{
		ID:       getScopeID(),
		Bindings: make(map[string]*Expr),
		Runtime: &Runtime{
			Stdout: os.Stdout,
			Stderr: os.Stderr,
			Stack:  &CallStack{},
		},
	}
}

// Snapshot returns a copy of s.  Bindings later added to either scope are not
// visible in the other.  The Runtime is shared.
func (s *Scope) Snapshot() *Scope {
	cp := &Scope{
		ID:       getScopeID(),
		Bindings: make(map[string]*Expr, len(s.Bindings)),
		Runtime:  s.Runtime,
	}
	for k, v := range s.Bindings {
		cp.Bindings[k] = v
	}
	return cp
}

// Lookup returns the value bound to name.
func (s *Scope) Lookup(name string) (*Expr, error) {
	v, ok := s.Bindings[name]
	if !ok {
		return nil, Errorf(UnboundIdentifier, "unbound identifier: %s", name)
	}
	return v, nil
}

// Bind binds name to v in s, replacing any existing binding.
func (s *Scope) Bind(name string, v *Expr) {
	if v == nil {
		panic("nil value")
	}
	s.Bindings[name] = v
}

// Len returns the number of bindings in s.
func (s *Scope) Len() int {
	return len(s.Bindings)
}

// Names returns the bound identifiers in sorted order.
func (s *Scope) Names() []string {
	names := make([]string, 0, len(s.Bindings))
	for k := range s.Bindings {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// RegisterBuiltin binds name to the native procedure fn.  Hosts register
// their procedures before evaluating any source which references them.
func (s *Scope) RegisterBuiltin(name string, fn Builtin) {
	s.Bind(name, Fun(name, fn))
}

// AddBuiltins binds the given funs to their names in s.  When called with no
// arguments AddBuiltins adds the DefaultBuiltins to s.
func (s *Scope) AddBuiltins(funs ...BuiltinDef) {
	if len(funs) == 0 {
		funs = DefaultBuiltins()
	}
	for _, f := range funs {
		s.RegisterBuiltin(f.Name(), f.Eval)
	}
}
