package lisp

import "io"

// Config is a function that configures a root scope or its runtime.
type Config func(s *Scope) error

// InitializeScope binds the default builtins in s and then applies configs
// in order.  The first error returned by a Config is returned.
func InitializeScope(s *Scope, configs ...Config) error {
	s.AddBuiltins()
	for _, fn := range configs {
		err := fn(s)
		if err != nil {
			return err
		}
	}
	return nil
}

// WithReader returns a Config that makes scopes use r to parse source
// streams.  There is no default Reader for a scope.
func WithReader(r Reader) Config {
	return func(s *Scope) error {
		s.Runtime.Reader = r
		return nil
	}
}

// WithSources returns a Config that makes load search p in order.  Each
// call replaces any previously configured providers.
func WithSources(p ...SourceProvider) Config {
	return func(s *Scope) error {
		if len(p) == 1 {
			s.Runtime.Sources = p[0]
		} else {
			s.Runtime.Sources = ChainSources(p...)
		}
		return nil
	}
}

// WithStdout returns a Config that makes builtins write program output to w
// instead of the default, os.Stdout.
func WithStdout(w io.Writer) Config {
	return func(s *Scope) error {
		s.Runtime.Stdout = w
		return nil
	}
}

// WithStderr returns a Config that makes scopes write diagnostic output to w
// instead of the default, os.Stderr.
func WithStderr(w io.Writer) Config {
	return func(s *Scope) error {
		s.Runtime.Stderr = w
		return nil
	}
}

// WithBuiltins returns a Config that binds funs in addition to the default
// builtins.
func WithBuiltins(funs ...BuiltinDef) Config {
	return func(s *Scope) error {
		if len(funs) == 0 {
			return nil
		}
		s.AddBuiltins(funs...)
		return nil
	}
}
