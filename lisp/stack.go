package lisp

import (
	"fmt"
	"io"

	"github.com/Graphics-Interpreter/GI/parser/token"
)

// CallStack is a procedure call stack.  It is shared by a root Scope and all
// of its snapshots and is only used for diagnostics.
type CallStack struct {
	Frames []CallFrame
}

// CallFrame is one frame in the CallStack
type CallFrame struct {
	Name   string
	Source *token.Location
}

// Copy creates a copy of the current stack so that it can be attached to an
// Error.
func (s *CallStack) Copy() *CallStack {
	frames := make([]CallFrame, len(s.Frames))
	copy(frames, s.Frames)
	return &CallStack{frames}
}

// Depth returns the number of frames on the stack.
func (s *CallStack) Depth() int {
	if s == nil {
		return 0
	}
	return len(s.Frames)
}

// Push pushes a new stack frame for the named procedure onto s.
func (s *CallStack) Push(name string, loc *token.Location) {
	s.Frames = append(s.Frames, CallFrame{Name: name, Source: loc})
}

// Pop removes the top CallFrame from the stack and returns it.
func (s *CallStack) Pop() CallFrame {
	if len(s.Frames) < 1 {
		panic("pop called on an empty stack")
	}
	f := s.Frames[len(s.Frames)-1]
	s.Frames[len(s.Frames)-1] = CallFrame{}
	s.Frames = s.Frames[:len(s.Frames)-1]
	return f
}

// DebugPrint prints s
func (s *CallStack) DebugPrint(w io.Writer) (int, error) {
	n, err := fmt.Fprintf(w, "Stack Trace [%d frames -- entrypoint last]:\n", len(s.Frames))
	if err != nil {
		return n, err
	}
	indent := "  "
	for i := len(s.Frames) - 1; i >= 0; i-- {
		f := s.Frames[i]
		var _n int
		if f.Source != nil {
			_n, err = fmt.Fprintf(w, "%sheight %d: %s: %s\n", indent, i, f.Source, f.Name)
		} else {
			_n, err = fmt.Fprintf(w, "%sheight %d: %s\n", indent, i, f.Name)
		}
		n += _n
		if err != nil {
			return n, err
		}
	}
	return n, nil
}
