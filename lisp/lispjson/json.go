// Package lispjson encodes language values as JSON.
package lispjson

import (
	"encoding/json"

	"github.com/Graphics-Interpreter/GI/lisp"
)

// DefaultSerializer is the Serializer used by the exported function Dump.
var DefaultSerializer = &Serializer{}

// Dump serializes the structure of v as a JSON formatted byte slice.
func Dump(v *lisp.Expr) ([]byte, error) {
	return DefaultSerializer.Dump(v)
}

// Serializer defines JSON serialization rules for values.
//
// Proper lists are encoded as arrays and other pairs as objects with the
// keys "first" and "second".  Procedures cannot be encoded.
type Serializer struct {
}

// Dump serializes v.
func (s *Serializer) Dump(v *lisp.Expr) ([]byte, error) {
	x, err := s.dumpInterface(v)
	if err != nil {
		return nil, err
	}
	return json.Marshal(x)
}

func (s *Serializer) dumpInterface(v *lisp.Expr) (interface{}, error) {
	switch v.Type {
	case lisp.ENumber:
		return v.Num, nil
	case lisp.ETrue:
		return true, nil
	case lisp.EFalse:
		return false, nil
	case lisp.EVoid:
		return nil, nil
	case lisp.ENil, lisp.EPair:
		if cells, ok := v.Slice(); ok {
			arr := make([]interface{}, len(cells))
			for i := range cells {
				var err error
				arr[i], err = s.dumpInterface(cells[i])
				if err != nil {
					return nil, err
				}
			}
			return arr, nil
		}
		first, err := s.dumpInterface(v.Car())
		if err != nil {
			return nil, err
		}
		second, err := s.dumpInterface(v.Cdr())
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"first": first, "second": second}, nil
	default:
		return nil, lisp.Errorf(lisp.TypeError, "unable to dump %v as json", v.Type)
	}
}
