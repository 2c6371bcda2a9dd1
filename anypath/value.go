// Package anypath exposes fpath to callers holding paths of mixed
// representations.
//
// A path argument is either text (string, or any fmt.Stringer) or raw bytes ([]byte).
// Every function returns its result in the flavor of its arguments:
// a []byte in gives a []byte out. Mixing flavors within one call is an error.
package anypath

import (
	"errors"
	"fmt"
)

var (
	// ErrType is returned for an argument that is neither text nor raw bytes.
	ErrType = errors.New("expected string, []byte or fmt.Stringer")
	// ErrMixedFlavor is returned when text and raw bytes are mixed in one call.
	// It satisfies errors.Is(err, ErrType).
	ErrMixedFlavor = fmt.Errorf("%w: can't mix strings and bytes in path components", ErrType)
)

type Flavor int

const (
	Text Flavor = iota
	RawBytes
)

func (f Flavor) String() string {
	switch f {
	case Text:
		return "text"
	case RawBytes:
		return "raw bytes"
	}
	return fmt.Sprintf("Flavor(%d)", int(f))
}

// Value is a path tagged with the flavor it came in.
type Value struct {
	Path   string
	Flavor Flavor
}

// FromAny converts v into Value.
func FromAny(v any) (Value, error) {
	switch x := v.(type) {
	case string:
		return Value{x, Text}, nil
	case []byte:
		return Value{string(x), RawBytes}, nil
	case fmt.Stringer:
		return Value{x.String(), Text}, nil
	}
	return Value{}, fmt.Errorf("%w, got %T", ErrType, v)
}

// fromAll converts vs, requiring all of them to share one flavor.
func fromAll(vs ...any) ([]Value, error) {
	out := make([]Value, len(vs))
	for i, v := range vs {
		val, err := FromAny(v)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		if i > 0 && val.Flavor != out[0].Flavor {
			return nil, fmt.Errorf("%w: argument %d is %s while argument 0 is %s", ErrMixedFlavor, i, val.Flavor, out[0].Flavor)
		}
		out[i] = val
	}
	return out, nil
}

// Any converts p back into the caller's representation: string for [Text], []byte for [RawBytes].
func (v Value) Any() any {
	return v.Flavor.wrap(v.Path)
}

func (f Flavor) wrap(p string) any {
	if f == RawBytes {
		return []byte(p)
	}
	return p
}
