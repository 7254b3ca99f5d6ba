// Package memoize turns argument-less accessors into memoized ones.
//
// A type opts in by embedding memo.Memo. Wrapping then happens once, at
// package level, and the accessor method delegates to the wrapper:
//
//	type Token struct {
//	    memo.Memo
//	}
//
//	var tokenID = memoize.MustWrap[*Token]("ID", func(*Token) (string, error) {
//	    return uuid.NewString(), nil
//	})
//
//	func (t *Token) ID() (string, error) { return tokenID(t) }
//
// The computation runs at most once per instance; the result lands in the
// instance's own cache, which the Memorex handle exposes for inspection and
// clearing. Computation errors propagate to the caller and cache nothing,
// so the next call tries again.
package memoize

import (
	"fmt"
	"go/token"
	"reflect"
	"time"

	"github.com/rzane/memox/internal/methodset"
	"github.com/rzane/memox/memo"
)

// ErrInvalidOperation is returned when a registration names an operation
// that cannot be memoized: the name is not a valid identifier, the type has
// no such method, the method takes arguments or returns nothing, or the
// computation is nil.
var ErrInvalidOperation = fmt.Errorf("invalid memoization")

// Memoizer is satisfied by a pointer to any type that embeds memo.Memo.
// Pointers are the point: the accessor fills the cache inside the instance
// it is called on.
type Memoizer interface {
	Memorex() *memo.Memory
}

// Option configures one registration.
type Option func(*settings)

type settings struct {
	observer Observer
	doc      string
}

// WithObserver attaches an observer to the wrapped accessor. See Observer.
func WithObserver(obs Observer) Option {
	return func(s *settings) { s.observer = obs }
}

// WithDoc attaches a short description to the registry entry reported by
// Operations.
func WithDoc(doc string) Option {
	return func(s *settings) { s.doc = doc }
}

// Wrap registers op as a memoized operation of T and returns the memoized
// accessor. The first call per instance runs compute and caches its result
// in the instance's Memory under op; later calls return the cached value,
// nil results included.
//
// The operation name must be a valid Go identifier and unique on T
// (ErrDuplicateMemoization otherwise). An exported name must correspond to
// a method of T that takes no arguments and returns at least one value;
// reflection cannot see unexported methods from here, so unexported names
// skip that structural check. Validation happens once, at registration,
// never on the call path.
func Wrap[T Memoizer, R any](op memo.Op, compute func(T) (R, error), opts ...Option) (func(T) (R, error), error) {
	if compute == nil {
		return nil, fmt.Errorf("%w: nil computation for %q", ErrInvalidOperation, op)
	}
	t := reflect.TypeOf((*T)(nil)).Elem()
	if err := validate(t, op); err != nil {
		return nil, err
	}

	var s settings
	for _, opt := range opts {
		opt(&s)
	}
	entry := Operation{Op: op, Visibility: VisibilityOf(op), Doc: s.doc}
	if err := register(t, entry); err != nil {
		return nil, err
	}

	return func(recv T) (R, error) {
		mem := recv.Memorex()
		if raw, ok := mem.Get(op); ok {
			if s.observer != nil {
				s.observer.On(Hit{Op: op})
			}
			v, _ := raw.(R)
			return v, nil
		}

		started := time.Now()
		v, err := compute(recv)
		span := newTimeSpan(started, time.Now())
		if err != nil {
			if s.observer != nil {
				s.observer.On(Failed{Op: op, Span: span, Err: err})
			}
			var zero R
			return zero, err
		}
		mem.Write(op, v)
		if s.observer != nil {
			s.observer.On(Computed{Op: op, Span: span})
		}
		return v, nil
	}, nil
}

// MustWrap is Wrap that panics on a failed registration. Use it for
// package-level wiring, where a failure is a programming error.
func MustWrap[T Memoizer, R any](op memo.Op, compute func(T) (R, error), opts ...Option) func(T) (R, error) {
	fn, err := Wrap(op, compute, opts...)
	if err != nil {
		panic(err)
	}
	return fn
}

// WrapValue is Wrap for computations that cannot fail.
func WrapValue[T Memoizer, R any](op memo.Op, compute func(T) R, opts ...Option) (func(T) R, error) {
	if compute == nil {
		return nil, fmt.Errorf("%w: nil computation for %q", ErrInvalidOperation, op)
	}
	wrapped, err := Wrap(op, func(recv T) (R, error) {
		return compute(recv), nil
	}, opts...)
	if err != nil {
		return nil, err
	}
	return func(recv T) R {
		v, _ := wrapped(recv)
		return v
	}, nil
}

// MustWrapValue is WrapValue that panics on a failed registration.
func MustWrapValue[T Memoizer, R any](op memo.Op, compute func(T) R, opts ...Option) func(T) R {
	fn, err := WrapValue(op, compute, opts...)
	if err != nil {
		panic(err)
	}
	return fn
}

func validate(t reflect.Type, op memo.Op) error {
	if !token.IsIdentifier(string(op)) {
		return fmt.Errorf("%w: %q is not a valid identifier", ErrInvalidOperation, op)
	}
	if VisibilityOf(op) != Exported {
		return nil
	}
	m, ok := methodset.Lookup(t, string(op))
	if !ok {
		return fmt.Errorf("%w: %s has no method %q", ErrInvalidOperation, t, op)
	}
	if !m.Accessor() {
		return fmt.Errorf("%w: %s.%s must take no arguments and return a value", ErrInvalidOperation, t, op)
	}
	return nil
}
