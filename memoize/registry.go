package memoize

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
	"sync"

	"github.com/rzane/memox/memo"
)

// ErrDuplicateMemoization is returned when an operation is registered twice
// on the same type. The first registration stays in effect.
var ErrDuplicateMemoization = fmt.Errorf("operation already memoized")

// Operation is the registry's record of one memoized operation, captured at
// registration time.
type Operation struct {
	Op         memo.Op
	Visibility Visibility
	Doc        string
}

// Each type gets its own operation registry, created on the first
// memoization request and kept for the life of the process.
var (
	registryMu sync.RWMutex
	registries = make(map[reflect.Type]map[memo.Op]Operation)
)

func register(t reflect.Type, entry Operation) error {
	registryMu.Lock()
	defer registryMu.Unlock()

	ops, ok := registries[t]
	if !ok {
		ops = make(map[memo.Op]Operation)
		registries[t] = ops
	}
	if _, exists := ops[entry.Op]; exists {
		return fmt.Errorf("%w: %s on %s", ErrDuplicateMemoization, entry.Op, t)
	}
	ops[entry.Op] = entry
	return nil
}

// Registered reports whether op is already memoized on T.
func Registered[T Memoizer](op memo.Op) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()

	_, ok := registries[reflect.TypeOf((*T)(nil)).Elem()][op]
	return ok
}

// Operations returns the operations memoized on T, sorted by name.
func Operations[T Memoizer]() []Operation {
	registryMu.RLock()
	defer registryMu.RUnlock()

	ops := registries[reflect.TypeOf((*T)(nil)).Elem()]
	if len(ops) == 0 {
		return nil
	}
	out := make([]Operation, 0, len(ops))
	for _, entry := range ops {
		out = append(out, entry)
	}
	slices.SortFunc(out, func(a, b Operation) int {
		return cmp.Compare(a.Op, b.Op)
	})
	return out
}
