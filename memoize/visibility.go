package memoize

import (
	"unicode"
	"unicode/utf8"

	"github.com/rzane/memox/memo"
)

// Visibility records how an operation is exposed on its type. Go spells
// exposure in the identifier itself, so it is derived from the operation
// name once at registration and carried in the registry entry rather than
// re-examined on every call.
type Visibility string

const (
	// Exported operations start with an upper-case letter and belong to the
	// type's public API.
	Exported Visibility = "exported"

	// Unexported operations are internal to the defining package.
	Unexported Visibility = "unexported"
)

// VisibilityOf derives the visibility of op from its first rune.
func VisibilityOf(op memo.Op) Visibility {
	r, _ := utf8.DecodeRuneInString(string(op))
	if unicode.IsUpper(r) {
		return Exported
	}
	return Unexported
}
