// Package methodset answers one question at registration time: does this
// identifier name an argument-less member of this type?
package methodset

import "reflect"

// Method describes a member found on a type. NumArgs excludes the receiver.
type Method struct {
	Name       string
	NumArgs    int
	NumResults int
}

// Accessor reports whether the member has the memoizable shape:
// no arguments and at least one result.
func (m Method) Accessor() bool {
	return m.NumArgs == 0 && m.NumResults > 0
}

// Lookup finds the method named name on t. Reflection exposes exported
// methods only, so unexported members are never found here.
func Lookup(t reflect.Type, name string) (Method, bool) {
	m, ok := t.MethodByName(name)
	if !ok {
		return Method{}, false
	}
	numArgs := m.Type.NumIn()
	if t.Kind() != reflect.Interface {
		// The receiver occupies In(0) on concrete types.
		numArgs--
	}
	return Method{
		Name:       m.Name,
		NumArgs:    numArgs,
		NumResults: m.Type.NumOut(),
	}, true
}
