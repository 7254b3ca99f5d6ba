package memo

// Memo gives an embedding type its own Memory plus the Memorex handle the
// memoized accessors resolve it through:
//
//	type Token struct {
//	    memo.Memo
//	    ...
//	}
//
//	token.Memorex().Delete("ID")
//
// Embed it by value; the cache then lives and dies with the instance.
type Memo struct {
	memory Memory
}

// Memorex returns the instance's cache handle. The same handle is returned
// on every call.
func (m *Memo) Memorex() *Memory {
	return &m.memory
}
