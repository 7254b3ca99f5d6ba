package memo_test

import (
	"errors"
	"testing"

	"github.com/rzane/memox/memo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAs(t *testing.T) {
	var m memo.Memory
	m.Write("size", 42)

	v, ok := memo.GetAs[int](&m, "size")
	assert.True(t, ok)
	assert.Equal(t, 42, v)

	_, ok = memo.GetAs[string](&m, "size")
	assert.False(t, ok) // wrong type

	_, ok = memo.GetAs[int](&m, "missing")
	assert.False(t, ok)
}

func TestFetchAsComputesOnce(t *testing.T) {
	var m memo.Memory
	count := 0
	compute := func() (string, error) {
		count++
		return "hello", nil
	}

	v, err := memo.FetchAs(&m, "greeting", compute)
	require.NoError(t, err)
	assert.Equal(t, "hello", v)

	_, err = memo.FetchAs(&m, "greeting", compute)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestGetAsCachedNil(t *testing.T) {
	var m memo.Memory
	m.Write("verdict", nil)

	// A cached nil carries no type, so the typed view reports false; Get
	// still tells it apart from an absent entry.
	_, ok := memo.GetAs[error](&m, "verdict")
	assert.False(t, ok)

	v, cached := m.Get("verdict")
	assert.Nil(t, v)
	assert.True(t, cached)
}

func TestFetchAsServesCachedNilInterface(t *testing.T) {
	var m memo.Memory
	count := 0
	compute := func() (error, error) {
		count++
		return nil, nil
	}

	v, err := memo.FetchAs(&m, "verdict", compute)
	require.NoError(t, err)
	assert.Nil(t, v)
	assert.True(t, m.Contains("verdict"))

	v, err = memo.FetchAs(&m, "verdict", compute)
	require.NoError(t, err)
	assert.Nil(t, v)
	assert.Equal(t, 1, count) // the cached nil is a hit, not a miss
}

func TestFetchAsErrorNotCached(t *testing.T) {
	var m memo.Memory
	boom := errors.New("boom")

	_, err := memo.FetchAs(&m, "size", func() (int, error) {
		return 0, boom
	})
	assert.ErrorIs(t, err, boom)
	assert.False(t, m.Contains("size"))
}

func TestFetchAsReplacesForeignValue(t *testing.T) {
	var m memo.Memory
	m.Write("size", "not an int")

	v, err := memo.FetchAs(&m, "size", func() (int, error) {
		return 7, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	cached, _ := m.Get("size")
	assert.Equal(t, 7, cached)
}
