package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemContextInsertAndGet(t *testing.T) {
	ctx := NewMemContext()
	_, ok := ctx.Get("counter")
	assert.False(t, ok)

	ctx.Insert("counter", I64Kind(1))
	v, ok := ctx.Get("counter")
	require.True(t, ok)
	assert.Equal(t, int64(1), v.I64)
	ctx.EndTick()

	v, ok = ctx.Get("counter")
	require.True(t, ok)
	assert.Equal(t, int64(1), v.I64)
}

func TestMemContextSetRequiresExistingKey(t *testing.T) {
	ctx := NewMemContext()
	err := ctx.Set("missing", I64Kind(5))
	assert.ErrorIs(t, err, ErrNoSuchKey)

	ctx.Insert("present", StringKind("a"))
	ctx.EndTick()
	require.NoError(t, ctx.Set("present", StringKind("b")))
	v, ok := ctx.Get("present")
	require.True(t, ok)
	assert.Equal(t, "b", v.Str)
}

func TestMemContextReadsOwnWritesWithinATick(t *testing.T) {
	ctx := NewMemContext()
	ctx.Insert("x", I64Kind(1))
	// still inside the same tick's write transaction
	v, ok := ctx.Get("x")
	require.True(t, ok)
	assert.Equal(t, int64(1), v.I64)

	ctx.Insert("x", I64Kind(2))
	v, ok = ctx.Get("x")
	require.True(t, ok)
	assert.Equal(t, int64(2), v.I64)

	ctx.EndTick()
	v, ok = ctx.Get("x")
	require.True(t, ok)
	assert.Equal(t, int64(2), v.I64)
}

func TestMemContextEndTickWithoutMutationIsSafe(t *testing.T) {
	ctx := NewMemContext()
	assert.NotPanics(t, func() { ctx.EndTick() })
}

func TestMemContextSnapshot(t *testing.T) {
	ctx := NewMemContext()
	ctx.Insert("score", I64Kind(5))
	ctx.Insert("name", StringKind("alice"))
	ctx.EndTick()

	snap := ctx.Snapshot()
	assert.Equal(t, int64(5), snap["score"])
	assert.Equal(t, "alice", snap["name"])
	assert.Len(t, snap, 2)
}
