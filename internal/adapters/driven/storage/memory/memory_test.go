package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campus-labs/tutor-cli/internal/core/domain"
)

func TestChunkStore_ReplaceAllAndAll(t *testing.T) {
	store := NewChunkStore()
	ctx := context.Background()

	chunks := []domain.ContentChunk{
		{ID: "a", Text: "first"},
		{ID: "b", Text: "second"},
	}
	require.NoError(t, store.ReplaceAll(ctx, chunks))

	got, err := store.All(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "b", got[1].ID)

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestChunkStore_ReplaceAllSwapsSnapshot(t *testing.T) {
	store := NewChunkStore()
	ctx := context.Background()

	require.NoError(t, store.ReplaceAll(ctx, []domain.ContentChunk{{ID: "old"}}))
	require.NoError(t, store.ReplaceAll(ctx, []domain.ContentChunk{{ID: "new1"}, {ID: "new2"}}))

	got, err := store.All(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "new1", got[0].ID)
}

func TestChunkStore_CopiesCallerSlice(t *testing.T) {
	store := NewChunkStore()
	ctx := context.Background()

	chunks := []domain.ContentChunk{{ID: "a"}}
	require.NoError(t, store.ReplaceAll(ctx, chunks))

	// Mutating the caller's slice must not change the snapshot
	chunks[0].ID = "mutated"

	got, err := store.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a", got[0].ID)
}

func TestChunkStore_Empty(t *testing.T) {
	store := NewChunkStore()

	got, err := store.All(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)

	count, err := store.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestConversationStore_AppendAndList(t *testing.T) {
	store := NewConversationStore()
	ctx := context.Background()

	turn := domain.ConversationTurn{
		ID:        "t1",
		Question:  "what is a pointer?",
		Answer:    "an address",
		Timestamp: time.Now(),
	}
	require.NoError(t, store.Append(ctx, turn))

	got, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "what is a pointer?", got[0].Question)
}

func TestConversationStore_Clear(t *testing.T) {
	store := NewConversationStore()
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, domain.ConversationTurn{ID: "t1"}))
	require.NoError(t, store.Clear(ctx))

	got, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestConversationStore_ListReturnsCopy(t *testing.T) {
	store := NewConversationStore()
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, domain.ConversationTurn{ID: "t1", Question: "q"}))

	got, _ := store.List(ctx)
	got[0].Question = "mutated"

	again, _ := store.List(ctx)
	assert.Equal(t, "q", again[0].Question)
}
