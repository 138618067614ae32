package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gagannsingh/iQuiz/internal/domain/entities"
)

func TestTopicStore_ReplaceAllIsWholesale(t *testing.T) {
	store := NewTopicStore()
	assert.Equal(t, 0, store.Len())

	first := []*entities.Topic{{ID: "a", Title: "A"}, {ID: "b", Title: "B"}}
	store.ReplaceAll(first)
	require.Equal(t, 2, store.Len())

	// A new load replaces the list entirely, no merge.
	second := []*entities.Topic{{ID: "c", Title: "C"}}
	store.ReplaceAll(second)
	require.Equal(t, 1, store.Len())

	_, err := store.Get("a")
	assert.ErrorIs(t, err, ErrTopicNotFound)

	got, err := store.Get("c")
	require.NoError(t, err)
	assert.Equal(t, "C", got.Title)
}

func TestTopicStore_ListKeepsFetchOrder(t *testing.T) {
	store := NewTopicStore()
	store.ReplaceAll([]*entities.Topic{{ID: "1"}, {ID: "2"}, {ID: "3"}})

	list := store.List()
	require.Len(t, list, 3)
	assert.Equal(t, "1", list[0].ID)
	assert.Equal(t, "3", list[2].ID)
}

func TestTopicStore_ListReturnsCopy(t *testing.T) {
	store := NewTopicStore()
	store.ReplaceAll([]*entities.Topic{{ID: "1"}, {ID: "2"}})

	list := store.List()
	list[0], list[1] = list[1], list[0]

	// The stored order is unaffected by mutations of the returned slice.
	again := store.List()
	assert.Equal(t, "1", again[0].ID)
	assert.Equal(t, "2", again[1].ID)
}

func TestTopicStore_GetUnknownID(t *testing.T) {
	store := NewTopicStore()

	_, err := store.Get("missing")
	assert.ErrorIs(t, err, ErrTopicNotFound)
}
