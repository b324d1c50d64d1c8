package articles

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hongminglow/blog-be/internal/common"
	"github.com/hongminglow/blog-be/internal/logger"
	"github.com/hongminglow/blog-be/internal/models"
	"github.com/hongminglow/blog-be/internal/storage/memory"
)

func steppingClock() func() time.Time {
	var mu sync.Mutex
	current := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		current = current.Add(time.Minute)
		return current
	}
}

func setup(t *testing.T) (*Service, int64) {
	t.Helper()
	store := memory.New(memory.WithClock(steppingClock()))
	owner, err := store.CreateUser(context.Background(), models.User{
		Username:     "owner",
		Email:        "owner@example.com",
		PasswordHash: "hash",
	})
	require.NoError(t, err)
	return NewService(store, logger.Discard()), owner.ID
}

func TestCreateThenGet(t *testing.T) {
	svc, owner := setup(t)
	ctx := context.Background()

	id, err := svc.Create(ctx, owner, "T", "C")
	require.NoError(t, err)

	got, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "T", got.Title)
	assert.Equal(t, "C", got.Content)
	assert.Equal(t, owner, got.AuthorID)
	assert.Equal(t, "owner", got.Author)
	assert.Equal(t, got.CreatedAt, got.UpdatedAt)
}

func TestCreate_Validation(t *testing.T) {
	svc, owner := setup(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, owner, "", "C")
	assert.ErrorIs(t, err, common.ErrInvalidInput)
	_, err = svc.Create(ctx, owner, "T", "  ")
	assert.ErrorIs(t, err, common.ErrInvalidInput)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCreate_UnknownAuthor(t *testing.T) {
	svc, _ := setup(t)
	_, err := svc.Create(context.Background(), 999, "T", "C")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestGet_NotFound(t *testing.T) {
	svc, _ := setup(t)
	_, err := svc.Get(context.Background(), 1)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestList_EmptyIsNotNil(t *testing.T) {
	svc, _ := setup(t)
	list, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Len(t, list, 0)
}

func TestList_NewestFirst(t *testing.T) {
	svc, owner := setup(t)
	ctx := context.Background()

	var ids []int64
	for _, title := range []string{"first", "second", "third", "fourth"} {
		id, err := svc.Create(ctx, owner, title, "body")
		require.NoError(t, err)
		ids = append(ids, id)
	}
	_, err := svc.Update(ctx, ids[0], "first edited", "body")
	require.NoError(t, err)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, len(ids))
	for i, article := range list {
		assert.Equal(t, ids[len(ids)-1-i], article.ID)
	}
}

func TestUpdate(t *testing.T) {
	svc, owner := setup(t)
	ctx := context.Background()

	id, err := svc.Create(ctx, owner, "T", "C")
	require.NoError(t, err)
	before, err := svc.Get(ctx, id)
	require.NoError(t, err)

	updated, err := svc.Update(ctx, id, "T2", "C2")
	require.NoError(t, err)
	assert.Equal(t, "T2", updated.Title)
	assert.Equal(t, "C2", updated.Content)
	assert.True(t, updated.UpdatedAt.After(before.UpdatedAt))
	assert.Equal(t, before.CreatedAt, updated.CreatedAt)

	_, err = svc.Update(ctx, id, "", "C3")
	assert.ErrorIs(t, err, common.ErrInvalidInput)

	_, err = svc.Update(ctx, id+100, "T", "C")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestDelete(t *testing.T) {
	svc, owner := setup(t)
	ctx := context.Background()

	assert.ErrorIs(t, svc.Delete(ctx, 1), common.ErrNotFound)
	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	id, err := svc.Create(ctx, owner, "T", "C")
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, id))

	_, err = svc.Get(ctx, id)
	assert.ErrorIs(t, err, common.ErrNotFound)
}
