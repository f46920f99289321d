package in_memory

import (
	"context"
	"testing"
	"time"

	"github.com/iamvkosarev/role-distributor-bot/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStorage_Lifecycle(t *testing.T) {
	storage := NewSessionStorage(0)
	ctx := context.Background()

	_, err := storage.Get(ctx, 1, 10)
	assert.ErrorIs(t, err, model.ErrSessionDoesNotExist)

	session := model.NewSession(1, 10, model.StateGetRoleEnterUsername)
	require.NoError(t, storage.Put(ctx, session))

	got, err := storage.Get(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, session.ID, got.ID)
	assert.Equal(t, model.StateGetRoleEnterUsername, got.State)

	require.NoError(t, storage.Delete(ctx, 1, 10))
	_, err = storage.Get(ctx, 1, 10)
	assert.ErrorIs(t, err, model.ErrSessionDoesNotExist)
}

func TestSessionStorage_ReplaceIsLastWriterWins(t *testing.T) {
	storage := NewSessionStorage(0)
	ctx := context.Background()

	first := model.NewSession(1, 10, model.StateDeleteRoleSelectUsers)
	require.NoError(t, storage.Put(ctx, first))

	second := model.NewSession(1, 10, model.StateSetRoleChooseOption)
	require.NoError(t, storage.Put(ctx, second))

	got, err := storage.Get(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, second.ID, got.ID)
}

func TestSessionStorage_TTLExpiry(t *testing.T) {
	storage := NewSessionStorage(10 * time.Millisecond)
	ctx := context.Background()

	require.NoError(t, storage.Put(ctx, model.NewSession(1, 10, model.StateTagRoleChooseRole)))

	_, err := storage.Get(ctx, 1, 10)
	require.NoError(t, err)

	time.Sleep(20 * time.Millisecond)
	_, err = storage.Get(ctx, 1, 10)
	assert.ErrorIs(t, err, model.ErrSessionDoesNotExist)
}
