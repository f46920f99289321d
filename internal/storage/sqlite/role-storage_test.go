package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/iamvkosarev/role-distributor-bot/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *RoleStorage {
	t.Helper()
	storage, err := NewRoleStorage(filepath.Join(t.TempDir(), "roles.db"))
	require.NoError(t, err)
	t.Cleanup(func() { storage.Close() })
	return storage
}

func TestAdd_Idempotent(t *testing.T) {
	storage := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, storage.Add(ctx, "alice", "dev"))
	require.NoError(t, storage.Add(ctx, "alice", "dev"))

	roles, err := storage.RolesOfUser(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"dev"}, roles)
}

func TestAdd_CaseInsensitiveUniqueness(t *testing.T) {
	storage := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, storage.Add(ctx, "alice", "Dev"))
	require.NoError(t, storage.Add(ctx, "alice", "dev"))

	roles, err := storage.RolesOfUser(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"Dev"}, roles, "second insert with different casing must be ignored")
}

func TestRemove_ExactMatchOnly(t *testing.T) {
	storage := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, storage.Add(ctx, "alice", "Dev"))

	// Removal keys on the stored role string, not its folded form.
	require.NoError(t, storage.Remove(ctx, "alice", "dev"))
	roles, err := storage.RolesOfUser(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"Dev"}, roles)

	require.NoError(t, storage.Remove(ctx, "alice", "Dev"))
	roles, err = storage.RolesOfUser(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, roles)

	// Removing an absent pair is a no-op.
	require.NoError(t, storage.Remove(ctx, "alice", "Dev"))
}

func TestRemoveRole_Everywhere(t *testing.T) {
	storage := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, storage.Add(ctx, "alice", "dev"))
	require.NoError(t, storage.Add(ctx, "bob", "dev"))
	require.NoError(t, storage.Add(ctx, "bob", "qa"))

	require.NoError(t, storage.RemoveRole(ctx, "dev"))

	users, err := storage.UsersWithRole(ctx, "dev")
	require.NoError(t, err)
	assert.Empty(t, users)

	users, err = storage.UsersWithRole(ctx, "qa")
	require.NoError(t, err)
	assert.Equal(t, []string{"bob"}, users)
}

func TestAddRemove_Inverse(t *testing.T) {
	storage := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, storage.Add(ctx, "carol", "dev"))
	require.NoError(t, storage.Add(ctx, "carol", "qa"))

	roles, err := storage.RolesOfUser(ctx, "carol")
	require.NoError(t, err)
	assert.Equal(t, []string{"dev", "qa"}, roles)

	require.NoError(t, storage.Remove(ctx, "carol", "dev"))
	roles, err = storage.RolesOfUser(ctx, "carol")
	require.NoError(t, err)
	assert.Equal(t, []string{"qa"}, roles)
}

func TestUsersWithRoleFold(t *testing.T) {
	storage := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, storage.Add(ctx, "alice", "Dev"))
	require.NoError(t, storage.Add(ctx, "bob", "dev"))

	users, err := storage.UsersWithRoleFold(ctx, "DEV")
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "bob"}, users)

	users, err = storage.UsersWithRole(ctx, "Dev")
	require.NoError(t, err)
	assert.Equal(t, []string{"alice"}, users)
}

func TestListRoles_Stable(t *testing.T) {
	storage := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, storage.Add(ctx, "alice", "qa"))
	require.NoError(t, storage.Add(ctx, "alice", "dev"))
	require.NoError(t, storage.Add(ctx, "bob", "dev"))

	roles, err := storage.ListRoles(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"dev", "qa"}, roles)
}

func TestReport_GroupsByRole(t *testing.T) {
	storage := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, storage.Add(ctx, "bob", "dev"))
	require.NoError(t, storage.Add(ctx, "alice", "dev"))
	require.NoError(t, storage.Add(ctx, "carol", "qa"))

	groups, err := storage.Report(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.RoleGroup{
		{Role: "dev", Members: []string{"alice", "bob"}},
		{Role: "qa", Members: []string{"carol"}},
	}, groups)
}

func TestReport_Empty(t *testing.T) {
	storage := newTestStorage(t)

	groups, err := storage.Report(context.Background())
	require.NoError(t, err)
	assert.Empty(t, groups)
}
