package in_memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The in-memory store must mirror the sqlite semantics it stands in
// for: case-insensitive uniqueness on add, exact-match removal.
func TestRoleStorage_MirrorsSQLiteSemantics(t *testing.T) {
	storage := NewRoleStorage()
	ctx := context.Background()

	require.NoError(t, storage.Add(ctx, "alice", "Dev"))
	require.NoError(t, storage.Add(ctx, "alice", "dev"))
	roles, err := storage.RolesOfUser(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"Dev"}, roles)

	require.NoError(t, storage.Remove(ctx, "alice", "dev"))
	roles, err = storage.RolesOfUser(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"Dev"}, roles, "removal keys on the exact stored string")

	require.NoError(t, storage.Add(ctx, "bob", "dev"))
	users, err := storage.UsersWithRoleFold(ctx, "DEV")
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "bob"}, users)

	require.NoError(t, storage.RemoveRole(ctx, "Dev"))
	users, err = storage.UsersWithRole(ctx, "Dev")
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestRoleStorage_Report(t *testing.T) {
	storage := NewRoleStorage()
	ctx := context.Background()

	require.NoError(t, storage.Add(ctx, "bob", "qa"))
	require.NoError(t, storage.Add(ctx, "alice", "qa"))

	groups, err := storage.Report(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "qa", groups[0].Role)
	assert.Equal(t, []string{"alice", "bob"}, groups[0].Members)
}
