package usecase

import (
	"context"
	"testing"

	in_memory "github.com/iamvkosarev/role-distributor-bot/internal/storage/in-memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMentionUsecase(t *testing.T, assignments map[string][]string) *MentionUsecase {
	t.Helper()
	storage := in_memory.NewRoleStorage()
	for role, users := range assignments {
		for _, user := range users {
			require.NoError(t, storage.Add(context.Background(), user, role))
		}
	}
	roles := NewRolesUsecase(RolesUsecaseDeps{RoleStorage: storage})
	return NewMentionUsecase(MentionUsecaseDeps{Roles: roles})
}

func TestBuildMentionReply(t *testing.T) {
	mention := newMentionUsecase(t, map[string][]string{
		"dev":    {"alice", "bob"},
		"qa":     {"bob", "carol"},
		"разраб": {"alice"},
	})
	ctx := context.Background()

	t.Run("duplicate token collapses, case folded", func(t *testing.T) {
		reply, err := mention.BuildMentionReply(ctx, "hello @dev and @DEV team")
		require.NoError(t, err)
		assert.Equal(t, "@alice @bob", reply)
	})

	t.Run("mentions deduplicated across roles", func(t *testing.T) {
		reply, err := mention.BuildMentionReply(ctx, "@dev @qa standup now")
		require.NoError(t, err)
		assert.Equal(t, "@alice @bob @carol", reply)
	})

	t.Run("unknown tokens silently skipped", func(t *testing.T) {
		reply, err := mention.BuildMentionReply(ctx, "ping @ops and @dev")
		require.NoError(t, err)
		assert.Equal(t, "@alice @bob", reply)
	})

	t.Run("cyrillic role token resolves", func(t *testing.T) {
		reply, err := mention.BuildMentionReply(ctx, "привет @разраб team")
		require.NoError(t, err)
		assert.Equal(t, "@alice", reply)
	})

	t.Run("no matching role sends nothing", func(t *testing.T) {
		reply, err := mention.BuildMentionReply(ctx, "hello @nobody")
		require.NoError(t, err)
		assert.Empty(t, reply)
	})

	t.Run("no tokens at all", func(t *testing.T) {
		reply, err := mention.BuildMentionReply(ctx, "plain text without tokens")
		require.NoError(t, err)
		assert.Empty(t, reply)
	})
}

func TestBuildMentionReply_EmptyStore(t *testing.T) {
	mention := newMentionUsecase(t, nil)

	reply, err := mention.BuildMentionReply(context.Background(), "@dev hello")
	require.NoError(t, err)
	assert.Empty(t, reply)
}
