package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// mentionPattern matches @role tokens in free text. Role names can be
// any Unicode word (Cyrillic roles included), so \w is not enough.
// Tokens are not restricted to existing roles at scan time; unknown
// ones are silently skipped.
var mentionPattern = regexp.MustCompile(`@([\p{L}\p{N}_]+)`)

type MentionUsecaseDeps struct {
	Roles *RolesUsecase
}

// MentionUsecase expands @role tokens in plain-text messages into the
// mentions of every member holding a matched role.
type MentionUsecase struct {
	MentionUsecaseDeps
}

func NewMentionUsecase(deps MentionUsecaseDeps) *MentionUsecase {
	return &MentionUsecase{
		MentionUsecaseDeps: deps,
	}
}

// BuildMentionReply scans text for @role tokens and returns one
// space-joined mention line covering every member of every matched
// role, deduplicated. An empty result means nothing should be sent.
func (m *MentionUsecase) BuildMentionReply(ctx context.Context, text string) (string, error) {
	matches := mentionPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return "", nil
	}

	seenRoles := make(map[string]struct{})
	seenMentions := make(map[string]struct{})
	var mentions []string

	for _, match := range matches {
		role := strings.ToLower(match[1])
		if _, ok := seenRoles[role]; ok {
			continue
		}
		seenRoles[role] = struct{}{}

		members, err := m.Roles.MembersFold(ctx, role)
		if err != nil {
			return "", fmt.Errorf("failed to resolve role %q: %w", role, err)
		}
		for _, member := range members {
			mention := "@" + member
			if _, ok := seenMentions[mention]; ok {
				continue
			}
			seenMentions[mention] = struct{}{}
			mentions = append(mentions, mention)
		}
	}

	if len(mentions) == 0 {
		return "", nil
	}
	return strings.Join(mentions, " "), nil
}
