package model

import (
	"time"

	"github.com/google/uuid"
)

type DialogState int

const (
	StateNone DialogState = iota
	StateSetRoleChooseOption
	StateSetRoleEnterRoleName
	StateSetRoleSelectUsers
	StateDeleteRoleSelectUsers
	StateDeleteRoleSelectRole
	StateTagRoleChooseRole
	StateGetRoleEnterUsername
	StateRemoveRoleChooseRole
	StateAssignRoleChooseRole
	StateAssignRoleConfirm
)

// ExpectsText reports whether the state consumes a plain-text message
// as dialogue input.
func (s DialogState) ExpectsText() bool {
	switch s {
	case StateSetRoleEnterRoleName, StateSetRoleSelectUsers,
		StateDeleteRoleSelectUsers, StateGetRoleEnterUsername:
		return true
	}
	return false
}

// Session is the transient per-(user, chat) dialogue state. It is
// created on a command entry point and destroyed on a terminal state,
// cancellation, or when a new command replaces it.
type Session struct {
	ID     uuid.UUID   `json:"id"`
	UserID int64       `json:"user_id"`
	ChatID int64       `json:"chat_id"`
	State  DialogState `json:"state"`

	// Accumulated selections.
	Role      string   `json:"role,omitempty"`
	Usernames []string `json:"usernames,omitempty"`

	// Message IDs eligible for best-effort cleanup when the flow ends.
	// A flow can send several prompts (reprompts on empty input), all
	// of them are collected.
	CommandMessageID int   `json:"command_message_id,omitempty"`
	PromptMessageIDs []int `json:"prompt_message_ids,omitempty"`

	UpdatedAt time.Time `json:"updated_at"`
}

func NewSession(userID, chatID int64, state DialogState) Session {
	return Session{
		ID:        uuid.New(),
		UserID:    userID,
		ChatID:    chatID,
		State:     state,
		UpdatedAt: time.Now(),
	}
}
