package usecase

import (
	"context"
	"fmt"

	api "github.com/OvyFlash/telegram-bot-api"
)

// TelegramMemberChecker resolves chat membership status through the
// bot API for the admin gate.
type TelegramMemberChecker struct {
	Bot *api.BotAPI
}

func NewTelegramMemberChecker(bot *api.BotAPI) *TelegramMemberChecker {
	return &TelegramMemberChecker{Bot: bot}
}

func (c *TelegramMemberChecker) IsChatAdmin(_ context.Context, chatID, userID int64) (bool, error) {
	member, err := c.Bot.GetChatMember(
		api.GetChatMemberConfig{
			ChatConfigWithUser: api.ChatConfigWithUser{
				ChatConfig: api.ChatConfig{ChatID: chatID},
				UserID:     userID,
			},
		},
	)
	if err != nil {
		return false, fmt.Errorf("failed to get chat member: %w", err)
	}
	return member.Status == "administrator" || member.Status == "creator", nil
}
