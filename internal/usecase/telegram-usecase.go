package usecase

import (
	"context"
	"fmt"
	"strings"

	api "github.com/OvyFlash/telegram-bot-api"
	"github.com/iamvkosarev/role-distributor-bot/config"
	"github.com/iamvkosarev/role-distributor-bot/internal/messages"
	"github.com/iamvkosarev/role-distributor-bot/internal/model"
	"github.com/iamvkosarev/role-distributor-bot/pkg/local"
	"github.com/sourcegraph/conc"
	"go.uber.org/zap"
)

const (
	CommandStart      = "start"
	CommandHelp       = "help"
	CommandRoles      = "roles"
	CommandSetRole    = "setrole"
	CommandGetRole    = "getrole"
	CommandDeleteRole = "deleterole"
	CommandRemoveRole = "removerole"
	CommandAssignRole = "assignrole"
	CommandTagRole    = "tagrole"
	CommandCancel     = "cancel"
)

// BotClient is the slice of the bot API the usecase talks to.
// *api.BotAPI satisfies it.
type BotClient interface {
	Send(c api.Chattable) (api.Message, error)
	Request(c api.Chattable) (*api.APIResponse, error)
	GetUpdatesChan(config api.UpdateConfig) api.UpdatesChannel
}

type TelegramUsecaseDeps struct {
	Bot     BotClient
	Dialog  *DialogUsecase
	Mention *MentionUsecase
	Roles   *RolesUsecase
	Logger  *zap.Logger
}

type TelegramUsecase struct {
	TelegramUsecaseDeps
	cfg       config.Telegram
	dialogCfg config.Dialog
	lang      local.Language
}

func NewTelegramUsecase(cfg config.Telegram, dialogCfg config.Dialog, deps TelegramUsecaseDeps) (*TelegramUsecase, error) {
	_, err := deps.Bot.Request(
		api.NewSetMyCommands(
			[]api.BotCommand{
				{Command: CommandHelp, Description: "Show available commands"},
				{Command: CommandRoles, Description: "Show all roles and members"},
				{Command: CommandSetRole, Description: "Assign a role to users"},
				{Command: CommandGetRole, Description: "Show a user's roles"},
				{Command: CommandDeleteRole, Description: "Remove a role from users"},
				{Command: CommandRemoveRole, Description: "Delete a role entirely"},
				{Command: CommandAssignRole, Description: "Assign a role to yourself"},
				{Command: CommandTagRole, Description: "Mention every member of a role"},
				{Command: CommandCancel, Description: "Cancel the current operation"},
			}...,
		),
	)
	if err != nil {
		return nil, err
	}

	return &TelegramUsecase{
		TelegramUsecaseDeps: deps,
		cfg:                 cfg,
		dialogCfg:           dialogCfg,
		lang:                local.ParseLanguage(cfg.Language),
	}, nil
}

func (t *TelegramUsecase) Run(ctx context.Context) error {
	u := api.NewUpdate(0)
	u.Timeout = t.cfg.UpdateTimeoutSeconds

	updates := t.Bot.GetUpdatesChan(u)

	for update := range updates {
		if update.Message != nil {
			if err := t.handleMessage(ctx, update); err != nil {
				t.Logger.Error("failed to handle message", zap.Error(err))
			}
		}
		if update.CallbackQuery != nil {
			if err := t.handleCallbackQuery(ctx, update); err != nil {
				t.Logger.Error("failed to handle callback query", zap.Error(err))
			}
		}
	}
	return nil
}

func (t *TelegramUsecase) handleMessage(ctx context.Context, update api.Update) error {
	msg := update.Message
	evt := model.Event{
		UserID:    msg.From.ID,
		ChatID:    msg.Chat.ID,
		Username:  msg.From.UserName,
		FirstName: msg.From.FirstName,
		MessageID: msg.MessageID,
		Text:      msg.Text,
	}

	if msg.IsCommand() {
		return t.handleCommand(ctx, evt, msg.Command())
	}
	if msg.Text == "" {
		return nil
	}
	return t.handleText(ctx, evt)
}

func (t *TelegramUsecase) handleCommand(ctx context.Context, evt model.Event, command string) error {
	var reply model.Reply
	var err error

	switch command {
	case CommandStart:
		reply = model.Reply{
			Text: messages.Welcome.Format(t.lang, evt.FirstName),
			CommandKeyboard: [][]string{
				{"/help", "/roles"},
				{"/setrole", "/getrole"},
				{"/deleterole", "/tagrole"},
				{"/removerole", "/assignrole"},
			},
			Cleanup: []int{evt.MessageID},
		}
	case CommandHelp:
		reply = model.Reply{
			Text:    messages.Help.Text(t.lang),
			Cleanup: []int{evt.MessageID},
		}
	case CommandRoles:
		reply = t.rosterReply(ctx, evt)
	case CommandSetRole:
		reply, err = t.Dialog.StartSetRole(ctx, evt)
	case CommandGetRole:
		reply, err = t.Dialog.StartGetRole(ctx, evt)
	case CommandDeleteRole:
		reply, err = t.Dialog.StartDeleteRole(ctx, evt)
	case CommandRemoveRole:
		reply, err = t.Dialog.StartRemoveRole(ctx, evt)
	case CommandAssignRole:
		reply, err = t.Dialog.StartAssignRole(ctx, evt)
	case CommandTagRole:
		reply, err = t.Dialog.StartTagRole(ctx, evt)
	case CommandCancel:
		reply, err = t.Dialog.Cancel(ctx, evt)
	default:
		return nil
	}

	t.render(ctx, evt, reply, 0)
	return err
}

func (t *TelegramUsecase) rosterReply(ctx context.Context, evt model.Event) model.Reply {
	groups, err := t.Roles.Report(ctx)
	if err != nil {
		t.Logger.Error("failed to build role report", zap.Error(err))
		return model.Reply{
			Text:    messages.RosterFailed.Text(t.lang),
			Cleanup: []int{evt.MessageID},
		}
	}
	if len(groups) == 0 {
		return model.Reply{
			Text:    messages.RosterEmpty.Text(t.lang),
			Cleanup: []int{evt.MessageID},
		}
	}

	roster := strings.Builder{}
	roster.WriteString(messages.RosterHeader.Text(t.lang))
	for _, group := range groups {
		mentions := make([]string, 0, len(group.Members))
		for _, member := range group.Members {
			mentions = append(mentions, "@"+member)
		}
		roster.WriteString(fmt.Sprintf("- %s (%d): %s\n", group.Role, len(mentions), strings.Join(mentions, ", ")))
	}
	return model.Reply{
		Text:    roster.String(),
		Cleanup: []int{evt.MessageID},
	}
}

// handleText runs the dialogue pass and the @role mention pass over
// one plain-text message. Without suppression both run, even while a
// dialogue awaits input, which can produce a double reply.
func (t *TelegramUsecase) handleText(ctx context.Context, evt model.Event) error {
	if t.dialogCfg.SuppressMentionsInDialog {
		if handled, err := t.dialogTextPass(ctx, evt); handled || err != nil {
			return err
		}
		return t.mentionPass(ctx, evt)
	}

	var dialogErr, mentionErr error
	wg := conc.NewWaitGroup()
	wg.Go(
		func() {
			_, dialogErr = t.dialogTextPass(ctx, evt)
		},
	)
	wg.Go(
		func() {
			mentionErr = t.mentionPass(ctx, evt)
		},
	)
	wg.Wait()

	if dialogErr != nil {
		return dialogErr
	}
	return mentionErr
}

func (t *TelegramUsecase) dialogTextPass(ctx context.Context, evt model.Event) (bool, error) {
	reply, handled, err := t.Dialog.HandleText(ctx, evt)
	if handled {
		t.render(ctx, evt, reply, 0)
	}
	return handled, err
}

func (t *TelegramUsecase) mentionPass(ctx context.Context, evt model.Event) error {
	mentionsText, err := t.Mention.BuildMentionReply(ctx, evt.Text)
	if err != nil {
		return fmt.Errorf("failed to build mention reply: %w", err)
	}
	if mentionsText == "" {
		return nil
	}
	if _, err := t.sendMessage(evt.ChatID, mentionsText); err != nil {
		return fmt.Errorf("failed to send mention reply: %w", err)
	}
	return nil
}

func (t *TelegramUsecase) handleCallbackQuery(ctx context.Context, update api.Update) error {
	query := update.CallbackQuery
	callback := api.NewCallback(query.ID, "")
	if _, err := t.Bot.Request(callback); err != nil {
		return fmt.Errorf("failed to answer callback query: %w", err)
	}

	evt := model.Event{
		UserID:       query.From.ID,
		ChatID:       query.Message.Chat.ID,
		Username:     query.From.UserName,
		FirstName:    query.From.FirstName,
		MessageID:    query.Message.MessageID,
		CallbackData: query.Data,
	}

	reply, err := t.Dialog.HandleCallback(ctx, evt)
	t.render(ctx, evt, reply, query.Message.MessageID)
	return err
}

// render performs one dialogue step's side effects: cleanup deletes,
// then sending or editing the reply with whatever keyboard it carries.
func (t *TelegramUsecase) render(ctx context.Context, evt model.Event, reply model.Reply, callbackMsgID int) {
	if reply.DeleteKeyboard && callbackMsgID != 0 {
		t.deleteMessage(evt.ChatID, callbackMsgID)
	}
	for _, id := range reply.Cleanup {
		t.deleteMessage(evt.ChatID, id)
	}
	if reply.Text == "" {
		return
	}

	if reply.Edit && callbackMsgID != 0 {
		var c api.Chattable
		if len(reply.Buttons) > 0 {
			c = api.NewEditMessageTextAndMarkup(evt.ChatID, callbackMsgID, reply.Text, inlineMarkup(reply.Buttons))
		} else {
			c = api.NewEditMessageText(evt.ChatID, callbackMsgID, reply.Text)
		}
		if _, err := t.Bot.Send(c); err != nil {
			t.Logger.Error("failed to edit message", zap.Error(err))
			return
		}
		if reply.TrackPrompt {
			t.Dialog.TrackPrompt(ctx, evt.UserID, evt.ChatID, callbackMsgID)
		}
		return
	}

	msg := api.NewMessage(evt.ChatID, reply.Text)
	if len(reply.Buttons) > 0 {
		msg.ReplyMarkup = inlineMarkup(reply.Buttons)
	} else if len(reply.CommandKeyboard) > 0 {
		msg.ReplyMarkup = commandMarkup(reply.CommandKeyboard)
	}
	sent, err := t.Bot.Send(msg)
	if err != nil {
		t.Logger.Error("failed to send message", zap.Error(err))
		return
	}
	if reply.TrackPrompt {
		t.Dialog.TrackPrompt(ctx, evt.UserID, evt.ChatID, sent.MessageID)
	}
}

func (t *TelegramUsecase) sendMessage(chatID int64, text string) (api.Message, error) {
	return t.Bot.Send(api.NewMessage(chatID, text))
}

// deleteMessage is best-effort housekeeping: failures are logged and
// never surface to the user.
func (t *TelegramUsecase) deleteMessage(chatID int64, messageID int) {
	if messageID == 0 {
		return
	}
	if _, err := t.Bot.Request(api.NewDeleteMessage(chatID, messageID)); err != nil {
		t.Logger.Debug("failed to delete message",
			zap.Int64("chat_id", chatID),
			zap.Int("message_id", messageID),
			zap.Error(err))
	}
}

func inlineMarkup(rows [][]model.Button) api.InlineKeyboardMarkup {
	inlineRows := make([][]api.InlineKeyboardButton, 0, len(rows))
	for _, row := range rows {
		inlineRow := make([]api.InlineKeyboardButton, 0, len(row))
		for _, button := range row {
			inlineRow = append(inlineRow, api.NewInlineKeyboardButtonData(button.Label, button.Data))
		}
		inlineRows = append(inlineRows, inlineRow)
	}
	return api.NewInlineKeyboardMarkup(inlineRows...)
}

func commandMarkup(rows [][]string) api.ReplyKeyboardMarkup {
	keyboardRows := make([][]api.KeyboardButton, 0, len(rows))
	for _, row := range rows {
		keyboardRow := make([]api.KeyboardButton, 0, len(row))
		for _, label := range row {
			keyboardRow = append(keyboardRow, api.NewKeyboardButton(label))
		}
		keyboardRows = append(keyboardRows, keyboardRow)
	}
	markup := api.NewReplyKeyboard(keyboardRows...)
	markup.ResizeKeyboard = true
	return markup
}
