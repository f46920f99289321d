package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/iamvkosarev/role-distributor-bot/internal/messages"
	"github.com/iamvkosarev/role-distributor-bot/internal/model"
	"github.com/iamvkosarev/role-distributor-bot/pkg/local"
	"go.uber.org/zap"
)

// Callback payloads are the wire format of the inline keyboards and
// must stay compatible with buttons already sent to chats.
const (
	callbackCancel          = "cancel"
	callbackBack            = "back"
	callbackSetRoleExisting = "setrole_existing"
	callbackSetRoleNew      = "setrole_new"
	callbackAssignYes       = "assignrole_confirm_yes"
	callbackAssignNo        = "assignrole_confirm_no"

	payloadSetRole    = "setrole_role:"
	payloadDeleteRole = "deleterole_role:"
	payloadTagRole    = "tagrole_role:"
	payloadRemoveRole = "removerole_role:"
	payloadAssignRole = "assignrole_role:"
)

type SessionStorage interface {
	Get(ctx context.Context, userID, chatID int64) (model.Session, error)
	Put(ctx context.Context, session model.Session) error
	Delete(ctx context.Context, userID, chatID int64) error
}

type MemberChecker interface {
	IsChatAdmin(ctx context.Context, chatID, userID int64) (bool, error)
}

type DialogUsecaseDeps struct {
	Roles    *RolesUsecase
	Sessions SessionStorage
	Members  MemberChecker
	Logger   *zap.Logger
}

// DialogUsecase drives the multi-step flows: one finite-state machine
// per (user, chat) pair. Starting any command discards the previous
// session of that user.
type DialogUsecase struct {
	DialogUsecaseDeps
	lang local.Language
}

func NewDialogUsecase(deps DialogUsecaseDeps, lang local.Language) *DialogUsecase {
	return &DialogUsecase{
		DialogUsecaseDeps: deps,
		lang:              lang,
	}
}

// StartSetRole begins the admin flow assigning a role to listed users.
func (d *DialogUsecase) StartSetRole(ctx context.Context, evt model.Event) (model.Reply, error) {
	return d.startSetRole(ctx, evt, evt.MessageID)
}

func (d *DialogUsecase) startSetRole(ctx context.Context, evt model.Event, commandMessageID int) (model.Reply, error) {
	d.discard(ctx, evt)
	if reply, ok := d.requireAdmin(ctx, evt, commandMessageID); !ok {
		return reply, nil
	}

	session := model.NewSession(evt.UserID, evt.ChatID, model.StateSetRoleChooseOption)
	session.CommandMessageID = commandMessageID
	if err := d.Sessions.Put(ctx, session); err != nil {
		return d.genericError(commandMessageID), fmt.Errorf("failed to save session: %w", err)
	}
	d.Logger.Debug("dialogue started",
		zap.String("session_id", session.ID.String()),
		zap.String("flow", "setrole"),
		zap.Int64("user_id", evt.UserID))

	return model.Reply{
		Text: messages.ChooseOption.Text(d.lang),
		Buttons: [][]model.Button{
			{{Label: messages.OptionExistingRole.Text(d.lang), Data: callbackSetRoleExisting}},
			{{Label: messages.OptionNewRole.Text(d.lang), Data: callbackSetRoleNew}},
			{{Label: messages.ButtonCancel.Text(d.lang), Data: callbackCancel}},
		},
		TrackPrompt: true,
	}, nil
}

// StartGetRole begins the flow reporting a user's roles.
func (d *DialogUsecase) StartGetRole(ctx context.Context, evt model.Event) (model.Reply, error) {
	d.discard(ctx, evt)

	session := model.NewSession(evt.UserID, evt.ChatID, model.StateGetRoleEnterUsername)
	session.CommandMessageID = evt.MessageID
	if err := d.Sessions.Put(ctx, session); err != nil {
		return d.genericError(evt.MessageID), fmt.Errorf("failed to save session: %w", err)
	}
	return model.Reply{
		Text:        messages.EnterUsernameForRoles.Text(d.lang),
		TrackPrompt: true,
	}, nil
}

// StartDeleteRole begins the admin flow removing one role from listed
// users.
func (d *DialogUsecase) StartDeleteRole(ctx context.Context, evt model.Event) (model.Reply, error) {
	return d.startDeleteRole(ctx, evt, evt.MessageID)
}

func (d *DialogUsecase) startDeleteRole(ctx context.Context, evt model.Event, commandMessageID int) (model.Reply, error) {
	d.discard(ctx, evt)
	if reply, ok := d.requireAdmin(ctx, evt, commandMessageID); !ok {
		return reply, nil
	}

	session := model.NewSession(evt.UserID, evt.ChatID, model.StateDeleteRoleSelectUsers)
	session.CommandMessageID = commandMessageID
	if err := d.Sessions.Put(ctx, session); err != nil {
		return d.genericError(commandMessageID), fmt.Errorf("failed to save session: %w", err)
	}
	return model.Reply{
		Text:        messages.EnterUsernamesToStrip.Text(d.lang),
		TrackPrompt: true,
	}, nil
}

// StartRemoveRole begins the admin flow deleting a role from every
// holder.
func (d *DialogUsecase) StartRemoveRole(ctx context.Context, evt model.Event) (model.Reply, error) {
	d.discard(ctx, evt)
	if reply, ok := d.requireAdmin(ctx, evt, evt.MessageID); !ok {
		return reply, nil
	}
	return d.startRoleKeyboard(ctx, evt, model.StateRemoveRoleChooseRole, payloadRemoveRole,
		messages.ChooseRoleToDelete, messages.NoRolesToDelete)
}

// StartAssignRole begins the self-assignment flow, open to any user.
func (d *DialogUsecase) StartAssignRole(ctx context.Context, evt model.Event) (model.Reply, error) {
	d.discard(ctx, evt)
	return d.startRoleKeyboard(ctx, evt, model.StateAssignRoleChooseRole, payloadAssignRole,
		messages.ChooseRoleForSelf, messages.NoRolesAvailable)
}

// StartTagRole begins the flow mentioning every member of a chosen
// role, open to any user.
func (d *DialogUsecase) StartTagRole(ctx context.Context, evt model.Event) (model.Reply, error) {
	d.discard(ctx, evt)
	return d.startRoleKeyboard(ctx, evt, model.StateTagRoleChooseRole, payloadTagRole,
		messages.ChooseRoleToTag, messages.NoRolesAvailable)
}

// startRoleKeyboard is the shared entry point for flows that open with
// a keyboard of every existing role.
func (d *DialogUsecase) startRoleKeyboard(
	ctx context.Context, evt model.Event, state model.DialogState, payloadPrefix string,
	prompt, emptyText local.TextSet,
) (model.Reply, error) {
	roles, err := d.Roles.ListRoles(ctx)
	if err != nil {
		return d.genericError(evt.MessageID), fmt.Errorf("failed to list roles: %w", err)
	}
	if len(roles) == 0 {
		return model.Reply{
			Text:    emptyText.Text(d.lang),
			Cleanup: []int{evt.MessageID},
		}, nil
	}

	session := model.NewSession(evt.UserID, evt.ChatID, state)
	session.CommandMessageID = evt.MessageID
	if err := d.Sessions.Put(ctx, session); err != nil {
		return d.genericError(evt.MessageID), fmt.Errorf("failed to save session: %w", err)
	}
	return model.Reply{
		Text:        prompt.Text(d.lang),
		Buttons:     d.roleButtons(roles, payloadPrefix, messages.ButtonCancel, callbackCancel),
		TrackPrompt: true,
	}, nil
}

// Cancel handles the /cancel command: it tears down whatever dialogue
// is active and confirms the abort.
func (d *DialogUsecase) Cancel(ctx context.Context, evt model.Event) (model.Reply, error) {
	session, err := d.Sessions.Get(ctx, evt.UserID, evt.ChatID)
	if err != nil {
		if errors.Is(err, model.ErrSessionDoesNotExist) {
			return model.Reply{}, nil
		}
		return d.genericError(0), fmt.Errorf("failed to get session: %w", err)
	}
	d.deleteSession(ctx, evt)
	return model.Reply{
		Text:    messages.Cancelled.Text(d.lang),
		Cleanup: sessionCleanup(session),
	}, nil
}

// HandleText feeds a plain-text message to the active dialogue. The
// second return value reports whether a dialogue consumed the text.
func (d *DialogUsecase) HandleText(ctx context.Context, evt model.Event) (model.Reply, bool, error) {
	session, err := d.Sessions.Get(ctx, evt.UserID, evt.ChatID)
	if err != nil {
		if errors.Is(err, model.ErrSessionDoesNotExist) {
			return model.Reply{}, false, nil
		}
		return model.Reply{}, false, fmt.Errorf("failed to get session: %w", err)
	}
	if !session.State.ExpectsText() {
		return model.Reply{}, false, nil
	}

	switch session.State {
	case model.StateSetRoleEnterRoleName:
		reply, err := d.setRoleName(ctx, evt, session)
		return reply, true, err
	case model.StateSetRoleSelectUsers:
		reply, err := d.setRoleUsers(ctx, evt, session)
		return reply, true, err
	case model.StateDeleteRoleSelectUsers:
		reply, err := d.deleteRoleUsers(ctx, evt, session)
		return reply, true, err
	case model.StateGetRoleEnterUsername:
		reply, err := d.getRoleUsername(ctx, evt, session)
		return reply, true, err
	}
	return model.Reply{}, false, nil
}

func (d *DialogUsecase) setRoleName(ctx context.Context, evt model.Event, session model.Session) (model.Reply, error) {
	name := strings.TrimSpace(evt.Text)
	if name == "" {
		return model.Reply{Text: messages.EmptyRoleName.Text(d.lang), TrackPrompt: true}, nil
	}
	session.Role = name
	session.State = model.StateSetRoleSelectUsers
	if err := d.Sessions.Put(ctx, session); err != nil {
		return d.genericError(0), fmt.Errorf("failed to save session: %w", err)
	}
	return model.Reply{
		Text:        messages.RoleCreatedEnterUsers.Format(d.lang, name),
		TrackPrompt: true,
	}, nil
}

func (d *DialogUsecase) setRoleUsers(ctx context.Context, evt model.Event, session model.Session) (model.Reply, error) {
	if session.Role == "" {
		d.deleteSession(ctx, evt)
		return d.genericError(0), errors.New("session has no pending role")
	}
	tokens := strings.Fields(evt.Text)
	if len(tokens) == 0 {
		return model.Reply{Text: messages.EnterUsernamesReprompt.Text(d.lang), TrackPrompt: true}, nil
	}

	assigned, malformed, err := d.Roles.AssignToMany(ctx, tokens, session.Role)
	if err != nil {
		d.deleteSession(ctx, evt)
		return d.genericError(0), fmt.Errorf("failed to assign role: %w", err)
	}

	var summary strings.Builder
	if len(assigned) > 0 {
		summary.WriteString(messages.RoleAssignedTo.Format(d.lang, session.Role, strings.Join(assigned, " ")))
	}
	if len(malformed) > 0 {
		summary.WriteString(messages.RoleAssignFailedFor.Format(d.lang, strings.Join(malformed, " ")))
	}

	d.deleteSession(ctx, evt)
	return model.Reply{
		Text:    summary.String(),
		Cleanup: append(sessionCleanup(session), evt.MessageID),
	}, nil
}

func (d *DialogUsecase) deleteRoleUsers(ctx context.Context, evt model.Event, session model.Session) (model.Reply, error) {
	tokens := strings.Fields(evt.Text)
	if len(tokens) == 0 {
		return model.Reply{Text: messages.EnterUsernamesReprompt.Text(d.lang), TrackPrompt: true}, nil
	}

	roles, err := d.Roles.ListRoles(ctx)
	if err != nil {
		d.deleteSession(ctx, evt)
		return d.genericError(0), fmt.Errorf("failed to list roles: %w", err)
	}
	if len(roles) == 0 {
		d.deleteSession(ctx, evt)
		return model.Reply{
			Text:    messages.NoRolesAvailable.Text(d.lang),
			Cleanup: sessionCleanup(session),
		}, nil
	}

	session.Usernames = tokens
	session.State = model.StateDeleteRoleSelectRole
	if err := d.Sessions.Put(ctx, session); err != nil {
		return d.genericError(0), fmt.Errorf("failed to save session: %w", err)
	}
	return model.Reply{
		Text:        messages.ChooseRoleToStrip.Text(d.lang),
		Buttons:     d.roleButtons(roles, payloadDeleteRole, messages.ButtonBack, callbackBack),
		TrackPrompt: true,
	}, nil
}

func (d *DialogUsecase) getRoleUsername(ctx context.Context, evt model.Event, session model.Session) (model.Reply, error) {
	username := model.NormalizeUsername(strings.TrimSpace(evt.Text))
	roles, err := d.Roles.RolesOfUser(ctx, username)
	if err != nil {
		d.deleteSession(ctx, evt)
		return d.genericError(0), fmt.Errorf("failed to list roles of user: %w", err)
	}

	var text string
	if len(roles) > 0 {
		text = messages.UserRoles.Format(d.lang, username, strings.Join(roles, ", "))
	} else {
		text = messages.UserHasNoRoles.Format(d.lang, username)
	}

	d.deleteSession(ctx, evt)
	return model.Reply{
		Text:    text,
		Cleanup: append(sessionCleanup(session), evt.MessageID),
	}, nil
}

// HandleCallback feeds a button press to the active dialogue. A press
// with no matching session, or a payload the current state does not
// expect, ends the dialogue with an "unknown command" reply.
func (d *DialogUsecase) HandleCallback(ctx context.Context, evt model.Event) (model.Reply, error) {
	session, err := d.Sessions.Get(ctx, evt.UserID, evt.ChatID)
	if err != nil {
		if errors.Is(err, model.ErrSessionDoesNotExist) {
			return model.Reply{Text: messages.UnknownCommand.Text(d.lang)}, nil
		}
		return d.genericError(0), fmt.Errorf("failed to get session: %w", err)
	}

	data := evt.CallbackData
	switch data {
	case callbackCancel:
		d.deleteSession(ctx, evt)
		return model.Reply{
			DeleteKeyboard: true,
			Cleanup:        []int{session.CommandMessageID},
		}, nil
	case callbackBack:
		return d.restart(ctx, evt, session)
	}

	switch session.State {
	case model.StateSetRoleChooseOption:
		return d.setRoleOption(ctx, evt, session)
	case model.StateDeleteRoleSelectRole:
		if role, ok := strings.CutPrefix(data, payloadDeleteRole); ok {
			return d.deleteRoleChosen(ctx, evt, session, role)
		}
	case model.StateRemoveRoleChooseRole:
		if role, ok := strings.CutPrefix(data, payloadRemoveRole); ok {
			return d.removeRoleChosen(ctx, evt, session, role)
		}
	case model.StateTagRoleChooseRole:
		if role, ok := strings.CutPrefix(data, payloadTagRole); ok {
			return d.tagRoleChosen(ctx, evt, session, role)
		}
	case model.StateAssignRoleChooseRole:
		if role, ok := strings.CutPrefix(data, payloadAssignRole); ok {
			return d.assignRoleChosen(ctx, evt, session, role)
		}
	case model.StateAssignRoleConfirm:
		if data == callbackAssignYes || data == callbackAssignNo {
			return d.assignRoleConfirmed(ctx, evt, session, data == callbackAssignYes)
		}
	}

	d.Logger.Debug("unexpected callback payload",
		zap.String("session_id", session.ID.String()),
		zap.Int("state", int(session.State)),
		zap.String("data", data))
	d.deleteSession(ctx, evt)
	return model.Reply{Text: messages.UnknownCommand.Text(d.lang)}, nil
}

// restart re-runs the flow's entry point for the back button, keeping
// the command message that opened the flow for cleanup.
func (d *DialogUsecase) restart(ctx context.Context, evt model.Event, session model.Session) (model.Reply, error) {
	var reply model.Reply
	var err error
	switch session.State {
	case model.StateSetRoleChooseOption:
		reply, err = d.startSetRole(ctx, evt, session.CommandMessageID)
	case model.StateDeleteRoleSelectRole:
		reply, err = d.startDeleteRole(ctx, evt, session.CommandMessageID)
	default:
		d.deleteSession(ctx, evt)
		return model.Reply{Text: messages.UnknownCommand.Text(d.lang)}, nil
	}
	reply.DeleteKeyboard = true
	return reply, err
}

func (d *DialogUsecase) setRoleOption(ctx context.Context, evt model.Event, session model.Session) (model.Reply, error) {
	data := evt.CallbackData
	switch {
	case data == callbackSetRoleExisting:
		roles, err := d.Roles.ListRoles(ctx)
		if err != nil {
			d.deleteSession(ctx, evt)
			reply := d.genericError(0)
			reply.Edit = true
			return reply, fmt.Errorf("failed to list roles: %w", err)
		}
		if len(roles) == 0 {
			d.deleteSession(ctx, evt)
			return model.Reply{
				Text: messages.NoRolesAvailable.Text(d.lang),
				Edit: true,
			}, nil
		}
		return model.Reply{
			Text:    messages.ChooseRole.Text(d.lang),
			Buttons: d.roleButtons(roles, payloadSetRole, messages.ButtonBack, callbackBack),
			Edit:    true,
		}, nil
	case data == callbackSetRoleNew:
		session.State = model.StateSetRoleEnterRoleName
		if err := d.Sessions.Put(ctx, session); err != nil {
			return d.genericError(0), fmt.Errorf("failed to save session: %w", err)
		}
		return model.Reply{
			Text:        messages.EnterNewRoleName.Text(d.lang),
			Edit:        true,
			TrackPrompt: true,
		}, nil
	default:
		if role, ok := strings.CutPrefix(data, payloadSetRole); ok {
			session.Role = role
			session.State = model.StateSetRoleSelectUsers
			if err := d.Sessions.Put(ctx, session); err != nil {
				return d.genericError(0), fmt.Errorf("failed to save session: %w", err)
			}
			return model.Reply{
				Text:        messages.RoleChosenEnterUsers.Format(d.lang, role),
				Edit:        true,
				TrackPrompt: true,
			}, nil
		}
	}
	d.deleteSession(ctx, evt)
	return model.Reply{Text: messages.UnknownCommand.Text(d.lang)}, nil
}

func (d *DialogUsecase) deleteRoleChosen(ctx context.Context, evt model.Event, session model.Session, role string) (model.Reply, error) {
	if len(session.Usernames) == 0 {
		d.deleteSession(ctx, evt)
		reply := d.genericError(0)
		reply.Edit = true
		return reply, errors.New("session has no pending usernames")
	}

	removed, malformed, err := d.Roles.RemoveFromMany(ctx, session.Usernames, role)
	if err != nil {
		d.deleteSession(ctx, evt)
		return d.genericError(0), fmt.Errorf("failed to remove role: %w", err)
	}

	var summary strings.Builder
	if len(removed) > 0 {
		summary.WriteString(messages.RoleRemovedFrom.Format(d.lang, role, strings.Join(removed, " ")))
	}
	if len(malformed) > 0 {
		summary.WriteString(messages.RoleRemoveFailedFor.Format(d.lang, strings.Join(malformed, " ")))
	}

	d.deleteSession(ctx, evt)
	return model.Reply{
		Text:    summary.String(),
		Edit:    true,
		Cleanup: []int{session.CommandMessageID},
	}, nil
}

func (d *DialogUsecase) removeRoleChosen(ctx context.Context, evt model.Event, session model.Session, role string) (model.Reply, error) {
	if err := d.Roles.RemoveRole(ctx, role); err != nil {
		d.deleteSession(ctx, evt)
		return d.genericError(0), fmt.Errorf("failed to remove role everywhere: %w", err)
	}
	d.Logger.Info("role removed",
		zap.String("session_id", session.ID.String()),
		zap.String("role", role),
		zap.Int64("user_id", evt.UserID))

	d.deleteSession(ctx, evt)
	return model.Reply{
		Text:    messages.RoleDeleted.Format(d.lang, role),
		Edit:    true,
		Cleanup: []int{session.CommandMessageID},
	}, nil
}

func (d *DialogUsecase) tagRoleChosen(ctx context.Context, evt model.Event, session model.Session, role string) (model.Reply, error) {
	members, err := d.Roles.Members(ctx, role)
	if err != nil {
		d.deleteSession(ctx, evt)
		return d.genericError(0), fmt.Errorf("failed to list members: %w", err)
	}

	var text string
	if len(members) > 0 {
		mentions := make([]string, 0, len(members))
		for _, member := range members {
			mentions = append(mentions, "@"+member)
		}
		text = messages.RoleMembers.Format(d.lang, role, strings.Join(mentions, " "))
	} else {
		text = messages.RoleHasNoMembers.Format(d.lang, role)
	}

	d.deleteSession(ctx, evt)
	// A fresh message, not an edit: mentions only notify on new
	// messages.
	return model.Reply{
		Text:           text,
		DeleteKeyboard: true,
		Cleanup:        []int{session.CommandMessageID},
	}, nil
}

func (d *DialogUsecase) assignRoleChosen(ctx context.Context, evt model.Event, session model.Session, role string) (model.Reply, error) {
	session.Role = strings.ToLower(role)
	session.State = model.StateAssignRoleConfirm
	if err := d.Sessions.Put(ctx, session); err != nil {
		return d.genericError(0), fmt.Errorf("failed to save session: %w", err)
	}
	return model.Reply{
		Text: messages.ConfirmSelfAssign.Format(d.lang, session.Role),
		Buttons: [][]model.Button{
			{{Label: messages.ButtonYes.Text(d.lang), Data: callbackAssignYes}},
			{{Label: messages.ButtonNo.Text(d.lang), Data: callbackAssignNo}},
		},
		Edit: true,
	}, nil
}

func (d *DialogUsecase) assignRoleConfirmed(ctx context.Context, evt model.Event, session model.Session, confirmed bool) (model.Reply, error) {
	defer d.deleteSession(ctx, evt)

	if !confirmed {
		return model.Reply{
			Text:    messages.SelfAssignCancelled.Text(d.lang),
			Edit:    true,
			Cleanup: []int{session.CommandMessageID},
		}, nil
	}
	if session.Role == "" {
		reply := d.genericError(0)
		reply.Edit = true
		return reply, errors.New("session has no pending role")
	}
	if evt.Username == "" {
		return model.Reply{
			Text:    messages.NoUsername.Text(d.lang),
			Edit:    true,
			Cleanup: []int{session.CommandMessageID},
		}, nil
	}

	if err := d.Roles.Assign(ctx, strings.ToLower(evt.Username), session.Role); err != nil {
		return d.genericError(0), fmt.Errorf("failed to assign role: %w", err)
	}
	return model.Reply{
		Text:    messages.SelfAssigned.Format(d.lang, session.Role),
		Edit:    true,
		Cleanup: []int{session.CommandMessageID},
	}, nil
}

// TrackPrompt records the ID of a prompt message the transport just
// sent, so the flow can clean it up on termination.
func (d *DialogUsecase) TrackPrompt(ctx context.Context, userID, chatID int64, messageID int) {
	session, err := d.Sessions.Get(ctx, userID, chatID)
	if err != nil {
		return
	}
	session.PromptMessageIDs = append(session.PromptMessageIDs, messageID)
	if err := d.Sessions.Put(ctx, session); err != nil {
		d.Logger.Warn("failed to track prompt message", zap.Error(err))
	}
}

// requireAdmin gates a flow on the invoker's chat membership status.
// A failed check aborts exactly like a negative one.
func (d *DialogUsecase) requireAdmin(ctx context.Context, evt model.Event, commandMessageID int) (model.Reply, bool) {
	isAdmin, err := d.Members.IsChatAdmin(ctx, evt.ChatID, evt.UserID)
	if err != nil {
		d.Logger.Warn("admin check failed",
			zap.Int64("chat_id", evt.ChatID),
			zap.Int64("user_id", evt.UserID),
			zap.Error(err))
		return model.Reply{
			Text:    messages.AdminCheckFailed.Text(d.lang),
			Cleanup: []int{commandMessageID},
		}, false
	}
	if !isAdmin {
		return model.Reply{
			Text:    messages.AdminsOnly.Text(d.lang),
			Cleanup: []int{commandMessageID},
		}, false
	}
	return model.Reply{}, true
}

// discard drops any prior session of the user: starting a command is
// last-writer-wins, there are no nested dialogues.
func (d *DialogUsecase) discard(ctx context.Context, evt model.Event) {
	d.deleteSession(ctx, evt)
}

func (d *DialogUsecase) deleteSession(ctx context.Context, evt model.Event) {
	if err := d.Sessions.Delete(ctx, evt.UserID, evt.ChatID); err != nil {
		d.Logger.Warn("failed to delete session",
			zap.Int64("user_id", evt.UserID),
			zap.Int64("chat_id", evt.ChatID),
			zap.Error(err))
	}
}

func (d *DialogUsecase) roleButtons(roles []string, payloadPrefix string, tailLabel local.TextSet, tailData string) [][]model.Button {
	rows := make([][]model.Button, 0, len(roles)+1)
	for _, role := range roles {
		rows = append(rows, []model.Button{{Label: role, Data: payloadPrefix + role}})
	}
	rows = append(rows, []model.Button{{Label: tailLabel.Text(d.lang), Data: tailData}})
	return rows
}

func (d *DialogUsecase) genericError(commandMessageID int) model.Reply {
	reply := model.Reply{Text: messages.GenericError.Text(d.lang)}
	if commandMessageID != 0 {
		reply.Cleanup = []int{commandMessageID}
	}
	return reply
}

func sessionCleanup(session model.Session) []int {
	var ids []int
	ids = append(ids, session.PromptMessageIDs...)
	if session.CommandMessageID != 0 {
		ids = append(ids, session.CommandMessageID)
	}
	return ids
}
