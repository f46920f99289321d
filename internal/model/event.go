package model

// Event is one inbound update as seen by the dialogue engine: a
// command, a plain-text message or a callback button press, already
// stripped of transport details.
type Event struct {
	UserID    int64
	ChatID    int64
	Username  string
	FirstName string
	MessageID int

	Text         string
	CallbackData string
}

// Button is one inline keyboard button: a visible label and the
// opaque callback payload it produces.
type Button struct {
	Label string
	Data  string
}

// Reply describes the outcome of one dialogue step. The transport
// layer renders it: sending or editing a message, attaching keyboards
// and performing best-effort cleanup of the listed message IDs.
type Reply struct {
	Text    string
	Buttons [][]Button

	// CommandKeyboard carries the persistent reply keyboard rows
	// shown by /start.
	CommandKeyboard [][]string

	// Edit replaces the text of the message the callback originated
	// from instead of sending a new one.
	Edit bool
	// DeleteKeyboard removes the originating keyboard message before
	// sending anything.
	DeleteKeyboard bool
	// TrackPrompt records the sent message ID in the session for
	// later cleanup.
	TrackPrompt bool

	// Cleanup lists message IDs to delete best-effort.
	Cleanup []int
}
