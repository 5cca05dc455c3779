package dto

// TelegramUpdate is the subset of the Telegram Bot API update payload the
// webhook cares about.
type TelegramUpdate struct {
	UpdateID int64            `json:"update_id"`
	Message  *TelegramMessage `json:"message,omitempty"`
}

// TelegramMessage is an incoming chat message.
type TelegramMessage struct {
	MessageID int64         `json:"message_id"`
	From      *TelegramUser `json:"from,omitempty"`
	Chat      TelegramChat  `json:"chat"`
	Text      string        `json:"text"`
}

// TelegramUser identifies the message sender.
type TelegramUser struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	Username  string `json:"username,omitempty"`
}

// TelegramChat identifies the chat to reply into.
type TelegramChat struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}
