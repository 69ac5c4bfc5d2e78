package requests

// Входящее обновление Bot API. chat_member приходит только если метод
// getUpdates явно запросил этот тип в allowed_updates.
type Update struct {
	UpdateID      int64              `json:"update_id"`
	Message       *Message           `json:"message,omitempty"`
	CallbackQuery *CallbackQuery     `json:"callback_query,omitempty"`
	ChatMember    *ChatMemberUpdated `json:"chat_member,omitempty"`
}

type Message struct {
	MessageID int64  `json:"message_id"`
	Chat      *Chat  `json:"chat,omitempty"`
	From      *User  `json:"from,omitempty"`
	Text      string `json:"text,omitempty"`
}

type Chat struct {
	ID    int64  `json:"id"`
	Type  string `json:"type,omitempty"` // private|group|supergroup|channel
	Title string `json:"title,omitempty"`
}

type User struct {
	ID        int64  `json:"id"`
	IsBot     bool   `json:"is_bot,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	Username  string `json:"username,omitempty"`
}

type ChatMemberUpdated struct {
	Chat          Chat       `json:"chat"`
	From          User       `json:"from"`
	Date          int64      `json:"date"`
	OldChatMember ChatMember `json:"old_chat_member"`
	NewChatMember ChatMember `json:"new_chat_member"`
}

type ChatMember struct {
	User   User   `json:"user"`
	Status string `json:"status"`
	// Только для статуса restricted
	IsMember bool `json:"is_member,omitempty"`
}

const (
	STATUS_CREATOR       = "creator"
	STATUS_ADMINISTRATOR = "administrator"
	STATUS_MEMBER        = "member"
	STATUS_RESTRICTED    = "restricted"
	STATUS_LEFT          = "left"
	STATUS_KICKED        = "kicked"
)

// present — состоит ли участник в чате при данном статусе.
func (m ChatMember) present() bool {
	switch m.Status {
	case STATUS_CREATOR, STATUS_ADMINISTRATOR, STATUS_MEMBER:
		return true
	case STATUS_RESTRICTED:
		return m.IsMember
	default:
		return false
	}
}

// JoinTransition — переход "не состоял -> состоит".
func (u ChatMemberUpdated) JoinTransition() bool {
	return !u.OldChatMember.present() && u.NewChatMember.present()
}

type CallbackQuery struct {
	ID      string   `json:"id"`
	From    User     `json:"from"`
	Message *Message `json:"message,omitempty"`
	Data    string   `json:"data,omitempty"`
}

// Права участника в чате. Смена описания и закрепление сообщений
// остаются запрещены даже после подтверждения правил.
type ChatPermissions struct {
	CanSendMessages       bool `json:"can_send_messages"`
	CanSendMediaMessages  bool `json:"can_send_media_messages"`
	CanSendPolls          bool `json:"can_send_polls"`
	CanSendOtherMessages  bool `json:"can_send_other_messages"`
	CanAddWebPagePreviews bool `json:"can_add_web_page_previews"`
	CanChangeInfo         bool `json:"can_change_info"`
	CanInviteUsers        bool `json:"can_invite_users"`
	CanPinMessages        bool `json:"can_pin_messages"`
}

type InlineKeyboardMarkup struct {
	InlineKeyboard [][]InlineKeyboardButton `json:"inline_keyboard"`
}

type InlineKeyboardButton struct {
	Text         string `json:"text"`
	CallbackData string `json:"callback_data,omitempty"`
}
