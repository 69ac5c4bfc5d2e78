package telegram

import (
	"context"
	"encoding/json"
	"time"

	"github.com/alekseysmyk2022-design/sputnik-caravan-bot/internal/telegram/requests"
)

// Типы обновлений, которые нужны боту. Без явного chat_member
// Telegram не присылает события вступления участников.
var allowedUpdates = []string{"message", "chat_member", "callback_query"}

func (c *Client) GetMe(ctx context.Context) (*requests.User, error) {
	result, err := c.Invoke(ctx, "getMe", nil)
	if err != nil {
		return nil, err
	}

	me := &requests.User{}
	if err = json.Unmarshal(result, me); err != nil {
		return nil, err
	}
	return me, nil
}

// GetUpdates ждёт новые события не дольше timeout секунд и возвращает
// их вместе со следующим offset.
func (c *Client) GetUpdates(ctx context.Context, offset int64, timeout int) ([]requests.Update, int64, error) {
	if timeout <= 0 {
		timeout = 30
	}

	data := requests.GetUpdatesRequest{
		Offset:         offset,
		Timeout:        timeout,
		AllowedUpdates: allowedUpdates,
	}

	reqCtx, cancel := context.WithTimeout(ctx, time.Duration(timeout+5)*time.Second)
	defer cancel()

	result, err := c.Invoke(reqCtx, "getUpdates", data)
	if err != nil {
		return nil, offset, err
	}

	var updates []requests.Update
	if err = json.Unmarshal(result, &updates); err != nil {
		return nil, offset, err
	}

	next := offset
	for _, u := range updates {
		if u.UpdateID >= next {
			next = u.UpdateID + 1
		}
	}
	return updates, next, nil
}

// Отправить сообщение в чат
func (c *Client) SendMessage(ctx context.Context, chatID int64, text string, keyboard *requests.InlineKeyboardMarkup, disablePreview bool) (*requests.Message, error) {
	data := requests.SendMessageRequest{
		ChatID:                chatID,
		Text:                  text,
		ParseMode:             "HTML",
		DisableWebPagePreview: disablePreview,
		ReplyMarkup:           keyboard,
	}

	result, err := c.Invoke(ctx, "sendMessage", data)
	if err != nil {
		return nil, err
	}

	msg := &requests.Message{}
	if err = json.Unmarshal(result, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// Заменить текст сообщения. Клавиатура при этом снимается.
func (c *Client) EditMessageText(ctx context.Context, chatID, messageID int64, text string) error {
	data := requests.EditMessageTextRequest{
		ChatID:    chatID,
		MessageID: messageID,
		Text:      text,
		ParseMode: "HTML",
	}

	_, err := c.Invoke(ctx, "editMessageText", data)
	return err
}

func (c *Client) DeleteMessage(ctx context.Context, chatID, messageID int64) error {
	data := requests.DeleteMessageRequest{
		ChatID:    chatID,
		MessageID: messageID,
	}

	_, err := c.Invoke(ctx, "deleteMessage", data)
	return err
}

// Применить участнику набор прав в чате
func (c *Client) RestrictChatMember(ctx context.Context, chatID, userID int64, permissions requests.ChatPermissions) error {
	data := requests.RestrictChatMemberRequest{
		ChatID:      chatID,
		UserID:      userID,
		Permissions: permissions,
	}

	_, err := c.Invoke(ctx, "restrictChatMember", data)
	return err
}

// Ответить на нажатие inline кнопки. С showAlert пользователь видит
// всплывающее предупреждение, без него индикатор ожидания просто гаснет.
func (c *Client) AnswerCallbackQuery(ctx context.Context, callbackID, text string, showAlert bool) error {
	data := requests.AnswerCallbackQueryRequest{
		CallbackQueryID: callbackID,
		Text:            text,
		ShowAlert:       showAlert,
	}

	_, err := c.Invoke(ctx, "answerCallbackQuery", data)
	return err
}
