package bot

import (
	"context"
	"fmt"
	"strings"

	"github.com/alekseysmyk2022-design/sputnik-caravan-bot/bot/messages"
	"github.com/alekseysmyk2022-design/sputnik-caravan-bot/internal/config"
	"github.com/alekseysmyk2022-design/sputnik-caravan-bot/internal/logger"
	"github.com/alekseysmyk2022-design/sputnik-caravan-bot/internal/telegram/requests"

	"github.com/allegro/bigcache/v3"
	"github.com/google/uuid"
)

type (
	// API — методы Telegram, которые нужны обработчикам.
	API interface {
		SendMessage(ctx context.Context, chatID int64, text string, keyboard *requests.InlineKeyboardMarkup, disablePreview bool) (*requests.Message, error)
		EditMessageText(ctx context.Context, chatID, messageID int64, text string) error
		DeleteMessage(ctx context.Context, chatID, messageID int64) error
		RestrictChatMember(ctx context.Context, chatID, userID int64, permissions requests.ChatPermissions) error
		AnswerCallbackQuery(ctx context.Context, callbackID, text string, showAlert bool) error
	}

	Bot struct {
		api   API
		cnf   *config.Conf
		tpl   *messages.Templates
		cache *bigcache.BigCache
	}
)

func New(api API, cnf *config.Conf, tpl *messages.Templates, cache *bigcache.BigCache) *Bot {
	return &Bot{
		api:   api,
		cnf:   cnf,
		tpl:   tpl,
		cache: cache,
	}
}

// HandleUpdate направляет событие ровно одному обработчику. Ошибка
// обработчика пишется в лог и не останавливает приём событий.
func (b *Bot) HandleUpdate(ctx context.Context, upd requests.Update) {
	eventID := uuid.NewString()
	logger.Debug("Receive update:", eventID, upd)

	switch {
	case upd.ChatMember != nil:
		if !upd.ChatMember.JoinTransition() {
			return
		}
		if err := b.onJoin(ctx, upd.ChatMember); err != nil {
			logger.Warning("Ошибка обработки вступления", eventID, err)
		}

	case upd.CallbackQuery != nil:
		event, err := ParseCallback(upd.CallbackQuery.Data)
		if err != nil {
			logger.Warning("Пропуск нажатия кнопки:", eventID, err)
			return
		}
		switch event := event.(type) {
		case AcceptCallback:
			if err := b.onAccept(ctx, upd.CallbackQuery, event); err != nil {
				logger.Warning("Ошибка обработки подтверждения", eventID, err)
			}
		}

	case upd.Message != nil:
		if slashCommand(upd.Message.Text) != "/start" {
			return
		}
		if err := b.onStart(ctx, upd.Message); err != nil {
			logger.Warning("Ошибка ответа на /start", eventID, err)
		}
	}
}

// onJoin ограничивает нового участника и отправляет приветствие с
// кнопкой подтверждения правил.
func (b *Bot) onJoin(ctx context.Context, event *requests.ChatMemberUpdated) error {
	user := event.NewChatMember.User

	// Если это бот — игнорируем
	if user.IsBot {
		return nil
	}

	logger.Event("Вступил участник", user.ID, "в чат", event.Chat.ID)

	if err := b.api.RestrictChatMember(ctx, event.Chat.ID, user.ID, RestrictedPermissions); err != nil {
		return err
	}

	// участник перезашёл не подтвердившись — убираем старое приветствие
	if pending, ok := b.getPendingWelcome(event.Chat.ID, user.ID); ok {
		if err := b.api.DeleteMessage(ctx, event.Chat.ID, pending.MessageID); err != nil {
			logger.Warning("Не удалось удалить устаревшее приветствие", err)
		}
	}

	keyboard := &requests.InlineKeyboardMarkup{
		InlineKeyboard: [][]requests.InlineKeyboardButton{
			{{Text: b.tpl.AcceptButtonText(), CallbackData: AcceptCallbackData(user.ID)}},
		},
	}

	msg, err := b.api.SendMessage(ctx, event.Chat.ID, b.tpl.WelcomeText(user.FirstName, b.cnf.RulesLink), keyboard, true)
	if err != nil {
		return err
	}

	if msg != nil {
		b.setPendingWelcome(event.Chat.ID, user.ID, msg.MessageID)
	}
	return nil
}

// onAccept выдаёт полные права, если кнопку нажал тот же участник,
// для которого она была выпущена.
func (b *Bot) onAccept(ctx context.Context, callback *requests.CallbackQuery, event AcceptCallback) error {
	if callback.Message == nil || callback.Message.Chat == nil {
		// кнопка от слишком старого сообщения, Telegram не прислал контекст
		return fmt.Errorf("нажатие кнопки без исходного сообщения")
	}
	chatID := callback.Message.Chat.ID

	// Проверка: только сам участник может подтвердить
	if callback.From.ID != event.UserID {
		return b.api.AnswerCallbackQuery(ctx, callback.ID, b.tpl.ForeignAlertText(), true)
	}

	if err := b.api.RestrictChatMember(ctx, chatID, event.UserID, FullPermissions); err != nil {
		return err
	}

	logger.Event("Участник", event.UserID, "подтвердил правила в чате", chatID)

	// повторное нажатие даёт от Telegram "message is not modified"
	if err := b.api.EditMessageText(ctx, chatID, callback.Message.MessageID, b.tpl.AcceptedText(callback.From.FirstName)); err != nil {
		logger.Warning("Не удалось переписать приветствие", err)
	}

	b.dropPendingWelcome(chatID, event.UserID)

	return b.api.AnswerCallbackQuery(ctx, callback.ID, "", false)
}

func (b *Bot) onStart(ctx context.Context, msg *requests.Message) error {
	if msg.Chat == nil {
		return nil
	}
	_, err := b.api.SendMessage(ctx, msg.Chat.ID, b.tpl.StartReplyText(), nil, false)
	return err
}

// slashCommand выделяет команду из текста, отбрасывая аргументы и
// адресацию вида /start@BotName.
func slashCommand(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "/") {
		return ""
	}
	if i := strings.IndexAny(text, " \n\t"); i >= 0 {
		text = text[:i]
	}
	if at := strings.IndexByte(text, '@'); at >= 0 {
		text = text[:at]
	}
	return strings.ToLower(text)
}
