package bot

import (
	"encoding/json"
	"errors"
	"strconv"

	"github.com/alekseysmyk2022-design/sputnik-caravan-bot/internal/logger"

	"github.com/allegro/bigcache/v3"
)

// Запись о ещё не подтверждённом приветствии. Кеш не является
// источником истины: подтверждение работает и без записи, payload
// кнопки несёт всё необходимое. Запись нужна только чтобы убрать
// устаревшее приветствие, если участник перезашёл не подтвердившись.
type pendingWelcome struct {
	MessageID int64 `json:"message_id"`
}

func pendingKey(chatID, userID int64) string {
	return strconv.FormatInt(userID, 10) + ":" + strconv.FormatInt(chatID, 10)
}

func (b *Bot) getPendingWelcome(chatID, userID int64) (pendingWelcome, bool) {
	var pending pendingWelcome

	data, err := b.cache.Get(pendingKey(chatID, userID))
	if err != nil {
		if !errors.Is(err, bigcache.ErrEntryNotFound) {
			logger.Warning("Ошибка чтения приветствия из кеша", err)
		}
		return pending, false
	}

	if err = json.Unmarshal(data, &pending); err != nil {
		logger.Warning("Ошибка декодирования приветствия из кеша", err)
		return pending, false
	}

	return pending, true
}

func (b *Bot) setPendingWelcome(chatID, userID, messageID int64) {
	data, err := json.Marshal(pendingWelcome{MessageID: messageID})
	if err != nil {
		logger.Warning("Ошибка кодирования приветствия для кеша", err)
		return
	}

	if err = b.cache.Set(pendingKey(chatID, userID), data); err != nil {
		logger.Warning("Ошибка записи приветствия в кеш", err)
	}
}

func (b *Bot) dropPendingWelcome(chatID, userID int64) {
	err := b.cache.Delete(pendingKey(chatID, userID))
	if err != nil && !errors.Is(err, bigcache.ErrEntryNotFound) {
		logger.Warning("Ошибка удаления приветствия из кеша", err)
	}
}
