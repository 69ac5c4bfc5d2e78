package bot

import (
	"fmt"
	"strconv"
	"strings"
)

const acceptCallbackKind = "accept"

type (
	// Callback — разобранный payload inline кнопки.
	Callback interface {
		isCallback()
	}

	// AcceptCallback — подтверждение правил участником UserID.
	AcceptCallback struct {
		UserID int64
	}
)

func (AcceptCallback) isCallback() {}

// AcceptCallbackData собирает payload кнопки подтверждения.
func AcceptCallbackData(userID int64) string {
	return fmt.Sprintf("%s_%d", acceptCallbackKind, userID)
}

// ParseCallback разбирает payload кнопки в типизированное событие.
// Кривой payload это ошибка, а не падение обработчика.
func ParseCallback(data string) (Callback, error) {
	kind, payload, found := strings.Cut(data, "_")
	if !found {
		return nil, fmt.Errorf("неизвестный payload кнопки: %q", data)
	}

	switch kind {
	case acceptCallbackKind:
		userID, err := strconv.ParseInt(payload, 10, 64)
		if err != nil || userID <= 0 {
			return nil, fmt.Errorf("некорректный идентификатор участника в payload %q", data)
		}
		return AcceptCallback{UserID: userID}, nil
	}

	return nil, fmt.Errorf("неизвестный payload кнопки: %q", data)
}
