package bot

import (
	"github.com/alekseysmyk2022-design/sputnik-caravan-bot/internal/telegram/requests"
)

// Права: запретить всё, кроме чтения
var RestrictedPermissions = requests.ChatPermissions{
	CanSendMessages:       false,
	CanSendMediaMessages:  false,
	CanSendPolls:          false,
	CanSendOtherMessages:  false,
	CanAddWebPagePreviews: false,
	CanChangeInfo:         false,
	CanInviteUsers:        false,
	CanPinMessages:        false,
}

// Права: полный доступ (после подтверждения). Смена описания чата и
// закрепление сообщений остаются запрещены всегда.
var FullPermissions = requests.ChatPermissions{
	CanSendMessages:       true,
	CanSendMediaMessages:  true,
	CanSendPolls:          true,
	CanSendOtherMessages:  true,
	CanAddWebPagePreviews: true,
	CanChangeInfo:         false,
	CanInviteUsers:        true,
	CanPinMessages:        false,
}
