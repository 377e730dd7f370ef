package bot

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"offertracker/internal/domain/models"
	"offertracker/internal/identity"
	"offertracker/internal/services/tracker"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// ClassifySendError переводит ответ Telegram в исход доставки.
// Второе значение - подробности для лога, пустые при успехе.
func ClassifySendError(err error) (models.DeliveryEvent, string) {
	if err == nil {
		return models.DeliveryOK, ""
	}

	apiErr, ok := asAPIError(err)
	if !ok {
		return models.DeliveryOther, err.Error()
	}

	switch {
	case apiErr.Code == http.StatusForbidden:
		// bot was blocked by the user, user is deactivated
		return models.DeliveryBlocked, apiErr.Message
	case apiErr.Code == http.StatusBadRequest && strings.Contains(strings.ToLower(apiErr.Message), "chat not found"):
		return models.DeliveryChatNotFound, apiErr.Message
	}
	return models.DeliveryOther, apiErr.Error()
}

func asAPIError(err error) (tgbotapi.Error, bool) {
	var ptr *tgbotapi.Error
	if errors.As(err, &ptr) && ptr != nil {
		return *ptr, true
	}
	var val tgbotapi.Error
	if errors.As(err, &val) {
		return val, true
	}
	return tgbotapi.Error{}, false
}

// deliver отправляет сообщение пользователю и пишет исход в лог доставок.
// Ошибка записи исхода только логируется, отправку она не ломает.
func (b *Bot) deliver(ctx context.Context, telegramID int64, msg tgbotapi.Chattable, what string) error {
	_, sendErr := b.api.Send(msg)

	event, detail := ClassifySendError(sendErr)
	deliveryContext := what
	if detail != "" {
		deliveryContext = what + ": " + detail
	}

	err := b.tracker.LogDelivery(ctx, tracker.DeliveryRecord{
		User:    identity.Pseudonym(telegramID, b.settings.Salt),
		Event:   string(event),
		Context: deliveryContext,
	})
	if err != nil {
		b.log.Warn().Err(err).Str("event", string(event)).Msg("failed to log delivery")
	}

	if sendErr != nil {
		b.log.Warn().Err(sendErr).Str("event", string(event)).Str("context", what).Msg("message not delivered")
	}
	return sendErr
}
