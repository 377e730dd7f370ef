package bot

import (
	"context"
	"errors"
	"fmt"

	"offertracker/internal/services/analytics"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const defaultTopN = 10

type statsPeriod struct {
	key   string
	label string
	title string
	days  int // 0 - за всё время
}

var statsPeriods = []statsPeriod{
	{key: "1", label: "1 день", title: "За 1 день", days: 1},
	{key: "7", label: "7 дней", title: "За 7 дней", days: 7},
	{key: "30", label: "30 дней", title: "За 30 дней", days: 30},
	{key: "all", label: "Всё время", title: "За всё время", days: 0},
}

func findPeriod(key string) (statsPeriod, bool) {
	for _, p := range statsPeriods {
		if p.key == key {
			return p, true
		}
	}
	return statsPeriod{}, false
}

func (b *Bot) handleAdmin(ctx context.Context, msg *tgbotapi.Message) error {
	if !b.isAdmin(msg.From.ID) {
		return b.deliver(ctx, msg.From.ID, tgbotapi.NewMessage(msg.Chat.ID, "Нет доступа."), "admin_denied")
	}

	reply := tgbotapi.NewMessage(msg.Chat.ID, "Выбери период статистики посещения:")
	reply.ReplyMarkup = periodsKeyboard()
	return b.deliver(ctx, msg.From.ID, reply, "admin")
}

func (b *Bot) handleStats(ctx context.Context, cb *tgbotapi.CallbackQuery, key string) error {
	if !b.isAdmin(cb.From.ID) {
		alert := tgbotapi.NewCallbackWithAlert(cb.ID, "Нет доступа")
		_, err := b.api.Request(alert)
		return err
	}

	period, ok := findPeriod(key)
	if !ok {
		return b.answer(cb, "")
	}

	if err := b.answer(cb, "Собираю статистику…"); err != nil {
		b.log.Debug().Err(err).Msg("failed to answer callback")
	}

	chatID := cb.From.ID
	if cb.Message != nil && cb.Message.Chat != nil {
		chatID = cb.Message.Chat.ID
	}

	report, err := b.stats.LastDays(ctx, period.days)
	if err != nil {
		b.log.Error().Err(err).Str("period", period.key).Msg("failed to build stats report")
		return b.deliver(ctx, cb.From.ID, tgbotapi.NewMessage(chatID, "Не смог получить статистику, попробуйте позже."), "stats_error")
	}

	text := analytics.FormatReport(period.title, report, b.settings.TopN)
	return b.deliver(ctx, cb.From.ID, tgbotapi.NewMessage(chatID, text), "stats")
}

// handleToken выдаёт админу временный токен для PUT /admin/offers
func (b *Bot) handleToken(ctx context.Context, msg *tgbotapi.Message) error {
	if !b.isAdmin(msg.From.ID) {
		return b.deliver(ctx, msg.From.ID, tgbotapi.NewMessage(msg.Chat.ID, "Нет доступа."), "admin_denied")
	}
	if b.settings.Tokens == nil {
		return b.deliver(ctx, msg.From.ID, tgbotapi.NewMessage(msg.Chat.ID, "Выдача токенов не настроена."), "token")
	}

	token, expires, err := b.settings.Tokens.Issue(msg.From.ID)
	if err != nil {
		b.log.Error().Err(err).Int64("admin", msg.From.ID).Msg("failed to issue admin token")
		return b.deliver(ctx, msg.From.ID, tgbotapi.NewMessage(msg.Chat.ID, "Не получилось выдать токен."), "token_error")
	}

	text := fmt.Sprintf("Токен для админского API, действует до %s UTC:\n\nAuthorization: Bearer %s",
		expires.UTC().Format("2006-01-02 15:04"), token)
	b.log.Info().Int64("admin", msg.From.ID).Time("expires", expires).Msg("admin token issued")
	return b.deliver(ctx, msg.From.ID, tgbotapi.NewMessage(msg.Chat.ID, text), "token")
}

// SendDailyReport шлёт всем админам сводку за вчерашний день
func (b *Bot) SendDailyReport(ctx context.Context) error {
	if len(b.admins) == 0 {
		return nil
	}

	yesterday := b.stats.Today().AddDate(0, 0, -1)
	report, err := b.stats.Range(ctx, analytics.RangeQuery{From: yesterday, To: yesterday})
	if err != nil {
		return fmt.Errorf("failed to build daily report: %w", err)
	}

	text := analytics.FormatReport("Ежедневный отчёт", report, b.settings.TopN)

	var errs []error
	for _, id := range b.settings.AdminIDs {
		if err := b.deliver(ctx, id, tgbotapi.NewMessage(id, text), "daily_report"); err != nil {
			errs = append(errs, fmt.Errorf("admin %d: %w", id, err))
		}
	}

	b.log.Info().Int("admins", len(b.settings.AdminIDs)).Int("failed", len(errs)).Msg("daily report sent")
	return errors.Join(errs...)
}
