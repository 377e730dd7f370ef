package bot

import (
	"context"
	"errors"
	"strings"
	"time"

	"offertracker/internal/bot/throttle"
	"offertracker/internal/domain/models"
	"offertracker/internal/services/analytics"
	"offertracker/internal/services/tracker"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
)

const (
	cbCountryPrefix = "country:"
	cbStatsPrefix   = "stats:"
	cbBackCountries = "back:countries"
)

const welcomeText = "👋 Привет! Я помогу быстро найти выгодные предложения по займам.\n\n" +
	"📍 Сначала выбери свою страну, чтобы показать актуальные офферы.\n" +
	"⚡ Оформление происходит на сайтах партнёров."

// API - часть tgbotapi.BotAPI, которой пользуется бот
type API interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

type Tracker interface {
	ListActiveOffers(ctx context.Context) ([]models.Offer, error)
	CreateShortLink(ctx context.Context, req tracker.RedirectRequest) (models.ShortLink, error)
	LogDelivery(ctx context.Context, rec tracker.DeliveryRecord) error
}

type Stats interface {
	Range(ctx context.Context, q analytics.RangeQuery) (analytics.Report, error)
	LastDays(ctx context.Context, n int) (analytics.Report, error)
	Today() time.Time
}

// TokenIssuer выдаёт админам JWT для HTTP API
type TokenIssuer interface {
	Issue(adminID int64) (string, time.Time, error)
}

type Settings struct {
	BaseURL  string // куда ведут кнопки офферов
	Salt     string
	AdminIDs []int64
	TopN     int         // сколько офферов показывать в отчёте
	Tokens   TokenIssuer // nil - команда /token недоступна
}

// Bot связывает Telegram с трекером и аналитикой
type Bot struct {
	api      API
	tracker  Tracker
	stats    Stats
	throttle throttle.Throttle
	settings Settings
	admins   map[int64]struct{}
	log      *zerolog.Logger
}

func New(api API, trk Tracker, stats Stats, thr throttle.Throttle, settings Settings, log *zerolog.Logger) (*Bot, error) {
	if api == nil {
		return nil, errors.New("telegram api cannot be nil")
	}
	if trk == nil || stats == nil {
		return nil, errors.New("tracker and stats cannot be nil")
	}
	if settings.Salt == "" {
		return nil, errors.New("user hash salt cannot be empty")
	}
	if thr == nil {
		thr = throttle.NewMemoryThrottle(0)
	}
	if settings.TopN <= 0 {
		settings.TopN = defaultTopN
	}
	if log == nil {
		nop := zerolog.Nop()
		log = &nop
	}

	settings.BaseURL = strings.TrimRight(settings.BaseURL, "/")

	admins := make(map[int64]struct{}, len(settings.AdminIDs))
	for _, id := range settings.AdminIDs {
		admins[id] = struct{}{}
	}

	return &Bot{
		api:      api,
		tracker:  trk,
		stats:    stats,
		throttle: thr,
		settings: settings,
		admins:   admins,
		log:      log,
	}, nil
}

// Start читает апдейты long polling'ом, пока не отменят ctx
func (b *Bot) Start(ctx context.Context) error {
	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60
	updates := b.api.GetUpdatesChan(updateConfig)

	b.log.Info().Msg("start polling updates")

	go func() {
		<-ctx.Done()
		b.api.StopReceivingUpdates()
	}()

	for update := range updates {
		b.HandleUpdate(ctx, update)
	}

	return nil
}

func (b *Bot) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil:
		if err := b.handleCallback(ctx, update.CallbackQuery); err != nil {
			b.log.Error().Err(err).Str("data", update.CallbackQuery.Data).Msg("handle callback")
		}
	case update.Message != nil:
		if update.Message.Chat == nil || !update.Message.Chat.IsPrivate() {
			return
		}
		if err := b.handleMessage(ctx, update.Message); err != nil {
			b.log.Error().Err(err).Msg("handle message")
		}
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) error {
	if msg.From == nil || !msg.IsCommand() {
		return nil
	}

	b.log.Debug().Int64("user", msg.From.ID).Str("command", msg.Command()).Msg("command received")

	switch msg.Command() {
	case "start":
		if !b.throttle.Allow(ctx, msg.From.ID) {
			return nil
		}
		return b.handleStart(ctx, msg)
	case "admin", "stats":
		return b.handleAdmin(ctx, msg)
	case "token":
		return b.handleToken(ctx, msg)
	}
	return nil
}

func (b *Bot) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) error {
	if cb.From == nil {
		return nil
	}

	switch {
	case strings.HasPrefix(cb.Data, cbStatsPrefix):
		return b.handleStats(ctx, cb, strings.TrimPrefix(cb.Data, cbStatsPrefix))
	case !b.throttle.Allow(ctx, cb.From.ID):
		return b.answer(cb, "")
	case strings.HasPrefix(cb.Data, cbCountryPrefix):
		return b.handleCountry(ctx, cb, strings.TrimPrefix(cb.Data, cbCountryPrefix))
	case cb.Data == cbBackCountries:
		return b.handleBack(ctx, cb)
	}
	return b.answer(cb, "")
}

func (b *Bot) handleStart(ctx context.Context, msg *tgbotapi.Message) error {
	remembered, _ := b.throttle.Country(ctx, msg.From.ID)

	reply := tgbotapi.NewMessage(msg.Chat.ID, welcomeText)
	reply.ReplyMarkup = countriesKeyboard(remembered)
	return b.deliver(ctx, msg.From.ID, reply, "start")
}

func (b *Bot) handleCountry(ctx context.Context, cb *tgbotapi.CallbackQuery, code string) error {
	country, err := models.ParseCountry(code)
	if err != nil {
		return b.answer(cb, "Неизвестная страна")
	}

	b.throttle.RememberCountry(ctx, cb.From.ID, country)

	markup, err := b.offersKeyboard(ctx, country, cb.From.ID)
	if err != nil {
		b.log.Error().Err(err).Msg("failed to build offers keyboard")
		_ = b.answer(cb, "Не получилось загрузить офферы, попробуйте позже")
		return err
	}

	text := "Страна: " + countryTitle(country) + "\n\nВыберите оффер:"
	if len(markup.InlineKeyboard) == 1 {
		text = "Страна: " + countryTitle(country) + "\n\nСейчас нет доступных предложений."
	}

	if err := b.editOrSend(ctx, cb, text, markup, "offers"); err != nil {
		return err
	}
	return b.answer(cb, "Готово")
}

func (b *Bot) handleBack(ctx context.Context, cb *tgbotapi.CallbackQuery) error {
	if err := b.editOrSend(ctx, cb, welcomeText, countriesKeyboard(""), "back"); err != nil {
		return err
	}
	return b.answer(cb, "Назад")
}

// editOrSend правит сообщение с клавиатурой, а если это не вышло, шлёт новое
func (b *Bot) editOrSend(ctx context.Context, cb *tgbotapi.CallbackQuery, text string, markup tgbotapi.InlineKeyboardMarkup, what string) error {
	if cb.Message != nil && cb.Message.Chat != nil {
		edit := tgbotapi.NewEditMessageTextAndMarkup(cb.Message.Chat.ID, cb.Message.MessageID, text, markup)
		_, err := b.api.Send(edit)
		if err == nil {
			return nil
		}
		b.log.Debug().Err(err).Msg("edit failed, sending a new message")
	}

	chatID := cb.From.ID
	if cb.Message != nil && cb.Message.Chat != nil {
		chatID = cb.Message.Chat.ID
	}

	reply := tgbotapi.NewMessage(chatID, text)
	reply.ReplyMarkup = markup
	return b.deliver(ctx, cb.From.ID, reply, what)
}

func (b *Bot) answer(cb *tgbotapi.CallbackQuery, text string) error {
	if _, err := b.api.Request(tgbotapi.NewCallback(cb.ID, text)); err != nil {
		return err
	}
	return nil
}

func (b *Bot) isAdmin(telegramID int64) bool {
	_, ok := b.admins[telegramID]
	return ok
}
