package tracker

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"net/url"
	"strings"
	"time"

	"offertracker/internal/domain/models"
	"offertracker/internal/identity"

	"github.com/rs/zerolog"
)

/*
Storage - всё, что трекер требует от хранилища.
Уникальность клика (offer, user, day) обеспечивает само хранилище:
ClickCreate возвращает models.ErrConflict, если клик за день уже посчитан.
*/

//go:generate mockgen -source=tracker.go -destination=../../mocks/mock_tracker.go -package=mocks
type Storage interface {
	OfferGetBySlug(ctx context.Context, slug string) (models.Offer, error)
	OfferUpsert(ctx context.Context, offer models.Offer) (models.Offer, error)
	OfferListActive(ctx context.Context) ([]models.Offer, error)

	UserTouch(ctx context.Context, id string, now time.Time) (models.User, error)
	UserSetBlocked(ctx context.Context, id string, blocked bool, at time.Time) error

	ClickCreate(ctx context.Context, click models.Click) (models.Click, error)
	DeliveryCreate(ctx context.Context, delivery models.Delivery) (models.Delivery, error)

	ShortLinkCreate(ctx context.Context, link models.ShortLink) (models.ShortLink, error)
	ShortLinkGet(ctx context.Context, id string) (models.ShortLink, error)

	Ping(ctx context.Context) error
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// OfferCache - необязательный кеш офферов по slug, источником правды остаётся Storage
type OfferCache interface {
	Get(slug string) (models.Offer, bool)
	Set(offer models.Offer)
	Invalidate(slug string)
}

type Settings struct {
	Salt     string
	Location *time.Location // таймзона, в которой считаются календарные дни
	Cache    OfferCache
}

type (
	RedirectRequest struct {
		Slug    string
		Country string
		User    string // псевдоним, сырой id или пусто
	}

	RedirectResult struct {
		URL     string
		Counted bool // false - клик за этот день уже был
	}

	DeliveryRecord struct {
		User    string
		Event   string
		Context string
	}
)

// Tracker реализует запись кликов, лог доставок и администрирование офферов
type Tracker struct {
	storage Storage
	cache   OfferCache
	salt    string
	loc     *time.Location
	log     *zerolog.Logger
	now     func() time.Time
}

func NewTracker(storage Storage, settings Settings, log *zerolog.Logger) (*Tracker, error) {
	if storage == nil {
		return nil, errors.New("storage cannot be nil")
	}
	if settings.Salt == "" {
		return nil, errors.New("user hash salt cannot be empty")
	}
	if log == nil {
		nop := zerolog.Nop()
		log = &nop
	}

	loc := settings.Location
	if loc == nil {
		loc = time.UTC
	}

	cache := settings.Cache
	if cache == nil {
		cache = noopCache{}
	}

	return &Tracker{
		storage: storage,
		cache:   cache,
		salt:    settings.Salt,
		loc:     loc,
		log:     log,
		now:     func() time.Time { return time.Now().UTC() },
	}, nil
}

// Redirect записывает клик и возвращает URL оффера.
// Повторный клик того же пользователя за день не считается, но URL всё равно возвращается.
func (s *Tracker) Redirect(ctx context.Context, req RedirectRequest) (RedirectResult, error) {
	country, err := models.ParseCountry(req.Country)
	if err != nil {
		return RedirectResult{}, fmt.Errorf("%w: unsupported country %q", models.ErrInvalidData, req.Country)
	}

	userID, err := identity.Normalize(req.User, s.salt)
	if err != nil {
		return RedirectResult{}, err
	}

	offer, err := s.resolveOffer(ctx, req.Slug)
	if err != nil {
		return RedirectResult{}, err
	}
	if !offer.Active {
		return RedirectResult{}, fmt.Errorf("%w: %s", models.ErrInactive, offer.Slug)
	}

	now := s.now()
	click := models.Click{
		TS:        now,
		Day:       models.DayOf(now, s.loc),
		OfferSlug: offer.Slug,
		Country:   country,
	}

	if userID != "" {
		click.UserID = &userID
		s.touchUser(ctx, userID, now)
	}

	_, err = s.storage.ClickCreate(ctx, click)
	switch {
	case err == nil:
		return RedirectResult{URL: offer.URL, Counted: true}, nil
	case errors.Is(err, models.ErrConflict):
		s.log.Debug().
			Str("offer", offer.Slug).
			Str("user", userID).
			Time("day", click.Day).
			Msg("click already counted for the day")
		return RedirectResult{URL: offer.URL, Counted: false}, nil
	case errors.Is(err, models.ErrInactive), errors.Is(err, models.ErrUnfound):
		// кэш отстал от каталога: оффер выключили или удалили в обход трекера
		s.cache.Invalidate(offer.Slug)
		return RedirectResult{}, fmt.Errorf("offer %s not available: %w", offer.Slug, err)
	default:
		return RedirectResult{}, fmt.Errorf("failed to record click: %w", err)
	}
}

// LogDelivery дописывает исход отправки сообщения пользователю
func (s *Tracker) LogDelivery(ctx context.Context, rec DeliveryRecord) error {
	userID, err := identity.Normalize(rec.User, s.salt)
	if err != nil {
		return err
	}
	if userID == "" {
		return fmt.Errorf("%w: delivery requires a user", models.ErrInvalidData)
	}

	event, deliveryContext := models.ParseDeliveryEvent(rec.Event, rec.Context)
	now := s.now()

	err = s.storage.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.storage.UserTouch(ctx, userID, now); err != nil {
			return fmt.Errorf("failed to touch user: %w", err)
		}

		if _, err := s.storage.DeliveryCreate(ctx, models.Delivery{
			TS:      now,
			UserID:  userID,
			Event:   event,
			Context: deliveryContext,
		}); err != nil {
			return fmt.Errorf("failed to append delivery: %w", err)
		}

		switch event {
		case models.DeliveryBlocked:
			return s.storage.UserSetBlocked(ctx, userID, true, now)
		case models.DeliveryOK:
			return s.storage.UserSetBlocked(ctx, userID, false, now)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to log delivery: %w", err)
	}

	return nil
}

// UpsertOffer создаёт оффер или перезаписывает title/url/active существующего
func (s *Tracker) UpsertOffer(ctx context.Context, offer models.Offer) (models.Offer, error) {
	offer.Slug = strings.TrimSpace(offer.Slug)
	offer.Title = strings.TrimSpace(offer.Title)

	if offer.Slug == "" || offer.Title == "" {
		return models.Offer{}, fmt.Errorf("%w: slug and title are required", models.ErrInvalidData)
	}
	if !isHTTPURL(offer.URL) {
		return models.Offer{}, fmt.Errorf("%w: offer url must be absolute http(s)", models.ErrInvalidData)
	}

	offer.UpdatedAt = s.now()

	stored, err := s.storage.OfferUpsert(ctx, offer)
	s.cache.Invalidate(offer.Slug)
	if err != nil {
		return models.Offer{}, fmt.Errorf("failed to upsert offer: %w", err)
	}

	return stored, nil
}

// ListActiveOffers - каталог для бота, неактивные офферы не показываем
func (s *Tracker) ListActiveOffers(ctx context.Context) ([]models.Offer, error) {
	offers, err := s.storage.OfferListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list offers: %w", err)
	}
	return offers, nil
}

// CreateShortLink выдаёт короткий алиас для /r/{slug}?c=..&u=..
func (s *Tracker) CreateShortLink(ctx context.Context, req RedirectRequest) (models.ShortLink, error) {
	country, err := models.ParseCountry(req.Country)
	if err != nil {
		return models.ShortLink{}, fmt.Errorf("%w: unsupported country %q", models.ErrInvalidData, req.Country)
	}

	userID, err := identity.Normalize(req.User, s.salt)
	if err != nil {
		return models.ShortLink{}, err
	}

	offer, err := s.resolveOffer(ctx, req.Slug)
	if err != nil {
		return models.ShortLink{}, err
	}

	for i := 0; i < maxAttempts; i++ {
		link, err := s.storage.ShortLinkCreate(ctx, models.ShortLink{
			ID:        generateRandomToken(),
			OfferSlug: offer.Slug,
			Country:   country,
			UserID:    userID,
			CreatedAt: s.now(),
		})
		if errors.Is(err, models.ErrConflict) {
			continue
		}
		if err != nil {
			return models.ShortLink{}, fmt.Errorf("failed to create short link: %w", err)
		}
		return link, nil
	}

	return models.ShortLink{}, errors.New("failed to generate unique short link id after several attempts")
}

func (s *Tracker) ResolveShortLink(ctx context.Context, id string) (models.ShortLink, error) {
	if id == "" {
		return models.ShortLink{}, models.ErrInvalidData
	}

	link, err := s.storage.ShortLinkGet(ctx, id)
	if err != nil {
		return models.ShortLink{}, fmt.Errorf("failed to get short link: %w", err)
	}
	return link, nil
}

// PingDataBase проверяет соединение с хранилищем
func (s *Tracker) PingDataBase(ctx context.Context) error {
	if err := s.storage.Ping(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

func (s *Tracker) resolveOffer(ctx context.Context, slug string) (models.Offer, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return models.Offer{}, fmt.Errorf("%w: empty offer slug", models.ErrInvalidData)
	}

	// выключенный оффер из кэша перепроверяем в хранилище, его могли включить обратно
	if offer, ok := s.cache.Get(slug); ok && offer.Active {
		return offer, nil
	}

	offer, err := s.storage.OfferGetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, models.ErrUnfound) {
			return models.Offer{}, fmt.Errorf("%w: offer %s", models.ErrUnfound, slug)
		}
		return models.Offer{}, fmt.Errorf("failed to get offer: %w", err)
	}

	s.cache.Set(offer)
	return offer, nil
}

// touchUser - best effort, клик не должен падать из-за last_seen
func (s *Tracker) touchUser(ctx context.Context, userID string, now time.Time) {
	if _, err := s.storage.UserTouch(ctx, userID, now); err != nil {
		s.log.Warn().Err(err).Str("user", userID).Msg("failed to touch user")
	}
}

func isHTTPURL(raw string) bool {
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

type noopCache struct{}

func (noopCache) Get(string) (models.Offer, bool) { return models.Offer{}, false }
func (noopCache) Set(models.Offer)                {}
func (noopCache) Invalidate(string)               {}

const (
	maxAttempts  = 10
	tokenLength  = 8
	tokenLetters = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

func generateRandomToken() string {
	b := make([]byte, tokenLength)
	letterCount := big.NewInt(int64(len(tokenLetters)))

	for i := range b {
		n, _ := rand.Int(rand.Reader, letterCount)
		b[i] = tokenLetters[n.Int64()]
	}
	return string(b)
}
