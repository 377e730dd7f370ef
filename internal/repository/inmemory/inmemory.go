package inmemory

import (
	"context"
	"sort"
	"sync"
	"time"

	"offertracker/internal/domain/models"
)

const initLastID = 0

// clickKey - ключ дедупликации (offer, user, day)
type clickKey struct {
	offer string
	user  string
	day   time.Time
}

// InmemoryStorage держит всё в памяти процесса.
// Проверка уникальности и вставка клика выполняются под одной блокировкой,
// поэтому параллельные клики одного ключа не дают двух строк.
type InmemoryStorage struct {
	mu sync.RWMutex

	offers     map[string]models.Offer
	users      map[string]models.User
	clicks     []models.Click
	clickKeys  map[clickKey]struct{}
	deliveries []models.Delivery
	shortLinks map[string]models.ShortLink

	lastClickID    int64
	lastDeliveryID int64
}

func NewStorage() *InmemoryStorage {
	return &InmemoryStorage{
		offers:         make(map[string]models.Offer),
		users:          make(map[string]models.User),
		clickKeys:      make(map[clickKey]struct{}),
		shortLinks:     make(map[string]models.ShortLink),
		lastClickID:    initLastID,
		lastDeliveryID: initLastID,
	}
}

func (m *InmemoryStorage) OfferGetBySlug(ctx context.Context, slug string) (models.Offer, error) {
	if err := ctx.Err(); err != nil {
		return models.Offer{}, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	offer, ok := m.offers[slug]
	if !ok {
		return models.Offer{}, models.ErrUnfound
	}
	return offer, nil
}

func (m *InmemoryStorage) OfferUpsert(ctx context.Context, offer models.Offer) (models.Offer, error) {
	if err := ctx.Err(); err != nil {
		return models.Offer{}, err
	}
	if offer.Slug == "" {
		return models.Offer{}, models.ErrInvalidData
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if offer.UpdatedAt.IsZero() {
		offer.UpdatedAt = time.Now().UTC()
	}

	if existing, ok := m.offers[offer.Slug]; ok {
		offer.CreatedAt = existing.CreatedAt
	} else {
		offer.CreatedAt = offer.UpdatedAt
	}

	m.offers[offer.Slug] = offer
	return offer, nil
}

func (m *InmemoryStorage) OfferListActive(ctx context.Context) ([]models.Offer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	offers := make([]models.Offer, 0, len(m.offers))
	for _, offer := range m.offers {
		if offer.Active {
			offers = append(offers, offer)
		}
	}

	sort.Slice(offers, func(i, j int) bool {
		if offers[i].CreatedAt.Equal(offers[j].CreatedAt) {
			return offers[i].Slug < offers[j].Slug
		}
		return offers[i].CreatedAt.Before(offers[j].CreatedAt)
	})

	return offers, nil
}

func (m *InmemoryStorage) UserTouch(ctx context.Context, id string, now time.Time) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}
	if id == "" {
		return models.User{}, models.ErrInvalidData
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	return m.touchLocked(id, now), nil
}

func (m *InmemoryStorage) touchLocked(id string, now time.Time) models.User {
	user, ok := m.users[id]
	if !ok {
		user = models.User{ID: id, FirstSeen: now}
	}
	user.LastSeen = now
	m.users[id] = user
	return user
}

func (m *InmemoryStorage) UserSetBlocked(ctx context.Context, id string, blocked bool, at time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[id]
	if !ok {
		return models.ErrUnfound
	}

	user.Blocked = blocked
	if blocked {
		user.BlockedAt = &at
	} else {
		user.BlockedAt = nil
	}
	m.users[id] = user
	return nil
}

func (m *InmemoryStorage) UserGet(ctx context.Context, id string) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.users[id]
	if !ok {
		return models.User{}, models.ErrUnfound
	}
	return user, nil
}

func (m *InmemoryStorage) ClickCreate(ctx context.Context, click models.Click) (models.Click, error) {
	if err := ctx.Err(); err != nil {
		return models.Click{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	offer, ok := m.offers[click.OfferSlug]
	if !ok {
		return models.Click{}, models.ErrUnfound
	}
	if !offer.Active {
		return models.Click{}, models.ErrInactive
	}

	if click.UserID != nil {
		key := clickKey{offer: click.OfferSlug, user: *click.UserID, day: click.Day}
		if _, exists := m.clickKeys[key]; exists {
			return models.Click{}, models.ErrConflict
		}
		m.clickKeys[key] = struct{}{}

		// ссылочная целостность: пользователь клика обязан существовать
		if _, ok := m.users[*click.UserID]; !ok {
			m.touchLocked(*click.UserID, click.TS)
		}
	}

	m.lastClickID++
	click.ID = m.lastClickID
	m.clicks = append(m.clicks, click)
	return click, nil
}

// Clicks возвращает копию лога кликов
func (m *InmemoryStorage) Clicks(ctx context.Context) ([]models.Click, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	clicks := make([]models.Click, len(m.clicks))
	copy(clicks, m.clicks)
	return clicks, nil
}

func (m *InmemoryStorage) DeliveryCreate(ctx context.Context, delivery models.Delivery) (models.Delivery, error) {
	if err := ctx.Err(); err != nil {
		return models.Delivery{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[delivery.UserID]; !ok {
		return models.Delivery{}, models.ErrUnfound
	}

	m.lastDeliveryID++
	delivery.ID = m.lastDeliveryID
	m.deliveries = append(m.deliveries, delivery)
	return delivery, nil
}

func (m *InmemoryStorage) Deliveries(ctx context.Context) ([]models.Delivery, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	deliveries := make([]models.Delivery, len(m.deliveries))
	copy(deliveries, m.deliveries)
	return deliveries, nil
}

func (m *InmemoryStorage) ShortLinkCreate(ctx context.Context, link models.ShortLink) (models.ShortLink, error) {
	if err := ctx.Err(); err != nil {
		return models.ShortLink{}, err
	}
	if link.ID == "" {
		return models.ShortLink{}, models.ErrInvalidData
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.shortLinks[link.ID]; exists {
		return models.ShortLink{}, models.ErrConflict
	}
	if _, ok := m.offers[link.OfferSlug]; !ok {
		return models.ShortLink{}, models.ErrUnfound
	}

	m.shortLinks[link.ID] = link
	return link, nil
}

func (m *InmemoryStorage) ShortLinkGet(ctx context.Context, id string) (models.ShortLink, error) {
	if err := ctx.Err(); err != nil {
		return models.ShortLink{}, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	link, ok := m.shortLinks[id]
	if !ok {
		return models.ShortLink{}, models.ErrUnfound
	}
	return link, nil
}

// ClicksByOfferDay считается по логу на каждый запрос, отдельных счётчиков нет
func (m *InmemoryStorage) ClicksByOfferDay(ctx context.Context, from, to time.Time, country models.Country) ([]models.DailyOfferClicks, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	type key struct {
		day   time.Time
		offer string
	}

	m.mu.RLock()
	counts := make(map[key]int64)
	for _, click := range m.clicks {
		if !m.matches(click, from, to, country) {
			continue
		}
		counts[key{day: click.Day, offer: click.OfferSlug}]++
	}
	m.mu.RUnlock()

	result := make([]models.DailyOfferClicks, 0, len(counts))
	for k, n := range counts {
		result = append(result, models.DailyOfferClicks{Day: k.day, OfferSlug: k.offer, Clicks: n})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Day.Equal(result[j].Day) {
			return result[i].OfferSlug < result[j].OfferSlug
		}
		return result[i].Day.Before(result[j].Day)
	})

	return result, nil
}

func (m *InmemoryStorage) ClicksTotalDay(ctx context.Context, from, to time.Time, country models.Country) ([]models.DailyClicks, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	counts := make(map[time.Time]int64)
	for _, click := range m.clicks {
		if !m.matches(click, from, to, country) {
			continue
		}
		counts[click.Day]++
	}
	m.mu.RUnlock()

	result := make([]models.DailyClicks, 0, len(counts))
	for day, n := range counts {
		result = append(result, models.DailyClicks{Day: day, Clicks: n})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Day.Before(result[j].Day)
	})

	return result, nil
}

func (m *InmemoryStorage) matches(click models.Click, from, to time.Time, country models.Country) bool {
	if click.Day.Before(from) || click.Day.After(to) {
		return false
	}
	return country == "" || click.Country == country
}

// WithinTx - в памяти транзакций нет, каждая операция атомарна сама по себе
func (m *InmemoryStorage) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (m *InmemoryStorage) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (m *InmemoryStorage) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.offers = make(map[string]models.Offer)
	m.users = make(map[string]models.User)
	m.clicks = nil
	m.clickKeys = make(map[clickKey]struct{})
	m.deliveries = nil
	m.shortLinks = make(map[string]models.ShortLink)
	m.lastClickID = initLastID
	m.lastDeliveryID = initLastID
	return nil
}
