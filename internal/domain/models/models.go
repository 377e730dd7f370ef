package models

import (
	"errors"
	"strings"
	"time"
)

type (
	Offer struct {
		Slug      string // стабильный ключ оффера
		Title     string
		URL       string // куда редиректим
		Active    bool   // soft disable
		CreatedAt time.Time
		UpdatedAt time.Time
	}

	User struct {
		ID        string // псевдоним: sha256(platform id + salt)
		FirstSeen time.Time
		LastSeen  time.Time
		Blocked   bool
		BlockedAt *time.Time
	}

	Click struct {
		ID        int64
		TS        time.Time
		Day       time.Time // календарный день TS в таймзоне отчётов, 00:00 UTC
		OfferSlug string
		Country   Country
		UserID    *string // nil - анонимный клик
	}

	Delivery struct {
		ID      int64
		TS      time.Time
		UserID  string
		Event   DeliveryEvent
		Context string
	}

	ShortLink struct {
		ID        string
		OfferSlug string
		Country   Country
		UserID    string // может быть пустым
		CreatedAt time.Time
	}
)

// Агрегаты поверх лога кликов
type (
	DailyOfferClicks struct {
		Day       time.Time
		OfferSlug string
		Clicks    int64
	}

	DailyClicks struct {
		Day    time.Time
		Clicks int64
	}

	OfferClicks struct {
		OfferSlug string
		Clicks    int64
	}
)

type Country string

const (
	CountryRU Country = "RU"
	CountryKZ Country = "KZ"
)

// SupportedCountries в порядке показа в боте.
var SupportedCountries = []Country{CountryRU, CountryKZ}

func ParseCountry(raw string) (Country, error) {
	c := Country(strings.ToUpper(strings.TrimSpace(raw)))
	if !c.Valid() {
		return "", ErrInvalidData
	}
	return c, nil
}

func (c Country) Valid() bool {
	switch c {
	case CountryRU, CountryKZ:
		return true
	}
	return false
}

type DeliveryEvent string

const (
	DeliveryOK           DeliveryEvent = "ok"
	DeliveryBlocked      DeliveryEvent = "blocked"
	DeliveryChatNotFound DeliveryEvent = "chat_not_found"
	DeliveryOther        DeliveryEvent = "other"
)

// ParseDeliveryEvent never rejects an outcome: anything unknown becomes
// DeliveryOther and the raw value is kept in front of the context.
func ParseDeliveryEvent(raw, context string) (DeliveryEvent, string) {
	switch ev := DeliveryEvent(strings.ToLower(strings.TrimSpace(raw))); ev {
	case DeliveryOK, DeliveryBlocked, DeliveryChatNotFound, DeliveryOther:
		return ev, context
	}

	if context == "" {
		return DeliveryOther, raw
	}
	return DeliveryOther, raw + ": " + context
}

// DayOf возвращает календарный день ts в loc, нормализованный к 00:00 UTC
func DayOf(ts time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := ts.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var (
	ErrInvalidData      = errors.New("invalid input data")
	ErrUnfound          = errors.New("unfound data")
	ErrInactive         = errors.New("offer is inactive")
	ErrConflict         = errors.New("duplicate record")
	ErrStoreUnavailable = errors.New("store unavailable")
)
