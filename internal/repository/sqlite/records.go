package sqlite

import (
	"time"

	"offertracker/internal/domain/models"
)

// day хранится строкой YYYY-MM-DD: сравнение и группировка идут по тексту
const dayLayout = "2006-01-02"

type offerRecord struct {
	Slug      string    `gorm:"primaryKey"`
	Title     string    `gorm:"not null"`
	URL       string    `gorm:"column:url;not null"`
	Active    bool      `gorm:"not null"` // без default: иначе gorm не пишет false
	CreatedAt time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false"`
}

func (offerRecord) TableName() string { return "offers" }

type userRecord struct {
	Identifier string `gorm:"primaryKey"`
	FirstSeen  time.Time
	LastSeen   time.Time
	Blocked    bool `gorm:"not null;default:false"`
	BlockedAt  *time.Time
}

func (userRecord) TableName() string { return "users" }

// clickRecord: один засчитанный клик на (offer, user, day), анонимные клики не ограничены
type clickRecord struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	TS        time.Time `gorm:"column:ts;not null"`
	Day       string    `gorm:"not null;index:idx_clicks_day;uniqueIndex:ux_clicks_offer_user_day,where:user_ref IS NOT NULL,priority:3"`
	OfferSlug string    `gorm:"not null;uniqueIndex:ux_clicks_offer_user_day,priority:1"`
	Country   string    `gorm:"type:char(2);not null;check:chk_clicks_country,country IN ('RU','KZ')"`
	UserRef   *string   `gorm:"uniqueIndex:ux_clicks_offer_user_day,priority:2"`
}

func (clickRecord) TableName() string { return "clicks" }

type deliveryRecord struct {
	ID      int64     `gorm:"primaryKey;autoIncrement"`
	TS      time.Time `gorm:"column:ts;not null"`
	UserRef string    `gorm:"not null;index"`
	Event   string    `gorm:"not null;check:chk_deliveries_event,event IN ('ok','blocked','chat_not_found','other')"`
	Context string    `gorm:"not null;default:''"`
}

func (deliveryRecord) TableName() string { return "deliveries" }

type shortLinkRecord struct {
	ID        string    `gorm:"primaryKey;size:16"`
	OfferSlug string    `gorm:"not null"`
	Country   string    `gorm:"type:char(2);not null"`
	UserRef   string    `gorm:"not null;default:''"`
	CreatedAt time.Time `gorm:"autoCreateTime:false"`
}

func (shortLinkRecord) TableName() string { return "short_links" }

func offerFromRecord(r offerRecord) models.Offer {
	return models.Offer{
		Slug:      r.Slug,
		Title:     r.Title,
		URL:       r.URL,
		Active:    r.Active,
		CreatedAt: r.CreatedAt.UTC(),
		UpdatedAt: r.UpdatedAt.UTC(),
	}
}

func userFromRecord(r userRecord) models.User {
	return models.User{
		ID:        r.Identifier,
		FirstSeen: r.FirstSeen.UTC(),
		LastSeen:  r.LastSeen.UTC(),
		Blocked:   r.Blocked,
		BlockedAt: r.BlockedAt,
	}
}

func shortLinkFromRecord(r shortLinkRecord) models.ShortLink {
	return models.ShortLink{
		ID:        r.ID,
		OfferSlug: r.OfferSlug,
		Country:   models.Country(r.Country),
		UserID:    r.UserRef,
		CreatedAt: r.CreatedAt.UTC(),
	}
}

func formatDay(day time.Time) string {
	return day.UTC().Format(dayLayout)
}

func parseDay(raw string) (time.Time, error) {
	return time.ParseInLocation(dayLayout, raw, time.UTC)
}
