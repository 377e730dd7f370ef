package sqlite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"offertracker/internal/domain/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func (s *SQLiteStorage) OfferGetBySlug(ctx context.Context, slug string) (models.Offer, error) {
	var rec offerRecord
	if err := s.conn(ctx).Where("slug = ?", slug).First(&rec).Error; err != nil {
		return models.Offer{}, fmt.Errorf("find offer: %w", classifyError(err))
	}
	return offerFromRecord(rec), nil
}

func (s *SQLiteStorage) OfferUpsert(ctx context.Context, offer models.Offer) (models.Offer, error) {
	if offer.Slug == "" || offer.UpdatedAt.IsZero() {
		return models.Offer{}, models.ErrInvalidData
	}

	rec := offerRecord{
		Slug:      offer.Slug,
		Title:     offer.Title,
		URL:       offer.URL,
		Active:    offer.Active,
		CreatedAt: offer.UpdatedAt,
		UpdatedAt: offer.UpdatedAt,
	}

	var stored offerRecord
	err := s.WithinTx(ctx, func(ctx context.Context) error {
		db := s.conn(ctx)
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			DoUpdates: clause.AssignmentColumns([]string{"title", "url", "active", "updated_at"}),
		}).Create(&rec).Error
		if err != nil {
			return fmt.Errorf("upsert offer: %w", classifyError(err))
		}
		return db.Where("slug = ?", offer.Slug).First(&stored).Error
	})
	if err != nil {
		return models.Offer{}, err
	}

	return offerFromRecord(stored), nil
}

func (s *SQLiteStorage) OfferListActive(ctx context.Context) ([]models.Offer, error) {
	var recs []offerRecord
	if err := s.conn(ctx).Where("active = ?", true).Order("created_at, slug").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list offers: %w", classifyError(err))
	}

	offers := make([]models.Offer, 0, len(recs))
	for _, rec := range recs {
		offers = append(offers, offerFromRecord(rec))
	}
	return offers, nil
}

func (s *SQLiteStorage) UserTouch(ctx context.Context, id string, now time.Time) (models.User, error) {
	if id == "" {
		return models.User{}, models.ErrInvalidData
	}

	var stored userRecord
	err := s.WithinTx(ctx, func(ctx context.Context) error {
		db := s.conn(ctx)
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "identifier"}},
			DoUpdates: clause.AssignmentColumns([]string{"last_seen"}),
		}).Create(&userRecord{Identifier: id, FirstSeen: now, LastSeen: now}).Error
		if err != nil {
			return fmt.Errorf("touch user: %w", classifyError(err))
		}
		return db.Where("identifier = ?", id).First(&stored).Error
	})
	if err != nil {
		return models.User{}, err
	}

	return userFromRecord(stored), nil
}

func (s *SQLiteStorage) UserSetBlocked(ctx context.Context, id string, blocked bool, at time.Time) error {
	updates := map[string]interface{}{
		"blocked":    blocked,
		"blocked_at": nil,
	}
	if blocked {
		updates["blocked_at"] = at
	}

	res := s.conn(ctx).Model(&userRecord{}).Where("identifier = ?", id).Updates(updates)
	if res.Error != nil {
		return fmt.Errorf("update user: %w", classifyError(res.Error))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: user not found", models.ErrUnfound)
	}
	return nil
}

func (s *SQLiteStorage) UserGet(ctx context.Context, id string) (models.User, error) {
	var rec userRecord
	if err := s.conn(ctx).Where("identifier = ?", id).First(&rec).Error; err != nil {
		return models.User{}, fmt.Errorf("find user: %w", classifyError(err))
	}
	return userFromRecord(rec), nil
}

// ClickCreate полагается на ux_clicks_offer_user_day: ON CONFLICT DO NOTHING
// не вставляет повтор, и RowsAffected == 0 означает models.ErrConflict.
func (s *SQLiteStorage) ClickCreate(ctx context.Context, click models.Click) (models.Click, error) {
	rec := clickRecord{
		TS:        click.TS,
		Day:       formatDay(click.Day),
		OfferSlug: click.OfferSlug,
		Country:   string(click.Country),
		UserRef:   click.UserID,
	}

	err := s.WithinTx(ctx, func(ctx context.Context) error {
		db := s.conn(ctx)

		if err := s.requireActiveOffer(db, click.OfferSlug); err != nil {
			return err
		}

		if click.UserID != nil {
			err := db.Clauses(clause.OnConflict{DoNothing: true}).
				Create(&userRecord{Identifier: *click.UserID, FirstSeen: click.TS, LastSeen: click.TS}).Error
			if err != nil {
				return fmt.Errorf("ensure user: %w", classifyError(err))
			}
		}

		res := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&rec)
		if res.Error != nil {
			return fmt.Errorf("insert click: %w", classifyError(res.Error))
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: click already counted", models.ErrConflict)
		}
		return nil
	})
	if err != nil {
		return models.Click{}, err
	}

	click.ID = rec.ID
	return click, nil
}

func (s *SQLiteStorage) DeliveryCreate(ctx context.Context, delivery models.Delivery) (models.Delivery, error) {
	rec := deliveryRecord{
		TS:      delivery.TS,
		UserRef: delivery.UserID,
		Event:   string(delivery.Event),
		Context: delivery.Context,
	}

	err := s.WithinTx(ctx, func(ctx context.Context) error {
		db := s.conn(ctx)

		var n int64
		if err := db.Model(&userRecord{}).Where("identifier = ?", delivery.UserID).Count(&n).Error; err != nil {
			return fmt.Errorf("find user: %w", classifyError(err))
		}
		if n == 0 {
			return fmt.Errorf("%w: user not found", models.ErrUnfound)
		}

		if err := db.Create(&rec).Error; err != nil {
			return fmt.Errorf("insert delivery: %w", classifyError(err))
		}
		return nil
	})
	if err != nil {
		return models.Delivery{}, err
	}

	delivery.ID = rec.ID
	return delivery, nil
}

func (s *SQLiteStorage) ShortLinkCreate(ctx context.Context, link models.ShortLink) (models.ShortLink, error) {
	if link.ID == "" {
		return models.ShortLink{}, models.ErrInvalidData
	}

	rec := shortLinkRecord{
		ID:        link.ID,
		OfferSlug: link.OfferSlug,
		Country:   string(link.Country),
		UserRef:   link.UserID,
		CreatedAt: link.CreatedAt,
	}

	err := s.WithinTx(ctx, func(ctx context.Context) error {
		db := s.conn(ctx)

		if err := s.requireOffer(db, link.OfferSlug); err != nil {
			return err
		}

		res := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&rec)
		if res.Error != nil {
			return fmt.Errorf("insert short link: %w", classifyError(res.Error))
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: short link id taken", models.ErrConflict)
		}
		return nil
	})
	if err != nil {
		return models.ShortLink{}, err
	}

	return shortLinkFromRecord(rec), nil
}

func (s *SQLiteStorage) ShortLinkGet(ctx context.Context, id string) (models.ShortLink, error) {
	var rec shortLinkRecord
	if err := s.conn(ctx).Where("id = ?", id).First(&rec).Error; err != nil {
		return models.ShortLink{}, fmt.Errorf("find short link: %w", classifyError(err))
	}
	return shortLinkFromRecord(rec), nil
}

// requireActiveOffer заменяет внешний ключ на offers, который sqlite без PRAGMA
// не проверяет, и не даёт записать клик по выключенному офферу.
func (s *SQLiteStorage) requireActiveOffer(db *gorm.DB, slug string) error {
	var rec offerRecord
	err := db.Select("slug", "active").Where("slug = ?", slug).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: offer %s", models.ErrUnfound, slug)
	}
	if err != nil {
		return fmt.Errorf("find offer: %w", classifyError(err))
	}
	if !rec.Active {
		return fmt.Errorf("%w: offer %s", models.ErrInactive, slug)
	}
	return nil
}
