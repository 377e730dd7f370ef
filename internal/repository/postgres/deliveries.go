package postgres

import (
	"context"
	"fmt"

	"offertracker/internal/domain/models"
)

func (p *PostgresStorage) DeliveryCreate(ctx context.Context, delivery models.Delivery) (models.Delivery, error) {
	err := p.querier(ctx).QueryRowContext(ctx, `
		INSERT INTO deliveries (ts, user_ref, event, context)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		delivery.TS, delivery.UserID, string(delivery.Event), delivery.Context,
	).Scan(&delivery.ID)

	if err != nil {
		return models.Delivery{}, fmt.Errorf("failed to insert delivery: %w", classifyError(err))
	}

	return delivery, nil
}
