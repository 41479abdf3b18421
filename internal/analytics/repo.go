package analytics

import (
	"context"
	"database/sql"

	"go.uber.org/zap"
)

// Repository хранит число единиц товара в корзинах:
//
//	CREATE TABLE product_popularity (
//		product_id TEXT PRIMARY KEY,
//		units      BIGINT NOT NULL DEFAULT 0
//	);
type Repository struct {
	db     *sql.DB
	logger *zap.SugaredLogger
}

func NewRepository(db *sql.DB, logger *zap.SugaredLogger) *Repository {
	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) UpdatePopularity(ctx context.Context, productID string, delta int) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO product_popularity (product_id, units)
		VALUES ($1, GREATEST($2, 0))
		ON CONFLICT (product_id)
		DO UPDATE SET units = GREATEST(product_popularity.units + $2, 0)
	`, productID, delta)
	if err != nil {
		r.logger.Errorw("failed to update popularity", "product_id", productID, "err", err)
		return err
	}

	return nil
}

func (r *Repository) GetTopProducts(ctx context.Context, limit int) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT product_id
		FROM product_popularity
		WHERE units > 0
		ORDER BY units DESC, product_id
		LIMIT $1
	`, limit)

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []string
	for rows.Next() {
		var productID string
		if err := rows.Scan(&productID); err != nil {
			return nil, err
		}
		products = append(products, productID)
	}

	return products, rows.Err()
}
