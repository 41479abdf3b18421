package storage

import (
	"context"
	"database/sql"
	"errors"

	"go.uber.org/zap"

	myErr "gomarketplace/internal/types/errors"
)

// PostgresStorage хранит значения в таблице
//
//	CREATE TABLE key_value_storage (
//		key   TEXT PRIMARY KEY,
//		value TEXT NOT NULL
//	);
type PostgresStorage struct {
	DB     *sql.DB
	Logger *zap.SugaredLogger
}

func NewPostgresStorage(db *sql.DB, logger *zap.SugaredLogger) *PostgresStorage {
	return &PostgresStorage{
		DB:     db,
		Logger: logger,
	}
}

func (ps *PostgresStorage) GetItem(ctx context.Context, key string) (string, error) {
	query := `
	SELECT value FROM key_value_storage
	WHERE key = $1
`
	var value string
	err := ps.DB.QueryRowContext(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", myErr.ErrNotFound
		}

		ps.Logger.Errorf("Ошибка при чтении ключа %s: %v", key, err)
		return "", myErr.ErrDBInternal
	}

	return value, nil
}

func (ps *PostgresStorage) SetItem(ctx context.Context, key string, value string) error {
	query := `
	INSERT INTO key_value_storage(key, value)
	VALUES ($1, $2) ON CONFLICT (key)
	DO UPDATE SET value = EXCLUDED.value
`
	_, err := ps.DB.ExecContext(ctx, query, key, value)
	if err != nil {
		ps.Logger.Errorf("Ошибка при записи ключа %s: %v", key, err)
		return myErr.ErrDBInternal
	}

	return nil
}

func (ps *PostgresStorage) RemoveItem(ctx context.Context, key string) error {
	query := `
	DELETE FROM key_value_storage
	WHERE key = $1
`
	_, err := ps.DB.ExecContext(ctx, query, key)
	if err != nil {
		ps.Logger.Errorf("Ошибка при удалении ключа %s: %v", key, err)
		return myErr.ErrDBInternal
	}

	return nil
}
