package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khoahotran/planmoni-site/internal/domain/kvstore"
	"github.com/khoahotran/planmoni-site/pkg/logger"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const kvTable = "kv_documents"

type postgresKVStore struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresKVStore(db *pgxpool.Pool, log logger.Logger) kvstore.Store {
	return &postgresKVStore{db: db, logger: log}
}

func (r *postgresKVStore) Load(ctx context.Context, key string) (kvstore.LoadResult, error) {
	query, args, err := psql.Select("value").From(kvTable).Where(sq.Eq{"key": key}).ToSql()
	if err != nil {
		return kvstore.LoadResult{}, fmt.Errorf("failed to build load query: %w", err)
	}

	var value []byte
	if err := r.db.QueryRow(ctx, query, args...).Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return kvstore.Empty(), nil
		}
		return kvstore.LoadResult{}, fmt.Errorf("failed to load document %s: %w", key, err)
	}
	return kvstore.Classify(value), nil
}

func (r *postgresKVStore) Save(ctx context.Context, key string, value []byte) error {
	query, args, err := psql.Insert(kvTable).
		Columns("key", "value", "updated_at").
		Values(key, value, time.Now().UTC()).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build save query: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save document %s: %w", key, err)
	}
	return nil
}

func (r *postgresKVStore) Delete(ctx context.Context, key string) error {
	query, args, err := psql.Delete(kvTable).Where(sq.Eq{"key": key}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete query: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete document %s: %w", key, err)
	}
	return nil
}

func (r *postgresKVStore) Keys(ctx context.Context) ([]string, error) {
	query, args, err := psql.Select("key").From(kvTable).OrderBy("key").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build keys query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	keys := make([]string, 0)
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("failed to scan key row: %w", err)
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}
