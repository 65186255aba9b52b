package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// pgUniqueViolation is the SQLSTATE for unique constraint violations.
const pgUniqueViolation = "23505"

// PostgresStore keeps every collection in a single JSONB "documents" table,
// created by the migrations under /migrations.
type PostgresStore struct {
	pool *pgxpool.Pool
}

var _ Store = (*PostgresStore)(nil)

// NewPostgresStore creates a PostgresStore over an open pool.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func encodeFilter(f Filter) ([]byte, error) {
	if f == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(f)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

func (s *PostgresStore) Insert(ctx context.Context, coll Collection, doc any) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode %s document: %w", coll, err)
	}
	id, err := documentID(body)
	if err != nil {
		return fmt.Errorf("encode %s document: %w", coll, err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO documents (collection, id, body) VALUES ($1, $2, $3)`,
		string(coll), id, body,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return unavailable("insert", coll, err)
	}
	return nil
}

func (s *PostgresStore) InsertMany(ctx context.Context, coll Collection, docs []any) error {
	if len(docs) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, doc := range docs {
		body, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("encode %s document: %w", coll, err)
		}
		id, err := documentID(body)
		if err != nil {
			return fmt.Errorf("encode %s document: %w", coll, err)
		}
		batch.Queue(`INSERT INTO documents (collection, id, body) VALUES ($1, $2, $3)`, string(coll), id, body)
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return unavailable("begin", coll, err)
	}
	defer tx.Rollback(ctx)

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return unavailable("insert many", coll, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return unavailable("commit", coll, err)
	}
	return nil
}

func (s *PostgresStore) Find(ctx context.Context, coll Collection, filter Filter, out any) error {
	match, err := encodeFilter(filter)
	if err != nil {
		return fmt.Errorf("encode filter: %w", err)
	}

	rows, err := s.pool.Query(ctx,
		`SELECT body FROM documents
		 WHERE collection = $1 AND body @> $2::jsonb
		 ORDER BY seq`,
		string(coll), match,
	)
	if err != nil {
		return unavailable("find", coll, err)
	}
	defer rows.Close()

	var bodies [][]byte
	for rows.Next() {
		var body []byte
		if err := rows.Scan(&body); err != nil {
			return unavailable("scan", coll, err)
		}
		bodies = append(bodies, body)
	}
	if err := rows.Err(); err != nil {
		return unavailable("find", coll, err)
	}
	return decodeAll(bodies, out)
}

func (s *PostgresStore) FindOne(ctx context.Context, coll Collection, filter Filter, out any) error {
	match, err := encodeFilter(filter)
	if err != nil {
		return fmt.Errorf("encode filter: %w", err)
	}

	var body []byte
	err = s.pool.QueryRow(ctx,
		`SELECT body FROM documents
		 WHERE collection = $1 AND body @> $2::jsonb
		 ORDER BY seq LIMIT 1`,
		string(coll), match,
	).Scan(&body)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return unavailable("find one", coll, err)
	}
	return json.Unmarshal(body, out)
}

func (s *PostgresStore) Replace(ctx context.Context, coll Collection, id string, doc any) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode %s document: %w", coll, err)
	}

	tag, err := s.pool.Exec(ctx,
		`UPDATE documents SET body = $3, updated_at = CURRENT_TIMESTAMP
		 WHERE collection = $1 AND id = $2`,
		string(coll), id, body,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return unavailable("replace", coll, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) SetFields(ctx context.Context, coll Collection, id string, fields Filter) error {
	patch, err := encodeFilter(fields)
	if err != nil {
		return fmt.Errorf("encode fields: %w", err)
	}

	tag, err := s.pool.Exec(ctx,
		`UPDATE documents SET body = body || $3::jsonb, updated_at = CURRENT_TIMESTAMP
		 WHERE collection = $1 AND id = $2`,
		string(coll), id, patch,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return unavailable("update", coll, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) DeleteOne(ctx context.Context, coll Collection, filter Filter) error {
	match, err := encodeFilter(filter)
	if err != nil {
		return fmt.Errorf("encode filter: %w", err)
	}

	tag, err := s.pool.Exec(ctx,
		`DELETE FROM documents WHERE seq = (
			SELECT seq FROM documents
			WHERE collection = $1 AND body @> $2::jsonb
			ORDER BY seq LIMIT 1
		 )`,
		string(coll), match,
	)
	if err != nil {
		return unavailable("delete", coll, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) DeleteMany(ctx context.Context, coll Collection, filter Filter) (int64, error) {
	match, err := encodeFilter(filter)
	if err != nil {
		return 0, fmt.Errorf("encode filter: %w", err)
	}

	tag, err := s.pool.Exec(ctx,
		`DELETE FROM documents WHERE collection = $1 AND body @> $2::jsonb`,
		string(coll), match,
	)
	if err != nil {
		return 0, unavailable("delete many", coll, err)
	}
	return tag.RowsAffected(), nil
}

func (s *PostgresStore) Count(ctx context.Context, coll Collection, filter Filter) (int64, error) {
	match, err := encodeFilter(filter)
	if err != nil {
		return 0, fmt.Errorf("encode filter: %w", err)
	}

	var n int64
	err = s.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM documents WHERE collection = $1 AND body @> $2::jsonb`,
		string(coll), match,
	).Scan(&n)
	if err != nil {
		return 0, unavailable("count", coll, err)
	}
	return n, nil
}

// EnsureIndexes only verifies the schema exists; indexes are created by
// cmd/migrate.
func (s *PostgresStore) EnsureIndexes(ctx context.Context) error {
	var table *string
	if err := s.pool.QueryRow(ctx, `SELECT to_regclass('documents')::text`).Scan(&table); err != nil {
		return unavailable("check schema", "documents", err)
	}
	if table == nil {
		return errors.New("documents table missing, run `migrate up` first")
	}
	return nil
}

func (s *PostgresStore) Close(context.Context) error {
	s.pool.Close()
	return nil
}
