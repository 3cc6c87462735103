package store

import (
	"context"
	"database/sql"
	"encoding/json"
	stderrors "errors"
	"time"

	"github.com/kapu/botkit-go/pkg/errors"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

const documentsTable = `
CREATE TABLE IF NOT EXISTS documents (
	collection TEXT NOT NULL,
	id         TEXT NOT NULL,
	body       JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	PRIMARY KEY (collection, id)
);
CREATE INDEX IF NOT EXISTS documents_body_gin ON documents USING GIN (body jsonb_path_ops);
`

// PostgresStore keeps every collection in one JSONB table; criteria use @> containment.
type PostgresStore struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewPostgresStore(ctx context.Context, dsn string, logger *zap.Logger) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, errors.NewStoreError(OpConnect, "", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errors.NewStoreError(OpConnect, "", err)
	}
	if _, err := db.ExecContext(ctx, documentsTable); err != nil {
		db.Close()
		return nil, errors.NewStoreError(OpConnect, "documents", err)
	}

	logger.Info("PostgreSQL document store connected")
	return &PostgresStore{db: db, logger: logger}, nil
}

func (s *PostgresStore) FindOne(ctx context.Context, collection string, criteria Criteria) (Document, error) {
	filter, err := json.Marshal(criteriaOrEmpty(criteria))
	if err != nil {
		return nil, errors.NewStoreError(OpFindOne, collection, err)
	}

	var body []byte
	err = s.db.QueryRowContext(ctx,
		`SELECT body FROM documents WHERE collection = $1 AND body @> $2::jsonb ORDER BY updated_at LIMIT 1`,
		collection, filter,
	).Scan(&body)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.NewStoreError(OpFindOne, collection, err)
	}

	var doc Document
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, errors.NewStoreError(OpFindOne, collection, err)
	}
	return doc, nil
}

func (s *PostgresStore) Save(ctx context.Context, collection string, doc Document) (Document, error) {
	doc = withID(doc)
	body, err := json.Marshal(doc)
	if err != nil {
		return nil, errors.NewStoreError(OpSave, collection, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO documents (collection, id, body, updated_at)
		VALUES ($1, $2, $3::jsonb, NOW())
		ON CONFLICT (collection, id) DO UPDATE SET body = EXCLUDED.body, updated_at = NOW()`,
		collection, doc.ID(), body,
	)
	if err != nil {
		return nil, errors.NewStoreError(OpSave, collection, err)
	}
	return doc, nil
}

func (s *PostgresStore) UpdateOne(ctx context.Context, collection string, criteria Criteria, field string, value any) error {
	if field == "" {
		return errors.NewStoreError(OpUpdateOne, collection, ErrEmptyFieldName)
	}
	filter, err := json.Marshal(criteriaOrEmpty(criteria))
	if err != nil {
		return errors.NewStoreError(OpUpdateOne, collection, err)
	}
	encoded, err := json.Marshal(value)
	if err != nil {
		return errors.NewStoreError(OpUpdateOne, collection, err)
	}

	_, err = s.db.ExecContext(ctx, `
		UPDATE documents SET body = jsonb_set(body, $3::text[], $4::jsonb, true), updated_at = NOW()
		WHERE collection = $1 AND id = (
			SELECT id FROM documents WHERE collection = $1 AND body @> $2::jsonb ORDER BY updated_at LIMIT 1
		)`,
		collection, filter, pq.Array([]string{field}), encoded,
	)
	if err != nil {
		return errors.NewStoreError(OpUpdateOne, collection, err)
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, collection string, doc Document) error {
	id := doc.ID()
	if id == "" {
		return errors.NewStoreError(OpDelete, collection, ErrMissingID)
	}
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM documents WHERE collection = $1 AND id = $2`, collection, id,
	); err != nil {
		return errors.NewStoreError(OpDelete, collection, err)
	}
	return nil
}

func (s *PostgresStore) Create(ctx context.Context, schema Schema, fields map[string]any) (Document, error) {
	return create(ctx, s, schema, fields)
}

func (s *PostgresStore) Close(context.Context) error {
	if err := s.db.Close(); err != nil {
		return errors.NewStoreError(OpClose, "", err)
	}
	return nil
}

func criteriaOrEmpty(criteria Criteria) Criteria {
	if criteria == nil {
		return Criteria{}
	}
	return criteria
}
