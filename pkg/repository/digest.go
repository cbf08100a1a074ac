package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"newsdigest/pkg/domain"
)

// DigestRepository handles digest database operations
type DigestRepository struct {
	db *sqlx.DB
}

// NewDigestRepository creates a new digest repository
func NewDigestRepository(db *sqlx.DB) *DigestRepository {
	return &DigestRepository{db: db}
}

// int64List stores a list of ids as a JSON column
type int64List []int64

// Value implements driver.Valuer
func (l int64List) Value() (driver.Value, error) {
	data, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("marshal id list: %w", err)
	}
	return string(data), nil
}

// Scan implements sql.Scanner
func (l *int64List) Scan(value interface{}) error {
	return scanJSON(value, l)
}

// stringList stores a list of strings as a JSON column
type stringList []string

// Value implements driver.Valuer
func (l stringList) Value() (driver.Value, error) {
	data, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("marshal string list: %w", err)
	}
	return string(data), nil
}

// Scan implements sql.Scanner
func (l *stringList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

func scanJSON(value, target interface{}) error {
	switch v := value.(type) {
	case string:
		return json.Unmarshal([]byte(v), target)
	case []byte:
		return json.Unmarshal(v, target)
	case nil:
		return nil
	default:
		return fmt.Errorf("unsupported column type %T", value)
	}
}

// dbDigest is the row representation of domain.Digest
type dbDigest struct {
	ID              int64        `db:"id"`
	CreatedAt       time.Time    `db:"created_at"`
	UpdatedAt       time.Time    `db:"updated_at"`
	DigestText      string       `db:"digest_text"`
	IsPublished     bool         `db:"is_published"`
	SourceItemIDs   int64List    `db:"source_item_ids"`
	SourceNewsTexts stringList   `db:"source_news_texts"`
	LLMModel        string       `db:"llm_model"`
	PublishedAt     sql.NullTime `db:"published_at"`
	ExternalID      string       `db:"publisher_external_id"`
}

// CreateWithProcessedItems persists a pending digest and flips processed on
// every source item in one transaction. A digest without source items
// violates the model and is rejected before any write.
func (r *DigestRepository) CreateWithProcessedItems(ctx context.Context, d *domain.Digest) error {
	if len(d.SourceItemIDs) == 0 {
		return fmt.Errorf("digest must reference at least one source item")
	}

	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		tx, err := r.db.BeginTxx(ctx, nil)
		if err != nil {
			if isLockError(err) {
				return err // repeater will retry this
			}
			return &criticalError{err: fmt.Errorf("begin digest tx: %w", err)}
		}
		defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

		res, err := tx.ExecContext(ctx, `
			INSERT INTO digests (digest_text, is_published, source_item_ids, source_news_texts, llm_model)
			VALUES (?, 0, ?, ?, ?)`,
			d.Text, int64List(d.SourceItemIDs), stringList(d.SourceTexts), d.LLMModel)
		if err != nil {
			if isLockError(err) {
				return err
			}
			return &criticalError{err: fmt.Errorf("insert digest: %w", err)}
		}

		id, err := res.LastInsertId()
		if err != nil {
			return &criticalError{err: fmt.Errorf("get digest id: %w", err)}
		}

		query, args, err := sqlx.In("UPDATE news_items SET processed = 1 WHERE id IN (?)", d.SourceItemIDs)
		if err != nil {
			return &criticalError{err: fmt.Errorf("build processed update: %w", err)}
		}
		if _, err := tx.ExecContext(ctx, tx.Rebind(query), args...); err != nil {
			if isLockError(err) {
				return err
			}
			return &criticalError{err: fmt.Errorf("mark source items processed: %w", err)}
		}

		if err := tx.Commit(); err != nil {
			if isLockError(err) {
				return err
			}
			return &criticalError{err: fmt.Errorf("commit digest tx: %w", err)}
		}

		d.ID = id
		return nil
	})
}

// MarkPublished records a successful publish: sets the published flag and
// timestamp, the optional publisher message id, and rewrites the digest text
// to the exact text actually sent.
func (r *DigestRepository) MarkPublished(ctx context.Context, id int64, text, externalID string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE digests
		SET is_published = 1,
		    published_at = datetime('now'),
		    updated_at = datetime('now'),
		    digest_text = ?,
		    publisher_external_id = ?
		WHERE id = ?`,
		text, externalID, id)
	if err != nil {
		return fmt.Errorf("mark digest published: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("digest %d not found", id)
	}
	return nil
}

// GetDigest retrieves a digest by id
func (r *DigestRepository) GetDigest(ctx context.Context, id int64) (*domain.Digest, error) {
	var row dbDigest
	if err := r.db.GetContext(ctx, &row, "SELECT * FROM digests WHERE id = ?", id); err != nil {
		return nil, fmt.Errorf("get digest %d: %w", id, err)
	}
	return toDomainDigest(&row), nil
}

// GetDigests retrieves recent digests, newest first
func (r *DigestRepository) GetDigests(ctx context.Context, limit int) ([]domain.Digest, error) {
	var rows []dbDigest
	err := r.db.SelectContext(ctx, &rows,
		"SELECT * FROM digests ORDER BY id DESC LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("get digests: %w", err)
	}

	digests := make([]domain.Digest, len(rows))
	for i := range rows {
		digests[i] = *toDomainDigest(&rows[i])
	}
	return digests, nil
}

// toDomainDigest converts a row to domain.Digest
func toDomainDigest(row *dbDigest) *domain.Digest {
	d := &domain.Digest{
		ID:            row.ID,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
		Text:          row.DigestText,
		Published:     row.IsPublished,
		SourceItemIDs: row.SourceItemIDs,
		SourceTexts:   row.SourceNewsTexts,
		LLMModel:      row.LLMModel,
		ExternalID:    row.ExternalID,
	}
	if row.PublishedAt.Valid {
		t := row.PublishedAt.Time
		d.PublishedAt = &t
	}
	return d
}
