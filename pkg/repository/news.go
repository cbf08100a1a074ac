package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"newsdigest/pkg/domain"
)

// NewsRepository handles news item database operations
type NewsRepository struct {
	db *sqlx.DB
}

// NewNewsRepository creates a new news repository
func NewNewsRepository(db *sqlx.DB) *NewsRepository {
	return &NewsRepository{db: db}
}

// dbNewsItem is the row representation of domain.NewsItem
type dbNewsItem struct {
	ID          int64        `db:"id"`
	Source      string       `db:"source"`
	Fingerprint string       `db:"fingerprint"`
	Text        string       `db:"text"`
	PublishedAt sql.NullTime `db:"published_at"`
	ScrapedAt   time.Time    `db:"scraped_at"`
	Processed   bool         `db:"processed"`
	MediaType   string       `db:"media_type"`
	MediaURL    string       `db:"media_url"`
}

// ExistingFingerprints returns the subset of the given fingerprints already present in the store
func (r *NewsRepository) ExistingFingerprints(ctx context.Context, fingerprints []string) (map[string]struct{}, error) {
	result := make(map[string]struct{}, len(fingerprints))
	if len(fingerprints) == 0 {
		return result, nil
	}

	query, args, err := sqlx.In("SELECT fingerprint FROM news_items WHERE fingerprint IN (?)", fingerprints)
	if err != nil {
		return nil, fmt.Errorf("build fingerprint query: %w", err)
	}

	var found []string
	if err := r.db.SelectContext(ctx, &found, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("select existing fingerprints: %w", err)
	}

	for _, fp := range found {
		result[fp] = struct{}{}
	}
	return result, nil
}

// CreateItems batch-inserts items with insert-or-ignore semantics keyed on the
// fingerprint unique index; the store assigns scraped_at. Returns the number
// of rows actually inserted, which may be less than len(items) when another
// process raced the dedup filter.
func (r *NewsRepository) CreateItems(ctx context.Context, items []domain.NewsItem) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}

	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	stored := 0
	err := retrier.Do(ctx, func() error {
		stored = 0

		tx, err := r.db.BeginTxx(ctx, nil)
		if err != nil {
			if isLockError(err) {
				return err // repeater will retry this
			}
			return &criticalError{err: fmt.Errorf("begin insert tx: %w", err)}
		}
		defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

		query := `
			INSERT OR IGNORE INTO news_items (source, fingerprint, text, published_at, media_type, media_url)
			VALUES (?, ?, ?, ?, ?, ?)
		`
		for _, item := range items {
			var publishedAt sql.NullTime
			if item.PublishedAt != nil {
				publishedAt = sql.NullTime{Time: item.PublishedAt.UTC(), Valid: true}
			}

			res, err := tx.ExecContext(ctx, query,
				item.Source, item.Fingerprint, item.Text, publishedAt, item.MediaType, item.MediaURL)
			if err != nil {
				if isLockError(err) {
					return err
				}
				return &criticalError{err: fmt.Errorf("insert item: %w", err)}
			}

			affected, err := res.RowsAffected()
			if err != nil {
				return &criticalError{err: fmt.Errorf("rows affected: %w", err)}
			}
			stored += int(affected)
		}

		if err := tx.Commit(); err != nil {
			if isLockError(err) {
				return err
			}
			return &criticalError{err: fmt.Errorf("commit insert tx: %w", err)}
		}
		return nil
	})

	if err != nil {
		return 0, err
	}
	return stored, nil
}

// UnprocessedItems returns id and text of every item still eligible for digest selection, oldest first
func (r *NewsRepository) UnprocessedItems(ctx context.Context) ([]domain.SelectedItem, error) {
	var rows []struct {
		ID   int64  `db:"id"`
		Text string `db:"text"`
	}
	err := r.db.SelectContext(ctx, &rows,
		"SELECT id, text FROM news_items WHERE processed = 0 ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("select unprocessed items: %w", err)
	}

	items := make([]domain.SelectedItem, len(rows))
	for i, row := range rows {
		items[i] = domain.SelectedItem{ID: row.ID, Text: row.Text}
	}
	return items, nil
}

// ItemsByIDs returns items aligned to the requested id order, nil for ids not in the store
func (r *NewsRepository) ItemsByIDs(ctx context.Context, ids []int64) ([]*domain.NewsItem, error) {
	if len(ids) == 0 {
		return []*domain.NewsItem{}, nil
	}

	query, args, err := sqlx.In("SELECT * FROM news_items WHERE id IN (?)", ids)
	if err != nil {
		return nil, fmt.Errorf("build items query: %w", err)
	}

	var rows []dbNewsItem
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("select items by ids: %w", err)
	}

	byID := make(map[int64]*domain.NewsItem, len(rows))
	for i := range rows {
		byID[rows[i].ID] = toDomainItem(&rows[i])
	}

	result := make([]*domain.NewsItem, len(ids))
	for i, id := range ids {
		result[i] = byID[id]
	}
	return result, nil
}

// MarkProcessed flips the processed flag on the given items; the flag is monotonic
func (r *NewsRepository) MarkProcessed(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	query, args, err := sqlx.In("UPDATE news_items SET processed = 1 WHERE id IN (?)", ids)
	if err != nil {
		return fmt.Errorf("build mark processed query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, r.db.Rebind(query), args...); err != nil {
		return fmt.Errorf("mark items processed: %w", err)
	}
	return nil
}

// GetItem retrieves a single item by id
func (r *NewsRepository) GetItem(ctx context.Context, id int64) (*domain.NewsItem, error) {
	var row dbNewsItem
	if err := r.db.GetContext(ctx, &row, "SELECT * FROM news_items WHERE id = ?", id); err != nil {
		return nil, fmt.Errorf("get item %d: %w", id, err)
	}
	return toDomainItem(&row), nil
}

// toDomainItem converts a row to domain.NewsItem
func toDomainItem(row *dbNewsItem) *domain.NewsItem {
	item := &domain.NewsItem{
		ID:          row.ID,
		Source:      row.Source,
		Fingerprint: row.Fingerprint,
		Text:        row.Text,
		ScrapedAt:   row.ScrapedAt,
		Processed:   row.Processed,
		MediaType:   row.MediaType,
		MediaURL:    row.MediaURL,
	}
	if row.PublishedAt.Valid {
		t := row.PublishedAt.Time
		item.PublishedAt = &t
	}
	return item
}
