package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/fwojciec/deepresearch"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ deepresearch.ResearchService = (*ResearchService)(nil)

const researchColumns = `id, url, title, description, content, summary, provider, category, tags, metadata, author_name, author_handle, view_count, upvotes, is_processed, created_at, updated_at`

// ResearchService implements deepresearch.ResearchService using SQLite.
type ResearchService struct {
	db  *DB
	now func() time.Time
}

// NewResearchService creates a new ResearchService.
func NewResearchService(db *DB) *ResearchService {
	return &ResearchService{db: db, now: time.Now}
}

// CreateResearch creates a new research record.
func (s *ResearchService) CreateResearch(ctx context.Context, r *deepresearch.Research) error {
	if err := r.Validate(); err != nil {
		return err
	}

	if r.IsProcessed == "" {
		r.IsProcessed = deepresearch.StatusPending
	}
	if r.Tags == nil {
		r.Tags = []string{}
	}

	tags, err := marshalJSON(r.Tags, "tags")
	if err != nil {
		return err
	}
	metadata, err := marshalJSON(r.Metadata, "metadata")
	if err != nil {
		return err
	}

	id := uuid.New().String()
	now := s.now().UTC()

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO researches (`+researchColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, id, r.URL, r.Title, r.Description, r.Content, r.Summary, string(r.Provider), string(r.Category), tags, metadata,
		r.AuthorName, r.AuthorHandle, r.ViewCount, r.Upvotes, string(r.IsProcessed), formatTime(now), formatTime(now))
	if err != nil {
		if isUniqueViolation(err) {
			return deepresearch.Errorf(deepresearch.ECONFLICT, "research already exists for %s", r.URL)
		}
		return err
	}

	r.ID = id
	r.CreatedAt = now
	r.UpdatedAt = now
	return nil
}

// FindResearchByID retrieves a research record by ID.
func (s *ResearchService) FindResearchByID(ctx context.Context, id string) (*deepresearch.Research, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+researchColumns+` FROM researches WHERE id = ?`, id)

	r, err := scanResearch(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, deepresearch.Errorf(deepresearch.ENOTFOUND, "research not found")
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

// FindResearches retrieves research records matching the filter.
func (s *ResearchService) FindResearches(ctx context.Context, filter deepresearch.ResearchFilter) ([]*deepresearch.Research, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + researchColumns + " FROM researches WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}
	if filter.Provider != nil {
		query.WriteString(" AND provider = ?")
		args = append(args, string(*filter.Provider))
	}
	if filter.CreatedAfter != nil {
		query.WriteString(" AND created_at > ?")
		args = append(args, formatTime(*filter.CreatedAfter))
	}

	switch filter.SortBy {
	case deepresearch.SortByPopularity:
		query.WriteString(" ORDER BY upvotes DESC, view_count DESC, created_at DESC")
	default:
		query.WriteString(" ORDER BY created_at DESC, id ASC")
	}

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var researches []*deepresearch.Research
	for rows.Next() {
		r, err := scanResearch(rows)
		if err != nil {
			return nil, err
		}
		researches = append(researches, r)
	}

	return researches, rows.Err()
}

// IncrementUpvotes adds one upvote and returns the new count.
func (s *ResearchService) IncrementUpvotes(ctx context.Context, id string) (int, error) {
	return s.increment(ctx, "upvotes", id)
}

// IncrementViewCount adds one view and returns the new count.
func (s *ResearchService) IncrementViewCount(ctx context.Context, id string) (int, error) {
	return s.increment(ctx, "view_count", id)
}

// increment bumps a counter column in a single statement so concurrent
// callers never lose updates.
func (s *ResearchService) increment(ctx context.Context, column, id string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`UPDATE researches SET `+column+` = `+column+` + 1, updated_at = ? WHERE id = ? RETURNING `+column,
		formatTime(s.now()), id,
	).Scan(&n)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, deepresearch.Errorf(deepresearch.ENOTFOUND, "research not found")
	}
	if err != nil {
		return 0, err
	}
	return n, nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanResearch(row scanner) (*deepresearch.Research, error) {
	var r deepresearch.Research
	var tags, metadata, createdAt, updatedAt string

	if err := row.Scan(&r.ID, &r.URL, &r.Title, &r.Description, &r.Content, &r.Summary,
		&r.Provider, &r.Category, &tags, &metadata, &r.AuthorName, &r.AuthorHandle,
		&r.ViewCount, &r.Upvotes, &r.IsProcessed, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	if err := unmarshalJSON(tags, &r.Tags, "tags"); err != nil {
		return nil, err
	}
	if err := unmarshalJSON(metadata, &r.Metadata, "metadata"); err != nil {
		return nil, err
	}

	var err error
	if r.CreatedAt, err = parseTime(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if r.UpdatedAt, err = parseTime(updatedAt, "updated_at"); err != nil {
		return nil, err
	}

	return &r, nil
}
