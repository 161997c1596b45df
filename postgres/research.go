package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/deepresearch"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Compile-time interface verification.
var _ deepresearch.ResearchService = (*ResearchService)(nil)

const researchColumns = `id, url, title, description, content, summary, provider, category, tags, metadata, author_name, author_handle, view_count, upvotes, is_processed, created_at, updated_at`

// ResearchService implements deepresearch.ResearchService using PostgreSQL.
type ResearchService struct {
	db *DB
}

// NewResearchService creates a new ResearchService.
func NewResearchService(db *DB) *ResearchService {
	return &ResearchService{db: db}
}

// CreateResearch inserts a record. The URL uniqueness constraint decides
// races between concurrent submissions.
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

	metadata, err := json.Marshal(r.Metadata)
	if err != nil {
		return fmt.Errorf("failed to encode metadata: %w", err)
	}
	if r.Metadata == nil {
		metadata = []byte("{}")
	}

	id := uuid.New().String()
	now := time.Now().UTC()

	var returned string
	err = s.db.pool.QueryRow(ctx, `
		INSERT INTO researches (`+researchColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		ON CONFLICT (url) DO NOTHING
		RETURNING id
	`, id, r.URL, r.Title, r.Description, r.Content, r.Summary, string(r.Provider), string(r.Category),
		r.Tags, metadata, r.AuthorName, r.AuthorHandle, r.ViewCount, r.Upvotes, string(r.IsProcessed), now, now,
	).Scan(&returned)
	if errors.Is(err, pgx.ErrNoRows) {
		return deepresearch.Errorf(deepresearch.ECONFLICT, "research already exists for %s", r.URL)
	}
	if err != nil {
		return fmt.Errorf("failed to insert research: %w", err)
	}

	r.ID = returned
	r.CreatedAt = now
	r.UpdatedAt = now
	return nil
}

// FindResearchByID retrieves a research record by ID.
func (s *ResearchService) FindResearchByID(ctx context.Context, id string) (*deepresearch.Research, error) {
	row := s.db.pool.QueryRow(ctx, `SELECT `+researchColumns+` FROM researches WHERE id = $1`, id)

	r, err := scanResearch(row)
	if errors.Is(err, pgx.ErrNoRows) {
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

	where := func(clause string, v any) {
		args = append(args, v)
		fmt.Fprintf(&query, " AND "+clause, len(args))
	}

	query.WriteString("SELECT " + researchColumns + " FROM researches WHERE 1=1")

	if filter.ID != nil {
		where("id = $%d", *filter.ID)
	}
	if filter.URL != nil {
		where("url = $%d", *filter.URL)
	}
	if filter.Provider != nil {
		where("provider = $%d", string(*filter.Provider))
	}
	if filter.CreatedAfter != nil {
		where("created_at > $%d", *filter.CreatedAfter)
	}

	switch filter.SortBy {
	case deepresearch.SortByPopularity:
		query.WriteString(" ORDER BY upvotes DESC, view_count DESC, created_at DESC")
	default:
		query.WriteString(" ORDER BY created_at DESC, id ASC")
	}

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		fmt.Fprintf(&query, " LIMIT $%d", len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		fmt.Fprintf(&query, " OFFSET $%d", len(args))
	}

	rows, err := s.db.pool.Query(ctx, query.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query researches: %w", err)
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

func (s *ResearchService) increment(ctx context.Context, column, id string) (int, error) {
	var n int
	err := s.db.pool.QueryRow(ctx,
		`UPDATE researches SET `+column+` = `+column+` + 1, updated_at = now() WHERE id = $1 RETURNING `+column,
		id,
	).Scan(&n)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, deepresearch.Errorf(deepresearch.ENOTFOUND, "research not found")
	}
	if err != nil {
		return 0, fmt.Errorf("failed to increment %s: %w", column, err)
	}
	return n, nil
}

func scanResearch(row pgx.Row) (*deepresearch.Research, error) {
	var r deepresearch.Research
	var provider, category, status string
	var metadata []byte

	if err := row.Scan(&r.ID, &r.URL, &r.Title, &r.Description, &r.Content, &r.Summary,
		&provider, &category, &r.Tags, &metadata, &r.AuthorName, &r.AuthorHandle,
		&r.ViewCount, &r.Upvotes, &status, &r.CreatedAt, &r.UpdatedAt); err != nil {
		return nil, err
	}

	r.Provider = deepresearch.Provider(provider)
	r.Category = deepresearch.Category(category)
	r.IsProcessed = deepresearch.ProcessingStatus(status)

	if len(metadata) > 0 {
		if err := json.Unmarshal(metadata, &r.Metadata); err != nil {
			return nil, fmt.Errorf("failed to decode metadata: %w", err)
		}
	}

	return &r, nil
}
