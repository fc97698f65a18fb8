package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/octobees/brand-equity/api/internal/entity"
)

// ErrReportNotFound is returned when no brand report matches the lookup.
var ErrReportNotFound = errors.New("brand report not found")

// ReportsRepository describes persistence operations for brand reports. The
// read-merge-write sequence callers build from GetByID and SetAnalysisData has
// no optimistic-concurrency check: two racing merges are last-write-wins.
type ReportsRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.BrandReport, error)
	SetAnalysisData(ctx context.Context, id uuid.UUID, data map[string]any) error
	UpdateScores(ctx context.Context, id uuid.UUID, overall int, scores map[string]int) error
}

// PGXReportsRepository implements ReportsRepository using pgx.
type PGXReportsRepository struct {
	pool pgxPool
}

// NewPGXReportsRepository wires a pgx backed repository.
func NewPGXReportsRepository(pool *pgxpool.Pool) *PGXReportsRepository {
	return &PGXReportsRepository{pool: pool}
}

// GetByID retrieves one brand report including its analysis blob.
func (r *PGXReportsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.BrandReport, error) {
	query := `
		SELECT id, business_id, status, overall_score, scores, analysis_data, created_at, updated_at
		FROM brand_reports
		WHERE id = $1
	`

	var (
		report       entity.BrandReport
		overallScore *int
		scoresJSON   []byte
		analysisJSON []byte
	)
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&report.ID,
		&report.BusinessID,
		&report.Status,
		&overallScore,
		&scoresJSON,
		&analysisJSON,
		&report.CreatedAt,
		&report.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrReportNotFound
		}
		return nil, fmt.Errorf("query brand report: %w", err)
	}

	report.OverallScore = overallScore
	if len(scoresJSON) > 0 {
		if err := json.Unmarshal(scoresJSON, &report.Scores); err != nil {
			return nil, fmt.Errorf("unmarshal scores: %w", err)
		}
	}
	report.AnalysisData = map[string]any{}
	if len(analysisJSON) > 0 {
		if err := json.Unmarshal(analysisJSON, &report.AnalysisData); err != nil {
			return nil, fmt.Errorf("unmarshal analysis data: %w", err)
		}
	}
	return &report, nil
}

// SetAnalysisData stores the merged analysis blob wholesale.
func (r *PGXReportsRepository) SetAnalysisData(ctx context.Context, id uuid.UUID, data map[string]any) error {
	if data == nil {
		data = map[string]any{}
	}
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal analysis data: %w", err)
	}

	tag, err := r.pool.Exec(ctx,
		`UPDATE brand_reports SET analysis_data = $2::jsonb, updated_at = NOW() WHERE id = $1`,
		id, string(payload))
	if err != nil {
		return fmt.Errorf("update analysis data: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrReportNotFound
	}
	return nil
}

// UpdateScores stores the clamped category breakdown and overall score.
func (r *PGXReportsRepository) UpdateScores(ctx context.Context, id uuid.UUID, overall int, scores map[string]int) error {
	if scores == nil {
		scores = map[string]int{}
	}
	payload, err := json.Marshal(scores)
	if err != nil {
		return fmt.Errorf("marshal scores: %w", err)
	}

	tag, err := r.pool.Exec(ctx,
		`UPDATE brand_reports SET overall_score = $2, scores = $3::jsonb, status = 'scored', updated_at = NOW() WHERE id = $1`,
		id, overall, string(payload))
	if err != nil {
		return fmt.Errorf("update scores: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrReportNotFound
	}
	return nil
}
