package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/octobees/brand-equity/api/internal/entity"
)

var (
	// ErrBusinessNotFound is returned when no business matches the lookup.
	ErrBusinessNotFound = errors.New("business not found")
	// ErrBusinessDuplicate indicates a name/address pair that already exists.
	ErrBusinessDuplicate = errors.New("business already exists")
)

// pgxPool is the subset of pgxpool.Pool the repositories depend on, kept
// narrow so tests can substitute a stub.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var _ pgxPool = (*pgxpool.Pool)(nil)

// BusinessesRepository describes persistence operations for subject businesses.
type BusinessesRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Business, error)
	Create(ctx context.Context, business *entity.Business) error
	UpdateAnalyticsPropertyID(ctx context.Context, id uuid.UUID, propertyID string) error
}

// PGXBusinessesRepository implements BusinessesRepository using pgx.
type PGXBusinessesRepository struct {
	pool pgxPool
}

// NewPGXBusinessesRepository wires a pgx backed repository.
func NewPGXBusinessesRepository(pool *pgxpool.Pool) *PGXBusinessesRepository {
	return &PGXBusinessesRepository{pool: pool}
}

const businessColumns = `id, name, address, website, industry, latitude, longitude, analytics_property_id, created_at, updated_at`

// GetByID retrieves one business by identifier.
func (r *PGXBusinessesRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Business, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+businessColumns+` FROM businesses WHERE id = $1`, id)
	business, err := scanBusiness(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBusinessNotFound
		}
		return nil, fmt.Errorf("query business by id: %w", err)
	}
	return business, nil
}

// Create stores a new business. A conflicting name/address pair surfaces as
// ErrBusinessDuplicate.
func (r *PGXBusinessesRepository) Create(ctx context.Context, business *entity.Business) error {
	if business == nil {
		return fmt.Errorf("business payload is nil")
	}
	if business.ID == uuid.Nil {
		business.ID = uuid.New()
	}

	query := `
		INSERT INTO businesses (id, name, address, website, industry, latitude, longitude, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
	`
	_, err := r.pool.Exec(ctx, query,
		business.ID,
		business.Name,
		business.Address,
		business.Website,
		business.Industry,
		business.Latitude,
		business.Longitude,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrBusinessDuplicate
		}
		return fmt.Errorf("insert business: %w", err)
	}
	return nil
}

// UpdateAnalyticsPropertyID persists a discovered GA4 property id.
func (r *PGXBusinessesRepository) UpdateAnalyticsPropertyID(ctx context.Context, id uuid.UUID, propertyID string) error {
	if propertyID == "" {
		return fmt.Errorf("property id must not be empty")
	}

	tag, err := r.pool.Exec(ctx,
		`UPDATE businesses SET analytics_property_id = $2, updated_at = NOW() WHERE id = $1`,
		id, propertyID)
	if err != nil {
		return fmt.Errorf("update analytics property id: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrBusinessNotFound
	}
	return nil
}

func scanBusiness(row pgx.Row) (*entity.Business, error) {
	var (
		business entity.Business
		address  sql.NullString
		website  sql.NullString
		industry sql.NullString
		lat      sql.NullFloat64
		lng      sql.NullFloat64
		property sql.NullString
	)

	if err := row.Scan(
		&business.ID,
		&business.Name,
		&address,
		&website,
		&industry,
		&lat,
		&lng,
		&property,
		&business.CreatedAt,
		&business.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if address.Valid {
		business.Address = &address.String
	}
	if website.Valid {
		business.Website = &website.String
	}
	if industry.Valid {
		business.Industry = &industry.String
	}
	if lat.Valid {
		business.Latitude = &lat.Float64
	}
	if lng.Valid {
		business.Longitude = &lng.Float64
	}
	if property.Valid {
		business.AnalyticsPropertyID = &property.String
	}
	return &business, nil
}
