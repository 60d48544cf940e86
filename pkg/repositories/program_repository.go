package repositories

import (
	"context"

	"github.com/alphanet-products/leonardo-backend/pkg/apperrors"
	"github.com/alphanet-products/leonardo-backend/pkg/database"
	"github.com/alphanet-products/leonardo-backend/pkg/models"
)

// ProgramRepository exposes the program-level metric projections.
type ProgramRepository interface {
	// GetProgramMetrics returns one row per program with its center,
	// ordered by apprentices_count descending.
	GetProgramMetrics(ctx context.Context) ([]models.ProgramMetricRow, error)
	// GetBackendDevelopersCount counts distinct program names matching the
	// backend-developer substrings. The match is case-sensitive and the
	// substrings overlap; the rule is part of the API contract.
	GetBackendDevelopersCount(ctx context.Context) (int64, error)
}

type programRepository struct {
	db *database.DB
}

// NewProgramRepository creates a new program repository.
func NewProgramRepository(db *database.DB) ProgramRepository {
	return &programRepository{db: db}
}

func (r *programRepository) GetProgramMetrics(ctx context.Context) ([]models.ProgramMetricRow, error) {
	query := `
		SELECT tc.center_name,
		       p.program_name,
		       COALESCE(p.apprentices_count, 0)
		FROM programs p
		JOIN training_centers tc ON tc.id = p.training_center_id
		ORDER BY p.apprentices_count DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, apperrors.Storage("failed to query program metrics", err)
	}
	defer rows.Close()

	result := make([]models.ProgramMetricRow, 0)
	for rows.Next() {
		var row models.ProgramMetricRow
		if err := rows.Scan(&row.CenterName, &row.ProgramName, &row.ApprenticesCount); err != nil {
			return nil, apperrors.Storage("failed to scan program metric row", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Storage("failed to read program metric rows", err)
	}

	return result, nil
}

func (r *programRepository) GetBackendDevelopersCount(ctx context.Context) (int64, error) {
	query := `
		SELECT COUNT(DISTINCT program_name)
		FROM programs
		WHERE program_name LIKE '%Backend%'
		   OR program_name LIKE '%Desarrollo%'
		   OR program_name LIKE '%Software%'`

	var count int64
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, apperrors.Storage("failed to count backend developer programs", err)
	}
	return count, nil
}
