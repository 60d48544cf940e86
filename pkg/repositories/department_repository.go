package repositories

import (
	"context"

	"github.com/alphanet-products/leonardo-backend/pkg/apperrors"
	"github.com/alphanet-products/leonardo-backend/pkg/database"
	"github.com/alphanet-products/leonardo-backend/pkg/models"
)

// DepartmentRepository exposes the department-level metric projection and
// the emptiness check used by the bootstrap seeder.
type DepartmentRepository interface {
	// GetDepartmentMetrics returns one row per department with the
	// apprentice sum over its centers (0 for a department without
	// centers), ordered by that sum descending.
	GetDepartmentMetrics(ctx context.Context) ([]models.DepartmentMetricRow, error)
	// Count returns the number of departments.
	Count(ctx context.Context) (int64, error)
}

type departmentRepository struct {
	db *database.DB
}

// NewDepartmentRepository creates a new department repository.
func NewDepartmentRepository(db *database.DB) DepartmentRepository {
	return &departmentRepository{db: db}
}

func (r *departmentRepository) GetDepartmentMetrics(ctx context.Context) ([]models.DepartmentMetricRow, error) {
	query := `
		SELECT d.department_name,
		       COALESCE(SUM(tc.total_apprentices), 0) AS apprentices_count
		FROM departments d
		LEFT JOIN training_centers tc ON tc.department_id = d.id
		GROUP BY d.department_name
		ORDER BY apprentices_count DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, apperrors.Storage("failed to query department metrics", err)
	}
	defer rows.Close()

	result := make([]models.DepartmentMetricRow, 0)
	for rows.Next() {
		var row models.DepartmentMetricRow
		if err := rows.Scan(&row.Department, &row.ApprenticesCount); err != nil {
			return nil, apperrors.Storage("failed to scan department metric row", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Storage("failed to read department metric rows", err)
	}

	return result, nil
}

func (r *departmentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM departments`).Scan(&count); err != nil {
		return 0, apperrors.Storage("failed to count departments", err)
	}
	return count, nil
}
