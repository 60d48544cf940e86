package repositories

import (
	"context"

	"github.com/alphanet-products/leonardo-backend/pkg/apperrors"
	"github.com/alphanet-products/leonardo-backend/pkg/database"
)

// InstructorRepository exposes the recommended-instructor lookup.
type InstructorRepository interface {
	// GetRecommendedInstructorsByCenter returns the names of recommended
	// instructors for a center, ordered ascending by name. The ordering is
	// a contract choice; the store has no meaningful insertion order.
	GetRecommendedInstructorsByCenter(ctx context.Context, trainingCenterID int64) ([]string, error)
}

type instructorRepository struct {
	db *database.DB
}

// NewInstructorRepository creates a new instructor repository.
func NewInstructorRepository(db *database.DB) InstructorRepository {
	return &instructorRepository{db: db}
}

func (r *instructorRepository) GetRecommendedInstructorsByCenter(ctx context.Context, trainingCenterID int64) ([]string, error) {
	query := `
		SELECT instructor_name
		FROM instructors
		WHERE training_center_id = $1 AND is_recommended
		ORDER BY instructor_name ASC`

	rows, err := r.db.Query(ctx, query, trainingCenterID)
	if err != nil {
		return nil, apperrors.Storage("failed to query recommended instructors", err)
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, apperrors.Storage("failed to scan instructor name", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Storage("failed to read instructor rows", err)
	}

	return names, nil
}
