package repositories

import (
	"context"

	"github.com/alphanet-products/leonardo-backend/pkg/apperrors"
	"github.com/alphanet-products/leonardo-backend/pkg/database"
	"github.com/alphanet-products/leonardo-backend/pkg/models"
)

// TrainingCenterRepository exposes the center-level metric projections.
// All queries are parameterless reads with a fixed ordering; clients rely
// on that ordering.
type TrainingCenterRepository interface {
	// GetCenterMetrics returns one row per center with its counters,
	// ordered by total_apprentices descending.
	GetCenterMetrics(ctx context.Context) ([]models.CenterMetricRow, error)
	// GetTotalCentersCount returns the number of training centers.
	GetTotalCentersCount(ctx context.Context) (int64, error)
	// GetTotalApprenticesCount returns the apprentice sum across all
	// centers, 0 when there are none.
	GetTotalApprenticesCount(ctx context.Context) (int64, error)
	// GetAverageEnglishPercentage returns the mean of
	// english_b1_b2/total_apprentices*100 over centers with apprentices,
	// 0.0 when no such center exists.
	GetAverageEnglishPercentage(ctx context.Context) (float64, error)
	// GetGitHubUsersMetrics returns per-center VCS user counts ordered by
	// github_users descending.
	GetGitHubUsersMetrics(ctx context.Context) ([]models.GitHubUserRow, error)
	// GetEnglishLevelMetrics returns per-center English B1/B2 counts
	// ordered by english_b1_b2 descending.
	GetEnglishLevelMetrics(ctx context.Context) ([]models.EnglishLevelRow, error)
	// GetApprenticeCountMetrics returns per-center apprentice totals
	// ordered by total_apprentices descending.
	GetApprenticeCountMetrics(ctx context.Context) ([]models.ApprenticeCountRow, error)
	// GetCentersForInstructorList returns center identifiers ordered by
	// center_name ascending.
	GetCentersForInstructorList(ctx context.Context) ([]models.CenterRefRow, error)
}

type trainingCenterRepository struct {
	db *database.DB
}

// NewTrainingCenterRepository creates a new training center repository.
func NewTrainingCenterRepository(db *database.DB) TrainingCenterRepository {
	return &trainingCenterRepository{db: db}
}

func (r *trainingCenterRepository) GetCenterMetrics(ctx context.Context) ([]models.CenterMetricRow, error) {
	query := `
		SELECT tc.center_name,
		       d.department_name,
		       COALESCE(tc.total_apprentices, 0),
		       COALESCE(tc.github_users, 0),
		       COALESCE(tc.english_b1_b2, 0),
		       tc.id
		FROM training_centers tc
		JOIN departments d ON d.id = tc.department_id
		ORDER BY tc.total_apprentices DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, apperrors.Storage("failed to query center metrics", err)
	}
	defer rows.Close()

	result := make([]models.CenterMetricRow, 0)
	for rows.Next() {
		var row models.CenterMetricRow
		if err := rows.Scan(&row.CenterName, &row.Department, &row.TotalApprentices,
			&row.GithubUsers, &row.EnglishB1B2, &row.CenterID); err != nil {
			return nil, apperrors.Storage("failed to scan center metric row", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Storage("failed to read center metric rows", err)
	}

	return result, nil
}

func (r *trainingCenterRepository) GetTotalCentersCount(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM training_centers`).Scan(&count)
	if err != nil {
		return 0, apperrors.Storage("failed to count training centers", err)
	}
	return count, nil
}

func (r *trainingCenterRepository) GetTotalApprenticesCount(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(total_apprentices), 0) FROM training_centers`).Scan(&total)
	if err != nil {
		return 0, apperrors.Storage("failed to sum apprentices", err)
	}
	return total, nil
}

func (r *trainingCenterRepository) GetAverageEnglishPercentage(ctx context.Context) (float64, error) {
	query := `
		SELECT COALESCE(AVG(english_b1_b2::double precision / total_apprentices::double precision * 100), 0)
		FROM training_centers
		WHERE total_apprentices > 0`

	var avg float64
	if err := r.db.QueryRow(ctx, query).Scan(&avg); err != nil {
		return 0, apperrors.Storage("failed to compute average english percentage", err)
	}
	return avg, nil
}

func (r *trainingCenterRepository) GetGitHubUsersMetrics(ctx context.Context) ([]models.GitHubUserRow, error) {
	query := `
		SELECT tc.center_name,
		       d.department_name,
		       COALESCE(tc.github_users, 0),
		       COALESCE(tc.total_apprentices, 0)
		FROM training_centers tc
		JOIN departments d ON d.id = tc.department_id
		ORDER BY tc.github_users DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, apperrors.Storage("failed to query github user metrics", err)
	}
	defer rows.Close()

	result := make([]models.GitHubUserRow, 0)
	for rows.Next() {
		var row models.GitHubUserRow
		if err := rows.Scan(&row.CenterName, &row.Department, &row.GithubUsers, &row.TotalApprentices); err != nil {
			return nil, apperrors.Storage("failed to scan github user row", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Storage("failed to read github user rows", err)
	}

	return result, nil
}

func (r *trainingCenterRepository) GetEnglishLevelMetrics(ctx context.Context) ([]models.EnglishLevelRow, error) {
	query := `
		SELECT tc.center_name,
		       d.department_name,
		       COALESCE(tc.english_b1_b2, 0),
		       COALESCE(tc.total_apprentices, 0)
		FROM training_centers tc
		JOIN departments d ON d.id = tc.department_id
		ORDER BY tc.english_b1_b2 DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, apperrors.Storage("failed to query english level metrics", err)
	}
	defer rows.Close()

	result := make([]models.EnglishLevelRow, 0)
	for rows.Next() {
		var row models.EnglishLevelRow
		if err := rows.Scan(&row.CenterName, &row.Department, &row.EnglishB1B2, &row.TotalApprentices); err != nil {
			return nil, apperrors.Storage("failed to scan english level row", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Storage("failed to read english level rows", err)
	}

	return result, nil
}

func (r *trainingCenterRepository) GetApprenticeCountMetrics(ctx context.Context) ([]models.ApprenticeCountRow, error) {
	query := `
		SELECT tc.center_name,
		       d.department_name,
		       COALESCE(tc.total_apprentices, 0)
		FROM training_centers tc
		JOIN departments d ON d.id = tc.department_id
		ORDER BY tc.total_apprentices DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, apperrors.Storage("failed to query apprentice count metrics", err)
	}
	defer rows.Close()

	result := make([]models.ApprenticeCountRow, 0)
	for rows.Next() {
		var row models.ApprenticeCountRow
		if err := rows.Scan(&row.CenterName, &row.Department, &row.TotalApprentices); err != nil {
			return nil, apperrors.Storage("failed to scan apprentice count row", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Storage("failed to read apprentice count rows", err)
	}

	return result, nil
}

func (r *trainingCenterRepository) GetCentersForInstructorList(ctx context.Context) ([]models.CenterRefRow, error) {
	query := `
		SELECT tc.center_name,
		       d.department_name,
		       tc.id
		FROM training_centers tc
		JOIN departments d ON d.id = tc.department_id
		ORDER BY tc.center_name ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, apperrors.Storage("failed to query centers for instructor list", err)
	}
	defer rows.Close()

	result := make([]models.CenterRefRow, 0)
	for rows.Next() {
		var row models.CenterRefRow
		if err := rows.Scan(&row.CenterName, &row.Department, &row.CenterID); err != nil {
			return nil, apperrors.Storage("failed to scan center ref row", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Storage("failed to read center ref rows", err)
	}

	return result, nil
}
