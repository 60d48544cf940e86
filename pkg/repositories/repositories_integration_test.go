//go:build integration

package repositories_test

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/alphanet-products/leonardo-backend/pkg/repositories"
	"github.com/alphanet-products/leonardo-backend/pkg/services"
	"github.com/alphanet-products/leonardo-backend/pkg/testhelpers"
)

func seedDatabase(t *testing.T) *testhelpers.TestDB {
	t.Helper()

	testDB := testhelpers.GetTestDB(t)
	testDB.TruncateAll(t)

	departmentRepo := repositories.NewDepartmentRepository(testDB.DB)
	seeder := services.NewDataInitializer(testDB.DB, departmentRepo, zap.NewNop())
	require.NoError(t, seeder.Run(context.Background()))

	return testDB
}

func TestDataInitializer_SeedsSampleData(t *testing.T) {
	testDB := seedDatabase(t)
	ctx := context.Background()

	var departments, centers, programs, instructors int
	require.NoError(t, testDB.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM departments`).Scan(&departments))
	require.NoError(t, testDB.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM training_centers`).Scan(&centers))
	require.NoError(t, testDB.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM programs`).Scan(&programs))
	require.NoError(t, testDB.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM instructors`).Scan(&instructors))

	assert.Equal(t, 4, departments)
	assert.Equal(t, 4, centers)
	assert.Equal(t, 12, programs)
	assert.Equal(t, 10, instructors)
}

func TestDataInitializer_Idempotent(t *testing.T) {
	testDB := seedDatabase(t)
	ctx := context.Background()

	departmentRepo := repositories.NewDepartmentRepository(testDB.DB)
	seeder := services.NewDataInitializer(testDB.DB, departmentRepo, zap.NewNop())
	require.NoError(t, seeder.Run(ctx))

	var departments int
	require.NoError(t, testDB.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM departments`).Scan(&departments))
	assert.Equal(t, 4, departments)
}

func TestTrainingCenterRepository_Totals(t *testing.T) {
	testDB := seedDatabase(t)
	ctx := context.Background()

	repo := repositories.NewTrainingCenterRepository(testDB.DB)

	total, err := repo.GetTotalApprenticesCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(766), total)

	centers, err := repo.GetTotalCentersCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), centers)

	avg, err := repo.GetAverageEnglishPercentage(ctx)
	require.NoError(t, err)
	assert.Greater(t, avg, 0.0)
	assert.Less(t, avg, 100.0)
}

func TestTrainingCenterRepository_CenterMetricsOrdering(t *testing.T) {
	testDB := seedDatabase(t)

	repo := repositories.NewTrainingCenterRepository(testDB.DB)
	rows, err := repo.GetCenterMetrics(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 4)

	// Ordered by total apprentices descending
	assert.Equal(t, "SENA - Centro de Tecnologías del Transporte", rows[0].CenterName)
	assert.Equal(t, 245, rows[0].TotalApprentices)
	assert.Equal(t, "Bogotá D.C.", rows[0].Department)
	for i := 1; i < len(rows); i++ {
		assert.GreaterOrEqual(t, rows[i-1].TotalApprentices, rows[i].TotalApprentices)
	}
}

func TestTrainingCenterRepository_GitHubAndEnglishOrdering(t *testing.T) {
	testDB := seedDatabase(t)
	ctx := context.Background()

	repo := repositories.NewTrainingCenterRepository(testDB.DB)

	github, err := repo.GetGitHubUsersMetrics(ctx)
	require.NoError(t, err)
	require.Len(t, github, 4)
	assert.Equal(t, 180, github[0].GithubUsers)
	for i := 1; i < len(github); i++ {
		assert.GreaterOrEqual(t, github[i-1].GithubUsers, github[i].GithubUsers)
	}

	english, err := repo.GetEnglishLevelMetrics(ctx)
	require.NoError(t, err)
	require.Len(t, english, 4)
	assert.Equal(t, 156, english[0].EnglishB1B2)
	for i := 1; i < len(english); i++ {
		assert.GreaterOrEqual(t, english[i-1].EnglishB1B2, english[i].EnglishB1B2)
	}
}

func TestTrainingCenterRepository_CentersForInstructorListOrdering(t *testing.T) {
	testDB := seedDatabase(t)

	repo := repositories.NewTrainingCenterRepository(testDB.DB)
	rows, err := repo.GetCentersForInstructorList(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 4)

	names := make([]string, len(rows))
	for i, row := range rows {
		names[i] = row.CenterName
	}
	assert.True(t, sort.StringsAreSorted(names), "centers should be ordered by name ascending, got %v", names)
}

func TestDepartmentRepository_MetricsOrdering(t *testing.T) {
	testDB := seedDatabase(t)

	repo := repositories.NewDepartmentRepository(testDB.DB)
	rows, err := repo.GetDepartmentMetrics(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, "Bogotá D.C.", rows[0].Department)
	assert.Equal(t, int64(245), rows[0].ApprenticesCount)
	for i := 1; i < len(rows); i++ {
		assert.GreaterOrEqual(t, rows[i-1].ApprenticesCount, rows[i].ApprenticesCount)
	}
}

func TestProgramRepository_Metrics(t *testing.T) {
	testDB := seedDatabase(t)
	ctx := context.Background()

	repo := repositories.NewProgramRepository(testDB.DB)

	rows, err := repo.GetProgramMetrics(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 12)

	assert.Equal(t, "Desarrollo de Software", rows[0].ProgramName)
	assert.Equal(t, 125, rows[0].ApprenticesCount)
	for i := 1; i < len(rows); i++ {
		assert.GreaterOrEqual(t, rows[i-1].ApprenticesCount, rows[i].ApprenticesCount)
	}
}

func TestProgramRepository_BackendDevelopersCount(t *testing.T) {
	testDB := seedDatabase(t)

	repo := repositories.NewProgramRepository(testDB.DB)
	count, err := repo.GetBackendDevelopersCount(context.Background())
	require.NoError(t, err)

	// Distinct program names containing Backend, Desarrollo or Software:
	// "Análisis y Desarrollo de Software", "Desarrollo de Software",
	// "Desarrollo de Aplicaciones Web". Duplicated names count once.
	assert.Equal(t, int64(3), count)
}

func TestInstructorRepository_RecommendedByCenter(t *testing.T) {
	testDB := seedDatabase(t)
	ctx := context.Background()

	var centerID int64
	require.NoError(t, testDB.Pool.QueryRow(ctx,
		`SELECT id FROM training_centers WHERE center_name = 'SENA - Centro de Tecnologías del Transporte'`,
	).Scan(&centerID))

	repo := repositories.NewInstructorRepository(testDB.DB)
	names, err := repo.GetRecommendedInstructorsByCenter(ctx, centerID)
	require.NoError(t, err)

	// Recommended only, sorted by name; Roberto Silva Vega is not recommended
	assert.Equal(t, []string{"Claudia Milena Torres", "Jorge Luis Martínez"}, names)
}

func TestInstructorRepository_UnknownCenterReturnsEmptyList(t *testing.T) {
	testDB := seedDatabase(t)

	repo := repositories.NewInstructorRepository(testDB.DB)
	names, err := repo.GetRecommendedInstructorsByCenter(context.Background(), 999999)
	require.NoError(t, err)
	assert.NotNil(t, names)
	assert.Empty(t, names)
}
