package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/alphanet-products/leonardo-backend/pkg/models"
	"github.com/alphanet-products/leonardo-backend/pkg/repositories"
)

// Scalar metric descriptions. The order of the scalar list is part of the
// API contract and matches these constants.
const (
	descTotalApprentices = "# Aprendices inscritos únicos"
	descBackendProfiles  = "% de perfiles DEV Backend"
	descTotalCenters     = "Total centros de formación"
	descAverageEnglish   = "Promedio inglés B1-B2"
)

// MetricsService aggregates projection rows into endpoint-specific response
// records. It is read-only and idempotent; storage failures surface
// unchanged and nothing is retried.
type MetricsService interface {
	GetScalarMetrics(ctx context.Context) ([]models.ScalarMetric, error)
	GetCenterMetrics(ctx context.Context) ([]models.CenterMetric, error)
	GetProgramMetrics(ctx context.Context) ([]models.ProgramMetric, error)
	GetDepartmentMetrics(ctx context.Context) ([]models.DepartmentMetric, error)
	GetGitHubUsersMetrics(ctx context.Context) ([]models.GitHubUserMetric, error)
	GetEnglishLevelMetrics(ctx context.Context) ([]models.EnglishLevelMetric, error)
	GetApprenticeCountMetrics(ctx context.Context) ([]models.ApprenticeCountMetric, error)
	GetRecommendedInstructorMetrics(ctx context.Context) ([]models.RecommendedInstructorMetric, error)
}

type metricsService struct {
	centerRepo     repositories.TrainingCenterRepository
	departmentRepo repositories.DepartmentRepository
	programRepo    repositories.ProgramRepository
	instructorRepo repositories.InstructorRepository
	mapper         *MetricsMapper
	logger         *zap.Logger
}

// NewMetricsService creates a new metrics service.
func NewMetricsService(
	centerRepo repositories.TrainingCenterRepository,
	departmentRepo repositories.DepartmentRepository,
	programRepo repositories.ProgramRepository,
	instructorRepo repositories.InstructorRepository,
	mapper *MetricsMapper,
	logger *zap.Logger,
) MetricsService {
	return &metricsService{
		centerRepo:     centerRepo,
		departmentRepo: departmentRepo,
		programRepo:    programRepo,
		instructorRepo: instructorRepo,
		mapper:         mapper,
		logger:         logger.Named("metrics"),
	}
}

func (s *metricsService) GetScalarMetrics(ctx context.Context) ([]models.ScalarMetric, error) {
	s.logger.Debug("Retrieving scalar metrics")

	totalApprentices, err := s.centerRepo.GetTotalApprenticesCount(ctx)
	if err != nil {
		return nil, err
	}
	totalCenters, err := s.centerRepo.GetTotalCentersCount(ctx)
	if err != nil {
		return nil, err
	}
	avgEnglish, err := s.centerRepo.GetAverageEnglishPercentage(ctx)
	if err != nil {
		return nil, err
	}
	backendCount, err := s.programRepo.GetBackendDevelopersCount(ctx)
	if err != nil {
		return nil, err
	}

	return []models.ScalarMetric{
		{Description: descTotalApprentices, Value: totalApprentices},
		{Description: descBackendProfiles, Value: s.mapper.FormatPercentage(
			s.mapper.CalculatePercentage(backendCount, totalApprentices))},
		{Description: descTotalCenters, Value: totalCenters},
		{Description: descAverageEnglish, Value: s.mapper.FormatPercentage(avgEnglish)},
	}, nil
}

func (s *metricsService) GetCenterMetrics(ctx context.Context) ([]models.CenterMetric, error) {
	s.logger.Debug("Retrieving center metrics with recommended instructors")

	rows, err := s.centerRepo.GetCenterMetrics(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]models.CenterMetric, 0, len(rows))
	for _, row := range rows {
		instructors, err := s.instructorRepo.GetRecommendedInstructorsByCenter(ctx, row.CenterID)
		if err != nil {
			return nil, err
		}
		result = append(result, models.CenterMetric{
			CenterName:             row.CenterName,
			Department:             row.Department,
			TotalApprentices:       row.TotalApprentices,
			InstructorsRecommended: instructors,
			GithubUsers:            row.GithubUsers,
			EnglishB1B2:            row.EnglishB1B2,
		})
	}

	return result, nil
}

func (s *metricsService) GetProgramMetrics(ctx context.Context) ([]models.ProgramMetric, error) {
	s.logger.Debug("Retrieving program metrics")

	rows, err := s.programRepo.GetProgramMetrics(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]models.ProgramMetric, 0, len(rows))
	for _, row := range rows {
		result = append(result, models.ProgramMetric{
			CenterName:       row.CenterName,
			ProgramName:      row.ProgramName,
			ApprenticesCount: row.ApprenticesCount,
		})
	}

	return result, nil
}

func (s *metricsService) GetDepartmentMetrics(ctx context.Context) ([]models.DepartmentMetric, error) {
	s.logger.Debug("Retrieving department metrics")

	rows, err := s.departmentRepo.GetDepartmentMetrics(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]models.DepartmentMetric, 0, len(rows))
	for _, row := range rows {
		result = append(result, models.DepartmentMetric{
			Department:       row.Department,
			ApprenticesCount: int(row.ApprenticesCount),
		})
	}

	return result, nil
}

func (s *metricsService) GetGitHubUsersMetrics(ctx context.Context) ([]models.GitHubUserMetric, error) {
	s.logger.Debug("Retrieving GitHub users metrics")

	rows, err := s.centerRepo.GetGitHubUsersMetrics(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]models.GitHubUserMetric, 0, len(rows))
	for _, row := range rows {
		result = append(result, models.GitHubUserMetric{
			CenterName:       row.CenterName,
			Department:       row.Department,
			GithubUsers:      row.GithubUsers,
			GithubPercentage: s.centerPercentage(row.GithubUsers, row.TotalApprentices),
		})
	}

	return result, nil
}

func (s *metricsService) GetEnglishLevelMetrics(ctx context.Context) ([]models.EnglishLevelMetric, error) {
	s.logger.Debug("Retrieving English level B1/B2 metrics")

	rows, err := s.centerRepo.GetEnglishLevelMetrics(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]models.EnglishLevelMetric, 0, len(rows))
	for _, row := range rows {
		result = append(result, models.EnglishLevelMetric{
			CenterName:        row.CenterName,
			Department:        row.Department,
			EnglishB1B2:       row.EnglishB1B2,
			EnglishPercentage: s.centerPercentage(row.EnglishB1B2, row.TotalApprentices),
		})
	}

	return result, nil
}

// centerPercentage renders the per-center share string. A center without
// apprentices yields the literal "0%" (no decimal); the asymmetry with
// FormatPercentage is intentional and part of the contract.
func (s *metricsService) centerPercentage(part, total int) string {
	if total <= 0 {
		return "0%"
	}
	return s.mapper.FormatPercentage(s.mapper.CalculatePercentage(int64(part), int64(total)))
}

func (s *metricsService) GetApprenticeCountMetrics(ctx context.Context) ([]models.ApprenticeCountMetric, error) {
	s.logger.Debug("Retrieving apprentice count metrics by center")

	rows, err := s.centerRepo.GetApprenticeCountMetrics(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]models.ApprenticeCountMetric, 0, len(rows))
	for _, row := range rows {
		result = append(result, models.ApprenticeCountMetric{
			CenterName:       row.CenterName,
			Department:       row.Department,
			TotalApprentices: row.TotalApprentices,
		})
	}

	return result, nil
}

func (s *metricsService) GetRecommendedInstructorMetrics(ctx context.Context) ([]models.RecommendedInstructorMetric, error) {
	s.logger.Debug("Retrieving recommended instructor metrics by center")

	rows, err := s.centerRepo.GetCentersForInstructorList(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]models.RecommendedInstructorMetric, 0, len(rows))
	for _, row := range rows {
		instructors, err := s.instructorRepo.GetRecommendedInstructorsByCenter(ctx, row.CenterID)
		if err != nil {
			return nil, err
		}
		result = append(result, models.RecommendedInstructorMetric{
			CenterName:             row.CenterName,
			Department:             row.Department,
			InstructorsRecommended: instructors,
			InstructorsCount:       len(instructors),
		})
	}

	return result, nil
}
