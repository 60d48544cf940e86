package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/alphanet-products/leonardo-backend/pkg/database"
	"github.com/alphanet-products/leonardo-backend/pkg/repositories"
)

type seedCenter struct {
	name             string
	department       string
	totalApprentices int
	githubUsers      int
	englishB1B2      int
}

type seedProgram struct {
	name             string
	apprenticesCount int
	center           string
}

type seedInstructor struct {
	name        string
	recommended bool
	center      string
}

var seedDepartments = []string{
	"Cundinamarca",
	"Bogotá D.C.",
	"Antioquia",
	"Valle del Cauca",
}

var seedCenters = []seedCenter{
	{"SENA - Centro de Biotecnología Industrial", "Cundinamarca", 167, 120, 89},
	{"SENA - Centro de Tecnologías del Transporte", "Bogotá D.C.", 245, 180, 156},
	{"SENA - Centro de Tecnología de la Manufactura Avanzada", "Antioquia", 198, 145, 123},
	{"SENA - Centro de Electricidad y Automatización Industrial", "Valle del Cauca", 156, 98, 78},
}

var seedPrograms = []seedProgram{
	{"Análisis y Desarrollo de Software", 85, "SENA - Centro de Biotecnología Industrial"},
	{"Gestión de Redes de Datos", 45, "SENA - Centro de Biotecnología Industrial"},
	{"Mantenimiento de Equipos de Cómputo", 37, "SENA - Centro de Biotecnología Industrial"},
	{"Desarrollo de Software", 125, "SENA - Centro de Tecnologías del Transporte"},
	{"Sistemas", 78, "SENA - Centro de Tecnologías del Transporte"},
	{"Telecomunicaciones", 42, "SENA - Centro de Tecnologías del Transporte"},
	{"Análisis y Desarrollo de Software", 98, "SENA - Centro de Tecnología de la Manufactura Avanzada"},
	{"Automatización Industrial", 56, "SENA - Centro de Tecnología de la Manufactura Avanzada"},
	{"Electrónica", 44, "SENA - Centro de Tecnología de la Manufactura Avanzada"},
	{"Desarrollo de Aplicaciones Web", 78, "SENA - Centro de Electricidad y Automatización Industrial"},
	{"Electricidad Industrial", 45, "SENA - Centro de Electricidad y Automatización Industrial"},
	{"Control de Procesos", 33, "SENA - Centro de Electricidad y Automatización Industrial"},
}

var seedInstructors = []seedInstructor{
	{"María García López", true, "SENA - Centro de Biotecnología Industrial"},
	{"Carlos Andrés Rodríguez", true, "SENA - Centro de Biotecnología Industrial"},
	{"Ana Patricia Hernández", false, "SENA - Centro de Biotecnología Industrial"},
	{"Jorge Luis Martínez", true, "SENA - Centro de Tecnologías del Transporte"},
	{"Claudia Milena Torres", true, "SENA - Centro de Tecnologías del Transporte"},
	{"Roberto Silva Vega", false, "SENA - Centro de Tecnologías del Transporte"},
	{"Patricia Restrepo Gómez", true, "SENA - Centro de Tecnología de la Manufactura Avanzada"},
	{"Fernando Agudelo Mesa", true, "SENA - Centro de Tecnología de la Manufactura Avanzada"},
	{"Diana Carolina Muñoz", true, "SENA - Centro de Electricidad y Automatización Industrial"},
	{"Andrés Felipe Vargas", false, "SENA - Centro de Electricidad y Automatización Industrial"},
}

// DataInitializer seeds the sample dataset on first startup. Seeding runs
// only when the departments table is empty, so restarts are no-ops.
type DataInitializer struct {
	db             *database.DB
	departmentRepo repositories.DepartmentRepository
	logger         *zap.Logger
}

// NewDataInitializer creates a new data initializer.
func NewDataInitializer(db *database.DB, departmentRepo repositories.DepartmentRepository, logger *zap.Logger) *DataInitializer {
	return &DataInitializer{
		db:             db,
		departmentRepo: departmentRepo,
		logger:         logger.Named("seed"),
	}
}

// Run seeds the dataset if the database is empty. All rows are inserted in
// a single transaction so a failure leaves the database untouched.
func (d *DataInitializer) Run(ctx context.Context) error {
	count, err := d.departmentRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to check existing data: %w", err)
	}
	if count > 0 {
		d.logger.Info("Data already exists, skipping initialization")
		return nil
	}

	d.logger.Info("Initializing sample data")

	tx, err := d.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	departmentIDs := make(map[string]int64, len(seedDepartments))
	for _, name := range seedDepartments {
		var id int64
		err := tx.QueryRow(ctx,
			`INSERT INTO departments (department_name) VALUES ($1) RETURNING id`,
			name,
		).Scan(&id)
		if err != nil {
			return fmt.Errorf("failed to insert department %q: %w", name, err)
		}
		departmentIDs[name] = id
	}

	centerIDs := make(map[string]int64, len(seedCenters))
	for _, c := range seedCenters {
		var id int64
		err := tx.QueryRow(ctx,
			`INSERT INTO training_centers (center_name, department_id, total_apprentices, github_users, english_b1_b2)
			 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
			c.name, departmentIDs[c.department], c.totalApprentices, c.githubUsers, c.englishB1B2,
		).Scan(&id)
		if err != nil {
			return fmt.Errorf("failed to insert training center %q: %w", c.name, err)
		}
		centerIDs[c.name] = id
	}

	for _, p := range seedPrograms {
		_, err := tx.Exec(ctx,
			`INSERT INTO programs (program_name, apprentices_count, training_center_id) VALUES ($1, $2, $3)`,
			p.name, p.apprenticesCount, centerIDs[p.center],
		)
		if err != nil {
			return fmt.Errorf("failed to insert program %q: %w", p.name, err)
		}
	}

	for _, i := range seedInstructors {
		_, err := tx.Exec(ctx,
			`INSERT INTO instructors (instructor_name, is_recommended, training_center_id) VALUES ($1, $2, $3)`,
			i.name, i.recommended, centerIDs[i.center],
		)
		if err != nil {
			return fmt.Errorf("failed to insert instructor %q: %w", i.name, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit seed transaction: %w", err)
	}

	d.logger.Info("Sample data initialization completed",
		zap.Int("departments", len(seedDepartments)),
		zap.Int("training_centers", len(seedCenters)),
		zap.Int("programs", len(seedPrograms)),
		zap.Int("instructors", len(seedInstructors)))

	return nil
}
