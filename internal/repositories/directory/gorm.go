package directory

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/mentorcast/internal/models"
	"gorm.io/gorm"
)

const (
	studentsTable       = "students"
	mentorsTable        = "mentors"
	administratorsTable = "administrators"
)

// Config holds configuration for the gorm directory repository
type Config struct {
	DB *gorm.DB
}

// StudentRow is the students table layout
type StudentRow struct {
	ID           int64  `gorm:"column:id;primaryKey"`
	Name         string `gorm:"column:name"`
	Email        string `gorm:"column:email"`
	Phone        string `gorm:"column:phone"`
	CohortType   string `gorm:"column:cohort_type"`
	CohortNumber string `gorm:"column:cohort_number"`
}

// PersonRow is the mentors and administrators table layout
type PersonRow struct {
	ID    int64  `gorm:"column:id;primaryKey"`
	Name  string `gorm:"column:name"`
	Email string `gorm:"column:email"`
	Phone string `gorm:"column:phone"`
}

func (p *PersonRow) toContact() *models.Contact {
	return &models.Contact{ID: p.ID, Name: p.Name, Email: p.Email, Phone: p.Phone}
}

// gormRepository implements the Repository interface on a relational store
type gormRepository struct {
	db *gorm.DB
}

// NewGorm creates a gorm-backed directory
func NewGorm(cfg *Config) (*gormRepository, error) {
	if cfg == nil || cfg.DB == nil {
		return nil, ErrNilDB
	}
	return &gormRepository{db: cfg.DB}, nil
}

// ListCohortStudents retrieves every student enrolled in a cohort
func (r *gormRepository) ListCohortStudents(ctx context.Context, input *ListCohortStudentsInput) (*ListCohortStudentsOutput, error) {
	if input == nil || input.Cohort == nil {
		return nil, ErrNilCohort
	}

	var rows []StudentRow
	err := r.db.WithContext(ctx).
		Table(studentsTable).
		Where("LOWER(cohort_type) = LOWER(?) AND cohort_number = ?", input.Cohort.Type, input.Cohort.Number).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list students of %s: %w", input.Cohort.Label(), err)
	}

	students := make([]*models.Contact, 0, len(rows))
	for _, row := range rows {
		students = append(students, &models.Contact{ID: row.ID, Name: row.Name, Email: row.Email, Phone: row.Phone})
	}
	return &ListCohortStudentsOutput{Students: students}, nil
}

// GetMentor retrieves a mentor's contact details
func (r *gormRepository) GetMentor(ctx context.Context, input *GetMentorInput) (*models.Contact, error) {
	if input == nil || input.MentorID == 0 {
		return nil, errors.New("input and mentor ID cannot be empty")
	}

	var row PersonRow
	err := r.db.WithContext(ctx).
		Table(mentorsTable).
		Where("id = ?", input.MentorID).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMentorNotFound
		}
		return nil, fmt.Errorf("failed to get mentor %d: %w", input.MentorID, err)
	}
	return row.toContact(), nil
}

// ListAdministrators retrieves every administrator
func (r *gormRepository) ListAdministrators(ctx context.Context) (*ListAdministratorsOutput, error) {
	var rows []PersonRow
	err := r.db.WithContext(ctx).
		Table(administratorsTable).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list administrators: %w", err)
	}

	admins := make([]*models.Contact, 0, len(rows))
	for i := range rows {
		admins = append(admins, rows[i].toContact())
	}
	return &ListAdministratorsOutput{Administrators: admins}, nil
}
