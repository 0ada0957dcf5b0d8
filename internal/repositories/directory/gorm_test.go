package directory

import (
	"context"
	"testing"

	"github.com/KirkDiggler/mentorcast/internal/models"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type GormDirectoryTestSuite struct {
	suite.Suite
	db   *gorm.DB
	repo Repository
	ctx  context.Context
}

func (s *GormDirectoryTestSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	s.Require().NoError(err)
	sqlDB, err := db.DB()
	s.Require().NoError(err)
	sqlDB.SetMaxOpenConns(1)

	s.Require().NoError(db.Table(studentsTable).AutoMigrate(&StudentRow{}))
	s.Require().NoError(db.Table(mentorsTable).AutoMigrate(&PersonRow{}))
	s.Require().NoError(db.Table(administratorsTable).AutoMigrate(&PersonRow{}))

	s.Require().NoError(db.Table(studentsTable).Create(&[]StudentRow{
		{ID: 1, Name: "Asha", Email: "asha@example.com", Phone: "9876543210", CohortType: "basic", CohortNumber: "6.0"},
		{ID: 2, Name: "Ravi", Email: "ravi@example.com", CohortType: "Basic", CohortNumber: "6.0"},
		{ID: 3, Name: "Meera", Email: "meera@example.com", CohortType: "Basic", CohortNumber: "5.0"},
	}).Error)
	s.Require().NoError(db.Table(mentorsTable).Create(&PersonRow{ID: 7, Name: "Kiran", Email: "kiran@example.com", Phone: "+91 98765 00007"}).Error)
	s.Require().NoError(db.Table(administratorsTable).Create(&[]PersonRow{
		{ID: 1, Name: "Ops", Email: "ops@example.com"},
		{ID: 2, Name: "Lead", Email: "lead@example.com"},
	}).Error)

	s.db = db
	s.ctx = context.Background()
	repo, err := NewGorm(&Config{DB: db})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *GormDirectoryTestSuite) TearDownTest() {
	if sqlDB, err := s.db.DB(); err == nil {
		sqlDB.Close()
	}
}

func TestGormDirectoryTestSuite(t *testing.T) {
	suite.Run(t, new(GormDirectoryTestSuite))
}

func (s *GormDirectoryTestSuite) TestListCohortStudents() {
	out, err := s.repo.ListCohortStudents(s.ctx, &ListCohortStudentsInput{Cohort: &models.Cohort{Type: "Basic", Number: "6.0"}})
	s.Require().NoError(err)
	s.Require().Len(out.Students, 2)
	s.Equal("Asha", out.Students[0].Name)
	s.Equal("Ravi", out.Students[1].Name)

	_, err = s.repo.ListCohortStudents(s.ctx, &ListCohortStudentsInput{})
	s.ErrorIs(err, ErrNilCohort)
}

func (s *GormDirectoryTestSuite) TestGetMentor() {
	mentor, err := s.repo.GetMentor(s.ctx, &GetMentorInput{MentorID: 7})
	s.Require().NoError(err)
	s.Equal("kiran@example.com", mentor.Email)
	s.Equal(int64(7), mentor.ID)

	_, err = s.repo.GetMentor(s.ctx, &GetMentorInput{MentorID: 8})
	s.ErrorIs(err, ErrMentorNotFound)
}

func (s *GormDirectoryTestSuite) TestListAdministrators() {
	out, err := s.repo.ListAdministrators(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(out.Administrators, 2)
	s.Equal("ops@example.com", out.Administrators[0].Email)
}
