package session

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"

	"github.com/KirkDiggler/mentorcast/internal/models"
	"gorm.io/gorm"
)

var tableNamePattern = regexp.MustCompile(`^[a-z0-9_]+$`)

// Config holds configuration for the gorm session repository
type Config struct {
	DB *gorm.DB
}

// Row is the column layout shared by every schedule table
type Row struct {
	ID                     int64   `gorm:"column:id;primaryKey"`
	Date                   string  `gorm:"column:date"`
	Time                   string  `gorm:"column:time"`
	Day                    string  `gorm:"column:day"`
	SubjectName            string  `gorm:"column:subject_name"`
	SubjectTopic           string  `gorm:"column:subject_topic"`
	SessionType            string  `gorm:"column:session_type"`
	MentorID               int64   `gorm:"column:mentor_id"`
	SwappedMentorID        *int64  `gorm:"column:swapped_mentor_id"`
	MeetingLink            *string `gorm:"column:meeting_link"`
	EmailSent              bool    `gorm:"column:email_sent"`
	WhatsappSent           bool    `gorm:"column:whatsapp_sent"`
	SessionMaterial        string  `gorm:"column:session_material"`
	InitialSessionMaterial string  `gorm:"column:initial_session_material"`
}

func (r *Row) toModel(table string) *models.Session {
	sessionType := models.SessionType(r.SessionType)
	if sessionType == "" {
		sessionType = models.SessionTypeNormal
	}
	return &models.Session{
		ID:                     r.ID,
		Table:                  table,
		Date:                   r.Date,
		Time:                   r.Time,
		Day:                    r.Day,
		SubjectName:            r.SubjectName,
		SubjectTopic:           r.SubjectTopic,
		SessionType:            sessionType,
		MentorID:               r.MentorID,
		SwappedMentorID:        r.SwappedMentorID,
		MeetingLink:            r.MeetingLink,
		EmailSent:              r.EmailSent,
		WhatsappSent:           r.WhatsappSent,
		SessionMaterial:        r.SessionMaterial,
		InitialSessionMaterial: r.InitialSessionMaterial,
	}
}

// gormRepository implements the Repository interface on a relational store
type gormRepository struct {
	db *gorm.DB
}

// NewGorm creates a gorm-backed session repository
func NewGorm(cfg *Config) (*gormRepository, error) {
	if cfg == nil || cfg.DB == nil {
		return nil, ErrNilDB
	}
	return &gormRepository{db: cfg.DB}, nil
}

// GetSession retrieves exactly one session matching the selector
func (r *gormRepository) GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	row, err := r.findOne(ctx, input.Table, input.Selector)
	if err != nil {
		return nil, err
	}
	return row.toModel(input.Table), nil
}

// UpdateSession resolves the selector to a single row and patches it by id
func (r *gormRepository) UpdateSession(ctx context.Context, input *UpdateSessionInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}
	if input.Patch.Empty() {
		return ErrEmptyPatch
	}

	row, err := r.findOne(ctx, input.Table, input.Selector)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Table(input.Table).
		Where("id = ?", row.ID).
		Updates(input.Patch.columns())
	if result.Error != nil {
		return fmt.Errorf("failed to update session %d in %s: %w", row.ID, input.Table, result.Error)
	}
	return nil
}

// ListSessionsAt retrieves all sessions in a table at a date and time
func (r *gormRepository) ListSessionsAt(ctx context.Context, input *ListSessionsAtInput) (*ListSessionsAtOutput, error) {
	if input == nil || input.Date == "" || input.Time == "" {
		return nil, errors.New("input, date and time cannot be empty")
	}
	if !validTable(input.Table) {
		return nil, ErrInvalidTable
	}

	var rows []Row
	err := r.db.WithContext(ctx).
		Table(input.Table).
		Where(`"date" = ? AND "time" = ?`, input.Date, input.Time).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions in %s: %w", input.Table, err)
	}

	sessions := make([]*models.Session, 0, len(rows))
	for i := range rows {
		sessions = append(sessions, rows[i].toModel(input.Table))
	}
	return &ListSessionsAtOutput{Sessions: sessions}, nil
}

// ListScheduleTables returns every table ending in _schedule, sorted by name
func (r *gormRepository) ListScheduleTables(ctx context.Context) ([]string, error) {
	all, err := r.db.WithContext(ctx).Migrator().GetTables()
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}

	tables := make([]string, 0, len(all))
	for _, t := range all {
		if models.IsScheduleTable(t) && validTable(t) {
			tables = append(tables, t)
		}
	}
	sort.Strings(tables)
	return tables, nil
}

// ListPendingAnnouncements retrieves sessions in the window with a channel not yet announced
func (r *gormRepository) ListPendingAnnouncements(ctx context.Context, input *ListPendingAnnouncementsInput) (*ListPendingAnnouncementsOutput, error) {
	if input == nil || input.FromDate == "" || input.ToDate == "" {
		return nil, errors.New("input and date window cannot be empty")
	}
	if !validTable(input.Table) {
		return nil, ErrInvalidTable
	}

	var rows []Row
	err := r.db.WithContext(ctx).
		Table(input.Table).
		Where(`"date" >= ? AND "date" <= ?`, input.FromDate, input.ToDate).
		Where("(email_sent = ? OR whatsapp_sent = ?)", false, false).
		Order(`"date", "time", id`).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list pending announcements in %s: %w", input.Table, err)
	}

	sessions := make([]*models.Session, 0, len(rows))
	for i := range rows {
		sessions = append(sessions, rows[i].toModel(input.Table))
	}
	return &ListPendingAnnouncementsOutput{Sessions: sessions}, nil
}

// findOne fetches up to two rows so that an ambiguous selector is detected instead of picking one
func (r *gormRepository) findOne(ctx context.Context, table string, sel Selector) (*Row, error) {
	if !validTable(table) {
		return nil, ErrInvalidTable
	}
	if !sel.Valid() {
		return nil, ErrInvalidSelector
	}

	q := r.db.WithContext(ctx).Table(table)
	switch {
	case sel.ID != 0:
		q = q.Where("id = ?", sel.ID)
	case sel.Time != "":
		q = q.Where(`"date" = ? AND "time" = ?`, sel.Date, sel.Time)
	default:
		q = q.Where(`"date" = ? AND mentor_id = ?`, sel.Date, sel.MentorID)
	}

	var rows []Row
	if err := q.Limit(2).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get session from %s: %w", table, err)
	}

	switch len(rows) {
	case 0:
		return nil, ErrSessionNotFound
	case 1:
		return &rows[0], nil
	default:
		return nil, &ambiguousError{table: table, count: len(rows)}
	}
}

func validTable(table string) bool {
	return tableNamePattern.MatchString(table)
}
