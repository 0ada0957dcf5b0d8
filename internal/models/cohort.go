package models

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrCohortUnresolvable is returned when a table name does not encode a cohort
var ErrCohortUnresolvable = errors.New("cohort unresolvable from table name")

const scheduleTableSuffix = "_schedule"

var scheduleTablePattern = regexp.MustCompile(`^([a-z]+)(\d+)_(\d+)_schedule$`)

// Cohort is a numbered batch of students sharing one schedule table
type Cohort struct {
	// Type is the display form of the cohort type, e.g. "Basic"
	Type string

	// Number is the dotted cohort number, e.g. "6.0"
	Number string
}

// ParseCohort parses a table name of the form <type><major>_<minor>_schedule
func ParseCohort(table string) (*Cohort, error) {
	m := scheduleTablePattern.FindStringSubmatch(table)
	if m == nil {
		return nil, fmt.Errorf("%w: %q", ErrCohortUnresolvable, table)
	}
	return &Cohort{
		Type:   strings.ToUpper(m[1][:1]) + m[1][1:],
		Number: m[2] + "." + m[3],
	}, nil
}

// TableName reconstructs the schedule table name of the cohort
func (c *Cohort) TableName() (string, error) {
	major, minor, ok := strings.Cut(c.Number, ".")
	if !ok || c.Type == "" || major == "" || minor == "" {
		return "", fmt.Errorf("%w: %q %q", ErrCohortUnresolvable, c.Type, c.Number)
	}
	name := strings.ToLower(c.Type) + major + "_" + minor + scheduleTableSuffix
	if !scheduleTablePattern.MatchString(name) {
		return "", fmt.Errorf("%w: %q %q", ErrCohortUnresolvable, c.Type, c.Number)
	}
	return name, nil
}

// Label is the human readable cohort name, e.g. "Basic 6.0"
func (c *Cohort) Label() string {
	return c.Type + " " + c.Number
}

// IsScheduleTable reports whether a table name follows the schedule table suffix
func IsScheduleTable(table string) bool {
	return strings.HasSuffix(table, scheduleTableSuffix) && len(table) > len(scheduleTableSuffix)
}
