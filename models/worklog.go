package models

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// WorkLog is one recorded shift. HoursWorked is derived from the time pair on
// every write and is stored as a 2-decimal string so it survives the wire
// unchanged (e.g. "8.00").
type WorkLog struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Date        string    `gorm:"not null;size:10;index" json:"date"`
	StartTime   string    `gorm:"not null;size:5" json:"startTime"`
	EndTime     string    `gorm:"not null;size:5" json:"endTime"`
	HoursWorked string    `gorm:"not null;size:8" json:"hoursWorked"`
	HourlyRate  *string   `gorm:"size:16" json:"hourlyRate"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Rate accepts a JSON number or a numeric string, so clients may send
// {"hourlyRate": 20} or {"hourlyRate": "20"}.
type Rate float64

func (r *Rate) UnmarshalJSON(data []byte) error {
	s := string(bytes.Trim(data, `"`))
	if s == "null" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid rate %q", s)
	}
	*r = Rate(v)
	return nil
}

// CreateWorkLogRequest deliberately has no hoursWorked field: duration is
// always server-derived, never trusted from the caller.
type CreateWorkLogRequest struct {
	Date       string `json:"date"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	HourlyRate *Rate  `json:"hourlyRate"`
}

// UpdateWorkLogRequest is a partial CreateWorkLogRequest; nil means "leave
// unchanged".
type UpdateWorkLogRequest struct {
	Date       *string `json:"date"`
	StartTime  *string `json:"startTime"`
	EndTime    *string `json:"endTime"`
	HourlyRate *Rate   `json:"hourlyRate"`
}

// HoursBetween returns the elapsed hours between two same-day HH:MM clock
// times, rounded to 2 decimals. A negative span is clamped to 0; the HTTP
// layer rejects inverted pairs before they get here, this is a fallback.
func HoursBetween(startTime, endTime string) (float64, error) {
	start, err := time.Parse(TimeLayout, startTime)
	if err != nil {
		return 0, fmt.Errorf("invalid start time %q: %w", startTime, err)
	}
	end, err := time.Parse(TimeLayout, endTime)
	if err != nil {
		return 0, fmt.Errorf("invalid end time %q: %w", endTime, err)
	}

	hours := end.Sub(start).Hours()
	if hours < 0 {
		hours = 0
	}
	return Round2(hours), nil
}

// Round2 rounds half-up to 2 decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormatDecimal renders a value the way the decimal columns store it.
func FormatDecimal(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// ValidDate reports whether s is a real calendar date in YYYY-MM-DD form.
func ValidDate(s string) bool {
	if len(s) != len(DateLayout) {
		return false
	}
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// ValidTime reports whether s is a wall-clock time in 24-hour HH:MM form.
func ValidTime(s string) bool {
	if len(s) != len(TimeLayout) {
		return false
	}
	_, err := time.Parse(TimeLayout, s)
	return err == nil
}
