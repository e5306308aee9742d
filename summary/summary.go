// Package summary computes the weekly and quincena aggregations served by the
// summary endpoint. Summaries are derived fresh from the store on every call
// and are never persisted.
package summary

import (
	"strconv"
	"time"

	"worklog/models"
	"worklog/storage"
)

const (
	firstQuincenaLabel  = "1st Quincena"
	secondQuincenaLabel = "2nd Quincena"
)

// DaySummary is one Monday..Sunday bucket of a weekly summary.
type DaySummary struct {
	Date       string  `json:"date"`
	DayName    string  `json:"dayName"`
	TotalHours float64 `json:"totalHours"`
}

// WeeklySummary is the combined week + quincena payload for one reference
// date. Days always holds exactly 7 buckets, Monday through Sunday.
type WeeklySummary struct {
	StartDate        string       `json:"startDate"`
	EndDate          string       `json:"endDate"`
	Days             []DaySummary `json:"days"`
	TotalWeeklyHours float64      `json:"totalWeeklyHours"`
	TotalPay         float64      `json:"totalPay"`
	QuincenaLabel    string       `json:"quincenaLabel"`
	QuincenaHours    float64      `json:"quincenaHours"`
	QuincenaPay      float64      `json:"quincenaPay"`
}

// WeekRange returns the Monday and Sunday bounding the week that contains ref.
func WeekRange(ref time.Time) (start, end time.Time) {
	// time.Weekday counts Sunday as 0; shift so Monday is the week start.
	offset := (int(ref.Weekday()) + 6) % 7
	start = time.Date(ref.Year(), ref.Month(), ref.Day()-offset, 0, 0, 0, 0, ref.Location())
	end = start.AddDate(0, 0, 6)
	return start, end
}

// QuincenaRange returns the bi-monthly period containing ref: days 1-15 when
// ref falls in the first half of its month, otherwise day 16 through the last
// calendar day of that month.
func QuincenaRange(ref time.Time) (start, end time.Time, label string) {
	year, month := ref.Year(), ref.Month()
	if ref.Day() <= 15 {
		start = time.Date(year, month, 1, 0, 0, 0, 0, ref.Location())
		end = time.Date(year, month, 15, 0, 0, 0, 0, ref.Location())
		return start, end, firstQuincenaLabel
	}
	start = time.Date(year, month, 16, 0, 0, 0, 0, ref.Location())
	// Day 0 of the next month is the last day of this one.
	end = time.Date(year, month+1, 0, 0, 0, 0, 0, ref.Location())
	return start, end, secondQuincenaLabel
}

// Service aggregates work logs fetched from a Store.
type Service struct {
	store storage.Store
}

func NewService(store storage.Store) *Service {
	return &Service{store: store}
}

// Weekly builds the full summary for the week and quincena containing ref.
// The two range queries are independent; either failing fails the whole
// summary, no partial result is returned.
func (s *Service) Weekly(ref time.Time) (*WeeklySummary, error) {
	weekStart, weekEnd := WeekRange(ref)
	startStr := weekStart.Format(models.DateLayout)
	endStr := weekEnd.Format(models.DateLayout)

	logs, err := s.store.WorkLogsByRange(startStr, endStr)
	if err != nil {
		return nil, err
	}

	// Seed all 7 buckets up front so empty days still appear in the payload.
	days := make([]DaySummary, 7)
	index := make(map[string]int, 7)
	for i := range days {
		d := weekStart.AddDate(0, 0, i)
		key := d.Format(models.DateLayout)
		days[i] = DaySummary{Date: key, DayName: d.Format("Mon")}
		index[key] = i
	}

	var totalHours, totalPay float64
	for _, log := range logs {
		hours := parseDecimal(log.HoursWorked)
		if i, ok := index[log.Date]; ok {
			days[i].TotalHours += hours
		}
		totalHours += hours
		if log.HourlyRate != nil {
			totalPay += hours * parseDecimal(*log.HourlyRate)
		}
	}
	for i := range days {
		days[i].TotalHours = models.Round2(days[i].TotalHours)
	}

	qStart, qEnd, label := QuincenaRange(ref)
	qLogs, err := s.store.WorkLogsByRange(qStart.Format(models.DateLayout), qEnd.Format(models.DateLayout))
	if err != nil {
		return nil, err
	}

	var quincenaHours, quincenaPay float64
	for _, log := range qLogs {
		hours := parseDecimal(log.HoursWorked)
		quincenaHours += hours
		if log.HourlyRate != nil {
			quincenaPay += hours * parseDecimal(*log.HourlyRate)
		}
	}

	return &WeeklySummary{
		StartDate:        startStr,
		EndDate:          endStr,
		Days:             days,
		TotalWeeklyHours: models.Round2(totalHours),
		TotalPay:         models.Round2(totalPay),
		QuincenaLabel:    label,
		QuincenaHours:    models.Round2(quincenaHours),
		QuincenaPay:      models.Round2(quincenaPay),
	}, nil
}

func parseDecimal(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
