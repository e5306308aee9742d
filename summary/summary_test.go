package summary

import (
	"errors"
	"testing"
	"time"

	"worklog/models"
	"worklog/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, err := time.Parse(models.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestWeekRange(t *testing.T) {
	tests := []struct {
		name      string
		ref       string
		wantStart string
		wantEnd   string
	}{
		{"monday maps to itself", "2024-03-04", "2024-03-04", "2024-03-10"},
		{"midweek", "2024-03-06", "2024-03-04", "2024-03-10"},
		{"sunday belongs to the preceding monday", "2024-03-10", "2024-03-04", "2024-03-10"},
		{"week spanning a year boundary", "2025-01-01", "2024-12-30", "2025-01-05"},
		{"week spanning a month boundary", "2024-03-30", "2024-03-25", "2024-03-31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := WeekRange(date(tt.ref))
			assert.Equal(t, tt.wantStart, start.Format(models.DateLayout))
			assert.Equal(t, tt.wantEnd, end.Format(models.DateLayout))
		})
	}
}

func TestQuincenaRange(t *testing.T) {
	tests := []struct {
		name      string
		ref       string
		wantStart string
		wantEnd   string
		wantLabel string
	}{
		{"early month", "2024-03-04", "2024-03-01", "2024-03-15", "1st Quincena"},
		{"day 15 still first half", "2024-03-15", "2024-03-01", "2024-03-15", "1st Quincena"},
		{"day 16 starts second half", "2024-03-16", "2024-03-16", "2024-03-31", "2nd Quincena"},
		{"leap february", "2024-02-16", "2024-02-16", "2024-02-29", "2nd Quincena"},
		{"non-leap february", "2023-02-20", "2023-02-16", "2023-02-28", "2nd Quincena"},
		{"thirty day month", "2024-04-20", "2024-04-16", "2024-04-30", "2nd Quincena"},
		{"thirty-one day month", "2024-12-31", "2024-12-16", "2024-12-31", "2nd Quincena"},
		{"first of month", "2024-07-01", "2024-07-01", "2024-07-15", "1st Quincena"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, label := QuincenaRange(date(tt.ref))
			assert.Equal(t, tt.wantStart, start.Format(models.DateLayout))
			assert.Equal(t, tt.wantEnd, end.Format(models.DateLayout))
			assert.Equal(t, tt.wantLabel, label)
		})
	}
}

// stubStore serves canned results per queried range. Unstubbed Store methods
// are never reached by the summary service.
type stubStore struct {
	storage.Store
	ranges map[[2]string][]models.WorkLog
	err    error
}

func (s *stubStore) WorkLogsByRange(startDate, endDate string) ([]models.WorkLog, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.ranges[[2]string{startDate, endDate}], nil
}

func rate(v string) *string { return &v }

func TestWeekly_EmptyWeekHasSevenZeroBuckets(t *testing.T) {
	service := NewService(&stubStore{})

	result, err := service.Weekly(date("2024-03-06"))
	require.NoError(t, err)

	require.Len(t, result.Days, 7)
	wantNames := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	for i, day := range result.Days {
		assert.Equal(t, wantNames[i], day.DayName)
		assert.Equal(t, date("2024-03-04").AddDate(0, 0, i).Format(models.DateLayout), day.Date)
		assert.Zero(t, day.TotalHours)
	}
	assert.Zero(t, result.TotalWeeklyHours)
	assert.Zero(t, result.TotalPay)
	assert.Zero(t, result.QuincenaHours)
	assert.Zero(t, result.QuincenaPay)
	assert.Equal(t, "1st Quincena", result.QuincenaLabel)
}

func TestWeekly_TotalsAndBuckets(t *testing.T) {
	weekLogs := []models.WorkLog{
		{Date: "2024-03-04", StartTime: "09:00", EndTime: "17:00", HoursWorked: "8.00", HourlyRate: rate("20.00")},
		{Date: "2024-03-05", StartTime: "09:00", EndTime: "18:00", HoursWorked: "9.00", HourlyRate: rate("20.00")},
		{Date: "2024-03-06", StartTime: "10:00", EndTime: "16:00", HoursWorked: "6.00", HourlyRate: rate("20.00")},
	}
	store := &stubStore{ranges: map[[2]string][]models.WorkLog{
		{"2024-03-04", "2024-03-10"}: weekLogs,
		{"2024-03-01", "2024-03-15"}: weekLogs,
	}}

	result, err := NewService(store).Weekly(date("2024-03-04"))
	require.NoError(t, err)

	assert.Equal(t, "2024-03-04", result.StartDate)
	assert.Equal(t, "2024-03-10", result.EndDate)
	assert.Equal(t, 23.0, result.TotalWeeklyHours)
	assert.Equal(t, 460.0, result.TotalPay)

	assert.Equal(t, 8.0, result.Days[0].TotalHours)
	assert.Equal(t, 9.0, result.Days[1].TotalHours)
	assert.Equal(t, 6.0, result.Days[2].TotalHours)
	for _, day := range result.Days[3:] {
		assert.Zero(t, day.TotalHours)
	}

	var bucketSum float64
	for _, day := range result.Days {
		bucketSum += day.TotalHours
	}
	assert.InDelta(t, result.TotalWeeklyHours, bucketSum, 0.01)

	assert.Equal(t, "1st Quincena", result.QuincenaLabel)
	assert.Equal(t, 23.0, result.QuincenaHours)
	assert.Equal(t, 460.0, result.QuincenaPay)
}

func TestWeekly_MissingRateContributesZeroPay(t *testing.T) {
	store := &stubStore{ranges: map[[2]string][]models.WorkLog{
		{"2024-03-04", "2024-03-10"}: {
			{Date: "2024-03-04", HoursWorked: "8.00", HourlyRate: rate("20.00")},
			{Date: "2024-03-05", HoursWorked: "4.00"},
		},
	}}

	result, err := NewService(store).Weekly(date("2024-03-04"))
	require.NoError(t, err)

	assert.Equal(t, 12.0, result.TotalWeeklyHours)
	assert.Equal(t, 160.0, result.TotalPay)
}

func TestWeekly_MultipleShiftsSameDayShareABucket(t *testing.T) {
	store := &stubStore{ranges: map[[2]string][]models.WorkLog{
		{"2024-03-04", "2024-03-10"}: {
			{Date: "2024-03-04", HoursWorked: "3.25"},
			{Date: "2024-03-04", HoursWorked: "4.50"},
		},
	}}

	result, err := NewService(store).Weekly(date("2024-03-04"))
	require.NoError(t, err)

	assert.Equal(t, 7.75, result.Days[0].TotalHours)
	assert.Equal(t, 7.75, result.TotalWeeklyHours)
}

func TestWeekly_QuincenaDivergesFromWeek(t *testing.T) {
	// 2024-02-16 is a Friday: its week is Feb 12-18 but its quincena runs
	// through leap-day Feb 29.
	store := &stubStore{ranges: map[[2]string][]models.WorkLog{
		{"2024-02-12", "2024-02-18"}: {
			{Date: "2024-02-16", HoursWorked: "5.00", HourlyRate: rate("10.00")},
		},
		{"2024-02-16", "2024-02-29"}: {
			{Date: "2024-02-16", HoursWorked: "5.00", HourlyRate: rate("10.00")},
			{Date: "2024-02-29", HoursWorked: "2.00", HourlyRate: rate("10.00")},
		},
	}}

	result, err := NewService(store).Weekly(date("2024-02-16"))
	require.NoError(t, err)

	assert.Equal(t, 5.0, result.TotalWeeklyHours)
	assert.Equal(t, "2nd Quincena", result.QuincenaLabel)
	assert.Equal(t, 7.0, result.QuincenaHours)
	assert.Equal(t, 70.0, result.QuincenaPay)
}

func TestWeekly_Idempotent(t *testing.T) {
	store := &stubStore{ranges: map[[2]string][]models.WorkLog{
		{"2024-03-04", "2024-03-10"}: {
			{Date: "2024-03-05", HoursWorked: "7.50", HourlyRate: rate("12.00")},
		},
	}}
	service := NewService(store)

	first, err := service.Weekly(date("2024-03-04"))
	require.NoError(t, err)
	second, err := service.Weekly(date("2024-03-04"))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestWeekly_StoreErrorFailsWholeSummary(t *testing.T) {
	store := &stubStore{err: errors.New("store down")}

	result, err := NewService(store).Weekly(date("2024-03-04"))
	assert.Error(t, err)
	assert.Nil(t, result)
}
