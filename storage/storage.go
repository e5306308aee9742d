package storage

import (
	"errors"

	"worklog/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNotFound is returned when a referenced record does not exist.
var ErrNotFound = errors.New("record not found")

// Store is the persistence contract consumed by handlers and the summary
// service. hoursWorked is recomputed inside the store on every write so no
// caller can persist a stale or fabricated duration.
type Store interface {
	CreateWorkLog(input models.CreateWorkLogRequest) (*models.WorkLog, error)
	GetWorkLog(id uint) (*models.WorkLog, error)
	UpdateWorkLog(id uint, updates models.UpdateWorkLogRequest) (*models.WorkLog, error)
	DeleteWorkLog(id uint) error
	WorkLogsByRange(startDate, endDate string) ([]models.WorkLog, error)
	GetSetting(key string) (string, error)
	SetSetting(key, value string) error
}

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) CreateWorkLog(input models.CreateWorkLogRequest) (*models.WorkLog, error) {
	hours, err := models.HoursBetween(input.StartTime, input.EndTime)
	if err != nil {
		return nil, err
	}

	log := models.WorkLog{
		Date:        input.Date,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		HoursWorked: models.FormatDecimal(hours),
		HourlyRate:  formatRate(input.HourlyRate),
	}

	if err := s.db.Create(&log).Error; err != nil {
		return nil, err
	}
	return &log, nil
}

func (s *GormStore) GetWorkLog(id uint) (*models.WorkLog, error) {
	var log models.WorkLog
	if err := s.db.First(&log, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &log, nil
}

// UpdateWorkLog applies the supplied fields and recomputes hoursWorked from
// the merged time pair, whether or not either time changed.
func (s *GormStore) UpdateWorkLog(id uint, updates models.UpdateWorkLogRequest) (*models.WorkLog, error) {
	log, err := s.GetWorkLog(id)
	if err != nil {
		return nil, err
	}

	if updates.Date != nil {
		log.Date = *updates.Date
	}
	if updates.StartTime != nil {
		log.StartTime = *updates.StartTime
	}
	if updates.EndTime != nil {
		log.EndTime = *updates.EndTime
	}
	if updates.HourlyRate != nil {
		log.HourlyRate = formatRate(updates.HourlyRate)
	}

	hours, err := models.HoursBetween(log.StartTime, log.EndTime)
	if err != nil {
		return nil, err
	}
	log.HoursWorked = models.FormatDecimal(hours)

	if err := s.db.Save(log).Error; err != nil {
		return nil, err
	}
	return log, nil
}

func (s *GormStore) DeleteWorkLog(id uint) error {
	result := s.db.Delete(&models.WorkLog{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// WorkLogsByRange returns all logs with startDate <= date <= endDate, ordered
// by date then start time. YYYY-MM-DD strings compare lexicographically.
func (s *GormStore) WorkLogsByRange(startDate, endDate string) ([]models.WorkLog, error) {
	// Initialized so an empty result serializes as [] rather than null.
	logs := []models.WorkLog{}
	err := s.db.
		Where("date >= ? AND date <= ?", startDate, endDate).
		Order("date asc, start_time asc").
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

func (s *GormStore) GetSetting(key string) (string, error) {
	var setting models.Setting
	if err := s.db.First(&setting, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}
	return setting.Value, nil
}

// SetSetting upserts in a single statement so concurrent writers of the same
// key cannot race between insert and update.
func (s *GormStore) SetSetting(key, value string) error {
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&models.Setting{Key: key, Value: value}).Error
}

func formatRate(rate *models.Rate) *string {
	if rate == nil {
		return nil
	}
	formatted := models.FormatDecimal(float64(*rate))
	return &formatted
}
