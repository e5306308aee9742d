package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"worklog/models"
	"worklog/storage"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestServer(t *testing.T) (http.Handler, storage.Store) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// :memory: lives per connection; pin the pool so every query sees it.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.WorkLog{}, &models.Setting{}))

	store := storage.NewGormStore(db)
	return NewRouter(store), store
}

func doRequest(t *testing.T, handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

func mustCreate(t *testing.T, store storage.Store, date, startTime, endTime string, hourlyRate *models.Rate) *models.WorkLog {
	t.Helper()
	log, err := store.CreateWorkLog(models.CreateWorkLogRequest{
		Date:       date,
		StartTime:  startTime,
		EndTime:    endTime,
		HourlyRate: hourlyRate,
	})
	require.NoError(t, err)
	return log
}

func testRate(v float64) *models.Rate {
	r := models.Rate(v)
	return &r
}
