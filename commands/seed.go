package commands

import (
	"log"
	"time"

	"worklog/config"
	"worklog/database"
	"worklog/models"
	"worklog/storage"
	"worklog/summary"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with a sample week of work logs",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()

		if err := database.Init(cfg.DatabaseURL); err != nil {
			return err
		}

		return seedDatabase(storage.NewGormStore(database.GetDB()))
	},
}

// seedIfEmpty populates sample data on first boot only.
func seedIfEmpty(store storage.Store) error {
	existing, err := store.WorkLogsByRange("2000-01-01", "2100-01-01")
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	return seedDatabase(store)
}

func seedDatabase(store storage.Store) error {
	log.Println("Seeding database...")

	if err := store.SetSetting(models.DefaultHourlyRateKey, "3500"); err != nil {
		return err
	}

	monday, _ := summary.WeekRange(time.Now())
	rate := models.Rate(20)

	seedLogs := []models.CreateWorkLogRequest{
		{Date: monday.Format(models.DateLayout), StartTime: "09:00", EndTime: "17:00", HourlyRate: &rate},
		{Date: monday.AddDate(0, 0, 1).Format(models.DateLayout), StartTime: "09:00", EndTime: "18:00", HourlyRate: &rate},
		{Date: monday.AddDate(0, 0, 2).Format(models.DateLayout), StartTime: "10:00", EndTime: "16:00", HourlyRate: &rate},
	}

	for _, seedLog := range seedLogs {
		if _, err := store.CreateWorkLog(seedLog); err != nil {
			return err
		}
	}
	return nil
}
