package commands

import (
	"log"
	"net/http"

	"worklog/config"
	"worklog/database"
	"worklog/handlers"
	"worklog/storage"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()

		if err := database.Init(cfg.DatabaseURL); err != nil {
			return err
		}

		store := storage.NewGormStore(database.GetDB())
		if err := seedIfEmpty(store); err != nil {
			return err
		}

		router := handlers.NewRouter(store)

		log.Printf("Server starting on port %s", cfg.ServerPort)
		return http.ListenAndServe(":"+cfg.ServerPort, router)
	},
}
