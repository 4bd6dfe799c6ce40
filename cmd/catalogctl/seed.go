package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"edulearn_backend/config"
	"edulearn_backend/db"
)

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create the schema and seed the catalog into PostgreSQL",
		Long: `seed connects with the DB_* settings (environment, .env or app.env),
creates the courses and tutorials tables and inserts every catalog record.
Existing rows are left untouched.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadDotEnv(); err != nil {
				return err
			}
			cfg, err := config.Load(".")
			if err != nil {
				return err
			}
			cat, err := loadCatalogFunc()
			if err != nil {
				return err
			}

			database, err := db.Initialize(cfg.Database())
			if err != nil {
				return err
			}
			defer database.Close()

			if err := db.InitSchema(database); err != nil {
				return err
			}
			if err := db.SeedData(database, cat); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d courses and %d tutorials into %s\n",
				cat.CourseCount(), cat.TutorialCount(), cfg.DBName)
			return nil
		},
	}
}
