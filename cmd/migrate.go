package cmd

import (
	"starwars-api/db"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database tables and exit",
	RunE: func(_ *cobra.Command, _ []string) error {
		_, log, database, err := bootstrap()
		if err != nil {
			return err
		}
		defer func() {
			_ = database.Close()
			_ = log.Sync()
		}()

		return db.Migrate(database, log)
	},
}
