// Command seed loads reference data into the database: the product catalog
// from the embedded price list, and an initial admin account. Both are
// idempotent enough to rerun: the catalog is swapped atomically and the admin
// command refuses to overwrite an existing account.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nationaltraders/plumbing-crm/pkg/config"
	"github.com/nationaltraders/plumbing-crm/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load reference data into the CRM database",
	Long: `seed loads reference data into the CRM database.

Subcommands:
  catalog   replace the product catalog with the embedded price list
  admin     create the initial ADMIN account`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) *logger.Logger {
	return logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})
}
