// rosterctl is the command-line presentation layer: it invokes one record
// operation per run against the students or courses collection and prints
// the result.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/campusware/roster/internal/app/models"
	"github.com/campusware/roster/internal/app/services"
	"github.com/campusware/roster/internal/app/store"
	"github.com/campusware/roster/internal/config"
	"github.com/campusware/roster/internal/pkg/apperrors"
	"github.com/campusware/roster/internal/pkg/logger"
)

var (
	flagConfig     string
	flagCollection string
)

var rootCmd = &cobra.Command{
	Use:           "rosterctl",
	Short:         "Manage the student and course record collections",
	Long:          "rosterctl runs one record operation (show, add, search, sort, edit, delete, compact, export) against a collection backed by a flat file.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", filepath.Join("configs", "config.yaml"), "Path to the configuration file")
	rootCmd.PersistentFlags().StringVar(&flagCollection, "collection", models.Students.Name, "Collection to operate on (students or courses)")

	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(sortCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(compactCmd)
	rootCmd.AddCommand(exportCmd)
}

// newService builds the record service for the selected collection. The
// CLI keeps logging quiet so command output stays readable.
func newService() (*services.RosterService, error) {
	cfg, err := config.LoadConfig(flagConfig)
	if err != nil {
		return nil, err
	}

	logger.Configure(logger.Config{
		Level:  logger.WarnLevel,
		Pretty: true,
		Output: os.Stderr,
	})
	lgr := log.Logger

	schema, ok := models.SchemaByName(flagCollection)
	if !ok {
		return nil, apperrors.NewCustomError(apperrors.ErrUnknownCollection, flagCollection)
	}

	st, err := store.New(cfg.Storage.Dir, store.Format(cfg.Storage.Format), lgr)
	if err != nil {
		return nil, err
	}
	if err := st.Ensure(models.Students, models.Courses); err != nil {
		return nil, err
	}

	return services.NewRosterService(st, schema, lgr), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
