package command

// root.go defines the root command for librarycli and opens the database
// for every subcommand.

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"locallibrary/database"
	"locallibrary/internal/config"
	"locallibrary/internal/http-api/repository"
	"locallibrary/internal/http-api/service"
	"locallibrary/internal/logging"
)

// app holds what the subcommands work with once the database is open.
type app struct {
	db        *gorm.DB
	logger    *slog.Logger
	authors   service.AuthorService
	genres    service.GenreService
	instances service.InstanceService

	// opened is set when the CLI opened db itself and must close it.
	opened bool
}

func newApp(db *gorm.DB, logger *slog.Logger) *app {
	authors := repository.NewAuthorRepository(db)
	genres := repository.NewGenreRepository(db)
	books := repository.NewBookRepository(db)
	instances := repository.NewBookInstanceRepository(db)
	return &app{
		db:        db,
		logger:    logger,
		authors:   service.NewAuthorService(authors, books),
		genres:    service.NewGenreService(genres, books),
		instances: service.NewInstanceService(instances, books),
	}
}

// newRootCmd builds the command tree. A non-nil a skips opening the database.
func newRootCmd(a *app) *cobra.Command {
	var (
		databaseURL string
		logLevel    string
	)

	root := &cobra.Command{
		Use:   "librarycli",
		Short: "librarycli - LocalLibrary operator tool",
		Long: `librarycli manages the LocalLibrary catalog directly in the database.
The web site only edits books, so use this tool to:
- Run schema migrations
- Add and list authors
- Add and list genres
- Add and list copies of books

Use "librarycli command -h" to see all available commands.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.db != nil {
				return nil
			}
			if databaseURL == "" {
				url, err := config.LoadDatabaseURL()
				if err != nil {
					return err
				}
				databaseURL = url
			}
			logger := logging.New(cmd.ErrOrStderr(), logLevel, "text")
			db, err := database.ConnectDB(&config.Config{DatabaseURL: databaseURL}, logger)
			if err != nil {
				return err
			}
			*a = *newApp(db, logger)
			a.opened = true
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if !a.opened {
				return nil
			}
			return database.Close(a.db)
		},
	}

	// Global persistent flags = available to all subcommands
	root.PersistentFlags().StringVar(&databaseURL, "database-url", "", "Postgres URL (defaults to DATABASE_URL)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn, error")

	root.AddCommand(newMigrateCmd(a), newAuthorCmd(a), newGenreCmd(a), newCopyCmd(a))
	return root
}

// Execute runs the CLI. This is called by main.main().
func Execute() {
	if err := newRootCmd(&app{}).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err) // Print error to standard error
		os.Exit(1)
	}
}
