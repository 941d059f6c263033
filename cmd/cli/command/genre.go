package command

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"locallibrary/internal/http-api/models"
	"locallibrary/internal/http-api/validation"
)

func newGenreCmd(a *app) *cobra.Command {
	genreCmd := &cobra.Command{
		Use:   "genre",
		Short: "Genre management commands",
		Long:  `Manage genres: list all genres and create new ones`,
	}

	addCmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Create a new genre",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			genre := &models.Genre{Name: validation.Sanitize(strings.Join(args, " "))}

			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
			defer cancel()

			if err := a.genres.Create(ctx, genre); err != nil {
				return fmt.Errorf("failed to create genre: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "✓ Genre created successfully!")
			fmt.Fprintf(out, "ID: %s\n", genre.ID)
			fmt.Fprintf(out, "Name: %s\n", html.UnescapeString(genre.Name))
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all available genres",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
			defer cancel()

			genres, err := a.genres.List(ctx)
			if err != nil {
				return fmt.Errorf("failed to get genres: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(genres) == 0 {
				fmt.Fprintln(out, "No genres found.")
				return nil
			}
			fmt.Fprintf(out, "Available genres (%d total):\n\n", len(genres))
			for _, g := range genres {
				fmt.Fprintf(out, "ID: %s | Name: %s\n", g.ID, html.UnescapeString(g.Name))
			}
			return nil
		},
	}

	genreCmd.AddCommand(addCmd, listCmd)
	return genreCmd
}
