package command

import (
	"context"
	"fmt"
	"html"
	"time"

	"github.com/spf13/cobra"

	"locallibrary/internal/http-api/models"
	"locallibrary/internal/http-api/validation"
)

const cliDateLayout = "2006-01-02"

// parseDate reads an optional YYYY-MM-DD flag value.
func parseDate(flag, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(cliDateLayout, value)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s %q, want YYYY-MM-DD", flag, value)
	}
	return &t, nil
}

func newAuthorCmd(a *app) *cobra.Command {
	authorCmd := &cobra.Command{
		Use:   "author",
		Short: "Author management commands",
		Long:  `Manage authors: list all authors and add new ones`,
	}

	var first, family, born, died string
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add an author",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dob, err := parseDate("born", born)
			if err != nil {
				return err
			}
			dod, err := parseDate("died", died)
			if err != nil {
				return err
			}

			author := &models.Author{
				FirstName:   validation.Sanitize(first),
				FamilyName:  validation.Sanitize(family),
				DateOfBirth: dob,
				DateOfDeath: dod,
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
			defer cancel()

			if err := a.authors.Create(ctx, author); err != nil {
				return fmt.Errorf("failed to add author: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "✓ Author added successfully!")
			fmt.Fprintf(out, "ID: %s\n", author.ID)
			fmt.Fprintf(out, "Name: %s\n", html.UnescapeString(author.Name()))
			return nil
		},
	}
	addCmd.Flags().StringVar(&first, "first", "", "first name")
	addCmd.Flags().StringVar(&family, "family", "", "family name")
	addCmd.Flags().StringVar(&born, "born", "", "date of birth (YYYY-MM-DD)")
	addCmd.Flags().StringVar(&died, "died", "", "date of death (YYYY-MM-DD)")
	_ = addCmd.MarkFlagRequired("first")
	_ = addCmd.MarkFlagRequired("family")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all authors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
			defer cancel()

			authors, err := a.authors.List(ctx)
			if err != nil {
				return fmt.Errorf("failed to list authors: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(authors) == 0 {
				fmt.Fprintln(out, "No authors found.")
				return nil
			}
			fmt.Fprintf(out, "Authors (%d total):\n\n", len(authors))
			for _, au := range authors {
				fmt.Fprintf(out, "ID: %s | Name: %s", au.ID, html.UnescapeString(au.Name()))
				if span := au.Lifespan(); span != "" {
					fmt.Fprintf(out, " | %s", span)
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}

	authorCmd.AddCommand(addCmd, listCmd)
	return authorCmd
}
