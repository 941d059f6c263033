package command

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"locallibrary/internal/http-api/models"
	"locallibrary/internal/http-api/validation"
)

func statusNames() string {
	names := make([]string, 0, len(models.InstanceStatuses))
	for _, s := range models.InstanceStatuses {
		names = append(names, string(s))
	}
	return strings.Join(names, ", ")
}

func newCopyCmd(a *app) *cobra.Command {
	copyCmd := &cobra.Command{
		Use:   "copy",
		Short: "Book copy management commands",
		Long:  `Manage physical copies (book instances): list them and add new ones`,
	}

	var bookID, imprint, status, due string
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a copy of an existing book",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := uuid.Parse(bookID); err != nil {
				return fmt.Errorf("invalid --book %q: %w", bookID, err)
			}
			var st models.InstanceStatus
			if status != "" {
				parsed, ok := models.ParseInstanceStatus(status)
				if !ok {
					return fmt.Errorf("invalid --status %q, want one of: %s", status, statusNames())
				}
				st = parsed
			}
			dueBack, err := parseDate("due", due)
			if err != nil {
				return err
			}

			bi := &models.BookInstance{
				BookID:  bookID,
				Imprint: validation.Sanitize(imprint),
				Status:  st,
				DueBack: dueBack,
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
			defer cancel()

			if err := a.instances.Create(ctx, bi); err != nil {
				return fmt.Errorf("failed to add copy: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "✓ Copy added successfully!")
			fmt.Fprintf(out, "ID: %s\n", bi.ID)
			fmt.Fprintf(out, "Status: %s\n", bi.Status)
			return nil
		},
	}
	addCmd.Flags().StringVar(&bookID, "book", "", "id of the book")
	addCmd.Flags().StringVar(&imprint, "imprint", "", "publisher and date, e.g. \"Ace, 1990\"")
	addCmd.Flags().StringVar(&status, "status", "", "one of: "+statusNames()+" (default Maintenance)")
	addCmd.Flags().StringVar(&due, "due", "", "due back date (YYYY-MM-DD)")
	_ = addCmd.MarkFlagRequired("book")
	_ = addCmd.MarkFlagRequired("imprint")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all copies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
			defer cancel()

			copies, err := a.instances.List(ctx)
			if err != nil {
				return fmt.Errorf("failed to list copies: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(copies) == 0 {
				fmt.Fprintln(out, "No copies found.")
				return nil
			}
			fmt.Fprintf(out, "Copies (%d total):\n\n", len(copies))
			for _, c := range copies {
				title := ""
				if c.Book != nil {
					title = html.UnescapeString(c.Book.Title)
				}
				fmt.Fprintf(out, "ID: %s | %s : %s | %s", c.ID, title, html.UnescapeString(c.Imprint), c.Status)
				if d := c.DueBackFormatted(); d != "" {
					fmt.Fprintf(out, " | due %s", d)
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}

	copyCmd.AddCommand(addCmd, listCmd)
	return copyCmd
}
