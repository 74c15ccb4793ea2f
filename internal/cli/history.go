package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"playground/internal/domain/models"
)

const (
	msgNoHistoryRecorded = "No history recorded yet."
	promptColumnWidth    = 48
)

func newHistoryCommand(s *session) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect generation history",
	}

	historyCmd.AddCommand(
		newHistoryListCommand(s),
		newHistoryClearCommand(s),
	)
	return historyCmd
}

func newHistoryListCommand(s *session) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent generations, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := s.client.ListHistory(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if s.output != outputText {
				return render(cmd.OutOrStdout(), s.output, map[string]interface{}{"history": records})
			}
			return writeHistoryText(cmd.OutOrStdout(), records)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Max entries to show (server default when unset)")
	return cmd
}

func newHistoryClearCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all generation history",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := s.client.ClearHistory(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "History cleared.")
			return nil
		},
	}
}

func writeHistoryText(out io.Writer, records []models.HistoryRecord) error {
	if len(records) == 0 {
		fmt.Fprintln(out, msgNoHistoryRecorded)
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTIME\tMODEL\tTOKENS\tPROMPT")
	for _, rec := range records {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\n",
			rec.ID,
			rec.Timestamp.Local().Format(time.DateTime),
			rec.Model,
			rec.TokensUsed,
			truncate(rec.Prompt, promptColumnWidth))
	}
	return tw.Flush()
}
