package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newModelsCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List available models and default parameters",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := s.client.Models(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if s.output != outputText {
				return render(out, s.output, resp)
			}

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "MODEL\tNAME\tCONTEXT")
			for _, m := range resp.Models {
				marker := ""
				if m.ID == resp.Defaults.Model {
					marker = " (default)"
				}
				fmt.Fprintf(tw, "%s%s\t%s\t%d\n", m.ID, marker, m.DisplayName, m.ContextWindow)
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			d := resp.Defaults
			fmt.Fprintf(out, "\nDefaults: max_tokens=%d temperature=%g top_p=%g top_k=%d repetition_penalty=%g frequency_penalty=%g\n",
				d.MaxTokens, d.Temperature, d.TopP, d.TopK, d.RepetitionPenalty, d.FrequencyPenalty)
			return nil
		},
	}
}
