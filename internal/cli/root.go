package cli

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"playground/internal/client"
)

const (
	// DefaultServer is used when neither --server nor PLAYGROUND_SERVER is set
	DefaultServer = "http://localhost:3000"

	serverEnv = "PLAYGROUND_SERVER"
)

// Options holds CLI-level configuration.
type Options struct {
	// HTTPClient overrides the client used to reach the server
	HTTPClient *http.Client
}

// session is the state shared by every subcommand
type session struct {
	opts   Options
	server string
	output string
	client *client.Client
}

// NewRootCmd wires the cobra root command.
func NewRootCmd(opts Options) *cobra.Command {
	s := &session{opts: opts}

	server := os.Getenv(serverEnv)
	if server == "" {
		server = DefaultServer
	}

	root := &cobra.Command{
		Use:   "playgroundctl",
		Short: "Command line client for the LLM playground server",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutput(s.output); err != nil {
				return err
			}
			s.client = client.New(s.server, s.opts.HTTPClient)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&s.server, "server", server, "Playground server base URL (env "+serverEnv+")")
	root.PersistentFlags().StringVarP(&s.output, "output", "o", outputText, "Output format: text, json or yaml")

	root.AddCommand(
		newGenerateCommand(s),
		newHistoryCommand(s),
		newModelsCommand(s),
	)
	return root
}

func validateOutput(format string) error {
	switch format {
	case outputText, outputJSON, outputYAML:
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want text, json or yaml)", format)
	}
}
