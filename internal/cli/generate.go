package cli

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"playground/internal/client"
	"playground/internal/domain/models/llm"
)

type generateFlags struct {
	prompt            string
	model             string
	maxTokens         int
	temperature       float64
	topP              float64
	topK              int
	repetitionPenalty float64
	frequencyPenalty  float64
	stop              string
	apiKey            string
	debug             bool
}

func newGenerateCommand(s *session) *cobra.Command {
	var f generateFlags

	cmd := &cobra.Command{
		Use:   "generate [prompt]",
		Short: "Run one completion through the playground",
		Long: "Run one completion through the playground. Parameters that are not set\n" +
			"on the command line are taken from the server's model defaults.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if f.prompt == "" {
				f.prompt = strings.Join(args, " ")
			}
			if strings.TrimSpace(f.prompt) == "" {
				return fmt.Errorf("a prompt is required (argument or --prompt)")
			}
			return runGenerate(cmd, s, &f)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.prompt, "prompt", "", "Prompt text")
	flags.StringVar(&f.model, "model", "", "Model identifier")
	flags.IntVar(&f.maxTokens, "max-tokens", 0, "Maximum tokens to generate (1-4096)")
	flags.Float64Var(&f.temperature, "temperature", 0, "Sampling temperature (0-2)")
	flags.Float64Var(&f.topP, "top-p", 0, "Nucleus sampling mass (0-1)")
	flags.IntVar(&f.topK, "top-k", 0, "Top-k sampling (1-100)")
	flags.Float64Var(&f.repetitionPenalty, "repetition-penalty", 0, "Repetition penalty (1-2)")
	flags.Float64Var(&f.frequencyPenalty, "frequency-penalty", 0, "Frequency penalty (-2-2)")
	flags.StringVar(&f.stop, "stop", "", "Stop sequence")
	flags.StringVar(&f.apiKey, "api-key", "", "Together.ai API key (defaults to the server key)")
	flags.BoolVar(&f.debug, "debug", false, "Show raw upstream headers and body")

	return cmd
}

func runGenerate(cmd *cobra.Command, s *session, f *generateFlags) error {
	ctx := cmd.Context()

	catalog, err := s.client.Models(ctx)
	if err != nil {
		return fmt.Errorf("load model defaults: %w", err)
	}
	params := catalog.Defaults.Parameters()
	applyFlags(cmd, f, params)

	req := &llm.GenerateRequest{Prompt: f.prompt, Parameters: params}
	if f.apiKey != "" {
		req.APIKey = &f.apiKey
	}

	out := cmd.OutOrStdout()
	result, err := s.client.Generate(ctx, req)
	if err != nil {
		var apiErr *client.APIError
		if f.debug && errors.As(err, &apiErr) && apiErr.Body != nil {
			_ = render(cmd.ErrOrStderr(), outputJSON, apiErr.Body)
		}
		return err
	}

	if s.output != outputText {
		return render(out, s.output, result)
	}
	writeResultText(out, result, f.debug)
	return nil
}

// applyFlags overrides defaults with the flags the user actually set
func applyFlags(cmd *cobra.Command, f *generateFlags, p *llm.GenerationParameters) {
	changed := cmd.Flags().Changed
	if changed("model") {
		p.Model = f.model
	}
	if changed("max-tokens") {
		p.MaxTokens = &f.maxTokens
	}
	if changed("temperature") {
		p.Temperature = &f.temperature
	}
	if changed("top-p") {
		p.TopP = &f.topP
	}
	if changed("top-k") {
		p.TopK = &f.topK
	}
	if changed("repetition-penalty") {
		p.RepetitionPenalty = &f.repetitionPenalty
	}
	if changed("frequency-penalty") {
		p.FrequencyPenalty = &f.frequencyPenalty
	}
	if changed("stop") {
		p.Stop = &f.stop
	}
}

func writeResultText(out io.Writer, result *llm.CompletionResult, debug bool) {
	fmt.Fprintln(out, result.Text)
	if result.Usage != nil {
		fmt.Fprintf(out, "\n[tokens: prompt=%d completion=%d total=%d]\n",
			result.Usage.PromptTokens, result.Usage.CompletionTokens, result.Usage.TotalTokens)
	}
	if !debug {
		return
	}

	fmt.Fprintln(out, "\n--- headers ---")
	keys := make([]string, 0, len(result.Headers))
	for k := range result.Headers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(out, "%s: %s\n", k, result.Headers[k])
	}

	fmt.Fprintln(out, "\n--- body ---")
	_ = render(out, outputJSON, result.Body)
}
