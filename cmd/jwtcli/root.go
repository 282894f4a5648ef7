package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/jwtcli/pkg/config"
	"github.com/dmitrymomot/jwtcli/pkg/jwt"
	"github.com/dmitrymomot/jwtcli/pkg/logger"
	"github.com/dmitrymomot/jwtcli/pkg/tokenclient"
)

// envPrefix namespaces every variable read by the command.
const envPrefix = "JWTCLI_"

// settings is loaded from JWTCLI_* variables and then overridden by flags.
type settings struct {
	tokenclient.Configuration
	tokenclient.Credentials

	Output    string `env:"OUTPUT" envDefault:"json"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	Verbose   bool   `env:"VERBOSE"`
}

type flags struct {
	url          string
	params       string
	clientID     string
	clientSecret string
	envFiles     []string
	output       string
	logFormat    string
	header       bool
	verbose      bool
}

func newRootCmd() *cobra.Command {
	f := &flags{}

	cmd := &cobra.Command{
		Use:   "jwtcli",
		Short: "Exchange client credentials for a token and print its claims",
		Long: `Exchange a client id and secret for a token and print the token
together with its decoded payload.

The token signature is NOT verified; the printed claims are informational.

Settings are read from JWTCLI_* environment variables (and a .env file in the
working directory, if present); flags take precedence:

  JWTCLI_URL, JWTCLI_PARAMS, JWTCLI_CLIENT_ID, JWTCLI_CLIENT_SECRET,
  JWTCLI_OUTPUT, JWTCLI_LOG_FORMAT, JWTCLI_VERBOSE

Prefer JWTCLI_CLIENT_SECRET or --env-file over --client-secret: flag values
are visible to other users in the process list and end up in shell history.

Examples:
  # Use values from the environment
  JWTCLI_URL=https://auth.example.com/token JWTCLI_CLIENT_SECRET=secret jwtcli --client-id id

  # Pass extra query parameters and print YAML
  jwtcli --url https://auth.example.com/token --params audience=api --output yaml`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, f)
		},
	}

	cmd.Flags().StringVar(&f.url, "url", "", "Token endpoint URL")
	cmd.Flags().StringVar(&f.params, "params", "", "Raw query string appended to the URL")
	cmd.Flags().StringVar(&f.clientID, "client-id", "", "Client id")
	cmd.Flags().StringVar(&f.clientSecret, "client-secret", "",
		"Client secret (visible in ps and shell history; prefer JWTCLI_CLIENT_SECRET or --env-file)")
	cmd.Flags().StringSliceVar(&f.envFiles, "env-file", nil, "Read settings from these .env files instead of ./.env")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "Output format: json or yaml")
	cmd.Flags().StringVar(&f.logFormat, "log-format", "", "Log format: text or json")
	cmd.Flags().BoolVar(&f.header, "header", false, "Include the decoded token header in the output")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}

func run(cmd *cobra.Command, f *flags) error {
	s, err := loadSettings(cmd, f)
	if err != nil {
		return err
	}

	if err := validateOutput(s.Output); err != nil {
		return err
	}
	logFormat, err := logger.ParseFormat(s.LogFormat)
	if err != nil {
		return err
	}
	log := logger.New(
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithFormat(logFormat),
		logger.WithVerbose(s.Verbose),
		logger.WithService("jwtcli"),
	)

	client := tokenclient.New(tokenclient.WithLogger(log))
	resp, err := tokenclient.Request[map[string]any](cmd.Context(), client, s.Configuration, s.Credentials)
	if err != nil {
		log.DebugContext(cmd.Context(), "token exchange failed", logger.Error(err))
		return err
	}

	out := map[string]any{
		"encoded": resp.Encoded,
		"data":    resp.Data,
	}
	if f.header {
		header, err := jwt.ExtractHeader(resp.Encoded)
		if err != nil {
			return fmt.Errorf("failed to decode token header: %w", err)
		}
		out["header"] = header
	}

	return render(cmd.OutOrStdout(), s.Output, out)
}

func loadSettings(cmd *cobra.Command, f *flags) (settings, error) {
	var s settings
	if err := config.Load(&s, config.WithPrefix(envPrefix), config.WithEnvFiles(f.envFiles...)); err != nil {
		return s, err
	}

	changed := cmd.Flags().Changed
	if changed("url") {
		s.URL = f.url
	}
	if changed("params") {
		s.Params = f.params
	}
	if changed("client-id") {
		s.ClientID = f.clientID
	}
	if changed("client-secret") {
		s.ClientSecret = f.clientSecret
	}
	if changed("output") {
		s.Output = f.output
	}
	if changed("log-format") {
		s.LogFormat = f.logFormat
	}
	if changed("verbose") {
		s.Verbose = f.verbose
	}

	return s, nil
}

func validateOutput(format string) error {
	switch format {
	case "json", "yaml":
		return nil
	default:
		return fmt.Errorf("unsupported output format %q: must be json or yaml", format)
	}
}

// render writes v as JSON or YAML. v is normalised through JSON first so
// both formats use the same field names.
func render(w io.Writer, format string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}

	if format == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(generic); err != nil {
			return fmt.Errorf("failed to encode output: %w", err)
		}
		return enc.Close()
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(generic)
}
