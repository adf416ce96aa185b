package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/vacefron/vacefron-go/internal/config"
	"github.com/vacefron/vacefron-go/pkg/vacefron"
)

// app carries the configuration shared by every subcommand
type app struct {
	cfg *config.Config

	apiURL    string
	timeout   time.Duration
	userAgent string
	verbose   bool
}

// NewRootCmd builds the vacefron command tree
func NewRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "vacefron",
		Short: "Generate meme images with the vacefron.nl API",
		Long: `vacefron renders meme images through the vacefron.nl API.

Every image endpoint has its own subcommand. Images are saved with --output,
otherwise the validated image URL is printed. Use "batch" to render a whole
manifest and "serve" for a local preview server.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load .env file if present (ignore errors)
			config.LoadDotEnv()

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("api-url") {
				cfg.APIURL = a.apiURL
			}
			if flags.Changed("timeout") {
				cfg.Timeout = a.timeout
			}
			if flags.Changed("user-agent") {
				cfg.UserAgent = a.userAgent
			}
			a.cfg = cfg

			level := slog.LevelInfo
			if a.verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&a.apiURL, "api-url", vacefron.DefaultBaseURL, "API root (env VACEFRON_API_URL)")
	cmd.PersistentFlags().DurationVar(&a.timeout, "timeout", vacefron.DefaultTimeout, "HTTP timeout (env VACEFRON_TIMEOUT)")
	cmd.PersistentFlags().StringVar(&a.userAgent, "user-agent", "vacefron-go", "User-Agent header (env VACEFRON_USER_AGENT)")
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Verbose logging")

	// Add subcommands
	for _, e := range vacefron.Endpoints() {
		cmd.AddCommand(newRenderCmd(a, e))
	}
	cmd.AddCommand(newDiscordCmd(a))
	cmd.AddCommand(newBatchCmd(a))
	cmd.AddCommand(newServeCmd(a))

	return cmd
}

// client builds an API client from the loaded configuration
func (a *app) client() (*vacefron.Client, error) {
	if a.cfg == nil {
		return nil, fmt.Errorf("configuration not loaded")
	}
	return vacefron.New(
		vacefron.WithBaseURL(a.cfg.APIURL),
		vacefron.WithTimeout(a.cfg.Timeout),
		vacefron.WithUserAgent(a.cfg.UserAgent),
		vacefron.WithLogger(slog.Default()),
	), nil
}
