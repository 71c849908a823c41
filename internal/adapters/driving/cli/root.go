package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/topgg-sampler/internal/adapters/driven/config/file"
	"github.com/custodia-labs/topgg-sampler/internal/adapters/driven/storage/jsonfile"
	"github.com/custodia-labs/topgg-sampler/internal/connectors/topgg"
	"github.com/custodia-labs/topgg-sampler/internal/core/domain"
	"github.com/custodia-labs/topgg-sampler/internal/core/ports/driving"
	"github.com/custodia-labs/topgg-sampler/internal/core/services"
	"github.com/custodia-labs/topgg-sampler/internal/logger"
)

// SamplingServiceFactory builds a sampling service for the resolved settings.
type SamplingServiceFactory func(settings *domain.AppSettings) (driving.SamplingService, error)

var (
	version = "dev"

	verbose   bool
	configDir string

	runPoolSize   int
	runSampleSize int
	runSeed       uint64
	runFormat     string
	runOutput     string
	runEndpoint   string
	runTimeout    time.Duration

	settingsService    driving.SettingsService
	newSamplingService SamplingServiceFactory = defaultSamplingService
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "topgg-sampler",
	Short: "Sample random servers from the top.gg directory",
	Long: `Fetches the top-ranked Discord servers from the top.gg directory and
prints a uniformly random selection of them.

Example usage:
  topgg-sampler                            # 5 servers out of the top 100
  topgg-sampler --pool-size 500 -k 10      # 10 servers out of the top 500
  topgg-sampler --seed 42 --format table   # reproducible draw as a table
  topgg-sampler --output data/servers.json # also export the sample`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initServices,
	RunE:              runSample,
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// SetVersion sets the version string for the CLI.
func SetVersion(v string) {
	version = v
}

// SetSettingsService replaces the settings service, bypassing the config file.
func SetSettingsService(s driving.SettingsService) {
	settingsService = s
}

// SetSamplingServiceFactory replaces how sampling services are built.
func SetSamplingServiceFactory(f SamplingServiceFactory) {
	newSamplingService = f
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print diagnostics to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "config directory (default ~/.topgg-sampler)")

	rootCmd.Flags().IntVarP(&runPoolSize, "pool-size", "n", domain.DefaultCandidatePoolSize,
		"number of top servers to sample from")
	rootCmd.Flags().IntVarP(&runSampleSize, "sample-size", "k", domain.DefaultSampleSize,
		"number of servers to draw")
	rootCmd.Flags().Uint64Var(&runSeed, "seed", 0, "seed for a reproducible draw")
	rootCmd.Flags().StringVarP(&runFormat, "format", "f", string(domain.OutputFormatDump),
		"output format: dump, json or table")
	rootCmd.Flags().StringVarP(&runOutput, "output", "o", "", "also export the sample to this JSON file")
	rootCmd.Flags().StringVar(&runEndpoint, "endpoint", domain.DefaultEndpoint, "directory GraphQL endpoint")
	rootCmd.Flags().DurationVar(&runTimeout, "timeout", 0, "request timeout, e.g. 30s (0 means none)")
}

// initServices applies global flags and wires the settings service.
func initServices(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if settingsService != nil {
		return nil
	}

	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return fmt.Errorf("failed to open config: %w", err)
	}
	logger.Debug("Config: %s", store.Path())
	settingsService = services.NewSettingsService(store)
	return nil
}

func runSample(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	if err := applyRunFlags(cmd, settings); err != nil {
		return err
	}

	sampler, err := newSamplingService(settings)
	if err != nil {
		return err
	}

	sample, err := sampler.Run(cmd.Context(), settings.Sampling, newProgressPrinter(cmd.OutOrStdout()))
	if err != nil {
		return err
	}

	return renderSample(cmd.OutOrStdout(), settings.Output.Format, sample)
}

// applyRunFlags overrides persisted settings with flags set on this invocation.
func applyRunFlags(cmd *cobra.Command, settings *domain.AppSettings) error {
	flags := cmd.Flags()

	if flags.Changed("pool-size") {
		settings.Sampling.CandidatePoolSize = runPoolSize
	}
	if flags.Changed("sample-size") {
		settings.Sampling.SampleSize = runSampleSize
	}
	if flags.Changed("seed") {
		seed := runSeed
		settings.Sampling.Seed = &seed
	}
	if flags.Changed("format") {
		format := domain.OutputFormat(runFormat)
		if !format.IsValid() {
			return fmt.Errorf("%w: unknown format %q (use dump, json or table)", domain.ErrInvalidInput, runFormat)
		}
		settings.Output.Format = format
	}
	if flags.Changed("output") {
		settings.Output.File = runOutput
	}
	if flags.Changed("endpoint") {
		settings.Directory.Endpoint = runEndpoint
	}
	if flags.Changed("timeout") {
		settings.Directory.Timeout = runTimeout
	}

	return settings.Sampling.Validate()
}

// defaultSamplingService wires the top.gg client and the optional JSON export.
func defaultSamplingService(settings *domain.AppSettings) (driving.SamplingService, error) {
	client := topgg.NewClient(topgg.Config{
		Endpoint: settings.Directory.Endpoint,
		Timeout:  settings.Directory.Timeout,
	})
	logger.Debug("Directory: %s", client.Endpoint())

	svc := services.NewSamplingService(client, nil)
	if settings.Output.File != "" {
		svc.SetSampleStore(jsonfile.NewSampleStore(settings.Output.File))
	}
	return svc, nil
}
