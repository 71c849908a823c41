package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/topgg-sampler/internal/core/domain"
)

var (
	settingsPoolSize   int
	settingsSampleSize int
	settingsEndpoint   string
	settingsTimeout    time.Duration
	settingsFormat     string
	settingsFile       string
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure sampling, directory and output settings.

Settings are stored in config.toml under the config directory. Flags given
to a sampling run override them for that run only.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSamplingCmd = &cobra.Command{
	Use:   "sampling",
	Short: "Set candidate pool and sample sizes",
	Args:  cobra.NoArgs,
	RunE:  runSettingsSampling,
}

var settingsDirectoryCmd = &cobra.Command{
	Use:   "directory",
	Short: "Set the directory endpoint and request timeout",
	Long: `Set the GraphQL endpoint and request timeout.

An empty endpoint restores the default. A zero timeout disables it.`,
	Args: cobra.NoArgs,
	RunE: runSettingsDirectory,
}

var settingsOutputCmd = &cobra.Command{
	Use:   "output",
	Short: "Set the output format and export file",
	Long: `Set the output format and the file each sample is exported to.

Available formats:
  dump  - Indented JSON array of the sampled servers
  json  - JSON object with run metadata and the sampled servers
  table - Summary table (id, name, votes, members)

An empty file disables the export.`,
	Args: cobra.NoArgs,
	RunE: runSettingsOutput,
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore default settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsReset,
}

func init() {
	settingsSamplingCmd.Flags().IntVarP(&settingsPoolSize, "pool-size", "n", domain.DefaultCandidatePoolSize,
		"number of top servers to sample from")
	settingsSamplingCmd.Flags().IntVarP(&settingsSampleSize, "sample-size", "k", domain.DefaultSampleSize,
		"number of servers to draw")

	settingsDirectoryCmd.Flags().StringVar(&settingsEndpoint, "endpoint", domain.DefaultEndpoint,
		"directory GraphQL endpoint")
	settingsDirectoryCmd.Flags().DurationVar(&settingsTimeout, "timeout", 0, "request timeout (0 means none)")

	settingsOutputCmd.Flags().StringVarP(&settingsFormat, "format", "f", string(domain.OutputFormatDump),
		"output format: dump, json or table")
	settingsOutputCmd.Flags().StringVarP(&settingsFile, "file", "o", "", "export file, e.g. data/servers.json")

	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSamplingCmd)
	settingsCmd.AddCommand(settingsDirectoryCmd)
	settingsCmd.AddCommand(settingsOutputCmd)
	settingsCmd.AddCommand(settingsResetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Printf("Config: %s\n", settingsService.ConfigPath())
	cmd.Println()

	cmd.Println("[Sampling]")
	cmd.Printf("  Candidate pool size: %d\n", settings.Sampling.CandidatePoolSize)
	cmd.Printf("  Sample size: %d\n", settings.Sampling.SampleSize)
	cmd.Println()

	cmd.Println("[Directory]")
	cmd.Printf("  Endpoint: %s\n", settings.Directory.Endpoint)
	if settings.Directory.Timeout > 0 {
		cmd.Printf("  Timeout: %s\n", settings.Directory.Timeout)
	} else {
		cmd.Println("  Timeout: none")
	}
	cmd.Println()

	cmd.Println("[Output]")
	cmd.Printf("  Format: %s\n", settings.Output.Format)
	if settings.Output.File != "" {
		cmd.Printf("  Export file: %s\n", settings.Output.File)
	} else {
		cmd.Println("  Export file: (disabled)")
	}

	return nil
}

func runSettingsSampling(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	poolSize := settings.Sampling.CandidatePoolSize
	if cmd.Flags().Changed("pool-size") {
		poolSize = settingsPoolSize
	}
	sampleSize := settings.Sampling.SampleSize
	if cmd.Flags().Changed("sample-size") {
		sampleSize = settingsSampleSize
	}

	if err := settingsService.SetSampling(poolSize, sampleSize); err != nil {
		return fmt.Errorf("failed to set sampling: %w", err)
	}

	cmd.Printf("Sampling %d of the top %d servers.\n", sampleSize, poolSize)
	return nil
}

func runSettingsDirectory(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	endpoint := settings.Directory.Endpoint
	if cmd.Flags().Changed("endpoint") {
		endpoint = settingsEndpoint
	}
	timeout := settings.Directory.Timeout
	if cmd.Flags().Changed("timeout") {
		timeout = settingsTimeout
	}

	if err := settingsService.SetDirectory(endpoint, timeout); err != nil {
		return fmt.Errorf("failed to set directory: %w", err)
	}

	updated, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	cmd.Printf("Directory endpoint set to: %s\n", updated.Directory.Endpoint)
	return nil
}

func runSettingsOutput(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	format := settings.Output.Format
	if cmd.Flags().Changed("format") {
		format = domain.OutputFormat(settingsFormat)
	}
	file := settings.Output.File
	if cmd.Flags().Changed("file") {
		file = settingsFile
	}

	if err := settingsService.SetOutput(format, file); err != nil {
		return fmt.Errorf("failed to set output: %w", err)
	}

	cmd.Printf("Output format set to: %s\n", format)
	return nil
}

func runSettingsReset(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	defaults := settingsService.GetDefaults()
	if err := settingsService.Save(&defaults); err != nil {
		return fmt.Errorf("failed to reset settings: %w", err)
	}

	cmd.Println("Settings restored to defaults.")
	return nil
}
