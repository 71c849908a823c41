package services

import (
	"fmt"
	"net/url"
	"time"

	"github.com/custodia-labs/topgg-sampler/internal/core/domain"
	"github.com/custodia-labs/topgg-sampler/internal/core/ports/driven"
	"github.com/custodia-labs/topgg-sampler/internal/core/ports/driving"
	"github.com/custodia-labs/topgg-sampler/internal/logger"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyCandidatePoolSize = "sampling.candidate_pool_size"
	keySampleSize        = "sampling.sample_size"
	keyEndpoint          = "directory.endpoint"
	keyTimeout           = "directory.timeout"
	keyOutputFormat      = "output.format"
	keyOutputFile        = "output.file"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current application settings.
// Missing or invalid values fall back to defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Sampling: domain.SamplingSettings{
			CandidatePoolSize: s.getPositiveInt(keyCandidatePoolSize, defaults.Sampling.CandidatePoolSize),
			SampleSize:        s.getNonNegativeInt(keySampleSize, defaults.Sampling.SampleSize),
		},
		Directory: domain.DirectorySettings{
			Endpoint: s.getString(keyEndpoint, defaults.Directory.Endpoint),
			Timeout:  s.getDuration(keyTimeout, defaults.Directory.Timeout),
		},
		Output: domain.OutputSettings{
			Format: s.getOutputFormat(defaults.Output.Format),
			File:   s.configStore.GetString(keyOutputFile),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := settings.Sampling.Validate(); err != nil {
		return err
	}
	if err := validateEndpoint(settings.Directory.Endpoint); err != nil {
		return err
	}
	if !settings.Output.Format.IsValid() {
		return fmt.Errorf("%w: output format %q", domain.ErrInvalidInput, settings.Output.Format)
	}
	if settings.Directory.Timeout < 0 {
		return fmt.Errorf("%w: timeout must not be negative", domain.ErrInvalidInput)
	}

	timeout := ""
	if settings.Directory.Timeout > 0 {
		timeout = settings.Directory.Timeout.String()
	}

	values := map[string]any{
		keyCandidatePoolSize: settings.Sampling.CandidatePoolSize,
		keySampleSize:        settings.Sampling.SampleSize,
		keyEndpoint:          settings.Directory.Endpoint,
		keyTimeout:           timeout,
		keyOutputFormat:      settings.Output.Format.String(),
		keyOutputFile:        settings.Output.File,
	}
	if err := s.configStore.SetAll(values); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}

	return nil
}

// SetSampling updates the candidate pool and sample sizes.
func (s *SettingsService) SetSampling(candidatePoolSize, sampleSize int) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	settings.Sampling.CandidatePoolSize = candidatePoolSize
	settings.Sampling.SampleSize = sampleSize

	return s.Save(settings)
}

// SetDirectory updates the directory endpoint and request timeout.
// An empty endpoint restores the default.
func (s *SettingsService) SetDirectory(endpoint string, timeout time.Duration) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	if endpoint == "" {
		endpoint = domain.DefaultEndpoint
	}
	settings.Directory.Endpoint = endpoint
	settings.Directory.Timeout = timeout

	return s.Save(settings)
}

// SetOutput updates the output format and export file.
func (s *SettingsService) SetOutput(format domain.OutputFormat, file string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	settings.Output.Format = format
	settings.Output.File = file

	return s.Save(settings)
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// ConfigPath returns where settings are persisted.
func (s *SettingsService) ConfigPath() string {
	return s.configStore.Path()
}

// Helper methods

func (s *SettingsService) getString(key, defaultVal string) string {
	if val := s.configStore.GetString(key); val != "" {
		return val
	}
	return defaultVal
}

func (s *SettingsService) getPositiveInt(key string, defaultVal int) int {
	if val := s.configStore.GetInt(key); val > 0 {
		return val
	}
	return defaultVal
}

func (s *SettingsService) getNonNegativeInt(key string, defaultVal int) int {
	if _, ok := s.configStore.Get(key); !ok {
		return defaultVal
	}
	if val := s.configStore.GetInt(key); val >= 0 {
		return val
	}
	return defaultVal
}

func (s *SettingsService) getDuration(key string, defaultVal time.Duration) time.Duration {
	raw := s.configStore.GetString(key)
	if raw == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d < 0 {
		logger.Warn("Ignoring invalid %s %q", key, raw)
		return defaultVal
	}
	return d
}

func (s *SettingsService) getOutputFormat(defaultVal domain.OutputFormat) domain.OutputFormat {
	format := domain.OutputFormat(s.configStore.GetString(keyOutputFormat))
	if format.IsValid() {
		return format
	}
	return defaultVal
}

func validateEndpoint(endpoint string) error {
	u, err := url.Parse(endpoint)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("%w: endpoint must be an absolute URL, got %q", domain.ErrInvalidInput, endpoint)
	}
	return nil
}
