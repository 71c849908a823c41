package driving

import (
	"time"

	"github.com/custodia-labs/topgg-sampler/internal/core/domain"
)

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetSampling updates the candidate pool and sample sizes.
	SetSampling(candidatePoolSize, sampleSize int) error

	// SetDirectory updates the directory endpoint and request timeout.
	SetDirectory(endpoint string, timeout time.Duration) error

	// SetOutput updates the output format and export file.
	SetOutput(format domain.OutputFormat, file string) error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings

	// ConfigPath returns where settings are persisted.
	ConfigPath() string
}
