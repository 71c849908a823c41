package cli

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/topgg-sampler/internal/core/domain"
	"github.com/custodia-labs/topgg-sampler/internal/core/ports/driving"
)

// splitOutput separates the two progress lines from the rendered sample.
func splitOutput(t *testing.T, out string) ([]string, string) {
	t.Helper()

	parts := strings.SplitN(out, "\n", 3)
	require.Len(t, parts, 3, "expected two progress lines and a body")
	return parts[:2], parts[2]
}

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "topgg-sampler", rootCmd.Use)
}

func TestRootCmd_Flags(t *testing.T) {
	tests := []struct {
		name      string
		shorthand string
		defValue  string
	}{
		{name: "pool-size", shorthand: "n", defValue: "100"},
		{name: "sample-size", shorthand: "k", defValue: "5"},
		{name: "seed", defValue: "0"},
		{name: "format", shorthand: "f", defValue: "dump"},
		{name: "output", shorthand: "o", defValue: ""},
		{name: "endpoint", defValue: domain.DefaultEndpoint},
		{name: "timeout", defValue: "0s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag := rootCmd.Flags().Lookup(tt.name)
			require.NotNil(t, flag)
			assert.Equal(t, tt.shorthand, flag.Shorthand)
			assert.Equal(t, tt.defValue, flag.DefValue)
		})
	}

	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("verbose"))
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("config-dir"))
}

func TestRootCmd_EndToEnd_SamplesFiveDistinctServers(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()
	server, requests := newDirectoryServer(t, 10)

	out, err := execute(t, "--endpoint", server.URL, "--pool-size", "10", "--sample-size", "5")

	require.NoError(t, err)
	assert.Equal(t, int32(1), requests.Load())
	assert.Equal(t, 1, strings.Count(out, "Created candidate pool from the 10 top servers."))
	assert.Equal(t, 1, strings.Count(out, "Created sample of 5 random servers."))

	lines, body := splitOutput(t, out)
	assert.Equal(t, "Created candidate pool from the 10 top servers.", lines[0])
	assert.Equal(t, "Created sample of 5 random servers.", lines[1])

	var entities []domain.Entity
	require.NoError(t, json.Unmarshal([]byte(body), &entities))
	require.Len(t, entities, 5)

	seen := make(map[string]bool)
	for _, e := range entities {
		id := e.ID()
		assert.True(t, strings.HasPrefix(id, "srv-"), "unexpected id %q", id)
		assert.False(t, seen[id], "duplicate id %q", id)
		seen[id] = true
	}
}

func TestRootCmd_DefaultsFromSettings(t *testing.T) {
	store, cleanup := setupTestServices()
	defer cleanup()
	server, _ := newDirectoryServer(t, 10)
	require.NoError(t, store.SetAll(map[string]any{
		"sampling.candidate_pool_size": 10,
		"sampling.sample_size":         3,
		"directory.endpoint":           server.URL,
	}))

	out, err := execute(t)

	require.NoError(t, err)
	lines, body := splitOutput(t, out)
	assert.Equal(t, "Created candidate pool from the 10 top servers.", lines[0])
	assert.Equal(t, "Created sample of 3 random servers.", lines[1])

	var entities []domain.Entity
	require.NoError(t, json.Unmarshal([]byte(body), &entities))
	assert.Len(t, entities, 3)
}

func TestRootCmd_ProgressReportsRequestedSizes(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()
	server, _ := newDirectoryServer(t, 3)

	out, err := execute(t, "--endpoint", server.URL)

	require.NoError(t, err)
	lines, body := splitOutput(t, out)
	assert.Equal(t, "Created candidate pool from the 100 top servers.", lines[0])
	assert.Equal(t, "Created sample of 5 random servers.", lines[1])

	var entities []domain.Entity
	require.NoError(t, json.Unmarshal([]byte(body), &entities))
	assert.Len(t, entities, 3)
}

func TestRootCmd_SeedIsReproducible(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()
	server, _ := newDirectoryServer(t, 10)

	args := []string{"--endpoint", server.URL, "--pool-size", "10", "--seed", "42"}
	first, err := execute(t, args...)
	require.NoError(t, err)
	resetFlags(rootCmd)
	second, err := execute(t, args...)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRootCmd_JSONFormat(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()
	server, _ := newDirectoryServer(t, 10)

	out, err := execute(t, "--endpoint", server.URL, "-n", "10", "-k", "2", "--format", "json")

	require.NoError(t, err)
	_, body := splitOutput(t, out)

	var sample domain.Sample
	require.NoError(t, json.Unmarshal([]byte(body), &sample))
	assert.NotEmpty(t, sample.RunID)
	assert.Equal(t, 10, sample.CandidatePoolSize)
	assert.Equal(t, 2, sample.SampleSize)
	assert.Equal(t, 10, sample.PoolLength)
	assert.Len(t, sample.Entities, 2)
}

func TestRootCmd_TableFormat(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()
	server, _ := newDirectoryServer(t, 1)

	out, err := execute(t, "--endpoint", server.URL, "--format", "table")

	require.NoError(t, err)
	_, body := splitOutput(t, out)
	assert.Contains(t, body, "ID")
	assert.Contains(t, body, "MEMBERS")
	assert.Contains(t, body, "srv-00")
	assert.Contains(t, body, "Server 0")
	assert.Contains(t, body, "1000")
}

func TestRootCmd_InvalidFormat(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "--format", "yaml")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRootCmd_InvalidPoolSize(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()
	called := false
	newSamplingService = func(*domain.AppSettings) (driving.SamplingService, error) {
		called = true
		return nil, errors.New("unreachable")
	}

	_, err := execute(t, "--pool-size", "0")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.False(t, called)
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "unexpected")

	assert.Error(t, err)
}

func TestRootCmd_FetchFailure_NoProgressOrOutput(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "upstream unavailable", http.StatusBadGateway)
	}))
	defer server.Close()

	out, err := execute(t, "--endpoint", server.URL)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnexpectedStatus)
	assert.NotContains(t, out, "Created candidate pool")
	assert.NotContains(t, out, "Created sample")
}

func TestRootCmd_MissingPath(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data":{}}`))
	}))
	defer server.Close()

	_, err := execute(t, "--endpoint", server.URL)

	assert.ErrorIs(t, err, domain.ErrMissingPath)
}

func TestRootCmd_ExportsSample(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()
	server, _ := newDirectoryServer(t, 10)
	path := filepath.Join(t.TempDir(), "data", "servers.json")

	out, err := execute(t, "--endpoint", server.URL, "-n", "10", "-k", "4", "--output", path)

	require.NoError(t, err)
	_, body := splitOutput(t, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var exported, printed []domain.Entity
	require.NoError(t, json.Unmarshal(data, &exported))
	require.NoError(t, json.Unmarshal([]byte(body), &printed))
	assert.Len(t, exported, 4)
	assert.Equal(t, printed, exported)
}

func TestRootCmd_FactoryError(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()
	newSamplingService = func(*domain.AppSettings) (driving.SamplingService, error) {
		return nil, errors.New("no directory")
	}

	_, err := execute(t)

	assert.EqualError(t, err, "no directory")
}

func TestRootCmd_CancelledContext(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()
	server, requests := newDirectoryServer(t, 10)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rootCmd.SetArgs([]string{"--endpoint", server.URL})
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetContext(context.Background())
	}()
	err := Execute(ctx)

	assert.ErrorIs(t, err, domain.ErrTransport)
	assert.Equal(t, int32(0), requests.Load())
}

func TestApplyRunFlags_OverridesOnlyChangedFlags(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	require.NoError(t, rootCmd.Flags().Set("sample-size", "9"))
	require.NoError(t, rootCmd.Flags().Set("seed", "7"))
	settings := domain.DefaultAppSettings()
	settings.Sampling.CandidatePoolSize = 250

	err := applyRunFlags(rootCmd, &settings)

	require.NoError(t, err)
	assert.Equal(t, 250, settings.Sampling.CandidatePoolSize)
	assert.Equal(t, 9, settings.Sampling.SampleSize)
	require.NotNil(t, settings.Sampling.Seed)
	assert.Equal(t, uint64(7), *settings.Sampling.Seed)
	assert.Equal(t, domain.OutputFormatDump, settings.Output.Format)
}
