package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/topgg-sampler/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/topgg-sampler/internal/core/domain"
	"github.com/custodia-labs/topgg-sampler/internal/core/services"
	"github.com/custodia-labs/topgg-sampler/internal/logger"
)

// setupTestServices installs an in-memory settings service and restores
// package state afterwards.
func setupTestServices() (*memory.ConfigStore, func()) {
	store := memory.NewConfigStore()
	origSettings := settingsService
	origFactory := newSamplingService

	settingsService = services.NewSettingsService(store)
	logger.SetOutput(io.Discard)

	return store, func() {
		settingsService = origSettings
		newSamplingService = origFactory
		resetFlags(rootCmd)
		logger.SetVerbose(false)
	}
}

// resetFlags restores every flag in the command tree to its default.
// Cobra keeps parsed values between Execute calls.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

// execute runs the root command with args and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.ExecuteContext(context.Background())
	return buf.String(), err
}

// newDirectoryServer serves n labelled servers and counts requests.
func newDirectoryServer(t *testing.T, n int) (*httptest.Server, *atomic.Int32) {
	t.Helper()

	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		nodes := make([]domain.Entity, 0, n)
		for i := range n {
			nodes = append(nodes, domain.Entity{
				"id":          fmt.Sprintf("srv-%02d", i),
				"name":        fmt.Sprintf("Server %d", i),
				"votes":       100 - i,
				"socialCount": 1000 * (i + 1),
			})
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{
				"entitiesV2": map[string]any{"nodes": nodes},
			},
		})
	}))
	t.Cleanup(server.Close)

	return server, &requests
}
