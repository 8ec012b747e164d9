package app

import (
	"bytes"
	"context"
	"io"
	"os"
	"sync"
	"testing"

	"github.com/vk/autoreg/internal/config"
	"github.com/vk/autoreg/internal/registry"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// StaticLoader is a config.Loader returning a fixed model.
type StaticLoader struct {
	Model *config.Model
	Err   error
}

// Load implements config.Loader.
func (l StaticLoader) Load(context.Context, ...string) (*config.Model, error) {
	return l.Model, l.Err
}

// SetupAppTest creates a new app instance for system testing.
func SetupAppTest(t *testing.T, appCfg *Config, loader config.Loader, modules ...registry.Module) (*App, *SafeBuffer) {
	t.Helper()

	logBuffer := &SafeBuffer{}
	appCfg.LogLevel = "debug"
	testApp, err := NewApp(io.Discard, logBuffer, appCfg, loader, modules...)
	if err != nil {
		t.Fatalf("failed to create app: %v", err)
	}

	t.Cleanup(func() {
		if os.Getenv("AUTOREG_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})

	return testApp, logBuffer
}
