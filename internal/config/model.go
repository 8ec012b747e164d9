package config

import (
	"context"

	"github.com/vk/autoreg/internal/policy"
)

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads configuration from the given paths and translates it into
	// the format-agnostic model.
	Load(ctx context.Context, paths ...string) (*Model, error)
}

// Model is the unified representation of the registration configuration.
type Model struct {
	Blocks []*Block
}

// Block is one configuration block: every registrar it lists is scanned
// with the same mode and namespace.
type Block struct {
	Namespace  string
	Mode       policy.Mode
	Registrars []string
	// Source is the file the block was read from.
	Source string
}

// OverrideNamespace replaces the namespace of every block.
func (m *Model) OverrideNamespace(ns string) {
	for _, b := range m.Blocks {
		b.Namespace = ns
	}
}
