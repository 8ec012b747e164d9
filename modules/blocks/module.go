// Package blocks is a sample content module whose content kind is an
// interface with several implementations.
package blocks

import (
	"reflect"

	"github.com/vk/autoreg/internal/marker"
	"github.com/vk/autoreg/internal/meta"
)

// Block is the content kind of this module.
type Block interface {
	Hardness() int
}

// Solid is a block with a fixed hardness.
type Solid struct {
	Material string
	Level    int
}

// Hardness implements Block.
func (s *Solid) Hardness() int { return s.Level }

// Liquid is a block that cannot be mined.
type Liquid struct {
	Viscosity float64
}

// Hardness implements Block.
func (l Liquid) Hardness() int { return 0 }

// Blocks is the registrar of the module's blocks.
type Blocks struct {
	_ marker.Registrar[Block]

	Stone    *Solid `autoreg:"stone"`
	Obsidian *Solid `autoreg:"obsidian"`
	Water    Liquid
	Lava     Block `autoreg:"lava"`

	// bedrock is only registered by modes scanning unexported members.
	bedrock *Solid `autoreg:"bedrock"`
}

// Instance is the module's singleton registrar.
var Instance = &Blocks{
	Stone:    &Solid{Material: "stone", Level: 2},
	Obsidian: &Solid{Material: "obsidian", Level: 9},
	Water:    Liquid{Viscosity: 1},
	Lava:     Liquid{Viscosity: 5},
	bedrock:  &Solid{Material: "bedrock", Level: 100},
}

// Module implements the registry.Module interface for this package.
type Module struct{}

// Name implements registry.Module.
func (m *Module) Name() string { return "blocks" }

// Registrar implements registry.Module.
func (m *Module) Registrar() reflect.Type { return reflect.TypeFor[Blocks]() }

// Bind implements registry.Module.
func (m *Module) Bind(inst *meta.Instances) error {
	return inst.Bind(Instance)
}
