// Package widgets is a sample content module registering widgets.
package widgets

import (
	"reflect"

	"github.com/vk/autoreg/internal/marker"
	"github.com/vk/autoreg/internal/meta"
)

// Widget is the content kind of this module.
type Widget struct {
	Color string
	Size  int
}

// Widgets is the registrar of the module's widgets.
type Widgets struct {
	_ marker.Registrar[*Widget]

	RedWidget *Widget
	BlueOne   *Widget `autoreg:"blue_widget"`
	GreenOne  *Widget `autoreg:""`

	// DefaultSize is not a widget and is never registered.
	DefaultSize int
}

// Instance is the module's singleton registrar.
var Instance = &Widgets{
	RedWidget:   &Widget{Color: "red", Size: 1},
	BlueOne:     &Widget{Color: "blue", Size: 2},
	GreenOne:    &Widget{Color: "green", Size: 3},
	DefaultSize: 1,
}

// Module implements the registry.Module interface for this package.
type Module struct{}

// Name implements registry.Module.
func (m *Module) Name() string { return "widgets" }

// Registrar implements registry.Module.
func (m *Module) Registrar() reflect.Type { return reflect.TypeFor[Widgets]() }

// Bind implements registry.Module.
func (m *Module) Bind(inst *meta.Instances) error {
	return inst.Bind(Instance)
}
