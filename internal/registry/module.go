package registry

import (
	"reflect"

	"github.com/vk/autoreg/internal/meta"
)

// Module is the interface that all compiled-in content modules implement.
// A module owns one registrar type and binds its singleton instance.
type Module interface {
	// Name is the identifier configuration files use to select the module.
	Name() string
	// Registrar returns the module's registrar type.
	Registrar() reflect.Type
	// Bind registers the registrar's singleton instance.
	Bind(inst *meta.Instances) error
}
