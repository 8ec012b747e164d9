package app

import (
	"github.com/vk/autoreg/internal/registry"
	"github.com/vk/autoreg/modules/blocks"
	"github.com/vk/autoreg/modules/widgets"
)

// coreModules is the definitive list of all content modules that are
// compiled into the autoreg binary.
var coreModules = []registry.Module{
	&widgets.Module{},
	&blocks.Module{},
}
