package widgets

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/autoreg/internal/engine"
	"github.com/vk/autoreg/internal/meta"
)

func TestModule_ScanRegistersWidgets(t *testing.T) {
	inst := meta.NewInstances()
	m := &Module{}
	require.NoError(t, m.Bind(inst))

	eng, err := engine.New(meta.NewReflect(inst))
	require.NoError(t, err)

	got := map[string]*Widget{}
	res, err := engine.ScanIntoMap(context.Background(), eng.Block(engine.Options{Namespace: "mymod"}), m.Registrar(), got)
	require.NoError(t, err)

	assert.Equal(t, []string{"mymod:redwidget", "mymod:blue_widget", "mymod:greenone"}, res.Keys)
	assert.Same(t, Instance.BlueOne, got["mymod:blue_widget"])
}
