package engine

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vk/autoreg/internal/ctxlog"
	"github.com/vk/autoreg/internal/hooks"
	hookmocks "github.com/vk/autoreg/internal/hooks/mocks"
	"github.com/vk/autoreg/internal/marker"
	"github.com/vk/autoreg/internal/meta"
	"github.com/vk/autoreg/internal/policy"
	"github.com/vk/autoreg/internal/provider"
	providermocks "github.com/vk/autoreg/internal/provider/mocks"
	"github.com/vk/autoreg/internal/registry"
	"github.com/vk/autoreg/internal/scanerr"
)

type Widget struct{ Color string }

type Widgets struct {
	_ marker.Registrar[*Widget]

	RedWidget *Widget
	BlueOne   *Widget `autoreg:"blue_widget"`
	Label     string
}

type Broken struct {
	_ marker.Registrar[*Widget]

	First  *Widget
	Second *Widget
	Third  *Widget
}

type BadName struct {
	_ marker.Registrar[*Widget]

	First  *Widget
	Second *Widget `autoreg:"Second"`
	Third  *Widget
}

type Plain struct {
	RedWidget *Widget
}

type Cube interface{ Hardness() int }

type stone struct{}

func (stone) Hardness() int { return 5 }

type dirt struct{}

func (*dirt) Hardness() int { return 1 }

type Cubes struct {
	_ marker.Registrar[Cube]

	Stone  stone
	Dirt   *dirt
	hidden Cube `autoreg:"secret_block"`
	Any    any
	Name   string
}

type fixture struct {
	engine    *Engine
	instances *meta.Instances
	widgets   *Widgets
	cubes     *Cubes
}

func newFixture(t *testing.T, opts ...Option) *fixture {
	t.Helper()
	inst := meta.NewInstances()
	f := &fixture{
		instances: inst,
		widgets:   &Widgets{RedWidget: &Widget{"red"}, BlueOne: &Widget{"blue"}, Label: "not a widget"},
		cubes:     &Cubes{Dirt: &dirt{}, hidden: stone{}, Any: &dirt{}, Name: "blocks"},
	}
	require.NoError(t, inst.Bind(f.widgets))
	require.NoError(t, inst.Bind(f.cubes))
	require.NoError(t, inst.Bind(&Broken{First: &Widget{"1"}, Third: &Widget{"3"}}))
	require.NoError(t, inst.Bind(&BadName{First: &Widget{"1"}, Second: &Widget{"2"}, Third: &Widget{"3"}}))
	require.NoError(t, inst.Bind(&Plain{RedWidget: &Widget{"red"}}))

	opts = append([]Option{WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))}, opts...)
	eng, err := New(meta.NewReflect(inst), opts...)
	require.NoError(t, err)
	f.engine = eng
	return f
}

func modePtr(m policy.Mode) *policy.Mode { return &m }

func TestNew_RequiresFacility(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)
}

func TestBlock_DefaultMode(t *testing.T) {
	f := newFixture(t)
	b := f.engine.Block(Options{Namespace: "mymod"})
	assert.Equal(t, policy.DefaultMode(), b.Mode())
	assert.Equal(t, "mymod", b.Namespace())

	custom := policy.Mode{NamedOnly: true}
	assert.Equal(t, custom, f.engine.Block(Options{Mode: &custom}).Mode())
}

func TestScan_WidgetScenario(t *testing.T) {
	f := newFixture(t)
	got := map[string]*Widget{}

	res, err := ScanIntoMap(context.Background(), f.engine.Block(Options{Namespace: "mymod"}), reflect.TypeFor[Widgets](), got)
	require.NoError(t, err)

	assert.Equal(t, []string{"mymod:redwidget", "mymod:blue_widget"}, res.Keys)
	assert.Equal(t, reflect.TypeFor[*Widget](), res.Kind)
	assert.Equal(t, map[string]*Widget{
		"mymod:redwidget":   f.widgets.RedWidget,
		"mymod:blue_widget": f.widgets.BlueOne,
	}, got)
}

func TestScan_NamedOnlySkipsUnnamedMembers(t *testing.T) {
	f := newFixture(t)
	got := map[string]*Widget{}
	b := f.engine.Block(Options{Namespace: "mymod", Mode: modePtr(policy.Mode{PublicOnly: true, NamedOnly: true})})

	res, err := ScanIntoMap(context.Background(), b, reflect.TypeFor[Widgets](), got)
	require.NoError(t, err)
	assert.Equal(t, []string{"mymod:blue_widget"}, res.Keys)
	assert.Len(t, got, 1)
}

func TestScan_PointerTypeResolvesToStruct(t *testing.T) {
	f := newFixture(t)
	got := map[string]*Widget{}
	_, err := ScanIntoMap(context.Background(), f.engine.Block(Options{Namespace: "mymod"}), reflect.TypeFor[*Widgets](), got)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestScan_Preconditions(t *testing.T) {
	ctrl := gomock.NewController(t)
	// The provider must never be called.
	p := providermocks.NewMockProvider(ctrl)
	f := newFixture(t)
	ctx := context.Background()

	t.Run("namespace unset", func(t *testing.T) {
		_, err := f.engine.Block(Options{}).Scan(ctx, reflect.TypeFor[Widgets](), p)
		var target *scanerr.NamespaceUnsetError
		require.True(t, errors.As(err, &target), "got %v", err)
		assert.Contains(t, target.Registrar, "Widgets")
	})

	t.Run("namespace is checked before the marker", func(t *testing.T) {
		_, err := f.engine.Block(Options{}).Scan(ctx, reflect.TypeFor[Plain](), p)
		var target *scanerr.NamespaceUnsetError
		assert.True(t, errors.As(err, &target), "got %v", err)
	})

	t.Run("missing registrar marker", func(t *testing.T) {
		_, err := f.engine.Block(Options{Namespace: "mymod"}).Scan(ctx, reflect.TypeFor[Plain](), p)
		var target *scanerr.MissingRegistrarMarkerError
		require.True(t, errors.As(err, &target), "got %v", err)
		assert.Contains(t, target.Registrar, "Plain")
	})

	t.Run("not a singleton", func(t *testing.T) {
		type Unbound struct {
			_ marker.Registrar[*Widget]
			W *Widget
		}
		_, err := f.engine.Block(Options{Namespace: "mymod"}).Scan(ctx, reflect.TypeFor[Unbound](), p)
		var target *scanerr.NotScannableSingletonError
		require.True(t, errors.As(err, &target), "got %v", err)
		assert.ErrorIs(t, err, meta.ErrNoInstance)
	})

	t.Run("nil provider", func(t *testing.T) {
		_, err := f.engine.Block(Options{Namespace: "mymod"}).Scan(ctx, reflect.TypeFor[Widgets](), nil)
		assert.ErrorIs(t, err, ErrNilProvider)
	})
}

func TestScan_MissingValueStopsTheScan(t *testing.T) {
	ctrl := gomock.NewController(t)
	listener := hookmocks.NewMockListener(ctrl)
	bus := hooks.NewBus()
	bus.Subscribe(listener)
	f := newFixture(t, WithHooks(bus))

	listener.EXPECT().MemberRegistered(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	// ScanCompleted must not fire for an aborted scan.

	got := map[string]*Widget{}
	_, err := ScanIntoMap(context.Background(), f.engine.Block(Options{Namespace: "mymod"}), reflect.TypeFor[Broken](), got)

	var target *scanerr.MissingValueError
	require.True(t, errors.As(err, &target), "got %v", err)
	assert.Equal(t, "Second", target.Member)
	assert.Equal(t, []string{"mymod:first"}, keysOf(got), "members after the failure are not processed")
}

func TestScan_InvalidLocalNameStopsTheScan(t *testing.T) {
	f := newFixture(t)
	got := map[string]*Widget{}

	_, err := ScanIntoMap(context.Background(), f.engine.Block(Options{Namespace: "mymod"}), reflect.TypeFor[BadName](), got)

	var target *scanerr.InvalidLocalNameError
	require.True(t, errors.As(err, &target), "got %v", err)
	assert.Equal(t, "Second", target.Name)
	assert.Equal(t, []string{"mymod:first"}, keysOf(got))
}

func TestScan_ProviderFailureIsNotSwallowed(t *testing.T) {
	f := newFixture(t)
	store := registry.New[*Widget]()
	require.NoError(t, store.Put("mymod:blue_widget", &Widget{"taken"}))

	_, err := ScanIntoRegistry[*Widget](context.Background(), f.engine.Block(Options{Namespace: "mymod"}), reflect.TypeFor[Widgets](), store)

	var target *scanerr.ProviderRegistrationError
	require.True(t, errors.As(err, &target), "got %v", err)
	assert.Equal(t, "mymod:blue_widget", target.Key)
	assert.Equal(t, "BlueOne", target.Member)
	assert.ErrorIs(t, err, registry.ErrDuplicateKey)
	assert.Equal(t, []string{"mymod:blue_widget", "mymod:redwidget"}, store.Keys(), "earlier registrations stay")
}

func TestScan_ImmutableStoreFailsBeforeScanning(t *testing.T) {
	ctrl := gomock.NewController(t)
	listener := hookmocks.NewMockListener(ctrl)
	bus := hooks.NewBus()
	bus.Subscribe(listener)
	f := newFixture(t, WithHooks(bus))

	store := registry.New[*Widget]()
	store.Freeze()

	_, err := ScanIntoRegistry[*Widget](context.Background(), f.engine.Block(Options{Namespace: "mymod"}), reflect.TypeFor[Widgets](), store)
	assert.ErrorIs(t, err, provider.ErrImmutableStore)

	var provErr *scanerr.ProviderRegistrationError
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, "engine.Widgets", provErr.Registrar)
	assert.Empty(t, provErr.Key)
}

func TestScan_IsIdempotentOverAMap(t *testing.T) {
	f := newFixture(t)
	b := f.engine.Block(Options{Namespace: "mymod"})
	got := map[string]*Widget{}

	_, err := ScanIntoMap(context.Background(), b, reflect.TypeFor[Widgets](), got)
	require.NoError(t, err)
	first := make(map[string]*Widget, len(got))
	for k, v := range got {
		first[k] = v
	}

	_, err = ScanIntoMap(context.Background(), b, reflect.TypeFor[Widgets](), got)
	require.NoError(t, err)
	assert.Equal(t, first, got)
}

func TestScan_InterfaceKindAndVisibility(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	got := map[string]Cube{}
	res, err := ScanIntoMap(ctx, f.engine.Block(Options{Namespace: "mc"}), reflect.TypeFor[Cubes](), got)
	require.NoError(t, err)
	assert.Equal(t, []string{"mc:stone", "mc:dirt", "mc:any"}, res.Keys, "unexported members are skipped by default")

	got = map[string]Cube{}
	res, err = ScanIntoMap(ctx, f.engine.Block(Options{Namespace: "mc", Mode: &policy.Mode{}}), reflect.TypeFor[Cubes](), got)
	require.NoError(t, err)
	assert.Equal(t, []string{"mc:stone", "mc:dirt", "mc:secret_block", "mc:any"}, res.Keys)
	assert.Equal(t, stone{}, got["mc:secret_block"])

	got = map[string]Cube{}
	res, err = ScanIntoMap(ctx, f.engine.Block(Options{Namespace: "mc", Mode: &policy.Mode{AnnotatedOnly: true}}), reflect.TypeFor[Cubes](), got)
	require.NoError(t, err)
	assert.Equal(t, []string{"mc:secret_block"}, res.Keys)
}

func TestScan_HooksFireInDeclarationOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	listener := hookmocks.NewMockListener(ctrl)
	bus := hooks.NewBus()
	bus.Subscribe(listener)
	f := newFixture(t, WithHooks(bus))

	m := map[string]*Widget{}
	p := provider.NewMap(m)
	memberKey := func(key string) gomock.Matcher {
		return gomock.Cond(func(x any) bool {
			e, ok := x.(hooks.MemberEvent)
			return ok && e.Key == key && e.Namespace == "mymod" && e.Provider == p && e.Registrar == reflect.TypeFor[Widgets]()
		})
	}

	gomock.InOrder(
		listener.EXPECT().MemberRegistered(gomock.Any(), memberKey("mymod:redwidget")).Return(nil),
		listener.EXPECT().MemberRegistered(gomock.Any(), memberKey("mymod:blue_widget")).Return(nil),
		listener.EXPECT().ScanCompleted(gomock.Any(), gomock.Cond(func(x any) bool {
			e, ok := x.(hooks.ScanEvent)
			return ok && len(e.Registered) == 2 && e.Mode == policy.DefaultMode()
		})).Return(nil).Times(1),
	)

	_, err := f.engine.Block(Options{Namespace: "mymod"}).Scan(context.Background(), reflect.TypeFor[Widgets](), p)
	require.NoError(t, err)
}

func TestScan_FailingListenerAbortsScan(t *testing.T) {
	bus := hooks.NewBus()
	boom := errors.New("audit sink down")
	bus.OnMember(func(context.Context, hooks.MemberEvent) error { return boom })
	f := newFixture(t, WithHooks(bus))

	got := map[string]*Widget{}
	_, err := ScanIntoMap(context.Background(), f.engine.Block(Options{Namespace: "mymod"}), reflect.TypeFor[Widgets](), got)

	var target *scanerr.HookError
	require.True(t, errors.As(err, &target), "got %v", err)
	assert.ErrorIs(t, err, boom)
	assert.Len(t, got, 1, "the first member registered before its listener failed")
}

func TestScan_UsesContextLogger(t *testing.T) {
	f := newFixture(t)
	var buf bytes.Buffer
	ctx := ctxlog.WithLogger(context.Background(), slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	_, err := ScanType[Widgets](ctx, f.engine.Block(Options{Namespace: "mymod"}), provider.NewMap(map[string]*Widget{}))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "scan_id=")
	assert.Contains(t, out, "Skipping member.")
	assert.Contains(t, out, "registered=2")
}

func TestConfigure(t *testing.T) {
	f := newFixture(t)
	got := map[string]any{}

	err := f.engine.Configure(Options{Namespace: "mymod"}, func(b *Block) error {
		if _, err := ScanIntoMap(context.Background(), b, reflect.TypeFor[Widgets](), got); err != nil {
			return err
		}
		_, err := ScanIntoMap(context.Background(), b, reflect.TypeFor[Cubes](), got)
		return err
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"mymod:redwidget", "mymod:blue_widget", "mymod:stone", "mymod:dirt", "mymod:any"}, keysOf(got))
}

// TestScan_MatchesDetectionRulesForEveryMode scans a table-described
// registrar holding one member per visibility, marker and kind state, under
// every flag combination.
func TestScan_MatchesDetectionRulesForEveryMode(t *testing.T) {
	type registrar struct{}
	typ := reflect.TypeFor[registrar]()
	kind := reflect.TypeFor[*Widget]()

	type state struct {
		exported bool
		marker   *marker.Member
		matching bool
	}
	var states []state
	for _, exported := range []bool{true, false} {
		for _, mk := range []*marker.Member{nil, {ExplicitName: marker.Derive}, {ExplicitName: "named"}} {
			for _, matching := range []bool{true, false} {
				states = append(states, state{exported, mk, matching})
			}
		}
	}

	members := make([]meta.Member, 0, len(states))
	for i, s := range states {
		m := meta.Member{Name: fmt.Sprintf("Member%d", i), Exported: s.exported, Type: kind, Value: meta.Const(&Widget{})}
		if s.marker != nil {
			mk := *s.marker
			if mk.Named() {
				mk.ExplicitName = fmt.Sprintf("named%d", i)
			}
			m.Marker = &mk
		}
		if !s.matching {
			m.Type = reflect.TypeFor[string]()
			m.Value = meta.Const("text")
		}
		members = append(members, m)
	}

	facility := meta.NewTable(meta.TableEntry{Type: typ, Kind: kind, Instance: &registrar{}, Members: members})
	eng, err := New(facility, WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	require.NoError(t, err)

	for _, publicOnly := range []bool{false, true} {
		for _, annotatedOnly := range []bool{false, true} {
			for _, namedOnly := range []bool{false, true} {
				mode := policy.Mode{PublicOnly: publicOnly, AnnotatedOnly: annotatedOnly, NamedOnly: namedOnly}
				t.Run(mode.String(), func(t *testing.T) {
					var want []string
					for i, s := range states {
						if !s.matching || (publicOnly && !s.exported) || (annotatedOnly && s.marker == nil) {
							continue
						}
						if namedOnly && (s.marker == nil || !s.marker.Named()) {
							continue
						}
						if s.marker != nil && s.marker.Named() {
							want = append(want, fmt.Sprintf("ns:named%d", i))
						} else {
							want = append(want, fmt.Sprintf("ns:member%d", i))
						}
					}

					got := map[string]*Widget{}
					res, err := ScanIntoMap(context.Background(), eng.Block(Options{Namespace: "ns", Mode: &mode}), typ, got)
					require.NoError(t, err)
					if want == nil {
						assert.Empty(t, res.Keys)
					} else {
						assert.Equal(t, want, res.Keys)
					}
				})
			}
		}
	}
}

func TestScan_TableWithoutMarkerRegistersNothing(t *testing.T) {
	type registrar struct{}
	typ := reflect.TypeFor[registrar]()
	facility := meta.NewTable(meta.TableEntry{
		Type:     typ,
		Instance: &registrar{},
		Members:  []meta.Member{{Name: "A", Exported: true, Type: reflect.TypeFor[*Widget](), Value: meta.Const(&Widget{})}},
	})
	eng, err := New(facility)
	require.NoError(t, err)

	got := map[string]*Widget{}
	_, err = ScanIntoMap(context.Background(), eng.Block(Options{Namespace: "ns"}), typ, got)
	var target *scanerr.MissingRegistrarMarkerError
	assert.True(t, errors.As(err, &target))
	assert.Empty(t, got)
}

func keysOf[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
