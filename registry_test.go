package uuidkit

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// absentEnv simulates a process without the caching variable set.
func absentEnv(string) (string, bool) { return "", false }

func envWith(value string) func(string) (string, bool) {
	return func(string) (string, bool) { return value, true }
}

func TestRegistry_CachedDiscoveryRunsOnce(t *testing.T) {
	fixed, err := FixedSupplier(uuid.MustParse("85a8b17f-8ca5-4061-aeb6-2f8a1a3bb60b"))
	require.NoError(t, err)

	var calls atomic.Int32
	r := NewRegistry(
		WithDiscovery(func() []Supplier {
			calls.Add(1)
			return []Supplier{fixed}
		}),
		WithEnvLookup(absentEnv),
	)

	const goroutines = 32
	results := make([]Supplier, goroutines)
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = r.Default()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load(), "discovery must run exactly once under concurrent first access")
	for _, got := range results {
		assert.Equal(t, fixed, got, "every caller observes the same handle")
	}
	assert.Equal(t, r.Default(), r.Default())
	assert.Equal(t, int32(1), calls.Load(), "later calls must not re-discover")
}

func TestRegistry_FirstRegisteredWins(t *testing.T) {
	first, err := FixedSupplier(uuid.MustParse("80f99fd6-1ca8-45d5-a406-dcd8b9293fe8"))
	require.NoError(t, err)
	second, err := FixedSupplier(uuid.MustParse("ffec4ea6-e28b-49f2-b84b-9be0854d6077"))
	require.NoError(t, err)

	r := NewRegistry(
		WithDiscovery(func() []Supplier { return []Supplier{first, second} }),
		WithEnvLookup(absentEnv),
	)
	assert.Equal(t, first, r.Default())
}

func TestRegistry_FallsBackToRandom(t *testing.T) {
	r := NewRegistry(
		WithDiscovery(func() []Supplier { return nil }),
		WithEnvLookup(absentEnv),
	)
	assert.Equal(t, RandomSupplier(), r.Default())
	assert.NotEqual(t, r.Default().UUID(), r.Default().UUID())
}

func TestRegistry_NonCachedRediscoversEveryCall(t *testing.T) {
	fixed, err := FixedSupplier(uuid.MustParse("bdf730b5-306b-4b56-b7a9-e29781e941df"))
	require.NoError(t, err)

	var calls atomic.Int32
	var found atomic.Value // []Supplier
	found.Store([]Supplier{fixed})

	r := NewRegistry(
		WithDiscovery(func() []Supplier {
			calls.Add(1)
			return found.Load().([]Supplier)
		}),
		WithEnvLookup(envWith("false")),
	)

	def := r.Default()
	assert.Equal(t, def, r.Default(), "the handle itself is still a singleton")
	assert.Equal(t, int32(0), calls.Load(), "non-cached init must not discover eagerly")

	assert.Equal(t, fixed.UUID(), def.UUID())
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, fixed.UUID(), def.UUID())
	assert.Equal(t, int32(2), calls.Load())

	// Deregistering between calls is observed immediately.
	found.Store([]Supplier(nil))
	assert.NotEqual(t, fixed.UUID(), def.UUID(), "empty discovery falls back to random")
	assert.Equal(t, int32(3), calls.Load())
}

func TestRegistry_CachingModeParsing(t *testing.T) {
	tests := []struct {
		name       string
		value      string
		present    bool
		wantCached bool
	}{
		{name: "absent", wantCached: true},
		{name: "empty", present: true, value: "", wantCached: true},
		{name: "true", present: true, value: "true", wantCached: true},
		{name: "TRUE", present: true, value: "TRUE", wantCached: true},
		{name: "garbage", present: true, value: "banana", wantCached: true},
		{name: "false", present: true, value: "false", wantCached: false},
		{name: "FALSE", present: true, value: "FALSE", wantCached: false},
		{name: "False", present: true, value: "False", wantCached: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fixed, err := FixedSupplier(uuid.MustParse("819753ad-d485-4cd4-8e74-0edc17ade79f"))
			require.NoError(t, err)

			var calls atomic.Int32
			r := NewRegistry(
				WithDiscovery(func() []Supplier {
					calls.Add(1)
					return []Supplier{fixed}
				}),
				WithEnvLookup(func(string) (string, bool) { return tt.value, tt.present }),
			)

			def := r.Default()
			def.UUID()
			def.UUID()

			// Cached mode discovers once at init; non-cached once per call.
			if tt.wantCached {
				assert.Equal(t, int32(1), calls.Load())
			} else {
				assert.Equal(t, int32(2), calls.Load())
			}
		})
	}
}

func TestRegister(t *testing.T) {
	suppliersMu.Lock()
	saved := suppliers
	suppliers = nil
	suppliersMu.Unlock()
	t.Cleanup(func() {
		suppliersMu.Lock()
		suppliers = saved
		suppliersMu.Unlock()
	})

	first, err := FixedSupplier(uuid.MustParse("80f99fd6-1ca8-45d5-a406-dcd8b9293fe8"))
	require.NoError(t, err)
	second, err := FixedSupplier(uuid.MustParse("ffec4ea6-e28b-49f2-b84b-9be0854d6077"))
	require.NoError(t, err)

	Register(first)
	Register(second)

	// A fresh registry wired to the default discovery sees them in order.
	r := NewRegistry(WithEnvLookup(absentEnv))
	assert.Equal(t, first, r.Default())
}

func TestRegister_NilPanics(t *testing.T) {
	assert.Panics(t, func() { Register(nil) })
}

func TestDefault(t *testing.T) {
	// The global default registry may have been initialized by an earlier
	// test, so only contract-level properties are asserted here.
	def := Default()
	require.NotNil(t, def)
	assert.Equal(t, def, Default(), "same handle on every call")
	assert.NotEqual(t, uuid.Nil, def.UUID())
}
