package uuidkit

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// EnvSupplierCached names the environment variable controlling whether the
// default registry caches the supplier it discovers. The variable is read
// exactly once, on the first call to Default; caching cannot be toggled
// afterwards. Only a case-insensitive "false" turns caching off — an absent
// variable or any other value leaves it on.
const EnvSupplierCached = "UUIDKIT_SUPPLIER_CACHED"

// DiscoverFunc returns the supplier implementations visible in the current
// process, in registration order. A registry uses at most the first one.
type DiscoverFunc func() []Supplier

var (
	suppliersMu sync.RWMutex
	suppliers   []Supplier
)

// Register makes a supplier discoverable by registries using the default
// discovery. The first supplier registered wins. Register follows the
// database/sql.Register convention and panics on a nil supplier.
func Register(s Supplier) {
	if s == nil {
		panic("uuidkit: Register called with nil Supplier")
	}
	suppliersMu.Lock()
	defer suppliersMu.Unlock()
	suppliers = append(suppliers, s)
}

// registered snapshots the registered suppliers in registration order.
func registered() []Supplier {
	suppliersMu.RLock()
	defer suppliersMu.RUnlock()
	out := make([]Supplier, len(suppliers))
	copy(out, suppliers)
	return out
}

// Registry holds the lazily-initialized default supplier for a process. The
// zero-value-plus-NewRegistry form exists so the discovery and environment
// lookups stay injectable; production code normally uses the package-level
// Default.
type Registry struct {
	once      sync.Once
	def       Supplier
	discover  DiscoverFunc
	lookupEnv func(string) (string, bool)
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithDiscovery replaces the discovery mechanism, normally the
// process-wide registered-supplier list.
func WithDiscovery(d DiscoverFunc) RegistryOption {
	return func(r *Registry) { r.discover = d }
}

// WithEnvLookup replaces the environment lookup, normally os.LookupEnv.
func WithEnvLookup(lookup func(string) (string, bool)) RegistryOption {
	return func(r *Registry) { r.lookupEnv = lookup }
}

// NewRegistry creates a registry wired to the process-wide registered
// suppliers and the real environment unless options say otherwise.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{}
	for _, opt := range opts {
		opt(r)
	}
	if r.discover == nil {
		r.discover = registered
	}
	if r.lookupEnv == nil {
		r.lookupEnv = os.LookupEnv
	}
	return r
}

// Default returns the registry's default supplier, initializing it on first
// call. In cached mode (the default) discovery runs exactly once, here, and
// the result is permanent for the registry's lifetime; in non-cached mode the
// returned supplier re-runs discovery on every invocation. Initialization
// happens at most once even under concurrent first access, and every caller
// observes the same fully constructed handle.
func (r *Registry) Default() Supplier {
	r.once.Do(r.init)
	return r.def
}

func (r *Registry) init() {
	cached := r.cached()
	if cached {
		r.def = r.resolve()
	} else {
		r.def = nonCachingSupplier{r: r}
	}
	slog.Debug("uuidkit: default supplier initialized",
		"cached", cached,
		"supplier", fmt.Sprint(r.def))
}

// resolve runs one discovery pass: the first supplier found wins, the shared
// random supplier is the fallback.
func (r *Registry) resolve() Supplier {
	if found := r.discover(); len(found) > 0 {
		return found[0]
	}
	return sharedRandom
}

// cached applies the lenient parse rule: only a case-insensitive "false"
// selects non-cached mode.
func (r *Registry) cached() bool {
	v, ok := r.lookupEnv(EnvSupplierCached)
	return !ok || !strings.EqualFold(v, "false")
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide default supplier: the first supplier
// registered via Register, or the shared random supplier when none is
// registered. Caching behavior is controlled by EnvSupplierCached.
func Default() Supplier {
	return defaultRegistry.Default()
}
