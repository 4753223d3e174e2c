package dist

import (
	"embed"
	"sync"

	"github.com/rs/zerolog"

	"tpcdsgen/internal/tpcdserr"
)

//go:embed data/*.dst
var assets embed.FS

// Registry caches parsed Distribution assets across a generation run so
// repeated row generators sharing a table don't re-parse the same .dst
// file. A Registry is safe for concurrent use by the worker-per-partition
// model described in spec.md §5.
type Registry struct {
	mu     sync.Mutex
	cache  map[string]*Distribution
	logger zerolog.Logger
}

// NewRegistry creates a Registry that logs (at debug level) the first
// time each asset is parsed.
func NewRegistry(logger zerolog.Logger) *Registry {
	return &Registry{cache: make(map[string]*Distribution), logger: logger}
}

// Load returns the parsed Distribution for the named .dst asset,
// parsing and caching it on first use.
func (r *Registry) Load(name string) (*Distribution, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if d, ok := r.cache[name]; ok {
		return d, nil
	}
	raw, err := assets.ReadFile("data/" + name)
	if err != nil {
		return nil, tpcdserr.Asset(name, err)
	}
	d, err := Parse(name, raw)
	if err != nil {
		return nil, err
	}
	r.logger.Debug().
		Str("asset", name).
		Int("rows", d.Len()).
		Int("weight_sets", len(d.weightNames)).
		Msg("parsed distribution asset")
	r.cache[name] = d
	return d, nil
}
