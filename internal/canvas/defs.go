package canvas

import (
	"fmt"
	"sync"

	"github.com/kapu/pedigree-chart-go/internal/svg"
)

// DefsRegistry owns the document's reusable definitions (gradients,
// patterns, markers), keyed by id. It is append-only: definitions are
// registered during the drawing phase and never removed.
type DefsRegistry struct {
	mu    sync.RWMutex
	el    *svg.Element
	index map[string]*svg.Element
}

func newDefsRegistry(el *svg.Element) *DefsRegistry {
	return &DefsRegistry{
		el:    el,
		index: make(map[string]*svg.Element),
	}
}

// Register adds a definition under the given id. Registering an id twice
// is an error; definitions are shared, not replaced.
func (d *DefsRegistry) Register(id string, def *svg.Element) error {
	if id == "" {
		return fmt.Errorf("definition id must not be empty")
	}
	if def == nil {
		return fmt.Errorf("definition %q must not be nil", id)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.index[id]; exists {
		return fmt.Errorf("definition %q already registered", id)
	}

	def.Set("id", id)
	d.el.Append(def)
	d.index[id] = def
	return nil
}

func (d *DefsRegistry) Lookup(id string) (*svg.Element, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	def, ok := d.index[id]
	return def, ok
}

func (d *DefsRegistry) Has(id string) bool {
	_, ok := d.Lookup(id)
	return ok
}

func (d *DefsRegistry) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.index)
}

// URL returns the url(#id) paint reference for a registered id.
func (d *DefsRegistry) URL(id string) string {
	return svg.URLRef(id)
}
