package farm

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Key identifies a plot by its tile coordinate.
type Key struct {
	X, Y int
}

// String formats the key as "x,y", the form used in save records.
func (k Key) String() string {
	return strconv.Itoa(k.X) + "," + strconv.Itoa(k.Y)
}

// ParseKey parses an "x,y" tile key.
func ParseKey(s string) (Key, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return Key{}, fmt.Errorf("tile key %q: missing comma", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return Key{}, fmt.Errorf("tile key %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return Key{}, fmt.Errorf("tile key %q: %w", s, err)
	}
	return Key{X: x, Y: y}, nil
}

// Plot is a planted tile.
type Plot struct {
	PlantedAt int64
	Stage     Stage
}

// Registry is the sparse set of planted tiles.
type Registry struct {
	plots map[Key]*Plot
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{plots: make(map[Key]*Plot)}
}

// Get returns the plot at k, or nil when the tile is empty.
func (r *Registry) Get(k Key) *Plot {
	return r.plots[k]
}

// Set stores a plot, replacing any existing one.
func (r *Registry) Set(k Key, p Plot) {
	r.plots[k] = &p
}

// Plant creates a seed at k. It reports false if the tile is occupied.
func (r *Registry) Plant(k Key, nowMs int64) bool {
	if _, ok := r.plots[k]; ok {
		return false
	}
	r.plots[k] = &Plot{PlantedAt: nowMs, Stage: StageSeed}
	return true
}

// Remove deletes the plot at k.
func (r *Registry) Remove(k Key) {
	delete(r.plots, k)
}

// Len returns the number of plots.
func (r *Registry) Len() int {
	return len(r.plots)
}

// Keys returns all keys in row-major order.
func (r *Registry) Keys() []Key {
	keys := make([]Key, 0, len(r.plots))
	for k := range r.plots {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Y != keys[j].Y {
			return keys[i].Y < keys[j].Y
		}
		return keys[i].X < keys[j].X
	})
	return keys
}

// Each calls fn for every plot in row-major order.
func (r *Registry) Each(fn func(Key, *Plot)) {
	for _, k := range r.Keys() {
		fn(k, r.plots[k])
	}
}

// Clear removes every plot.
func (r *Registry) Clear() {
	clear(r.plots)
}

// Clone returns a deep copy.
func (r *Registry) Clone() *Registry {
	c := NewRegistry()
	for k, p := range r.plots {
		c.plots[k] = &Plot{PlantedAt: p.PlantedAt, Stage: p.Stage}
	}
	return c
}

// Equal reports whether both registries hold the same plots.
func (r *Registry) Equal(o *Registry) bool {
	if r.Len() != o.Len() {
		return false
	}
	for k, p := range r.plots {
		q, ok := o.plots[k]
		if !ok || *p != *q {
			return false
		}
	}
	return true
}
