package layout

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/termcanvas/geom"
)

// ErrUnsetLayout is returned when a cache slot is read before it was ever set
var ErrUnsetLayout = errors.New("layout slot read before set")

// Slot names one of the three independent cache entries
type Slot uint8

const (
	SlotMin    Slot = iota // minimum size layout
	SlotMax                // preferred/maximum (compute) layout
	SlotRender             // layout used for the last render
	slotCount
)

func (s Slot) String() string {
	switch s {
	case SlotMin:
		return "min"
	case SlotMax:
		return "max"
	case SlotRender:
		return "render"
	default:
		return fmt.Sprintf("slot(%d)", s)
	}
}

// Validator reports whether whatever a cached layout depends on is unchanged
type Validator func() bool

type slot[T any] struct {
	set      bool
	parent   geom.Size
	value    T
	validate Validator
}

// Cache memoizes up to three layout results per element, each keyed by parent size
// and guarded by its own validator. Not safe for concurrent mutation; stats are.
type Cache[T any] struct {
	slots [slotCount]slot[T]
	stats *Stats
}

// Option configures a Cache
type Option func(*cacheConfig)

type cacheConfig struct {
	stats      *Stats
	validators [slotCount]Validator
}

// WithStats counts hits and misses into s instead of DefaultStats
func WithStats(s *Stats) Option {
	return func(c *cacheConfig) {
		c.stats = s
	}
}

// WithValidator installs the validator for one slot
func WithValidator(s Slot, v Validator) Option {
	return func(c *cacheConfig) {
		if s < slotCount {
			c.validators[s] = v
		}
	}
}

// NewCache creates an empty cache; slots without a validator are valid whenever set for the parent
func NewCache[T any](opts ...Option) *Cache[T] {
	cfg := cacheConfig{stats: DefaultStats}
	for _, opt := range opts {
		opt(&cfg)
	}
	c := &Cache[T]{stats: cfg.stats}
	for i := range c.slots {
		c.slots[i].validate = cfg.validators[i]
	}
	return c
}

// SetValidator replaces the validator of one slot; nil means always valid
func (c *Cache[T]) SetValidator(s Slot, v Validator) {
	if s < slotCount {
		c.slots[s].validate = v
	}
}

// IsValid reports whether slot s holds a layout for parent whose validator still passes
// Every call counts as a hit or miss
func (c *Cache[T]) IsValid(s Slot, parent geom.Size) bool {
	ok := false
	if s < slotCount {
		sl := &c.slots[s]
		ok = sl.set && sl.parent == parent && (sl.validate == nil || sl.validate())
	}
	if c.stats != nil {
		if ok {
			c.stats.Hit()
		} else {
			c.stats.Miss()
		}
	}
	return ok
}

// Set stores value for parent in slot s, overwriting unconditionally
func (c *Cache[T]) Set(s Slot, parent geom.Size, value T) {
	if s >= slotCount {
		return
	}
	sl := &c.slots[s]
	sl.set = true
	sl.parent = parent
	sl.value = value
}

// Get returns the layout stored in slot s regardless of validity
func (c *Cache[T]) Get(s Slot) (T, error) {
	if s >= slotCount || !c.slots[s].set {
		var zero T
		return zero, fmt.Errorf("layout: get %s: %w", s, ErrUnsetLayout)
	}
	return c.slots[s].value, nil
}

// Parent returns the parent size slot s was last set for
func (c *Cache[T]) Parent(s Slot) (geom.Size, bool) {
	if s >= slotCount || !c.slots[s].set {
		return geom.Size{}, false
	}
	return c.slots[s].parent, true
}

// Lookup returns the cached layout when valid for parent, otherwise computes, stores and returns it
func (c *Cache[T]) Lookup(s Slot, parent geom.Size, compute func(geom.Size) (T, error)) (T, error) {
	if c.IsValid(s, parent) {
		return c.slots[s].value, nil
	}
	v, err := compute(parent)
	if err != nil {
		var zero T
		return zero, err
	}
	c.Set(s, parent, v)
	return v, nil
}

// ElementLayout is the computed box of one element
type ElementLayout struct {
	Size    geom.Size
	Content geom.Rect
	Border  *geom.Rect
}

// ChildrenLayout holds the rectangles assigned to an element's children, in child order
type ChildrenLayout []geom.Rect

// ElementCache and ChildrenCache are the two cache shapes a layout engine keeps per element
type (
	ElementCache  = Cache[ElementLayout]
	ChildrenCache = Cache[ChildrenLayout]
)
