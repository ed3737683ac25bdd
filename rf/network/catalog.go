package network

import (
	"errors"
	"fmt"
)

// Catalog construction errors.
var (
	ErrNilComponentNetwork = errors.New("network: component has no S-parameter data")
	ErrUnknownClass        = errors.New("network: unknown component class")
)

// ComponentClass partitions catalog candidates by reactive behavior.
type ComponentClass int

// Supported component classes.
const (
	CapacitorLike ComponentClass = iota
	InductorLike
)

// String returns the class name.
func (c ComponentClass) String() string {
	switch c {
	case CapacitorLike:
		return "capacitor"
	case InductorLike:
		return "inductor"
	default:
		return fmt.Sprintf("ComponentClass(%d)", int(c))
	}
}

// Component is one catalog candidate: a measured network tagged with its
// reactive class. Each component carries its own frequency axis, which is
// not required to match the device's (it is resampled on demand during
// cascading).
type Component struct {
	// Name identifies the component (typically a part number).
	Name string

	// Class is the reactive classification used by topology enumeration.
	Class ComponentClass

	// Network holds the component's measured S-parameters.
	Network *TwoPortNetwork
}

// Catalog is a read-only collection of candidate matching components.
type Catalog struct {
	components []Component
}

// NewCatalog validates and copies the component list. An empty catalog is
// legal; searches over it report no feasible solution.
func NewCatalog(components []Component) (*Catalog, error) {
	for i, c := range components {
		if c.Network == nil {
			return nil, fmt.Errorf("%w: component %d (%q)", ErrNilComponentNetwork, i, c.Name)
		}
		if c.Class != CapacitorLike && c.Class != InductorLike {
			return nil, fmt.Errorf("%w: component %d (%q) has class %d",
				ErrUnknownClass, i, c.Name, int(c.Class))
		}
	}
	return &Catalog{components: append([]Component(nil), components...)}, nil
}

// Len returns the total component count.
func (c *Catalog) Len() int { return len(c.components) }

// Components returns all components in insertion order. Read-only.
func (c *Catalog) Components() []Component { return c.components }

// Capacitors returns the capacitor-like components in insertion order.
func (c *Catalog) Capacitors() []Component { return c.byClass(CapacitorLike) }

// Inductors returns the inductor-like components in insertion order.
func (c *Catalog) Inductors() []Component { return c.byClass(InductorLike) }

func (c *Catalog) byClass(class ComponentClass) []Component {
	var out []Component
	for _, comp := range c.components {
		if comp.Class == class {
			out = append(out, comp)
		}
	}
	return out
}

// FilterCoverage splits the catalog into components whose frequency axis
// spans [lo, hi] entirely and those that do not.
//
// Callers should filter against the device range before searching: the
// search layer does not reject under-covering candidates itself, and
// resampling such a candidate extrapolates beyond its measured data.
func (c *Catalog) FilterCoverage(lo, hi float64) (covered, rejected *Catalog) {
	var in, out []Component
	for _, comp := range c.components {
		if comp.Network.Covers(lo, hi) {
			in = append(in, comp)
		} else {
			out = append(out, comp)
		}
	}
	return &Catalog{components: in}, &Catalog{components: out}
}
