package network

import (
	"errors"
	"testing"
)

func testComponent(t *testing.T, name string, class ComponentClass, lo, hi float64) Component {
	t.Helper()
	freq := []float64{lo, (lo + hi) / 2, hi}
	trace := constTrace(0.1, 3)
	net, err := NewTwoPort(freq, trace, trace, trace, trace, 50)
	if err != nil {
		t.Fatal(err)
	}
	return Component{Name: name, Class: class, Network: net}
}

func TestNewCatalogValidation(t *testing.T) {
	good := testComponent(t, "C1", CapacitorLike, 1e9, 3e9)

	tests := []struct {
		name       string
		components []Component
		wantErr    error
	}{
		{"empty", nil, nil},
		{"valid", []Component{good}, nil},
		{"nil network", []Component{{Name: "bad", Class: CapacitorLike}}, ErrNilComponentNetwork},
		{"unknown class", []Component{{Name: "bad", Class: ComponentClass(9), Network: good.Network}}, ErrUnknownClass},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalog(tt.components)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewCatalog() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCatalogPartition(t *testing.T) {
	cat, err := NewCatalog([]Component{
		testComponent(t, "C1", CapacitorLike, 1e9, 3e9),
		testComponent(t, "L1", InductorLike, 1e9, 3e9),
		testComponent(t, "C2", CapacitorLike, 1e9, 3e9),
	})
	if err != nil {
		t.Fatal(err)
	}

	if cat.Len() != 3 {
		t.Errorf("Len() = %d, want 3", cat.Len())
	}

	caps := cat.Capacitors()
	if len(caps) != 2 || caps[0].Name != "C1" || caps[1].Name != "C2" {
		t.Errorf("Capacitors() = %v, want [C1 C2] in insertion order", caps)
	}

	inds := cat.Inductors()
	if len(inds) != 1 || inds[0].Name != "L1" {
		t.Errorf("Inductors() = %v, want [L1]", inds)
	}
}

func TestCatalogFilterCoverage(t *testing.T) {
	cat, err := NewCatalog([]Component{
		testComponent(t, "wide", CapacitorLike, 0.5e9, 4e9),
		testComponent(t, "narrow", InductorLike, 1.5e9, 2.5e9),
		testComponent(t, "exact", CapacitorLike, 1e9, 3e9),
	})
	if err != nil {
		t.Fatal(err)
	}

	covered, rejected := cat.FilterCoverage(1e9, 3e9)

	if covered.Len() != 2 {
		t.Fatalf("covered.Len() = %d, want 2", covered.Len())
	}
	if got := covered.Components()[0].Name; got != "wide" {
		t.Errorf("covered[0] = %s, want wide", got)
	}
	if got := covered.Components()[1].Name; got != "exact" {
		t.Errorf("covered[1] = %s, want exact", got)
	}
	if rejected.Len() != 1 || rejected.Components()[0].Name != "narrow" {
		t.Errorf("rejected = %v, want [narrow]", rejected.Components())
	}
}

func TestComponentClassString(t *testing.T) {
	if CapacitorLike.String() != "capacitor" {
		t.Errorf("CapacitorLike.String() = %q", CapacitorLike.String())
	}
	if InductorLike.String() != "inductor" {
		t.Errorf("InductorLike.String() = %q", InductorLike.String())
	}
}
