package schema

import (
	"errors"
	"testing"
)

const (
	ns        = "https://example.org/"
	clsRoot   = ns + "Root"
	clsMid    = ns + "Mid"
	clsLeaf   = ns + "Leaf"
	clsCanvas = ns + "Canvas"
	clsWork   = ns + "Work"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	r := NewRegistry()
	if err := r.DefineClass(clsRoot, LevelFoundation, WithCapabilities(CapabilityConcept)); err != nil {
		t.Fatalf("DefineClass(%s): %v", clsRoot, err)
	}
	if err := r.DefineClass(clsMid, LevelFoundation, WithSuperclass(clsRoot)); err != nil {
		t.Fatalf("DefineClass(%s): %v", clsMid, err)
	}
	if err := r.DefineClass(clsLeaf, LevelFoundation, WithSuperclass(clsMid)); err != nil {
		t.Fatalf("DefineClass(%s): %v", clsLeaf, err)
	}
	if err := r.DefineClass(clsCanvas, LevelCanvas); err != nil {
		t.Fatalf("DefineClass(%s): %v", clsCanvas, err)
	}
	if err := r.DefineClass(clsWork, LevelStatementOfWork); err != nil {
		t.Fatalf("DefineClass(%s): %v", clsWork, err)
	}
	return r
}

func TestDefineClassRejectsInvalidLevel(t *testing.T) {
	r := NewRegistry()
	if err := r.DefineClass(clsRoot, Level(0)); !errors.Is(err, ErrInvalidLevel) {
		t.Errorf("DefineClass(level 0) = %v, want ErrInvalidLevel", err)
	}
	if err := r.DefineClass(clsRoot, Level(5)); !errors.Is(err, ErrInvalidLevel) {
		t.Errorf("DefineClass(level 5) = %v, want ErrInvalidLevel", err)
	}
}

func TestDefineClassRejectsDuplicate(t *testing.T) {
	r := newTestRegistry(t)
	err := r.DefineClass(clsRoot, LevelFoundation)
	if !errors.Is(err, ErrAlreadyDefined) {
		t.Errorf("redefine = %v, want ErrAlreadyDefined", err)
	}
}

func TestDefineClassRejectsUnknownSuperclass(t *testing.T) {
	r := NewRegistry()
	err := r.DefineClass(clsLeaf, LevelFoundation, WithSuperclass(ns+"Missing"))
	if !errors.Is(err, ErrUnknownSuperclass) {
		t.Errorf("unknown superclass = %v, want ErrUnknownSuperclass", err)
	}
}

func TestDefineClassRejectsHigherLevelSuperclass(t *testing.T) {
	r := newTestRegistry(t)
	err := r.DefineClass(ns+"Under", LevelFoundation, WithSuperclass(clsCanvas))
	if !errors.Is(err, ErrLevelOrderViolation) {
		t.Errorf("level-1 class under level-2 parent = %v, want ErrLevelOrderViolation", err)
	}
}

func TestDefineClassAllowsSuperclassAtLowerLevel(t *testing.T) {
	r := newTestRegistry(t)
	if err := r.DefineClass(ns+"SpecialCanvas", LevelCanvas, WithSuperclass(clsRoot)); err != nil {
		t.Errorf("level-2 class under level-1 parent: %v", err)
	}
}

func TestIsSubclassOf(t *testing.T) {
	r := newTestRegistry(t)

	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"reflexive", clsRoot, clsRoot, true},
		{"direct", clsMid, clsRoot, true},
		{"transitive", clsLeaf, clsRoot, true},
		{"not inverse", clsRoot, clsLeaf, false},
		{"unrelated", clsCanvas, clsRoot, false},
		{"unknown class", ns + "Missing", clsRoot, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.IsSubclassOf(tt.a, tt.b); got != tt.want {
				t.Errorf("IsSubclassOf(%s, %s) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestHasCapabilityInherited(t *testing.T) {
	r := newTestRegistry(t)
	if !r.HasCapability(clsLeaf, CapabilityConcept) {
		t.Error("leaf should inherit concept capability from root")
	}
	if r.HasCapability(clsCanvas, CapabilityConcept) {
		t.Error("canvas has no concept capability")
	}
}

func TestDefinePropertyValidatesDomainAndRange(t *testing.T) {
	r := newTestRegistry(t)

	if err := r.DefineProperty(ns+"p1", ns+"Missing", clsRoot); !errors.Is(err, ErrUnknownClass) {
		t.Errorf("unknown domain = %v, want ErrUnknownClass", err)
	}
	if err := r.DefineProperty(ns+"p2", clsRoot, ns+"Missing"); !errors.Is(err, ErrUnknownClass) {
		t.Errorf("unknown range = %v, want ErrUnknownClass", err)
	}
}

func TestDefinePropertyBridgeLevels(t *testing.T) {
	r := newTestRegistry(t)

	// Bridge must go strictly lower to higher level.
	if err := r.DefineProperty(ns+"up", clsRoot, clsCanvas, AsBridge()); err != nil {
		t.Fatalf("valid bridge: %v", err)
	}
	if err := r.DefineProperty(ns+"flat", clsRoot, clsMid, AsBridge()); !errors.Is(err, ErrBridgeLevelViolation) {
		t.Errorf("same-level bridge = %v, want ErrBridgeLevelViolation", err)
	}
	if err := r.DefineProperty(ns+"down", clsCanvas, clsRoot, AsBridge()); !errors.Is(err, ErrBridgeLevelViolation) {
		t.Errorf("downward bridge = %v, want ErrBridgeLevelViolation", err)
	}

	// Level-skipping bridges are allowed.
	if err := r.DefineProperty(ns+"skip", clsRoot, clsWork, AsBridge()); err != nil {
		t.Errorf("level-skipping bridge: %v", err)
	}
}

func TestDefinePropertyDefaultsToMany(t *testing.T) {
	r := newTestRegistry(t)
	if err := r.DefineProperty(ns+"p", clsRoot, clsMid); err != nil {
		t.Fatal(err)
	}
	prop, err := r.ResolveProperty(ns + "p")
	if err != nil {
		t.Fatal(err)
	}
	if prop.Cardinality != CardinalityMany {
		t.Errorf("Cardinality = %q, want %q", prop.Cardinality, CardinalityMany)
	}
}

func TestResolveReturnsCopies(t *testing.T) {
	r := newTestRegistry(t)

	def, err := r.ResolveClass(clsRoot)
	if err != nil {
		t.Fatal(err)
	}
	def.Label = "mutated"

	again, err := r.ResolveClass(clsRoot)
	if err != nil {
		t.Fatal(err)
	}
	if again.Label == "mutated" {
		t.Error("ResolveClass returned a shared definition, want a copy")
	}
}

func TestBridgePropertiesSortedByIRI(t *testing.T) {
	r := newTestRegistry(t)
	if err := r.DefineProperty(ns+"zeta", clsRoot, clsWork, AsBridge()); err != nil {
		t.Fatal(err)
	}
	if err := r.DefineProperty(ns+"alpha", clsRoot, clsCanvas, AsBridge()); err != nil {
		t.Fatal(err)
	}
	if err := r.DefineProperty(ns+"plain", clsRoot, clsMid); err != nil {
		t.Fatal(err)
	}

	bridges := r.BridgeProperties()
	if len(bridges) != 2 {
		t.Fatalf("len(BridgeProperties()) = %d, want 2", len(bridges))
	}
	if bridges[0].IRI != ns+"alpha" || bridges[1].IRI != ns+"zeta" {
		t.Errorf("bridge order = [%s, %s], want lexical IRI order", bridges[0].IRI, bridges[1].IRI)
	}
}

func TestLevelOfUnknownClass(t *testing.T) {
	r := newTestRegistry(t)
	if _, err := r.LevelOf(ns + "Missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("LevelOf(unknown) = %v, want ErrNotFound", err)
	}
}
