package enterprise

import (
	"testing"

	"github.com/c360studio/semlink/schema"
)

func TestRegisterSchema(t *testing.T) {
	r := schema.NewRegistry()
	if err := RegisterSchema(r); err != nil {
		t.Fatalf("RegisterSchema: %v", err)
	}

	// Registering twice must fail, definitions are append-only.
	if err := RegisterSchema(r); err == nil {
		t.Error("second registration into the same registry must fail")
	}
}

func TestLevelAssignments(t *testing.T) {
	r := schema.NewRegistry()
	if err := RegisterSchema(r); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		class string
		level schema.Level
	}{
		{ClassOrganization, schema.LevelFoundation},
		{ClassBusinessCanvas, schema.LevelCanvas},
		{ClassStatementOfWork, schema.LevelStatementOfWork},
		{ClassDataContract, schema.LevelDataContract},
	}
	for _, tt := range tests {
		got, err := r.LevelOf(tt.class)
		if err != nil {
			t.Errorf("LevelOf(%s): %v", tt.class, err)
			continue
		}
		if got != tt.level {
			t.Errorf("LevelOf(%s) = %d, want %d", tt.class, got, tt.level)
		}
	}
}

func TestConceptCapabilityCoverage(t *testing.T) {
	r := schema.NewRegistry()
	if err := RegisterSchema(r); err != nil {
		t.Fatal(err)
	}

	// Every foundation concept subclass inherits label support.
	for _, class := range []string{ClassConcept, ClassOrganization, ClassPerson, ClassAgreement, ClassCategory, ClassExecutiveTarget} {
		if !r.HasCapability(class, schema.CapabilityConcept) {
			t.Errorf("%s should satisfy the concept capability", class)
		}
	}

	// Higher-level classes do not take labels.
	for _, class := range []string{ClassBusinessCanvas, ClassStatementOfWork, ClassDataContract} {
		if r.HasCapability(class, schema.CapabilityConcept) {
			t.Errorf("%s must not satisfy the concept capability", class)
		}
	}
}

func TestBridgePropertiesCrossLevelsUpward(t *testing.T) {
	r := schema.NewRegistry()
	if err := RegisterSchema(r); err != nil {
		t.Fatal(err)
	}

	bridges := r.BridgeProperties()
	if len(bridges) == 0 {
		t.Fatal("no bridge properties registered")
	}
	for _, p := range bridges {
		domainLevel, err := r.LevelOf(p.Domain)
		if err != nil {
			t.Fatal(err)
		}
		rangeLevel, err := r.LevelOf(p.Range)
		if err != nil {
			t.Fatal(err)
		}
		if domainLevel >= rangeLevel {
			t.Errorf("%s: domain level %d, range level %d, want strictly upward", p.IRI, domainLevel, rangeLevel)
		}
	}
}

func TestCardinalityOneProperties(t *testing.T) {
	r := schema.NewRegistry()
	if err := RegisterSchema(r); err != nil {
		t.Fatal(err)
	}

	for _, iri := range []string{PropOwnedBy, PropAccountable} {
		prop, err := r.ResolveProperty(iri)
		if err != nil {
			t.Fatal(err)
		}
		if prop.Cardinality != schema.CardinalityOne {
			t.Errorf("%s cardinality = %q, want one", iri, prop.Cardinality)
		}
	}
}
