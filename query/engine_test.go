package query

import (
	"testing"

	"github.com/c360studio/semlink/graph"
	"github.com/c360studio/semlink/schema"
)

const (
	ns        = "https://example.org/"
	clsOrg    = ns + "Organization"
	clsCanv   = ns + "Canvas"
	clsWork   = ns + "Work"
	clsData   = ns + "Contract"
	propCanv  = ns + "hasCanvas"
	propWork  = ns + "definesWork"
	propData  = ns + "governsContract"
	propShort = ns + "tracesTo"
)

func newTestStore(t *testing.T) *graph.Store {
	t.Helper()
	reg := schema.NewRegistry()
	defs := []error{
		reg.DefineClass(clsOrg, schema.LevelFoundation),
		reg.DefineClass(clsCanv, schema.LevelCanvas),
		reg.DefineClass(clsWork, schema.LevelStatementOfWork),
		reg.DefineClass(clsData, schema.LevelDataContract),
		reg.DefineProperty(propCanv, clsOrg, clsCanv, schema.AsBridge()),
		reg.DefineProperty(propWork, clsCanv, clsWork, schema.AsBridge()),
		reg.DefineProperty(propData, clsWork, clsData, schema.AsBridge()),
		reg.DefineProperty(propShort, clsOrg, clsData, schema.AsBridge()),
	}
	for _, err := range defs {
		if err != nil {
			t.Fatal(err)
		}
	}
	return graph.NewStore(reg)
}

// fourLevelGraph wires acme -> canvas1 -> work1 -> contract1, with the
// bridge relations loaded under the "links" namespace.
func fourLevelGraph(t *testing.T, store *graph.Store) {
	t.Helper()
	adds := []error{
		store.AddEntity("main", "acme", clsOrg, nil),
		store.AddEntity("main", "canvas1", clsCanv, nil),
		store.AddEntity("main", "work1", clsWork, nil),
		store.AddEntity("main", "contract1", clsData, nil),
		store.AddRelation("links", "acme", propCanv, "canvas1"),
		store.AddRelation("links", "canvas1", propWork, "work1"),
		store.AddRelation("links", "work1", propData, "contract1"),
	}
	for _, err := range adds {
		if err != nil {
			t.Fatal(err)
		}
	}
}

func TestTraceChainFourLevels(t *testing.T) {
	store := newTestStore(t)
	fourLevelGraph(t, store)
	engine := NewEngine(store)

	chains, err := engine.TraceChain(clsOrg, clsData)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"acme", "canvas1", "work1", "contract1"}
	if len(chains) != 1 {
		t.Fatalf("len(chains) = %d, want 1", len(chains))
	}
	assertChain(t, chains[0], want)
}

func TestTraceChainEmptyAfterBridgeRemoval(t *testing.T) {
	store := newTestStore(t)
	fourLevelGraph(t, store)
	engine := NewEngine(store)

	// Purging the namespace that holds the bridge relations disconnects the
	// levels; the entities survive but no chain exists anymore.
	if _, err := store.RemoveGraph("links"); err != nil {
		t.Fatal(err)
	}

	chains, err := engine.TraceChain(clsOrg, clsData)
	if err != nil {
		t.Fatal(err)
	}
	if len(chains) != 0 {
		t.Errorf("chains after bridge removal = %v, want none", chains)
	}
}

func TestTraceChainBackward(t *testing.T) {
	store := newTestStore(t)
	fourLevelGraph(t, store)
	engine := NewEngine(store)

	chains, err := engine.TraceChain(clsData, clsOrg)
	if err != nil {
		t.Fatal(err)
	}
	if len(chains) != 1 {
		t.Fatalf("len(chains) = %d, want 1", len(chains))
	}
	assertChain(t, chains[0], []string{"contract1", "work1", "canvas1", "acme"})
}

func TestTraceChainShortcutBridge(t *testing.T) {
	store := newTestStore(t)
	fourLevelGraph(t, store)
	if err := store.AddRelation("links2", "acme", propShort, "contract1"); err != nil {
		t.Fatal(err)
	}
	engine := NewEngine(store)

	chains, err := engine.TraceChain(clsOrg, clsData)
	if err != nil {
		t.Fatal(err)
	}
	if len(chains) != 2 {
		t.Fatalf("len(chains) = %d, want full chain plus shortcut", len(chains))
	}
	// hasCanvas sorts before tracesTo, so the full chain comes first.
	assertChain(t, chains[0], []string{"acme", "canvas1", "work1", "contract1"})
	assertChain(t, chains[1], []string{"acme", "contract1"})
}

func TestTraceChainIntermediateEnd(t *testing.T) {
	store := newTestStore(t)
	fourLevelGraph(t, store)
	engine := NewEngine(store)

	chains, err := engine.TraceChain(clsOrg, clsWork)
	if err != nil {
		t.Fatal(err)
	}
	if len(chains) != 1 {
		t.Fatalf("len(chains) = %d, want 1", len(chains))
	}
	assertChain(t, chains[0], []string{"acme", "canvas1", "work1"})
}

func TestTraceChainUnknownClass(t *testing.T) {
	store := newTestStore(t)
	engine := NewEngine(store)

	if _, err := engine.TraceChain(ns+"Missing", clsData); err == nil {
		t.Error("TraceChain with unknown start class must fail")
	}
	if _, err := engine.TraceChain(clsOrg, ns+"Missing"); err == nil {
		t.Error("TraceChain with unknown end class must fail")
	}
}

func TestValueChainFor(t *testing.T) {
	store := newTestStore(t)
	fourLevelGraph(t, store)
	engine := NewEngine(store)

	chains, err := engine.ValueChainFor("contract1")
	if err != nil {
		t.Fatal(err)
	}
	if len(chains) != 1 {
		t.Fatalf("len(chains) = %d, want 1", len(chains))
	}
	assertChain(t, chains[0], []string{"acme", "canvas1", "work1", "contract1"})
}

func TestValueChainForFoundationEntity(t *testing.T) {
	store := newTestStore(t)
	fourLevelGraph(t, store)
	engine := NewEngine(store)

	chains, err := engine.ValueChainFor("acme")
	if err != nil {
		t.Fatal(err)
	}
	if len(chains) != 1 || len(chains[0]) != 1 || chains[0][0] != "acme" {
		t.Errorf("chains = %v, want the entity alone", chains)
	}
}

func TestValueChainForUnanchored(t *testing.T) {
	store := newTestStore(t)
	if err := store.AddEntity("main", "lonely", clsWork, nil); err != nil {
		t.Fatal(err)
	}
	engine := NewEngine(store)

	chains, err := engine.ValueChainFor("lonely")
	if err != nil {
		t.Fatal(err)
	}
	// No incoming bridges: the entity is its own dead end.
	if len(chains) != 1 || len(chains[0]) != 1 || chains[0][0] != "lonely" {
		t.Errorf("chains = %v, want single-entity chain", chains)
	}
}

func assertChain(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("chain = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("chain = %v, want %v", got, want)
		}
	}
}
