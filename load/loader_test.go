package load

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/semlink/export"
	"github.com/c360studio/semlink/graph"
	"github.com/c360studio/semlink/schema"
	"github.com/c360studio/semlink/vocabulary"
)

const (
	ns      = "https://example.org/"
	clsOrg  = ns + "Organization"
	clsCanv = ns + "Canvas"
	propHas = ns + "hasCanvas"
	propNm  = ns + "name"
)

func newTestLoader(t *testing.T) (*Loader, *graph.Store) {
	t.Helper()
	reg := schema.NewRegistry()
	require.NoError(t, reg.DefineClass(clsOrg, schema.LevelFoundation,
		schema.WithCapabilities(schema.CapabilityConcept)))
	require.NoError(t, reg.DefineClass(clsCanv, schema.LevelCanvas))
	require.NoError(t, reg.DefineProperty(propHas, clsOrg, clsCanv, schema.AsBridge()))
	store := graph.NewStore(reg)
	return NewLoader(store), store
}

func TestLoadRecordsOrderIndependent(t *testing.T) {
	loader, store := newTestLoader(t)

	// Relations and labels come before the type declarations they depend on.
	records := []export.Record{
		{Subject: "acme", Predicate: propHas, Object: "canvas1"},
		{Subject: "acme", Predicate: vocabulary.SKOSPrefLabel, Object: "Acme", IsLiteral: true, Language: "en"},
		{Subject: "acme", Predicate: propNm, Object: "Acme Corp", IsLiteral: true},
		{Subject: "acme", Predicate: vocabulary.RDFType, Object: clsOrg},
		{Subject: "canvas1", Predicate: vocabulary.RDFType, Object: clsCanv},
	}

	result, err := loader.LoadRecords(context.Background(), "main", records, false)
	require.NoError(t, err)
	assert.Empty(t, result.Rejects)
	assert.Equal(t, 2, result.Entities)
	assert.Equal(t, 1, result.Relations)
	assert.Equal(t, 1, result.Labels)
	assert.NotEmpty(t, result.BatchID)

	ent, err := store.GetEntity("acme")
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", ent.Attrs[propNm])
	assert.Len(t, store.RelationsFrom("acme", propHas), 1)
}

func TestLoadRecordsRejectKinds(t *testing.T) {
	loader, _ := newTestLoader(t)

	records := []export.Record{
		{Subject: "acme", Predicate: vocabulary.RDFType, Object: clsOrg},
		{Subject: "canvas1", Predicate: vocabulary.RDFType, Object: clsCanv},
		// Literal rdf:type object.
		{Subject: "bad1", Predicate: vocabulary.RDFType, Object: "Organization", IsLiteral: true},
		// Unregistered class.
		{Subject: "bad2", Predicate: vocabulary.RDFType, Object: ns + "Missing"},
		// Range mismatch: target is an Organization, range wants Canvas.
		{Subject: "acme", Predicate: propHas, Object: "acme"},
		// Label on an entity that does not exist.
		{Subject: "ghost", Predicate: vocabulary.SKOSPrefLabel, Object: "Ghost", IsLiteral: true, Language: "en"},
		// Attribute on an entity that does not exist.
		{Subject: "ghost", Predicate: propNm, Object: "Ghost", IsLiteral: true},
	}

	result, err := loader.LoadRecords(context.Background(), "main", records, false)
	require.NoError(t, err, "per-record rejects must not fail a lenient load")

	kinds := make(map[string]int)
	for _, rej := range result.Rejects {
		kinds[rej.Kind]++
	}
	assert.Equal(t, 2, kinds["unknown_class"])
	assert.Equal(t, 1, kinds["range_mismatch"])
	assert.Equal(t, 2, kinds["unknown_entity"])
	assert.Equal(t, 2, result.Entities)
}

func TestLoadRecordsAtomicRollback(t *testing.T) {
	loader, store := newTestLoader(t)

	records := []export.Record{
		{Subject: "acme", Predicate: vocabulary.RDFType, Object: clsOrg},
		{Subject: "bad", Predicate: vocabulary.RDFType, Object: ns + "Missing"},
	}

	result, err := loader.LoadRecords(context.Background(), "main", records, true)
	require.ErrorIs(t, err, ErrAtomicLoad)
	require.NotNil(t, result)
	assert.Len(t, result.Rejects, 1)

	// The whole namespace rolled back.
	assert.False(t, store.HasEntity("acme"))
	assert.Empty(t, store.Namespaces())
}

func TestLoadRecordsAtomicSucceedsWhenClean(t *testing.T) {
	loader, store := newTestLoader(t)

	records := []export.Record{
		{Subject: "acme", Predicate: vocabulary.RDFType, Object: clsOrg},
	}
	_, err := loader.LoadRecords(context.Background(), "main", records, true)
	require.NoError(t, err)
	assert.True(t, store.HasEntity("acme"))
}

func TestPurge(t *testing.T) {
	loader, store := newTestLoader(t)

	records := []export.Record{
		{Subject: "acme", Predicate: vocabulary.RDFType, Object: clsOrg},
	}
	_, err := loader.LoadRecords(context.Background(), "main", records, false)
	require.NoError(t, err)

	removed, err := loader.Purge(context.Background(), "main")
	require.NoError(t, err)
	assert.Equal(t, 1, removed.Entities)
	assert.False(t, store.HasEntity("acme"))

	_, err = loader.Purge(context.Background(), "main")
	assert.True(t, errors.Is(err, graph.ErrUnknownNamespace))
}

func TestNamespaceForFile(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"ontology/enterprise.nt", "enterprise"},
		{"/abs/path/canvas.v2.nt", "canvas.v2"},
		{"plain", "plain"},
	}
	for _, tt := range tests {
		if got := NamespaceForFile(tt.path); got != tt.want {
			t.Errorf("NamespaceForFile(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
