package export

import (
	"sort"

	"github.com/c360studio/semlink/graph"
	"github.com/c360studio/semlink/vocabulary"
)

// Serializer re-emits a store's contents as triple-style records.
type Serializer struct {
	store *graph.Store
}

// NewSerializer creates a serializer over the given store.
func NewSerializer(store *graph.Store) *Serializer {
	return &Serializer{store: store}
}

// Records returns all facts of one namespace as records, or of the whole
// store when namespace is empty. Per entity: one rdf:type record, one
// record per literal attribute, one skos label record per concept label;
// plus one record per relation.
func (s *Serializer) Records(namespace string) []Record {
	var out []Record

	for _, ent := range s.store.Entities() {
		if namespace != "" && ent.Namespace != namespace {
			continue
		}

		out = append(out, Record{
			Subject:   ent.ID,
			Predicate: vocabulary.RDFType,
			Object:    ent.Class,
		})

		for _, key := range sortedKeys(ent.Attrs) {
			out = append(out, Record{
				Subject:   ent.ID,
				Predicate: key,
				Object:    ent.Attrs[key],
				IsLiteral: true,
			})
		}

		for _, lbl := range s.store.LabelsOf(ent.ID) {
			pred := vocabulary.SKOSAltLabel
			if lbl.Preferred {
				pred = vocabulary.SKOSPrefLabel
			}
			out = append(out, Record{
				Subject:   ent.ID,
				Predicate: pred,
				Object:    lbl.Text,
				IsLiteral: true,
				Language:  lbl.Language,
			})
		}
	}

	for _, rel := range s.store.Relations() {
		if namespace != "" && rel.Namespace != namespace {
			continue
		}
		out = append(out, Record{
			Subject:   rel.Source,
			Predicate: rel.Property,
			Object:    rel.Target,
		})
	}

	return out
}

func sortedKeys(m map[string]string) []string {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
