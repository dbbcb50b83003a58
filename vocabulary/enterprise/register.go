package enterprise

import (
	"fmt"

	"github.com/c360studio/semlink/schema"
)

// RegisterSchema loads the built-in enterprise vocabulary into a registry.
// Classes are registered parent-first so superclass references resolve.
func RegisterSchema(r *schema.Registry) error {
	classes := []struct {
		iri   string
		level schema.Level
		opts  []schema.ClassOption
	}{
		// Level 1: foundation ontology.
		{ClassConcept, schema.LevelFoundation, []schema.ClassOption{
			schema.WithLabel("Concept"),
			schema.WithCapabilities(schema.CapabilityConcept),
		}},
		{ClassOrganization, schema.LevelFoundation, []schema.ClassOption{
			schema.WithSuperclass(ClassConcept),
			schema.WithLabel("Organization"),
			schema.WithCapabilities(schema.CapabilityAgent),
		}},
		{ClassPerson, schema.LevelFoundation, []schema.ClassOption{
			schema.WithSuperclass(ClassConcept),
			schema.WithLabel("Person"),
			schema.WithCapabilities(schema.CapabilityAgent),
		}},
		{ClassAgreement, schema.LevelFoundation, []schema.ClassOption{
			schema.WithSuperclass(ClassConcept),
			schema.WithLabel("Agreement"),
		}},
		{ClassExecutiveTarget, schema.LevelFoundation, []schema.ClassOption{
			schema.WithSuperclass(ClassAgreement),
			schema.WithLabel("Executive Target"),
		}},
		{ClassCategory, schema.LevelFoundation, []schema.ClassOption{
			schema.WithSuperclass(ClassConcept),
			schema.WithLabel("Category"),
		}},

		// Level 2: business canvas.
		{ClassBusinessCanvas, schema.LevelCanvas, []schema.ClassOption{
			schema.WithLabel("Business Canvas"),
		}},
		{ClassCanvasElement, schema.LevelCanvas, []schema.ClassOption{
			schema.WithLabel("Canvas Element"),
		}},
		{ClassValueProposition, schema.LevelCanvas, []schema.ClassOption{
			schema.WithSuperclass(ClassCanvasElement),
			schema.WithLabel("Value Proposition"),
		}},
		{ClassCustomerSegment, schema.LevelCanvas, []schema.ClassOption{
			schema.WithSuperclass(ClassCanvasElement),
			schema.WithLabel("Customer Segment"),
		}},

		// Level 3: statement of work.
		{ClassStatementOfWork, schema.LevelStatementOfWork, []schema.ClassOption{
			schema.WithLabel("Statement of Work"),
		}},
		{ClassDeliverable, schema.LevelStatementOfWork, []schema.ClassOption{
			schema.WithLabel("Deliverable"),
			schema.WithCapabilities(schema.CapabilityDeliverable),
		}},
		{ClassMilestone, schema.LevelStatementOfWork, []schema.ClassOption{
			schema.WithLabel("Milestone"),
		}},

		// Level 4: data contract.
		{ClassDataContract, schema.LevelDataContract, []schema.ClassOption{
			schema.WithLabel("Data Contract"),
		}},
		{ClassDataTask, schema.LevelDataContract, []schema.ClassOption{
			schema.WithLabel("Data Task"),
		}},
		{ClassDataProduct, schema.LevelDataContract, []schema.ClassOption{
			schema.WithLabel("Data Product"),
			schema.WithCapabilities(schema.CapabilityDeliverable),
		}},
	}

	for _, c := range classes {
		if err := r.DefineClass(c.iri, c.level, c.opts...); err != nil {
			return fmt.Errorf("enterprise.RegisterSchema: %w", err)
		}
	}

	properties := []struct {
		iri, domain, rng string
		opts             []schema.PropertyOption
	}{
		// Bridges, in level order.
		{PropHasCanvas, ClassOrganization, ClassBusinessCanvas, []schema.PropertyOption{
			schema.AsBridge(), schema.WithPropertyLabel("has canvas"),
		}},
		{PropPursuedVia, ClassExecutiveTarget, ClassBusinessCanvas, []schema.PropertyOption{
			schema.AsBridge(), schema.WithPropertyLabel("pursued via"),
		}},
		{PropDefinesWork, ClassBusinessCanvas, ClassStatementOfWork, []schema.PropertyOption{
			schema.AsBridge(), schema.WithPropertyLabel("defines work"),
		}},
		{PropGovernsContract, ClassStatementOfWork, ClassDataContract, []schema.PropertyOption{
			schema.AsBridge(), schema.WithPropertyLabel("governs contract"),
		}},
		{PropTracesTo, ClassOrganization, ClassDataContract, []schema.PropertyOption{
			schema.AsBridge(), schema.WithPropertyLabel("traces to"),
		}},

		// Intra-level relationships.
		{PropMemberOf, ClassPerson, ClassOrganization, []schema.PropertyOption{
			schema.WithPropertyLabel("member of"),
		}},
		{PropPartyTo, ClassOrganization, ClassAgreement, []schema.PropertyOption{
			schema.WithPropertyLabel("party to"),
		}},
		{PropCategorizedAs, ClassConcept, ClassCategory, []schema.PropertyOption{
			schema.WithPropertyLabel("categorized as"),
		}},
		{PropOwnedBy, ClassBusinessCanvas, ClassOrganization, []schema.PropertyOption{
			schema.WithCardinality(schema.CardinalityOne), schema.WithPropertyLabel("owned by"),
		}},
		{PropHasElement, ClassBusinessCanvas, ClassCanvasElement, []schema.PropertyOption{
			schema.WithPropertyLabel("has element"),
		}},
		{PropAccountable, ClassStatementOfWork, ClassPerson, []schema.PropertyOption{
			schema.WithCardinality(schema.CardinalityOne), schema.WithPropertyLabel("accountable"),
		}},
		{PropHasDeliverable, ClassStatementOfWork, ClassDeliverable, []schema.PropertyOption{
			schema.WithPropertyLabel("has deliverable"),
		}},
		{PropHasTask, ClassDataContract, ClassDataTask, []schema.PropertyOption{
			schema.WithPropertyLabel("has task"),
		}},
		{PropProduces, ClassDataTask, ClassDataProduct, []schema.PropertyOption{
			schema.WithPropertyLabel("produces"),
		}},
	}

	for _, p := range properties {
		if err := r.DefineProperty(p.iri, p.domain, p.rng, p.opts...); err != nil {
			return fmt.Errorf("enterprise.RegisterSchema: %w", err)
		}
	}

	return nil
}
