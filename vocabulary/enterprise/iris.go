package enterprise

// Namespace is the base IRI prefix for all semlink ontology terms.
const Namespace = "https://semlink.dev/ontology/"

// EntityNamespace is the base IRI for semlink entity instances.
const EntityNamespace = "https://semlink.dev/entity/"

// Level 1 class IRIs: the enterprise foundation ontology.
const (
	// ClassConcept is the root of the foundation layer. Its instances
	// accept multilingual preferred labels.
	ClassConcept = Namespace + "Concept"

	// ClassOrganization represents a legal or operating organization.
	// Extends: ClassConcept
	ClassOrganization = Namespace + "Organization"

	// ClassPerson represents a human actor.
	// Extends: ClassConcept
	ClassPerson = Namespace + "Person"

	// ClassAgreement represents a contract or commitment between parties.
	// Extends: ClassConcept
	ClassAgreement = Namespace + "Agreement"

	// ClassExecutiveTarget represents a committed business objective.
	// Extends: ClassAgreement
	ClassExecutiveTarget = Namespace + "ExecutiveTarget"

	// ClassCategory represents a classification term.
	// Extends: ClassConcept
	ClassCategory = Namespace + "Category"
)

// Level 2 class IRIs: the business-canvas layer.
const (
	// ClassBusinessCanvas represents a business model canvas.
	ClassBusinessCanvas = Namespace + "BusinessCanvas"

	// ClassCanvasElement is the root for individual canvas blocks.
	ClassCanvasElement = Namespace + "CanvasElement"

	// ClassValueProposition represents a canvas value proposition block.
	// Extends: ClassCanvasElement
	ClassValueProposition = Namespace + "ValueProposition"

	// ClassCustomerSegment represents a canvas customer segment block.
	// Extends: ClassCanvasElement
	ClassCustomerSegment = Namespace + "CustomerSegment"
)

// Level 3 class IRIs: the statement-of-work layer.
const (
	// ClassStatementOfWork represents a statement of work.
	ClassStatementOfWork = Namespace + "StatementOfWork"

	// ClassDeliverable represents a work product committed in a statement
	// of work.
	ClassDeliverable = Namespace + "Deliverable"

	// ClassMilestone represents a dated checkpoint in a statement of work.
	ClassMilestone = Namespace + "Milestone"
)

// Level 4 class IRIs: the operational data-contract layer.
const (
	// ClassDataContract represents an operational data contract.
	ClassDataContract = Namespace + "DataContract"

	// ClassDataTask represents an operational task under a data contract.
	ClassDataTask = Namespace + "DataTask"

	// ClassDataProduct represents a dataset or artifact a task produces.
	ClassDataProduct = Namespace + "DataProduct"
)

// Bridge property IRIs. Each crosses from a lower to a higher level and is
// what the path query engine follows when tracing value chains.
const (
	// PropHasCanvas links an organization to its business canvases.
	// Domain: ClassOrganization, Range: ClassBusinessCanvas (1 -> 2)
	PropHasCanvas = Namespace + "hasCanvas"

	// PropPursuedVia links an executive target to the canvas pursuing it.
	// Domain: ClassExecutiveTarget, Range: ClassBusinessCanvas (1 -> 2)
	PropPursuedVia = Namespace + "pursuedVia"

	// PropDefinesWork links a canvas to the statements of work realizing it.
	// Domain: ClassBusinessCanvas, Range: ClassStatementOfWork (2 -> 3)
	PropDefinesWork = Namespace + "definesWork"

	// PropGovernsContract links a statement of work to the data contracts
	// operationalizing it.
	// Domain: ClassStatementOfWork, Range: ClassDataContract (3 -> 4)
	PropGovernsContract = Namespace + "governsContract"

	// PropTracesTo is the full value-chain shortcut from an organization
	// straight to a data contract.
	// Domain: ClassOrganization, Range: ClassDataContract (1 -> 4)
	PropTracesTo = Namespace + "tracesTo"
)

// Intra-level object property IRIs.
const (
	// PropMemberOf links a person to an organization.
	// Domain: ClassPerson, Range: ClassOrganization
	PropMemberOf = Namespace + "memberOf"

	// PropPartyTo links an organization to an agreement it is bound by.
	// Domain: ClassOrganization, Range: ClassAgreement
	PropPartyTo = Namespace + "partyTo"

	// PropCategorizedAs links any foundation concept to a category.
	// Domain: ClassConcept, Range: ClassCategory
	PropCategorizedAs = Namespace + "categorizedAs"

	// PropOwnedBy links a canvas to its single owning organization.
	// Domain: ClassBusinessCanvas, Range: ClassOrganization, Cardinality: one
	PropOwnedBy = Namespace + "ownedBy"

	// PropHasElement links a canvas to its blocks.
	// Domain: ClassBusinessCanvas, Range: ClassCanvasElement
	PropHasElement = Namespace + "hasElement"

	// PropAccountable links a statement of work to its single accountable
	// person.
	// Domain: ClassStatementOfWork, Range: ClassPerson, Cardinality: one
	PropAccountable = Namespace + "accountable"

	// PropHasDeliverable links a statement of work to its deliverables.
	// Domain: ClassStatementOfWork, Range: ClassDeliverable
	PropHasDeliverable = Namespace + "hasDeliverable"

	// PropHasTask links a data contract to its operational tasks.
	// Domain: ClassDataContract, Range: ClassDataTask
	PropHasTask = Namespace + "hasTask"

	// PropProduces links a task to the data products it generates.
	// Domain: ClassDataTask, Range: ClassDataProduct
	PropProduces = Namespace + "produces"
)
