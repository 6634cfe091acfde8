package mds

// Namespace is the base IRI prefix for MDS-Onto terms.
const Namespace = "https://cwrusdle.bitbucket.io/mds/"

// EntityNamespace is the base IRI for minted reaction entity instances.
const EntityNamespace = "https://cwrusdle.bitbucket.io/entity/"

// External namespace prefixes bound in every serialized document.
const (
	NamespaceOBO  = "http://purl.obolibrary.org/obo/"
	NamespaceCCO  = "https://www.commoncoreontologies.org/"
	NamespaceQUDT = "http://qudt.org/schema/qudt/"
	NamespaceUnit = "http://qudt.org/vocab/unit/"
	NamespaceAFE  = "http://purl.allotrope.org/ontologies/equipment#"
	NamespaceAFR  = "http://purl.allotrope.org/ontologies/result#"
	NamespaceAFM  = "http://purl.allotrope.org/ontologies/material#"
	NamespaceNCIT = "http://ncicb.nci.nih.gov/xml/owl/EVS/Thesaurus.owl#"
	NamespaceRDF  = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	NamespaceRDFS = "http://www.w3.org/2000/01/rdf-schema#"
	NamespaceOWL  = "http://www.w3.org/2002/07/owl#"
	NamespaceXSD  = "http://www.w3.org/2001/XMLSchema#"
	NamespaceSKOS = "http://www.w3.org/2004/02/skos/core#"
	NamespacePROV = "http://www.w3.org/ns/prov#"
)

// RDFType is the rdf:type predicate IRI.
const RDFType = NamespaceRDF + "type"

// Class IRIs for reaction entities. Process-level classes first, then
// material entities, then information and quality entities.
const (
	// ClassChemicalReaction is the root process instance of every graph.
	ClassChemicalReaction = Namespace + "ChemicalReaction"

	// ClassInputAddition is the process of adding one keyed input.
	ClassInputAddition = Namespace + "InputAddition"

	// ClassReactionWorkup is a post-reaction processing step.
	ClassReactionWorkup = Namespace + "ReactionWorkup"

	// ClassStirringProcess is a stirring sub-process (CHMO aligned).
	ClassStirringProcess = NamespaceOBO + "CHMO_0002774"

	// ClassIllumination is a photochemical illumination sub-process.
	ClassIllumination = Namespace + "Illumination"

	// ClassElectrochemicalReaction is an electrochemistry sub-process.
	ClassElectrochemicalReaction = Namespace + "ElectrochemicalReaction"

	// ClassContinuousFlow is a continuous-flow sub-process.
	ClassContinuousFlow = Namespace + "ContinuousFlow"

	// ClassReactionSetup is the pre-reaction setup process.
	ClassReactionSetup = Namespace + "ReactionSetup"

	// ClassReactionMixture is the combined material input of a reaction.
	ClassReactionMixture = Namespace + "ReactionMixture"

	// ClassReactionEnvironment bears environmental conditions.
	ClassReactionEnvironment = Namespace + "ReactionEnvironment"

	// ClassCrudeProduct is the unpurified reaction output.
	ClassCrudeProduct = Namespace + "CrudeProduct"

	// ClassComponent is a single chemical species in an input.
	ClassComponent = Namespace + "Component"

	// ClassProduct is an identified outcome species.
	ClassProduct = Namespace + "Product"

	// ClassReactionAtmosphere is the gas environment of the reaction.
	ClassReactionAtmosphere = Namespace + "ReactionAtmosphere"

	// ClassCompoundIdentifier is the generic chemical identifier class;
	// specific identifier kinds are subclasses.
	ClassCompoundIdentifier = Namespace + "CompoundIdentifier"

	// ClassReactionIdentifier is the generic reaction identifier class.
	ClassReactionIdentifier = Namespace + "ReactionIdentifier"

	// ClassReactionCondition is the generic fallback condition class.
	ClassReactionCondition = Namespace + "ReactionCondition"

	// ClassReactionTemperature is the temperature condition quality.
	ClassReactionTemperature = Namespace + "ReactionTemperature"

	// ClassReactionPressure is the pressure condition quality.
	ClassReactionPressure = Namespace + "ReactionPressure"

	// ClassReactionTime is the temporal extent of the reaction.
	ClassReactionTime = Namespace + "ReactionTime"

	// ClassAnalyticalResult is a measurement result.
	ClassAnalyticalResult = Namespace + "AnalyticalResult"

	// ClassAnalyticalTechnique is an analysis method applied to outcomes.
	ClassAnalyticalTechnique = Namespace + "AnalyticalTechnique"

	// ClassQuantity is a scalar quantity with unit (CCO aligned).
	ClassQuantity = NamespaceCCO + "ont00000768"

	// ClassArtifactFunction is the generic role class for components.
	ClassArtifactFunction = Namespace + "ArtifactFunction"

	// ClassProvenance records the origin of a reaction record.
	ClassProvenance = Namespace + "Provenance"

	// ClassTemporalRegion is a BFO temporal region (durations, times).
	ClassTemporalRegion = NamespaceOBO + "BFO_0000202"
)

// Property IRIs asserted between instances or from instances to literals.
const (
	// Object properties.
	PropDesignates       = Namespace + "designates"
	PropIsInputOf        = Namespace + "isInputOf"
	PropHasOutput        = Namespace + "hasOutput"
	PropHasProcessPart   = Namespace + "hasProcessPart"
	PropHasOccurrentPart = Namespace + "hasOccurrentPart"
	PropMemberPartOf     = Namespace + "memberPartOf"
	PropInheresIn        = Namespace + "inheresIn"
	PropBearerOf         = Namespace + "bearerOf"
	PropEnvirons         = Namespace + "environs"
	PropIsAbout          = Namespace + "isAbout"
	PropIsMadeOf         = Namespace + "isMadeOf"
	PropPrecedes         = Namespace + "precedes"
	PropParticipatesIn   = Namespace + "participatesIn"
	PropOccupiesTemporal = Namespace + "occupiesTemporalRegion"
	PropUsesUnit         = NamespaceQUDT + "hasUnit"
	PropHasInput         = Namespace + "hasInput"
	PropHasCondition     = Namespace + "hasCondition"
	PropHasWorkup        = Namespace + "hasWorkup"
	PropHasOutcome       = Namespace + "hasOutcome"
	PropHasProvenance    = Namespace + "hasProvenance"

	// Datatype properties.
	PropHasTextValue     = Namespace + "hasTextValue"
	PropHasDecimalValue  = Namespace + "hasDecimalValue"
	PropHasIntegerValue  = Namespace + "hasIntegerValue"
	PropHasBooleanValue  = Namespace + "hasBooleanValue"
	PropDetails          = Namespace + "details"
	PropIsMapped         = Namespace + "isMapped"
	PropIsLimiting       = Namespace + "isLimiting"
	PropIsDesiredProduct = Namespace + "isDesiredProduct"
	PropIsolatedColor    = Namespace + "isolatedColor"
	PropAdditionOrder    = Namespace + "additionOrder"
	PropKeepPhase        = Namespace + "keepPhase"
	PropIsAutomated      = Namespace + "isAutomated"
	PropCanonicalKey     = Namespace + "canonicalKey"

	// Note datatype properties asserted on the reaction root.
	PropIsHeterogeneous  = Namespace + "isHeterogeneous"
	PropFormsPrecipitate = Namespace + "formsPrecipitate"
	PropIsExothermic     = Namespace + "isExothermic"
	PropOffgasses        = Namespace + "offgasses"
	PropSafetyNotes      = Namespace + "safetyNotes"
	PropProcedureDetails = Namespace + "procedureDetails"

	// Provenance datatype properties.
	PropDOI            = Namespace + "doi"
	PropPatent         = Namespace + "patent"
	PropPublicationURL = Namespace + "publicationURL"
	PropRecordCreated  = Namespace + "recordCreated"
)
