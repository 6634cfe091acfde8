package ontology

// Role tags name the structural position of a record sub-object, e.g.
// "condition/temperature" or "compound-identifier/SMILES". The part
// before the slash is the structural category used for fallback
// resolution when the specific role has no class in the loaded model.
type Role string

// Structural roles without a fallback category. These correspond to
// structurally significant sub-objects whose classes the ontology is
// expected to declare directly.
const (
	RoleReaction       Role = "reaction"
	RoleInput          Role = "input"
	RoleComponent      Role = "component"
	RoleProduct        Role = "product"
	RoleMixture        Role = "mixture"
	RoleEnvironment    Role = "environment"
	RoleCrudeProduct   Role = "crude-product"
	RoleSetup          Role = "setup"
	RoleMeasurement    Role = "measurement"
	RoleAnalysis       Role = "analysis"
	RoleProvenance     Role = "provenance"
	RoleReactionTime   Role = "reaction-time"
	RoleTemporalRegion Role = "temporal-region"

	// RoleQuantity is a generic scalar quantity with unit; it resolves
	// through the "amount" category fallback.
	RoleQuantity Role = "amount/scalar"
)

// IdentifierRole tags a reaction-level identifier of the given schema type.
func IdentifierRole(identifierType string) Role {
	return Role("identifier/" + identifierType)
}

// CompoundIdentifierRole tags a compound identifier of the given type.
func CompoundIdentifierRole(identifierType string) Role {
	return Role("compound-identifier/" + identifierType)
}

// ConditionRole tags one kind of reaction condition.
func ConditionRole(kind string) Role {
	return Role("condition/" + kind)
}

// ComponentRole tags the reaction role borne by a component.
func ComponentRole(reactionRole string) Role {
	return Role("role/" + reactionRole)
}

// WorkupRole tags a workup step of the given schema type.
func WorkupRole(workupType string) Role {
	return Role("workup/" + workupType)
}

// AmountRole tags a scalar amount of the given kind (mass, moles, volume).
func AmountRole(kind string) Role {
	return Role("amount/" + kind)
}

// roleClassMap maps exact roles to ontology class local names.
var roleClassMap = map[Role]string{
	RoleReaction:       "ChemicalReaction",
	RoleInput:          "InputAddition",
	RoleComponent:      "Component",
	RoleProduct:        "Product",
	RoleMixture:        "ReactionMixture",
	RoleEnvironment:    "ReactionEnvironment",
	RoleCrudeProduct:   "CrudeProduct",
	RoleSetup:          "ReactionSetup",
	RoleMeasurement:    "AnalyticalResult",
	RoleAnalysis:       "AnalyticalTechnique",
	RoleProvenance:     "Provenance",
	RoleReactionTime:   "ReactionTime",
	RoleTemporalRegion: "BFO_0000202",

	// Reaction identifiers
	"identifier/REACTION_TYPE":     "ReactionType",
	"identifier/REACTION_SMILES":   "ReactionSMILES",
	"identifier/REACTION_CXSMILES": "ReactionCXSMILES",
	"identifier/RDFILE":            "ReactionDataFile",
	"identifier/RINCHI":            "RInChI",

	// Compound identifiers
	"compound-identifier/SMILES":              "SMILES",
	"compound-identifier/CXSMILES":            "CXSMILES",
	"compound-identifier/INCHI":               "InChI",
	"compound-identifier/INCHI_KEY":           "InChIKey",
	"compound-identifier/MOLBLOCK":            "MolBlock",
	"compound-identifier/IUPAC_NAME":          "IUPACName",
	"compound-identifier/NAME":                "CompoundName",
	"compound-identifier/CAS_NUMBER":          "CASNumber",
	"compound-identifier/PUBCHEM_CID":         "PubChemCompoundIdentifier",
	"compound-identifier/CHEMSPIDER_ID":       "ChemSpiderIdentifier",
	"compound-identifier/XYZ":                 "XYZ",
	"compound-identifier/UNIPROT_ID":          "UniProtIdentifier",
	"compound-identifier/PDB_ID":              "ProteinDataBankIdentifier",
	"compound-identifier/AMINO_ACID_SEQUENCE": "AminoAcidSequence",

	// Component reaction roles
	"role/REACTANT":           "ReactantArtifactFunction",
	"role/REAGENT":            "ReagentArtifactFunction",
	"role/SOLVENT":            "SolventArtifactFunction",
	"role/CATALYST":           "CatalystArtifactFunction",
	"role/WORKUP":             "WorkupArtifactFunction",
	"role/INTERNAL_STANDARD":  "InternalStandardArtifactFunction",
	"role/AUTHENTIC_STANDARD": "AuthenticStandardArtifactFunction",
	"role/PRODUCT":            "Product",
	"role/BYPRODUCT":          "Byproduct",
	"role/SIDE_PRODUCT":       "SideProduct",

	// Conditions
	"condition/temperature":      "ReactionTemperature",
	"condition/pressure":         "ReactionPressure",
	"condition/stirring":         "CHMO_0002774",
	"condition/illumination":     "Illumination",
	"condition/electrochemistry": "ElectrochemicalReaction",
	"condition/flow":             "ContinuousFlow",
	"condition/atmosphere":       "ReactionAtmosphere",

	// Amounts
	"amount/mass":   "Quantity",
	"amount/moles":  "Quantity",
	"amount/volume": "Quantity",
}

// categoryFallback maps structural categories to their generic class so
// that unknown sub-object kinds are typed rather than silently dropped.
var categoryFallback = map[string]string{
	"identifier":          "ReactionIdentifier",
	"compound-identifier": "CompoundIdentifier",
	"condition":           "ReactionCondition",
	"role":                "ArtifactFunction",
	"workup":              "ReactionWorkup",
	"amount":              "Quantity",
}
