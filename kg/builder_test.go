package kg_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwru-sdle/rxnkg/chem"
	"github.com/cwru-sdle/rxnkg/graph"
	"github.com/cwru-sdle/rxnkg/kg"
	"github.com/cwru-sdle/rxnkg/ontology"
	"github.com/cwru-sdle/rxnkg/record"
	"github.com/cwru-sdle/rxnkg/vocabulary/mds"
)

func cls(name string) ontology.Class {
	return ontology.Class{Name: name, IRI: mds.Namespace + name}
}

// fullModel declares every class the walk can resolve against.
func fullModel() *ontology.Model {
	return ontology.NewModel([]ontology.Class{
		cls("ChemicalReaction"),
		cls("InputAddition"),
		cls("Component"),
		cls("Product"),
		cls("ReactionTemperature"),
		cls("ReactionPressure"),
		cls("ReactionAtmosphere"),
		cls("ReactionCondition"),
		cls("ReactionWorkup"),
		cls("ReactionSetup"),
		cls("ReactionTime"),
		cls("SMILES"),
		cls("InChIKey"),
		cls("CompoundIdentifier"),
		cls("ReactionIdentifier"),
		cls("ReactionSMILES"),
		cls("Quantity"),
		cls("AnalyticalTechnique"),
		cls("AnalyticalResult"),
		cls("Provenance"),
		cls("ArtifactFunction"),
		cls("SolventArtifactFunction"),
		{Name: "BFO_0000202", IRI: mds.ClassTemporalRegion},
	}, nil)
}

// minimalModel declares only the classes of the smallest useful graph.
func minimalModel() *ontology.Model {
	return ontology.NewModel([]ontology.Class{
		cls("ChemicalReaction"),
		cls("Component"),
		cls("ReactionTemperature"),
	}, nil)
}

func newBuilder(m *ontology.Model) *kg.Builder {
	return kg.NewBuilder(m, chem.BasicNormalizer{})
}

func TestBuildMinimalReaction(t *testing.T) {
	b := newBuilder(minimalModel())

	rxn := &record.Reaction{
		ReactionID: "ord-5aa1ee7b",
		Inputs: map[string]record.Input{
			"solvent_1": {Components: []record.Compound{{}}},
		},
		Conditions: &record.Conditions{
			Temperature: &record.TemperatureConditions{
				Setpoint: &record.Quantity{Value: 25, Units: "CELSIUS"},
			},
		},
	}

	out := b.Build(context.Background(), "ord_dataset-89b08362", rxn)
	require.True(t, out.Succeeded(), "outcome error: %v", out.Err)
	require.NoError(t, out.Graph.Validate())

	// Exactly the root, the component, and the temperature condition.
	assert.Equal(t, 3, out.Graph.Len())

	root, ok := out.Graph.Instance(out.Graph.Root())
	require.True(t, ok)
	assert.Equal(t, "ChemicalReaction", root.Class.Name)

	var hasInput, hasCondition bool
	for _, p := range root.Props {
		switch p.Predicate {
		case mds.PropHasInput:
			hasInput = true
			inst, ok := out.Graph.Instance(p.Value.IRI)
			require.True(t, ok)
			assert.Equal(t, "Component", inst.Class.Name)
		case mds.PropHasCondition:
			hasCondition = true
			inst, ok := out.Graph.Instance(p.Value.IRI)
			require.True(t, ok)
			assert.Equal(t, "ReactionTemperature", inst.Class.Name)
		}
	}
	assert.True(t, hasInput, "root must reference the component")
	assert.True(t, hasCondition, "root must reference the temperature condition")
}

func TestBuildMissingReactionID(t *testing.T) {
	b := newBuilder(fullModel())

	out := b.Build(context.Background(), "ord_dataset-89b08362", &record.Reaction{})
	assert.False(t, out.Succeeded())
	assert.ErrorIs(t, out.Err, kg.ErrMissingRootIdentification)
	assert.Nil(t, out.Graph)
}

func TestBuildUnresolvableRootIsFatal(t *testing.T) {
	// Without a ChemicalReaction class nothing can be built.
	empty := ontology.NewModel([]ontology.Class{cls("Component")}, nil)
	b := newBuilder(empty)

	out := b.Build(context.Background(), "ds-1", &record.Reaction{ReactionID: "ord-1"})
	assert.False(t, out.Succeeded())
	assert.ErrorIs(t, out.Err, ontology.ErrUnresolvedRole)
}

func TestBuildCanonicalKey(t *testing.T) {
	b := newBuilder(fullModel())

	rxn := &record.Reaction{
		ReactionID: "ord-1",
		Inputs: map[string]record.Input{
			"m1": {Components: []record.Compound{{
				Identifiers: []record.CompoundIdentifier{
					{Type: "SMILES", Value: " CC O "},
				},
			}}},
		},
	}

	out := b.Build(context.Background(), "ds-1", rxn)
	require.True(t, out.Succeeded())
	assert.Empty(t, out.FieldErrors)

	var canonical string
	for _, inst := range out.Graph.Instances() {
		for _, p := range inst.Props {
			if p.Predicate == mds.PropCanonicalKey {
				canonical = p.Value.Literal.(string)
			}
		}
	}
	assert.Equal(t, "CCO", canonical, "whitespace must be stripped from the canonical key")
}

func TestBuildFieldErrorOnBadIdentifier(t *testing.T) {
	b := newBuilder(fullModel())

	rxn := &record.Reaction{
		ReactionID: "ord-1",
		Inputs: map[string]record.Input{
			"m1": {Components: []record.Compound{{
				Identifiers: []record.CompoundIdentifier{
					{Type: "INCHI_KEY", Value: "not-a-key"},
				},
			}}},
		},
	}

	out := b.Build(context.Background(), "ds-1", rxn)

	// A bad identifier is recovered, never fatal.
	require.True(t, out.Succeeded())
	require.Len(t, out.FieldErrors, 1)
	assert.ErrorIs(t, out.FieldErrors[0], chem.ErrUnnormalizable)
	assert.Contains(t, out.FieldErrors[0].Path, "identifier")

	// The identifier instance exists with its raw value but no canonical key.
	for _, inst := range out.Graph.Instances() {
		for _, p := range inst.Props {
			assert.NotEqual(t, mds.PropCanonicalKey, p.Predicate)
		}
	}
	require.NoError(t, out.Graph.Validate())
}

func TestBuildUnresolvedFieldIsRecovered(t *testing.T) {
	b := newBuilder(minimalModel())

	// The minimal model declares no workup or fallback workup class; the
	// workup is skipped with a field error and the rest still builds.
	rxn := &record.Reaction{
		ReactionID: "ord-1",
		Inputs: map[string]record.Input{
			"m1": {Components: []record.Compound{{}}},
		},
		Workups: []record.Workup{{Type: "FILTRATION"}},
	}

	out := b.Build(context.Background(), "ds-1", rxn)
	require.True(t, out.Succeeded())
	require.Len(t, out.FieldErrors, 1)
	assert.ErrorIs(t, out.FieldErrors[0], ontology.ErrUnresolvedRole)
	assert.Equal(t, 2, out.Graph.Len())
}

func TestBuildInputAdditionMetadata(t *testing.T) {
	b := newBuilder(fullModel())

	rxn := &record.Reaction{
		ReactionID: "ord-1",
		Inputs: map[string]record.Input{
			"m1": {
				Components:    []record.Compound{{}},
				AdditionOrder: 2,
			},
		},
	}

	out := b.Build(context.Background(), "ds-1", rxn)
	require.True(t, out.Succeeded())
	require.NoError(t, out.Graph.Validate())

	var addition *graph.Instance
	for _, inst := range out.Graph.Instances() {
		if inst.Class.Name == "InputAddition" {
			addition = inst
		}
	}
	require.NotNil(t, addition, "input with addition metadata must mint an addition instance")

	var order int
	for _, p := range addition.Props {
		if p.Predicate == mds.PropAdditionOrder {
			order = p.Value.Literal.(int)
		}
	}
	assert.Equal(t, 2, order)

	// The component feeds into the addition process.
	var isInputOf bool
	for _, inst := range out.Graph.Instances() {
		if inst.Class.Name != "Component" {
			continue
		}
		for _, p := range inst.Props {
			if p.Predicate == mds.PropIsInputOf && p.Value.IRI == addition.ID {
				isInputOf = true
			}
		}
	}
	assert.True(t, isInputOf)
}

func TestBuildNoAdditionInstanceWithoutMetadata(t *testing.T) {
	b := newBuilder(fullModel())

	rxn := &record.Reaction{
		ReactionID: "ord-1",
		Inputs: map[string]record.Input{
			"m1": {Components: []record.Compound{{}}},
		},
	}

	out := b.Build(context.Background(), "ds-1", rxn)
	require.True(t, out.Succeeded())
	for _, inst := range out.Graph.Instances() {
		assert.NotEqual(t, "InputAddition", inst.Class.Name,
			"bare component lists must not mint an addition process")
	}
}

func TestBuildProductsAndProvenance(t *testing.T) {
	b := newBuilder(fullModel())

	rxn := &record.Reaction{
		ReactionID: "ord-1",
		Outcomes: []record.Outcome{{
			ReactionTime: &record.Quantity{Value: 2, Units: "HOUR"},
			Products: []record.Product{{
				Identifiers: []record.CompoundIdentifier{
					{Type: "SMILES", Value: "CC=O"},
				},
				IsDesiredProduct: true,
				Measurements: []record.Measurement{{
					Type:       "YIELD",
					Percentage: &record.Quantity{Value: 87.5},
				}},
			}},
			Analyses: map[string]record.Analysis{
				"nmr_1": {Type: "NMR_1H"},
			},
		}},
		Provenance: &record.Provenance{
			DOI:           "10.1000/xyz",
			RecordCreated: "2021-02-09T20:00:00Z",
		},
	}

	out := b.Build(context.Background(), "ds-1", rxn)
	require.True(t, out.Succeeded(), "outcome error: %v", out.Err)
	require.NoError(t, out.Graph.Validate())
	assert.Empty(t, out.FieldErrors)

	root, _ := out.Graph.Instance(out.Graph.Root())
	predicates := map[string]bool{}
	for _, p := range root.Props {
		predicates[p.Predicate] = true
	}
	assert.True(t, predicates[mds.PropHasOutput], "root must reference the product")
	assert.True(t, predicates[mds.PropHasOutcome], "root must reference the analysis")
	assert.True(t, predicates[mds.PropHasProvenance], "root must reference provenance")
	assert.True(t, predicates[mds.PropOccupiesTemporal], "root must reference the reaction time")

	var haveYield bool
	for _, inst := range out.Graph.Instances() {
		if inst.Class.Name != "AnalyticalResult" {
			continue
		}
		for _, p := range inst.Props {
			if p.Predicate == mds.PropHasDecimalValue && p.Value.Literal == 87.5 {
				haveYield = true
			}
		}
	}
	assert.True(t, haveYield, "yield percentage must be asserted on the measurement")
}

func TestBuildSetup(t *testing.T) {
	b := newBuilder(fullModel())

	rxn := &record.Reaction{
		ReactionID: "ord-1",
		Setup: &record.Setup{
			VesselType:  "ROUND_BOTTOM_FLASK",
			IsAutomated: true,
		},
	}

	out := b.Build(context.Background(), "ds-1", rxn)
	require.True(t, out.Succeeded())
	require.NoError(t, out.Graph.Validate())

	var setup *graph.Instance
	for _, inst := range out.Graph.Instances() {
		if inst.Class.Name == "ReactionSetup" {
			setup = inst
		}
	}
	require.NotNil(t, setup)

	var vessel string
	var automated bool
	for _, p := range setup.Props {
		switch p.Predicate {
		case mds.PropHasTextValue:
			vessel = p.Value.Literal.(string)
		case mds.PropIsAutomated:
			automated = p.Value.Literal.(bool)
		}
	}
	assert.Equal(t, "ROUND_BOTTOM_FLASK", vessel)
	assert.True(t, automated)
}

func TestBuildDeterministic(t *testing.T) {
	build := func() string {
		b := newBuilder(fullModel())
		rxn := &record.Reaction{
			ReactionID: "ord-1",
			Inputs: map[string]record.Input{
				"solvent_2": {Components: []record.Compound{{
					Identifiers:  []record.CompoundIdentifier{{Type: "SMILES", Value: "CCO"}},
					Amount:       &record.Amount{Kind: "volume", Value: 5, Units: "MILLILITER"},
					ReactionRole: "SOLVENT",
				}}},
				"reactant_1": {Components: []record.Compound{{
					Identifiers: []record.CompoundIdentifier{{Type: "SMILES", Value: "CC(=O)Cl"}},
					IsLimiting:  true,
				}}},
			},
			Conditions: &record.Conditions{
				Temperature: &record.TemperatureConditions{
					Setpoint: &record.Quantity{Value: 25, Units: "CELSIUS"},
				},
			},
		}
		out := b.Build(context.Background(), "ds-1", rxn)
		require.True(t, out.Succeeded())
		doc, err := graph.Serialize(out.Graph, graph.FormatTurtle)
		require.NoError(t, err)
		return doc
	}

	assert.Equal(t, build(), build(), "same record must serialize byte-identically")
}

func TestBuildQuantityUnits(t *testing.T) {
	b := newBuilder(fullModel())

	rxn := &record.Reaction{
		ReactionID: "ord-1",
		Inputs: map[string]record.Input{
			"m1": {Components: []record.Compound{{
				Amount: &record.Amount{Kind: "mass", Value: 1.5, Units: "GRAM"},
			}}},
			"m2": {Components: []record.Compound{{
				Amount: &record.Amount{Kind: "volume", Value: 3, Units: "FURLONGS"},
			}}},
		},
	}

	out := b.Build(context.Background(), "ds-1", rxn)
	require.True(t, out.Succeeded())

	var mappedUnit, rawUnit bool
	for _, inst := range out.Graph.Instances() {
		for _, p := range inst.Props {
			if p.Predicate != mds.PropUsesUnit {
				continue
			}
			switch p.Value.Kind {
			case graph.KindIRI:
				if p.Value.IRI == mds.NamespaceUnit+"GM" {
					mappedUnit = true
				}
			case graph.KindLiteral:
				if p.Value.Literal == "FURLONGS" {
					rawUnit = true
				}
			}
		}
	}
	assert.True(t, mappedUnit, "mapped unit enums must become QUDT IRIs")
	assert.True(t, rawUnit, "unmapped unit enums must stay raw literals")
}
