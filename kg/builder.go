package kg

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/cwru-sdle/rxnkg/chem"
	"github.com/cwru-sdle/rxnkg/graph"
	"github.com/cwru-sdle/rxnkg/mint"
	"github.com/cwru-sdle/rxnkg/ontology"
	"github.com/cwru-sdle/rxnkg/record"
	"github.com/cwru-sdle/rxnkg/vocabulary/mds"
)

// Builder converts one reaction record into a ReactionGraph. A Builder is
// stateless across reactions and safe to share: all per-reaction state
// lives in the walk.
type Builder struct {
	resolver *ontology.Resolver
	norm     chem.Normalizer
}

// NewBuilder creates a Builder over an immutable ontology model.
func NewBuilder(model *ontology.Model, norm chem.Normalizer) *Builder {
	return &Builder{resolver: ontology.NewResolver(model), norm: norm}
}

// Build walks one reaction record in strict post-order: every child
// instance is fully built and identified before its parent's reference
// properties are assembled. Field-level failures are accumulated on the
// outcome; only a missing root identification or an unresolvable root
// class is fatal to the reaction.
func (b *Builder) Build(ctx context.Context, datasetID string, rxn *record.Reaction) *Outcome {
	if rxn.ReactionID == "" {
		return failure("", ErrMissingRootIdentification)
	}

	minter, err := mint.New(record.ShortID(datasetID), record.ShortID(rxn.ReactionID))
	if err != nil {
		return failure(rxn.ReactionID, err)
	}

	w := &walk{
		ctx:      ctx,
		resolver: b.resolver,
		norm:     b.norm,
		minter:   minter,
		graph:    graph.New(rxn.ReactionID),
	}

	// The reaction root is structurally mandatory: an unresolved root
	// class aborts the reaction, not just the field.
	rootRes, err := b.resolver.Resolve(ontology.RoleReaction)
	if err != nil {
		return failure(rxn.ReactionID, err)
	}
	root := &graph.Instance{ID: minter.Root(), Class: rootRes.Class}
	if err := w.graph.Add(root); err != nil {
		return failure(rxn.ReactionID, err)
	}
	w.graph.SetRoot(root.ID)
	w.root = root.ID

	w.identifiers(rxn.Identifiers)
	w.inputs(rxn.Inputs)
	w.setup(rxn.Setup)
	w.conditions(rxn.Conditions)
	w.notes(rxn.Notes)
	w.workups(rxn.Workups)
	w.outcomes(rxn.Outcomes)
	w.provenance(rxn.Provenance)

	return &Outcome{
		ReactionID:  rxn.ReactionID,
		Graph:       w.graph,
		FieldErrors: w.errs,
	}
}

// walk carries the per-reaction build state.
type walk struct {
	ctx      context.Context
	resolver *ontology.Resolver
	norm     chem.Normalizer
	minter   *mint.Minter
	graph    *graph.ReactionGraph
	root     string
	errs     []FieldError
}

// fieldErr records a recovered field-level failure.
func (w *walk) fieldErr(path string, err error) {
	w.errs = append(w.errs, FieldError{Path: path, Err: err})
}

// resolve maps a role to its class, recording a field error on a miss.
func (w *walk) resolve(role ontology.Role, path string) (ontology.Resolution, bool) {
	res, err := w.resolver.Resolve(role)
	if err != nil {
		w.fieldErr(path, err)
		return ontology.Resolution{}, false
	}
	return res, true
}

// instance mints and adds a typed instance at a structural path. Returns
// the empty string when minting or adding fails; the failure is recorded
// and the sub-object skipped.
func (w *walk) instance(role ontology.Role, path string) (string, bool) {
	res, ok := w.resolve(role, path)
	if !ok {
		return "", false
	}
	iri, err := w.minter.IRI(path)
	if err != nil {
		w.fieldErr(path, err)
		return "", false
	}
	if err := w.graph.Add(&graph.Instance{ID: iri, Class: res.Class}); err != nil {
		w.fieldErr(path, err)
		return "", false
	}
	return iri, true
}

// set asserts a property, recording rather than propagating failures.
func (w *walk) set(subject, predicate string, v graph.Value) {
	if err := w.graph.Relate(subject, predicate, v); err != nil {
		w.fieldErr(subject, err)
	}
}

// quantity mints a Quantity-shaped child: decimal value plus a unit
// reference when the unit enum maps to a QUDT IRI, the raw enum string
// otherwise.
func (w *walk) quantity(role ontology.Role, path string, q *record.Quantity) (string, bool) {
	iri, ok := w.instance(role, path)
	if !ok {
		return "", false
	}
	w.set(iri, mds.PropHasDecimalValue, graph.LiteralValue(q.Value))
	if unitIRI, ok := mds.UnitIRI(q.Units); ok {
		w.set(iri, mds.PropUsesUnit, graph.IRIValue(unitIRI))
	} else if q.Units != "" {
		w.set(iri, mds.PropUsesUnit, graph.LiteralValue(q.Units))
	}
	return iri, true
}

func (w *walk) identifiers(ids []record.ReactionIdentifier) {
	for i, id := range ids {
		path := "identifier/" + strconv.Itoa(i)
		iri, ok := w.instance(ontology.IdentifierRole(id.Type), path)
		if !ok {
			continue
		}
		if id.Value == "" {
			w.fieldErr(path, fmt.Errorf("identifier %s has no value", id.Type))
		} else {
			w.set(iri, mds.PropHasTextValue, graph.LiteralValue(id.Value))
		}
		if id.Details != "" {
			w.set(iri, mds.PropDetails, graph.LiteralValue(id.Details))
		}
		if id.IsMapped {
			w.set(iri, mds.PropIsMapped, graph.LiteralValue(true))
		}
		w.set(iri, mds.PropDesignates, graph.RefValue(w.root))
	}
}

// inputs walks the keyed inputs in sorted key order so output stays
// deterministic across runs.
func (w *walk) inputs(inputs map[string]record.Input) {
	keys := make([]string, 0, len(inputs))
	for k := range inputs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		input := inputs[key]
		base := "input/" + key

		componentIRIs := make([]string, 0, len(input.Components))
		for i, comp := range input.Components {
			if iri, ok := w.component(base+"/component/"+strconv.Itoa(i), comp); ok {
				componentIRIs = append(componentIRIs, iri)
				w.set(w.root, mds.PropHasInput, graph.RefValue(iri))
			}
		}

		// The addition process is minted only when the input carries
		// addition metadata; a bare component list hangs directly off
		// the reaction root.
		if !hasAdditionMetadata(input) {
			continue
		}
		additionIRI, ok := w.instance(ontology.RoleInput, base)
		if !ok {
			continue
		}
		w.set(w.root, mds.PropHasProcessPart, graph.RefValue(additionIRI))
		for _, compIRI := range componentIRIs {
			w.set(compIRI, mds.PropIsInputOf, graph.RefValue(additionIRI))
		}
		if input.AdditionOrder != 0 {
			w.set(additionIRI, mds.PropAdditionOrder, graph.LiteralValue(input.AdditionOrder))
		}
		if input.AdditionSpeed != "" {
			w.set(additionIRI, mds.PropDetails, graph.LiteralValue(input.AdditionSpeed))
		}
		if input.AdditionDevice != "" {
			w.set(additionIRI, mds.PropDetails, graph.LiteralValue(input.AdditionDevice))
		}
		if input.AdditionTime != nil {
			if iri, ok := w.quantity(ontology.RoleTemporalRegion, base+"/addition-time", input.AdditionTime); ok {
				w.set(additionIRI, mds.PropOccupiesTemporal, graph.RefValue(iri))
			}
		}
		if input.AdditionDuration != nil {
			if iri, ok := w.quantity(ontology.RoleTemporalRegion, base+"/addition-duration", input.AdditionDuration); ok {
				w.set(additionIRI, mds.PropOccupiesTemporal, graph.RefValue(iri))
			}
		}
		if input.FlowRate != nil {
			if iri, ok := w.quantity(ontology.AmountRole("volume"), base+"/flow-rate", input.FlowRate); ok {
				w.set(iri, mds.PropInheresIn, graph.RefValue(additionIRI))
			}
		}
	}
}

// component builds one compound: its identifier children first, then the
// component instance, then the child-to-parent edges.
func (w *walk) component(base string, comp record.Compound) (string, bool) {
	type builtIdentifier struct {
		iri       string
		canonical string
	}
	identifiers := make([]builtIdentifier, 0, len(comp.Identifiers))
	for j, id := range comp.Identifiers {
		path := base + "/identifier/" + strconv.Itoa(j)
		iri, ok := w.instance(ontology.CompoundIdentifierRole(id.Type), path)
		if !ok {
			continue
		}
		built := builtIdentifier{iri: iri}
		if id.Value != "" {
			w.set(iri, mds.PropHasTextValue, graph.LiteralValue(id.Value))
		} else {
			w.fieldErr(path, fmt.Errorf("identifier %s has no value", id.Type))
		}
		if id.Details != "" {
			w.set(iri, mds.PropDetails, graph.LiteralValue(id.Details))
		}
		if chem.IsStructural(id.Type) && id.Value != "" {
			canonical, err := w.norm.Canonical(w.ctx, id.Type, id.Value)
			if err != nil {
				w.fieldErr(path, err)
			} else {
				built.canonical = canonical
				w.set(iri, mds.PropCanonicalKey, graph.LiteralValue(canonical))
			}
		}
		identifiers = append(identifiers, built)
	}

	compIRI, ok := w.instance(ontology.RoleComponent, base)
	if !ok {
		return "", false
	}
	for _, id := range identifiers {
		w.set(id.iri, mds.PropDesignates, graph.RefValue(compIRI))
	}

	if comp.Amount != nil {
		path := base + "/amount"
		if iri, ok := w.quantity(ontology.AmountRole(comp.Amount.Kind), path, &record.Quantity{
			Value: comp.Amount.Value,
			Units: comp.Amount.Units,
		}); ok {
			w.set(iri, mds.PropInheresIn, graph.RefValue(compIRI))
		}
	}

	if comp.ReactionRole != "" && comp.ReactionRole != "UNSPECIFIED" {
		if iri, ok := w.instance(ontology.ComponentRole(comp.ReactionRole), base+"/role"); ok {
			w.set(iri, mds.PropInheresIn, graph.RefValue(compIRI))
		}
	}
	if comp.IsLimiting {
		w.set(compIRI, mds.PropIsLimiting, graph.LiteralValue(true))
	}

	return compIRI, true
}

func (w *walk) setup(s *record.Setup) {
	if s == nil {
		return
	}
	iri, ok := w.instance(ontology.RoleSetup, "setup")
	if !ok {
		return
	}
	w.set(w.root, mds.PropHasProcessPart, graph.RefValue(iri))
	if s.VesselType != "" {
		w.set(iri, mds.PropHasTextValue, graph.LiteralValue(s.VesselType))
	}
	if s.VesselMaterial != "" {
		w.set(iri, mds.PropDetails, graph.LiteralValue(s.VesselMaterial))
	}
	if s.EnvironmentType != "" {
		w.set(iri, mds.PropDetails, graph.LiteralValue(s.EnvironmentType))
	}
	if s.IsAutomated {
		w.set(iri, mds.PropIsAutomated, graph.LiteralValue(true))
	}
}

func (w *walk) conditions(c *record.Conditions) {
	if c == nil {
		return
	}
	if c.Temperature != nil {
		w.temperature("condition/temperature", c.Temperature)
	}
	if c.Pressure != nil {
		w.pressure(c.Pressure)
	}
	if c.Stirring != nil {
		if iri, ok := w.instance(ontology.ConditionRole("stirring"), "condition/stirring"); ok {
			w.set(w.root, mds.PropHasProcessPart, graph.RefValue(iri))
			if c.Stirring.Type != "" {
				w.set(iri, mds.PropHasTextValue, graph.LiteralValue(c.Stirring.Type))
			}
			if c.Stirring.Rate != "" {
				w.set(iri, mds.PropDetails, graph.LiteralValue(c.Stirring.Rate))
			}
		}
	}
	if c.Illumination != nil {
		if iri, ok := w.instance(ontology.ConditionRole("illumination"), "condition/illumination"); ok {
			w.set(w.root, mds.PropHasProcessPart, graph.RefValue(iri))
			if c.Illumination.Type != "" {
				w.set(iri, mds.PropHasTextValue, graph.LiteralValue(c.Illumination.Type))
			}
			if c.Illumination.PeakWavelength != nil {
				if q, ok := w.quantity(ontology.RoleQuantity, "condition/illumination/peak-wavelength", c.Illumination.PeakWavelength); ok {
					w.set(iri, mds.PropHasOccurrentPart, graph.RefValue(q))
				}
			}
		}
	}
	if c.Electrochemistry != nil {
		w.electrochemistry(c.Electrochemistry)
	}
	if c.Flow != nil {
		if iri, ok := w.instance(ontology.ConditionRole("flow"), "condition/flow"); ok {
			w.set(w.root, mds.PropHasProcessPart, graph.RefValue(iri))
			if c.Flow.Type != "" {
				w.set(iri, mds.PropHasTextValue, graph.LiteralValue(c.Flow.Type))
			}
			if c.Flow.Details != "" {
				w.set(iri, mds.PropDetails, graph.LiteralValue(c.Flow.Details))
			}
			if c.Flow.PumpType != "" {
				w.set(iri, mds.PropDetails, graph.LiteralValue(c.Flow.PumpType))
			}
			if c.Flow.TubingType != "" {
				w.set(iri, mds.PropDetails, graph.LiteralValue(c.Flow.TubingType))
			}
		}
	}
}

func (w *walk) temperature(base string, t *record.TemperatureConditions) {
	iri, ok := w.instance(ontology.ConditionRole("temperature"), base)
	if !ok {
		return
	}
	w.set(w.root, mds.PropHasCondition, graph.RefValue(iri))
	if t.Setpoint != nil {
		w.set(iri, mds.PropHasDecimalValue, graph.LiteralValue(t.Setpoint.Value))
		if unitIRI, ok := mds.UnitIRI(t.Setpoint.Units); ok {
			w.set(iri, mds.PropUsesUnit, graph.IRIValue(unitIRI))
		} else if t.Setpoint.Units != "" {
			w.set(iri, mds.PropUsesUnit, graph.LiteralValue(t.Setpoint.Units))
		}
	}
	if t.Control != "" {
		w.set(iri, mds.PropDetails, graph.LiteralValue(t.Control))
	}
	for i, m := range t.Measurements {
		path := base + "/measurement/" + strconv.Itoa(i)
		mIRI, ok := w.instance(ontology.RoleMeasurement, path)
		if !ok {
			continue
		}
		w.set(mIRI, mds.PropIsAbout, graph.RefValue(iri))
		if m.Type != "" {
			w.set(mIRI, mds.PropDetails, graph.LiteralValue(m.Type))
		}
		if m.Details != "" {
			w.set(mIRI, mds.PropDetails, graph.LiteralValue(m.Details))
		}
		if m.Temperature != nil {
			w.set(mIRI, mds.PropHasDecimalValue, graph.LiteralValue(m.Temperature.Value))
			if unitIRI, ok := mds.UnitIRI(m.Temperature.Units); ok {
				w.set(mIRI, mds.PropUsesUnit, graph.IRIValue(unitIRI))
			}
		}
		if m.Time != nil {
			if tIRI, ok := w.quantity(ontology.RoleTemporalRegion, path+"/time", m.Time); ok {
				w.set(mIRI, mds.PropOccupiesTemporal, graph.RefValue(tIRI))
			}
		}
	}
}

func (w *walk) pressure(p *record.PressureConditions) {
	iri, ok := w.instance(ontology.ConditionRole("pressure"), "condition/pressure")
	if !ok {
		return
	}
	w.set(w.root, mds.PropHasCondition, graph.RefValue(iri))
	if p.Setpoint != nil {
		w.set(iri, mds.PropHasDecimalValue, graph.LiteralValue(p.Setpoint.Value))
		if unitIRI, ok := mds.UnitIRI(p.Setpoint.Units); ok {
			w.set(iri, mds.PropUsesUnit, graph.IRIValue(unitIRI))
		} else if p.Setpoint.Units != "" {
			w.set(iri, mds.PropUsesUnit, graph.LiteralValue(p.Setpoint.Units))
		}
	}
	if p.Control != "" {
		w.set(iri, mds.PropDetails, graph.LiteralValue(p.Control))
	}
	if p.Atmosphere != "" && p.Atmosphere != "UNSPECIFIED" {
		if aIRI, ok := w.instance(ontology.ConditionRole("atmosphere"), "condition/atmosphere"); ok {
			w.set(w.root, mds.PropHasCondition, graph.RefValue(aIRI))
			w.set(aIRI, mds.PropHasTextValue, graph.LiteralValue(p.Atmosphere))
		}
	}
}

func (w *walk) electrochemistry(e *record.ElectrochemistryConditions) {
	iri, ok := w.instance(ontology.ConditionRole("electrochemistry"), "condition/electrochemistry")
	if !ok {
		return
	}
	w.set(w.root, mds.PropHasProcessPart, graph.RefValue(iri))
	if e.Details != "" {
		w.set(iri, mds.PropDetails, graph.LiteralValue(e.Details))
	}
	if e.Current != nil {
		if q, ok := w.quantity(ontology.RoleQuantity, "condition/electrochemistry/current", e.Current); ok {
			w.set(iri, mds.PropHasOccurrentPart, graph.RefValue(q))
		}
	}
	if e.Voltage != nil {
		if q, ok := w.quantity(ontology.RoleQuantity, "condition/electrochemistry/voltage", e.Voltage); ok {
			w.set(iri, mds.PropHasOccurrentPart, graph.RefValue(q))
		}
	}
	if e.AnodeMaterial != "" {
		w.set(iri, mds.PropHasTextValue, graph.LiteralValue(e.AnodeMaterial))
	}
	if e.CathodeMaterial != "" {
		w.set(iri, mds.PropHasTextValue, graph.LiteralValue(e.CathodeMaterial))
	}
}

func (w *walk) notes(n *record.Notes) {
	if n == nil {
		return
	}
	if n.IsHeterogeneous {
		w.set(w.root, mds.PropIsHeterogeneous, graph.LiteralValue(true))
	}
	if n.FormsPrecipitate {
		w.set(w.root, mds.PropFormsPrecipitate, graph.LiteralValue(true))
	}
	if n.IsExothermic {
		w.set(w.root, mds.PropIsExothermic, graph.LiteralValue(true))
	}
	if n.Offgasses {
		w.set(w.root, mds.PropOffgasses, graph.LiteralValue(true))
	}
	if n.SafetyNotes != "" {
		w.set(w.root, mds.PropSafetyNotes, graph.LiteralValue(n.SafetyNotes))
	}
	if n.ProcedureDetails != "" {
		w.set(w.root, mds.PropProcedureDetails, graph.LiteralValue(n.ProcedureDetails))
	}
}

func (w *walk) workups(workups []record.Workup) {
	for i, wu := range workups {
		base := "workup/" + strconv.Itoa(i)
		iri, ok := w.instance(ontology.WorkupRole(wu.Type), base)
		if !ok {
			continue
		}
		w.set(w.root, mds.PropHasWorkup, graph.RefValue(iri))
		w.set(w.root, mds.PropPrecedes, graph.RefValue(iri))
		if wu.Type != "" {
			w.set(iri, mds.PropHasTextValue, graph.LiteralValue(wu.Type))
		}
		if wu.Details != "" {
			w.set(iri, mds.PropDetails, graph.LiteralValue(wu.Details))
		}
		if wu.Duration != nil {
			if d, ok := w.quantity(ontology.RoleTemporalRegion, base+"/duration", wu.Duration); ok {
				w.set(iri, mds.PropOccupiesTemporal, graph.RefValue(d))
			}
		}
		if wu.Input != nil {
			for j, comp := range wu.Input.Components {
				if compIRI, ok := w.component(base+"/component/"+strconv.Itoa(j), comp); ok {
					w.set(compIRI, mds.PropIsInputOf, graph.RefValue(iri))
				}
			}
		}
		if wu.Temperature != nil {
			w.temperature(base+"/temperature", wu.Temperature)
		}
		if wu.Stirring != nil {
			if sIRI, ok := w.instance(ontology.ConditionRole("stirring"), base+"/stirring"); ok {
				w.set(iri, mds.PropHasProcessPart, graph.RefValue(sIRI))
				if wu.Stirring.Rate != "" {
					w.set(sIRI, mds.PropDetails, graph.LiteralValue(wu.Stirring.Rate))
				}
			}
		}
		if wu.KeepPhase != "" {
			w.set(iri, mds.PropKeepPhase, graph.LiteralValue(wu.KeepPhase))
		}
		if wu.TargetPH != 0 {
			w.set(iri, mds.PropHasDecimalValue, graph.LiteralValue(wu.TargetPH))
		}
		if wu.IsAutomated {
			w.set(iri, mds.PropIsAutomated, graph.LiteralValue(true))
		}
	}
}

func (w *walk) outcomes(outcomes []record.Outcome) {
	for i, o := range outcomes {
		base := "outcome/" + strconv.Itoa(i)
		if o.ReactionTime != nil {
			if iri, ok := w.quantity(ontology.RoleReactionTime, base+"/reaction-time", o.ReactionTime); ok {
				w.set(w.root, mds.PropOccupiesTemporal, graph.RefValue(iri))
			}
		}
		for j, p := range o.Products {
			w.product(base+"/product/"+strconv.Itoa(j), p)
		}

		keys := make([]string, 0, len(o.Analyses))
		for k := range o.Analyses {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, key := range keys {
			a := o.Analyses[key]
			path := base + "/analysis/" + key
			iri, ok := w.instance(ontology.RoleAnalysis, path)
			if !ok {
				continue
			}
			w.set(w.root, mds.PropHasOutcome, graph.RefValue(iri))
			if a.Type != "" {
				w.set(iri, mds.PropDetails, graph.LiteralValue(a.Type))
			}
			if a.Details != "" {
				w.set(iri, mds.PropDetails, graph.LiteralValue(a.Details))
			}
			if a.InstrumentManufacturer != "" {
				w.set(iri, mds.PropHasTextValue, graph.LiteralValue(a.InstrumentManufacturer))
			}
			if a.IsOfIsolatedSpecies {
				w.set(iri, mds.PropHasBooleanValue, graph.LiteralValue(true))
			}
		}
	}
}

func (w *walk) product(base string, p record.Product) {
	prodIRI, ok := w.productInstance(base, p)
	if !ok {
		return
	}
	w.set(w.root, mds.PropHasOutput, graph.RefValue(prodIRI))

	for i, m := range p.Measurements {
		path := base + "/measurement/" + strconv.Itoa(i)
		mIRI, ok := w.instance(ontology.RoleMeasurement, path)
		if !ok {
			continue
		}
		w.set(mIRI, mds.PropIsAbout, graph.RefValue(prodIRI))
		if m.Type != "" {
			w.set(mIRI, mds.PropDetails, graph.LiteralValue(m.Type))
		}
		if m.AnalysisKey != "" {
			w.set(mIRI, mds.PropDetails, graph.LiteralValue(m.AnalysisKey))
		}
		if m.Percentage != nil {
			w.set(mIRI, mds.PropHasDecimalValue, graph.LiteralValue(m.Percentage.Value))
			if unitIRI, ok := mds.UnitIRI("PERCENTAGE"); ok {
				w.set(mIRI, mds.PropUsesUnit, graph.IRIValue(unitIRI))
			}
		}
		if m.FloatValue != nil {
			w.set(mIRI, mds.PropHasDecimalValue, graph.LiteralValue(*m.FloatValue))
		}
		if m.StringValue != "" {
			w.set(mIRI, mds.PropHasTextValue, graph.LiteralValue(m.StringValue))
		}
		if m.Amount != nil {
			if aIRI, ok := w.quantity(ontology.AmountRole("mass"), path+"/amount", m.Amount); ok {
				w.set(aIRI, mds.PropInheresIn, graph.RefValue(prodIRI))
				w.set(mIRI, mds.PropIsAbout, graph.RefValue(aIRI))
			}
		}
		if m.RetentionTime != nil {
			if rIRI, ok := w.quantity(ontology.RoleTemporalRegion, path+"/retention-time", m.RetentionTime); ok {
				w.set(mIRI, mds.PropIsAbout, graph.RefValue(rIRI))
			}
		}
	}
}

// productInstance builds the identifier children then the product node.
func (w *walk) productInstance(base string, p record.Product) (string, bool) {
	identifierIRIs := make([]string, 0, len(p.Identifiers))
	for j, id := range p.Identifiers {
		path := base + "/identifier/" + strconv.Itoa(j)
		iri, ok := w.instance(ontology.CompoundIdentifierRole(id.Type), path)
		if !ok {
			continue
		}
		if id.Value != "" {
			w.set(iri, mds.PropHasTextValue, graph.LiteralValue(id.Value))
		}
		if chem.IsStructural(id.Type) && id.Value != "" {
			canonical, err := w.norm.Canonical(w.ctx, id.Type, id.Value)
			if err != nil {
				w.fieldErr(path, err)
			} else {
				w.set(iri, mds.PropCanonicalKey, graph.LiteralValue(canonical))
			}
		}
		identifierIRIs = append(identifierIRIs, iri)
	}

	prodIRI, ok := w.instance(ontology.RoleProduct, base)
	if !ok {
		return "", false
	}
	for _, iri := range identifierIRIs {
		w.set(iri, mds.PropDesignates, graph.RefValue(prodIRI))
	}
	if p.IsDesiredProduct {
		w.set(prodIRI, mds.PropIsDesiredProduct, graph.LiteralValue(true))
	}
	if p.IsolatedColor != "" {
		w.set(prodIRI, mds.PropIsolatedColor, graph.LiteralValue(p.IsolatedColor))
	}
	return prodIRI, true
}

func (w *walk) provenance(p *record.Provenance) {
	if p == nil {
		return
	}
	iri, ok := w.instance(ontology.RoleProvenance, "provenance")
	if !ok {
		return
	}
	w.set(w.root, mds.PropHasProvenance, graph.RefValue(iri))
	if p.DOI != "" {
		w.set(iri, mds.PropDOI, graph.LiteralValue(p.DOI))
	}
	if p.Patent != "" {
		w.set(iri, mds.PropPatent, graph.LiteralValue(p.Patent))
	}
	if p.PublicationURL != "" {
		w.set(iri, mds.PropPublicationURL, graph.LiteralValue(p.PublicationURL))
	}
	if p.RecordCreated != "" {
		w.set(iri, mds.PropRecordCreated, graph.LiteralValue(p.RecordCreated))
	}
}

// hasAdditionMetadata reports whether an input carries process metadata
// worth its own addition instance.
func hasAdditionMetadata(in record.Input) bool {
	return in.AdditionOrder != 0 ||
		in.AdditionSpeed != "" ||
		in.AdditionDevice != "" ||
		in.AdditionTime != nil ||
		in.AdditionDuration != nil ||
		in.FlowRate != nil
}
