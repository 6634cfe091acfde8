// Package record defines the hierarchical reaction record model and the
// dataset loader. Records follow the Open Reaction Database schema shape;
// the loader reads the JSON wire form of the binary-encoded dataset.
//
// Loaded records are treated as immutable: the converter core never
// mutates a record after load.
package record

import "strings"

// Dataset is one loaded dataset: its identifier and ordered reactions.
type Dataset struct {
	DatasetID string     `json:"dataset_id"`
	Name      string     `json:"name,omitempty"`
	Reactions []Reaction `json:"reactions"`
}

// Reaction is one hierarchical reaction record.
type Reaction struct {
	ReactionID  string               `json:"reaction_id"`
	Identifiers []ReactionIdentifier `json:"identifiers,omitempty"`
	Inputs      map[string]Input     `json:"inputs,omitempty"`
	Setup       *Setup               `json:"setup,omitempty"`
	Conditions  *Conditions          `json:"conditions,omitempty"`
	Notes       *Notes               `json:"notes,omitempty"`
	Workups     []Workup             `json:"workups,omitempty"`
	Outcomes    []Outcome            `json:"outcomes,omitempty"`
	Provenance  *Provenance          `json:"provenance,omitempty"`
}

// ReactionIdentifier names the whole reaction (SMILES, RInChI, ...).
type ReactionIdentifier struct {
	Type     string `json:"type"`
	Value    string `json:"value"`
	Details  string `json:"details,omitempty"`
	IsMapped bool   `json:"is_mapped,omitempty"`
}

// Input is one keyed addition of material to the reaction.
type Input struct {
	Components       []Compound `json:"components,omitempty"`
	AdditionOrder    int        `json:"addition_order,omitempty"`
	AdditionSpeed    string     `json:"addition_speed,omitempty"`
	AdditionDevice   string     `json:"addition_device,omitempty"`
	AdditionTime     *Quantity  `json:"addition_time,omitempty"`
	AdditionDuration *Quantity  `json:"addition_duration,omitempty"`
	FlowRate         *Quantity  `json:"flow_rate,omitempty"`
}

// Compound is a single chemical species with its identifiers and amount.
type Compound struct {
	Identifiers  []CompoundIdentifier `json:"identifiers,omitempty"`
	Amount       *Amount              `json:"amount,omitempty"`
	ReactionRole string               `json:"reaction_role,omitempty"`
	IsLimiting   bool                 `json:"is_limiting,omitempty"`
}

// CompoundIdentifier is one chemical structure identifier.
type CompoundIdentifier struct {
	Type    string `json:"type"`
	Value   string `json:"value"`
	Details string `json:"details,omitempty"`
}

// InChIKey returns the compound's INCHI_KEY identifier value, if present.
func (c Compound) InChIKey() string {
	for _, id := range c.Identifiers {
		if id.Type == "INCHI_KEY" {
			return id.Value
		}
	}
	return ""
}

// Amount is a scalar amount of substance with its measurement kind.
type Amount struct {
	// Kind is one of "mass", "moles", "volume".
	Kind  string  `json:"kind"`
	Value float64 `json:"value"`
	Units string  `json:"units"`
}

// Quantity is a scalar value with a unit enum.
type Quantity struct {
	Value float64 `json:"value"`
	Units string  `json:"units"`
}

// Setup describes vessel and environment of the reaction.
type Setup struct {
	VesselType      string `json:"vessel_type,omitempty"`
	VesselMaterial  string `json:"vessel_material,omitempty"`
	EnvironmentType string `json:"environment_type,omitempty"`
	IsAutomated     bool   `json:"is_automated,omitempty"`
}

// Conditions groups the condition sub-objects of a reaction.
type Conditions struct {
	Temperature      *TemperatureConditions      `json:"temperature,omitempty"`
	Pressure         *PressureConditions         `json:"pressure,omitempty"`
	Stirring         *StirringConditions         `json:"stirring,omitempty"`
	Illumination     *IlluminationConditions     `json:"illumination,omitempty"`
	Electrochemistry *ElectrochemistryConditions `json:"electrochemistry,omitempty"`
	Flow             *FlowConditions             `json:"flow,omitempty"`
}

// TemperatureConditions is the temperature setpoint plus measurements.
type TemperatureConditions struct {
	Setpoint     *Quantity                `json:"setpoint,omitempty"`
	Control      string                   `json:"control,omitempty"`
	Measurements []TemperatureMeasurement `json:"measurements,omitempty"`
}

// TemperatureMeasurement is one observed temperature reading.
type TemperatureMeasurement struct {
	Type        string    `json:"type,omitempty"`
	Details     string    `json:"details,omitempty"`
	Time        *Quantity `json:"time,omitempty"`
	Temperature *Quantity `json:"temperature,omitempty"`
}

// PressureConditions is the pressure setpoint and atmosphere.
type PressureConditions struct {
	Setpoint   *Quantity `json:"setpoint,omitempty"`
	Control    string    `json:"control,omitempty"`
	Atmosphere string    `json:"atmosphere,omitempty"`
}

// StirringConditions describes how the mixture is stirred.
type StirringConditions struct {
	Type string `json:"type,omitempty"`
	Rate string `json:"rate,omitempty"`
}

// IlluminationConditions describes photochemical illumination.
type IlluminationConditions struct {
	Type           string    `json:"type,omitempty"`
	PeakWavelength *Quantity `json:"peak_wavelength,omitempty"`
}

// ElectrochemistryConditions describes electrochemical setup.
type ElectrochemistryConditions struct {
	Type            string    `json:"type,omitempty"`
	Details         string    `json:"details,omitempty"`
	Current         *Quantity `json:"current,omitempty"`
	Voltage         *Quantity `json:"voltage,omitempty"`
	AnodeMaterial   string    `json:"anode_material,omitempty"`
	CathodeMaterial string    `json:"cathode_material,omitempty"`
}

// FlowConditions describes continuous-flow setup.
type FlowConditions struct {
	Type       string `json:"type,omitempty"`
	Details    string `json:"details,omitempty"`
	PumpType   string `json:"pump_type,omitempty"`
	TubingType string `json:"tubing_type,omitempty"`
}

// Notes carries free-form observations about the reaction.
type Notes struct {
	IsHeterogeneous  bool   `json:"is_heterogeneous,omitempty"`
	FormsPrecipitate bool   `json:"forms_precipitate,omitempty"`
	IsExothermic     bool   `json:"is_exothermic,omitempty"`
	Offgasses        bool   `json:"offgasses,omitempty"`
	SafetyNotes      string `json:"safety_notes,omitempty"`
	ProcedureDetails string `json:"procedure_details,omitempty"`
}

// Workup is one post-reaction processing step.
type Workup struct {
	Type        string                 `json:"type"`
	Details     string                 `json:"details,omitempty"`
	Duration    *Quantity              `json:"duration,omitempty"`
	Input       *Input                 `json:"input,omitempty"`
	Temperature *TemperatureConditions `json:"temperature,omitempty"`
	Stirring    *StirringConditions    `json:"stirring,omitempty"`
	KeepPhase   string                 `json:"keep_phase,omitempty"`
	TargetPH    float64                `json:"target_ph,omitempty"`
	IsAutomated bool                   `json:"is_automated,omitempty"`
}

// Outcome describes products and analyses after a reaction time.
type Outcome struct {
	ReactionTime *Quantity           `json:"reaction_time,omitempty"`
	Products     []Product           `json:"products,omitempty"`
	Analyses     map[string]Analysis `json:"analyses,omitempty"`
}

// Product is one identified outcome species.
type Product struct {
	Identifiers      []CompoundIdentifier `json:"identifiers,omitempty"`
	IsDesiredProduct bool                 `json:"is_desired_product,omitempty"`
	IsolatedColor    string               `json:"isolated_color,omitempty"`
	Measurements     []Measurement        `json:"measurements,omitempty"`
}

// InChIKey returns the product's INCHI_KEY identifier value, if present.
func (p Product) InChIKey() string {
	for _, id := range p.Identifiers {
		if id.Type == "INCHI_KEY" {
			return id.Value
		}
	}
	return ""
}

// Measurement is one measured value about a product.
type Measurement struct {
	Type          string    `json:"type"`
	AnalysisKey   string    `json:"analysis_key,omitempty"`
	Percentage    *Quantity `json:"percentage,omitempty"`
	FloatValue    *float64  `json:"float_value,omitempty"`
	StringValue   string    `json:"string_value,omitempty"`
	Amount        *Quantity `json:"amount,omitempty"`
	RetentionTime *Quantity `json:"retention_time,omitempty"`
}

// Analysis is one analytical technique applied to the outcome.
type Analysis struct {
	Type                   string `json:"type"`
	Details                string `json:"details,omitempty"`
	InstrumentManufacturer string `json:"instrument_manufacturer,omitempty"`
	IsOfIsolatedSpecies    bool   `json:"is_of_isolated_species,omitempty"`
}

// Provenance records where the reaction record came from.
type Provenance struct {
	DOI            string `json:"doi,omitempty"`
	Patent         string `json:"patent,omitempty"`
	PublicationURL string `json:"publication_url,omitempty"`
	RecordCreated  string `json:"record_created,omitempty"`
	City           string `json:"city,omitempty"`
}

// ShortID strips the schema prefix from a dataset or reaction identifier:
// "ord_dataset-89b08362..." becomes "89b08362...". Identifiers without a
// dash are used verbatim.
func ShortID(id string) string {
	if _, rest, ok := strings.Cut(id, "-"); ok && rest != "" {
		return rest
	}
	return id
}
