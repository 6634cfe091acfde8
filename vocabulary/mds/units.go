package mds

// UnitIRIMap maps schema unit enumeration strings to QUDT unit IRIs.
// Quantities serialized without a mapped unit keep the raw enum string as
// a literal instead of an IRI reference.
var UnitIRIMap = map[string]string{
	// Temperature
	"CELSIUS":    NamespaceUnit + "DEG_C",
	"FAHRENHEIT": NamespaceUnit + "DEG_F",
	"KELVIN":     NamespaceUnit + "K",

	// Mass
	"KILOGRAM":  NamespaceUnit + "KiloGM",
	"GRAM":      NamespaceUnit + "GM",
	"MILLIGRAM": NamespaceUnit + "MilliGM",
	"MICROGRAM": NamespaceUnit + "MicroGM",

	// Amount of substance
	"MOLE":      NamespaceUnit + "MOL",
	"MILLIMOLE": NamespaceUnit + "MilliMOL",
	"MICROMOLE": NamespaceUnit + "MicroMOL",
	"NANOMOLE":  NamespaceUnit + "NanoMOL",

	// Volume
	"LITER":      NamespaceUnit + "L",
	"MILLILITER": NamespaceUnit + "MilliL",
	"MICROLITER": NamespaceUnit + "MicroL",
	"NANOLITER":  NamespaceUnit + "NanoL",

	// Pressure
	"BAR":        NamespaceUnit + "BAR",
	"ATMOSPHERE": NamespaceUnit + "ATM",
	"PSI":        NamespaceUnit + "PSI",
	"KPSI":       NamespaceUnit + "KiloLB_F-PER-IN2",
	"PASCAL":     NamespaceUnit + "PA",
	"KILOPASCAL": NamespaceUnit + "KiloPA",
	"TORR":       NamespaceUnit + "TORR",
	"MM_HG":      NamespaceUnit + "MilliM_HG",

	// Time
	"DAY":    NamespaceUnit + "DAY",
	"HOUR":   NamespaceUnit + "HR",
	"MINUTE": NamespaceUnit + "MIN",
	"SECOND": NamespaceUnit + "SEC",

	// Dimensionless
	"PERCENTAGE": NamespaceUnit + "PERCENT",
}

// UnitIRI returns the QUDT IRI for a schema unit enum, if mapped.
func UnitIRI(unit string) (string, bool) {
	iri, ok := UnitIRIMap[unit]
	return iri, ok
}
