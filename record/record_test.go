package record

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestShortID(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"ord_dataset-89b08362988d4f1ab94f1b1b70b4cd9a", "89b08362988d4f1ab94f1b1b70b4cd9a"},
		{"ord-5aa1ee7b4d5745e5b4fcdc9f4d0170e4", "5aa1ee7b4d5745e5b4fcdc9f4d0170e4"},
		{"nodash", "nodash"},
		{"trailing-", "trailing-"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := ShortID(tt.id); got != tt.want {
			t.Errorf("ShortID(%q) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestCompoundInChIKey(t *testing.T) {
	c := Compound{Identifiers: []CompoundIdentifier{
		{Type: "SMILES", Value: "CCO"},
		{Type: "INCHI_KEY", Value: "LFQSCWFLJHTTHZ-UHFFFAOYSA-N"},
	}}
	if got := c.InChIKey(); got != "LFQSCWFLJHTTHZ-UHFFFAOYSA-N" {
		t.Errorf("InChIKey() = %q", got)
	}
	if got := (Compound{}).InChIKey(); got != "" {
		t.Errorf("expected empty InChIKey, got %q", got)
	}
}

func TestLoadDataset(t *testing.T) {
	content := `{
  "dataset_id": "ord_dataset-89b08362988d4f1ab94f1b1b70b4cd9a",
  "name": "test set",
  "reactions": [
    {
      "reaction_id": "ord-5aa1ee7b4d5745e5b4fcdc9f4d0170e4",
      "identifiers": [{"type": "REACTION_SMILES", "value": "CCO>>CC=O"}],
      "inputs": {
        "solvent_1": {
          "components": [
            {
              "identifiers": [{"type": "SMILES", "value": "CCO"}],
              "amount": {"kind": "volume", "value": 5.0, "units": "MILLILITER"},
              "reaction_role": "SOLVENT"
            }
          ]
        }
      },
      "conditions": {
        "temperature": {"setpoint": {"value": 25.0, "units": "CELSIUS"}}
      }
    }
  ]
}`
	path := filepath.Join(t.TempDir(), "ord_dataset-test.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write dataset: %v", err)
	}

	ds, err := LoadDataset(path)
	if err != nil {
		t.Fatalf("LoadDataset() error = %v", err)
	}
	if ds.DatasetID != "ord_dataset-89b08362988d4f1ab94f1b1b70b4cd9a" {
		t.Errorf("unexpected dataset id %s", ds.DatasetID)
	}
	if len(ds.Reactions) != 1 {
		t.Fatalf("expected 1 reaction, got %d", len(ds.Reactions))
	}

	rxn := ds.Reactions[0]
	input, ok := rxn.Inputs["solvent_1"]
	if !ok {
		t.Fatal("expected input solvent_1")
	}
	if len(input.Components) != 1 {
		t.Fatalf("expected 1 component, got %d", len(input.Components))
	}
	comp := input.Components[0]
	if comp.Amount == nil || comp.Amount.Units != "MILLILITER" {
		t.Errorf("unexpected amount %+v", comp.Amount)
	}
	if rxn.Conditions == nil || rxn.Conditions.Temperature == nil ||
		rxn.Conditions.Temperature.Setpoint.Value != 25.0 {
		t.Errorf("unexpected conditions %+v", rxn.Conditions)
	}
}

func TestLoadDatasetErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadDataset(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.json")
	os.WriteFile(bad, []byte("{not json"), 0o644)
	if _, err := LoadDataset(bad); err == nil {
		t.Error("expected error for malformed JSON")
	}

	noID := filepath.Join(dir, "noid.json")
	os.WriteFile(noID, []byte(`{"reactions": []}`), 0o644)
	if _, err := LoadDataset(noID); !errors.Is(err, ErrNoDatasetID) {
		t.Errorf("expected ErrNoDatasetID, got %v", err)
	}
}
