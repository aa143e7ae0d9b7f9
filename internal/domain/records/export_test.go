package records

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
	"time"

	"vet-dental-chart/internal/domain/chart"
)

func TestExport_DocumentShape(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC)
	doc := Export(sampleRecord("Milo"), now)

	if doc.Version != "1.0" {
		t.Fatalf("expected version 1.0, got %q", doc.Version)
	}
	if doc.ExportedAt != "2024-06-01T10:30:00Z" {
		t.Fatalf("expected RFC3339 exportedAt, got %q", doc.ExportedAt)
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var shape map[string]json.RawMessage
	if err := json.Unmarshal(raw, &shape); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"version", "exportedAt", "record"} {
		if _, ok := shape[key]; !ok {
			t.Fatalf("document missing key %q", key)
		}
	}
}

func TestExportImport_RoundTrip(t *testing.T) {
	g := 1
	original := chart.PatientRecord{
		PatientInfo: chart.PatientInfo{
			OwnerName:    "Ana",
			PetName:      "Milo",
			RecordNumber: "R-42",
			Date:         "2024-06-01",
			Species:      "dog",
			Breed:        "beagle",
			Age:          "5y",
			Gender:       chart.GenderMaleNeutered,
			Neutered:     true,
		},
		TeethData: chart.Store{
			"104": {
				Missing:    true,
				Mobility:   chart.MobilityM2,
				Furcation:  chart.FurcationF1,
				Recession:  "3",
				BoneLoss:   chart.BoneLoss25To50,
				Gingivitis: &g,
				Treatments: chart.Treatments{Extract: true, Flap: true},
			},
			"210": {Treatments: chart.Treatments{Perio: true}},
		},
	}

	raw, err := json.Marshal(Export(original, time.Now()))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	got, err := Import(raw)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}

	if got.PatientInfo != original.PatientInfo {
		t.Fatalf("patient info round-trip mismatch:\n  %+v\n  %+v", original.PatientInfo, got.PatientInfo)
	}
	if !reflect.DeepEqual(got.TeethData, original.TeethData) {
		t.Fatalf("teeth data round-trip mismatch:\n  %+v\n  %+v", original.TeethData, got.TeethData)
	}
}

func TestImport_RejectsInvalidDocuments(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"not json", "{"},
		{"empty object", "{}"},
		{"missing record", `{"version":"1.0"}`},
		{"null record", `{"record":null}`},
		{"missing teethData", `{"record":{"patientInfo":{"petName":"Milo"}}}`},
		{"null teethData", `{"record":{"patientInfo":{},"teethData":null}}`},
		{"missing patientInfo", `{"record":{"teethData":{}}}`},
	}

	for _, tc := range cases {
		if _, err := Import([]byte(tc.raw)); !errors.Is(err, ErrInvalidImport) {
			t.Fatalf("%s: expected ErrInvalidImport, got %v", tc.name, err)
		}
	}
}

func TestImport_AcceptsMinimalValidDocument(t *testing.T) {
	rec, err := Import([]byte(`{"record":{"patientInfo":{"petName":"Milo"},"teethData":{}}}`))
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if rec.PatientInfo.PetName != "Milo" {
		t.Fatalf("unexpected patient info: %+v", rec.PatientInfo)
	}
	if rec.TeethData == nil {
		t.Fatal("expected usable teeth store")
	}
}
