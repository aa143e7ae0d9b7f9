package records

import (
	"encoding/json"
	"errors"
	"time"

	"vet-dental-chart/internal/domain/chart"
)

// ExportVersion es la versión del documento de intercambio.
const ExportVersion = "1.0"

var ErrInvalidImport = errors.New("invalid record format")

// ExportDocument es el formato canónico de intercambio:
//
//	{ "version": "1.0", "exportedAt": RFC3339, "record": {...} }
type ExportDocument struct {
	Version    string              `json:"version"`
	ExportedAt string              `json:"exportedAt"`
	Record     chart.PatientRecord `json:"record"`
}

// Export arma el documento de backup de la ficha.
func Export(r chart.PatientRecord, now time.Time) ExportDocument {
	return ExportDocument{
		Version:    ExportVersion,
		ExportedAt: now.UTC().Format(time.RFC3339),
		Record:     r.Clone(),
	}
}

// importEnvelope separa la validación de presencia del parseo final:
// patientInfo y teethData deben venir y no ser null.
type importEnvelope struct {
	Record *struct {
		PatientInfo json.RawMessage `json:"patientInfo"`
		TeethData   json.RawMessage `json:"teethData"`
	} `json:"record"`
}

// Import valida y parsea un documento exportado. Exige la presencia de
// record.patientInfo y record.teethData; en cualquier fallo devuelve
// error sin producir ficha parcial (el caller no debe tocar su estado).
func Import(raw []byte) (chart.PatientRecord, error) {
	var env importEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return chart.PatientRecord{}, ErrInvalidImport
	}
	if env.Record == nil || isNullOrEmpty(env.Record.PatientInfo) || isNullOrEmpty(env.Record.TeethData) {
		return chart.PatientRecord{}, ErrInvalidImport
	}

	var doc struct {
		Record chart.PatientRecord `json:"record"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return chart.PatientRecord{}, ErrInvalidImport
	}
	if doc.Record.TeethData == nil {
		doc.Record.TeethData = make(chart.Store)
	}
	return doc.Record, nil
}

func isNullOrEmpty(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}
