package records

import "vet-dental-chart/internal/domain/chart"

// StoredRecord es una ficha guardada en el historial: copia profunda
// de la ficha activa al momento del "guardar", con id generado y
// timestamp en milisegundos epoch. Inmutable una vez creada; solo se
// borra por acción explícita del usuario.
type StoredRecord struct {
	ID        string            `json:"id"`
	Timestamp int64             `json:"timestamp"` // epoch ms
	Patient   chart.PatientInfo `json:"patientInfo"`
	TeethData chart.Store       `json:"teethData"`
}

// Record reconstruye el PatientRecord contenido (copia profunda, para
// cargarlo en el editor sin aliasing con el historial).
func (sr StoredRecord) Record() chart.PatientRecord {
	return chart.PatientRecord{
		PatientInfo: sr.Patient,
		TeethData:   sr.TeethData,
	}.Clone()
}
