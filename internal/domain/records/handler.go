package records

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"vet-dental-chart/internal/domain/chart"

	"github.com/go-chi/chi/v5"
)

// maxImportBytes limita el tamaño de un documento importado.
const maxImportBytes = 4 << 20

func RegisterRoutes(r chi.Router, svc *Service, editor *chart.Service) {
	r.Route("/records", func(hr chi.Router) {
		hr.Post("/", saveRecordHandler(svc, editor))
		hr.Get("/", listRecordsHandler(svc))
		hr.Get("/{recordID}", getRecordHandler(svc))
		hr.Delete("/{recordID}", deleteRecordHandler(svc))

		// Cargar una ficha del historial al editor (reemplazo wholesale).
		hr.Post("/{recordID}/load", loadRecordHandler(svc, editor))
	})

	r.Get("/export", exportHandler(svc, editor))
	r.Post("/import", importHandler(editor))
}

// storedRecordResponse es una ficha del historial devuelta por la API.
type storedRecordResponse struct {
	ID        string            `json:"id"`
	Timestamp int64             `json:"timestamp"`
	Patient   chart.PatientInfo `json:"patientInfo"`
	TeethData chart.Store       `json:"teethData"`
}

// saveRecordHandler godoc
// @Summary Guardar la ficha activa en el historial
// @Description Copia profunda de la ficha activa; ediciones posteriores no tocan lo guardado.
// @Tags records
// @Produce json
// @Success 201 {object} storedRecordResponse
// @Router /records [post]
func saveRecordHandler(svc *Service, editor *chart.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sr, err := svc.Save(r.Context(), editor.Snapshot())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusCreated, toResponse(sr))
	}
}

// listRecordsHandler godoc
// @Summary Historial de fichas guardadas
// @Description Lista completa, la más reciente primero.
// @Tags records
// @Produce json
// @Success 200 {array} storedRecordResponse
// @Router /records [get]
func listRecordsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]storedRecordResponse, 0, len(items))
		for _, sr := range items {
			out = append(out, toResponse(sr))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func getRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sr, err := svc.GetByID(r.Context(), chi.URLParam(r, "recordID"))
		if err != nil {
			writeRepoError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toResponse(sr))
	}
}

// loadRecordHandler godoc
// @Summary Cargar una ficha guardada al editor
// @Description Reemplaza la ficha activa completa con la guardada (los cambios actuales se pierden, como advierte la UI antes de llamar).
// @Tags records
// @Produce json
// @Param recordID path string true "ID de la ficha guardada"
// @Success 200 {object} chart.PatientRecord
// @Failure 404 {string} string "record not found"
// @Router /records/{recordID}/load [post]
func loadRecordHandler(svc *Service, editor *chart.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sr, err := svc.GetByID(r.Context(), chi.URLParam(r, "recordID"))
		if err != nil {
			writeRepoError(w, err)
			return
		}

		editor.Replace(sr.Record())
		writeJSON(w, http.StatusOK, editor.Snapshot())
	}
}

// deleteRecordHandler godoc
// @Summary Borrar una ficha del historial
// @Tags records
// @Param recordID path string true "ID de la ficha guardada"
// @Success 204 {string} string ""
// @Failure 404 {string} string "record not found"
// @Router /records/{recordID} [delete]
func deleteRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "recordID")); err != nil {
			writeRepoError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// exportHandler godoc
// @Summary Exportar la ficha activa (backup JSON)
// @Description Documento {version, exportedAt, record}; el filename sugerido va en Content-Disposition.
// @Tags records
// @Produce json
// @Success 200 {object} ExportDocument
// @Router /export [get]
func exportHandler(svc *Service, editor *chart.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc := Export(editor.Snapshot(), svc.now())

		name := strings.TrimSpace(doc.Record.PatientInfo.PetName)
		if name == "" {
			name = "unnamed"
		}
		date := svc.now().UTC().Format("2006-01-02")
		w.Header().Set("Content-Disposition",
			fmt.Sprintf(`attachment; filename="dental_record_%s_%s.json"`, name, date))

		writeJSON(w, http.StatusOK, doc)
	}
}

// importHandler godoc
// @Summary Importar un backup JSON
// @Description Valida record.patientInfo y record.teethData antes de aceptar; si falla, la ficha activa queda intacta.
// @Tags records
// @Accept json
// @Produce json
// @Success 200 {object} chart.PatientRecord
// @Failure 400 {string} string "invalid record format"
// @Router /import [post]
func importHandler(editor *chart.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, err := io.ReadAll(io.LimitReader(r.Body, maxImportBytes))
		if err != nil {
			http.Error(w, "invalid record format", http.StatusBadRequest)
			return
		}

		rec, err := Import(raw)
		if err != nil {
			// Sin import parcial: el editor no se toca.
			http.Error(w, "invalid record format", http.StatusBadRequest)
			return
		}

		editor.Replace(rec)
		writeJSON(w, http.StatusOK, editor.Snapshot())
	}
}

func toResponse(sr StoredRecord) storedRecordResponse {
	return storedRecordResponse{
		ID:        sr.ID,
		Timestamp: sr.Timestamp,
		Patient:   sr.Patient,
		TeethData: sr.TeethData,
	}
}

func writeRepoError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		http.Error(w, "record not found", http.StatusNotFound)
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, "invalid record id", http.StatusBadRequest)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
