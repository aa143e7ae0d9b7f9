package chart

import (
	"encoding/json"
	"errors"
	"net/http"

	"vet-dental-chart/internal/domain/catalog"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/record", func(rr chi.Router) {
		rr.Get("/", getRecordHandler(svc))
		rr.Put("/", replaceRecordHandler(svc))

		rr.Get("/patient", getPatientHandler(svc))
		rr.Put("/patient", putPatientHandler(svc))

		rr.Get("/summary", summaryHandler(svc))
		rr.Get("/labels", labelsHandler())

		rr.Get("/teeth", listFindingsHandler(svc))
		rr.Get("/teeth/{toothID}", getFindingHandler(svc))
		rr.Put("/teeth/{toothID}", updateFindingHandler(svc))
		rr.Post("/teeth/{toothID}/select", selectToothHandler(svc))
		rr.Post("/teeth/{toothID}/treatments/{treatmentKey}", applyTreatmentHandler(svc))
	})
}

// selectedToothResponse es lo que necesita el panel de carga al
// seleccionar una pieza: definición, hallazgo materializado y si debe
// mostrar el control de furcación.
type selectedToothResponse struct {
	Tooth               toothRef     `json:"tooth"`
	Finding             ToothFinding `json:"finding"`
	FurcationApplicable bool         `json:"furcation_applicable"`
}

type toothRef struct {
	ID          string  `json:"id"`
	Label       string  `json:"label"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	IsMaxillary bool    `json:"is_maxillary"`
	Quadrant    int     `json:"quadrant"`
}

// findingResponse envuelve un hallazgo con su flag de existencia en el
// store (lectura efectiva de dos niveles).
type findingResponse struct {
	ToothID string       `json:"tooth_id"`
	Stored  bool         `json:"stored"`
	Finding ToothFinding `json:"finding"`
}

type applyTreatmentRequest struct {
	Value bool `json:"value"`
}

// getRecordHandler godoc
// @Summary Ficha activa completa
// @Tags record
// @Produce json
// @Success 200 {object} PatientRecord
// @Router /record [get]
func getRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.Snapshot())
	}
}

// replaceRecordHandler godoc
// @Summary Reemplazar la ficha activa
// @Description Sustituye la ficha completa (wholesale, sin merge). Lo usan load de historial e import.
// @Tags record
// @Accept json
// @Produce json
// @Param payload body PatientRecord true "Ficha completa"
// @Success 200 {object} PatientRecord
// @Failure 400 {string} string "invalid json"
// @Router /record [put]
func replaceRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var rec PatientRecord
		if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		svc.Replace(rec)
		writeJSON(w, http.StatusOK, svc.Snapshot())
	}
}

func getPatientHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.PatientInfo())
	}
}

// putPatientHandler godoc
// @Summary Actualizar cabecera del paciente
// @Tags record
// @Accept json
// @Produce json
// @Param payload body PatientInfo true "Datos del paciente"
// @Success 200 {object} PatientInfo
// @Failure 400 {string} string "invalid json / unknown species"
// @Router /record/patient [put]
func putPatientHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var info PatientInfo
		if err := json.NewDecoder(r.Body).Decode(&info); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if info.Species != "" {
			if _, err := catalog.ParseSpecies(string(info.Species)); err != nil {
				http.Error(w, "unknown species", http.StatusBadRequest)
				return
			}
		}
		svc.SetPatientInfo(info)
		writeJSON(w, http.StatusOK, svc.PatientInfo())
	}
}

func listFindingsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.Teeth())
	}
}

// getFindingHandler sirve la lectura efectiva: si la pieza no tiene
// entrada devuelve la vista default sin materializarla (stored=false).
func getFindingHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		toothID := chi.URLParam(r, "toothID")
		f, stored := svc.Finding(toothID)
		writeJSON(w, http.StatusOK, findingResponse{
			ToothID: toothID,
			Stored:  stored,
			Finding: f,
		})
	}
}

// selectToothHandler godoc
// @Summary Seleccionar una pieza
// @Description Click del clínico sobre el chart: valida la pieza contra el catálogo de la especie activa y materializa el hallazgo default si no existía.
// @Tags record
// @Produce json
// @Param toothID path string true "Número Triadan"
// @Success 200 {object} selectedToothResponse
// @Failure 404 {string} string "tooth not found"
// @Router /record/teeth/{toothID}/select [post]
func selectToothHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		def, f, err := svc.SelectTooth(chi.URLParam(r, "toothID"))
		if err != nil {
			http.Error(w, "tooth not found", http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, selectedToothResponse{
			Tooth: toothRef{
				ID:          def.ID,
				Label:       def.Label,
				X:           def.X,
				Y:           def.Y,
				IsMaxillary: def.IsMaxillary,
				Quadrant:    def.Quadrant,
			},
			Finding:             f,
			FurcationApplicable: catalog.FurcationApplicable(svc.ActiveSpecies(), def.ID),
		})
	}
}

// updateFindingHandler godoc
// @Summary Reemplazar el hallazgo de una pieza
// @Description Reemplazo completo del ToothFinding (sin merge parcial). El store no valida rangos; los tratamientos se normalizan para sostener la exclusividad de extracción.
// @Tags record
// @Accept json
// @Produce json
// @Param toothID path string true "Número Triadan"
// @Param payload body ToothFinding true "Hallazgo completo"
// @Success 200 {object} findingResponse
// @Failure 400 {string} string "invalid json"
// @Router /record/teeth/{toothID} [put]
func updateFindingHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		toothID := chi.URLParam(r, "toothID")

		var f ToothFinding
		if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		if err := svc.UpdateTooth(toothID, f); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		stored, ok := svc.Finding(toothID)
		writeJSON(w, http.StatusOK, findingResponse{ToothID: toothID, Stored: ok, Finding: stored})
	}
}

// applyTreatmentHandler godoc
// @Summary Setear un flag de tratamiento
// @Description Aplica la regla de exclusividad: marcar extract apaga perio/endo/restore; desmarcarlo no restaura nada.
// @Tags record
// @Accept json
// @Produce json
// @Param toothID path string true "Número Triadan"
// @Param treatmentKey path string true "perio|endo|restore|extract|flap"
// @Param payload body applyTreatmentRequest true "Valor del flag"
// @Success 200 {object} findingResponse
// @Failure 400 {string} string "invalid json / unknown treatment"
// @Router /record/teeth/{toothID}/treatments/{treatmentKey} [post]
func applyTreatmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		toothID := chi.URLParam(r, "toothID")
		key := TreatmentKey(chi.URLParam(r, "treatmentKey"))

		var req applyTreatmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		f, err := svc.ApplyTreatment(toothID, key, req.Value)
		if err != nil {
			if errors.Is(err, ErrUnknownTreatment) {
				http.Error(w, "unknown treatment", http.StatusBadRequest)
				return
			}
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusOK, findingResponse{ToothID: toothID, Stored: true, Finding: f})
	}
}

// summaryHandler godoc
// @Summary Resumen de hallazgos
// @Description Una línea por pieza con hallazgos/tratamientos, orden numérico ascendente por número de pieza.
// @Tags record
// @Produce json
// @Success 200 {array} string
// @Router /record/summary [get]
func summaryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.Summary())
	}
}

// labelsHandler expone las etiquetas de display para que la UI no las
// duplique.
func labelsHandler() http.HandlerFunc {
	type labels struct {
		Mobility   map[MobilityGrade]string `json:"mobility"`
		Fracture   map[FractureType]string  `json:"fracture"`
		Treatments map[TreatmentKey]string  `json:"treatments"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, labels{
			Mobility:   MobilityLabels,
			Fracture:   FractureLabels,
			Treatments: TreatmentLabels,
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
