package catalog

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router) {
	r.Route("/catalog/{species}", func(cr chi.Router) {
		cr.Get("/", listTeethHandler())
		cr.Get("/hit", hitHandler())
		cr.Get("/teeth/{toothID}", getToothHandler())
		cr.Get("/teeth/{toothID}/next", stepToothHandler(Next))
		cr.Get("/teeth/{toothID}/previous", stepToothHandler(Previous))
	})
}

// toothResponse representa una pieza del mapa dental devuelta por la API.
type toothResponse struct {
	ID          string  `json:"id"`
	Label       string  `json:"label"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	IsMaxillary bool    `json:"is_maxillary"`
	Quadrant    int     `json:"quadrant"`

	// FurcationApplicable indica si el formulario debe mostrar el
	// control de furcación para esta pieza.
	FurcationApplicable bool `json:"furcation_applicable"`
}

// listTeethHandler godoc
// @Summary Mapa dental por especie
// @Description Devuelve la lista ordenada de piezas para la especie (dog o cat), en el orden de navegación del chart.
// @Tags catalog
// @Produce json
// @Param species path string true "Especie (dog|cat)"
// @Success 200 {array} toothResponse
// @Failure 400 {string} string "unknown species"
// @Router /catalog/{species} [get]
func listTeethHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sp, err := ParseSpecies(chi.URLParam(r, "species"))
		if err != nil {
			http.Error(w, "unknown species", http.StatusBadRequest)
			return
		}

		teeth, err := ForSpecies(sp)
		if err != nil {
			http.Error(w, "unknown species", http.StatusBadRequest)
			return
		}

		out := make([]toothResponse, 0, len(teeth))
		for _, t := range teeth {
			out = append(out, toToothResponse(sp, t))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getToothHandler godoc
// @Summary Detalle de una pieza
// @Tags catalog
// @Produce json
// @Param species path string true "Especie (dog|cat)"
// @Param toothID path string true "Número Triadan"
// @Success 200 {object} toothResponse
// @Failure 404 {string} string "tooth not found"
// @Router /catalog/{species}/teeth/{toothID} [get]
func getToothHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sp, err := ParseSpecies(chi.URLParam(r, "species"))
		if err != nil {
			http.Error(w, "unknown species", http.StatusBadRequest)
			return
		}

		t, err := Get(sp, chi.URLParam(r, "toothID"))
		if err != nil {
			writeLookupError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toToothResponse(sp, t))
	}
}

// stepToothHandler sirve next/previous con wrap circular en orden de
// declaración del catálogo (no orden numérico).
func stepToothHandler(stepFn func(Species, string) (ToothDefinition, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sp, err := ParseSpecies(chi.URLParam(r, "species"))
		if err != nil {
			http.Error(w, "unknown species", http.StatusBadRequest)
			return
		}

		t, err := stepFn(sp, chi.URLParam(r, "toothID"))
		if err != nil {
			writeLookupError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toToothResponse(sp, t))
	}
}

// hitHandler godoc
// @Summary Resolver click sobre el chart
// @Description Resuelve coordenadas normalizadas (0-100) a la pieza más cercana. 204 si el click no cae sobre ninguna pieza.
// @Tags catalog
// @Produce json
// @Param species path string true "Especie (dog|cat)"
// @Param x query number true "X en % del ancho del chart"
// @Param y query number true "Y en % del alto del chart"
// @Success 200 {object} toothResponse
// @Success 204 {string} string "sin pieza bajo el click"
// @Failure 400 {string} string "invalid coordinates"
// @Router /catalog/{species}/hit [get]
func hitHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sp, err := ParseSpecies(chi.URLParam(r, "species"))
		if err != nil {
			http.Error(w, "unknown species", http.StatusBadRequest)
			return
		}

		x, errX := strconv.ParseFloat(r.URL.Query().Get("x"), 64)
		y, errY := strconv.ParseFloat(r.URL.Query().Get("y"), 64)
		if errX != nil || errY != nil {
			http.Error(w, "invalid coordinates", http.StatusBadRequest)
			return
		}

		t, ok := Hit(sp, x, y)
		if !ok {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		writeJSON(w, http.StatusOK, toToothResponse(sp, t))
	}
}

func toToothResponse(sp Species, t ToothDefinition) toothResponse {
	return toothResponse{
		ID:                  t.ID,
		Label:               t.Label,
		X:                   t.X,
		Y:                   t.Y,
		IsMaxillary:         t.IsMaxillary,
		Quadrant:            t.Quadrant,
		FurcationApplicable: FurcationApplicable(sp, t.ID),
	}
}

func writeLookupError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrUnknownTooth):
		http.Error(w, "tooth not found", http.StatusNotFound)
	case errors.Is(err, ErrUnknownSpecies):
		http.Error(w, "unknown species", http.StatusBadRequest)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
