package chart

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Summarize arma la línea de resumen de una pieza:
//
//	"{id}- {hallazgos}; Tx: {tratamientos}"
//
// Los hallazgos se agregan en orden fijo (missing, movilidad,
// furcación, clase PD derivada, recesión, bolsa, pérdida ósea,
// fractura, rx) y los tratamientos en orden de declaración. Si ambos
// listados quedan vacíos devuelve ok=false: un hallazgo con todo en
// default existe en el store pero no produce línea.
func Summarize(toothID string, f ToothFinding) (line string, ok bool) {
	var findings []string

	if f.Missing {
		findings = append(findings, "Missing")
	}
	if f.Mobility != "" && f.Mobility != MobilityM0 {
		findings = append(findings, fmt.Sprintf("Mobility %s", f.Mobility))
	}
	if f.Furcation != "" && f.Furcation != FurcationNone {
		findings = append(findings, fmt.Sprintf("Furcation %s", f.Furcation))
	}

	// La clase PD derivada es un tag más, aparte de los tags crudos de
	// furcación y pérdida ósea: los tres pueden coexistir.
	if pd := ClassifyPeriodontalDisease(f); pd != PDNone {
		findings = append(findings, string(pd))
	}

	if f.Recession != "" {
		findings = append(findings, fmt.Sprintf("Recession %s", f.Recession))
	}
	if f.Pocket != "" {
		findings = append(findings, fmt.Sprintf("Pocket %s", f.Pocket))
	}
	if f.BoneLoss != "" && f.BoneLoss != BoneLossNone {
		findings = append(findings, fmt.Sprintf("Bone Loss %s", f.BoneLoss))
	}
	if f.FractureType != "" {
		findings = append(findings, fmt.Sprintf("Fracture: %s", f.FractureType))
	}
	if f.XRay != "" {
		findings = append(findings, fmt.Sprintf("X-ray: %s", f.XRay))
	}

	var treatments []string
	for _, k := range treatmentOrder {
		on := false
		switch k {
		case TreatmentPerio:
			on = f.Treatments.Perio
		case TreatmentEndo:
			on = f.Treatments.Endo
		case TreatmentRestore:
			on = f.Treatments.Restore
		case TreatmentExtract:
			on = f.Treatments.Extract
		case TreatmentFlap:
			on = f.Treatments.Flap
		}
		if on {
			treatments = append(treatments, summaryTreatmentLabels[k])
		}
	}

	if len(findings) == 0 && len(treatments) == 0 {
		return "", false
	}

	var b strings.Builder
	b.WriteString(toothID)
	b.WriteString("-")
	if len(findings) > 0 {
		b.WriteString(" ")
		b.WriteString(strings.Join(findings, ", "))
	}
	if len(treatments) > 0 {
		if len(findings) > 0 {
			b.WriteString("; Tx: ")
		} else {
			b.WriteString(" Tx: ")
		}
		b.WriteString(strings.Join(treatments, ", "))
	}
	return b.String(), true
}

// summaryTreatmentLabels son las formas cortas del resumen (distintas
// de TreatmentLabels, que son las etiquetas largas del formulario).
var summaryTreatmentLabels = map[TreatmentKey]string{
	TreatmentPerio:   "Perio",
	TreatmentEndo:    "Endo",
	TreatmentRestore: "Restore",
	TreatmentExtract: "Extract",
	TreatmentFlap:    "Flap",
}

// SummarizeAll junta una línea por pieza con hallazgos (saltando las
// vacías) y ordena ascendente por el número de pieza interpretado como
// entero, no lexicográficamente.
func SummarizeAll(s Store) []string {
	type entry struct {
		id   string
		num  int
		line string
	}

	entries := make([]entry, 0, len(s))
	for id, f := range s {
		line, ok := Summarize(id, f)
		if !ok {
			continue
		}
		n, _ := strconv.Atoi(id)
		entries = append(entries, entry{id: id, num: n, line: line})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].num != entries[j].num {
			return entries[i].num < entries[j].num
		}
		return entries[i].id < entries[j].id
	})

	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.line)
	}
	return out
}
