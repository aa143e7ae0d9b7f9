package chart

import "errors"

var ErrUnknownTreatment = errors.New("unknown treatment")

// ApplyTreatment setea un flag de tratamiento aplicando la regla de
// exclusividad: marcar extract apaga perio/endo/restore en el mismo
// update (flap queda independiente). Desmarcar extract NO restaura
// nada; el clínico debe volver a marcar lo que corresponda.
//
// Todas las escrituras de tratamientos deben pasar por acá (o por
// NormalizeTreatments) para que el dato nunca quede con extract=true
// junto a perio/endo/restore=true; deshabilitar controles en la UI es
// un derivado, no la garantía.
func ApplyTreatment(f ToothFinding, key TreatmentKey, value bool) (ToothFinding, error) {
	out := f.Clone()
	switch key {
	case TreatmentPerio:
		out.Treatments.Perio = value
	case TreatmentEndo:
		out.Treatments.Endo = value
	case TreatmentRestore:
		out.Treatments.Restore = value
	case TreatmentFlap:
		out.Treatments.Flap = value
	case TreatmentExtract:
		out.Treatments.Extract = value
		if value {
			out.Treatments.Perio = false
			out.Treatments.Endo = false
			out.Treatments.Restore = false
		}
	default:
		return f, ErrUnknownTreatment
	}
	return out, nil
}

// NormalizeTreatments repara el invariante de exclusividad sobre un
// Treatments completo (p.ej. en un reemplazo wholesale del hallazgo).
func NormalizeTreatments(t Treatments) Treatments {
	if t.Extract {
		t.Perio = false
		t.Endo = false
		t.Restore = false
	}
	return t
}

// ClassifyPeriodontalDisease deriva la clase de enfermedad periodontal
// a partir de pérdida ósea y furcación, en este orden estricto de
// prioridad (gana la primera regla que matchea):
//
//  1. boneLoss >50%  o furcación F3 -> PD4
//  2. boneLoss 25-50% o furcación F2 -> PD3
//  3. boneLoss <25%  o furcación F1 -> PD2
//  4. si no, sin clasificación.
//
// La prioridad es asimétrica a propósito: F3 con boneLoss <25% es PD4,
// no PD2. No "arreglar" sin confirmación clínica.
func ClassifyPeriodontalDisease(f ToothFinding) PDClass {
	switch {
	case f.BoneLoss == BoneLossOver50 || f.Furcation == FurcationF3:
		return PD4
	case f.BoneLoss == BoneLoss25To50 || f.Furcation == FurcationF2:
		return PD3
	case f.BoneLoss == BoneLossUnder25 || f.Furcation == FurcationF1:
		return PD2
	default:
		return PDNone
	}
}
