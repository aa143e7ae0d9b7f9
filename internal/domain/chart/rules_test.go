package chart

import "testing"

func TestApplyTreatment_ExtractClearsConservatives(t *testing.T) {
	f := ToothFinding{Treatments: Treatments{
		Perio:   true,
		Endo:    true,
		Restore: true,
		Extract: false,
		Flap:    true,
	}}

	out, err := ApplyTreatment(f, TreatmentExtract, true)
	if err != nil {
		t.Fatalf("ApplyTreatment: %v", err)
	}

	want := Treatments{Perio: false, Endo: false, Restore: false, Extract: true, Flap: true}
	if out.Treatments != want {
		t.Fatalf("expected %+v, got %+v", want, out.Treatments)
	}

	// Desmarcar extract NO restaura perio/endo/restore.
	out, err = ApplyTreatment(out, TreatmentExtract, false)
	if err != nil {
		t.Fatalf("ApplyTreatment: %v", err)
	}
	want = Treatments{Extract: false, Flap: true}
	if out.Treatments != want {
		t.Fatalf("after extract off expected %+v, got %+v", want, out.Treatments)
	}
}

func TestApplyTreatment_OtherKeysHaveNoSideEffects(t *testing.T) {
	f := ToothFinding{}

	for _, key := range []TreatmentKey{TreatmentPerio, TreatmentEndo, TreatmentRestore, TreatmentFlap} {
		out, err := ApplyTreatment(f, key, true)
		if err != nil {
			t.Fatalf("ApplyTreatment(%s): %v", key, err)
		}

		on := 0
		for _, v := range []bool{out.Treatments.Perio, out.Treatments.Endo, out.Treatments.Restore, out.Treatments.Extract, out.Treatments.Flap} {
			if v {
				on++
			}
		}
		if on != 1 {
			t.Fatalf("%s: expected exactly one flag set, got %+v", key, out.Treatments)
		}
	}
}

func TestApplyTreatment_FlapIndependentOfExtract(t *testing.T) {
	f := ToothFinding{Treatments: Treatments{Extract: true}}

	out, err := ApplyTreatment(f, TreatmentFlap, true)
	if err != nil {
		t.Fatalf("ApplyTreatment: %v", err)
	}
	if !out.Treatments.Flap || !out.Treatments.Extract {
		t.Fatalf("flap and extract should coexist: %+v", out.Treatments)
	}
}

func TestApplyTreatment_UnknownKey(t *testing.T) {
	if _, err := ApplyTreatment(ToothFinding{}, "ortho", true); err != ErrUnknownTreatment {
		t.Fatalf("expected ErrUnknownTreatment, got %v", err)
	}
}

func TestApplyTreatment_DoesNotMutateInput(t *testing.T) {
	f := ToothFinding{Treatments: Treatments{Perio: true}}
	if _, err := ApplyTreatment(f, TreatmentExtract, true); err != nil {
		t.Fatalf("ApplyTreatment: %v", err)
	}
	if !f.Treatments.Perio || f.Treatments.Extract {
		t.Fatalf("input mutated: %+v", f.Treatments)
	}
}

func TestNormalizeTreatments(t *testing.T) {
	in := Treatments{Perio: true, Endo: true, Restore: true, Extract: true, Flap: true}
	out := NormalizeTreatments(in)
	want := Treatments{Extract: true, Flap: true}
	if out != want {
		t.Fatalf("expected %+v, got %+v", want, out)
	}

	// Sin extract, no toca nada.
	in = Treatments{Perio: true, Flap: true}
	if out := NormalizeTreatments(in); out != in {
		t.Fatalf("expected unchanged, got %+v", out)
	}
}

func TestClassifyPeriodontalDisease(t *testing.T) {
	cases := []struct {
		name      string
		boneLoss  BoneLossGrade
		furcation FurcationGrade
		want      PDClass
	}{
		{"defaults", "", "", PDNone},
		{"explicit none", BoneLossNone, FurcationNone, PDNone},
		{"bone loss under 25", BoneLossUnder25, FurcationNone, PD2},
		{"bone loss 25-50 alone", BoneLoss25To50, "", PD3},
		{"bone loss over 50", BoneLossOver50, "", PD4},
		{"furcation F1 alone", "", FurcationF1, PD2},
		{"furcation F2 alone", "", FurcationF2, PD3},
		{"furcation F3 alone", "", FurcationF3, PD4},
		// La prioridad es estricta: F3 domina aunque el hueso diga <25%.
		{"F3 dominates mild bone loss", BoneLossUnder25, FurcationF3, PD4},
		{"F2 dominates mild bone loss", BoneLossUnder25, FurcationF2, PD3},
		{"severe bone loss dominates F1", BoneLossOver50, FurcationF1, PD4},
	}

	for _, tc := range cases {
		got := ClassifyPeriodontalDisease(ToothFinding{BoneLoss: tc.boneLoss, Furcation: tc.furcation})
		if got != tc.want {
			t.Fatalf("%s: expected %q, got %q", tc.name, tc.want, got)
		}
	}
}
