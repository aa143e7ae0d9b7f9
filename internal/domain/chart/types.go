package chart

// MobilityGrade es el grado de movilidad de la pieza (M0 = estable).
type MobilityGrade string

const (
	MobilityM0 MobilityGrade = "M0"
	MobilityM1 MobilityGrade = "M1"
	MobilityM2 MobilityGrade = "M2"
	MobilityM3 MobilityGrade = "M3"
)

// FurcationGrade es el grado de exposición de furcación. Solo aplica a
// piezas multirradiculares (ver catalog.FurcationApplicable).
type FurcationGrade string

const (
	FurcationNone FurcationGrade = "none"
	FurcationF1   FurcationGrade = "F1"
	FurcationF2   FurcationGrade = "F2"
	FurcationF3   FurcationGrade = "F3"
)

// BoneLossGrade es la pérdida ósea radiográfica en rangos porcentuales.
type BoneLossGrade string

const (
	BoneLossNone    BoneLossGrade = "none"
	BoneLossUnder25 BoneLossGrade = "<25%"
	BoneLoss25To50  BoneLossGrade = "25-50%"
	BoneLossOver50  BoneLossGrade = ">50%"
)

// FractureType clasifica fracturas dentales. Vacío = sin fractura.
type FractureType string

const (
	FractureSimpleCrown      FractureType = "simple_crown"
	FractureComplicatedCrown FractureType = "complicated_crown"
	FractureSimpleRoot       FractureType = "simple_root"
	FractureComplicatedRoot  FractureType = "complicated_root"
	FractureOther            FractureType = "other"
)

// PDClass es la clase de enfermedad periodontal derivada de pérdida
// ósea y furcación. Vacío = sin clasificación.
type PDClass string

const (
	PDNone PDClass = ""
	PD2    PDClass = "PD2"
	PD3    PDClass = "PD3"
	PD4    PDClass = "PD4"
)

// TreatmentKey identifica cada uno de los cinco tratamientos.
type TreatmentKey string

const (
	TreatmentPerio   TreatmentKey = "perio"
	TreatmentEndo    TreatmentKey = "endo"
	TreatmentRestore TreatmentKey = "restore"
	TreatmentExtract TreatmentKey = "extract"
	TreatmentFlap    TreatmentKey = "flap"
)

// treatmentOrder fija el orden de iteración de los flags para el
// resumen (orden de declaración, no alfabético).
var treatmentOrder = []TreatmentKey{
	TreatmentPerio,
	TreatmentEndo,
	TreatmentRestore,
	TreatmentExtract,
	TreatmentFlap,
}

// Gender es el sexo del paciente tal como lo registra la ficha.
// @Enum M, F, MN, FS
type Gender string

const (
	GenderUnset        Gender = ""
	GenderMale         Gender = "M"
	GenderFemale       Gender = "F"
	GenderMaleNeutered Gender = "MN"
	GenderFemaleSpayed Gender = "FS"
)

// Display labels que la UI no debería duplicar.
var (
	MobilityLabels = map[MobilityGrade]string{
		MobilityM0: "0(stable)",
		MobilityM1: "1(slight)",
		MobilityM2: "2(moderate)",
		MobilityM3: "3(severe)",
	}

	FractureLabels = map[FractureType]string{
		FractureSimpleCrown:      "Simple Crown",
		FractureComplicatedCrown: "Complicated Crown",
		FractureSimpleRoot:       "Simple Root",
		FractureComplicatedRoot:  "Complicated Root",
		FractureOther:            "Other",
	}

	TreatmentLabels = map[TreatmentKey]string{
		TreatmentPerio:   "Periodontics",
		TreatmentEndo:    "Endodontics",
		TreatmentRestore: "Restorations",
		TreatmentExtract: "Extraction",
		TreatmentFlap:    "Flap Surgery",
	}
)
