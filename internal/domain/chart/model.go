package chart

import "vet-dental-chart/internal/domain/catalog"

// Treatments son los cinco flags de tratamiento de una pieza. Una vez
// que existe un ToothFinding, los cinco campos están siempre definidos
// (nunca "ausentes"); la regla de exclusividad vive en rules.go.
type Treatments struct {
	Perio   bool `json:"perio"`
	Endo    bool `json:"endo"`
	Restore bool `json:"restore"`
	Extract bool `json:"extract"`
	Flap    bool `json:"flap"`
}

// ToothFinding son los hallazgos y tratamientos de una pieza.
//
// Los nombres JSON son el formato canónico de intercambio (export,
// import, persistencia) y no deben cambiarse. Recession y Pocket se
// guardan como texto libre: esta capa no valida valores; los rangos
// (1-20 mm, índices 0-3) los impone la capa de presentación.
type ToothFinding struct {
	Missing      bool           `json:"missing,omitempty"`
	Mobility     MobilityGrade  `json:"mobile,omitempty"`
	Furcation    FurcationGrade `json:"furcation,omitempty"`
	FractureType FractureType   `json:"fractureType,omitempty"`
	Recession    string         `json:"recession,omitempty"`
	Pocket       string         `json:"pocket,omitempty"`
	BoneLoss     BoneLossGrade  `json:"boneLoss,omitempty"`
	Gingivitis   *int           `json:"gingivitis,omitempty"`
	Calculus     *int           `json:"calculus,omitempty"`
	XRay         string         `json:"xrayOne,omitempty"`

	Treatments Treatments `json:"treatments"`
}

// Clone devuelve una copia profunda del hallazgo (los índices son
// punteros y no deben compartirse entre registros).
func (f ToothFinding) Clone() ToothFinding {
	out := f
	if f.Gingivitis != nil {
		v := *f.Gingivitis
		out.Gingivitis = &v
	}
	if f.Calculus != nil {
		v := *f.Calculus
		out.Calculus = &v
	}
	return out
}

// Store mapea número Triadan -> hallazgos de esa pieza. Las entradas
// se crean en la primera interacción con la pieza y nunca se borran
// automáticamente: un hallazgo puede existir con todo en default.
type Store map[string]ToothFinding

// GetOrInit devuelve el hallazgo de la pieza, materializándolo con
// defaults (treatments todos false, nada más seteado) si no existía.
// No toca ninguna otra entrada.
func (s Store) GetOrInit(toothID string) ToothFinding {
	if f, ok := s[toothID]; ok {
		return f
	}
	f := ToothFinding{}
	s[toothID] = f
	return f
}

// Effective es la lectura de dos niveles: devuelve el hallazgo
// almacenado si existe, o la vista default SIN materializar la
// entrada. ok indica si la entrada existe en el store.
func (s Store) Effective(toothID string) (f ToothFinding, ok bool) {
	f, ok = s[toothID]
	return f, ok
}

// Update reemplaza por completo el hallazgo de la pieza (sin merge
// parcial: el caller entrega el ToothFinding completo). No valida
// nada: el store acepta y persiste cualquier valor escrito.
func (s Store) Update(toothID string, f ToothFinding) {
	s[toothID] = f
}

// Clone devuelve una copia profunda del store.
func (s Store) Clone() Store {
	out := make(Store, len(s))
	for id, f := range s {
		out[id] = f.Clone()
	}
	return out
}

// PatientInfo es la cabecera de la ficha. Sin invariantes cruzados:
// species solo decide qué catálogo y qué lista de furcación aplican.
type PatientInfo struct {
	OwnerName    string          `json:"ownerName"`
	PetName      string          `json:"petName"`
	RecordNumber string          `json:"recordNumber"`
	Date         string          `json:"date"` // YYYY-MM-DD
	Species      catalog.Species `json:"species"`
	Breed        string          `json:"breed"`
	Age          string          `json:"age"`
	Gender       Gender          `json:"gender"`
	Neutered     bool            `json:"neutered"`
}

// PatientRecord es la unidad de guardado, carga, export e import.
type PatientRecord struct {
	PatientInfo PatientInfo `json:"patientInfo"`
	TeethData   Store       `json:"teethData"`
}

func (r PatientRecord) Clone() PatientRecord {
	return PatientRecord{
		PatientInfo: r.PatientInfo,
		TeethData:   r.TeethData.Clone(),
	}
}
