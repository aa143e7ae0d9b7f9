package chart

import (
	"errors"
	"sync"
	"time"

	"vet-dental-chart/internal/domain/catalog"
)

var ErrInvalidInput = errors.New("invalid input")

// Service es el editor de la ficha activa: mantiene el único
// PatientRecord en memoria (hay exactamente un editor, pero los
// handlers HTTP pueden concurrir, de ahí el mutex). La ficha se
// reemplaza wholesale en load/import, nunca se mergea.
type Service struct {
	mu     sync.RWMutex
	record PatientRecord
	now    func() time.Time
}

func NewService() *Service {
	s := &Service{now: time.Now}
	s.record = s.emptyRecord()
	return s
}

func (s *Service) emptyRecord() PatientRecord {
	return PatientRecord{
		PatientInfo: PatientInfo{
			Date:    s.now().Format("2006-01-02"),
			Species: catalog.SpeciesDog,
		},
		TeethData: make(Store),
	}
}

// Snapshot devuelve una copia profunda de la ficha activa (para
// guardar, exportar o servir sin exponer el estado interno).
func (s *Service) Snapshot() PatientRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.record.Clone()
}

// Replace sustituye la ficha completa (load de historial o import).
func (s *Service) Replace(r PatientRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r.TeethData == nil {
		r.TeethData = make(Store)
	}
	s.record = r.Clone()
}

func (s *Service) PatientInfo() PatientInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.record.PatientInfo
}

func (s *Service) SetPatientInfo(info PatientInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record.PatientInfo = info
}

// ActiveSpecies es la especie de la ficha activa (decide catálogo y
// lista de exclusión de furcación).
func (s *Service) ActiveSpecies() catalog.Species {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.record.PatientInfo.Species == catalog.SpeciesCat {
		return catalog.SpeciesCat
	}
	return catalog.SpeciesDog
}

// SelectTooth es el click del clínico sobre una pieza: valida el id
// contra el catálogo activo y materializa el hallazgo default si no
// existía (lazy init).
func (s *Service) SelectTooth(toothID string) (catalog.ToothDefinition, ToothFinding, error) {
	sp := s.ActiveSpecies()
	def, err := catalog.Get(sp, toothID)
	if err != nil {
		return catalog.ToothDefinition{}, ToothFinding{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return def, s.record.TeethData.GetOrInit(toothID).Clone(), nil
}

// Finding es la lectura efectiva: hallazgo almacenado o vista default,
// sin materializar la entrada.
func (s *Service) Finding(toothID string) (f ToothFinding, stored bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, stored = s.record.TeethData.Effective(toothID)
	return f.Clone(), stored
}

// Teeth devuelve una copia del store completo.
func (s *Service) Teeth() Store {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.record.TeethData.Clone()
}

// UpdateTooth reemplaza por completo el hallazgo de la pieza. No
// valida campos (el store es permisivo por diseño), pero sí normaliza
// los tratamientos: un reemplazo wholesale también es una mutación de
// tratamientos y el invariante de exclusividad debe sostenerse.
func (s *Service) UpdateTooth(toothID string, f ToothFinding) error {
	if toothID == "" {
		return ErrInvalidInput
	}

	f = f.Clone()
	f.Treatments = NormalizeTreatments(f.Treatments)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.record.TeethData.Update(toothID, f)
	return nil
}

// ApplyTreatment setea un flag de tratamiento de la pieza pasando por
// la regla de exclusividad. Materializa el hallazgo si no existía.
func (s *Service) ApplyTreatment(toothID string, key TreatmentKey, value bool) (ToothFinding, error) {
	if toothID == "" {
		return ToothFinding{}, ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := ApplyTreatment(s.record.TeethData.GetOrInit(toothID), key, value)
	if err != nil {
		return ToothFinding{}, err
	}
	s.record.TeethData.Update(toothID, f)
	return f.Clone(), nil
}

// Summary devuelve el resumen de hallazgos de toda la ficha, una línea
// por pieza, ordenado numéricamente por número de pieza.
func (s *Service) Summary() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return SummarizeAll(s.record.TeethData)
}
