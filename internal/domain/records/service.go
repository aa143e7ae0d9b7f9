package records

import (
	"context"
	"errors"
	"strings"
	"time"

	"vet-dental-chart/internal/domain/chart"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("record not found")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// Save guarda una copia profunda de la ficha en el historial. La ficha
// activa puede seguir mutando después sin tocar lo guardado.
func (s *Service) Save(ctx context.Context, r chart.PatientRecord) (StoredRecord, error) {
	snap := r.Clone()
	if snap.TeethData == nil {
		snap.TeethData = make(chart.Store)
	}

	sr := StoredRecord{
		ID:        uuid.NewString(),
		Timestamp: s.now().UnixMilli(),
		Patient:   snap.PatientInfo,
		TeethData: snap.TeethData,
	}

	if err := s.repo.Save(ctx, sr); err != nil {
		return StoredRecord{}, err
	}
	return sr, nil
}

// List devuelve el historial con la ficha más reciente primero.
func (s *Service) List(ctx context.Context) ([]StoredRecord, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	// El repo persiste en orden de inserción; acá se invierte para la
	// vista de historial.
	out := make([]StoredRecord, 0, len(items))
	for i := len(items) - 1; i >= 0; i-- {
		out = append(out, items[i])
	}
	return out, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (StoredRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return StoredRecord{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}
	return s.repo.Delete(ctx, id)
}
