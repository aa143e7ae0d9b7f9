package memory

import (
	"context"
	"errors"
	"sync"

	"vet-dental-chart/internal/domain/records"
)

// recordsRepo guarda el historial en memoria preservando el orden de
// inserción (order), que es el orden de persistencia del historial.
type recordsRepo struct {
	mu    sync.RWMutex
	byID  map[string]records.StoredRecord
	order []string
}

func NewRecordsRepo() records.Repository {
	return &recordsRepo{
		byID: make(map[string]records.StoredRecord),
	}
}

func (r *recordsRepo) Save(ctx context.Context, sr records.StoredRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if sr.ID == "" {
		return errors.New("record id required")
	}
	if _, exists := r.byID[sr.ID]; exists {
		return errors.New("record already exists")
	}

	r.byID[sr.ID] = sr
	r.order = append(r.order, sr.ID)
	return nil
}

func (r *recordsRepo) List(ctx context.Context) ([]records.StoredRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]records.StoredRecord, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}

func (r *recordsRepo) GetByID(ctx context.Context, id string) (records.StoredRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sr, ok := r.byID[id]
	if !ok {
		return records.StoredRecord{}, records.ErrNotFound
	}
	return sr, nil
}

func (r *recordsRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return records.ErrNotFound
	}
	delete(r.byID, id)

	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
