package records

import (
	"context"
	"errors"
	"testing"
	"time"

	"vet-dental-chart/internal/domain/chart"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID  map[string]StoredRecord
	order []string
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]StoredRecord{}}
}

func (r *testRepo) Save(ctx context.Context, sr StoredRecord) error {
	if sr.ID == "" {
		return errors.New("repo: id required")
	}
	if _, ok := r.byID[sr.ID]; ok {
		return errors.New("repo: already exists")
	}
	r.byID[sr.ID] = sr
	r.order = append(r.order, sr.ID)
	return nil
}

func (r *testRepo) List(ctx context.Context) ([]StoredRecord, error) {
	out := make([]StoredRecord, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (StoredRecord, error) {
	sr, ok := r.byID[id]
	if !ok {
		return StoredRecord{}, ErrNotFound
	}
	return sr, nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
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

func newTestService(repo Repository) (*Service, *time.Time) {
	svc := NewService(repo)
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	return svc, &now
}

func sampleRecord(pet string) chart.PatientRecord {
	return chart.PatientRecord{
		PatientInfo: chart.PatientInfo{PetName: pet, Species: "dog"},
		TeethData:   chart.Store{"104": {Missing: true}},
	}
}

func TestSave_AssignsIDAndTimestamp(t *testing.T) {
	svc, _ := newTestService(newTestRepo())

	sr, err := svc.Save(context.Background(), sampleRecord("Milo"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if sr.ID == "" {
		t.Fatal("expected generated id")
	}
	if sr.Timestamp != time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC).UnixMilli() {
		t.Fatalf("unexpected timestamp %d", sr.Timestamp)
	}
	if !sr.TeethData["104"].Missing {
		t.Fatal("teeth data not captured")
	}
}

func TestSave_DeepCopiesRecord(t *testing.T) {
	svc, _ := newTestService(newTestRepo())

	rec := sampleRecord("Milo")
	sr, err := svc.Save(context.Background(), rec)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	// Mutar la ficha activa después del guardado no toca lo guardado.
	f := rec.TeethData["104"]
	f.Missing = false
	f.Treatments.Extract = true
	rec.TeethData["104"] = f
	rec.TeethData["205"] = chart.ToothFinding{}

	if !sr.TeethData["104"].Missing || sr.TeethData["104"].Treatments.Extract {
		t.Fatal("stored record shares state with live record")
	}
	if _, ok := sr.TeethData["205"]; ok {
		t.Fatal("stored record shares map with live record")
	}
}

func TestList_MostRecentFirst(t *testing.T) {
	repo := newTestRepo()
	svc, now := newTestService(repo)

	first, _ := svc.Save(context.Background(), sampleRecord("Milo"))
	*now = now.Add(time.Minute)
	second, _ := svc.Save(context.Background(), sampleRecord("Luna"))

	items, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 records, got %d", len(items))
	}
	if items[0].ID != second.ID || items[1].ID != first.ID {
		t.Fatalf("expected most-recent-first, got %s then %s", items[0].ID, items[1].ID)
	}
}

func TestDelete(t *testing.T) {
	repo := newTestRepo()
	svc, _ := newTestService(repo)

	sr, _ := svc.Save(context.Background(), sampleRecord("Milo"))

	if err := svc.Delete(context.Background(), sr.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.GetByID(context.Background(), sr.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := svc.Delete(context.Background(), sr.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on double delete, got %v", err)
	}
	if err := svc.Delete(context.Background(), "  "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank id, got %v", err)
	}
}

func TestStoredRecord_RecordDeepCopies(t *testing.T) {
	sr := StoredRecord{
		ID:        "r1",
		Patient:   chart.PatientInfo{PetName: "Milo"},
		TeethData: chart.Store{"104": {Missing: true}},
	}

	rec := sr.Record()
	f := rec.TeethData["104"]
	f.Missing = false
	rec.TeethData["104"] = f

	if !sr.TeethData["104"].Missing {
		t.Fatal("Record() must deep-copy: history mutated through loaded record")
	}
}
