package records

import "context"

// Repository persiste el historial de fichas guardadas. List devuelve
// en orden de inserción; el service lo invierte para mostrar la más
// reciente primero.
type Repository interface {
	Save(ctx context.Context, r StoredRecord) error
	List(ctx context.Context) ([]StoredRecord, error)
	GetByID(ctx context.Context, id string) (StoredRecord, error)
	Delete(ctx context.Context, id string) error
}
