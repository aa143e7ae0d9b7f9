package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"

	"vet-dental-chart/internal/domain/chart"
	"vet-dental-chart/internal/domain/records"
)

// RecordsRepo persiste el historial de fichas en Postgres. La cabecera
// del paciente y el mapa de hallazgos van como JSONB (el formato
// canónico de intercambio), con el id y el timestamp como columnas.
//
// Esquema esperado:
//
//	CREATE TABLE dental_records (
//	    id           TEXT PRIMARY KEY,
//	    ts           BIGINT NOT NULL,
//	    patient_info JSONB NOT NULL,
//	    teeth_data   JSONB NOT NULL
//	);
type RecordsRepo struct {
	db *sql.DB
}

func NewRecordsRepo(db *sql.DB) *RecordsRepo {
	return &RecordsRepo{db: db}
}

func (r *RecordsRepo) Save(ctx context.Context, sr records.StoredRecord) error {
	if sr.ID == "" {
		return errors.New("record id required")
	}

	patient, err := json.Marshal(sr.Patient)
	if err != nil {
		return err
	}
	teeth, err := json.Marshal(sr.TeethData)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO dental_records (id, ts, patient_info, teeth_data)
		VALUES ($1, $2, $3, $4)
	`,
		sr.ID,
		sr.Timestamp,
		patient,
		teeth,
	)
	return err
}

func (r *RecordsRepo) List(ctx context.Context) ([]records.StoredRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, ts, patient_info, teeth_data
		FROM dental_records
		ORDER BY ts ASC, id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]records.StoredRecord, 0)
	for rows.Next() {
		sr, err := scanRecord(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, sr)
	}
	return out, rows.Err()
}

func (r *RecordsRepo) GetByID(ctx context.Context, id string) (records.StoredRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return records.StoredRecord{}, records.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, ts, patient_info, teeth_data
		FROM dental_records
		WHERE id = $1
	`, id)

	sr, err := scanRecord(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return records.StoredRecord{}, records.ErrNotFound
	}
	return sr, err
}

func (r *RecordsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM dental_records WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return records.ErrNotFound
	}
	return nil
}

func scanRecord(scan func(dest ...any) error) (records.StoredRecord, error) {
	var (
		sr      records.StoredRecord
		patient []byte
		teeth   []byte
	)
	if err := scan(&sr.ID, &sr.Timestamp, &patient, &teeth); err != nil {
		return records.StoredRecord{}, err
	}

	if err := json.Unmarshal(patient, &sr.Patient); err != nil {
		return records.StoredRecord{}, err
	}
	sr.TeethData = make(chart.Store)
	if err := json.Unmarshal(teeth, &sr.TeethData); err != nil {
		return records.StoredRecord{}, err
	}
	return sr, nil
}
