package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"vet-dental-chart/internal/router"
)

func TestHTTP_EndToEnd_ChartingWorkflow(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	// 1) Cabecera del paciente
	{
		st, body := doReq(t, ts.URL, "PUT", "/record/patient", map[string]any{
			"ownerName": "Ana",
			"petName":   "Milo",
			"species":   "dog",
			"date":      "2024-06-01",
			"gender":    "MN",
			"neutered":  true,
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 put patient, got %d body=%s", st, string(body))
		}
	}

	// 2) Seleccionar el canino 104: lazy init + furcación no aplicable
	// (pieza unirradicular)
	{
		st, body := doReq(t, ts.URL, "POST", "/record/teeth/104/select", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 select, got %d body=%s", st, string(body))
		}

		var resp struct {
			Tooth struct {
				ID       string `json:"id"`
				Quadrant int    `json:"quadrant"`
			} `json:"tooth"`
			FurcationApplicable bool `json:"furcation_applicable"`
		}
		mustDecode(t, body, &resp)
		if resp.Tooth.ID != "104" || resp.Tooth.Quadrant != 1 {
			t.Fatalf("unexpected tooth: %+v", resp.Tooth)
		}
		if resp.FurcationApplicable {
			t.Fatal("104 is single-rooted: furcation must not be applicable")
		}
	}

	// 3) Cargar hallazgos de la pieza (reemplazo completo)
	{
		st, body := doReq(t, ts.URL, "PUT", "/record/teeth/104", map[string]any{
			"missing":    true,
			"treatments": map[string]bool{"perio": true},
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 update finding, got %d body=%s", st, string(body))
		}
	}

	// 4) Marcar extracción: la exclusividad apaga perio
	{
		st, body := doReq(t, ts.URL, "POST", "/record/teeth/104/treatments/extract", map[string]any{
			"value": true,
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 apply treatment, got %d body=%s", st, string(body))
		}

		var resp struct {
			Finding struct {
				Treatments struct {
					Perio   bool `json:"perio"`
					Extract bool `json:"extract"`
				} `json:"treatments"`
			} `json:"finding"`
		}
		mustDecode(t, body, &resp)
		if resp.Finding.Treatments.Perio || !resp.Finding.Treatments.Extract {
			t.Fatalf("exclusivity broken: %+v", resp.Finding.Treatments)
		}
	}

	// 5) Resumen de hallazgos
	{
		st, body := doReq(t, ts.URL, "GET", "/record/summary", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 summary, got %d body=%s", st, string(body))
		}

		var lines []string
		mustDecode(t, body, &lines)
		if len(lines) != 1 || lines[0] != "104- Missing; Tx: Extract" {
			t.Fatalf("unexpected summary: %v", lines)
		}
	}

	// 6) Guardar en historial
	var recordID string
	{
		st, body := doReq(t, ts.URL, "POST", "/records", nil)
		if st != http.StatusCreated {
			t.Fatalf("expected 201 save, got %d body=%s", st, string(body))
		}

		var resp struct {
			ID        string `json:"id"`
			Timestamp int64  `json:"timestamp"`
		}
		mustDecode(t, body, &resp)
		if resp.ID == "" || resp.Timestamp == 0 {
			t.Fatalf("missing id/timestamp: %s", string(body))
		}
		recordID = resp.ID
	}

	// 7) El historial lista la ficha guardada
	{
		st, body := doReq(t, ts.URL, "GET", "/records", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list records, got %d body=%s", st, string(body))
		}
		var items []map[string]any
		mustDecode(t, body, &items)
		if len(items) != 1 {
			t.Fatalf("expected 1 stored record, got %d", len(items))
		}
	}

	// 8) Mutar el editor y recargar la ficha guardada (wholesale)
	{
		st, _ := doReq(t, ts.URL, "PUT", "/record/teeth/104", map[string]any{
			"treatments": map[string]bool{},
		})
		if st != http.StatusOK {
			t.Fatal("update before reload failed")
		}

		st, body := doReq(t, ts.URL, "POST", "/records/"+recordID+"/load", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 load record, got %d body=%s", st, string(body))
		}

		st, body = doReq(t, ts.URL, "GET", "/record/summary", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 summary, got %d", st)
		}
		var lines []string
		mustDecode(t, body, &lines)
		if len(lines) != 1 || lines[0] != "104- Missing; Tx: Extract" {
			t.Fatalf("load did not restore saved state: %v", lines)
		}
	}

	// 9) Export / import round-trip
	var exported []byte
	{
		st, body := doReq(t, ts.URL, "GET", "/export", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 export, got %d", st)
		}

		var doc struct {
			Version    string          `json:"version"`
			ExportedAt string          `json:"exportedAt"`
			Record     json.RawMessage `json:"record"`
		}
		mustDecode(t, body, &doc)
		if doc.Version != "1.0" || doc.ExportedAt == "" {
			t.Fatalf("bad export document: %s", string(body))
		}
		exported = body
	}
	{
		st, body := doReqRaw(t, ts.URL, "POST", "/import", exported)
		if st != http.StatusOK {
			t.Fatalf("expected 200 import, got %d body=%s", st, string(body))
		}
	}

	// 10) Import inválido: 400 y la ficha activa queda intacta
	{
		st, _ := doReqRaw(t, ts.URL, "POST", "/import", []byte(`{"record":{"patientInfo":{}}}`))
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 invalid import, got %d", st)
		}

		st, body := doReq(t, ts.URL, "GET", "/record/summary", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 summary, got %d", st)
		}
		var lines []string
		mustDecode(t, body, &lines)
		if len(lines) != 1 || lines[0] != "104- Missing; Tx: Extract" {
			t.Fatalf("failed import altered state: %v", lines)
		}
	}

	// 11) Borrar del historial
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/records/"+recordID, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 delete, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "DELETE", "/records/"+recordID, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 double delete, got %d", st)
		}
	}
}

func TestHTTP_CatalogNavigation(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	var tooth struct {
		ID string `json:"id"`
	}

	// Orden de declaración: después de 110 viene 201, no 111.
	st, body := doReq(t, ts.URL, "GET", "/catalog/dog/teeth/110/next", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", st, string(body))
	}
	mustDecode(t, body, &tooth)
	if tooth.ID != "201" {
		t.Fatalf("after 110 expected 201, got %s", tooth.ID)
	}

	// Wrap circular hacia atrás.
	st, body = doReq(t, ts.URL, "GET", "/catalog/cat/teeth/101/previous", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", st, string(body))
	}
	mustDecode(t, body, &tooth)
	if tooth.ID != "409" {
		t.Fatalf("cat before 101 expected 409, got %s", tooth.ID)
	}

	// Hit-testing sobre coordenadas calibradas.
	st, body = doReq(t, ts.URL, "GET", "/catalog/dog/hit?x=35.7&y=14.1", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 hit, got %d body=%s", st, string(body))
	}
	mustDecode(t, body, &tooth)
	if tooth.ID != "104" {
		t.Fatalf("expected hit on 104, got %s", tooth.ID)
	}

	st, _ = doReq(t, ts.URL, "GET", "/catalog/dog/hit?x=50&y=50", nil)
	if st != http.StatusNoContent {
		t.Fatalf("expected 204 for miss, got %d", st)
	}

	st, _ = doReq(t, ts.URL, "GET", "/catalog/ferret", nil)
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 unknown species, got %d", st)
	}
}

// -------------------------
// helpers
// -------------------------

func doReq(t *testing.T, baseURL, method, path string, payload any) (int, []byte) {
	t.Helper()

	var raw []byte
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		raw = b
	}
	return doReqRaw(t, baseURL, method, path, raw)
}

func doReqRaw(t *testing.T, baseURL, method, path string, raw []byte) (int, []byte) {
	t.Helper()

	var body io.Reader
	if raw != nil {
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, baseURL+path, body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if raw != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, b
}

func mustDecode(t *testing.T, body []byte, v any) {
	t.Helper()
	if err := json.Unmarshal(body, v); err != nil {
		t.Fatalf("decode %s: %v", string(body), err)
	}
}
