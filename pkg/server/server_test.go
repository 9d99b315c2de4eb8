package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/transitlab/netlint/pkg/cache"
	"github.com/transitlab/netlint/pkg/report"
)

const sampleDoc = `{
  "ROADS": {
    "NODES": {
      "A": {"id": "A", "position": [0, 0]},
      "B": {"id": "B", "position": [100, 0]},
      "C": {"id": "C", "position": [100, 100]},
      "D": {"id": "D", "position": [200, 100]}
    },
    "SECTIONS": {
      "s1": {"id": "s1", "upstream": "A", "downstream": "B", "length": 100},
      "s2": {"id": "s2", "upstream": "B", "downstream": "C", "length": 100},
      "s3": {"id": "s3", "upstream": "C", "downstream": "A", "length": 141},
      "s4": {"id": "s4", "upstream": "C", "downstream": "D", "length": 100}
    },
    "STOPS": {"st1": {"id": "st1", "section": "s1", "absolute_position": [50, 0]}},
    "ZONES": {"Z1": {"id": "Z1", "sections": ["s1"], "contour": [[0,0],[1,0],[1,1]]}}
  }
}`

func newTestServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()
	logger := log.New(io.Discard)
	srv := New(report.NewMemoryStore(), cache.NewNullCache(), logger)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return srv, ts
}

func TestHealthz(t *testing.T) {
	_, ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestCreateAndGetReport(t *testing.T) {
	_, ts := newTestServer(t)

	resp, err := http.Post(ts.URL+"/v1/reports", "application/json", strings.NewReader(sampleDoc))
	if err != nil {
		t.Fatalf("POST /v1/reports: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("status = %d, want 201: %s", resp.StatusCode, body)
	}

	var rep report.Report
	if err := json.NewDecoder(resp.Body).Decode(&rep); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if rep.ID == "" {
		t.Fatal("report has no id")
	}
	if rep.Counts.Nodes != 4 || rep.Counts.Sections != 4 {
		t.Errorf("Counts = %+v, want 4 nodes, 4 sections", rep.Counts)
	}
	if len(rep.Topology.DeadEnds) != 1 || rep.Topology.DeadEnds[0] != "D" {
		t.Errorf("DeadEnds = %v, want [D]", rep.Topology.DeadEnds)
	}

	// Fetch the stored report by id.
	resp2, err := http.Get(ts.URL + "/v1/reports/" + rep.ID)
	if err != nil {
		t.Fatalf("GET report: %v", err)
	}
	defer resp2.Body.Close()

	if resp2.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp2.StatusCode)
	}
	var got report.Report
	if err := json.NewDecoder(resp2.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.ID != rep.ID || got.NetworkHash != rep.NetworkHash {
		t.Errorf("fetched report %s/%s, want %s/%s", got.ID, got.NetworkHash, rep.ID, rep.NetworkHash)
	}
}

func TestGetReportNotFound(t *testing.T) {
	_, ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/v1/reports/nope")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if body.Error.Code != "REPORT_NOT_FOUND" {
		t.Errorf("error code = %q, want REPORT_NOT_FOUND", body.Error.Code)
	}
}

func TestCreateReportBadInput(t *testing.T) {
	_, ts := newTestServer(t)

	tests := []struct {
		name string
		body string
	}{
		{"Empty", ""},
		{"Truncated", `{"ROADS": `},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Post(ts.URL+"/v1/reports", "application/json", strings.NewReader(tt.body))
			if err != nil {
				t.Fatalf("POST: %v", err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", resp.StatusCode)
			}
		})
	}
}

func TestCreateReportUsesCache(t *testing.T) {
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	srv := New(report.NewMemoryStore(), fc, log.New(io.Discard))
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	post := func() report.Report {
		resp, err := http.Post(ts.URL+"/v1/reports", "application/json", bytes.NewReader([]byte(sampleDoc)))
		if err != nil {
			t.Fatalf("POST: %v", err)
		}
		defer resp.Body.Close()
		var rep report.Report
		if err := json.NewDecoder(resp.Body).Decode(&rep); err != nil {
			t.Fatalf("decode: %v", err)
		}
		return rep
	}

	first := post()
	second := post()

	// The second request is served from cache and returns the same report.
	if first.ID != second.ID {
		t.Errorf("cached request returned new report id: %s vs %s", first.ID, second.ID)
	}
	if first.NetworkHash != second.NetworkHash {
		t.Error("hashes differ for identical input")
	}
}
