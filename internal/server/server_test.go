package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenthands/gcsynth/internal/core"
	"github.com/agenthands/gcsynth/internal/core/fixtures"
	"github.com/agenthands/gcsynth/internal/core/model"
	"github.com/agenthands/gcsynth/internal/metrics"
	"github.com/agenthands/gcsynth/internal/store"
)

func setupServer(t *testing.T, st store.NetworkStore) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log, _ := logtest.NewNullLogger()
	reg := metrics.NewRegistry()
	c := core.NewCompiler(st, reg, log, core.Options{Provenance: true, Persist: true})
	return NewServer(c, st, reg, log).SetupRouter()
}

func do(r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	w := do(setupServer(t, nil), http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestCompile_Success(t *testing.T) {
	r := setupServer(t, store.NewMemoryStore())

	w := do(r, http.MethodPost, "/v1/compile", CompileRequest{Root: "toggle", Document: fixtures.Toggle()})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Root      model.ReactionNetworkModel `json:"root"`
		Generated []string                   `json:"generated"`
		Summary   struct {
			Reactions map[string]int `json:"reactions"`
			Circuits  [][]string     `json:"circuits"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "toggle", resp.Root.ID)
	assert.Equal(t, []string{"toggle"}, resp.Generated)
	assert.Equal(t, 2, resp.Summary.Reactions[string(model.ReactionProduction)])
	assert.Len(t, resp.Summary.Circuits, 1)
}

func TestCompile_ThenFetchNetwork(t *testing.T) {
	r := setupServer(t, store.NewMemoryStore())

	w := do(r, http.MethodPost, "/v1/compile", CompileRequest{Root: "top", Document: fixtures.ScenarioC(model.RefinementUseLocal)})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = do(r, http.MethodGet, "/v1/networks/reporter", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var m model.ReactionNetworkModel
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m))
	assert.Equal(t, "reporter", m.ID)
	assert.NotNil(t, m.FindPort("output__GFP"))

	w = do(r, http.MethodGet, "/v1/networks/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteNetwork_ForcesRegeneration(t *testing.T) {
	r := setupServer(t, store.NewMemoryStore())
	req := CompileRequest{Root: "top", Document: fixtures.ScenarioC(model.RefinementUseLocal)}

	require.Equal(t, http.StatusOK, do(r, http.MethodPost, "/v1/compile", req).Code)

	var resp struct {
		Generated []string `json:"generated"`
		Reused    []string `json:"reused"`
	}
	w := do(r, http.MethodPost, "/v1/compile", req)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"reporter"}, resp.Reused)

	w = do(r, http.MethodDelete, "/v1/networks/reporter", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	resp.Generated, resp.Reused = nil, nil
	w = do(r, http.MethodPost, "/v1/compile", req)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Reused)
	assert.Equal(t, []string{"reporter", "top"}, resp.Generated)
}

func TestGetNetwork_StoreDisabled(t *testing.T) {
	w := do(setupServer(t, nil), http.MethodGet, "/v1/networks/x", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestCompile_BadRequests(t *testing.T) {
	r := setupServer(t, nil)

	tests := []struct {
		name string
		body interface{}
	}{
		{"missing root", map[string]interface{}{"document": fixtures.ScenarioA()}},
		{"missing document", map[string]interface{}{"root": "expression"}},
		{"no modules", CompileRequest{Root: "expression", Document: &model.Document{}}},
		{"module without id", CompileRequest{Root: "x", Document: &model.Document{Modules: []model.ModuleDefinition{{}}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, http.MethodPost, "/v1/compile", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}

	req := httptest.NewRequest(http.MethodPost, "/v1/compile", strings.NewReader("{not json"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCompile_Failure(t *testing.T) {
	r := setupServer(t, nil)

	doc := fixtures.ScenarioC(model.RefinementUseLocal)
	doc.Modules = doc.Modules[:1]
	w := do(r, http.MethodPost, "/v1/compile", CompileRequest{Root: "top", Document: doc})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), core.ErrDanglingSubmodule.Error())

	w = do(r, http.MethodPost, "/v1/compile", CompileRequest{Root: "nowhere", Document: fixtures.ScenarioA()})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	r := setupServer(t, nil)
	do(r, http.MethodPost, "/v1/compile", CompileRequest{Root: "expression", Document: fixtures.ScenarioA()})

	w := do(r, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "gcsynth_compiles_total")
}
