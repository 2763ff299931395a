package vizserver

import (
	"bytes"
	"encoding/json"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdrpinto/astar-maze/maze"
)

func newTestServer() *Server {
	gin.SetMode(gin.TestMode)
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return New(Config{CellSize: 8, WallDensity: 0.3, Logger: logrus.NewEntry(logger)})
}

func do(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func createSession(t *testing.T, s *Server, body any) createSessionResponse {
	t.Helper()
	rec := do(t, s, http.MethodPost, "/api/v1/sessions", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var resp createSessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestHealth(t *testing.T) {
	s := newTestServer()
	rec := do(t, s, http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ready","sessions":0}`, rec.Body.String())
}

func TestStepThroughDefaultLayout(t *testing.T) {
	s := newTestServer()
	created := createSession(t, s, nil)
	assert.Equal(t, 18, created.Rows)
	assert.Equal(t, 20, created.Cols)
	assert.Equal(t, maze.Coord{Row: 1, Col: 1}, created.Start)
	assert.Equal(t, maze.Coord{Row: 15, Col: 18}, created.Goal)

	var last snapshotResponse
	for i := 0; i < 500 && !last.Done; i++ {
		rec := do(t, s, http.MethodPost, "/api/v1/sessions/"+created.ID+"/step", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &last))
	}
	require.True(t, last.Done)
	assert.True(t, last.Found)
	assert.Equal(t, 47, last.Step)
	assert.Len(t, last.Path, 32)
	assert.Contains(t, last.Closed, created.Goal)
}

func TestSolution(t *testing.T) {
	s := newTestServer()
	created := createSession(t, s, map[string]any{"layout": "default"})

	rec := do(t, s, http.MethodGet, "/api/v1/sessions/"+created.ID+"/solution", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var sol solutionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sol))
	assert.True(t, sol.Found)
	assert.Equal(t, 31, sol.Cost)
	assert.Len(t, sol.Path, 32)
	assert.Contains(t, sol.Maze, "*")
}

func TestRandomLayoutIsSeeded(t *testing.T) {
	s := newTestServer()
	body := map[string]any{"layout": "random", "rows": 10, "cols": 12, "seed": 99, "require_reachable": true}
	a := createSession(t, s, body)
	b := createSession(t, s, body)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, a.Maze, b.Maze)
	assert.Equal(t, 10, a.Rows)

	rec := do(t, s, http.MethodGet, "/api/v1/sessions/"+a.ID+"/solution", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var sol solutionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sol))
	assert.True(t, sol.Found)
}

func TestImage(t *testing.T) {
	s := newTestServer()
	created := createSession(t, s, nil)

	rec := do(t, s, http.MethodGet, "/api/v1/sessions/"+created.ID+"/image.png", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))

	img, err := png.Decode(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, 20*8, img.Bounds().Dx())
	assert.Equal(t, 18*8, img.Bounds().Dy())
}

func TestBadRequests(t *testing.T) {
	s := newTestServer()

	tests := []struct {
		name   string
		method string
		path   string
		body   any
		status int
	}{
		{"unknown layout", http.MethodPost, "/api/v1/sessions", map[string]any{"layout": "spiral"}, http.StatusBadRequest},
		{"grid too small", http.MethodPost, "/api/v1/sessions", map[string]any{"layout": "random", "rows": 1, "cols": 1}, http.StatusBadRequest},
		{"start outside grid", http.MethodPost, "/api/v1/sessions", map[string]any{"layout": "random", "rows": 4, "cols": 4, "start": map[string]int{"row": 9, "col": 9}}, http.StatusBadRequest},
		{"malformed id", http.MethodPost, "/api/v1/sessions/not-a-uuid/step", nil, http.StatusBadRequest},
		{"unknown session", http.MethodGet, "/api/v1/sessions/6f1c1a8e-4a43-4b8e-9a53-3f5d1c2b7a10/solution", nil, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, s, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.status, rec.Code)
			var resp errorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestDeleteSession(t *testing.T) {
	s := newTestServer()
	created := createSession(t, s, nil)

	rec := do(t, s, http.MethodDelete, "/api/v1/sessions/"+created.ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, s, http.MethodPost, "/api/v1/sessions/"+created.ID+"/step", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, s, http.MethodDelete, "/api/v1/sessions/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
