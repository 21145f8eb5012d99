package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"algolens/internal/cache/result"
	"algolens/internal/classifier"
	"algolens/internal/gateway/handler"
	"algolens/internal/gateway/repository/algorithm"
	"algolens/internal/gateway/repository/project"
	"algolens/internal/gateway/repository/stepblob"
	"algolens/internal/gateway/repository/user"
	"algolens/internal/gateway/repository/visualization"
	"algolens/internal/gateway/server"
	"algolens/internal/gateway/service/pipeline"
	"algolens/internal/gateway/service/workspace"
	"algolens/internal/render"
	"algolens/internal/tracegen"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	gen := tracegen.New(
		tracegen.WithMetrics(tracegen.FixedMetrics{TimeMS: 10, KB: 256}),
		tracegen.WithClock(func() time.Time { return time.Unix(0, 0) }),
	)
	pipe := pipeline.New(
		classifier.New(classifier.DefaultConfig()),
		gen,
		result.New(result.DefaultConfig()),
		zap.NewNop(),
	)
	hub := workspace.NewHub()
	seq := 0
	workspaceSvc := workspace.New(
		project.NewMemoryStore(),
		visualization.NewMemoryStore(),
		stepblob.NewMemoryStore(),
		pipe,
		render.NewSVGRenderer(),
		hub,
		zap.NewNop(),
		workspace.WithIDSource(func() string {
			seq++
			return fmt.Sprintf("id-%d", seq)
		}),
	)

	mux := server.NewMux(
		handler.NewPipelineHandler(pipe, zap.NewNop()),
		handler.NewUserHandler(user.NewMemoryStore(), zap.NewNop()),
		handler.NewProjectHandler(workspaceSvc, zap.NewNop()),
		handler.NewAlgorithmHandler(algorithm.NewMemoryStore(), zap.NewNop()),
		handler.NewVisualizationHandler(workspaceSvc, zap.NewNop()),
		handler.NewWatchHandler(hub, zap.NewNop()),
	)
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(raw))
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func TestDetectEndpoint(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/api/algorithm/detect", map[string]string{
		"code":     "function bubbleSort(arr) { /* swap */ }",
		"language": "javascript",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		AlgorithmType string  `json:"algorithmType"`
		Confidence    float64 `json:"confidence"`
		Details       string  `json:"details"`
	}
	decodeBody(t, resp, &out)
	require.Equal(t, "sorting", out.AlgorithmType)
	require.Greater(t, out.Confidence, 0.0)
	require.NotEmpty(t, out.Details)
}

func TestDetectEndpointRejectsMissingCode(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/api/algorithm/detect", map[string]string{
		"language": "javascript",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var out struct {
		Error  string   `json:"error"`
		Fields []string `json:"fields"`
	}
	decodeBody(t, resp, &out)
	require.Equal(t, []string{"code"}, out.Fields)

	// Language is required as well.
	resp = postJSON(t, ts.URL+"/api/algorithm/detect", map[string]string{
		"code": "function bubbleSort(arr) {}",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	decodeBody(t, resp, &out)
	require.Equal(t, []string{"language"}, out.Fields)
}

func TestDetectEndpointRejectsInvalidJSON(t *testing.T) {
	ts := newTestServer(t)
	resp, err := http.Post(ts.URL+"/api/algorithm/detect", "application/json", strings.NewReader("{"))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestExecuteEndpoint(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/api/execute", map[string]string{
		"code":     "function binarySearch(arr, target) { let mid = 0; }",
		"language": "javascript",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Success  bool   `json:"success"`
		Category string `json:"category"`
		Steps    []struct {
			Action string `json:"action"`
		} `json:"steps"`
		Complexity struct {
			Time       string `json:"time"`
			Operations int    `json:"operations"`
		} `json:"complexity"`
	}
	decodeBody(t, resp, &out)
	require.True(t, out.Success)
	require.Equal(t, "searching", out.Category)
	require.NotEmpty(t, out.Steps)
	require.Equal(t, len(out.Steps), out.Complexity.Operations)
	require.Equal(t, "O(log n)", out.Complexity.Time)
}

func TestUserCRUD(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/api/users", map[string]string{
		"name":  "Ada",
		"email": "ada@example.com",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	decodeBody(t, resp, &created)
	require.NotEmpty(t, created.ID)

	getResp, err := http.Get(ts.URL + "/api/users/" + created.ID)
	require.NoError(t, err)
	getResp.Body.Close()
	require.Equal(t, http.StatusOK, getResp.StatusCode)

	missingResp, err := http.Get(ts.URL + "/api/users/nope")
	require.NoError(t, err)
	missingResp.Body.Close()
	require.Equal(t, http.StatusNotFound, missingResp.StatusCode)

	req, err := http.NewRequest(http.MethodDelete, ts.URL+"/api/users/"+created.ID, nil)
	require.NoError(t, err)
	delResp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	delResp.Body.Close()
	require.Equal(t, http.StatusNoContent, delResp.StatusCode)
}

func TestVisualizationFlow(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/api/projects", map[string]string{
		"userId":   "u1",
		"name":     "sorting demo",
		"code":     "function bubbleSort(arr) { /* swap */ }\nbubbleSort([9, 4, 7]);",
		"language": "javascript",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var proj struct {
		ID       string `json:"id"`
		Category string `json:"category"`
	}
	decodeBody(t, resp, &proj)
	require.Equal(t, "sorting", proj.Category)

	resp = postJSON(t, ts.URL+"/api/visualizations", map[string]string{
		"projectId": proj.ID,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created struct {
		Visualization struct {
			ID        string `json:"id"`
			StepCount int    `json:"stepCount"`
		} `json:"visualization"`
	}
	decodeBody(t, resp, &created)
	require.NotZero(t, created.Visualization.StepCount)

	// Rendered frame for the first step.
	frameResp, err := http.Get(fmt.Sprintf("%s/api/visualizations/%s/frames/0", ts.URL, created.Visualization.ID))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, frameResp.StatusCode)
	require.Equal(t, "image/svg+xml", frameResp.Header.Get("Content-Type"))
	frameResp.Body.Close()

	// Out-of-range frame is a 404.
	badResp, err := http.Get(fmt.Sprintf("%s/api/visualizations/%s/frames/%d", ts.URL, created.Visualization.ID, created.Visualization.StepCount))
	require.NoError(t, err)
	badResp.Body.Close()
	require.Equal(t, http.StatusNotFound, badResp.StatusCode)

	// Server-side cursor navigation.
	cursorResp := postJSON(t, fmt.Sprintf("%s/api/visualizations/%s/cursor", ts.URL, created.Visualization.ID), map[string]any{
		"op":    "forward",
		"index": 0,
	})
	require.Equal(t, http.StatusOK, cursorResp.StatusCode)
	var state struct {
		Index int `json:"index"`
		Total int `json:"total"`
	}
	decodeBody(t, cursorResp, &state)
	require.Equal(t, 1, state.Index)
	require.Equal(t, created.Visualization.StepCount, state.Total)
}

func TestVisualizationCreateUnknownProject(t *testing.T) {
	ts := newTestServer(t)
	resp := postJSON(t, ts.URL+"/api/visualizations", map[string]string{
		"projectId": "missing",
	})
	resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}
