package routes_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/professional-agenda/internal/audit"
	"github.com/BruksfildServices01/professional-agenda/internal/handlers"
	"github.com/BruksfildServices01/professional-agenda/internal/httperr"
	"github.com/BruksfildServices01/professional-agenda/internal/infra/repository"
	"github.com/BruksfildServices01/professional-agenda/internal/routes"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newServer(t *testing.T, checks map[string]handlers.Check) *gin.Engine {
	t.Helper()

	d := audit.NewDispatcher(zap.NewNop(), 100)
	t.Cleanup(func() { _ = d.Close(context.Background()) })

	r := gin.New()
	routes.RegisterRoutes(r, routes.Deps{
		Repo:   repository.NewAvailabilityMemoryRepository(),
		Audit:  d,
		Log:    zap.NewNop(),
		Checks: checks,
	})
	return r
}

func do(r http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body httperr.HTTPError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Code
}

func register(id string, ranges map[string]string) map[string]any {
	return map[string]any{"id": id, "availabilities": ranges}
}

func TestRootAndHealth(t *testing.T) {
	r := newServer(t, nil)

	w := do(r, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, handlers.Banner, w.Body.String())

	w = do(r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestReady(t *testing.T) {
	ok := newServer(t, map[string]handlers.Check{
		"db": func(context.Context) error { return nil },
	})
	assert.Equal(t, http.StatusOK, do(ok, http.MethodGet, "/ready", nil).Code)

	failing := newServer(t, map[string]handlers.Check{
		"db":    func(context.Context) error { return nil },
		"redis": func(context.Context) error { return errors.New("connection refused") },
	})
	w := do(failing, http.MethodGet, "/ready", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.JSONEq(t, `{"status":"unavailable","checks":{"redis":"connection refused"}}`, w.Body.String())
}

func TestAvailabilityLifecycle(t *testing.T) {
	r := newServer(t, nil)

	w := do(r, http.MethodPost, "/availabilities", register("1", map[string]string{
		"2022-01-01": "08:00-10:00",
		"2022-01-02": "08:00-09:00",
	}))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Os horários foram registrados com sucesso."}`, w.Body.String())

	w = do(r, http.MethodGet, "/availabilities?id=1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"2022-01-01": {"08:00": true, "08:30": true, "09:00": true},
		"2022-01-02": {"08:00": true}
	}`, w.Body.String())

	w = do(r, http.MethodGet, "/availabilitiesByInterval?id=1&startDate=2022-01-02&endDate=2022-01-05", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"2022-01-02": {"08:00": true}}`, w.Body.String())

	w = do(r, http.MethodPut, "/availabilities", register("1", map[string]string{"2022-01-02": "10:00-11:30"}))
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodDelete, "/availabilities", map[string]string{"id": "1", "day": "2022-01-01"})
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/availabilities?id=1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"2022-01-02": {"10:00": true, "10:30": true}}`, w.Body.String())
}

func TestAvailabilityErrors(t *testing.T) {
	r := newServer(t, nil)
	require.Equal(t, http.StatusOK, do(r, http.MethodPost, "/availabilities",
		register("1", map[string]string{"2022-01-01": "08:00-10:00"})).Code)

	cases := []struct {
		name   string
		method string
		target string
		body   any
		status int
		code   string
	}{
		{"missing id", http.MethodPost, "/availabilities", map[string]any{"availabilities": map[string]string{"2022-01-05": "08:00-10:00"}}, http.StatusBadRequest, "invalid_request"},
		{"missing availabilities", http.MethodPost, "/availabilities", map[string]any{"id": "1"}, http.StatusBadRequest, "invalid_request"},
		{"empty availabilities", http.MethodPost, "/availabilities", register("2", map[string]string{}), http.StatusBadRequest, "empty_availability"},
		{"malformed range", http.MethodPost, "/availabilities", register("2", map[string]string{"2022-01-01": "8h-10h"}), http.StatusBadRequest, "malformed_range"},
		{"day registered twice", http.MethodPost, "/availabilities", register("1", map[string]string{"2022-01-01": "13:00-15:00"}), http.StatusConflict, "day_already_exists"},
		{"update unknown professional", http.MethodPut, "/availabilities", register("9", map[string]string{"2022-01-01": "08:00-10:00"}), http.StatusBadRequest, "professional_not_found"},
		{"get unknown professional", http.MethodGet, "/availabilities?id=9", nil, http.StatusNotFound, "not_found"},
		{"get without id", http.MethodGet, "/availabilities", nil, http.StatusBadRequest, "invalid_request"},
		{"interval inverted", http.MethodGet, "/availabilitiesByInterval?id=1&startDate=2022-01-05&endDate=2022-01-01", nil, http.StatusBadRequest, "invalid_interval"},
		{"interval without match", http.MethodGet, "/availabilitiesByInterval?id=1&startDate=2022-02-01&endDate=2022-02-05", nil, http.StatusNotFound, "not_found"},
		{"interval missing end", http.MethodGet, "/availabilitiesByInterval?id=1&startDate=2022-01-01", nil, http.StatusBadRequest, "invalid_request"},
		{"delete unknown day", http.MethodDelete, "/availabilities", map[string]string{"id": "1", "day": "2022-03-01"}, http.StatusNotFound, "not_found"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := do(r, tc.method, tc.target, tc.body)
			assert.Equal(t, tc.status, w.Code)
			assert.Equal(t, tc.code, errorCode(t, w))
		})
	}
}

func TestBookSession(t *testing.T) {
	r := newServer(t, nil)
	require.Equal(t, http.StatusOK, do(r, http.MethodPost, "/availabilities",
		register("1", map[string]string{"2022-01-01": "08:00-12:00"})).Code)

	book := func(hour string) *httptest.ResponseRecorder {
		return do(r, http.MethodPost, "/sessions", map[string]string{"id": "1", "day": "2022-01-01", "hour": hour})
	}

	w := book("8:00")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"A sessão foi agendada com sucesso."}`, w.Body.String())

	w = book("09:30")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "slot_unavailable", errorCode(t, w))

	w = book("12:00")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "slot_not_offered", errorCode(t, w))

	w = do(r, http.MethodPost, "/sessions", map[string]string{"id": "1", "day": "2022-01-09", "hour": "08:00"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(r, http.MethodPost, "/sessions", map[string]string{"id": "1", "day": "2022-01-01"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_request", errorCode(t, w))

	w = do(r, http.MethodGet, "/availabilities?id=1", nil)
	assert.JSONEq(t, `{"2022-01-01": {
		"08:00": false, "08:30": false, "09:00": false, "09:30": false,
		"10:00": true, "10:30": true, "11:00": true
	}}`, w.Body.String())
}

func TestRequestIDHeader(t *testing.T) {
	r := newServer(t, nil)
	w := do(r, http.MethodGet, "/health", nil)
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
}
