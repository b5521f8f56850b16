package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/km-arc/go-instantiation/framework/container"
	gohttp "github.com/km-arc/go-instantiation/framework/http"
)

func newCollection() *container.ServiceCollection {
	return container.NewServiceCollection(
		container.Entry{ID: container.NewIdentifier("cache"), Instance: map[string]int{}},
		container.Entry{ID: container.NewIdentifier("cacheStats"), Instance: 3},
		container.Entry{ID: container.NewIdentifier("mailer"), Instance: "smtp"},
	)
}

func TestListServices(t *testing.T) {
	got := gohttp.ListServices(newCollection())

	assert.Equal(t, []gohttp.ServiceInfo{
		{Name: "cache", Type: "map[string]int", Position: 0},
		{Name: "cacheStats", Type: "int", Position: 1},
		{Name: "mailer", Type: "string", Position: 2},
	}, got)
}

func TestServicesHandler_Filter(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/services?name=cache", nil)
	gohttp.ServicesHandler(newCollection()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body struct {
		Data []gohttp.ServiceInfo `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data, 2)
	assert.Equal(t, "cache", body.Data[0].Name)
	assert.Equal(t, "cacheStats", body.Data[1].Name)
}

func TestServiceHandler(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/services/{name}", gohttp.ServiceHandler(newCollection()))

	tests := []struct {
		path string
		code int
	}{
		{"/services/mailer", http.StatusOK},
		{"/services/nope", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, tt.code, rec.Code)
		})
	}
}

func TestRequest_QueryFallback(t *testing.T) {
	req := gohttp.NewRequest(httptest.NewRequest(http.MethodGet, "/?a=1", nil))
	assert.Equal(t, "1", req.Query("a"))
	assert.Equal(t, "x", req.Query("b", "x"))
	assert.Equal(t, "", req.Query("b"))
}
