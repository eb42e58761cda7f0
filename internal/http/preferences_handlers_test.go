package httpapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"smoketaper/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeKV struct {
	data map[string]string
	err  error
}

func (f *fakeKV) Get(_ context.Context, key string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	v, ok := f.data[key]
	if !ok {
		return "", store.ErrMiss
	}
	return v, nil
}

func (f *fakeKV) Set(_ context.Context, key string, value string, _ time.Duration) error {
	if f.err != nil {
		return f.err
	}
	f.data[key] = value
	return nil
}

func newPrefsRouter(kv store.KV) *Router {
	logger := zap.NewNop()
	router := NewRouter(logger)
	router.RegisterPreferenceRoutes(NewPreferencesHandler(kv, logger))
	return router
}

func TestPreferences_GetDefaultsOnMiss(t *testing.T) {
	router := newPrefsRouter(&fakeKV{data: map[string]string{}})

	req := httptest.NewRequest(http.MethodGet, "/api/preferences", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"darkMode":false`)
	assert.Contains(t, w.Body.String(), `"language":"en"`)
}

func TestPreferences_UpdateMergesPartialPatch(t *testing.T) {
	kv := &fakeKV{data: map[string]string{}}
	router := newPrefsRouter(kv)

	req := httptest.NewRequest(http.MethodPut, "/api/preferences",
		strings.NewReader(`{"darkMode":true}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"darkMode":true`)
	assert.Contains(t, w.Body.String(), `"language":"en"`)

	// a second patch keeps the earlier change
	req = httptest.NewRequest(http.MethodPut, "/api/preferences",
		strings.NewReader(`{"language":"de"}`))
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"darkMode":true`)
	assert.Contains(t, w.Body.String(), `"language":"de"`)
}

func TestPreferences_GetToleratesBackendFailure(t *testing.T) {
	router := newPrefsRouter(&fakeKV{err: errors.New("redis down")})

	req := httptest.NewRequest(http.MethodGet, "/api/preferences", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"language":"en"`)
}

func TestPreferences_UpdateFailsWhenBackendDown(t *testing.T) {
	router := newPrefsRouter(&fakeKV{err: errors.New("redis down")})

	req := httptest.NewRequest(http.MethodPut, "/api/preferences",
		strings.NewReader(`{"darkMode":true}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
