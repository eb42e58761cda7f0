package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"smoketaper/internal/domain"
	"smoketaper/internal/repository"
	"smoketaper/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) *Router {
	t.Helper()
	logger := zap.NewNop()
	memStore := repository.NewMemoryStore()

	router := NewRouter(logger)
	router.RegisterDayRoutes(NewDayHandler(service.NewDayService(memStore, logger), logger))
	router.RegisterReminderRoutes(NewReminderHandler(service.NewReminderService(memStore, logger), logger))
	router.RegisterStatsRoutes(NewStatsHandler(service.NewStatsService(memStore, memStore, logger), 7, logger))
	router.RegisterHealthRoute()
	return router
}

func doJSON(t *testing.T, router *Router, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func createTestDay(t *testing.T, router *Router, date string) domain.Day {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/days",
		`{"date":"`+date+`","wakeTime":"06:00","sleepTime":"23:00","targetCigarettes":2}`)
	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())
	var day domain.Day
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &day))
	return day
}

func listTestReminders(t *testing.T, router *Router, dayID string) []domain.Reminder {
	t.Helper()
	w := doJSON(t, router, http.MethodGet, "/api/reminders/day/"+dayID, "")
	require.Equal(t, http.StatusOK, w.Code)
	var list []domain.Reminder
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	return list
}

func TestCreateDay_ReturnsDayAndGeneratesReminders(t *testing.T) {
	router := newTestRouter(t)

	day := createTestDay(t, router, "2024-01-01")
	assert.NotEmpty(t, day.ID)
	assert.Equal(t, "2024-01-01", day.Date)
	assert.Equal(t, 2, day.TargetCigarettes)

	list := listTestReminders(t, router, day.ID)
	require.Len(t, list, 2)
	assert.Equal(t, "10:15", list[0].Time)
	assert.Equal(t, "18:45", list[1].Time)
	assert.False(t, list[0].Completed)
	assert.Nil(t, list[0].CompletedAt)
}

func TestCreateDay_DuplicateDateConflicts(t *testing.T) {
	router := newTestRouter(t)
	createTestDay(t, router, "2024-01-01")

	w := doJSON(t, router, http.MethodPost, "/api/days",
		`{"date":"2024-01-01","wakeTime":"07:00","sleepTime":"22:00","targetCigarettes":4}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already exists")
}

func TestCreateDay_RejectsInvertedWindow(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/days",
		`{"date":"2024-01-01","wakeTime":"23:00","sleepTime":"06:00","targetCigarettes":3}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "after wake time")
}

func TestCreateDay_RejectsMalformedBody(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/days", `{"date":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetDayByDate_NotFoundIsDistinguishable(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/days/2099-01-01", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "not found")
}

func TestGetDayByDate_ReturnsDay(t *testing.T) {
	router := newTestRouter(t)
	created := createTestDay(t, router, "2024-02-01")

	w := doJSON(t, router, http.MethodGet, "/api/days/2024-02-01", "")
	require.Equal(t, http.StatusOK, w.Code)
	var day domain.Day
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &day))
	assert.Equal(t, created.ID, day.ID)
}

func TestListDays_OrderedByDate(t *testing.T) {
	router := newTestRouter(t)
	createTestDay(t, router, "2024-01-02")
	createTestDay(t, router, "2024-01-01")

	w := doJSON(t, router, http.MethodGet, "/api/days", "")
	require.Equal(t, http.StatusOK, w.Code)
	var days []domain.Day
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &days))
	require.Len(t, days, 2)
	assert.Equal(t, "2024-01-01", days[0].Date)
	assert.Equal(t, "2024-01-02", days[1].Date)
}

func TestUpdateDay_RegeneratesAndDropsCompletions(t *testing.T) {
	router := newTestRouter(t)
	day := createTestDay(t, router, "2024-01-01")

	before := listTestReminders(t, router, day.ID)
	require.Len(t, before, 2)
	w := doJSON(t, router, http.MethodPut, "/api/reminders/"+before[0].ID+"/complete", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPut, "/api/days/"+day.ID, `{"targetCigarettes":5}`)
	require.Equal(t, http.StatusOK, w.Code)
	var updated domain.Day
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, 5, updated.TargetCigarettes)
	assert.Equal(t, "06:00", updated.WakeTime)

	after := listTestReminders(t, router, day.ID)
	require.Len(t, after, 5)
	for _, r := range after {
		assert.False(t, r.Completed)
	}
}

func TestUpdateDay_UnknownID(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPut, "/api/days/no-such-id", `{"targetCigarettes":3}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDays_MethodNotAllowed(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodDelete, "/api/days", "")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}
