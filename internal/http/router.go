package httpapi

import (
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// Router wraps the standard library http.ServeMux (a surface this small
// does not warrant a third-party router).
type Router struct {
	mux    *http.ServeMux
	logger *zap.Logger
}

func NewRouter(logger *zap.Logger) *Router {
	return &Router{
		mux:    http.NewServeMux(),
		logger: logger,
	}
}

func (r *Router) Handle(pattern string, h http.HandlerFunc) {
	r.mux.HandleFunc(pattern, h)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// RegisterDayRoutes wires the day lifecycle endpoints.
func (r *Router) RegisterDayRoutes(h *DayHandler) {
	r.Handle("/api/days", func(w http.ResponseWriter, req *http.Request) {
		switch req.Method {
		case http.MethodGet:
			h.ListDays(w, req)
		case http.MethodPost:
			h.CreateDay(w, req)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	// GET /api/days/{date}, PUT /api/days/{id}
	r.Handle("/api/days/", func(w http.ResponseWriter, req *http.Request) {
		ref := trailingID(req.URL.Path, "/api/days/")
		if ref == "" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		switch req.Method {
		case http.MethodGet:
			h.GetDayByDate(w, req, ref)
		case http.MethodPut:
			h.UpdateDay(w, req, ref)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
}

// RegisterReminderRoutes wires reminder listing, completion and deletion.
func (r *Router) RegisterReminderRoutes(h *ReminderHandler) {
	r.Handle("/api/reminders/day/", func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		dayID := trailingID(req.URL.Path, "/api/reminders/day/")
		if dayID == "" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		h.ListForDay(w, req, dayID)
	})

	// PUT /api/reminders/{id}/complete, DELETE /api/reminders/{id}
	r.Handle("/api/reminders/", func(w http.ResponseWriter, req *http.Request) {
		rest := strings.TrimPrefix(req.URL.Path, "/api/reminders/")
		switch req.Method {
		case http.MethodPut:
			id, ok := strings.CutSuffix(rest, "/complete")
			if !ok || id == "" || strings.Contains(id, "/") {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			h.Complete(w, req, id)
		case http.MethodDelete:
			id := trailingID(req.URL.Path, "/api/reminders/")
			if id == "" {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			h.Delete(w, req, id)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
}

// RegisterStatsRoutes wires the rolling-window statistics endpoints.
func (r *Router) RegisterStatsRoutes(h *StatsHandler) {
	r.Handle("/api/stats/week", func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h.GetWindow(w, req)
	})
	r.Handle("/api/stats/export", func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h.Export(w, req)
	})
}

// RegisterPreferenceRoutes wires the ambient preferences endpoints.
func (r *Router) RegisterPreferenceRoutes(h *PreferencesHandler) {
	r.Handle("/api/preferences", func(w http.ResponseWriter, req *http.Request) {
		switch req.Method {
		case http.MethodGet:
			h.Get(w, req)
		case http.MethodPut:
			h.Update(w, req)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
}

// RegisterHealthRoute wires the liveness probe.
func (r *Router) RegisterHealthRoute() {
	r.Handle("/healthz", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
}
