package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"

	"trf/navmenu/internal/activation"
	"trf/navmenu/internal/discovery"
	"trf/navmenu/internal/domain"
	"trf/navmenu/internal/metric"
	"trf/navmenu/internal/render"
	"trf/navmenu/internal/sidemenu"
)

// TreeSource supplies the menu tree for a request.
type TreeSource interface {
	Tree(ctx context.Context, cookies discovery.CookieStore) []domain.MenuItem
	RecordClick(intent domain.NavigationIntent)
}

type Handler struct {
	source     TreeSource
	baseURLs   domain.AppBaseURLs
	activation activation.Config
	brand      render.Brand
}

func NewHandler(source TreeSource, baseURLs domain.AppBaseURLs, cfg activation.Config) *Handler {
	return &Handler{
		source:     source,
		baseURLs:   baseURLs,
		activation: cfg,
		brand:      render.DefaultBrand,
	}
}

// Routes builds the router. reg may be nil, in which case /metrics is not served.
func (h *Handler) Routes(reg prometheus.Gatherer) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if reg != nil {
		r.Handle("/metrics", metric.GetHandlerForRegistry(reg))
	}

	r.Get("/menu", h.menuHTML)
	r.Get("/menu.json", h.menuJSON)
	r.Get("/navigate", h.navigate)

	return r
}

// sideMenu builds the per-request menu state from the app, path, toggle and mobile query parameters.
// mobile=1 opens the overlay, mobile=0 closes it.
func (h *Handler) sideMenu(r *http.Request) (*sidemenu.SideMenu, bool) {
	q := r.URL.Query()
	app := domain.AppID(q.Get("app"))
	if app == "" {
		return nil, false
	}

	s := sidemenu.New(h.source.Tree(r.Context(), r), app, h.baseURLs, h.activation)
	s.Navigate(q.Get("path"))
	if toggle := q.Get("toggle"); toggle != "" {
		s.Toggle(toggle)
	}
	switch q.Get("mobile") {
	case "1":
		if !s.MobileOpen() {
			s.ToggleMobile()
		}
	case "0":
		s.CloseMobile()
	}
	return s, true
}

func (h *Handler) menuHTML(w http.ResponseWriter, r *http.Request) {
	s, ok := h.sideMenu(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "missing app parameter")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := render.SideMenu(w, s, h.brand); err != nil {
		log.Errorf("Failed to render menu: %v", err)
	}
}

type menuState struct {
	App         domain.AppID      `json:"app"`
	Path        string            `json:"path"`
	OpenSection string            `json:"openSection,omitempty"`
	MobileOpen  bool              `json:"mobileOpen"`
	ActiveChain []string          `json:"activeChain"`
	Items       []domain.MenuItem `json:"items"`
}

func (h *Handler) menuJSON(w http.ResponseWriter, r *http.Request) {
	s, ok := h.sideMenu(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "missing app parameter")
		return
	}

	chain := s.Activation().ActiveChain(s.Tree())
	if chain == nil {
		chain = []string{}
	}

	writeJSON(w, http.StatusOK, menuState{
		App:         s.App(),
		Path:        s.Path(),
		OpenSection: s.OpenSection(),
		MobileOpen:  s.MobileOpen(),
		ActiveChain: chain,
		Items:       s.Tree(),
	})
}

func (h *Handler) navigate(w http.ResponseWriter, r *http.Request) {
	s, ok := h.sideMenu(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "missing app parameter")
		return
	}

	id := r.URL.Query().Get("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing id parameter")
		return
	}

	intent := s.Click(id)
	h.source.RecordClick(intent)

	log.Debugf("Resolved click on %s for %s: %s %s", id, s.App(), intent.Kind, intent.Target())
	writeJSON(w, http.StatusOK, intent)
}

func writeError(w http.ResponseWriter, status int, message string) {
	log.Warnf("Handling error response: %d %s", status, message)
	writeJSON(w, status, map[string]string{"error": message})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		log.Errorf("Failed to marshal JSON response: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(jsonData); err != nil {
		log.Errorf("Failed to write JSON response: %v", err)
	}
}
