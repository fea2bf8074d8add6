package site

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os/exec"
	"runtime"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ziadkadry99/folio/internal/content"
	"github.com/ziadkadry99/folio/internal/render"
	"github.com/ziadkadry99/folio/internal/search"
	"github.com/ziadkadry99/folio/internal/theme"
)

// ServerConfig holds dev-server configuration.
type ServerConfig struct {
	Port     int
	Dir      string // generated site directory to serve
	AllowAll bool   // allow all CORS origins
	Open     bool   // open the browser on start
}

// Server serves the generated site plus the search, theme and publication
// filter APIs.
type Server struct {
	cfg        ServerConfig
	engine     *search.Engine
	themes     *theme.Store
	pubs       []content.Publication
	filters    *render.FilterSet
	reloader   *Reloader
	router     chi.Router
	httpServer *http.Server
}

// NewServer creates a Server. engine, themes and filters may not be nil;
// the reloader is optional and enables /ws/reload when set.
func NewServer(cfg ServerConfig, engine *search.Engine, themes *theme.Store, pubs []content.Publication, filters *render.FilterSet, reloader *Reloader) *Server {
	s := &Server{
		cfg:      cfg,
		engine:   engine,
		themes:   themes,
		pubs:     pubs,
		filters:  filters,
		reloader: reloader,
	}
	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Post("/api/search", s.handleSearch)
	r.Get("/api/theme", s.handleThemeGet)
	r.Put("/api/theme", s.handleThemePut)
	r.Post("/api/theme/toggle", s.handleThemeToggle)
	r.Get("/api/publications", s.handlePublications)

	if s.reloader != nil {
		r.Get("/ws/reload", s.reloader.Handler())
	}

	// Static files (registered after API routes).
	r.Handle("/*", http.FileServer(http.Dir(s.cfg.Dir)))

	return r
}

// Router returns the chi router, mainly for tests.
func (s *Server) Router() chi.Router { return s.router }

// searchRequest is the JSON body for /api/search.
type searchRequest struct {
	Query string `json:"query"`
}

// searchResponseItem is one visible card in the /api/search response.
type searchResponseItem struct {
	Path        string `json:"path"`
	Href        string `json:"href"`
	Category    string `json:"category"`
	TitleHTML   string `json:"title_html"`
	ExcerptHTML string `json:"excerpt_html"`
}

// searchResponse is the JSON response for /api/search.
type searchResponse struct {
	Query   string               `json:"query"`
	Count   int                  `json:"count"`
	Message string               `json:"message,omitempty"`
	Results []searchResponseItem `json:"results"`
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res := s.engine.Search(req.Query)
	resp := searchResponse{
		Query:   res.Query,
		Count:   res.VisibleCount,
		Message: res.Message,
		Results: []searchResponseItem{},
	}
	// res.Cards is the state this pass computed; reading engine.Cards()
	// here could interleave with a concurrent client's search.
	for _, c := range res.Cards {
		if !c.Visible {
			continue
		}
		resp.Results = append(resp.Results, searchResponseItem{
			Path:        c.Path,
			Href:        render.PostHref(c.Path),
			Category:    c.Category,
			TitleHTML:   c.TitleHTML,
			ExcerptHTML: c.ExcerptHTML,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// themeResponse is the JSON shape of the theme endpoints.
type themeResponse struct {
	Theme string `json:"theme"`
}

func (s *Server) handleThemeGet(w http.ResponseWriter, r *http.Request) {
	current, err := s.themes.Current()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, themeResponse{Theme: current})
}

func (s *Server) handleThemePut(w http.ResponseWriter, r *http.Request) {
	var req themeResponse
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.themes.Set(req.Theme); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, themeResponse{Theme: req.Theme})
}

func (s *Server) handleThemeToggle(w http.ResponseWriter, r *http.Request) {
	next, err := s.themes.Toggle()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, themeResponse{Theme: next})
}

// publicationItem is one row of the /api/publications response.
type publicationItem struct {
	Title    string `json:"title"`
	Year     string `json:"year,omitempty"`
	Category string `json:"category"`
	Shown    bool   `json:"shown"`
}

// publicationsResponse is the JSON response for /api/publications.
type publicationsResponse struct {
	Filter  string            `json:"filter"`
	Filters []string          `json:"filters"`
	Items   []publicationItem `json:"items"`
}

func (s *Server) handlePublications(w http.ResponseWriter, r *http.Request) {
	control := r.URL.Query().Get("year")
	if control == "" {
		control = render.AllFilter
	}

	shown := s.filters.Apply(control)
	resp := publicationsResponse{
		Filter:  control,
		Filters: s.filters.Controls(),
		Items:   make([]publicationItem, len(s.pubs)),
	}
	for i, p := range s.pubs {
		resp.Items[i] = publicationItem{
			Title:    p.Title,
			Year:     p.Year(),
			Category: p.Category,
			Shown:    shown[i],
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("writing response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	if s.cfg.Open {
		go openBrowser(fmt.Sprintf("http://localhost:%d", s.cfg.Port))
	}

	log.Printf("folio serving %s on %s", s.cfg.Dir, addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

// openBrowser opens the given URL in the default browser.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	_ = cmd.Start()
}
