package devtools

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/leonelquinteros/gotext"
)

// SetupRoutes configures the inspector routes and returns the router
func SetupRoutes(m *Monitor) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)

	r.Route("/api", func(r chi.Router) {
		r.Get("/frame", func(w http.ResponseWriter, r *http.Request) {
			fi, ok := m.Frame()
			if !ok {
				respondError(w, http.StatusServiceUnavailable, "no frame drawn yet")
				return
			}
			respondJSON(w, http.StatusOK, fi)
		})

		r.Get("/map", func(w http.ResponseWriter, r *http.Request) {
			fi, _ := m.Frame()
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			WriteMapDump(w, m.Grid(), fi)
		})

		r.Get("/tile/{x}/{y}", func(w http.ResponseWriter, r *http.Request) {
			x, errX := strconv.Atoi(chi.URLParam(r, "x"))
			y, errY := strconv.Atoi(chi.URLParam(r, "y"))
			if errX != nil || errY != nil {
				respondError(w, http.StatusBadRequest, "x and y must be integers")
				return
			}
			id, ok := m.Grid().TileAt(x, y)
			if !ok {
				respondError(w, http.StatusNotFound, "position outside the map")
				return
			}
			respondJSON(w, http.StatusOK, map[string]int{"x": x, "y": y, "id": int(id)})
		})

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	r.Get("/screenshot", func(w http.ResponseWriter, r *http.Request) {
		fi, ok := m.Frame()
		if !ok {
			http.Error(w, "no frame drawn yet", http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := WriteScreenshotHTML(w, gotext.Get("WINDOW_TITLE"), m.Grid(), fi); err != nil {
			log.Printf("Error writing screenshot: %v", err)
		}
	})

	return r
}

// Serve starts the inspector on addr in the background. Listen errors are
// logged, never fatal, since the game runs fine without it.
func Serve(addr string, m *Monitor) *http.Server {
	srv := &http.Server{Addr: addr, Handler: SetupRoutes(m)}
	go func() {
		log.Printf("Inspector listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("Warning: inspector stopped: %v", err)
		}
	}()
	return srv
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON: %v", err)
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
