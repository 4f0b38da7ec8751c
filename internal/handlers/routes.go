package handlers

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"ourspace/internal/middleware"
)

// RouterOptions controls which optional routes are mounted.
type RouterOptions struct {
	// Static serves /static/* when non-nil.
	Static fs.FS
	// ResetEnabled mounts GET /reset-db.
	ResetEnabled bool
}

// Router builds the HTTP routes with the standard middleware stack.
func (h *Handlers) Router(opts RouterOptions) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(h.logger))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))

	// Static files
	if opts.Static != nil {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(opts.Static))))
	}

	// Login and landing pages
	r.Get("/", h.Home)
	r.Post("/login", h.Login)
	r.Post("/logout", h.Logout)
	r.Get("/main/{user}", h.Main)

	// To-do list
	r.Get("/todo", h.Todo)
	r.Post("/todo", h.Todo)
	r.Get("/todo/complete/{id}", h.CompleteTask)
	r.Get("/todo/delete/{id}", h.DeleteTask)

	// Diary
	r.Get("/diary", h.Diary)
	r.Post("/diary", h.Diary)

	// Watchlist
	r.Get("/watchlist", h.Watchlist)
	r.Post("/watchlist", h.Watchlist)
	r.Get("/watchlist/watched/{id}", h.MarkWatched)
	r.Get("/watchlist/delete/{id}", h.DeleteMovie)

	// Operations
	r.Get("/healthz", h.Health)
	if opts.ResetEnabled {
		r.Get("/reset-db", h.ResetDB)
	}

	return r
}
