package handlers

import (
	"net/http"

	"ourspace/internal/models"
)

// WatchlistData holds data for the watchlist template.
type WatchlistData struct {
	Title  string
	Movies []models.Movie
}

// Watchlist lists movies; a POST first adds the submitted title.
func (h *Handlers) Watchlist(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method == http.MethodPost {
		form, err := parseMovieForm(r)
		if err != nil {
			h.respondServiceError(w, r, err)
			return
		}

		if _, err := h.svc.AddMovie(ctx, form.Title); err != nil {
			h.respondServiceError(w, r, err)
			return
		}
	}

	movies, err := h.svc.ListMovies(ctx)
	if err != nil {
		h.respondServerError(w, r, err)
		return
	}

	h.render(w, r, "watchlist.html", WatchlistData{
		Title:  "Movie Watchlist",
		Movies: movies,
	})
}

// MarkWatched flags a movie as watched.
func (h *Handlers) MarkWatched(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		respondError(w, http.StatusNotFound, "not found")
		return
	}

	if err := h.svc.MarkWatched(r.Context(), id); err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	redirect(w, r, "/watchlist")
}

// DeleteMovie removes a movie from the watchlist.
func (h *Handlers) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		respondError(w, http.StatusNotFound, "not found")
		return
	}

	if err := h.svc.DeleteMovie(r.Context(), id); err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	redirect(w, r, "/watchlist")
}
