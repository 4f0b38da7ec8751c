package handlers

import (
	"net/http"

	"ourspace/internal/models"
)

// DiaryData holds data for the diary template.
type DiaryData struct {
	Title   string
	Entries []models.DiaryEntry
}

// Diary lists diary entries; a POST first adds the submitted entry.
func (h *Handlers) Diary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method == http.MethodPost {
		form, err := parseDiaryForm(r)
		if err != nil {
			h.respondServiceError(w, r, err)
			return
		}

		if _, err := h.svc.AddEntry(ctx, form.Name, form.Content); err != nil {
			h.respondServiceError(w, r, err)
			return
		}
	}

	entries, err := h.svc.ListEntries(ctx)
	if err != nil {
		h.respondServerError(w, r, err)
		return
	}

	h.render(w, r, "diary.html", DiaryData{
		Title:   "Diary",
		Entries: entries,
	})
}
