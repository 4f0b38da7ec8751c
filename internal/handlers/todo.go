package handlers

import (
	"net/http"

	"ourspace/internal/models"
)

// TodoData holds data for the to-do list template.
type TodoData struct {
	Title string
	Tasks []models.Task
}

// Todo lists tasks; a POST first adds the submitted task.
func (h *Handlers) Todo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method == http.MethodPost {
		form, err := parseTaskForm(r)
		if err != nil {
			h.respondServiceError(w, r, err)
			return
		}

		if _, err := h.svc.AddTask(ctx, form.Description); err != nil {
			h.respondServiceError(w, r, err)
			return
		}
	}

	tasks, err := h.svc.ListTasks(ctx)
	if err != nil {
		h.respondServerError(w, r, err)
		return
	}

	h.render(w, r, "todo.html", TodoData{
		Title: "To-Do List",
		Tasks: tasks,
	})
}

// CompleteTask marks a task completed.
func (h *Handlers) CompleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		respondError(w, http.StatusNotFound, "not found")
		return
	}

	if err := h.svc.CompleteTask(r.Context(), id); err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	redirect(w, r, "/todo")
}

// DeleteTask deletes a task.
func (h *Handlers) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		respondError(w, http.StatusNotFound, "not found")
		return
	}

	if err := h.svc.DeleteTask(r.Context(), id); err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	redirect(w, r, "/todo")
}
