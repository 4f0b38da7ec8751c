package handlers

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
)

const loginFailedMessage = "Incorrect password, please try again."

// HomeData holds data for the login page template.
type HomeData struct {
	Title string
	Users []string
}

// MainData holds data for the per-user landing page.
type MainData struct {
	Title string
	User  string
}

// Home renders the login page.
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "home.html", HomeData{
		Title: "Welcome",
		Users: h.gate.Users(),
	})
}

// Login checks the submitted credentials and sends the user to their
// landing page. A wrong password gets a plain message, not an error status.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	form, err := parseLoginForm(r)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	if !h.gate.Check(form.User, form.Password) {
		h.logger.InfoContext(r.Context(), "login rejected", "user", form.User)
		respondText(w, loginFailedMessage)
		return
	}

	redirect(w, r, "/main/"+url.PathEscape(form.User))
}

// Main renders the landing page for a user.
func (h *Handlers) Main(w http.ResponseWriter, r *http.Request) {
	// chi matches on RawPath when the request carried escapes that Path
	// cannot represent, so the param is only still escaped in that case.
	user := chi.URLParam(r, "user")
	if r.URL.RawPath != "" {
		if unescaped, err := url.PathUnescape(user); err == nil {
			user = unescaped
		}
	}

	h.render(w, r, "main.html", MainData{
		Title: "Home",
		User:  user,
	})
}

// Logout sends the browser back to the login page. There is no server
// session to end.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	redirect(w, r, "/")
}
