package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var errInvalidForm = errors.New("invalid form data")

// MissingFieldError reports a required form field that was absent or blank.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return "missing required field: " + e.Field
}

type loginForm struct {
	User     string
	Password string
}

type taskForm struct {
	Description string
}

type diaryForm struct {
	Name    string
	Content string
}

type movieForm struct {
	Title string
}

// formReader collects the first missing field while reading values.
type formReader struct {
	r   *http.Request
	err error
}

func newFormReader(r *http.Request) (*formReader, error) {
	if err := r.ParseForm(); err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidForm, err)
	}
	return &formReader{r: r}, nil
}

func (f *formReader) require(name string) string {
	v := f.r.PostForm.Get(name)
	if strings.TrimSpace(v) == "" && f.err == nil {
		f.err = &MissingFieldError{Field: name}
	}
	return v
}

func parseLoginForm(r *http.Request) (loginForm, error) {
	f, err := newFormReader(r)
	if err != nil {
		return loginForm{}, err
	}
	form := loginForm{
		User:     f.require("user"),
		Password: f.require("password"),
	}
	return form, f.err
}

func parseTaskForm(r *http.Request) (taskForm, error) {
	f, err := newFormReader(r)
	if err != nil {
		return taskForm{}, err
	}
	form := taskForm{Description: f.require("description")}
	return form, f.err
}

func parseDiaryForm(r *http.Request) (diaryForm, error) {
	f, err := newFormReader(r)
	if err != nil {
		return diaryForm{}, err
	}
	form := diaryForm{
		Name:    f.require("name"),
		Content: f.require("content"),
	}
	return form, f.err
}

func parseMovieForm(r *http.Request) (movieForm, error) {
	f, err := newFormReader(r)
	if err != nil {
		return movieForm{}, err
	}
	form := movieForm{Title: f.require("title")}
	return form, f.err
}
