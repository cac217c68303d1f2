package handlers

import (
	"net/http"

	"github.com/amateur-sports/league-system/services"
)

type NewsHandler struct {
	newsService services.NewsService
}

func NewNewsHandler(ns services.NewsService) *NewsHandler {
	return &NewsHandler{newsService: ns}
}

func (h *NewsHandler) List(w http.ResponseWriter, r *http.Request) {
	posts, err := h.newsService.List(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{
		"news": posts,
	}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *NewsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input services.CreateNewsInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	post, err := h.newsService.Create(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{
		"post": post,
	}
	if err := writeJSON(w, http.StatusCreated, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *NewsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	postID, err := getIDFromURL(r, "postID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.newsService.Delete(r.Context(), postID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *NewsHandler) Like(w http.ResponseWriter, r *http.Request) {
	postID, err := getIDFromURL(r, "postID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	post, err := h.newsService.Like(r.Context(), postID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{
		"post": post,
	}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
