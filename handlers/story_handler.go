package handlers

import (
	"net/http"

	"github.com/amateur-sports/league-system/services"
)

type StoryHandler struct {
	storyService services.StoryService
}

func NewStoryHandler(ss services.StoryService) *StoryHandler {
	return &StoryHandler{storyService: ss}
}

func (h *StoryHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	stories, err := h.storyService.ListActive(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{
		"stories": stories,
	}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *StoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input services.CreateStoryInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	story, err := h.storyService.Create(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{
		"story": story,
	}
	if err := writeJSON(w, http.StatusCreated, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *StoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	storyID, err := getIDFromURL(r, "storyID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.storyService.Delete(r.Context(), storyID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
