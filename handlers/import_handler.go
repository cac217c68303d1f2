package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/amateur-sports/league-system/services"
)

type ImportHandler struct {
	importService services.ImportService
}

func NewImportHandler(is services.ImportService) *ImportHandler {
	return &ImportHandler{importService: is}
}

// readCSVBody reads the raw request body as sheet text, capped at 1MB.
func readCSVBody(w http.ResponseWriter, r *http.Request) (string, error) {
	r.Body = http.MaxBytesReader(w, r.Body, 1_048_576)
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return "", err
	}
	if len(body) == 0 {
		return "", errors.New("body must not be empty")
	}
	return string(body), nil
}

func (h *ImportHandler) ImportFixtures(w http.ResponseWriter, r *http.Request) {
	csvText, err := readCSVBody(w, r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	report, err := h.importService.ImportFixturesCSV(r.Context(), csvText)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{
		"report": report,
	}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ImportHandler) ImportTeams(w http.ResponseWriter, r *http.Request) {
	csvText, err := readCSVBody(w, r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	report, err := h.importService.ImportTeamsCSV(r.Context(), csvText)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{
		"report": report,
	}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
