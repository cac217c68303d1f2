package handlers

import (
	"net/http"

	"github.com/amateur-sports/league-system/models"
	"github.com/amateur-sports/league-system/services"
)

type TableHandler struct {
	tableService  services.TableService
	scorerService services.ScorerService
}

func NewTableHandler(ts services.TableService, ss services.ScorerService) *TableHandler {
	return &TableHandler{tableService: ts, scorerService: ss}
}

func (h *TableHandler) GetTable(w http.ResponseWriter, r *http.Request) {
	table, err := h.tableService.GetTable(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{
		"table": table,
	}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *TableHandler) SaveOverride(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Rows []models.TableRow `json:"rows"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	table, err := h.tableService.SaveOverride(r.Context(), input.Rows)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{
		"table": table,
	}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *TableHandler) ResetOverride(w http.ResponseWriter, r *http.Request) {
	if err := h.tableService.ResetOverride(r.Context()); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *TableHandler) TopScorers(w http.ResponseWriter, r *http.Request) {
	scorers, err := h.scorerService.TopScorers(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{
		"scorers": scorers,
	}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
