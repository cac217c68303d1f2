package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/amateur-sports/league-system/storage"
	"github.com/amateur-sports/league-system/utils"
)

const maxUploadBytes = 10 << 20 // 10MB

// uploadFolders whitelists where clients may place objects.
var uploadFolders = map[string]bool{
	"teams":   true,
	"players": true,
	"news":    true,
	"stories": true,
}

type MediaHandler struct {
	uploader storage.FileUploader
}

func NewMediaHandler(uploader storage.FileUploader) *MediaHandler {
	return &MediaHandler{uploader: uploader}
}

// Upload stores a multipart file and returns its public URL. The client then
// sets that URL on the entity it is editing.
func (h *MediaHandler) Upload(w http.ResponseWriter, r *http.Request) {
	folder, err := getIDFromURL(r, "folder")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if !uploadFolders[folder] {
		badRequestResponse(w, r, fmt.Errorf("unknown upload folder %q", folder))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		badRequestResponse(w, r, errors.New("multipart field 'file' is required"))
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	ext := strings.ToLower(filepath.Ext(header.Filename))
	key := fmt.Sprintf("%s/%s%s", folder, utils.NewID(), ext)

	result, err := h.uploader.Upload(r.Context(), key, contentType, file)
	if err != nil {
		if errors.Is(err, storage.ErrUploaderDisabled) {
			errorResponse(w, r, http.StatusNotImplemented, err.Error())
			return
		}
		serverErrorResponse(w, r, err)
		return
	}

	response := jsonResponse{
		"key": result.Key,
		"url": result.Location,
	}
	if err := writeJSON(w, http.StatusCreated, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
