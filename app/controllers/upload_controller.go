package controllers

import (
	"net/http"

	"faculty-portal/app/dto"
	"faculty-portal/app/services"
	"faculty-portal/global"
)

type UploadController struct {
	Uploads  *services.UploadService
	MaxBytes int64
}

func NewUploadController(uploads *services.UploadService, maxBytes int64) *UploadController {
	return &UploadController{Uploads: uploads, MaxBytes: maxBytes}
}

// Upload accepts a multipart "file" part, stores the bytes and returns
// the reference string callers later put in a record's proof field.
// File type and content are not inspected.
func (c *UploadController) Upload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseMultipartForm(c.MaxBytes); err != nil {
		writeError(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer file.Close()

	name, path, err := c.Uploads.Save(file, header.Filename)
	if err != nil {
		global.Logger.Error().Err(err).Msg("file upload failed")
		writeError(w, http.StatusInternalServerError, "Failed to upload file")
		return
	}
	writeJSON(w, http.StatusOK, dto.UploadResponse{Message: "File uploaded successfully", Filename: name, Path: path})
}
