package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/dustin/go-humanize"

	"collegeblog/internal/apperror"
)

// multipart framing allowance on top of the file itself
const multipartOverhead = 1 << 20

func (h *Handlers) UploadFile(w http.ResponseWriter, r *http.Request) {
	maxSize := h.Cfg.MaxUploadSize
	r.Body = http.MaxBytesReader(w, r.Body, maxSize+multipartOverhead)

	if err := r.ParseMultipartForm(multipartOverhead); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, apperror.NewInvalidInput("File too large: limit is "+humanize.Bytes(uint64(maxSize)), err))
			return
		}
		writeError(w, apperror.NewInvalidInput("Invalid multipart form", err))
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, apperror.NewInvalidInput("file is required", err))
		return
	}
	defer file.Close()

	// one byte past the limit is enough for the service to reject it
	data, err := io.ReadAll(io.LimitReader(file, maxSize+1))
	if err != nil {
		writeError(w, apperror.NewInvalidInput("Failed to read file", err))
		return
	}

	result, err := h.UploadService.UploadImage(r.Context(), header.Filename, header.Header.Get("Content-Type"), data)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, result, http.StatusOK)
}
