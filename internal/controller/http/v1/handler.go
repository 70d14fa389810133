package v1

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kurochkinivan/doc_generator/internal/artifacts"
	"github.com/kurochkinivan/doc_generator/internal/domain"
)

const defaultMaxUploadBytes = 32 << 20

var uploadFields = []string{"file", "excelFile"}

type JobService interface {
	Submit(ctx context.Context, r io.Reader, filename, secret string) (string, error)
	Status(id string) (domain.JobView, error)
	Cancel(ctx context.Context, id string) error
}

type ArtifactStore interface {
	Documents() ([]artifacts.Document, error)
	Lookup(kind artifacts.Kind, name string) (string, error)
	Message(pdfName string) (string, error)
}

type RowStatusReader interface {
	RowStatuses(ctx context.Context, jobID string) ([]domain.RowStatusUpdate, error)
}

type DocumentsHandler struct {
	log            *slog.Logger
	jobs           JobService
	store          ArtifactStore
	rows           RowStatusReader
	maxUploadBytes int64
}

func NewDocumentsHandler(
	log *slog.Logger,
	jobs JobService,
	store ArtifactStore,
	rows RowStatusReader,
	maxUploadBytes int64,
) *DocumentsHandler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = defaultMaxUploadBytes
	}

	return &DocumentsHandler{
		log:            log,
		jobs:           jobs,
		store:          store,
		rows:           rows,
		maxUploadBytes: maxUploadBytes,
	}
}

type GenerateDocumentsResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	ProcessingID string `json:"processingId"`
}

func (h *DocumentsHandler) GenerateDocuments(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid multipart form: " + err.Error()})
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, filename, err := formFile(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	defer file.Close()

	id, err := h.jobs.Submit(r.Context(), file, filename, r.FormValue("password"))
	if err != nil {
		h.log.InfoContext(r.Context(), "upload rejected",
			slog.String("filename", filename),
			slog.String("err", err.Error()),
		)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusAccepted, GenerateDocumentsResponse{
		Success:      true,
		Message:      "document generation started",
		ProcessingID: id,
	})
}

func formFile(r *http.Request) (io.ReadCloser, string, error) {
	for _, field := range uploadFields {
		file, header, err := r.FormFile(field)
		if errors.Is(err, http.ErrMissingFile) {
			continue
		}
		if err != nil {
			return nil, "", fmt.Errorf("failed to read %q: %w", field, err)
		}
		return file, header.Filename, nil
	}

	return nil, "", errors.New("no source file uploaded")
}

func (h *DocumentsHandler) DocumentStatus(w http.ResponseWriter, r *http.Request) {
	view, err := h.jobs.Status(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

type RowStatusesResponse struct {
	Rows []domain.RowStatusUpdate `json:"rows"`
}

func (h *DocumentsHandler) RowStatuses(w http.ResponseWriter, r *http.Request) {
	rows, err := h.rows.RowStatuses(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	if rows == nil {
		rows = []domain.RowStatusUpdate{}
	}

	writeJSON(w, http.StatusOK, RowStatusesResponse{Rows: rows})
}

type CancelResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (h *DocumentsHandler) CancelGeneration(w http.ResponseWriter, r *http.Request) {
	if err := h.jobs.Cancel(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusAccepted, CancelResponse{
		Success: true,
		Message: "document generation process is being cancelled",
	})
}

type DocumentsResponse struct {
	PDFs []artifacts.Document `json:"pdfs"`
}

func (h *DocumentsHandler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	docs, err := h.store.Documents()
	if err != nil {
		writeError(w, err)
		return
	}

	if docs == nil {
		docs = []artifacts.Document{}
	}

	writeJSON(w, http.StatusOK, DocumentsResponse{PDFs: docs})
}

func (h *DocumentsHandler) ErrorReport(w http.ResponseWriter, r *http.Request) {
	h.serveFile(w, r, artifacts.KindErrorReport, chi.URLParam(r, "filename"), true)
}

func (h *DocumentsHandler) SummaryReport(w http.ResponseWriter, r *http.Request) {
	h.serveFile(w, r, artifacts.KindSummary, chi.URLParam(r, "filename"), true)
}

func (h *DocumentsHandler) Document(w http.ResponseWriter, r *http.Request) {
	h.serveFile(w, r, artifacts.KindDocument, chi.URLParam(r, "name"), false)
}

type EmailTemplateResponse struct {
	EmailContent string `json:"emailContent"`
}

func (h *DocumentsHandler) EmailTemplate(w http.ResponseWriter, r *http.Request) {
	content, err := h.store.Message(chi.URLParam(r, "pdfName"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, EmailTemplateResponse{EmailContent: content})
}

func (h *DocumentsHandler) serveFile(w http.ResponseWriter, r *http.Request, kind artifacts.Kind, name string, attachment bool) {
	path, err := h.store.Lookup(kind, name)
	if err != nil {
		writeError(w, err)
		return
	}

	if attachment {
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	}

	http.ServeFile(w, r, path)
}
