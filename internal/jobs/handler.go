package jobs

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/emrekoc/jobboard/backend/internal/models"
)

// JobStore defines the interface for listing persistence.
type JobStore interface {
	Create(ctx context.Context, job *models.Job) error
	List(ctx context.Context) ([]models.Job, error)
	Update(ctx context.Context, id uint, req *models.JobRequest) error
	Delete(ctx context.Context, id uint, owner string) (int64, error)
}

// FileStore defines the interface for listing image uploads.
type FileStore interface {
	Save(originalName string, r io.Reader) (string, error)
}

// Handler holds the listing HTTP handlers.
type Handler struct {
	jobs  JobStore
	files FileStore
}

func NewHandler(jobs JobStore, files FileStore) *Handler {
	return &Handler{jobs: jobs, files: files}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// parseRequest reads a listing body sent either as JSON or as a
// multipart form with an optional image file.
func (h *Handler) parseRequest(r *http.Request) (*models.JobRequest, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(10 << 20); err != nil {
			return nil, err
		}
		req := &models.JobRequest{
			Owner:       r.FormValue("owner"),
			Username:    r.FormValue("username"),
			Title:       r.FormValue("title"),
			Salary:      r.FormValue("salary"),
			Location:    r.FormValue("location"),
			Phone:       r.FormValue("phone"),
			Description: r.FormValue("description"),
			AgeRange:    r.FormValue("age_range"),
		}
		file, header, err := r.FormFile("image")
		if err == nil {
			defer file.Close()
			path, err := h.files.Save(header.Filename, file)
			if err != nil {
				return nil, err
			}
			req.Image = path
		}
		return req, nil
	}

	var req models.JobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

// Create stores a new listing.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	req, err := h.parseRequest(r)
	if err != nil {
		http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
		return
	}
	if req.Title == "" || req.Phone == "" {
		http.Error(w, `{"error":"title and phone are required"}`, http.StatusBadRequest)
		return
	}

	job := &models.Job{
		Owner:       req.OwnerName(),
		Title:       req.Title,
		Salary:      req.Salary,
		Location:    req.Location,
		Phone:       req.Phone,
		Description: req.Description,
		AgeRange:    req.AgeRange,
		Image:       req.Image,
	}
	if err := h.jobs.Create(r.Context(), job); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"id":    job.ID,
		"image": job.Image,
	})
}

// List returns every listing, newest first.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.jobs.List(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, jobs)
}

// Update replaces a listing's fields. A missing image leaves the stored
// one alone. An id that matches nothing still reports ok.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, `{"error":"invalid job id"}`, http.StatusBadRequest)
		return
	}

	req, err := h.parseRequest(r)
	if err != nil {
		http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
		return
	}

	if err := h.jobs.Update(r.Context(), uint(id), req); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Delete removes a listing. When the body names an owner, only a listing
// stored under that owner goes; otherwise the delete is unconditional.
// Callers are not authenticated, so any owner string can be claimed.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, `{"error":"invalid job id"}`, http.StatusBadRequest)
		return
	}

	var body struct {
		Owner    string `json:"owner"`
		Username string `json:"username"`
	}
	json.NewDecoder(r.Body).Decode(&body) // body is optional
	owner := body.Owner
	if owner == "" {
		owner = body.Username
	}

	rows, err := h.jobs.Delete(r.Context(), uint(id), owner)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if owner != "" && rows == 0 {
		http.Error(w, `{"error":"not allowed"}`, http.StatusForbidden)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
