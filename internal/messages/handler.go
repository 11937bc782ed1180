package messages

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/emrekoc/jobboard/backend/internal/models"
	"github.com/emrekoc/jobboard/backend/internal/store"
)

// MessageStore defines the interface for message persistence.
type MessageStore interface {
	Create(ctx context.Context, m *models.Message) error
	ListByJob(ctx context.Context, jobID uint) ([]models.Message, error)
	ListByUser(ctx context.Context, identifier string) ([]models.InboxMessage, error)
}

// JobGetter resolves a listing so its owner becomes the receiver.
type JobGetter interface {
	GetByID(ctx context.Context, id uint) (*models.Job, error)
}

// Handler holds the messaging HTTP handlers.
type Handler struct {
	messages MessageStore
	jobs     JobGetter
}

func NewHandler(messages MessageStore, jobs JobGetter) *Handler {
	return &Handler{messages: messages, jobs: jobs}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// Send stores a message against a listing. The receiver is the listing's
// owner as of this moment; two sequential store calls, no transaction —
// if the lookup fails the insert never runs.
func (h *Handler) Send(w http.ResponseWriter, r *http.Request) {
	var req models.SendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
		return
	}

	job, err := h.jobs.GetByID(r.Context(), req.JobID)
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, `{"error":"job not found"}`, http.StatusNotFound)
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	msg := &models.Message{
		JobID:     req.JobID,
		Sender:    req.Sender,
		SenderAge: req.SenderAge,
		Text:      req.Text,
		Receiver:  job.Owner,
	}
	if err := h.messages.Create(r.Context(), msg); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"status": "ok"})
}

// ListByJob returns a listing's messages, newest first.
func (h *Handler) ListByJob(w http.ResponseWriter, r *http.Request) {
	jobID, err := strconv.ParseUint(chi.URLParam(r, "job_id"), 10, 64)
	if err != nil {
		http.Error(w, `{"error":"invalid job id"}`, http.StatusBadRequest)
		return
	}

	msgs, err := h.messages.ListByJob(r.Context(), uint(jobID))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, msgs)
}

// Inbox returns the messages addressed to (or sent by) a user, joined
// with each listing's title.
func (h *Handler) Inbox(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("username")
	if username == "" {
		http.Error(w, `{"error":"username is required"}`, http.StatusBadRequest)
		return
	}

	msgs, err := h.messages.ListByUser(r.Context(), username)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, msgs)
}
