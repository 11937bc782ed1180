package auth

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/emrekoc/jobboard/backend/internal/models"
	"github.com/emrekoc/jobboard/backend/internal/store"
)

// UserStore defines the interface for user persistence.
type UserStore interface {
	CreateUser(ctx context.Context, u *models.User) error
	Authenticate(ctx context.Context, identifier, password string) (*models.User, error)
	UpdateProfile(ctx context.Context, username, newUsername, avatar string, age int) (*models.User, error)
}

// FileStore defines the interface for avatar uploads.
type FileStore interface {
	Save(originalName string, r io.Reader) (string, error)
}

// Handler holds the user-facing HTTP handlers.
type Handler struct {
	users UserStore
	files FileStore
}

func NewHandler(users UserStore, files FileStore) *Handler {
	return &Handler{users: users, files: files}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// Register creates a new user.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
		return
	}
	if req.Username == "" || req.Password == "" {
		http.Error(w, `{"error":"username and password are required"}`, http.StatusBadRequest)
		return
	}
	if req.Age < 18 {
		http.Error(w, `{"error":"you must be at least 18 to register"}`, http.StatusBadRequest)
		return
	}

	user := &models.User{
		Username: req.Username,
		Password: req.Password,
		UserType: req.UserType,
		Age:      req.Age,
		Avatar:   models.DefaultAvatar,
	}
	if req.Email != "" {
		user.Email = &req.Email
	}

	if err := h.users.CreateUser(r.Context(), user); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, store.ErrUsernameTaken) || errors.Is(err, store.ErrEmailTaken) {
			status = http.StatusBadRequest
		}
		writeJSON(w, status, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"id":     user.ID,
		"avatar": user.Avatar,
		"status": "ok",
	})
}

// Login authenticates a user and echoes the full row back.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
		return
	}

	identifier := req.Identifier
	if identifier == "" {
		identifier = req.Username
	}
	if identifier == "" {
		identifier = req.Email
	}

	user, err := h.users.Authenticate(r.Context(), identifier, req.Password)
	if errors.Is(err, store.ErrInvalidCredentials) {
		http.Error(w, `{"error":"invalid credentials"}`, http.StatusUnauthorized)
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// UpdateProfile accepts a multipart form with the current username, an
// optional new username and age, and an optional avatar file. Jobs and
// messages posted under the old username keep it.
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, `{"error":"invalid multipart form"}`, http.StatusBadRequest)
		return
	}

	username := r.FormValue("username")
	if username == "" {
		http.Error(w, `{"error":"username is required"}`, http.StatusBadRequest)
		return
	}
	newUsername := r.FormValue("new_username")
	age, _ := strconv.Atoi(r.FormValue("age"))

	avatar := ""
	file, header, err := r.FormFile("avatar")
	if err == nil {
		defer file.Close()
		avatar, err = h.files.Save(header.Filename, file)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
	}

	user, err := h.users.UpdateProfile(r.Context(), username, newUsername, avatar, age)
	if errors.Is(err, store.ErrUsernameTaken) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, `{"error":"user not found"}`, http.StatusNotFound)
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"avatar": user.Avatar})
}
