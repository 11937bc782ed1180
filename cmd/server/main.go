package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/emrekoc/jobboard/backend/internal/auth"
	"github.com/emrekoc/jobboard/backend/internal/config"
	"github.com/emrekoc/jobboard/backend/internal/jobs"
	"github.com/emrekoc/jobboard/backend/internal/messages"
	"github.com/emrekoc/jobboard/backend/internal/store"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	// ── SQLite ───────────────────────────────────────────────
	db, err := store.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("sqlite open: %v", err)
	}
	defer store.Close(db)
	if err := store.Migrate(ctx, db); err != nil {
		log.Fatalf("sqlite migrate: %v", err)
	}

	userStore := store.NewUserStore(db)
	jobStore := store.NewJobStore(db)
	messageStore := store.NewMessageStore(db)

	// ── Uploads ──────────────────────────────────────────────
	files, err := store.NewLocalFiles(cfg.UploadDir)
	if err != nil {
		log.Fatalf("uploads: %v", err)
	}

	// ── Handlers ─────────────────────────────────────────────
	authHandler := auth.NewHandler(userStore, files)
	jobHandler := jobs.NewHandler(jobStore, files)
	messageHandler := messages.NewHandler(messageStore, jobStore)

	// ── Router ───────────────────────────────────────────────
	r := chi.NewRouter()
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Users
	r.Post("/api/register", authHandler.Register)
	r.Post("/api/login", authHandler.Login)
	r.Post("/api/update-profile", authHandler.UpdateProfile)
	r.Post("/api/update-avatar", authHandler.UpdateProfile)

	// Listings
	r.Route("/api/jobs", func(r chi.Router) {
		r.Get("/", jobHandler.List)
		r.Post("/", jobHandler.Create)
		r.Put("/{id}", jobHandler.Update)
		r.Delete("/{id}", jobHandler.Delete)
	})

	// Messages
	r.Post("/api/messages", messageHandler.Send)
	r.Get("/api/messages/{job_id}", messageHandler.ListByJob)
	r.Get("/api/my-messages", messageHandler.Inbox)

	// Uploaded images, served back by the path stored on the row
	r.Handle(store.PublicPrefix+"/*", http.StripPrefix(store.PublicPrefix+"/",
		http.FileServer(http.Dir(files.Dir()))))

	// Single-page client for any unmatched path
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, filepath.Join(cfg.PublicDir, "index.html"))
	})

	// ── Server ───────────────────────────────────────────────
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  time.Minute,
		WriteTimeout: time.Minute,
	}

	go func() {
		log.Printf("Backend listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	shutCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	srv.Shutdown(shutCtx)
}
