package server

import (
	"context"
	"documint/internal/config"
	"documint/internal/http/handlers/documents"
	"documint/internal/http/handlers/folders"
	"documint/internal/http/handlers/meta"
	"documint/internal/http/middleware"
	"documint/internal/models"
	utils "documint/internal/utils/http_errors"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

func StartServer(
	ctx context.Context,
	cfg *config.HTTPServer,
	log *slog.Logger,
	folderService FolderService,
	documentService DocumentService,
) error {
	r := mux.NewRouter()

	r.Use(middleware.Logger(log))

	setupRoutes(r, log, folderService, documentService)

	srv := &http.Server{
		Addr:         cfg.Address,
		ReadTimeout:  cfg.Timeout,
		WriteTimeout: cfg.Timeout,
		IdleTimeout:  cfg.IdleTimeout,
		Handler:      r,
	}

	errChan := make(chan error, 1)

	go func() {
		log.Info("server started", slog.String("address", cfg.Address))
		if err := srv.ListenAndServe(); err != nil {
			if errors.Is(err, http.ErrServerClosed) {
				log.Info("server closed gracefully")
			} else {
				log.Error("could not start server:", "error", err)
				errChan <- err
			}
		}
	}()
	select {
	case <-ctx.Done():
		log.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("error shutting down server", "error", err)
			return err
		}
		log.Info("server exited gracefully")
		return nil
	case err := <-errChan:
		return err
	}
}

func setupRoutes(r *mux.Router, log *slog.Logger, folderService FolderService, documentService DocumentService) {
	// GET service metadata
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		meta.Get(log, w, r)
	}).Methods(http.MethodGet)

	// GET folders
	r.HandleFunc("/api/folders", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		folders.Get(ctx, log, w, r, folderService)
	}).Methods(http.MethodGet)

	// POST folder
	r.HandleFunc("/api/folders", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		folders.Post(ctx, log, w, r, folderService)
	}).Methods(http.MethodPost)

	// DELETE folder by id
	r.HandleFunc("/api/folders/{id}", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		vars := mux.Vars(r)
		folders.Delete(ctx, log, w, r, vars["id"], folderService)
	}).Methods(http.MethodDelete)

	// GET documents search; registered before the collection route so
	// "search" is never read as a document id
	r.HandleFunc("/api/documents/search", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		documents.Search(ctx, log, w, r, documentService)
	}).Methods(http.MethodGet)

	// GET documents (all, or scoped by folder_id)
	r.HandleFunc("/api/documents", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		documents.Get(ctx, log, w, r, documentService)
	}).Methods(http.MethodGet)

	// POST document
	r.HandleFunc("/api/documents", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		documents.Post(ctx, log, w, r, documentService)
	}).Methods(http.MethodPost)

	// DELETE document by id
	r.HandleFunc("/api/documents/{id}", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		vars := mux.Vars(r)
		documents.Delete(ctx, log, w, r, vars["id"], documentService)
	}).Methods(http.MethodDelete)

	// Not allowed
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSONError(w, http.StatusMethodNotAllowed, models.ErrMethodNotAllowed.Error())
	})
}
