package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"github.com/rider974/CDA-fil-rouge-sub000/cmd/app"
	"github.com/rider974/CDA-fil-rouge-sub000/internal/config"
	handlers "github.com/rider974/CDA-fil-rouge-sub000/internal/handler"
	"github.com/rider974/CDA-fil-rouge-sub000/internal/middleware"
)

func main() {
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY is not set")
	}

	db, repo, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(db, repo, services, cfg)

	router := newRouter(handler)

	handlerChain := middleware.Chain(
		router,
		middleware.AuthMiddleware(cfg),
		middleware.SecurityHeadersMiddleware,
		middleware.CORSMiddleware(cfg),
		middleware.LoggingMiddleware,
	)

	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	server := &http.Server{
		Addr:    addr,
		Handler: handlerChain,
	}

	go func() {
		log.Printf("Server listening on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Forced shutdown: %v", err)
	}
}

func newRouter(handler *handlers.Handlers) *mux.Router {
	r := mux.NewRouter()

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		handlers.WriteError(w, "Not found", http.StatusNotFound)
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		handlers.WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
	})

	r.HandleFunc("/", handler.Home).Methods(http.MethodGet)
	r.HandleFunc("/health", handler.Health).Methods(http.MethodGet)
	r.HandleFunc("/tables", handler.Tables).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/auth/register", handler.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", handler.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/logout", handler.Logout).Methods(http.MethodPost)
	api.HandleFunc("/me", handler.GetCurrentUser).Methods(http.MethodGet)

	api.HandleFunc("/users", handler.GetUsers).Methods(http.MethodGet)
	api.HandleFunc("/users/{uuid}", handler.GetUser).Methods(http.MethodGet)
	api.HandleFunc("/users/{uuid}", handler.UpdateUser).Methods(http.MethodPut)
	api.HandleFunc("/users/{uuid}", handler.PatchUser).Methods(http.MethodPatch)
	api.HandleFunc("/users/{uuid}", handler.DeleteUser).Methods(http.MethodDelete)

	api.HandleFunc("/roles", handler.GetRoles).Methods(http.MethodGet)
	api.HandleFunc("/roles", handler.CreateRole).Methods(http.MethodPost)
	api.HandleFunc("/roles/{uuid}", handler.GetRole).Methods(http.MethodGet)
	api.HandleFunc("/roles/{uuid}", handler.UpdateRole).Methods(http.MethodPut)
	api.HandleFunc("/roles/{uuid}", handler.PatchRole).Methods(http.MethodPatch)
	api.HandleFunc("/roles/{uuid}", handler.DeleteRole).Methods(http.MethodDelete)

	api.HandleFunc("/ressources", handler.GetResources).Methods(http.MethodGet)
	api.HandleFunc("/ressources", handler.CreateResource).Methods(http.MethodPost)
	api.HandleFunc("/ressources", handler.UpdateResourceStatusByUUID).Methods(http.MethodPatch)
	api.HandleFunc("/ressources/{uuid}", handler.GetResource).Methods(http.MethodGet)
	api.HandleFunc("/ressources/{uuid}", handler.UpdateResource).Methods(http.MethodPut)
	api.HandleFunc("/ressources/{uuid}", handler.PatchResource).Methods(http.MethodPatch)
	api.HandleFunc("/ressources/{uuid}", handler.DeleteResource).Methods(http.MethodDelete)
	api.HandleFunc("/ressources/{uuid}/attachments", handler.AddAttachment).Methods(http.MethodPost)
	api.HandleFunc("/attachments/{uuid}", handler.DeleteAttachment).Methods(http.MethodDelete)

	api.HandleFunc("/ressource_types", handler.GetResourceTypes).Methods(http.MethodGet)
	api.HandleFunc("/ressource_types", handler.CreateResourceType).Methods(http.MethodPost)
	api.HandleFunc("/ressource_types/{uuid}", handler.GetResourceType).Methods(http.MethodGet)
	api.HandleFunc("/ressource_types/{uuid}", handler.UpdateResourceType).Methods(http.MethodPut)
	api.HandleFunc("/ressource_types/{uuid}", handler.PatchResourceType).Methods(http.MethodPatch)
	api.HandleFunc("/ressource_types/{uuid}", handler.DeleteResourceType).Methods(http.MethodDelete)

	api.HandleFunc("/ressources_status", handler.GetResourceStatuses).Methods(http.MethodGet)
	api.HandleFunc("/ressources_status", handler.CreateResourceStatus).Methods(http.MethodPost)
	api.HandleFunc("/ressources_status/{uuid}", handler.GetResourceStatus).Methods(http.MethodGet)
	api.HandleFunc("/ressources_status/{uuid}", handler.UpdateResourceStatus).Methods(http.MethodPut)
	api.HandleFunc("/ressources_status/{uuid}", handler.PatchResourceStatus).Methods(http.MethodPatch)
	api.HandleFunc("/ressources_status/{uuid}", handler.DeleteResourceStatus).Methods(http.MethodDelete)

	// The status history is append-only: PUT and PATCH answer 405 on
	// purpose.
	api.HandleFunc("/ressources_status_history", handler.GetStatusHistories).Methods(http.MethodGet)
	api.HandleFunc("/ressources_status_history", handler.CreateStatusHistory).Methods(http.MethodPost)
	api.HandleFunc("/ressources_status_history", handler.MutateStatusHistory).Methods(http.MethodPut, http.MethodPatch)
	api.HandleFunc("/ressources_status_history/{uuid}", handler.GetStatusHistory).Methods(http.MethodGet)
	api.HandleFunc("/ressources_status_history/{uuid}", handler.MutateStatusHistory).Methods(http.MethodPut, http.MethodPatch)
	api.HandleFunc("/ressources_status_history/{uuid}", handler.DeleteStatusHistory).Methods(http.MethodDelete)

	api.HandleFunc("/tags", handler.GetTags).Methods(http.MethodGet)
	api.HandleFunc("/tags", handler.CreateTag).Methods(http.MethodPost)
	api.HandleFunc("/tags/{uuid}", handler.GetTag).Methods(http.MethodGet)
	api.HandleFunc("/tags/{uuid}", handler.UpdateTag).Methods(http.MethodPut)
	api.HandleFunc("/tags/{uuid}", handler.PatchTag).Methods(http.MethodPatch)
	api.HandleFunc("/tags/{uuid}", handler.DeleteTag).Methods(http.MethodDelete)

	api.HandleFunc("/comments", handler.GetComments).Methods(http.MethodGet)
	api.HandleFunc("/comments", handler.CreateComment).Methods(http.MethodPost)
	api.HandleFunc("/comments/{uuid}", handler.GetComment).Methods(http.MethodGet)
	api.HandleFunc("/comments/{uuid}", handler.UpdateComment).Methods(http.MethodPut)
	api.HandleFunc("/comments/{uuid}", handler.PatchComment).Methods(http.MethodPatch)
	api.HandleFunc("/comments/{uuid}", handler.DeleteComment).Methods(http.MethodDelete)

	api.HandleFunc("/follow", handler.GetFollows).Methods(http.MethodGet)
	api.HandleFunc("/follow", handler.CreateFollow).Methods(http.MethodPost)
	api.HandleFunc("/follow", handler.DeleteFollow).Methods(http.MethodDelete)

	api.HandleFunc("/sharing_sessions", handler.GetSharingSessions).Methods(http.MethodGet)
	api.HandleFunc("/sharing_sessions", handler.CreateSharingSession).Methods(http.MethodPost)
	api.HandleFunc("/sharing_sessions/{uuid}", handler.GetSharingSession).Methods(http.MethodGet)
	api.HandleFunc("/sharing_sessions/{uuid}", handler.UpdateSharingSession).Methods(http.MethodPut)
	api.HandleFunc("/sharing_sessions/{uuid}", handler.PatchSharingSession).Methods(http.MethodPatch)
	api.HandleFunc("/sharing_sessions/{uuid}", handler.DeleteSharingSession).Methods(http.MethodDelete)

	api.HandleFunc("/have", handler.GetHave).Methods(http.MethodGet)
	api.HandleFunc("/have", handler.CreateHave).Methods(http.MethodPost)
	api.HandleFunc("/have", handler.DeleteHave).Methods(http.MethodDelete)

	api.HandleFunc("/refer", handler.GetRefer).Methods(http.MethodGet)
	api.HandleFunc("/refer", handler.CreateRefer).Methods(http.MethodPost)
	api.HandleFunc("/refer", handler.DeleteRefer).Methods(http.MethodDelete)

	api.HandleFunc("/reference", handler.GetReference).Methods(http.MethodGet)
	api.HandleFunc("/reference", handler.CreateReference).Methods(http.MethodPost)
	api.HandleFunc("/reference", handler.DeleteReference).Methods(http.MethodDelete)

	return r
}
