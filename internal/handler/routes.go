package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/studyhall/studyhall/internal/service"
	"github.com/studyhall/studyhall/internal/storage"
)

const healthCheckTimeout = 2 * time.Second

// New builds the API handler with all routes registered.
func New(users *service.UserService, groups *service.GroupService, store storage.Store) http.Handler {
	userHandler := NewUserHandler(users)
	groupHandler := NewStudyGroupHandler(groups)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", health(store))
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("POST /user", userHandler.Create)
	mux.HandleFunc("GET /user", userHandler.List)
	mux.HandleFunc("GET /user/{userId}/studygroups", userHandler.Groups)

	mux.HandleFunc("POST /studygroup", groupHandler.Create)
	mux.HandleFunc("GET /studygroup", groupHandler.List)
	mux.HandleFunc("GET /studygroup/search", groupHandler.Search)
	mux.HandleFunc("GET /studygroup/{groupId}/users", groupHandler.Members)
	mux.HandleFunc("POST /studygroup/{groupId}/users", groupHandler.ModifyMembership)

	return mux
}

// health reports whether the store is reachable.
func health(store storage.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
		defer cancel()

		if err := store.Ping(ctx); err != nil {
			WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
		WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
