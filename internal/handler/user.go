package handler

import (
	"net/http"
	"strconv"

	"github.com/studyhall/studyhall/internal/service"
)

// UserHandler handles user HTTP requests.
type UserHandler struct {
	svc *service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// Create handles POST /user - create a user.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req service.CreateUserRequest
	if err := DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	id, err := h.svc.CreateUser(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, IDResponse{ID: id})
}

// List handles GET /user - list all users.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.ListUsers(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, users)
}

// Groups handles GET /user/{userId}/studygroups - list a user's groups.
func (h *UserHandler) Groups(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(r.PathValue("userId"), 10, 64)
	if err != nil {
		writeBadRequest(w, "user id must be an integer")
		return
	}

	groups, err := h.svc.GetUserGroups(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, groups)
}
