package handler

import (
	"net/http"
	"strconv"

	"github.com/studyhall/studyhall/internal/models"
	"github.com/studyhall/studyhall/internal/service"
)

// StudyGroupHandler handles study group HTTP requests.
type StudyGroupHandler struct {
	svc *service.GroupService
}

// NewStudyGroupHandler creates a new study group handler.
func NewStudyGroupHandler(svc *service.GroupService) *StudyGroupHandler {
	return &StudyGroupHandler{svc: svc}
}

// Create handles POST /studygroup - create a study group.
func (h *StudyGroupHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req service.CreateStudyGroupRequest
	if err := DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	id, err := h.svc.CreateGroup(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, IDResponse{ID: id})
}

// List handles GET /studygroup?sortBy= - list all study groups.
func (h *StudyGroupHandler) List(w http.ResponseWriter, r *http.Request) {
	sortBy, err := models.ParseSortBy(r.URL.Query().Get("sortBy"))
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	groups, err := h.svc.ListGroups(r.Context(), sortBy)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, groups)
}

// Search handles GET /studygroup/search?subject=&sortBy= - filter groups by
// subject.
func (h *StudyGroupHandler) Search(w http.ResponseWriter, r *http.Request) {
	sortBy, err := models.ParseSortBy(r.URL.Query().Get("sortBy"))
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	subject, err := models.ParseSubject(r.URL.Query().Get("subject"))
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	groups, err := h.svc.SearchGroups(r.Context(), subject, sortBy)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, groups)
}

// Members handles GET /studygroup/{groupId}/users - list group members.
func (h *StudyGroupHandler) Members(w http.ResponseWriter, r *http.Request) {
	groupID, err := strconv.ParseInt(r.PathValue("groupId"), 10, 64)
	if err != nil {
		writeBadRequest(w, "group id must be an integer")
		return
	}

	members, err := h.svc.GetGroupMembers(r.Context(), groupID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, members)
}

// membershipRequest is the body of POST /studygroup/{groupId}/users.
type membershipRequest struct {
	UserID    int64                 `json:"userId"`
	Operation models.GroupOperation `json:"operation"`
}

// ModifyMembership handles POST /studygroup/{groupId}/users - join or leave.
func (h *StudyGroupHandler) ModifyMembership(w http.ResponseWriter, r *http.Request) {
	groupID, err := strconv.ParseInt(r.PathValue("groupId"), 10, 64)
	if err != nil {
		writeBadRequest(w, "group id must be an integer")
		return
	}

	var req membershipRequest
	if err := DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	if err := h.svc.ModifyMembership(r.Context(), groupID, req.UserID, req.Operation); err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, nil)
}
