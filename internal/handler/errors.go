package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/studyhall/studyhall/internal/service"
)

// writeServiceError converts a service error into a problem response.
// Centralizing this keeps status codes consistent across handlers:
// validation and the subject-ownership conflict are client errors (400),
// missing users/groups are 404, everything else is an internal error.
func writeServiceError(w http.ResponseWriter, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		WriteProblem(w, Problem{
			Title:  "Validation Failed",
			Status: http.StatusBadRequest,
			Detail: verr.Error(),
			Errors: verr.Fields,
		})

	case errors.Is(err, service.ErrSubjectOwned):
		WriteProblem(w, Problem{
			Title:  "Conflict",
			Status: http.StatusBadRequest,
			Detail: err.Error(),
			Errors: []service.FieldError{{Field: "subject", Message: err.Error()}},
		})

	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrGroupNotFound):
		WriteProblem(w, Problem{
			Title:  "Not Found",
			Status: http.StatusNotFound,
			Detail: err.Error(),
		})

	default:
		slog.Error("Unhandled service error", "error", err)
		WriteProblem(w, Problem{
			Title:  "Internal Server Error",
			Status: http.StatusInternalServerError,
		})
	}
}

// writeBadRequest writes a 400 problem with the given detail.
func writeBadRequest(w http.ResponseWriter, detail string) {
	WriteProblem(w, Problem{
		Title:  "Bad Request",
		Status: http.StatusBadRequest,
		Detail: detail,
	})
}
