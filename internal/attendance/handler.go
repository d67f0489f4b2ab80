package attendance

import (
	"net/http"
	"strconv"

	"github.com/bootesnull/hrportal/internal/auth"
	"github.com/bootesnull/hrportal/internal/transport"
)

type ServiceAPI interface {
	CheckIn(userID int64) (*Attendance, error)
	CheckOut(userID int64) (*Attendance, error)
	ListPerUser(userID int64) ([]*Attendance, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Service:     service,
	}
}

func (h *Handler) CheckIn(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "Your session is not valid!")
		return
	}

	attendance, err := h.Service.CheckIn(user.ID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusCreated, "Checked in successfully!", attendance)
}

func (h *Handler) CheckOut(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "Your session is not valid!")
		return
	}

	attendance, err := h.Service.CheckOut(user.ID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusOK, "Checked out successfully!", attendance)
}

// AttendancePerUser lists attendance for the caller, or for another user
// when a user_id query parameter is supplied.
func (h *Handler) AttendancePerUser(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "Your session is not valid!")
		return
	}

	userID := user.ID
	if raw := r.URL.Query().Get("user_id"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			h.WriteError(w, http.StatusBadRequest, "invalid user id")
			return
		}
		userID = parsed
	}

	attendances, err := h.Service.ListPerUser(userID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusOK, "Attendance list fetched successfully!", attendances)
}
