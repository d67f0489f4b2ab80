package leave

import (
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-chi/chi"
	"github.com/google/uuid"

	"github.com/bootesnull/hrportal/internal"
	"github.com/bootesnull/hrportal/internal/auth"
	"github.com/bootesnull/hrportal/internal/transport"
)

type ServiceAPI interface {
	CreateLeaveType(dto CreateLeaveTypeDTO) (*LeaveType, error)
	ListLeaveTypes() ([]*LeaveType, error)
	EditLeaveType(dto EditLeaveTypeDTO) (*LeaveType, error)
	SetLeaveTypeStatus(dto UpdateLeaveTypeStatusDTO) (*LeaveType, error)

	ApplyLeave(userID int64, dto ApplyLeaveDTO, documentURL string) (*Leave, error)
	ListLeaves() ([]*Leave, error)
	ListLeavesByUser(userID int64) ([]*Leave, error)
	GetLeave(id int64) (*Leave, error)
	SetLeaveStatus(dto UpdateLeaveStatusDTO, approverID int64) (*Leave, error)
	DeleteLeave(id, userID int64) error
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
	Upload  internal.UploadConfig
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI, upload internal.UploadConfig) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Service:     service,
		Upload:      upload,
	}
}

// ----------------- LEAVE TYPES -----------------

func (h *Handler) StoreLeaveType(w http.ResponseWriter, r *http.Request) {
	var dto CreateLeaveTypeDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := dto.Validate(); err != nil {
		h.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	leaveType, err := h.Service.CreateLeaveType(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusCreated, "Leave type created successfully!", leaveType)
}

func (h *Handler) ListLeaveTypes(w http.ResponseWriter, r *http.Request) {
	leaveTypes, err := h.Service.ListLeaveTypes()
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusOK, "Leave type list fetched successfully!", leaveTypes)
}

func (h *Handler) EditLeaveType(w http.ResponseWriter, r *http.Request) {
	var dto EditLeaveTypeDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := dto.Validate(); err != nil {
		h.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	leaveType, err := h.Service.EditLeaveType(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusOK, "Leave type updated successfully!", leaveType)
}

func (h *Handler) UpdateLeaveTypeStatus(w http.ResponseWriter, r *http.Request) {
	var dto UpdateLeaveTypeStatusDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := dto.Validate(); err != nil {
		h.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	leaveType, err := h.Service.SetLeaveTypeStatus(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusOK, "Leave type status updated successfully!", leaveType)
}

// ----------------- LEAVES -----------------

// ApplyLeave accepts a multipart form with leave fields and an optional
// supporting document (.png, .jpg or .jpeg).
func (h *Handler) ApplyLeave(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "Your session is not valid!")
		return
	}

	maxBytes := h.Upload.MaxSizeMB << 20
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	leaveTypeID, _ := strconv.ParseInt(r.FormValue("leave_type_id"), 10, 64)
	dto := ApplyLeaveDTO{
		LeaveTypeID: leaveTypeID,
		FromDate:    r.FormValue("from_date"),
		ToDate:      r.FormValue("to_date"),
		Reasons:     r.FormValue("reasons"),
	}
	if err := dto.Validate(); err != nil {
		h.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	documentURL, err := h.saveDocument(r)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	leave, err := h.Service.ApplyLeave(user.ID, dto, documentURL)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusCreated, "Leave applied successfully!", leave)
}

func (h *Handler) ListLeaves(w http.ResponseWriter, r *http.Request) {
	leaves, err := h.Service.ListLeaves()
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusOK, "Leave list fetched successfully!", leaves)
}

func (h *Handler) MyLeaves(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "Your session is not valid!")
		return
	}

	leaves, err := h.Service.ListLeavesByUser(user.ID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusOK, "Leave list fetched successfully!", leaves)
}

func (h *Handler) ViewLeave(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		h.WriteError(w, http.StatusBadRequest, "invalid leave id")
		return
	}

	leave, err := h.Service.GetLeave(id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusOK, "Leave fetched successfully!", leave)
}

func (h *Handler) UpdateLeaveStatus(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "Your session is not valid!")
		return
	}

	var dto UpdateLeaveStatusDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := dto.Validate(); err != nil {
		h.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	leave, err := h.Service.SetLeaveStatus(dto, user.ID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusOK, "Leave status updated successfully!", leave)
}

func (h *Handler) DeleteLeave(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "Your session is not valid!")
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		h.WriteError(w, http.StatusBadRequest, "invalid leave id")
		return
	}

	if err := h.Service.DeleteLeave(id, user.ID); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusOK, "Leave deleted successfully!", nil)
}

// saveDocument stores the uploaded file under a random name and returns its
// public URL path. A missing file is not an error.
func (h *Handler) saveDocument(r *http.Request) (string, error) {
	file, header, err := r.FormFile("document")
	if err != nil {
		if err == http.ErrMissingFile {
			return "", nil
		}
		return "", internal.NewValidationError("invalid document upload", internal.ErrCodeBadDocumentType)
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	switch ext {
	case ".png", ".jpg", ".jpeg":
	default:
		return "", internal.ErrBadDocumentType
	}

	if err := os.MkdirAll(h.Upload.DocumentDir, 0o755); err != nil {
		return "", internal.NewInternalError("failed to store document", err)
	}

	filename := uuid.NewString() + ext
	dst, err := os.Create(filepath.Join(h.Upload.DocumentDir, filename))
	if err != nil {
		return "", internal.NewInternalError("failed to store document", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", internal.NewInternalError("failed to store document", err)
	}

	return "/uploads/documents/" + filename, nil
}
