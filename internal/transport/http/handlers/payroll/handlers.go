package payrollhandler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"sobat/internal/domain/auth"
	"sobat/internal/domain/payroll"
	"sobat/internal/transport/http/api"
	"sobat/internal/transport/http/middleware"
	"sobat/internal/transport/http/shared"
)

type Handler struct {
	Service         *payroll.Service
	MaxUploadBytes  int64
	DefaultPageSize int
	MaxPageSize     int
}

func NewHandler(service *payroll.Service, maxUploadBytes int64, defaultPageSize, maxPageSize int) *Handler {
	return &Handler{
		Service:         service,
		MaxUploadBytes:  maxUploadBytes,
		DefaultPageSize: defaultPageSize,
		MaxPageSize:     maxPageSize,
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/payroll", func(r chi.Router) {
		r.Route("/records/{recordID}", func(r chi.Router) {
			r.With(middleware.RequirePermission(auth.PermPayrollRead)).Get("/", h.handleGetRecord)
			r.With(middleware.RequirePermission(auth.PermPayrollRead)).Get("/slip", h.handleDownloadSlip)
			r.With(middleware.RequirePermission(auth.PermPayrollApprove)).Patch("/status", h.handleUpdateStatus)
			r.With(middleware.RequirePermission(auth.PermPayrollDelete)).Delete("/", h.handleDeleteRecord)
		})
		r.Route("/{division}", func(r chi.Router) {
			r.With(middleware.RequirePermission(auth.PermPayrollRead)).Get("/", h.handleListRecords)
			r.With(middleware.RequirePermission(auth.PermPayrollImport)).Post("/import", h.handleImport)
			r.With(middleware.RequirePermission(auth.PermPayrollImport)).Post("/import/commit", h.handleCommit)
		})
	})
}

func (h *Handler) division(w http.ResponseWriter, r *http.Request) (payroll.Division, bool) {
	division, err := payroll.ParseDivision(chi.URLParam(r, "division"))
	if err != nil {
		api.Fail(w, http.StatusNotFound, "unknown_division", "unknown payroll division", middleware.GetRequestID(r.Context()))
		return "", false
	}
	return division, true
}

// handleImport parses an uploaded workbook and returns the preview. The
// workbook arrives as multipart "file"; an optional "period" form field
// names the payroll month.
func (h *Handler) handleImport(w http.ResponseWriter, r *http.Request) {
	division, ok := h.division(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(h.MaxUploadBytes); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "multipart form with a file field is required", middleware.GetRequestID(r.Context()))
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "file field is required", middleware.GetRequestID(r.Context()))
		return
	}
	defer file.Close()

	period, err := shared.ParsePeriod(r.FormValue("period"))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", err.Error(), middleware.GetRequestID(r.Context()))
		return
	}

	preview, err := h.Service.Import(file, division, period, header.Filename)
	if errors.Is(err, payroll.ErrHeaderNotFound) {
		api.Fail(w, http.StatusUnprocessableEntity, "unrecognized_format", err.Error(), middleware.GetRequestID(r.Context()))
		return
	}
	if errors.Is(err, payroll.ErrEmptyWorkbook) {
		api.Fail(w, http.StatusUnprocessableEntity, "unrecognized_format", "workbook has no sheets", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		log.Printf("import parse failed for %s: %v", division, err)
		api.Fail(w, http.StatusBadRequest, "invalid_workbook", "unable to read workbook", middleware.GetRequestID(r.Context()))
		return
	}

	if len(preview.UnresolvedFields) > 0 {
		log.Printf("import %s: unresolved fields %v", division, preview.UnresolvedFields)
	}
	api.Success(w, preview, middleware.GetRequestID(r.Context()))
}

type commitRequest struct {
	Rows []payroll.Row `json:"rows"`
}

func (h *Handler) handleCommit(w http.ResponseWriter, r *http.Request) {
	division, ok := h.division(w, r)
	if !ok {
		return
	}

	var req commitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid json payload", middleware.GetRequestID(r.Context()))
		return
	}
	if len(req.Rows) == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "rows are required", middleware.GetRequestID(r.Context()))
		return
	}

	result, err := h.Service.Commit(r.Context(), division, req.Rows)
	if err != nil {
		log.Printf("commit failed for %s: %v", division, err)
		api.Fail(w, http.StatusInternalServerError, "internal_error", "unable to save payroll rows", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, result, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListRecords(w http.ResponseWriter, r *http.Request) {
	division, ok := h.division(w, r)
	if !ok {
		return
	}

	period, err := shared.ParsePeriod(r.URL.Query().Get("period"))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", err.Error(), middleware.GetRequestID(r.Context()))
		return
	}
	status := r.URL.Query().Get("status")
	page := shared.ParsePagination(r, h.DefaultPageSize, h.MaxPageSize)

	records, total, err := h.Service.List(r.Context(), division, period, status, page.Limit, page.Offset)
	if errors.Is(err, payroll.ErrInvalidStatus) {
		api.Fail(w, http.StatusBadRequest, "invalid_status", "unknown status filter", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		log.Printf("list records failed for %s: %v", division, err)
		api.Fail(w, http.StatusInternalServerError, "internal_error", "unable to list payroll records", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]any{
		"records": records,
		"total":   total,
		"limit":   page.Limit,
		"offset":  page.Offset,
	}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGetRecord(w http.ResponseWriter, r *http.Request) {
	rec, err := h.Service.Get(r.Context(), chi.URLParam(r, "recordID"))
	if errors.Is(err, payroll.ErrRecordNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "payroll record not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		log.Printf("get record failed: %v", err)
		api.Fail(w, http.StatusInternalServerError, "internal_error", "unable to load payroll record", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, payroll.FormatRecord(rec), middleware.GetRequestID(r.Context()))
}

type statusRequest struct {
	Status     string `json:"status"`
	SignerName string `json:"signerName"`
}

func (h *Handler) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid json payload", middleware.GetRequestID(r.Context()))
		return
	}

	rec, err := h.Service.UpdateStatus(r.Context(), chi.URLParam(r, "recordID"), req.Status, req.SignerName)
	if errors.Is(err, payroll.ErrRecordNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "payroll record not found", middleware.GetRequestID(r.Context()))
		return
	}
	if errors.Is(err, payroll.ErrInvalidStatus) {
		api.Fail(w, http.StatusBadRequest, "invalid_status", "status transition not allowed", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		log.Printf("update status failed: %v", err)
		api.Fail(w, http.StatusInternalServerError, "internal_error", "unable to update payroll record", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, rec, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDeleteRecord(w http.ResponseWriter, r *http.Request) {
	err := h.Service.Delete(r.Context(), chi.URLParam(r, "recordID"))
	if errors.Is(err, payroll.ErrRecordNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "payroll record not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		log.Printf("delete record failed: %v", err)
		api.Fail(w, http.StatusInternalServerError, "internal_error", "unable to delete payroll record", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]any{"deleted": true}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDownloadSlip(w http.ResponseWriter, r *http.Request) {
	pdf, name, err := h.Service.Slip(r.Context(), chi.URLParam(r, "recordID"))
	if errors.Is(err, payroll.ErrRecordNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "payroll record not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		log.Printf("render slip failed: %v", err)
		api.Fail(w, http.StatusInternalServerError, "internal_error", "unable to render payslip", middleware.GetRequestID(r.Context()))
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	_, _ = w.Write(pdf)
}
