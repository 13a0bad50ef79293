package employeeshandler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"sobat/internal/domain/auth"
	"sobat/internal/domain/employee"
	"sobat/internal/domain/payroll"
	"sobat/internal/transport/http/api"
	"sobat/internal/transport/http/middleware"
)

type Handler struct {
	Store *employee.Store
}

func NewHandler(store *employee.Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/employees", func(r chi.Router) {
		r.With(middleware.RequirePermission(auth.PermEmployeesRead)).Get("/", h.handleList)
		r.With(middleware.RequirePermission(auth.PermEmployeesWrite)).Post("/", h.handleCreate)
		r.With(middleware.RequirePermission(auth.PermEmployeesRead)).Get("/{employeeID}", h.handleGet)
		r.With(middleware.RequirePermission(auth.PermEmployeesWrite)).Put("/{employeeID}", h.handleUpdate)
		r.With(middleware.RequirePermission(auth.PermEmployeesWrite)).Delete("/{employeeID}", h.handleDeactivate)
	})
}

type employeePayload struct {
	Name        string `json:"name"`
	Division    string `json:"division"`
	Position    string `json:"position"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	BankAccount string `json:"bankAccount"`
	JoinDate    string `json:"joinDate"`
	Active      *bool  `json:"active"`
}

func (p employeePayload) validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return employee.ErrNameRequired
	}
	if p.Division != "" {
		if _, err := payroll.ParseDivision(p.Division); err != nil {
			return err
		}
	}
	return nil
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	division := r.URL.Query().Get("division")
	if division != "" {
		if _, err := payroll.ParseDivision(division); err != nil {
			api.Fail(w, http.StatusBadRequest, "unknown_division", "unknown division", middleware.GetRequestID(r.Context()))
			return
		}
	}
	activeOnly := r.URL.Query().Get("all") == ""

	employees, err := h.Store.ListEmployees(r.Context(), division, activeOnly)
	if err != nil {
		log.Printf("list employees failed: %v", err)
		api.Fail(w, http.StatusInternalServerError, "internal_error", "unable to list employees", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, employees, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req employeePayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid json payload", middleware.GetRequestID(r.Context()))
		return
	}
	if err := req.validate(); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", err.Error(), middleware.GetRequestID(r.Context()))
		return
	}

	joinDate := time.Now()
	if req.JoinDate != "" {
		parsed, err := time.Parse("2006-01-02", req.JoinDate)
		if err != nil {
			api.Fail(w, http.StatusBadRequest, "invalid_payload", "joinDate must be formatted as YYYY-MM-DD", middleware.GetRequestID(r.Context()))
			return
		}
		joinDate = parsed
	}

	emp := employee.Employee{
		Name:        strings.TrimSpace(req.Name),
		Division:    req.Division,
		Position:    req.Position,
		Email:       req.Email,
		Phone:       req.Phone,
		BankAccount: req.BankAccount,
		JoinDate:    joinDate,
		Active:      true,
	}
	if req.Active != nil {
		emp.Active = *req.Active
	}

	id, err := h.Store.CreateEmployee(r.Context(), emp)
	if errors.Is(err, employee.ErrDuplicateName) {
		api.Fail(w, http.StatusConflict, "duplicate_name", "an active employee with this name already exists", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		log.Printf("create employee failed: %v", err)
		api.Fail(w, http.StatusInternalServerError, "internal_error", "unable to create employee", middleware.GetRequestID(r.Context()))
		return
	}
	emp.ID = id
	api.Created(w, emp, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	emp, err := h.Store.GetEmployee(r.Context(), chi.URLParam(r, "employeeID"))
	if errors.Is(err, employee.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		log.Printf("get employee failed: %v", err)
		api.Fail(w, http.StatusInternalServerError, "internal_error", "unable to load employee", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, emp, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "employeeID")
	var req employeePayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid json payload", middleware.GetRequestID(r.Context()))
		return
	}
	if err := req.validate(); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", err.Error(), middleware.GetRequestID(r.Context()))
		return
	}

	emp := employee.Employee{
		Name:        strings.TrimSpace(req.Name),
		Division:    req.Division,
		Position:    req.Position,
		Email:       req.Email,
		Phone:       req.Phone,
		BankAccount: req.BankAccount,
		Active:      true,
	}
	if req.Active != nil {
		emp.Active = *req.Active
	}

	err := h.Store.UpdateEmployee(r.Context(), id, emp)
	if errors.Is(err, employee.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		log.Printf("update employee failed: %v", err)
		api.Fail(w, http.StatusInternalServerError, "internal_error", "unable to update employee", middleware.GetRequestID(r.Context()))
		return
	}

	updated, err := h.Store.GetEmployee(r.Context(), id)
	if err != nil {
		log.Printf("reload employee failed: %v", err)
		api.Fail(w, http.StatusInternalServerError, "internal_error", "unable to load employee", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, updated, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDeactivate(w http.ResponseWriter, r *http.Request) {
	err := h.Store.DeactivateEmployee(r.Context(), chi.URLParam(r, "employeeID"))
	if errors.Is(err, employee.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		log.Printf("deactivate employee failed: %v", err)
		api.Fail(w, http.StatusInternalServerError, "internal_error", "unable to deactivate employee", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]any{"deactivated": true}, middleware.GetRequestID(r.Context()))
}
