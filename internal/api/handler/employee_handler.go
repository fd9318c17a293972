package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shoprecords/records-api/internal/core/domain"
	"github.com/shoprecords/records-api/internal/core/ports"
)

// EmployeeHandler handles HTTP requests for employees.
type EmployeeHandler struct {
	service ports.EmployeeService
}

func NewEmployeeHandler(service ports.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{service: service}
}

// List handles GET /api/employees.
//
// @Summary      List employees
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        shop_id  query     int  false  "Only employees of this shop"
// @Success      200      {array}   domain.Employee
// @Failure      400      {object}  errorResponse
// @Router       /employees [get]
func (h *EmployeeHandler) List(c echo.Context) error {
	var filter domain.EmployeeFilter
	if err := echo.QueryParamsBinder(c).Int64("shop_id", &filter.ShopID).BindError(); err != nil {
		return invalidQuery(err)
	}

	employees, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, employees)
}

// Get handles GET /api/employees/:id.
//
// @Summary      Get an employee
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Employee ID"
// @Success      200  {object}  domain.Employee
// @Failure      404  {object}  errorResponse
// @Router       /employees/{id} [get]
func (h *EmployeeHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	employee, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, employee)
}

// Create handles POST /api/employees.
//
// @Summary      Create an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string           false  "Replays the original response for a repeated key"
// @Param        body             body      employeeRequest  true   "Employee details"
// @Success      201              {object}  domain.Employee
// @Failure      400              {object}  errorResponse
// @Router       /employees [post]
func (h *EmployeeHandler) Create(c echo.Context) error {
	var req employeeRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}
	in, err := employeeInput(req)
	if err != nil {
		return err
	}
	in.IdempotencyKey = idempotencyKey(c)

	employee, err := h.service.Create(c.Request().Context(), in)
	if err != nil {
		return err
	}
	countMutation(domain.EntityEmployee, domain.AuditCreate)
	return c.JSON(http.StatusCreated, employee)
}

// Update handles PUT /api/employees/:id.
//
// @Summary      Replace an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int              true  "Employee ID"
// @Param        body  body      employeeRequest  true  "Employee details"
// @Success      200   {object}  domain.Employee
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /employees/{id} [put]
func (h *EmployeeHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req employeeRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}
	in, err := employeeInput(req)
	if err != nil {
		return err
	}

	employee, err := h.service.Update(c.Request().Context(), id, in)
	if err != nil {
		return err
	}
	countMutation(domain.EntityEmployee, domain.AuditUpdate)
	return c.JSON(http.StatusOK, employee)
}

// Delete handles DELETE /api/employees/:id.
//
// @Summary      Delete an employee
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Employee ID"
// @Success      200  {object}  messageResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /employees/{id} [delete]
func (h *EmployeeHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	countMutation(domain.EntityEmployee, domain.AuditDelete)
	return c.JSON(http.StatusOK, messageResponse{Message: "employee deleted successfully"})
}

func employeeInput(req employeeRequest) (ports.EmployeeInput, error) {
	hired, err := optionalDate("hire_date", req.HireDate)
	if err != nil {
		return ports.EmployeeInput{}, err
	}
	return ports.EmployeeInput{
		ShopID:   req.ShopID,
		Name:     req.Name,
		Position: req.Position,
		Phone:    req.Phone,
		Email:    req.Email,
		IDNumber: req.IDNumber,
		HireDate: hired,
		Status:   req.Status,
	}, nil
}
