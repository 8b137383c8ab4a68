package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"hrhub/internal/models"
	"hrhub/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// EmployeeHandler handles employee-related requests
type EmployeeHandler struct {
	repo repository.EmployeeRepository
}

// NewEmployeeHandler creates a new EmployeeHandler
func NewEmployeeHandler(repo repository.EmployeeRepository) *EmployeeHandler {
	return &EmployeeHandler{repo: repo}
}

// ListEmployees godoc
// @Summary List employees
// @Description Returns employees with optional filtering
// @Tags employees
// @Produce json
// @Security BearerAuth
// @Param search query string false "Search by name, employee number or email"
// @Param position_id query string false "Filter by position ID"
// @Param branch_id query string false "Filter by branch ID"
// @Param status query string false "Filter by status (active, inactive)"
// @Param order_by query string false "Order by field (last_name, employee_number, date_hired)"
// @Param order_desc query bool false "Order descending"
// @Param limit query int false "Limit results"
// @Param offset query int false "Offset results"
// @Success 200 {array} models.Employee
// @Failure 400 {object} models.ErrorResponse "Invalid parameters"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /employees [get]
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	filter := repository.EmployeeFilter{}

	if search := c.Query("search"); search != "" {
		filter.Search = &search
	}
	if positionStr := c.Query("position_id"); positionStr != "" {
		positionID, err := uuid.Parse(positionStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid position id"})
			return
		}
		filter.PositionID = &positionID
	}
	if branchStr := c.Query("branch_id"); branchStr != "" {
		branchID, err := uuid.Parse(branchStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid branch id"})
			return
		}
		filter.BranchID = &branchID
	}
	if status := c.Query("status"); status != "" {
		filter.Status = &status
	}
	if orderBy := c.Query("order_by"); orderBy != "" {
		filter.OrderBy = orderBy
		filter.OrderDesc = c.Query("order_desc") == "true"
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 0 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid limit"})
			return
		}
		filter.Limit = &limit
	}
	if offsetStr := c.Query("offset"); offsetStr != "" {
		offset, err := strconv.Atoi(offsetStr)
		if err != nil || offset < 0 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid offset"})
			return
		}
		filter.Offset = &offset
	}

	employees, err := h.repo.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to fetch employees"})
		return
	}

	c.JSON(http.StatusOK, employees)
}

// GetEmployee godoc
// @Summary Get employee by ID
// @Tags employees
// @Produce json
// @Security BearerAuth
// @Param id path string true "Employee ID (UUID)"
// @Success 200 {object} models.Employee
// @Failure 400 {object} models.ErrorResponse "Invalid employee ID"
// @Failure 404 {object} models.ErrorResponse "Employee not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /employees/{id} [get]
func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil || id == uuid.Nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid employee id"})
		return
	}

	employee, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "employee not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "internal server error"})
		return
	}

	c.JSON(http.StatusOK, employee)
}

// CreateEmployee godoc
// @Summary Create employee
// @Tags employees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateEmployeeRequest true "Employee details"
// @Success 201 {object} models.Employee
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 409 {object} models.ErrorResponse "Employee number or RFID already exists"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /employees [post]
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var req models.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	status := models.EmployeeStatusActive
	if req.Status != nil {
		status = *req.Status
	}

	employee := &models.Employee{
		EmployeeNumber:        req.EmployeeNumber,
		FirstName:             req.FirstName,
		LastName:              req.LastName,
		MiddleName:            req.MiddleName,
		Email:                 req.Email,
		Phone:                 req.Phone,
		DateOfBirth:           req.DateOfBirth,
		Gender:                req.Gender,
		CivilStatus:           req.CivilStatus,
		Address:               req.Address,
		PositionID:            req.PositionID,
		BranchID:              req.BranchID,
		DateHired:             req.DateHired,
		BasicSalary:           req.BasicSalary,
		RFID:                  req.RFID,
		Status:                status,
		SSS:                   req.SSS,
		Philhealth:            req.Philhealth,
		Pagibig:               req.Pagibig,
		TIN:                   req.TIN,
		BankName:              req.BankName,
		BankAccount:           req.BankAccount,
		EmergencyContactName:  req.EmergencyContactName,
		EmergencyContactPhone: req.EmergencyContactPhone,
	}

	if err := h.repo.Create(c.Request.Context(), employee); err != nil {
		switch {
		case errors.Is(err, repository.ErrEmployeeNumberExists):
			c.JSON(http.StatusConflict, models.ErrorResponse{Error: "employee number already exists"})
		case errors.Is(err, repository.ErrRFIDExists):
			c.JSON(http.StatusConflict, models.ErrorResponse{Error: "rfid tag already assigned"})
		default:
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to create employee"})
		}
		return
	}

	c.JSON(http.StatusCreated, employee)
}

// UpdateEmployee godoc
// @Summary Update employee
// @Tags employees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Employee ID (UUID)"
// @Param request body models.UpdateEmployeeRequest true "Fields to update"
// @Success 200 {object} models.Employee
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 404 {object} models.ErrorResponse "Employee not found"
// @Failure 409 {object} models.ErrorResponse "Employee number or RFID already exists"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /employees/{id} [put]
func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil || id == uuid.Nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid employee id"})
		return
	}

	var req models.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	employee, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "employee not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "internal server error"})
		return
	}

	applyEmployeeUpdate(employee, &req)

	if err := h.repo.Update(c.Request.Context(), employee); err != nil {
		switch {
		case errors.Is(err, repository.ErrEmployeeNumberExists):
			c.JSON(http.StatusConflict, models.ErrorResponse{Error: "employee number already exists"})
		case errors.Is(err, repository.ErrRFIDExists):
			c.JSON(http.StatusConflict, models.ErrorResponse{Error: "rfid tag already assigned"})
		default:
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to update employee"})
		}
		return
	}

	c.JSON(http.StatusOK, employee)
}

// DeleteEmployee godoc
// @Summary Delete employee
// @Description Soft-deletes an employee record
// @Tags employees
// @Produce json
// @Security BearerAuth
// @Param id path string true "Employee ID (UUID)"
// @Success 200 {object} models.SuccessResponse
// @Failure 400 {object} models.ErrorResponse "Invalid employee ID"
// @Failure 404 {object} models.ErrorResponse "Employee not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /employees/{id} [delete]
func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil || id == uuid.Nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid employee id"})
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "employee not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to delete employee"})
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse{Message: "employee deleted"})
}

func applyEmployeeUpdate(employee *models.Employee, req *models.UpdateEmployeeRequest) {
	if req.EmployeeNumber != nil {
		employee.EmployeeNumber = *req.EmployeeNumber
	}
	if req.FirstName != nil {
		employee.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		employee.LastName = *req.LastName
	}
	if req.MiddleName != nil {
		employee.MiddleName = req.MiddleName
	}
	if req.Email != nil {
		employee.Email = req.Email
	}
	if req.Phone != nil {
		employee.Phone = req.Phone
	}
	if req.DateOfBirth != nil {
		employee.DateOfBirth = req.DateOfBirth
	}
	if req.Gender != nil {
		employee.Gender = req.Gender
	}
	if req.CivilStatus != nil {
		employee.CivilStatus = req.CivilStatus
	}
	if req.Address != nil {
		employee.Address = req.Address
	}
	if req.PositionID != nil {
		employee.PositionID = req.PositionID
	}
	if req.BranchID != nil {
		employee.BranchID = req.BranchID
	}
	if req.DateHired != nil {
		employee.DateHired = req.DateHired
	}
	if req.BasicSalary != nil {
		employee.BasicSalary = req.BasicSalary
	}
	if req.RFID != nil {
		employee.RFID = req.RFID
	}
	if req.Status != nil {
		employee.Status = *req.Status
	}
	if req.SSS != nil {
		employee.SSS = req.SSS
	}
	if req.Philhealth != nil {
		employee.Philhealth = req.Philhealth
	}
	if req.Pagibig != nil {
		employee.Pagibig = req.Pagibig
	}
	if req.TIN != nil {
		employee.TIN = req.TIN
	}
	if req.BankName != nil {
		employee.BankName = req.BankName
	}
	if req.BankAccount != nil {
		employee.BankAccount = req.BankAccount
	}
	if req.EmergencyContactName != nil {
		employee.EmergencyContactName = req.EmergencyContactName
	}
	if req.EmergencyContactPhone != nil {
		employee.EmergencyContactPhone = req.EmergencyContactPhone
	}
}
