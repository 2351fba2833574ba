package employee

import (
	"net/http"

	"bookify/internal/pkg/applog"
	"bookify/internal/pkg/hateoas"
	"bookify/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service  *Service
	links    *hateoas.Table
	tokenTTL int64
}

// NewHandler takes the token lifetime in seconds, reported on login.
func NewHandler(service *Service, links *hateoas.Table, tokenTTL int64) *Handler {
	return &Handler{service: service, links: links, tokenTTL: tokenTTL}
}

func (h *Handler) entityLinks(c *gin.Context, id string, self hateoas.Relation) hateoas.Links {
	b := h.links.Builder(c.Request)
	if self != hateoas.GetEmployee {
		b.Add(hateoas.ResourceEmployee, hateoas.GetEmployee, id)
	}
	if self != hateoas.UpdateEmployee {
		b.Add(hateoas.ResourceEmployee, hateoas.UpdateEmployee, id)
	}
	return b.Self(hateoas.ResourceEmployee, self, id).Build()
}

// GetAll godoc
// @Summary List employees
// @Tags Employees
// @Security BearerAuth
// @Produce json
// @Router /employees [get]
func (h *Handler) GetAll(c *gin.Context) {
	employees, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	applog.Custom("Retrieve list of employees. Size : %d", len(employees))

	items := make([]EmployeeResponse, 0, len(employees))
	for i := range employees {
		id := employees[i].ID.String()
		links := h.links.Builder(c.Request).
			Add(hateoas.ResourceEmployee, hateoas.GetEmployee, id).
			Add(hateoas.ResourceEmployee, hateoas.UpdateEmployee, id).
			Build()
		items = append(items, toResponse(&employees[i], links))
	}

	links := h.links.Builder(c.Request).
		Add(hateoas.ResourceEmployee, hateoas.CreateEmployee, "").
		Add(hateoas.ResourceEmployee, hateoas.CheckEmail, "").
		Self(hateoas.ResourceEmployee, hateoas.GetAllEmployees, "").
		Build()
	response.HAL(c, http.StatusOK, hateoas.NewCollection("employees", items, links))
}

// GetByID godoc
// @Summary Get an employee
// @Tags Employees
// @Security BearerAuth
// @Produce json
// @Param id path string true "Employee ID"
// @Router /employees/{id} [get]
func (h *Handler) GetByID(c *gin.Context) {
	id, ok := response.UUIDParam(c, "id")
	if !ok {
		return
	}

	e, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	applog.Get("employee", e.ID)

	response.HAL(c, http.StatusOK, toResponse(e, h.entityLinks(c, id.String(), hateoas.GetEmployee)))
}

// Create godoc
// @Summary Add an employee
// @Tags Employees
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body CreateEmployeeRequest true "Employee"
// @Router /employees [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateEmployeeRequest
	if !response.BindJSON(c, &req) {
		return
	}

	e, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	applog.Create("employee", e.ID)

	response.HAL(c, http.StatusCreated, toResponse(e, h.entityLinks(c, e.ID.String(), hateoas.GetEmployee)))
}

// Update godoc
// @Summary Update an employee
// @Tags Employees
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Employee ID"
// @Param body body UpdateEmployeeRequest true "Employee"
// @Router /employees/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	id, ok := response.UUIDParam(c, "id")
	if !ok {
		return
	}
	var req UpdateEmployeeRequest
	if !response.BindJSON(c, &req) {
		return
	}

	e, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	applog.Update("employee", e.ID)

	response.HAL(c, http.StatusOK, toResponse(e, h.entityLinks(c, id.String(), hateoas.UpdateEmployee)))
}

// CheckEmail godoc
// @Summary Check whether an email can be registered
// @Tags Employees
// @Produce json
// @Param email query string true "Email"
// @Router /employees/check-email [get]
func (h *Handler) CheckEmail(c *gin.Context) {
	email := c.Query("email")
	available := h.service.CheckEmail(c.Request.Context(), email)
	applog.Custom("Check email availability. Email : %q, available : %t", email, available)

	links := h.links.Builder(c.Request).
		Add(hateoas.ResourceEmployee, hateoas.CreateEmployee, "").
		Self(hateoas.ResourceEmployee, hateoas.CheckEmail, "").
		Build()
	response.HAL(c, http.StatusOK, CheckEmailResponse{Email: email, Available: available, Links: links})
}

// Login godoc
// @Summary Sign in as an employee
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Credentials"
// @Router /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if !response.BindJSON(c, &req) {
		return
	}

	token, e, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	applog.Custom("employee_login id=%s", e.ID)

	links := h.links.Builder(c.Request).
		Add(hateoas.ResourceRoot, hateoas.GetMainLinks, "").
		Add(hateoas.ResourceAuth, hateoas.Logout, "").
		Self(hateoas.ResourceAuth, hateoas.Login, "").
		Build()
	response.HAL(c, http.StatusOK, LoginResponse{
		Token:     token,
		ExpiresIn: h.tokenTTL,
		Employee:  toResponse(e, h.entityLinks(c, e.ID.String(), hateoas.GetEmployee)),
		Links:     links,
	})
}

// Logout godoc
// @Summary Sign out
// @Description Tokens are stateless; clients discard theirs.
// @Tags Auth
// @Router /auth/logout [post]
func (h *Handler) Logout(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
