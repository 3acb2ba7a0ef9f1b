package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	budgetUC "grantflow-backend/internal/usecase/budget"
	projectUC "grantflow-backend/internal/usecase/project"
)

type ProjectHandler struct {
	projects *projectUC.Usecase
	budgets  *budgetUC.Usecase
}

func NewProjectHandler(projects *projectUC.Usecase, budgets *budgetUC.Usecase) *ProjectHandler {
	return &ProjectHandler{projects: projects, budgets: budgets}
}

func (h *ProjectHandler) Get(c echo.Context) error {
	dto, err := h.projects.Get(c.Request().Context(), c.Param("project_id"))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type statusReq struct {
	Status string `json:"status" validate:"required"`
}

func (h *ProjectHandler) UpdateStatus(c echo.Context) error {
	act, err := ResolveActor(c)
	if err != nil {
		return writeErr(c, err)
	}
	var req statusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.projects.UpdateStatus(c.Request().Context(), act, c.Param("project_id"), req.Status)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ProjectHandler) ListBudgets(c echo.Context) error {
	dto, err := h.budgets.List(c.Request().Context(), c.Param("project_id"))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type budgetItemReq struct {
	ItemLabel string          `json:"item_label" validate:"required"`
	Amount    decimal.Decimal `json:"amount"`
}

func (h *ProjectHandler) AddBudget(c echo.Context) error {
	var req budgetItemReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.budgets.Add(c.Request().Context(), c.Param("project_id"), budgetUC.ItemInput{
		ItemLabel: req.ItemLabel,
		Amount:    req.Amount,
	})
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *ProjectHandler) EditBudget(c echo.Context) error {
	var req budgetItemReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.budgets.Edit(c.Request().Context(), c.Param("budget_id"), budgetUC.ItemInput{
		ItemLabel: req.ItemLabel,
		Amount:    req.Amount,
	})
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ProjectHandler) DeleteBudget(c echo.Context) error {
	dto, err := h.budgets.Delete(c.Request().Context(), c.Param("budget_id"))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type taskReq struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
}

func (h *ProjectHandler) AddTask(c echo.Context) error {
	var req taskReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.projects.AddTask(c.Request().Context(), c.Param("project_id"), projectUC.TaskInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *ProjectHandler) ListTasks(c echo.Context) error {
	dtos, err := h.projects.ListTasks(c.Request().Context(), c.Param("project_id"))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}
