package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	decisionUC "grantflow-backend/internal/usecase/decision"
)

type DecisionHandler struct{ uc *decisionUC.Usecase }

func NewDecisionHandler(uc *decisionUC.Usecase) *DecisionHandler { return &DecisionHandler{uc: uc} }

type decideReq struct {
	Status string `json:"status" validate:"required,decisionstatus"`
	Reason string `json:"reason" validate:"required"`
}

func (h *DecisionHandler) Decide(c echo.Context) error {
	act, err := ResolveActor(c)
	if err != nil {
		return writeErr(c, err)
	}
	var req decideReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.Decide(c.Request().Context(), act, c.Param("submission_id"), decisionUC.DecideInput{
		Status: req.Status,
		Reason: req.Reason,
	})
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

type approveReq struct {
	Status          string          `json:"status" validate:"required"`
	Reason          string          `json:"reason"`
	AllocatedBudget decimal.Decimal `json:"allocated_budget"`
	SignedFileURL   string          `json:"signed_file_url"`
}

func (h *DecisionHandler) Approve(c echo.Context) error {
	act, err := ResolveActor(c)
	if err != nil {
		return writeErr(c, err)
	}
	var req approveReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.Approve(c.Request().Context(), act, c.Param("submission_id"), decisionUC.ApproveInput{
		Status:          req.Status,
		Reason:          req.Reason,
		AllocatedBudget: req.AllocatedBudget,
		SignedFileURL:   req.SignedFileURL,
	})
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}
