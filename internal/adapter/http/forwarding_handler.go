package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	forwardingUC "grantflow-backend/internal/usecase/forwarding"
)

type ForwardingHandler struct{ uc *forwardingUC.Usecase }

func NewForwardingHandler(uc *forwardingUC.Usecase) *ForwardingHandler {
	return &ForwardingHandler{uc: uc}
}

func (h *ForwardingHandler) ForwardNotice(c echo.Context) error {
	act, err := ResolveActor(c)
	if err != nil {
		return writeErr(c, err)
	}
	result, err := h.uc.ForwardNotice(c.Request().Context(), act, c.Param("notice_id"))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

type forwardProposalReq struct {
	TargetRole string `json:"target_role" validate:"required"`
	Remarks    string `json:"remarks"`
}

func (h *ForwardingHandler) ForwardProposal(c echo.Context) error {
	act, err := ResolveActor(c)
	if err != nil {
		return writeErr(c, err)
	}
	var req forwardProposalReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.ForwardProposal(c.Request().Context(), act, c.Param("submission_id"), forwardingUC.ForwardProposalInput{
		TargetRole: req.TargetRole,
		Remarks:    req.Remarks,
	})
	if err != nil {
		return writeErr(c, err)
	}
	if dto.AlreadyDone {
		return c.JSON(http.StatusOK, dto)
	}
	return c.JSON(http.StatusCreated, dto)
}
