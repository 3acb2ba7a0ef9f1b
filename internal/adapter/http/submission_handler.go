package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	submissionUC "grantflow-backend/internal/usecase/submission"
)

type SubmissionHandler struct{ uc *submissionUC.Usecase }

func NewSubmissionHandler(uc *submissionUC.Usecase) *SubmissionHandler {
	return &SubmissionHandler{uc: uc}
}

type submitReq struct {
	Title        string `json:"title" validate:"required"`
	Description  string `json:"description"`
	Participants string `json:"participants"`
	FileURL      string `json:"file_url"`
}

func (h *SubmissionHandler) Submit(c echo.Context) error {
	act, err := ResolveActor(c)
	if err != nil {
		return writeErr(c, err)
	}
	var req submitReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.Submit(c.Request().Context(), act, c.Param("notice_id"), submissionUC.SubmitInput{
		Title:        req.Title,
		Description:  req.Description,
		Participants: req.Participants,
		FileURL:      req.FileURL,
	})
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *SubmissionHandler) Resubmit(c echo.Context) error {
	act, err := ResolveActor(c)
	if err != nil {
		return writeErr(c, err)
	}
	var req submitReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.Resubmit(c.Request().Context(), act, c.Param("submission_id"), submissionUC.SubmitInput{
		Title:        req.Title,
		Description:  req.Description,
		Participants: req.Participants,
		FileURL:      req.FileURL,
	})
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *SubmissionHandler) ListForNotice(c echo.Context) error {
	act, err := ResolveActor(c)
	if err != nil {
		return writeErr(c, err)
	}
	out, err := h.uc.ListForNotice(c.Request().Context(), act, c.Param("notice_id"))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *SubmissionHandler) Get(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("submission_id"))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
