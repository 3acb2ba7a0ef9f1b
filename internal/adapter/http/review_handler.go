package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	reviewUC "grantflow-backend/internal/usecase/review"
)

type ReviewHandler struct{ uc *reviewUC.Usecase }

func NewReviewHandler(uc *reviewUC.Usecase) *ReviewHandler { return &ReviewHandler{uc: uc} }

type assignReq struct {
	ReviewerIDs []string `json:"reviewer_ids" validate:"required,min=1,dive,hex32"`
}

func (h *ReviewHandler) AssignReviewers(c echo.Context) error {
	act, err := ResolveActor(c)
	if err != nil {
		return writeErr(c, err)
	}
	var req assignReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	result, err := h.uc.AssignReviewers(c.Request().Context(), act, c.Param("version_id"), req.ReviewerIDs)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

type recordReviewReq struct {
	Status  string `json:"status" validate:"required,reviewstatus"`
	Comment string `json:"comment"`
}

func (h *ReviewHandler) RecordReview(c echo.Context) error {
	act, err := ResolveActor(c)
	if err != nil {
		return writeErr(c, err)
	}
	var req recordReviewReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.RecordReview(c.Request().Context(), act, c.Param("version_id"), reviewUC.RecordReviewInput{
		Status:  req.Status,
		Comment: req.Comment,
	})
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ReviewHandler) ListReviews(c echo.Context) error {
	dtos, err := h.uc.ListReviews(c.Request().Context(), c.Param("version_id"))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

type commentReq struct {
	Content string `json:"content" validate:"required"`
}

func (h *ReviewHandler) AddComment(c echo.Context) error {
	act, err := ResolveActor(c)
	if err != nil {
		return writeErr(c, err)
	}
	var req commentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.AddComment(c.Request().Context(), act, c.Param("review_id"), req.Content)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *ReviewHandler) EditComment(c echo.Context) error {
	act, err := ResolveActor(c)
	if err != nil {
		return writeErr(c, err)
	}
	var req commentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.EditComment(c.Request().Context(), act, c.Param("comment_id"), req.Content)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ReviewHandler) DeleteComment(c echo.Context) error {
	act, err := ResolveActor(c)
	if err != nil {
		return writeErr(c, err)
	}
	if err := h.uc.DeleteComment(c.Request().Context(), act, c.Param("comment_id")); err != nil {
		return writeErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

type changeTypeReq struct {
	NewType string `json:"new_type" validate:"required,noticetype"`
	Comment string `json:"comment"`
}

func (h *ReviewHandler) ChangeType(c echo.Context) error {
	act, err := ResolveActor(c)
	if err != nil {
		return writeErr(c, err)
	}
	var req changeTypeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	result, err := h.uc.ChangeType(c.Request().Context(), act, c.Param("submission_id"), reviewUC.ChangeTypeInput{
		NewType: req.NewType,
		Comment: req.Comment,
	})
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, result)
}
