package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	noticeUC "grantflow-backend/internal/usecase/notice"
)

type NoticeHandler struct{ uc *noticeUC.Usecase }

func NewNoticeHandler(uc *noticeUC.Usecase) *NoticeHandler { return &NoticeHandler{uc: uc} }

type noticeReq struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`
	Type        string    `json:"type" validate:"required,noticetype"`
	ExpiresAt   time.Time `json:"expires_at" validate:"required"`
	OrgUnitIDs  []string  `json:"org_unit_ids" validate:"dive,hex32"`
}

func (h *NoticeHandler) Publish(c echo.Context) error {
	act, err := ResolveActor(c)
	if err != nil {
		return writeErr(c, err)
	}
	var req noticeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.Create(c.Request().Context(), act, noticeUC.CreateNoticeInput{
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		ExpiresAt:   req.ExpiresAt,
		OrgUnitIDs:  req.OrgUnitIDs,
	})
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *NoticeHandler) Update(c echo.Context) error {
	act, err := ResolveActor(c)
	if err != nil {
		return writeErr(c, err)
	}
	var req noticeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.Update(c.Request().Context(), act, c.Param("notice_id"), noticeUC.CreateNoticeInput{
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		ExpiresAt:   req.ExpiresAt,
		OrgUnitIDs:  req.OrgUnitIDs,
	})
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *NoticeHandler) Delete(c echo.Context) error {
	act, err := ResolveActor(c)
	if err != nil {
		return writeErr(c, err)
	}
	if err := h.uc.SoftDelete(c.Request().Context(), act, c.Param("notice_id")); err != nil {
		return writeErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *NoticeHandler) Get(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("notice_id"))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *NoticeHandler) ListVisible(c echo.Context) error {
	act, err := ResolveActor(c)
	if err != nil {
		return writeErr(c, err)
	}
	dtos, err := h.uc.ListVisible(c.Request().Context(), act)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}
