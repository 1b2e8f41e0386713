package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/skillswap/skillswap-api/internal/api/metrics"
	"github.com/skillswap/skillswap-api/internal/core/ports"
)

// MessageHandler handles HTTP requests for the message inbox.
type MessageHandler struct {
	service ports.MessageService
}

func NewMessageHandler(service ports.MessageService) *MessageHandler {
	return &MessageHandler{service: service}
}

// List handles GET /v1/messages.
//
// @Summary      List messages
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Param        sender_id     query     string  false  "Sender id"
// @Param        recipient_id  query     string  false  "Recipient id"
// @Param        is_read       query     bool    false  "Read state"
// @Param        page          query     int     false  "Page number (1-based)"
// @Param        limit         query     int     false  "Page size, max 100; omit for the whole collection"
// @Success      200           {object}  listMessagesResponse
// @Failure      400           {object}  map[string]any
// @Failure      401           {object}  map[string]string
// @Router       /v1/messages [get]
func (h *MessageHandler) List(c echo.Context) error {
	page, err := queryPage(c)
	if err != nil {
		return err
	}
	isRead, err := queryBool(c, "is_read")
	if err != nil {
		return err
	}

	res, err := h.service.List(c.Request().Context(), ctxActor(c), ports.MessageFilter{
		SenderID:    c.QueryParam("sender_id"),
		RecipientID: c.QueryParam("recipient_id"),
		IsRead:      isRead,
		Page:        page,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toListMessagesResponse(res))
}

// Get handles GET /v1/messages/:id.
//
// @Summary      Get a message
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Message id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/messages/{id} [get]
func (h *MessageHandler) Get(c echo.Context) error {
	msg, err := h.service.Get(c.Request().Context(), ctxActor(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toMessageResponse(msg))
}

// Create handles POST /v1/messages.
//
// @Summary      Create a message
// @Tags         messages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      messageRequest  true  "Message"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  map[string]any
// @Failure      401   {object}  map[string]string
// @Router       /v1/messages [post]
func (h *MessageHandler) Create(c echo.Context) error {
	var req messageRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	msg, err := h.service.Create(c.Request().Context(), ctxActor(c), req.toInput())
	if err != nil {
		return err
	}

	metrics.ResourceWritesTotal.WithLabelValues("message", "create").Inc()
	return c.JSON(http.StatusCreated, toMessageResponse(msg))
}

// Update handles PUT /v1/messages/:id.
//
// @Summary      Replace a message
// @Tags         messages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string        true  "Message id"
// @Param        body  body      messageRequest  true  "Message"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  map[string]any
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/messages/{id} [put]
func (h *MessageHandler) Update(c echo.Context) error {
	var req messageRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	msg, err := h.service.Update(c.Request().Context(), ctxActor(c), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}

	metrics.ResourceWritesTotal.WithLabelValues("message", "update").Inc()
	return c.JSON(http.StatusOK, toMessageResponse(msg))
}

// Patch handles PATCH /v1/messages/:id.
//
// @Summary      Partially update a message
// @Tags         messages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Message id"
// @Param        body  body      messagePatchRequest  true  "Fields to change"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  map[string]any
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/messages/{id} [patch]
func (h *MessageHandler) Patch(c echo.Context) error {
	var req messagePatchRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	msg, err := h.service.Patch(c.Request().Context(), ctxActor(c), c.Param("id"), req.toPatch())
	if err != nil {
		return err
	}

	metrics.ResourceWritesTotal.WithLabelValues("message", "update").Inc()
	return c.JSON(http.StatusOK, toMessageResponse(msg))
}

// Delete handles DELETE /v1/messages/:id.
//
// @Summary      Delete a message
// @Tags         messages
// @Security     BearerAuth
// @Param        id   path  string  true  "Message id"
// @Success      204
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/messages/{id} [delete]
func (h *MessageHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), ctxActor(c), c.Param("id")); err != nil {
		return err
	}

	metrics.ResourceWritesTotal.WithLabelValues("message", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}
