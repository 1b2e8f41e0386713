package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/skillswap/skillswap-api/internal/api/metrics"
	"github.com/skillswap/skillswap-api/internal/core/ports"
)

// SkillHandler handles HTTP requests for the skill catalog.
type SkillHandler struct {
	service ports.SkillService
}

func NewSkillHandler(service ports.SkillService) *SkillHandler {
	return &SkillHandler{service: service}
}

// List handles GET /v1/skills.
//
// @Summary      List skills
// @Tags         skills
// @Produce      json
// @Param        user_id      query     string  false  "Owner id"
// @Param        category     query     string  false  "Category"
// @Param        level        query     string  false  "Level"  Enums(beginner, intermediate, expert)
// @Param        is_offering  query     bool    false  "Offered (true) or wanted (false)"
// @Param        search       query     string  false  "Case-insensitive match on title or description"
// @Param        page         query     int     false  "Page number (1-based)"
// @Param        limit        query     int     false  "Page size, max 100; omit for the whole collection"
// @Success      200          {object}  listSkillsResponse
// @Failure      400          {object}  map[string]any
// @Failure      401          {object}  map[string]string
// @Router       /v1/skills [get]
func (h *SkillHandler) List(c echo.Context) error {
	page, err := queryPage(c)
	if err != nil {
		return err
	}
	isOffering, err := queryBool(c, "is_offering")
	if err != nil {
		return err
	}

	res, err := h.service.List(c.Request().Context(), ctxActor(c), ports.SkillFilter{
		UserID:     c.QueryParam("user_id"),
		Category:   c.QueryParam("category"),
		Level:      c.QueryParam("level"),
		IsOffering: isOffering,
		Search:     c.QueryParam("search"),
		Page:       page,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toListSkillsResponse(res))
}

// Get handles GET /v1/skills/:id.
//
// @Summary      Get a skill
// @Tags         skills
// @Produce      json
// @Param        id   path      string  true  "Skill id"
// @Success      200  {object}  skillResponse
// @Failure      404  {object}  map[string]string
// @Router       /v1/skills/{id} [get]
func (h *SkillHandler) Get(c echo.Context) error {
	skill, err := h.service.Get(c.Request().Context(), ctxActor(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSkillResponse(skill))
}

// Create handles POST /v1/skills.
//
// @Summary      Create a skill
// @Tags         skills
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      skillRequest  true  "Skill"
// @Success      201   {object}  skillResponse
// @Failure      400   {object}  map[string]any
// @Failure      401   {object}  map[string]string
// @Router       /v1/skills [post]
func (h *SkillHandler) Create(c echo.Context) error {
	var req skillRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	skill, err := h.service.Create(c.Request().Context(), ctxActor(c), req.toInput())
	if err != nil {
		return err
	}

	metrics.ResourceWritesTotal.WithLabelValues("skill", "create").Inc()
	return c.JSON(http.StatusCreated, toSkillResponse(skill))
}

// Update handles PUT /v1/skills/:id.
//
// @Summary      Replace a skill
// @Tags         skills
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string        true  "Skill id"
// @Param        body  body      skillRequest  true  "Skill"
// @Success      200   {object}  skillResponse
// @Failure      400   {object}  map[string]any
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/skills/{id} [put]
func (h *SkillHandler) Update(c echo.Context) error {
	var req skillRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	skill, err := h.service.Update(c.Request().Context(), ctxActor(c), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}

	metrics.ResourceWritesTotal.WithLabelValues("skill", "update").Inc()
	return c.JSON(http.StatusOK, toSkillResponse(skill))
}

// Patch handles PATCH /v1/skills/:id.
//
// @Summary      Partially update a skill
// @Tags         skills
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Skill id"
// @Param        body  body      skillPatchRequest  true  "Fields to change"
// @Success      200   {object}  skillResponse
// @Failure      400   {object}  map[string]any
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/skills/{id} [patch]
func (h *SkillHandler) Patch(c echo.Context) error {
	var req skillPatchRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	skill, err := h.service.Patch(c.Request().Context(), ctxActor(c), c.Param("id"), req.toPatch())
	if err != nil {
		return err
	}

	metrics.ResourceWritesTotal.WithLabelValues("skill", "update").Inc()
	return c.JSON(http.StatusOK, toSkillResponse(skill))
}

// Delete handles DELETE /v1/skills/:id.
//
// @Summary      Delete a skill
// @Tags         skills
// @Security     BearerAuth
// @Param        id   path  string  true  "Skill id"
// @Success      204
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/skills/{id} [delete]
func (h *SkillHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), ctxActor(c), c.Param("id")); err != nil {
		return err
	}

	metrics.ResourceWritesTotal.WithLabelValues("skill", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}
