package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"institute-cms/helper"
	"institute-cms/models"
	"institute-cms/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ContentHandler struct {
	contentService  services.ContentService
	workflowService services.WorkflowService
	Helper          *helper.HTTPHelper
}

func NewContentHandler(contentService services.ContentService, workflowService services.WorkflowService) *ContentHandler {
	return &ContentHandler{
		contentService:  contentService,
		workflowService: workflowService,
		Helper:          &helper.HTTPHelper{},
	}
}

func currentUser(c *gin.Context) (uint, models.UserRole) {
	userID, _ := c.Get("user_id")
	role, _ := c.Get("role")
	id, _ := userID.(uint)
	roleStr, _ := role.(string)
	return id, models.UserRole(roleStr)
}

func sendContentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidContentType),
		errors.Is(err, models.ErrInvalidTransition),
		errors.Is(err, services.ErrSlugUnderivable):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrUnauthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "content not found"})
	case errors.Is(err, models.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func (h *ContentHandler) Create(c *gin.Context) {
	userID, _ := currentUser(c)

	var req models.ContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, err := h.contentService.Create(c.Param("type"), req, userID)
	if err != nil {
		sendContentError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.NewContentResponse(rec))
}

func (h *ContentHandler) List(c *gin.Context) {
	var params models.ContentListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if params.Page == 0 {
		params.Page = 1
	}
	if params.Limit == 0 {
		params.Limit = 10
	}

	items, total, err := h.contentService.List(c.Param("type"), params, false)
	if err != nil {
		sendContentError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items":      contentResponses(items),
		"total":      total,
		"pagination": h.Helper.GeneratePaging(c, 0, 0, params.Limit, params.Page, int(total)),
	})
}

func (h *ContentHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	rec, err := h.contentService.Get(c.Param("type"), id)
	if err != nil {
		sendContentError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewContentResponse(rec))
}

func (h *ContentHandler) Update(c *gin.Context) {
	userID, role := currentUser(c)
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req models.ContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, err := h.contentService.Update(c.Param("type"), id, req, userID, role)
	if err != nil {
		sendContentError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewContentResponse(rec))
}

func (h *ContentHandler) Delete(c *gin.Context) {
	userID, role := currentUser(c)
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.contentService.Delete(c.Param("type"), id, userID, role); err != nil {
		sendContentError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Content deleted successfully"})
}

// Transition endpoints. Each returns the updated resource so the client can
// re-render the badge without a second fetch.

func (h *ContentHandler) SubmitForReview(c *gin.Context) {
	h.applyTransition(c, h.workflowService.SubmitForReview)
}

func (h *ContentHandler) Publish(c *gin.Context) {
	h.applyTransition(c, h.workflowService.Publish)
}

func (h *ContentHandler) Unpublish(c *gin.Context) {
	h.applyTransition(c, h.workflowService.Unpublish)
}

func (h *ContentHandler) Archive(c *gin.Context) {
	h.applyTransition(c, h.workflowService.Archive)
}

func (h *ContentHandler) Restore(c *gin.Context) {
	h.applyTransition(c, h.workflowService.Restore)
}

func (h *ContentHandler) applyTransition(c *gin.Context, op func(kind string, id uint) (models.Publishable, error)) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	rec, err := op(c.Param("type"), id)
	if err != nil {
		sendContentError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewContentResponse(rec))
}

// Public, unauthenticated read endpoints. Only published content is visible.

func (h *ContentHandler) PublicList(c *gin.Context) {
	var params models.ContentListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if params.Page == 0 {
		params.Page = 1
	}
	if params.Limit == 0 {
		params.Limit = 10
	}

	items, total, err := h.contentService.List(c.Param("type"), params, true)
	if err != nil {
		sendContentError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items":      contentResponses(items),
		"total":      total,
		"pagination": h.Helper.GeneratePaging(c, 0, 0, params.Limit, params.Page, int(total)),
	})
}

func (h *ContentHandler) PublicGet(c *gin.Context) {
	rec, err := h.contentService.GetPublishedBySlug(c.Param("type"), c.Param("slug"))
	if err != nil {
		sendContentError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewContentResponse(rec))
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid content ID"})
		return 0, false
	}
	return uint(id), true
}

func contentResponses(items []models.Publishable) []models.ContentResponse {
	out := make([]models.ContentResponse, len(items))
	for i, item := range items {
		out[i] = models.NewContentResponse(item)
	}
	return out
}
