package handler

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/sma-adp-views/internal/middleware"
	"github.com/noah-isme/sma-adp-views/internal/service"
	"github.com/noah-isme/sma-adp-views/internal/viewmodel"
	appErrors "github.com/noah-isme/sma-adp-views/pkg/errors"
	"github.com/noah-isme/sma-adp-views/pkg/export"
	"github.com/noah-isme/sma-adp-views/pkg/response"
)

type viewService interface {
	Class(ctx context.Context, id string) (viewmodel.ClassPage, bool, error)
	Department(ctx context.Context, id string) (viewmodel.DepartmentPage, bool, error)
	Subject(ctx context.Context, id string) (viewmodel.SubjectPage, bool, error)
	Faculty(ctx context.Context, id string) (viewmodel.FacultyPage, bool, error)
	Invalidate(ctx context.Context, resource service.Resource, id string) error
}

type exportService interface {
	Export(ctx context.Context, req service.ExportRequest) (*service.ExportResult, error)
}

// ViewHandler serves the read-only detail views.
type ViewHandler struct {
	views   viewService
	exports exportService
}

// NewViewHandler constructs the handler. exports may be nil when exporting is disabled.
func NewViewHandler(views viewService, exports exportService) *ViewHandler {
	return &ViewHandler{views: views, exports: exports}
}

// Class godoc
// @Summary Class detail view
// @Tags Views
// @Produce json
// @Param id path string true "Class ID"
// @Success 200 {object} response.Envelope{data=viewmodel.ClassPage}
// @Failure 404 {object} response.Envelope
// @Failure 502 {object} response.Envelope
// @Router /views/classes/{id} [get]
func (h *ViewHandler) Class(c *gin.Context) {
	start := time.Now()
	page, hit, err := h.views.Class(c.Request.Context(), c.Param("id"))
	writePage(c, start, page, hit, err)
}

// Department godoc
// @Summary Department detail view
// @Tags Views
// @Produce json
// @Param id path string true "Department ID"
// @Success 200 {object} response.Envelope{data=viewmodel.DepartmentPage}
// @Failure 404 {object} response.Envelope
// @Failure 502 {object} response.Envelope
// @Router /views/departments/{id} [get]
func (h *ViewHandler) Department(c *gin.Context) {
	start := time.Now()
	page, hit, err := h.views.Department(c.Request.Context(), c.Param("id"))
	writePage(c, start, page, hit, err)
}

// Subject godoc
// @Summary Subject detail view
// @Tags Views
// @Produce json
// @Param id path string true "Subject ID"
// @Success 200 {object} response.Envelope{data=viewmodel.SubjectPage}
// @Failure 404 {object} response.Envelope
// @Failure 502 {object} response.Envelope
// @Router /views/subjects/{id} [get]
func (h *ViewHandler) Subject(c *gin.Context) {
	start := time.Now()
	page, hit, err := h.views.Subject(c.Request.Context(), c.Param("id"))
	writePage(c, start, page, hit, err)
}

// Faculty godoc
// @Summary Faculty profile view
// @Description Teacher, student or bare profile depending on the shape of the user's record.
// @Tags Views
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} response.Envelope{data=viewmodel.FacultyPage}
// @Failure 404 {object} response.Envelope
// @Failure 502 {object} response.Envelope
// @Router /views/faculty/{id} [get]
func (h *ViewHandler) Faculty(c *gin.Context) {
	start := time.Now()
	page, hit, err := h.views.Faculty(c.Request.Context(), c.Param("id"))
	writePage(c, start, page, hit, err)
}

// Export godoc
// @Summary Export a related table of a detail view
// @Tags Views
// @Produce text/csv,application/pdf
// @Param resource path string true "departments, subjects or faculty"
// @Param id path string true "Resource ID"
// @Param format query string false "csv (default) or pdf"
// @Param table query string false "subjects or classes (departments only)"
// @Success 200 {file} file
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /views/{resource}/{id}/export [get]
func (h *ViewHandler) Export(resource service.Resource) gin.HandlerFunc {
	return func(c *gin.Context) {
		if h.exports == nil {
			response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "exports are disabled"))
			return
		}
		format := strings.ToLower(strings.TrimSpace(c.DefaultQuery("format", string(export.FormatCSV))))
		result, err := h.exports.Export(c.Request.Context(), service.ExportRequest{
			Resource: resource,
			ID:       c.Param("id"),
			Format:   export.Format(format),
			Table:    strings.ToLower(strings.TrimSpace(c.Query("table"))),
		})
		if err != nil {
			response.Error(c, err)
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, result.Filename))
		c.Header("Cache-Control", "no-store")
		c.Data(http.StatusOK, result.ContentType, result.Body)
	}
}

// InvalidateCache godoc
// @Summary Drop cached detail views
// @Description Without an id every cached page of the resource is dropped.
// @Tags Views
// @Param resource path string true "classes, departments, subjects or faculty"
// @Param id path string false "Resource ID"
// @Success 204
// @Failure 400 {object} response.Envelope
// @Router /views/cache/{resource}/{id} [delete]
func (h *ViewHandler) InvalidateCache(c *gin.Context) {
	resource, err := service.ParseResource(c.Param("resource"))
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.views.Invalidate(c.Request.Context(), resource, c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// writePage reports non-ready pages with the status their state maps to, still carrying the
// page so clients can render its message.
func writePage(c *gin.Context, start time.Time, page viewmodel.Page, hit bool, err error) {
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, hit)
	middleware.SetPageState(c, page.PageHeader().State)
	meta := middleware.ExtractMeta(c)
	meta["processing_time_ms"] = time.Since(start).Milliseconds()

	if stateErr := service.StateError(page.PageHeader()); stateErr != nil {
		response.ErrorWithData(c, stateErr, page, meta)
		return
	}
	response.View(c, page, meta)
}
