package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	mediaRepo "tourbase/database/repository/media"
	"tourbase/middleware"
	"tourbase/models"
	"tourbase/services/gallery"
	"tourbase/utils"
)

// maxUploadBytes caps a single gallery upload (videos included).
const maxUploadBytes = 100 << 20

// GalleryHandler exposes the media manager endpoints.
type GalleryHandler struct {
	Service gallery.GalleryService
}

func NewGalleryHandler(svc gallery.GalleryService) *GalleryHandler {
	return &GalleryHandler{Service: svc}
}

// Upload accepts a multipart form with a "file" part plus kind/title/
// description/tags fields.
func (h *GalleryHandler) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)

	file, _, err := c.Request.FormFile("file")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "missing file", err.Error())
		return
	}
	defer file.Close()

	kind := c.PostForm("kind")
	if kind == "" {
		kind = models.MediaKindImage
	}

	var tags []string
	if raw := c.PostForm("tags"); raw != "" {
		for _, tag := range strings.Split(raw, ",") {
			if t := strings.TrimSpace(tag); t != "" {
				tags = append(tags, t)
			}
		}
	}

	asset, err := h.Service.Upload(c.Request.Context(), gallery.UploadInput{
		Kind:        kind,
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Tags:        tags,
		UploadedBy:  c.GetString(middleware.CtxUserID),
		File:        file,
	})
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "upload failed", err.Error())
		return
	}
	c.JSON(http.StatusCreated, asset)
}

func (h *GalleryHandler) List(c *gin.Context) {
	q := mediaRepo.MediaQuery{
		Kind:    c.Query("kind"),
		Tag:     c.Query("tag"),
		Page:    intQuery(c, "page", 1),
		PerPage: intQuery(c, "perPage", 20),
	}
	page, err := h.Service.List(c.Request.Context(), q)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list media", err.Error())
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *GalleryHandler) Get(c *gin.Context) {
	asset, err := h.Service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "media asset not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, asset)
}

func (h *GalleryHandler) Update(c *gin.Context) {
	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	updated, err := h.Service.UpdateMeta(c.Request.Context(), c.Param("id"), updates)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to update media asset", err.Error())
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *GalleryHandler) Delete(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusNotFound, "failed to delete media asset", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "media asset deleted"})
}

// BulkDelete deletes a selection of assets, reporting partial failures.
func (h *GalleryHandler) BulkDelete(c *gin.Context) {
	var input struct {
		IDs []string `json:"ids" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	deleted, failed := h.Service.DeleteMany(c.Request.Context(), input.IDs)
	c.JSON(http.StatusOK, gin.H{"deleted": deleted, "failed": failed})
}
