package handler

import (
	"encoding/json"
	"mime/multipart"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	catalogapp "github.com/spacatalog/backend/internal/application/catalog"
	"github.com/spacatalog/backend/internal/domain/catalog"
)

// GalleryHandler handles ordered image gallery endpoints
type GalleryHandler struct {
	BaseHandler
	galleryService *catalogapp.GalleryService
}

// NewGalleryHandler creates a new GalleryHandler
func NewGalleryHandler(galleryService *catalogapp.GalleryService) *GalleryHandler {
	return &GalleryHandler{
		galleryService: galleryService,
	}
}

// List godoc
// @Summary      List an item's gallery
// @Description  Return the owner's images ordered by position, with presigned download URLs
// @Tags         gallery
// @Produce      json
// @Param        kind path string true "Owner kind" Enums(treatment, combo, journey)
// @Param        id path string true "Owner ID" format(uuid)
// @Success      200 {object} dto.Response{data=[]catalogapp.GalleryImageResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/gallery/{kind}/{id} [get]
func (h *GalleryHandler) List(c *gin.Context) {
	owner, err := parseItemRef(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	images, err := h.galleryService.List(c.Request.Context(), owner)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, images)
}

// ApplyOrder godoc
// @Summary      Replace an item's gallery order
// @Description  Submit a target order mixing existing image IDs and upload placeholders.
// @Description  As multipart, the "order" field carries the JSON request; each upload key
// @Description  names a file part, and file parts that no entry names form a positional pool
// @Description  consumed by entries whose key has no file. As plain JSON, no new uploads
// @Description  are allowed.
// @Tags         gallery
// @Accept       mpfd
// @Accept       json
// @Produce      json
// @Param        kind path string true "Owner kind" Enums(treatment, combo, journey)
// @Param        id path string true "Owner ID" format(uuid)
// @Success      200 {object} dto.Response{data=[]catalogapp.GalleryImageResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/gallery/{kind}/{id} [put]
func (h *GalleryHandler) ApplyOrder(c *gin.Context) {
	owner, err := parseItemRef(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	var req catalogapp.GalleryOrderRequest
	uploads := make(map[string]catalogapp.UploadedBlob)
	var pool []catalogapp.UploadedBlob

	if strings.HasPrefix(c.ContentType(), "multipart/") {
		form, err := c.MultipartForm()
		if err != nil {
			h.BadRequest(c, err.Error())
			return
		}

		orderField := form.Value["order"]
		if len(orderField) == 0 {
			h.BadRequest(c, "Missing order field")
			return
		}
		if err := json.Unmarshal([]byte(orderField[0]), &req); err != nil {
			h.BadRequest(c, "Invalid order JSON")
			return
		}

		claimed := make(map[string]bool, len(req.Entries))
		for _, entry := range req.Entries {
			if entry.UploadKey == "" {
				continue
			}
			claimed[entry.UploadKey] = true
			files := form.File[entry.UploadKey]
			if len(files) == 0 {
				continue
			}
			blob, err := h.storeFilePart(c, owner, files[0], entry.AltText)
			if err != nil {
				return
			}
			uploads[entry.UploadKey] = blob
		}

		// File parts that no entry names become the positional fallback
		// pool, in field order.
		var unclaimed []string
		for field := range form.File {
			if !claimed[field] {
				unclaimed = append(unclaimed, field)
			}
		}
		sort.Strings(unclaimed)
		for _, field := range unclaimed {
			for _, fileHeader := range form.File[field] {
				blob, err := h.storeFilePart(c, owner, fileHeader, "")
				if err != nil {
					return
				}
				pool = append(pool, blob)
			}
		}
	} else {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.BadRequest(c, err.Error())
			return
		}
	}

	images, err := h.galleryService.ApplyOrder(c.Request.Context(), owner, req.Entries, uploads, pool)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, images)
}

// storeFilePart streams one multipart file into storage. On failure the
// response is already written and the returned error only signals the
// caller to stop.
func (h *GalleryHandler) storeFilePart(c *gin.Context, owner catalog.ItemRef, fileHeader *multipart.FileHeader, altText string) (catalogapp.UploadedBlob, error) {
	file, err := fileHeader.Open()
	if err != nil {
		h.InternalError(c, "Failed to read uploaded file")
		return catalogapp.UploadedBlob{}, err
	}
	defer file.Close()

	blob, err := h.galleryService.StoreUpload(
		c.Request.Context(),
		owner,
		fileHeader.Header.Get("Content-Type"),
		altText,
		file,
	)
	if err != nil {
		h.HandleDomainError(c, err)
		return catalogapp.UploadedBlob{}, err
	}
	return blob, nil
}

// Remove godoc
// @Summary      Remove one gallery image
// @Description  Delete the image, close the position gap and drop the stored blob.
// @Description  Returns the surviving gallery in its new order.
// @Tags         gallery
// @Produce      json
// @Param        kind path string true "Owner kind" Enums(treatment, combo, journey)
// @Param        id path string true "Owner ID" format(uuid)
// @Param        imageId path string true "Image ID" format(uuid)
// @Success      200 {object} dto.Response{data=[]catalogapp.GalleryImageResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/gallery/{kind}/{id}/images/{imageId} [delete]
func (h *GalleryHandler) Remove(c *gin.Context) {
	owner, err := parseItemRef(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	imageID, err := uuid.Parse(c.Param("imageId"))
	if err != nil {
		h.BadRequest(c, "Invalid image ID format")
		return
	}

	images, err := h.galleryService.Remove(c.Request.Context(), owner, []uuid.UUID{imageID})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, images)
}
