package item_controller

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Modeva-Ecommerce/modeva-catalog-backend/models"
)

type UploadImagesResponse struct {
	URLs []string `json:"urls"`
}

// UploadImages godoc
// @Summary Upload item images
// @Description Uploads images to the media store and returns their URLs for use in create/update payloads. With itemId the files go to that item's folder and are removed with it.
// @Tags CMS - Items
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param itemId query string false "Item ID (UUID)"
// @Param images formData file true "Image files (repeatable)"
// @Success 201 {object} models.DataResponse{data=UploadImagesResponse}
// @Failure 400 {object} models.ErrorBody
// @Failure 503 {object} models.ErrorBody
// @Failure 500 {object} models.ErrorBody
// @Router /api/v1/admin/uploads [post]
func (ctl *Controller) UploadImages(c *gin.Context) {
	if ctl.uploader == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Media uploads are not configured"))
		return
	}

	folder := ctl.uploader.StagingFolder()
	if raw := c.Query("itemId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid item ID"))
			return
		}
		folder = ctl.uploader.ItemFolder(id)
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid multipart form"))
		return
	}
	files := form.File["images"]

	var issues []models.FieldIssue
	if len(files) == 0 {
		issues = append(issues, models.FieldIssue{Field: "images", Message: "is required"})
	}
	if len(files) > maxImagesPerUpload {
		issues = append(issues, models.FieldIssue{Field: "images", Message: fmt.Sprintf("must have at most %d items", maxImagesPerUpload)})
	}
	for i, fh := range files {
		if ctl.maxUploadSize > 0 && fh.Size > ctl.maxUploadSize {
			issues = append(issues, models.FieldIssue{
				Field:   fmt.Sprintf("images[%d]", i),
				Message: fmt.Sprintf("must be at most %d MB", ctl.maxUploadSize>>20),
			})
		}
		if ct := fh.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, "image/") {
			issues = append(issues, models.FieldIssue{Field: fmt.Sprintf("images[%d]", i), Message: "must be an image"})
		}
	}
	if len(issues) > 0 {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, "Validation failed", issues))
		return
	}

	urls, err := ctl.uploader.UploadMultipleImages(c.Request.Context(), files, folder)
	if err != nil {
		log.Printf("[admin.uploads] %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to upload images"))
		return
	}

	log.Printf("[admin.uploads] ✅ uploaded %d image(s) to %s", len(urls), folder)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Images uploaded successfully", UploadImagesResponse{URLs: urls}))
}
