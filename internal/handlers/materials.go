package handlers

import (
	"database/sql"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"ucpmaroc-backend/internal/models"
)

// MaterialStore is the subset of the database client the materials handler
// needs.
type MaterialStore interface {
	GetOrder(orderID uuid.UUID) (*models.Order, error)
	UpdateOrderMaterials(orderID uuid.UUID, notes sql.NullString, fileURLs []string) error
}

// MaterialUploader uploads one material file and returns its public URL.
type MaterialUploader interface {
	UploadOrderMaterial(orderID uuid.UUID, filename, contentType string, data []byte) (string, error)
}

type MaterialsHandler struct {
	store    MaterialStore
	uploader MaterialUploader
}

func NewMaterialsHandler(store MaterialStore, uploader MaterialUploader) *MaterialsHandler {
	return &MaterialsHandler{
		store:    store,
		uploader: uploader,
	}
}

// UploadMaterials godoc
// @Summary     Attach notes and material files to an order
// @Description Uploads the submitted files to storage under the order's path (same-named files overwrite the previous object) and updates the order row once with the trimmed notes and the collected public URLs. Empty submissions are rejected before any upload.
// @Tags        materials
// @Accept      multipart/form-data
// @Produce     json
// @Param       order_id path string true "Order ID (UUID)"
// @Param       notes formData string false "Free-text project notes"
// @Param       files formData file false "Material files (multiple allowed)"
// @Success     200 {object} models.MaterialsResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /orders/{order_id}/materials [post]
func (h *MaterialsHandler) UploadMaterials(c *gin.Context) {
	if h.store == nil || h.uploader == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "storage not available"})
		return
	}

	orderID, err := uuid.Parse(c.Param("order_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid order id"})
		return
	}

	if _, err := h.store.GetOrder(orderID); err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "order not found",
			Message: err.Error(),
		})
		return
	}

	if err := c.Request.ParseMultipartForm(32 << 20); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "failed to parse multipart form",
			Message: err.Error(),
		})
		return
	}

	notes := strings.TrimSpace(c.PostForm("notes"))

	var files []*multipart.FileHeader
	if form := c.Request.MultipartForm; form != nil {
		for _, fieldName := range []string{"files", "file", "materials"} {
			if f := form.File[fieldName]; len(f) > 0 {
				files = f
				break
			}
		}
	}

	if notes == "" && len(files) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "provide notes, files, or both",
		})
		return
	}

	// Files are uploaded one at a time. Each path is independent and
	// upsert-keyed, so a partial failure never leaves a corrupt object.
	uploaded := make([]models.MaterialFileInfo, 0, len(files))
	uploadErrors := make([]models.MaterialErrorInfo, 0)
	for _, file := range files {
		src, err := file.Open()
		if err != nil {
			uploadErrors = append(uploadErrors, models.MaterialErrorInfo{
				Filename: file.Filename,
				Error:    fmt.Sprintf("failed to open file: %v", err),
				Stage:    "file_open",
			})
			continue
		}

		data, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			uploadErrors = append(uploadErrors, models.MaterialErrorInfo{
				Filename: file.Filename,
				Error:    fmt.Sprintf("failed to read file data: %v", err),
				Stage:    "file_read",
			})
			continue
		}

		url, err := h.uploader.UploadOrderMaterial(orderID, file.Filename, file.Header.Get("Content-Type"), data)
		if err != nil {
			uploadErrors = append(uploadErrors, models.MaterialErrorInfo{
				Filename: file.Filename,
				Error:    fmt.Sprintf("failed to upload file: %v", err),
				Stage:    "upload",
			})
			continue
		}

		uploaded = append(uploaded, models.MaterialFileInfo{
			Filename: file.Filename,
			Size:     file.Size,
			URL:      url,
		})
	}

	if len(files) > 0 && len(uploaded) == 0 {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to upload files",
			Message: fmt.Sprintf("%d of %d uploads failed", len(uploadErrors), len(files)),
		})
		return
	}

	var notesValue sql.NullString
	if notes != "" {
		notesValue = sql.NullString{String: notes, Valid: true}
	}

	fileURLs := make([]string, len(uploaded))
	for i, f := range uploaded {
		fileURLs[i] = f.URL
	}

	if err := h.store.UpdateOrderMaterials(orderID, notesValue, fileURLs); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to update order",
			Message: err.Error(),
		})
		return
	}

	response := models.MaterialsResponse{
		OrderID: orderID.String(),
		Notes:   notes,
		Files:   uploaded,
	}
	if len(uploadErrors) > 0 {
		response.Errors = uploadErrors
	}

	c.JSON(http.StatusOK, response)
}
