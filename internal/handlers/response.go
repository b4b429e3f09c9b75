package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/spydz12/Eleman-Shoes/internal/middleware"
	"github.com/spydz12/Eleman-Shoes/internal/models"
	"github.com/spydz12/Eleman-Shoes/internal/repository"
	"github.com/spydz12/Eleman-Shoes/internal/services"
)

// ErrorResponse is the error envelope documented in swagger
type ErrorResponse = models.ErrorResponse

func respondError(c *gin.Context, status int, code, message, field string) {
	c.JSON(status, models.ErrorResponse{
		Success:   false,
		Error:     models.Error{Code: code, Message: message, Field: field},
		RequestID: c.GetString(middleware.RequestIDKey),
	})
}

func respondData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, models.SuccessResponse{Success: true, Data: data})
}

func respondList(c *gin.Context, data interface{}, total int) {
	c.JSON(http.StatusOK, models.ListResponse{Success: true, Data: data, Total: total})
}

// handleServiceError maps a service error onto the envelope. fallback is the
// code used for unexpected failures of the current operation.
func handleServiceError(c *gin.Context, err error, fallback string) {
	var validationErr *models.ValidationError
	var transitionErr *models.TransitionError

	switch {
	case errors.As(err, &validationErr):
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", validationErr.Message, validationErr.Field)
	case errors.As(err, &transitionErr):
		respondError(c, http.StatusConflict, "INVALID_TRANSITION", transitionErr.Error(), "status")
	case errors.Is(err, repository.ErrNotFound):
		respondError(c, http.StatusNotFound, "NOT_FOUND", "Resource not found", "")
	case errors.Is(err, services.ErrUploadFailed):
		respondError(c, http.StatusBadGateway, "UPLOAD_FAILED", "Failed to upload file", "")
	case errors.Is(err, services.ErrInvalidCredentials):
		respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid email or password", "")
	default:
		_ = c.Error(err)
		respondError(c, http.StatusInternalServerError, fallback, "An unexpected error occurred", "")
	}
}

func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), "")
		return false
	}
	return true
}

func parseID(c *gin.Context, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_ID", fmt.Sprintf("Invalid %s", param), param)
		return uuid.Nil, false
	}
	return id, true
}

func parseIndex(c *gin.Context, param string) (int, bool) {
	i, err := strconv.Atoi(c.Param(param))
	if err != nil || i < 0 {
		respondError(c, http.StatusBadRequest, "INVALID_ID", fmt.Sprintf("Invalid %s index", param), param)
		return 0, false
	}
	return i, true
}

// readUploads reads the image files of a multipart field. Files that fail the
// type or size check are passed on without their content so the service can
// report them, and at most MaxImagesPerColor accepted files are read.
func readUploads(c *gin.Context, field string) ([]services.UploadFile, bool) {
	return readImageFiles(c, field, models.MaxImagesPerColor)
}

func readUpload(c *gin.Context, field string) (services.UploadFile, bool) {
	files, ok := readImageFiles(c, field, 1)
	if !ok {
		return services.UploadFile{}, false
	}
	return files[0], true
}

func readImageFiles(c *gin.Context, field string, maxAccepted int) ([]services.UploadFile, bool) {
	form, err := c.MultipartForm()
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(c, http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE", "Request body is too large", field)
			return nil, false
		}
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Expected a multipart form", field)
		return nil, false
	}
	headers := form.File[field]
	if len(headers) == 0 {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Please select at least one file", field)
		return nil, false
	}

	files := make([]services.UploadFile, 0, len(headers))
	accepted := 0
	for _, fh := range headers {
		file := services.UploadFile{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
		}
		if models.CheckImageUpload(file.Filename, file.ContentType, file.Size) != nil {
			files = append(files, file)
			continue
		}
		if accepted == maxAccepted {
			continue
		}
		data, err := readFileHeader(fh)
		if err != nil {
			respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", fmt.Sprintf("Failed to read %s", fh.Filename), field)
			return nil, false
		}
		file.Data = data
		files = append(files, file)
		accepted++
	}
	return files, true
}

func readFileHeader(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(io.LimitReader(f, models.MaxImageSizeBytes))
}

func sendAttachment(c *gin.Context, filename, contentType string, data []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	c.Data(http.StatusOK, contentType, data)
}

// activityRecorder writes the activity entry of an admin mutation
type activityRecorder struct {
	activity *services.ActivityService
}

func (r activityRecorder) record(c *gin.Context, action string, entityType models.EntityType, entityID, details string) {
	if r.activity == nil {
		return
	}
	r.activity.Log(c.Request.Context(), middleware.GetAdmin(c), action, entityType, entityID, details)
}
