package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"monastery/internal/infra"
	"monastery/internal/services"
	"monastery/pkg/middleware"
	"monastery/pkg/utils"
)

// multipart framing allowance on top of the photo limit
const multipartOverhead = 1 << 20

type PhotoController struct {
	photoService services.PhotoServiceInterface
	maxBytes     int64
}

func NewPhotoController(photoService services.PhotoServiceInterface, maxBytes int64) *PhotoController {
	return &PhotoController{photoService: photoService, maxBytes: maxBytes}
}

// UploadPhoto godoc
// @Summary Upload a gallery photo
// @Description Admin only. Multipart field "photo", one JPEG, PNG, GIF or WebP image within upload.max_bytes (10 MB by default).
// @Tags Photos
// @Accept multipart/form-data
// @Produce json
// @Param photo formData file true "Image file"
// @Success 201 {object} utils.APIResponse{data=response_models.Photo}
// @Failure 400 {object} utils.APIResponse
// @Failure 413 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/photos [post]
func (p *PhotoController) UploadPhoto(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, p.maxBytes+multipartOverhead)

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			utils.HandleServiceError(c, &utils.PhotoSizeError{Limit: p.maxBytes})
			return
		}
		utils.HandleServiceError(c, utils.ErrPhotoMissing)
		return
	}
	if fileHeader.Size > p.maxBytes {
		utils.HandleServiceError(c, &utils.PhotoSizeError{Limit: p.maxBytes})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.HandleServiceError(c, utils.ErrPhotoMissing)
		return
	}
	defer file.Close()

	uploader, _ := uuid.Parse(c.GetString(middleware.ContextUserID))

	photo, err := p.photoService.Upload(c.Request.Context(), &services.PhotoUpload{
		OriginalName: fileHeader.Filename,
		Content:      file,
		UploadedBy:   uploader,
	})
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, photo, "Photo uploaded successfully")
}

// ListPhotos godoc
// @Summary List gallery photos
// @Description Newest first. Placeholder entries are returned while the gallery is empty.
// @Tags Photos
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]response_models.Photo}
// @Router /api/photos [get]
func (p *PhotoController) ListPhotos(c *gin.Context) {
	photos, err := p.photoService.ListPhotos(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, photos, "Photos fetched successfully")
}

// ServeUpload streams a stored upload. The type comes from the allow-listed
// extension the upload was stored under and browsers may not sniff past it.
func (p *PhotoController) ServeUpload(c *gin.Context) {
	name := c.Param("name")
	rc, modTime, err := p.photoService.OpenUpload(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, infra.ErrUploadNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		utils.HandleServiceError(c, err)
		return
	}
	defer rc.Close()

	c.Header("Content-Type", services.UploadContentType(name))
	c.Header("X-Content-Type-Options", "nosniff")
	http.ServeContent(c.Writer, c.Request, name, modTime, rc)
}
