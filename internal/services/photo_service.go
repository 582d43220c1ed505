package services

import (
	"bytes"
	"context"
	"errors"
	"io"
	"path"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"monastery/internal/infra"
	"monastery/internal/models/db_models"
	"monastery/internal/models/response_models"
	"monastery/internal/repositories"
	"monastery/pkg/utils"
)

// servable image types keyed by the extension stored uploads are named with
var imageTypes = map[string]string{
	".jpg":  "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// UploadContentType is the Content-Type a stored upload is served with.
// Names outside the image allow-list are served as opaque bytes.
func UploadContentType(filename string) string {
	if ct, ok := imageTypes[strings.ToLower(path.Ext(filename))]; ok {
		return ct
	}
	return "application/octet-stream"
}

// PhotoUpload is one multipart file handed over by the controller.
type PhotoUpload struct {
	OriginalName string
	Content      io.Reader
	UploadedBy   uuid.UUID
}

type PhotoServiceInterface interface {
	Upload(ctx context.Context, upload *PhotoUpload) (response_models.Photo, error)
	ListPhotos(ctx context.Context) ([]response_models.Photo, error)
	OpenUpload(ctx context.Context, filename string) (io.ReadSeekCloser, time.Time, error)
}

type PhotoService struct {
	photoRepo    repositories.PhotoRepository
	store        infra.UploadStore
	maxBytes     int64
	placeholders []string
	logger       *zap.Logger
}

// NewPhotoService builds the gallery service. placeholders are image paths
// listed while no photo has been uploaded yet.
func NewPhotoService(
	photoRepo repositories.PhotoRepository,
	store infra.UploadStore,
	maxBytes int64,
	placeholders []string,
	logger *zap.Logger,
) PhotoServiceInterface {
	return &PhotoService{
		photoRepo:    photoRepo,
		store:        store,
		maxBytes:     maxBytes,
		placeholders: append([]string(nil), placeholders...),
		logger:       logger,
	}
}

func (s *PhotoService) Upload(ctx context.Context, upload *PhotoUpload) (response_models.Photo, error) {
	if upload == nil || upload.Content == nil {
		return response_models.Photo{}, utils.ErrPhotoMissing
	}

	data, err := io.ReadAll(io.LimitReader(upload.Content, s.maxBytes+1))
	if err != nil {
		return response_models.Photo{}, err
	}
	if len(data) == 0 {
		return response_models.Photo{}, utils.ErrPhotoMissing
	}
	if int64(len(data)) > s.maxBytes {
		return response_models.Photo{}, &utils.PhotoSizeError{Limit: s.maxBytes}
	}

	mtype := mimetype.Detect(data)
	contentType, ok := imageTypes[mtype.Extension()]
	if !ok || !mtype.Is(contentType) {
		s.logger.Info("rejected upload", zap.String("detected", mtype.String()), zap.String("name", upload.OriginalName))
		return response_models.Photo{}, utils.ErrUnsupportedMedia
	}

	stored, err := s.store.Save(ctx, mtype.Extension(), bytes.NewReader(data))
	if err != nil {
		return response_models.Photo{}, err
	}

	photo := &db_models.Photo{
		Filename:     stored.Filename,
		OriginalName: upload.OriginalName,
		Path:         stored.Path,
		URL:          stored.URL,
		ContentType:  contentType,
		SizeBytes:    stored.Size,
		UploadedBy:   upload.UploadedBy,
	}
	if err := s.photoRepo.CreatePhoto(ctx, photo); err != nil {
		if derr := s.store.Delete(ctx, stored.Filename); derr != nil {
			s.logger.Warn("orphaned upload", zap.String("filename", stored.Filename), zap.Error(derr))
		}
		return response_models.Photo{}, errors.Join(utils.ErrDatabaseError, err)
	}

	s.logger.Info("photo uploaded",
		zap.String("filename", photo.Filename),
		zap.String("content_type", photo.ContentType),
		zap.Int64("size", photo.SizeBytes))

	return toPhotoResponse(*photo), nil
}

func (s *PhotoService) ListPhotos(ctx context.Context) ([]response_models.Photo, error) {
	photos, err := s.photoRepo.ListPhotos(ctx)
	if err != nil {
		return nil, errors.Join(utils.ErrDatabaseError, err)
	}

	if len(photos) == 0 {
		return s.placeholderPhotos(), nil
	}

	out := make([]response_models.Photo, 0, len(photos))
	for _, p := range photos {
		out = append(out, toPhotoResponse(p))
	}
	return out, nil
}

func (s *PhotoService) OpenUpload(ctx context.Context, filename string) (io.ReadSeekCloser, time.Time, error) {
	return s.store.Open(ctx, filename)
}

func (s *PhotoService) placeholderPhotos() []response_models.Photo {
	out := make([]response_models.Photo, 0, len(s.placeholders))
	for _, p := range s.placeholders {
		out = append(out, response_models.Photo{
			Filename:    path.Base(p),
			Path:        p,
			URL:         "/" + strings.TrimPrefix(p, "/"),
			Placeholder: true,
		})
	}
	return out
}

func toPhotoResponse(p db_models.Photo) response_models.Photo {
	return response_models.Photo{
		ID:          p.ID.String(),
		Filename:    p.Filename,
		Path:        p.Path,
		URL:         p.URL,
		ContentType: p.ContentType,
		SizeBytes:   p.SizeBytes,
		UploadedAt:  utils.FormatRFC3339IST(utils.FromUnixSecondsIST(p.CreatedAt)),
	}
}
