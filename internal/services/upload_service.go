package services

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"petlink_backend/internal/models"
	"petlink_backend/internal/repositories"
	"petlink_backend/internal/services/dto"
	"petlink_backend/internal/storage"
	"petlink_backend/pkg/apperrors"
)

type UploadService interface {
	// UploadImage validates and stores one image, returning its public URL.
	UploadImage(ctx context.Context, userID *string, filename, contentType string, size int64, reader io.Reader) (*dto.UploadResponse, error)
}

type uploadService struct {
	uploadRepo   repositories.UploadRepository
	store        storage.Storage
	maxSize      int64
	allowedTypes []string
}

func NewUploadService(
	uploadRepo repositories.UploadRepository,
	store storage.Storage,
	maxSize int64,
	allowedTypes []string,
) UploadService {
	return &uploadService{
		uploadRepo:   uploadRepo,
		store:        store,
		maxSize:      maxSize,
		allowedTypes: allowedTypes,
	}
}

func (s *uploadService) UploadImage(ctx context.Context, userID *string, filename, contentType string, size int64, reader io.Reader) (*dto.UploadResponse, error) {
	if s.maxSize > 0 && size > s.maxSize {
		return nil, apperrors.NewBadRequestError(
			fmt.Sprintf("File exceeds the maximum size of %d bytes", s.maxSize))
	}
	if !s.isAllowedType(contentType) {
		return nil, apperrors.NewBadRequestError(
			fmt.Sprintf("File type %s is not allowed", contentType))
	}

	ext := strings.ToLower(filepath.Ext(filename))
	path := fmt.Sprintf("images/%s/%s%s",
		time.Now().Format("2006/01"), uuid.NewString(), ext)

	if err := s.store.Save(ctx, path, reader, contentType); err != nil {
		return nil, apperrors.InternalError(fmt.Errorf("save upload: %w", err))
	}

	upload := &models.Upload{
		UserID:   userID,
		FileType: "image",
		Path:     path,
		MimeType: contentType,
		Size:     size,
		IsPublic: true,
	}
	if err := s.uploadRepo.Create(upload); err != nil {
		// Keep storage and records consistent.
		_ = s.store.Delete(ctx, path)
		return nil, apperrors.DatabaseError(err)
	}

	url, err := s.store.GetURL(ctx, path)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.UploadResponse{
		ID:       upload.ID,
		URL:      url,
		MimeType: contentType,
		Size:     size,
	}, nil
}

func (s *uploadService) isAllowedType(contentType string) bool {
	if len(s.allowedTypes) == 0 {
		return true
	}
	for _, allowed := range s.allowedTypes {
		if allowed == contentType {
			return true
		}
	}
	return false
}
