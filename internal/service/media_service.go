package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"

	"github.com/h2non/filetype"
	"github.com/h2non/filetype/types"
	"github.com/maheshrc27/linkedin-studio/internal/models"
	"github.com/maheshrc27/linkedin-studio/internal/repository"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

var allowedMediaTypes = map[string]struct{}{
	"jpg": {}, "png": {}, "gif": {}, "mp4": {},
}

type MediaService interface {
	Upload(ctx context.Context, userID int64, file *multipart.FileHeader) (*models.MediaAsset, error)
	List(ctx context.Context, userID int64) ([]*models.MediaAsset, error)
	Remove(ctx context.Context, userID, assetID int64) error
}

type mediaService struct {
	ma       repository.MediaAssetRepository
	store    ObjectStore
	maxBytes int64
}

func NewMediaService(ma repository.MediaAssetRepository, store ObjectStore, maxBytes int64) MediaService {
	return &mediaService{
		ma:       ma,
		store:    store,
		maxBytes: maxBytes,
	}
}

func (s *mediaService) Upload(ctx context.Context, userID int64, file *multipart.FileHeader) (*models.MediaAsset, error) {
	if file == nil {
		return nil, invalid("file", "is required")
	}
	if s.maxBytes > 0 && file.Size > s.maxBytes {
		return nil, invalid("file", "is too large")
	}

	f, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}
	defer f.Close()

	fileBytes, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("error reading file content: %w", err)
	}

	kind, err := filetype.Match(fileBytes)
	if err != nil || kind == types.Unknown {
		return nil, invalid("file", "has an unsupported type")
	}
	if _, ok := allowedMediaTypes[kind.Extension]; !ok {
		return nil, invalid("file", "type "+kind.Extension+" is not allowed")
	}

	id, err := gonanoid.New()
	if err != nil {
		return nil, err
	}
	key := fmt.Sprintf("%d/%s.%s", userID, id, kind.Extension)

	url, err := s.store.Upload(ctx, key, fileBytes, kind.MIME.Value)
	if err != nil {
		return nil, fmt.Errorf("error uploading file: %w", err)
	}

	asset := &models.MediaAsset{
		UserID:   userID,
		FileName: key,
		FileType: kind.MIME.Value,
		FileSize: int64(len(fileBytes)),
		FileURL:  url,
	}
	asset.ID, err = s.ma.Create(ctx, asset)
	if err != nil {
		return nil, fmt.Errorf("error saving media asset: %w", err)
	}
	return asset, nil
}

func (s *mediaService) List(ctx context.Context, userID int64) ([]*models.MediaAsset, error) {
	assets, err := s.ma.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing media: %w", err)
	}
	return assets, nil
}

func (s *mediaService) Remove(ctx context.Context, userID, assetID int64) error {
	asset, err := s.ma.GetByID(ctx, assetID)
	if err != nil {
		return err
	}
	if asset == nil {
		return notFound("media")
	}
	if asset.UserID != userID {
		return forbidden("media")
	}

	if err := s.store.Delete(ctx, asset.FileName); err != nil {
		return fmt.Errorf("error deleting media object: %w", err)
	}
	return s.ma.Remove(ctx, assetID)
}
