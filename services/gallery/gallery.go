package gallery

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	mediaRepo "tourbase/database/repository/media"
	"tourbase/models"
	"tourbase/utils"
)

const (
	defaultPerPage = 20
	maxPerPage     = 100
	mediaFolder    = "tourbase/gallery"
)

// resourceType maps a media kind to the Cloudinary resource type. PDFs are
// stored as raw assets.
func resourceType(kind string) (string, error) {
	switch kind {
	case models.MediaKindImage:
		return "image", nil
	case models.MediaKindVideo:
		return "video", nil
	case models.MediaKindPDF:
		return "raw", nil
	}
	return "", fmt.Errorf("unsupported media kind %q", kind)
}

func (s *DefaultGalleryService) Upload(ctx context.Context, in UploadInput) (*models.MediaAsset, error) {
	rt, err := resourceType(in.Kind)
	if err != nil {
		return nil, err
	}
	if in.File == nil {
		return nil, fmt.Errorf("no file provided")
	}

	res, err := s.Storage.Upload(ctx, in.File, mediaFolder, rt)
	if err != nil {
		return nil, fmt.Errorf("upload failed: %w", err)
	}

	asset := &models.MediaAsset{
		Kind:        in.Kind,
		Title:       in.Title,
		Description: in.Description,
		Tags:        in.Tags,
		PublicID:    res.PublicID,
		URL:         res.URL,
		Bytes:       res.Bytes,
		UploadedBy:  in.UploadedBy,
	}
	if err := s.Repo.Create(ctx, asset); err != nil {
		// Don't leave an orphan binary behind if the metadata write failed.
		if derr := s.Storage.Delete(ctx, res.PublicID, rt); derr != nil {
			utils.GetLogger().Warn("orphan cleanup failed", zap.String("publicId", res.PublicID), zap.Error(derr))
		}
		return nil, fmt.Errorf("failed to record media asset: %w", err)
	}
	return asset, nil
}

func (s *DefaultGalleryService) Get(ctx context.Context, id string) (*models.MediaAsset, error) {
	asset, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("media asset not found: %w", err)
	}
	return asset, nil
}

func (s *DefaultGalleryService) List(ctx context.Context, q mediaRepo.MediaQuery) (*models.MediaPage, error) {
	if q.PerPage <= 0 {
		q.PerPage = defaultPerPage
	}
	if q.PerPage > maxPerPage {
		q.PerPage = maxPerPage
	}
	if q.Page < 1 {
		q.Page = 1
	}
	items, total, err := s.Repo.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list media: %w", err)
	}
	return &models.MediaPage{Items: items, Total: total, Page: q.Page, PerPage: q.PerPage}, nil
}

// UpdateMeta patches title/description/tags. The binary itself is immutable;
// replacing it is an upload plus a delete.
func (s *DefaultGalleryService) UpdateMeta(ctx context.Context, id string, updates map[string]interface{}) (*models.MediaAsset, error) {
	allowed := map[string]interface{}{}
	if v, ok := updates["title"].(string); ok {
		allowed["title"] = v
	}
	if v, ok := updates["description"].(string); ok {
		allowed["description"] = v
	}
	if v, ok := updates["tags"]; ok {
		allowed["tags"] = v
	}
	if len(allowed) == 0 {
		return nil, fmt.Errorf("no updatable fields provided")
	}
	updated, err := s.Repo.Update(ctx, id, allowed)
	if err != nil {
		return nil, fmt.Errorf("failed to update media asset: %w", err)
	}
	return updated, nil
}

func (s *DefaultGalleryService) Delete(ctx context.Context, id string) error {
	asset, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("media asset not found: %w", err)
	}
	rt, err := resourceType(asset.Kind)
	if err != nil {
		return err
	}
	if err := s.Storage.Delete(ctx, asset.PublicID, rt); err != nil {
		return fmt.Errorf("failed to delete stored file: %w", err)
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete media record: %w", err)
	}
	return nil
}

// DeleteMany removes a selection of assets, reporting per-id outcomes so the
// dashboard can show partial failures.
func (s *DefaultGalleryService) DeleteMany(ctx context.Context, ids []string) (deleted []string, failed []string) {
	for _, id := range ids {
		if err := s.Delete(ctx, id); err != nil {
			utils.GetLogger().Warn("bulk delete: asset failed", zap.String("id", id), zap.Error(err))
			failed = append(failed, id)
			continue
		}
		deleted = append(deleted, id)
	}
	return deleted, failed
}
