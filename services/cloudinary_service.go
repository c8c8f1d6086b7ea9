package services

import (
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"path"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/admin"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// CloudinaryService stores catalog item images. Every item owns the folder
// <base>/items/<id>, which is removed when the item is deleted.
type CloudinaryService struct {
	cld        *cloudinary.Cloudinary
	baseFolder string
}

func NewCloudinaryService(cloudName, apiKey, apiSecret, baseFolder string) (*CloudinaryService, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}
	return &CloudinaryService{cld: cld, baseFolder: baseFolder}, nil
}

// ItemFolder is the media folder of one catalog item.
func (s *CloudinaryService) ItemFolder(id uuid.UUID) string {
	return path.Join(s.baseFolder, "items", id.String())
}

// StagingFolder holds uploads made before the item exists.
func (s *CloudinaryService) StagingFolder() string {
	return path.Join(s.baseFolder, "staging")
}

// UploadImage uploads a single image to Cloudinary and returns the secure URL
func (s *CloudinaryService) UploadImage(ctx context.Context, file io.Reader, filename string, folder string) (string, error) {
	// Use pointer booleans as required by the cloudinary SDK
	unique := true
	overwrite := false
	uploadParams := uploader.UploadParams{
		Folder:         folder,
		ResourceType:   "image",
		UniqueFilename: &unique,
		Overwrite:      &overwrite,
	}
	if filename != "" {
		uploadParams.PublicID = filename
	}

	result, err := s.cld.Upload.Upload(ctx, file, uploadParams)
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("upload successful but no URL returned")
	}

	return result.SecureURL, nil
}

// UploadMultipleImages uploads multiple images and returns their URLs in order
func (s *CloudinaryService) UploadMultipleImages(ctx context.Context, files []*multipart.FileHeader, folder string) ([]string, error) {
	urls := make([]string, 0, len(files))

	for i, fileHeader := range files {
		url, err := s.uploadHeader(ctx, fileHeader, fmt.Sprintf("image_%d", i), folder)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}

	return urls, nil
}

func (s *CloudinaryService) uploadHeader(ctx context.Context, fh *multipart.FileHeader, name, folder string) (string, error) {
	file, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file %s: %w", fh.Filename, err)
	}
	defer file.Close()

	return s.UploadImage(ctx, file, name, folder)
}

// DeleteFolder deletes every asset under folderPath, then the folder itself.
func (s *CloudinaryService) DeleteFolder(ctx context.Context, folderPath string) error {
	_, err := s.cld.Admin.DeleteAssetsByPrefix(ctx, admin.DeleteAssetsByPrefixParams{
		Prefix: api.CldAPIArray{folderPath},
	})
	if err != nil {
		return fmt.Errorf("failed to delete assets in folder %s: %w", folderPath, err)
	}

	// Cloudinary usually drops empty folders on its own.
	if _, err := s.cld.Admin.DeleteFolder(ctx, admin.DeleteFolderParams{Folder: folderPath}); err != nil {
		log.Printf("[media] folder %s not removed: %v", folderPath, err)
	}
	return nil
}
