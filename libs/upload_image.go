package libs

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxImageSize = 5 << 20 // 5 MB

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

var (
	ErrImageTooLarge  = errors.New("image exceeds the 5 MB limit")
	ErrImageBadFormat = errors.New("image must be jpg, jpeg, png or webp")
)

// SaveImageLocally stores an uploaded image under dir and returns the
// public path served from /uploads.
func SaveImageLocally(c *gin.Context, file *multipart.FileHeader, dir string) (string, error) {
	if err := validateImage(file); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	filename := uuid.New().String() + ext
	dst := filepath.Join(dir, filename)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}
	if err := c.SaveUploadedFile(file, dst); err != nil {
		return "", fmt.Errorf("save upload: %w", err)
	}

	return "/uploads/" + filename, nil
}

// UploadDishImage stores a dish image on Cloudinary when configured,
// otherwise on local disk under dir.
func UploadDishImage(ctx context.Context, c *gin.Context, file *multipart.FileHeader, dir string) (string, error) {
	if err := validateImage(file); err != nil {
		return "", err
	}
	if CloudinaryConfigured() {
		return UploadToCloudinary(ctx, file, "dishes")
	}
	return SaveImageLocally(c, file, dir)
}

func validateImage(file *multipart.FileHeader) error {
	if file.Size > maxImageSize {
		return ErrImageTooLarge
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		return ErrImageBadFormat
	}
	return nil
}
