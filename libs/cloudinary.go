package libs

import (
	"context"
	"fmt"
	"mime/multipart"
	"os"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// CloudinaryConfigured reports whether a CLOUDINARY_URL is present, so
// callers can fall back to local disk storage.
func CloudinaryConfigured() bool {
	return os.Getenv("CLOUDINARY_URL") != ""
}

func UploadToCloudinary(ctx context.Context, file *multipart.FileHeader, folder string) (string, error) {
	cld, err := cloudinary.New()
	if err != nil {
		return "", fmt.Errorf("cloudinary init: %w", err)
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	publicID := uuid.New().String()
	result, err := cld.Upload.Upload(ctx, src, uploader.UploadParams{
		Folder:   folder,
		PublicID: publicID,
	})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload: %w", err)
	}

	return result.SecureURL, nil
}

func DeleteFromCloudinary(ctx context.Context, imageURL, folder string) error {
	if imageURL == "" || !strings.Contains(imageURL, "res.cloudinary.com") {
		return nil
	}

	cld, err := cloudinary.New()
	if err != nil {
		return fmt.Errorf("cloudinary init: %w", err)
	}

	parts := strings.Split(imageURL, "/")
	name := parts[len(parts)-1]
	if idx := strings.LastIndex(name, "."); idx > 0 {
		name = name[:idx]
	}

	_, err = cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID: folder + "/" + name,
	})
	return err
}
