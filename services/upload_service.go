package services

import (
	"context"
	"mime/multipart"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// UploadImage pushes an image to the hosting service and returns its stable
// public URL. Only the URL string is ever stored.
func UploadImage(ctx context.Context, cld *cloudinary.Cloudinary, file multipart.File, folder string) (string, error) {
	resp, err := cld.Upload.Upload(ctx, file, uploader.UploadParams{Folder: folder})
	if err != nil {
		return "", err
	}
	return resp.SecureURL, nil
}
