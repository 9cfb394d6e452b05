// Package storage uploads proof-of-payment images and hands back durable
// references to attach to orders.
package storage

import (
	"context"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Uploader stores a file and returns a durable reference to it.
type Uploader interface {
	Upload(ctx context.Context, file io.Reader) (ref string, err error)
}

// CloudinaryUploader uploads to Cloudinary and returns the secure URL.
type CloudinaryUploader struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryUploader initializes the Cloudinary client from its
// CLOUDINARY_URL-style connection string.
func NewCloudinaryUploader(cloudURL string) (*CloudinaryUploader, error) {
	cld, err := cloudinary.NewFromURL(cloudURL)
	if err != nil {
		return nil, err
	}
	return &CloudinaryUploader{cld: cld}, nil
}

func (u *CloudinaryUploader) Upload(ctx context.Context, file io.Reader) (string, error) {
	result, err := u.cld.Upload.Upload(ctx, file, uploader.UploadParams{Folder: "payment-proofs"})
	if err != nil {
		return "", err
	}
	return result.SecureURL, nil
}
