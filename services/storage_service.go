package services

import (
	"strings"
)

// ObjectStorage abstracts the external blob store holding document files.
// Files are uploaded and deleted client-side; this API only ever needs to
// turn a stored file's URL into a download link.
type ObjectStorage interface {
	DownloadURL(fileURL string) string
}

// CloudinaryStorage derives download links for files hosted on Cloudinary.
type CloudinaryStorage struct{}

func NewCloudinaryStorage() *CloudinaryStorage {
	return &CloudinaryStorage{}
}

// DownloadURL rewrites a Cloudinary delivery URL so the browser downloads
// the file instead of rendering it, by inserting the fl_attachment
// transformation after the upload segment. Non-Cloudinary URLs pass
// through unchanged.
func (s *CloudinaryStorage) DownloadURL(fileURL string) string {
	if !strings.Contains(fileURL, "cloudinary.com") {
		return fileURL
	}

	parts := strings.SplitN(fileURL, "/upload/", 2)
	if len(parts) != 2 {
		return fileURL
	}

	return parts[0] + "/upload/fl_attachment/" + parts[1]
}
