package utils

import (
	"regexp"
	"strings"
)

// MaxDocumentFileSize caps stored document files at 10MB.
const MaxDocumentFileSize = 10 * 1024 * 1024

func IsValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

// IsValidDocumentFileName accepts PDF files only.
func IsValidDocumentFileName(fileName string) bool {
	return strings.HasSuffix(strings.ToLower(fileName), ".pdf")
}

// IsValidDocumentFileSize rejects empty and oversized files.
func IsValidDocumentFileSize(size int64) bool {
	return size > 0 && size <= MaxDocumentFileSize
}

// IsValidFileURL checks the stored file URL points at an http(s) origin.
func IsValidFileURL(fileURL string) bool {
	return strings.HasPrefix(fileURL, "http")
}
