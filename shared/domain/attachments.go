package domain

import (
	"io"
	"path/filepath"
	"regexp"
	"strings"
)

// PendingFile is an uploaded image that has not been stored yet.
type PendingFile struct {
	Filename    string
	SizeBytes   int64
	ContentType string
	Data        io.Reader
}

// Empty reports whether there is nothing to store. An image part may be
// present in the request and still carry zero bytes.
func (f *PendingFile) Empty() bool {
	return f == nil || f.Data == nil || f.SizeBytes == 0
}

var safeExtension = regexp.MustCompile(`^\.[a-z0-9]{1,10}$`)

// Extension returns the lowercased extension of the original filename, or ""
// when it is missing or contains anything but letters and digits.
func (f *PendingFile) Extension() string {
	if f == nil {
		return ""
	}
	ext := strings.ToLower(filepath.Ext(f.Filename))
	if !safeExtension.MatchString(ext) {
		return ""
	}
	return ext
}
