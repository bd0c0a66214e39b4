package validation

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/nadeuri-dev/nadeuri/shared/domain"
)

// ValidateAndParseMultipart validates request size and parses the multipart form.
// When the limit is exceeded the server stops reading the body, clients see a
// connection reset instead of the 413 response in that case.
func ValidateAndParseMultipart(r *http.Request, w http.ResponseWriter, maxSize int64) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxSize)

	if err := r.ParseMultipartForm(maxSize); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) || strings.Contains(err.Error(), "request body too large") {
			return ErrPayloadTooLarge.WithCause(fmt.Errorf("failed to parse multipart form: %w", err))
		}
		return ErrNotMultipart.WithCause(fmt.Errorf("failed to parse multipart form: %w", err))
	}

	return nil
}

// JSONPart returns the reader of a JSON part. Clients send it either as a
// plain form field or as a file part with an application/json content type.
func JSONPart(r *http.Request, name string) (io.ReadCloser, error) {
	if r.MultipartForm != nil {
		if values := r.MultipartForm.Value[name]; len(values) > 0 && values[0] != "" {
			return io.NopCloser(strings.NewReader(values[0])), nil
		}
		if files := r.MultipartForm.File[name]; len(files) > 0 {
			f, err := files[0].Open()
			if err != nil {
				return nil, fmt.Errorf("failed to open %s part: %w", name, err)
			}
			return f, nil
		}
	}
	return nil, ErrMissingPart.WithCause(fmt.Errorf("part %q not found", name))
}

// ImagePart returns the uploaded image, or nil when the part is absent or empty.
// Callers must close the returned file with CloseImage.
func ImagePart(r *http.Request, name string) (*domain.PendingFile, error) {
	if r.MultipartForm == nil {
		return nil, nil
	}
	headers := r.MultipartForm.File[name]
	if len(headers) == 0 || headers[0].Size == 0 {
		return nil, nil
	}
	return OpenPendingFile(headers[0])
}

func OpenPendingFile(header *multipart.FileHeader) (*domain.PendingFile, error) {
	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	return &domain.PendingFile{
		Filename:    header.Filename,
		SizeBytes:   header.Size,
		ContentType: header.Header.Get("Content-Type"),
		Data:        file,
	}, nil
}

func CloseImage(f *domain.PendingFile) {
	if f == nil {
		return
	}
	if closer, ok := f.Data.(io.Closer); ok {
		closer.Close()
	}
}

// CalculateMaxRequestSize returns the maximum request size including overhead buffer.
// It adds a buffer (typically 1 MiB) for form fields and multipart overhead.
func CalculateMaxRequestSize(maxAttachmentSize int64, bufferSize int64) int64 {
	return maxAttachmentSize + bufferSize
}

// FormatSizeMB converts bytes to megabytes for user-friendly error messages.
func FormatSizeMB(bytes int64) float64 {
	return float64(bytes) / (1024 * 1024)
}
