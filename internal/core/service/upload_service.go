package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/gabriel-vasile/mimetype"

	"github.com/shoprecords/records-api/internal/core/domain"
)

// DefaultUploadMaxBytes is the upload ceiling when none is configured.
const DefaultUploadMaxBytes = 5 << 20

// allowedUploadTypes is checked in order against the sniffed type and its
// ancestors.
var allowedUploadTypes = []string{
	"application/pdf",
	"image/jpeg",
	"image/png",
	"image/gif",
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"application/vnd.ms-excel",
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	"text/plain",
}

// plainTextLeaves are the only detected types accepted through the
// text/plain ancestor. Markup, scripts and structured text are refused.
var plainTextLeaves = []string{
	"text/plain",
	"text/csv",
	"text/tab-separated-values",
}

type UploadService struct {
	maxBytes int64
}

func NewUploadService(maxBytes int64) *UploadService {
	if maxBytes <= 0 {
		maxBytes = DefaultUploadMaxBytes
	}
	return &UploadService{maxBytes: maxBytes}
}

// Accept reads at most the configured ceiling from r, sniffs the content
// type and returns the file as a base64 data URI.
func (s *UploadService) Accept(_ context.Context, filename string, r io.Reader) (*domain.UploadedFile, error) {
	data, err := io.ReadAll(io.LimitReader(r, s.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if int64(len(data)) > s.maxBytes {
		return nil, domain.ErrFileTooLarge
	}
	if len(data) == 0 {
		return nil, domain.ErrEmptyUpload
	}

	mime, ok := allowedType(data)
	if !ok {
		return nil, domain.ErrUnsupportedFile
	}

	return &domain.UploadedFile{
		Filename: filename,
		MimeType: mime,
		Size:     int64(len(data)),
		DataURI:  "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data),
	}, nil
}

// allowedType walks from the detected type up through its parents and
// returns the first allow-listed match.
func allowedType(data []byte) (string, bool) {
	detected := mimetype.Detect(data)
	for m := detected; m != nil; m = m.Parent() {
		for _, allowed := range allowedUploadTypes {
			if !m.Is(allowed) {
				continue
			}
			if allowed == "text/plain" && !isPlainText(detected) {
				return "", false
			}
			return allowed, true
		}
	}
	return "", false
}

func isPlainText(m *mimetype.MIME) bool {
	for _, leaf := range plainTextLeaves {
		if m.Is(leaf) {
			return true
		}
	}
	return false
}
