package validation

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"slices"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

const maxDisplayNameLength = 255

var ErrInvalidFile = errors.New("invalid file")

// FileConstraints defines validation rules for file uploads
type FileConstraints struct {
	AllowedMimeTypes  map[string]bool
	AllowedExtensions map[string]bool
	MaxSize           int64
}

// mimeTypesByExtension lists the sniffed content types accepted per extension
var mimeTypesByExtension = map[string][]string{
	".txt":  {"text/plain; charset=utf-8", "text/plain; charset=utf-16be", "text/plain; charset=utf-16le"},
	".pdf":  {"application/pdf"},
	".png":  {"image/png"},
	".jpg":  {"image/jpeg"},
	".jpeg": {"image/jpeg"},
	".webp": {"image/webp"},
	".gif":  {"image/gif"},
	".zip":  {"application/zip"},
	".csv":  {"text/plain; charset=utf-8"},
	".json": {"text/plain; charset=utf-8"},
}

// UploadConstraints builds constraints for the given extensions and size limit.
// Extensions without a known content type are checked by extension only.
func UploadConstraints(extensions []string, maxSize int64) FileConstraints {
	c := FileConstraints{
		AllowedMimeTypes:  map[string]bool{},
		AllowedExtensions: map[string]bool{},
		MaxSize:           maxSize,
	}

	for _, ext := range extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		c.AllowedExtensions[ext] = true
		for _, mimeType := range mimeTypesByExtension[ext] {
			c.AllowedMimeTypes[mimeType] = true
		}
	}

	return c
}

// ValidateFile validates a file upload against one or more constraint sets
// If multiple constraints are provided, file must match at least one (OR logic)
func ValidateFile(header *multipart.FileHeader, constraints ...FileConstraints) error {
	if len(constraints) == 0 {
		return fmt.Errorf("no file constraints provided")
	}

	var lastErr error
	for _, constraint := range constraints {
		err := validateAgainstConstraint(header, constraint)
		if err == nil {
			return nil
		}
		lastErr = err
	}

	return lastErr
}

// validateAgainstConstraint validates a file against a single constraint set
func validateAgainstConstraint(header *multipart.FileHeader, constraints FileConstraints) error {
	if header.Size == 0 {
		return fmt.Errorf("%w: no file data detected", ErrInvalidFile)
	}

	// Check file size first (before reading content)
	if header.Size > constraints.MaxSize {
		maxMB := constraints.MaxSize / (1 << 20)
		return fmt.Errorf("%w: file too large: maximum size is %d MB", ErrInvalidFile, maxMB)
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext == "" || !constraints.AllowedExtensions[ext] {
		return fmt.Errorf("%w: invalid file extension %q", ErrInvalidFile, ext)
	}

	// Extensions without a known signature are accepted on extension alone
	if len(mimeTypesByExtension[ext]) == 0 {
		return nil
	}

	file, err := header.Open()
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// http.DetectContentType reads max 512 bytes to determine MIME type
	buffer := make([]byte, 512)
	n, err := io.ReadFull(file, buffer)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return fmt.Errorf("failed to read file: %w", err)
	}

	// Detected from content, so a renamed file is caught here
	detectedType := http.DetectContentType(buffer[:n])
	if !constraints.AllowedMimeTypes[detectedType] || !slices.Contains(mimeTypesByExtension[ext], detectedType) {
		return fmt.Errorf("%w: content does not match extension %s (detected: %s)", ErrInvalidFile, ext, detectedType)
	}

	return nil
}

// SanitizeDisplayName reduces an uploaded file name to a printable base name.
func SanitizeDisplayName(name string) string {
	name = strings.ReplaceAll(name, `\`, "/")
	name = filepath.Base(norm.NFC.String(name))

	name = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, name)
	name = strings.TrimSpace(name)

	if name == "" || name == "." || name == "/" || name == ".." {
		return "upload"
	}

	runes := []rune(name)
	if len(runes) <= maxDisplayNameLength {
		return name
	}

	// Shorten the stem so the extension survives.
	ext := []rune(filepath.Ext(name))
	if len(ext) >= maxDisplayNameLength/2 {
		return string(runes[:maxDisplayNameLength])
	}
	stem := runes[:len(runes)-len(ext)]
	return string(stem[:maxDisplayNameLength-len(ext)]) + string(ext)
}
