package validation

import (
	"bytes"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	form, err := multipart.NewReader(&body, mw.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	require.Len(t, form.File["file"], 1)
	return form.File["file"][0]
}

func TestNormalizeDirectoryName(t *testing.T) {
	name, err := NormalizeDirectoryName("  Docs ")
	require.NoError(t, err)
	assert.Equal(t, "Docs", name)

	// Decomposed "é" becomes the composed form
	name, err = NormalizeDirectoryName("Caf\u0065\u0301")
	require.NoError(t, err)
	assert.Equal(t, "Caf\u00e9", name)

	name, err = NormalizeDirectoryName(strings.Repeat("ü", MaxDirectoryNameLength))
	require.NoError(t, err)
	assert.Equal(t, MaxDirectoryNameLength, len([]rune(name)))

	bad := []string{
		"",
		"   ",
		strings.Repeat("a", MaxDirectoryNameLength+1),
		".",
		"..",
		"a/b",
		`a\b`,
		"tab\there",
		"nul\x00",
	}
	for _, in := range bad {
		_, err := NormalizeDirectoryName(in)
		assert.ErrorIs(t, err, ErrInvalidName, "%q", in)
	}
}

func TestUploadConstraints(t *testing.T) {
	c := UploadConstraints([]string{".TXT", "pdf", " ", ".bin"}, 10<<20)

	assert.True(t, c.AllowedExtensions[".txt"])
	assert.True(t, c.AllowedExtensions[".pdf"])
	assert.True(t, c.AllowedExtensions[".bin"])
	assert.Len(t, c.AllowedExtensions, 3)
	assert.True(t, c.AllowedMimeTypes["application/pdf"])
	assert.True(t, c.AllowedMimeTypes["text/plain; charset=utf-8"])
	assert.Equal(t, int64(10<<20), c.MaxSize)
}

func TestValidateFile(t *testing.T) {
	c := UploadConstraints([]string{".txt", ".pdf", ".png", ".bin"}, 64)

	tests := []struct {
		name     string
		filename string
		content  []byte
		wantErr  bool
	}{
		{"text", "notes.txt", []byte("hello world"), false},
		{"upper case extension", "NOTES.TXT", []byte("hello world"), false},
		{"pdf", "doc.pdf", []byte("%PDF-1.4\n%..."), false},
		{"png", "img.png", []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), false},
		{"unknown signature by extension", "blob.bin", []byte{0x01, 0x02}, false},
		{"empty", "empty.txt", []byte{}, true},
		{"too large", "big.txt", bytes.Repeat([]byte("a"), 65), true},
		{"no extension", "README", []byte("hello"), true},
		{"disallowed extension", "run.exe", []byte("MZ"), true},
		{"content mismatch", "fake.png", []byte("just text"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFile(fileHeader(t, tt.filename, tt.content), c)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidFile)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateFileNoConstraints(t *testing.T) {
	err := ValidateFile(fileHeader(t, "a.txt", []byte("x")))
	assert.Error(t, err)
}

func TestSanitizeDisplayName(t *testing.T) {
	assert.Equal(t, "report.pdf", SanitizeDisplayName("report.pdf"))
	assert.Equal(t, "report.pdf", SanitizeDisplayName("C:\\Users\\me\\report.pdf"))
	assert.Equal(t, "passwd", SanitizeDisplayName("../../etc/passwd"))
	assert.Equal(t, "ab.txt", SanitizeDisplayName("a\x00b\n.txt"))
	assert.Equal(t, "a&b <x>.txt", SanitizeDisplayName("a&b <x>.txt"))
	assert.Equal(t, "upload", SanitizeDisplayName(""))
	assert.Equal(t, "upload", SanitizeDisplayName(".."))
	assert.Len(t, []rune(SanitizeDisplayName(strings.Repeat("x", 300)+".txt")), 255)

	long := SanitizeDisplayName(strings.Repeat("é", 300) + ".pdf")
	assert.Len(t, []rune(long), 255)
	assert.True(t, strings.HasSuffix(long, "é.pdf"))
	assert.Len(t, []rune(SanitizeDisplayName(strings.Repeat("y", 300))), 255)
}
