package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/google/uuid"
)

// Storage penyimpanan file yang diakses lewat URL publik.
type Storage interface {
	// Upload menyimpan file di bawah folder dan mengembalikan URL publiknya.
	Upload(ctx context.Context, file *multipart.FileHeader, folder string) (string, error)
	// Delete menghapus file berdasarkan URL. URL yang tidak dikelola
	// storage ini diabaikan.
	Delete(ctx context.Context, fileURL string) error
	// IsManaged true bila URL menunjuk ke file milik storage ini.
	IsManaged(fileURL string) bool
}

// ValidationError file ditolak karena ukuran atau tipe.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// IsValidationError memeriksa apakah err berasal dari Rule.Validate.
func IsValidationError(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

const (
	mimeDOC  = "application/msword"
	mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// Rule batasan ukuran, ekstensi, dan isi file per endpoint. MIMETypes
// dicocokkan dengan hasil sniff isi file, bukan header dari klien.
type Rule struct {
	MaxSize    int64
	Extensions []string
	MIMETypes  []string
}

var (
	ImageRule = Rule{
		MaxSize:    5 << 20,
		Extensions: []string{".jpg", ".jpeg", ".png", ".gif", ".webp"},
		MIMETypes:  []string{"image/jpeg", "image/png", "image/gif", "image/webp"},
	}
	PictureRule = Rule{
		MaxSize:    5 << 20,
		Extensions: []string{".jpg", ".jpeg", ".png", ".webp"},
		MIMETypes:  []string{"image/jpeg", "image/png", "image/webp"},
	}
	DocumentRule = Rule{
		MaxSize:    10 << 20,
		Extensions: []string{".pdf", ".doc", ".docx"},
		MIMETypes:  []string{"application/pdf", mimeDOC, mimeDOCX},
	}
)

// extensionTypes tipe isi yang diharapkan per ekstensi.
var extensionTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
	".pdf":  "application/pdf",
	".doc":  mimeDOC,
	".docx": mimeDOCX,
}

// oleMagic header compound file (doc lama), tidak dikenali DetectContentType.
var oleMagic = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}

// Validate memeriksa ukuran, ekstensi, lalu isi file. Isi harus cocok
// dengan ekstensinya dan termasuk MIMETypes.
func (r Rule) Validate(file *multipart.FileHeader) error {
	if file == nil {
		return &ValidationError{Message: "File wajib diunggah"}
	}
	if r.MaxSize > 0 && file.Size > r.MaxSize {
		return &ValidationError{Message: fmt.Sprintf("Ukuran file %s melebihi batas %d MB", file.Filename, r.MaxSize>>20)}
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !slices.Contains(r.Extensions, ext) {
		return &ValidationError{Message: fmt.Sprintf("Tipe file %s tidak didukung. Gunakan: %s", file.Filename, strings.Join(r.Extensions, ", "))}
	}
	if len(r.MIMETypes) == 0 {
		return nil
	}

	detected, err := sniff(file)
	if err != nil {
		return &ValidationError{Message: fmt.Sprintf("File %s tidak dapat dibaca", file.Filename)}
	}
	if !slices.Contains(r.MIMETypes, detected) || extensionTypes[ext] != detected {
		return &ValidationError{Message: fmt.Sprintf("Isi file %s (%s) tidak sesuai dengan tipe yang diizinkan", file.Filename, detected)}
	}
	return nil
}

// sniff membaca 512 byte pertama dan menentukan tipe isinya.
func sniff(file *multipart.FileHeader) (string, error) {
	f, err := file.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	head := make([]byte, 512)
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", err
	}
	return detectContentType(head[:n]), nil
}

func detectContentType(head []byte) string {
	if bytes.HasPrefix(head, oleMagic) {
		return mimeDOC
	}
	detected, _, _ := strings.Cut(http.DetectContentType(head), ";")
	// docx adalah zip dengan [Content_Types].xml sebagai entry pertama
	if detected == "application/zip" && bytes.Contains(head, []byte("[Content_Types].xml")) {
		return mimeDOCX
	}
	return detected
}

// ObjectKey membuat key unik: folder/uuid-nama_file.ext.
func ObjectKey(folder, filename string) string {
	name := filepath.Base(filename)
	name = strings.ReplaceAll(name, " ", "_")
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		default:
			return -1
		}
	}, name)
	if name == "" || name == "." {
		name = "file"
	}

	key := uuid.NewString() + "-" + name
	folder = strings.Trim(folder, "/")
	if folder == "" {
		return key
	}
	return path.Join(folder, key)
}

// contentType mengutamakan tipe dari ekstensi yang sudah tervalidasi
// daripada header klien.
func contentType(file *multipart.FileHeader) string {
	if ct, ok := extensionTypes[strings.ToLower(filepath.Ext(file.Filename))]; ok {
		return ct
	}
	if ct := file.Header.Get("Content-Type"); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
