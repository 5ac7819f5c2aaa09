package services

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"

	apperrors "github.com/abigaildinucci5-hue/tp-final-sub001/errors"
)

const MaxUploadSize = 5 << 20 // 5 MB

var allowedUploadTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// ValidateUpload chequea tipo y tamaño antes de tocar disco o red.
// Es una función pura: nada de callbacks de filtro con efectos.
func ValidateUpload(contentType string, size int64) error {
	if size <= 0 {
		return apperrors.NewAppError(apperrors.ErrCodeInvalidUpload, "El archivo está vacío", nil)
	}
	if size > MaxUploadSize {
		return apperrors.NewAppError(apperrors.ErrCodeInvalidUpload, "El archivo supera los 5 MB", nil)
	}
	if !allowedUploadTypes[contentType] {
		return apperrors.NewAppError(apperrors.ErrCodeInvalidUpload, "Solo se aceptan imágenes JPEG, PNG o WebP", nil)
	}
	return nil
}

// TempUploadDir es el directorio de staging que barre el cron de limpieza
func TempUploadDir() string {
	return filepath.Join(os.TempDir(), "hotel-uploads")
}

// StageTempFile copia el contenido a un archivo temporal de staging y
// devuelve la ruta. El caller lo borra al terminar; si no puede, lo
// levanta el barrido periódico.
func StageTempFile(src io.Reader) (string, error) {
	dir := TempUploadDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, uuid.NewString())
	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(path)
		return "", err
	}
	return path, nil
}

// UploadImage sube el archivo staged a Cloudinary y devuelve la URL pública
func UploadImage(ctx context.Context, cld *cloudinary.Cloudinary, path, folder string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	resp, err := cld.Upload.Upload(ctx, f, uploader.UploadParams{Folder: folder})
	if err != nil {
		return "", err
	}
	return resp.SecureURL, nil
}

// CleanupTempUploads borra los archivos de staging más viejos que maxAge.
// Devuelve cuántos borró; los errores por archivo no cortan el barrido.
func CleanupTempUploads(dir string, maxAge time.Duration) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}

	cutoff := time.Now().Add(-maxAge)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(filepath.Join(dir, entry.Name())); err == nil {
				removed++
			}
		}
	}
	return removed, nil
}
