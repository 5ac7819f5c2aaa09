package services

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	apperrors "github.com/abigaildinucci5-hue/tp-final-sub001/errors"
)

func TestValidateUpload(t *testing.T) {
	cases := []struct {
		name        string
		contentType string
		size        int64
		wantErr     bool
	}{
		{"jpeg válido", "image/jpeg", 1024, false},
		{"png válido", "image/png", MaxUploadSize, false},
		{"webp válido", "image/webp", 1, false},
		{"gif rechazado", "image/gif", 1024, true},
		{"pdf rechazado", "application/pdf", 1024, true},
		{"archivo vacío", "image/jpeg", 0, true},
		{"tamaño negativo", "image/jpeg", -1, true},
		{"demasiado grande", "image/jpeg", MaxUploadSize + 1, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateUpload(tc.contentType, tc.size)
			if tc.wantErr {
				if !apperrors.HasCode(err, apperrors.ErrCodeInvalidUpload) {
					t.Errorf("esperaba INVALID_UPLOAD, recibí %v", err)
				}
			} else if err != nil {
				t.Errorf("archivo válido rechazado: %v", err)
			}
		})
	}
}

func TestStageTempFile(t *testing.T) {
	path, err := StageTempFile(strings.NewReader("contenido de prueba"))
	if err != nil {
		t.Fatalf("StageTempFile: %v", err)
	}
	defer os.Remove(path)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("no se pudo leer el archivo staged: %v", err)
	}
	if string(data) != "contenido de prueba" {
		t.Errorf("contenido staged = %q", string(data))
	}
}

func TestCleanupTempUploads(t *testing.T) {
	dir := t.TempDir()

	old := filepath.Join(dir, "viejo")
	if err := os.WriteFile(old, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	past := time.Now().Add(-2 * time.Hour)
	if err := os.Chtimes(old, past, past); err != nil {
		t.Fatal(err)
	}

	recent := filepath.Join(dir, "reciente")
	if err := os.WriteFile(recent, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	removed, err := CleanupTempUploads(dir, time.Hour)
	if err != nil {
		t.Fatalf("CleanupTempUploads: %v", err)
	}
	if removed != 1 {
		t.Errorf("borrados = %d, esperaba 1", removed)
	}
	if _, err := os.Stat(old); !os.IsNotExist(err) {
		t.Error("el archivo viejo sigue existiendo")
	}
	if _, err := os.Stat(recent); err != nil {
		t.Error("el archivo reciente fue borrado")
	}
}

func TestCleanupTempUploadsDirectorioInexistente(t *testing.T) {
	removed, err := CleanupTempUploads(filepath.Join(t.TempDir(), "no-existe"), time.Hour)
	if err != nil {
		t.Fatalf("directorio inexistente no debería ser error: %v", err)
	}
	if removed != 0 {
		t.Errorf("borrados = %d, esperaba 0", removed)
	}
}
