package signature

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func TestSaveDecodesDataURL(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	encoded := "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngHeader)
	filename, err := store.Save(encoded)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if !strings.HasPrefix(filename, "signature_") || !strings.HasSuffix(filename, ".png") {
		t.Errorf("filename: got %q", filename)
	}

	raw, err := os.ReadFile(filepath.Join(dir, filename))
	if err != nil {
		t.Fatalf("read saved file: %v", err)
	}
	if string(raw) != string(pngHeader) {
		t.Errorf("saved bytes differ from decoded payload")
	}
}

func TestSaveAcceptsBarePayload(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	if _, err := store.Save(base64.StdEncoding.EncodeToString(pngHeader)); err != nil {
		t.Errorf("bare base64 payload rejected: %v", err)
	}
}

func TestSaveRejectsInvalidBase64(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	if _, err := store.Save("data:image/png;base64,not!!valid"); err == nil {
		t.Error("invalid payload accepted")
	}
}
