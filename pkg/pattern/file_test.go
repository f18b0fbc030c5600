package pattern

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFromFileRLE(t *testing.T) {
	path := writeFile(t, "glider.rle", "#N Glider\nx = 3, y = 3\nbo$2bo$3o!")
	p, err := FromFile(path)
	if err != nil {
		t.Fatalf("FromFile: %v", err)
	}
	if p.Name != "Glider" || len(p.Cells) != 5 {
		t.Fatalf("Name = %q, %d cells", p.Name, len(p.Cells))
	}
}

func TestFromFileUnsupportedFormats(t *testing.T) {
	for _, name := range []string{"p.lif", "p.life", "p.cells"} {
		path := writeFile(t, name, "irrelevant")
		_, err := FromFile(path)
		var unsupported *UnsupportedFormatError
		if !errors.As(err, &unsupported) {
			t.Fatalf("FromFile(%s) = %v, want UnsupportedFormatError", name, err)
		}
	}
}

func TestFromFileUnrecognizedExtension(t *testing.T) {
	path := writeFile(t, "p.txt", "irrelevant")
	_, err := FromFile(path)
	if err == nil {
		t.Fatal("unrecognized extension should fail before decoding")
	}
	var unsupported *UnsupportedFormatError
	if errors.As(err, &unsupported) {
		t.Fatal("unrecognized extension is not the unsupported-format case")
	}
}

func TestFromFileMissing(t *testing.T) {
	if _, err := FromFile(filepath.Join(t.TempDir(), "absent.rle")); err == nil {
		t.Fatal("missing file should fail")
	}
}
