package fs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIsValidFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "e.f18x")
	if err := os.WriteFile(file, []byte("(logical .T.)"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		path      string
		wantFile  bool
		wantIsDir bool
	}{
		{file, true, false},
		{dir, false, true},
		{filepath.Join(dir, "missing"), false, false},
	}
	for _, tt := range tests {
		if got := IsValidFile(tt.path); got != tt.wantFile {
			t.Errorf("IsValidFile(%q) = %v, want %v", tt.path, got, tt.wantFile)
		}
		if got := IsDir(tt.path); got != tt.wantIsDir {
			t.Errorf("IsDir(%q) = %v, want %v", tt.path, got, tt.wantIsDir)
		}
	}
}
