package score

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscore.json")
	s := NewFileStoreAt(path)

	if err := s.Save(1230); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != 1230 {
		t.Fatalf("round trip: got=%d want=1230", got)
	}
}

func TestFileStoreMissingFileReadsZero(t *testing.T) {
	s := NewFileStoreAt(filepath.Join(t.TempDir(), "nope.json"))

	got, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != 0 {
		t.Fatalf("missing file: got=%d want=0", got)
	}
}

func TestFileStoreCorruptFileErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscore.json")
	if err := os.WriteFile(path, []byte("not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := NewFileStoreAt(path).Load(); err == nil {
		t.Fatal("corrupt file must surface an error")
	}
}
