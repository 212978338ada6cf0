package app

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadInitialInputFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	if err := os.WriteFile(path, []byte(`{"a":1}`), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := loadInitialInput(path, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.text != `{"a":1}` || got.source != sourceFile {
		t.Fatalf("expected file contents, got %+v", got)
	}
}

func TestLoadInitialInputMissingFile(t *testing.T) {
	if _, err := loadInitialInput(filepath.Join(t.TempDir(), "missing.json"), nil); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoadInitialInputFromPipe(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	defer r.Close()
	if _, err := w.WriteString("[1,2]"); err != nil {
		t.Fatalf("write: %v", err)
	}
	w.Close()
	got, err := loadInitialInput("", r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.text != "[1,2]" || got.source != sourceStdin {
		t.Fatalf("expected piped input, got %+v", got)
	}
}

func TestLoadInitialInputNothing(t *testing.T) {
	got, err := loadInitialInput("", nil)
	if err != nil || got.source != "" || got.text != "" {
		t.Fatalf("expected no initial input, got %+v (%v)", got, err)
	}
}

func TestProgramOptions(t *testing.T) {
	if got := len(programOptions(Config{}, false)); got != 1 {
		t.Fatalf("expected alt screen only, got %d options", got)
	}
	if got := len(programOptions(Config{Mouse: true}, true)); got != 3 {
		t.Fatalf("expected alt screen, tty input and mouse, got %d options", got)
	}
}
