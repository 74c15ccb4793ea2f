package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"playground/internal/config"
)

func TestNew_StdoutOnly(t *testing.T) {
	tests := []struct {
		environment string
		wantDebug   bool
	}{
		{"dev", true},
		{"production", false},
	}

	for _, tt := range tests {
		t.Run(tt.environment, func(t *testing.T) {
			var buf bytes.Buffer
			logger, closeFn, err := New(&config.Config{Environment: tt.environment}, &buf)
			if err != nil {
				t.Fatalf("New returned error: %v", err)
			}
			defer closeFn()

			logger.Debug("debug line")
			logger.Info("info line", "k", "v")

			if got := bytes.Contains(buf.Bytes(), []byte("debug line")); got != tt.wantDebug {
				t.Errorf("debug logged = %v, want %v", got, tt.wantDebug)
			}

			lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
			var entry map[string]interface{}
			if err := json.Unmarshal(lines[len(lines)-1], &entry); err != nil {
				t.Fatalf("log line is not JSON: %v", err)
			}
			if entry["msg"] != "info line" || entry["k"] != "v" {
				t.Errorf("unexpected entry: %v", entry)
			}
		})
	}
}

func TestNew_MirrorsToFile(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer

	logger, closeFn, err := New(&config.Config{Environment: "dev", LogDir: dir, LogMaxFiles: 3}, &buf)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("hello")
	if err := closeFn(); err != nil {
		t.Fatalf("close: %v", err)
	}

	files, _ := filepath.Glob(filepath.Join(dir, filePrefix+"*"+fileSuffix))
	if len(files) != 1 {
		t.Fatalf("expected one log file, got %v", files)
	}
	data, err := os.ReadFile(files[0])
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, buf.Bytes()) {
		t.Errorf("file content %q differs from stdout %q", data, buf.Bytes())
	}
}

func TestOpenLogFile_PrunesOldest(t *testing.T) {
	dir := t.TempDir()
	for _, stamp := range []string{"2020-01-01T00-00-00", "2020-01-02T00-00-00", "2020-01-03T00-00-00"} {
		if err := os.WriteFile(filepath.Join(dir, filePrefix+stamp+fileSuffix), nil, 0644); err != nil {
			t.Fatal(err)
		}
	}
	// Unrelated files are left alone
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0644); err != nil {
		t.Fatal(err)
	}

	f, err := openLogFile(dir, 2, time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("openLogFile returned error: %v", err)
	}
	defer f.Close()

	entries, _ := os.ReadDir(dir)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}

	want := []string{"notes.txt", filePrefix + "2020-01-03T00-00-00" + fileSuffix, filePrefix + "2021-01-01T00-00-00" + fileSuffix}
	if len(names) != len(want) {
		t.Fatalf("dir contents = %v, want %v", names, want)
	}
	for _, w := range want {
		if _, err := os.Stat(filepath.Join(dir, w)); err != nil {
			t.Errorf("expected %s to remain: %v", w, err)
		}
	}
}
