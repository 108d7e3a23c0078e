package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitLoggerWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.log")
	prev := Log
	t.Cleanup(func() { Log = prev })

	if err := InitLogger(Options{FilePath: path, Level: "debug"}); err != nil {
		t.Fatalf("init logger: %v", err)
	}
	Log.Infow("district changed", "district", "corporate")
	SyncLogger()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "district changed") {
		t.Fatalf("expected log line in file, got %q", string(data))
	}

	// 关闭后继续写入会重新打开同一文件
	Log.Infow("session resume")
	SyncLogger()
	data, err = os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "session resume") {
		t.Fatalf("expected log after sync, got %q", string(data))
	}
}

func TestInitLoggerRejectsUnknownLevel(t *testing.T) {
	prev := Log
	t.Cleanup(func() { Log = prev })

	err := InitLogger(Options{FilePath: filepath.Join(t.TempDir(), "x.log"), Level: "loud"})
	if err == nil {
		t.Fatal("expected error for unknown level")
	}
}
