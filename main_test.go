package main

import (
	"testing"
	"time"

	"github.com/atomicstack/tmux-popup-json/internal/app"
	"github.com/atomicstack/tmux-popup-json/internal/config"
)

func TestCollectTTYDetailsIncludesStandardDescriptors(t *testing.T) {
	info := collectTTYDetails()
	if len(info.Probes) != 3 {
		t.Fatalf("expected 3 probe entries, got %d", len(info.Probes))
	}
	expected := []string{"stdin", "stdout", "stderr"}
	for i, name := range expected {
		if info.Probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, info.Probes[i].Name)
		}
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			SocketPath:   "socket-path",
			Width:        80,
			Height:       24,
			ShowFooter:   true,
			InputPath:    "doc.json",
			ThemePath:    "palette.yaml",
			PasteTimeout: 3 * time.Second,
			Mouse:        true,
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"socket": "socket-path",
			"width":  "80",
			"height": "24",
			"footer": "true",
			"file":   "doc.json",
		},
		Args: []string{"--socket", "socket-path"},
	}

	payload := startupTracePayload(cfg)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["socket"] != "socket-path" {
		t.Fatalf("expected socket flag %q, got %v", "socket-path", flagsValue["socket"])
	}
	if flagsValue["width"] != "80" {
		t.Fatalf("expected width 80, got %v", flagsValue["width"])
	}
	if flagsValue["height"] != "24" {
		t.Fatalf("expected height 24, got %v", flagsValue["height"])
	}
	if flagsValue["footer"] != "true" {
		t.Fatalf("expected footer flag true, got %v", flagsValue["footer"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace flag true, got %v", flagsValue["trace"])
	}
	if flagsValue["file"] != "doc.json" {
		t.Fatalf("expected file flag doc.json, got %v", flagsValue["file"])
	}
	if flagsValue["version"] != config.Version {
		t.Fatalf("expected version %q, got %v", config.Version, flagsValue["version"])
	}
	if flagsValue["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", flagsValue["logFile"])
	}

	popup, ok := payload["popup"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected popup settings in payload")
	}
	if popup["input"] != "file" {
		t.Fatalf("expected file input source, got %v", popup["input"])
	}
	if popup["theme"] != "palette.yaml" {
		t.Fatalf("expected theme palette.yaml, got %v", popup["theme"])
	}
	if popup["pasteTimeout"] != "3s" {
		t.Fatalf("expected paste timeout 3s, got %v", popup["pasteTimeout"])
	}
	if popup["mouse"] != true {
		t.Fatalf("expected mouse enabled, got %v", popup["mouse"])
	}

	if _, ok := payload["tty"].(ttyDetails); !ok {
		t.Fatalf("expected tty details in payload")
	}
	if cfgValue, ok := payload["config"].(config.Config); !ok {
		t.Fatalf("expected config in payload")
	} else if cfgValue.App != cfg.App {
		t.Fatalf("expected app config %#v, got %#v", cfg.App, cfgValue.App)
	}
}

func TestPopupSettingsDefaultTheme(t *testing.T) {
	settings := popupSettings(app.Config{PasteTimeout: 2 * time.Second})
	if settings["theme"] != "default" {
		t.Fatalf("expected default theme, got %v", settings["theme"])
	}
	if settings["mouse"] != false {
		t.Fatalf("expected mouse disabled, got %v", settings["mouse"])
	}
}
