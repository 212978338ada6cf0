package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestPopupRendersFileInput(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping binary build in short mode")
	}
	bin := BuildBinary(t)
	socket, cleanup := StartTmuxServer(t)
	defer cleanup()
	dir := t.TempDir()
	doc := filepath.Join(dir, "doc.json")
	if err := os.WriteFile(doc, []byte(`{"alpha":1,"beta":[true]}`), 0o600); err != nil {
		t.Fatalf("write doc: %v", err)
	}
	session := "inspect"
	pane := session + ":0.0"
	cmd := TmuxCommand(socket, "new-session", "-d", "-x", "100", "-y", "24", "-s", session,
		bin, "--file", doc, "--socket", socket, "--no-mouse")
	if err := cmd.Run(); err != nil {
		t.Fatalf("failed to launch binary: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	WaitForText(t, ctx, socket, pane, "Valid JSON")
	WaitForText(t, ctx, socket, pane, `"alpha": 1`)

	_ = TmuxCommand(socket, "send-keys", "-t", pane, "C-x").Run()
	WaitForText(t, ctx, socket, pane, "Ready")
	_ = TmuxCommand(socket, "send-keys", "-t", pane, "C-c").Run()
	_ = TmuxCommand(socket, "kill-session", "-t", session).Run()
}
