package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/tidwall/gjson"

	"github.com/clekey/clekeyOVR/internal/renderer/backend"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "", "version")
	if err != nil {
		t.Fatalf("version error = %v", err)
	}
	if !strings.Contains(out, "clekey dev") || !strings.Contains(out, "Commit: unknown") {
		t.Errorf("version output = %q", out)
	}
}

func TestConfigInitStdout(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{"toml", "[input]"},
		{"yaml", "input:"},
		{"json", `"input"`},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			out, _, err := execute(t, "", "config", "init", "--format", tt.format)
			if err != nil {
				t.Fatalf("config init error = %v", err)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("config init output = %q, want %q", out, tt.want)
			}
		})
	}

	if _, _, err := execute(t, "", "config", "init", "--format", "ini"); err == nil {
		t.Error("config init --format ini error = nil, want error")
	}
}

func TestConfigInitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	if _, _, err := execute(t, "", "config", "init", "--output", path); err != nil {
		t.Fatalf("config init error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "input:") {
		t.Errorf("written config = %q, want yaml", data)
	}

	if _, _, err := execute(t, "", "config", "init", "--output", path); err == nil {
		t.Error("config init over an existing file error = nil, want error")
	}
	if _, _, err := execute(t, "", "config", "init", "--output", path, "--force"); err != nil {
		t.Errorf("config init --force error = %v", err)
	}
}

func TestConfigShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[input]\nplanes = [\"english\"]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, _, err := execute(t, "", "config", "show", "--config", path, "--format", "json")
	if err != nil {
		t.Fatalf("config show error = %v", err)
	}
	if got := gjson.Get(out, "input.planes.#").Int(); got != 1 {
		t.Errorf("input.planes has %d entries, want 1", got)
	}
	if got := gjson.Get(out, "input.planes.0").String(); got != "english" {
		t.Errorf("input.planes.0 = %q, want english", got)
	}
	if got := gjson.Get(out, "output.mode").String(); got != "clipboard" {
		t.Errorf("output.mode = %q, want the default", got)
	}
}

func TestConfigShowInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[input]\nfps = -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := execute(t, "", "config", "show", "--config", path); err == nil {
		t.Error("config show error = nil, want validation error")
	}
}

func TestRunHeadlessQuitsAtEndOfInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	done := make(chan struct{})
	var errOut string
	var err error
	go func() {
		_, errOut, err = execute(t, "\x1b\n", "run", "--headless", "--config", path, "--fps", "100")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return at end of input")
	}
	if err != nil {
		t.Fatalf("run error = %v", err)
	}
	if !strings.Contains(errOut, "keyboard started") || !strings.Contains(errOut, "keyboard stopped") {
		t.Errorf("run log = %q", errOut)
	}
}

func TestRunInvalidLogLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	err := runKeyboard(context.Background(), runOptions{configPath: path, logLevel: "loud", headless: true}, strings.NewReader(""), &bytes.Buffer{})
	if err == nil {
		t.Error("runKeyboard() error = nil, want validation error")
	}
}

func TestScriptEvent(t *testing.T) {
	tests := []struct {
		in     rune
		want   backend.Event
		wantOK bool
	}{
		{'w', backend.Event{Type: backend.EventKey, Key: backend.KeyRune, Rune: 'w'}, true},
		{'\x1b', backend.Event{Type: backend.EventKey, Key: backend.KeyEscape}, true},
		{'\t', backend.Event{Type: backend.EventKey, Key: backend.KeyTab}, true},
		{'\x03', backend.Event{Type: backend.EventKey, Key: backend.KeyCtrlC}, true},
		{'\n', backend.Event{}, false},
		{'\r', backend.Event{}, false},
	}
	for _, tt := range tests {
		got, ok := scriptEvent(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("scriptEvent(%q) = %+v, %v, want %+v, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}
