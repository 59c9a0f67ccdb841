package config

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/automoto/lodestone/easing"
	"github.com/automoto/lodestone/property"
	"github.com/automoto/lodestone/surface"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Window.Width != 1280 || cfg.Window.Height != 720 {
		t.Errorf("expected 1280x720, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Cursor.Easing != "out-cubic" {
		t.Errorf("expected out-cubic, got %q", cfg.Cursor.Easing)
	}
	if len(cfg.Cursor.Props) != 2 {
		t.Errorf("expected 2 default props, got %d", len(cfg.Cursor.Props))
	}
	if C == nil {
		t.Error("expected package config initialized")
	}
}

func TestLoadOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lodestone.yaml")
	data := []byte("cursor:\n  duration: 400\n  easing: in-out-sine\ndebug:\n  show_bounds: true\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Cursor.Duration != 400 || cfg.Cursor.Easing != "in-out-sine" {
		t.Errorf("expected overlay values, got duration=%f easing=%q", cfg.Cursor.Duration, cfg.Cursor.Easing)
	}
	if !cfg.Debug.ShowBounds {
		t.Error("expected show_bounds overlaid")
	}
	if cfg.Window.Width != 1280 || cfg.Cursor.Size != 24 {
		t.Error("expected untouched fields to keep their defaults")
	}
}

func TestPrecisionZero(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lodestone.yaml")
	data := []byte("cursor:\n  precision: 0\n  props:\n    - id: ring\n      key: r\n      kind: attribute\n      precision: 0\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	out, err := cfg.Cursor.ToCursor(3, nil)
	if err != nil {
		t.Fatalf("ToCursor: %v", err)
	}
	if out.Precision == nil || *out.Precision != 0 {
		t.Errorf("expected cursor precision 0, got %v", out.Precision)
	}
	if len(out.Props) != 1 || out.Props[0].Precision == nil || *out.Props[0].Precision != 0 {
		t.Errorf("expected prop precision 0, got %+v", out.Props)
	}

	// Props without a precision keep the engine default.
	def, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if def.Cursor.Props[0].Precision != nil {
		t.Errorf("expected unset prop precision, got %d", *def.Cursor.Props[0].Precision)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected wrapped ErrNotExist, got %v", err)
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("cursor: [unterminated"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"#ff0000", color.RGBA{R: 255, A: 255}, false},
		{"00ff0080", color.RGBA{G: 255, A: 128}, false},
		{" #0000FF ", color.RGBA{B: 255, A: 255}, false},
		{"#fff", color.RGBA{}, true},
		{"#gggggg", color.RGBA{}, true},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseColor(%q): unexpected error state %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q): expected %v, got %v", tt.in, tt.want, got)
		}
	}
}

func TestToCursor(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	cc := cfg.Cursor
	cc.Props = append(cc.Props, PropertyConfig{ID: "glow", Key: "glow", Kind: "attribute", Target: "panel", Duration: 50})

	lookup := func(name string) (surface.Element, bool) {
		if name == "panel" {
			return 7, true
		}
		return surface.None, false
	}
	out, err := cc.ToCursor(3, lookup)
	if err != nil {
		t.Fatalf("ToCursor: %v", err)
	}
	if out.Element != 3 || out.Duration != 120 || out.Precision == nil || *out.Precision != 2 {
		t.Errorf("unexpected cursor config %+v", out)
	}
	if out.Easing(0.5) != easing.OutCubic(0.5) {
		t.Error("expected out-cubic follow easing")
	}
	if len(out.Props) != 3 {
		t.Fatalf("expected 3 props, got %d", len(out.Props))
	}
	if out.Props[0].Kind != property.Transform || out.Props[0].Target != 3 {
		t.Errorf("expected scale on the cursor, got %+v", out.Props[0])
	}
	if out.Props[2].Kind != property.Attribute || out.Props[2].Target != 7 {
		t.Errorf("expected glow on the panel, got %+v", out.Props[2])
	}
}

func TestToCursorErrors(t *testing.T) {
	if _, err := (CursorConfig{Easing: "wobble"}).ToCursor(1, nil); !errors.Is(err, easing.ErrUnknown) {
		t.Errorf("expected ErrUnknown, got %v", err)
	}
	bad := CursorConfig{Props: []PropertyConfig{{ID: "x", Kind: "shader"}}}
	if _, err := bad.ToCursor(1, nil); err == nil {
		t.Error("expected unknown kind error")
	}
	missing := CursorConfig{Props: []PropertyConfig{{ID: "x", Kind: "style", Target: "nowhere"}}}
	if _, err := missing.ToCursor(1, nil); err == nil {
		t.Error("expected unknown target error")
	}
}

func TestWatcherReportsWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lodestone.yaml")
	if err := os.WriteFile(path, []byte("debug:\n  show_hud: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("debug:\n  show_hud: false\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(3 * time.Second)
	for {
		select {
		case got := <-w.Events:
			abs, _ := filepath.Abs(path)
			if got != abs {
				t.Errorf("expected %s, got %s", abs, got)
			}
			return
		case <-deadline:
			t.Fatal("no reload event")
		}
	}
}
