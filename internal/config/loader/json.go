package loader

import (
	"errors"
	"io"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/tidwall/gjson"
)

var errInvalidJSON = errors.New("invalid JSON")

// JSONLoader loads configuration from JSON files. It also understands the
// flat camelCase layout of older config.json files and rewrites those keys
// into the current sections.
type JSONLoader struct {
	fs   FileSystem
	path string
}

// NewJSONLoader creates a JSON loader for the given path.
func NewJSONLoader(path string) *JSONLoader {
	return NewJSONLoaderWithFS(DefaultFS(), path)
}

// NewJSONLoaderWithFS creates a JSON loader with a custom file system.
func NewJSONLoaderWithFS(fs FileSystem, path string) *JSONLoader {
	return &JSONLoader{fs: fs, path: path}
}

// Load reads configuration from the configured path.
func (l *JSONLoader) Load() (map[string]any, error) {
	return l.LoadFrom(l.path)
}

// LoadFrom reads configuration from a specific path.
func (l *JSONLoader) LoadFrom(path string) (map[string]any, error) {
	data, err := readFile(l.fs, path)
	if data == nil || err != nil {
		return nil, err
	}
	return parseJSON(path, data)
}

// LoadFromReader reads configuration from an io.Reader.
func (l *JSONLoader) LoadFromReader(r io.Reader) (map[string]any, error) {
	data, err := readAll(r)
	if err != nil {
		return nil, err
	}
	return parseJSON("<reader>", data)
}

func parseJSON(source string, data []byte) (map[string]any, error) {
	if !gjson.ValidBytes(data) {
		return nil, &ParseError{Path: source, Message: errInvalidJSON.Error(), Err: errInvalidJSON}
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, &ParseError{Path: source, Message: "top level must be an object", Err: errInvalidJSON}
	}

	config, _ := root.Value().(map[string]any)
	legacy := legacyKeys(root)
	for key := range legacyTopLevel {
		delete(config, key)
	}
	// Current sections win over translated legacy keys.
	return DeepMerge(legacy, config), nil
}

// legacyTopLevel lists the keys of the old flat layout.
var legacyTopLevel = map[string]bool{
	"uiMode":             true,
	"twoRing":            true,
	"oneRing":            true,
	"leftRing":           true,
	"rightRing":          true,
	"completion":         true,
	"click":              true,
	"fps":                true,
	"always_enter_paste": true,
	"always_use_buffer":  true,
}

// legacyColors maps ui.colors keys to old ring colour paths, highest
// priority first.
var legacyColors = []struct {
	key   string
	paths []string
}{
	{"background", []string{"twoRing.leftRing.backgroundColor", "leftRing.backgroundColor", "oneRing.ring.backgroundColor"}},
	{"center", []string{"twoRing.leftRing.centerColor", "leftRing.centerColor", "oneRing.ring.centerColor"}},
	{"text", []string{"twoRing.leftRing.normalCharColor", "leftRing.normalCharColor", "oneRing.ring.normalCharColor"}},
	{"dimmed", []string{"twoRing.leftRing.unSelectingCharColor", "leftRing.unSelectingCharColor", "oneRing.ring.unSelectingCharColor"}},
	{"selected", []string{"twoRing.leftRing.selectingCharColor", "leftRing.selectingCharColor", "oneRing.ring.selectingCharColor"}},
	{"highlight", []string{"twoRing.leftRing.selectingCharInRingColor", "leftRing.selectingCharInRingColor", "oneRing.ring.selectingCharInRingColor"}},
	{"buffer", []string{"twoRing.completion.inputtingCharColor", "completion.inputtingCharColor", "oneRing.completion.inputtingCharColor"}},
	{"buffer_background", []string{"twoRing.completion.backgroundColor", "completion.backgroundColor", "oneRing.completion.backgroundColor"}},
}

// legacyKeys translates the old layout into current keys.
func legacyKeys(root gjson.Result) map[string]any {
	config := make(map[string]any)

	if v := root.Get("uiMode"); v.Exists() {
		switch v.String() {
		case "TwoRing":
			setByPath(config, "ui.mode", "two-ring")
		case "OneRing":
			setByPath(config, "ui.mode", "one-ring")
		}
	}
	if v := root.Get("fps"); v.Type == gjson.Number {
		setByPath(config, "input.fps", v.Float())
	}
	if v := root.Get("always_use_buffer"); v.IsBool() {
		setByPath(config, "input.always_use_buffer", v.Bool())
	}
	if v := root.Get("always_enter_paste"); v.IsBool() {
		setByPath(config, "output.always_enter_paste", v.Bool())
	}

	for _, c := range legacyColors {
		for _, path := range c.paths {
			if hex, ok := legacyColor(root.Get(path)); ok {
				setByPath(config, "ui.colors."+c.key, hex)
				break
			}
		}
	}
	return config
}

// legacyColor converts an [r, g, b] array of 0..1 floats to "#rrggbb".
func legacyColor(v gjson.Result) (string, bool) {
	parts := v.Array()
	if !v.IsArray() || len(parts) < 3 {
		return "", false
	}
	c := colorful.Color{R: parts[0].Float(), G: parts[1].Float(), B: parts[2].Float()}
	return c.Clamped().Hex(), true
}
