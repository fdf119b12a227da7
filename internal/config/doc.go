// Package config holds the keyboard's settings.
//
// Settings come from three layers, later layers overriding earlier ones:
//
//	┌────────────────────────────┐
//	│  3. Environment (CLEKEY_)  │  ← Highest priority
//	├────────────────────────────┤
//	│  2. Config file            │  ← config.toml, .yaml or .json
//	├────────────────────────────┤
//	│  1. Built-in defaults      │
//	└────────────────────────────┘
//
// The file format follows the extension. Older config.json files with the
// flat camelCase layout (uiMode, fps, twoRing, ...) are still read.
//
// # Sections
//
//	[input]
//	fps = 72.0
//	planes = ["japanese", "english"]
//	always_use_buffer = true
//
//	[output]
//	mode = "clipboard"           # or "log"
//	always_enter_paste = false
//	literal_keystrokes = true
//
//	[haptics]
//	enabled = true
//	duration = 0.05              # seconds
//	frequency = 1.0
//	amplitude = 0.5
//
//	[logging]
//	level = "info"
//	format = "text"              # text, json or logfmt
//	timestamps = true
//	file = ""
//
//	[ui]
//	mode = "two-ring"            # or "one-ring"
//
//	[ui.colors]
//	highlight = "#ff0000"
//
// # Environment
//
// CLEKEY_SECTION_KEY sets section.key, e.g. CLEKEY_OUTPUT_ALWAYS_ENTER_PASTE=true.
// CLEKEY_LOG_LEVEL, CLEKEY_LOG_FILE, CLEKEY_FPS and CLEKEY_OUTPUT are
// shorthands. CLEKEY_CONFIG names the config file.
package config
