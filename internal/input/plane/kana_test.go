package plane

import "testing"

func TestToggleDakutenInvolution(t *testing.T) {
	for _, r := range voiceableKana + "う" {
		voiced := ToggleDakuten(r)
		if voiced == r {
			t.Errorf("ToggleDakuten(%c) left the kana unchanged", r)
		}
		if back := ToggleDakuten(voiced); back != r {
			t.Errorf("ToggleDakuten(ToggleDakuten(%c)) = %c, want %c", r, back, r)
		}
	}
}

func TestToggleDakutenPairs(t *testing.T) {
	tests := map[rune]rune{'か': 'が', 'し': 'じ', 'て': 'で', 'ほ': 'ぼ', 'う': 'ゔ', 'ゔ': 'う', 'ざ': 'さ'}
	for in, want := range tests {
		if got := ToggleDakuten(in); got != want {
			t.Errorf("ToggleDakuten(%c) = %c, want %c", in, got, want)
		}
	}
}

func TestToggleHandakuten(t *testing.T) {
	tests := map[rune]rune{'は': 'ぱ', 'ひ': 'ぴ', 'ほ': 'ぽ', 'ぷ': 'ふ', 'か': 'か', 'ば': 'ば'}
	for in, want := range tests {
		if got := ToggleHandakuten(in); got != want {
			t.Errorf("ToggleHandakuten(%c) = %c, want %c", in, got, want)
		}
	}
}

func TestToggleSmall(t *testing.T) {
	tests := map[rune]rune{
		'あ': 'ぁ', 'ぁ': 'あ', 'つ': 'っ', 'っ': 'つ', 'よ': 'ょ', 'ゎ': 'わ',
		'か': 'ゕ', 'ゕ': 'か', 'け': 'ゖ', 'ゖ': 'け', 'ん': 'ん', 'a': 'a',
	}
	for in, want := range tests {
		if got := ToggleSmall(in); got != want {
			t.Errorf("ToggleSmall(%c) = %c, want %c", in, got, want)
		}
	}
}

func TestTogglesIgnoreOtherCharacters(t *testing.T) {
	for _, r := range "Aん。ー🌐" {
		if ToggleDakuten(r) != r || ToggleHandakuten(r) != r || ToggleSmall(r) != r {
			t.Errorf("toggles should leave %c unchanged", r)
		}
	}
}
