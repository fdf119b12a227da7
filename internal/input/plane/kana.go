package plane

import "strings"

const (
	largeKana = "あいうえおつやゆよわ"
	smallKana = "ぁぃぅぇぉっゃゅょゎ"

	voiceableKana = "かきくけこさしすせそたちつてとはひふへほ"
	voicedKana    = "がぎぐげござじずぜぞだぢづでどばびぶべぼ"

	semiVoiceableKana = "はひふへほ"
	semiVoicedKana    = "ぱぴぷぺぽ"
)

// ToggleSmall switches a kana between its large and small forms.
// Characters without a small form are returned unchanged.
func ToggleSmall(r rune) rune {
	switch {
	case strings.ContainsRune(largeKana, r):
		return r - 1
	case strings.ContainsRune(smallKana, r):
		return r + 1
	case r == 'か':
		return 'ゕ'
	case r == 'ゕ':
		return 'か'
	case r == 'け':
		return 'ゖ'
	case r == 'ゖ':
		return 'け'
	default:
		return r
	}
}

// ToggleDakuten adds or removes the voiced mark.
func ToggleDakuten(r rune) rune {
	switch {
	case strings.ContainsRune(voiceableKana, r):
		return r + 1
	case strings.ContainsRune(voicedKana, r):
		return r - 1
	case r == 'う':
		return 'ゔ'
	case r == 'ゔ':
		return 'う'
	default:
		return r
	}
}

// ToggleHandakuten adds or removes the semi-voiced mark.
func ToggleHandakuten(r rune) rune {
	switch {
	case strings.ContainsRune(semiVoiceableKana, r):
		return r + 2
	case strings.ContainsRune(semiVoicedKana, r):
		return r - 2
	default:
		return r
	}
}
