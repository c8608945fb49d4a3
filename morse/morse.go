// Package morse translates between plain text and International Morse Code.
//
// Translation is stateless and deterministic: a static bidirectional
// character table maps 54 symbols (26 letters, 10 digits, 18 punctuation
// marks) to their dit/dah patterns. Audio playback of translated
// sequences lives in the keyer package.
package morse

import "github.com/samber/lo"

// toMorse is the forward table. Patterns are unique by construction, so
// the reverse table derived in init can never collide.
var toMorse = map[rune]string{
	'A': ".-", 'B': "-...", 'C': "-.-.", 'D': "-..", 'E': ".",
	'F': "..-.", 'G': "--.", 'H': "....", 'I': "..", 'J': ".---",
	'K': "-.-", 'L': ".-..", 'M': "--", 'N': "-.", 'O': "---",
	'P': ".--.", 'Q': "--.-", 'R': ".-.", 'S': "...", 'T': "-",
	'U': "..-", 'V': "...-", 'W': ".--", 'X': "-..-", 'Y': "-.--",
	'Z': "--..",
	'0': "-----", '1': ".----", '2': "..---", '3': "...--", '4': "....-",
	'5': ".....", '6': "-....", '7': "--...", '8': "---..", '9': "----.",
	'.': ".-.-.-", ',': "--..--", '?': "..--..", '\'': ".----.",
	'!': "-.-.--", '/': "-..-.", '(': "-.--.", ')': "-.--.-",
	'&': ".-...", ':': "---...", ';': "-.-.-.", '=': "-...-",
	'+': ".-.-.", '-': "-....-", '_': "..--.-", '"': ".-..-.",
	'$': "...-..-", '@': ".--.-.",
}

var fromMorse map[string]rune

func init() {
	fromMorse = make(map[string]rune, len(toMorse))
	for k, v := range toMorse {
		fromMorse[v] = k
	}
}

// SupportedCharacters returns every character the forward table can
// encode. Order is unspecified.
func SupportedCharacters() []rune {
	return lo.Keys(toMorse)
}

// PatternFor returns the Morse pattern for a single character and
// whether the character is supported. Lookup is case-insensitive for
// letters via the caller uppercasing; the table itself holds uppercase.
func PatternFor(r rune) (string, bool) {
	code, ok := toMorse[r]
	return code, ok
}
