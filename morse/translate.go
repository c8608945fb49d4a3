package morse

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
)

// Direction selects which way Translate converts.
type Direction int

const (
	// TextToMorse encodes plain text into dit/dah patterns.
	TextToMorse Direction = iota
	// MorseToText decodes dit/dah patterns back into text.
	MorseToText
)

// ErrInvalidDirection indicates a Direction value outside the declared
// constants. This is a programming error, not bad user input.
var ErrInvalidDirection = errors.New("invalid translation direction")

// Result is the outcome of one Translate call. Output is always the
// best-effort translation; Errors carries warnings (unsupported
// characters on encode) and hard errors (unknown groups on decode).
// Valid is false only when decoding hit unknown groups.
type Result struct {
	Output           string
	Errors           []string
	UnsupportedChars []string
	Valid            bool
	Duration         time.Duration
}

// Translate converts input according to dir.
//
// Encoding never fails: unsupported characters are dropped from the
// output, collected (deduplicated) into UnsupportedChars and summarized
// in a single warning. Decoding maps unrecognized symbol groups to '?'
// and marks the result invalid, but still returns everything it could
// decode.
func Translate(input string, dir Direction) (Result, error) {
	start := time.Now()

	res := Result{Valid: true}
	if strings.TrimSpace(input) == "" {
		res.Duration = time.Since(start)
		return res, nil
	}

	switch dir {
	case TextToMorse:
		res = encode(input)
	case MorseToText:
		res = decode(input)
	default:
		return Result{}, fmt.Errorf("%w: %d", ErrInvalidDirection, dir)
	}

	res.Duration = time.Since(start)
	return res, nil
}

func encode(text string) Result {
	res := Result{Valid: true}

	var unsupported []string
	var words []string
	for _, word := range strings.Fields(strings.ToUpper(text)) {
		var codes []string
		for _, r := range word {
			if code, ok := toMorse[r]; ok {
				codes = append(codes, code)
			} else {
				unsupported = append(unsupported, string(r))
			}
		}
		// A word made entirely of unsupported characters encodes to
		// nothing rather than an empty morse word.
		if len(codes) > 0 {
			words = append(words, strings.Join(codes, " "))
		}
	}

	res.Output = strings.Join(words, " / ")
	res.UnsupportedChars = lo.Uniq(unsupported)
	if len(res.UnsupportedChars) > 0 {
		res.Errors = append(res.Errors, fmt.Sprintf(
			"unsupported characters skipped: %s",
			strings.Join(res.UnsupportedChars, ", ")))
	}
	return res
}

func decode(sequence string) Result {
	res := Result{Valid: true}

	var words []string
	for _, word := range strings.Split(sequence, "/") {
		var letters strings.Builder
		for _, group := range strings.Fields(word) {
			if r, ok := fromMorse[group]; ok {
				letters.WriteRune(r)
			} else {
				letters.WriteRune('?')
				res.Errors = append(res.Errors, fmt.Sprintf(
					"invalid morse sequence: %q", group))
				res.Valid = false
			}
		}
		if letters.Len() > 0 {
			words = append(words, letters.String())
		}
	}

	res.Output = strings.Join(words, " ")
	return res
}
