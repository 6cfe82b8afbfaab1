package lotto

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// The dhlottery QR code encodes a winQr URL whose "v" query parameter
// packs the draw number and up to five combinations:
//
//	<drawNumber>s<12-digit segment>[s<12-digit segment>]...
//
// Each segment encodes six numbers as consecutive two-digit fields.
const (
	qrParameter = "v"
	qrSeparator = "s"
)

// Decode failures. Every malformed input maps to one of these; DecodeQR
// never panics on untrusted input.
var (
	ErrMissingParameter    = errors.New("ticket parameter is missing")
	ErrMalformedDrawNumber = errors.New("ticket does not start with a draw number")
	ErrMalformedSeparator  = errors.New("no separator after the draw number")
	ErrDecodeFailed        = errors.New("no valid combination in ticket")
)

// DecodedTicket is the result of parsing one QR ticket URL.
type DecodedTicket struct {
	DrawNumber int
	Bundle     TicketBundle
}

// DecodeQR parses a vendor QR URL into a draw number and labeled
// combinations. Segments that do not yield exactly six valid numbers are
// dropped silently; the decode as a whole fails only if no segment
// survives.
func DecodeQR(rawURL string) (*DecodedTicket, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingParameter, err)
	}

	value := u.Query().Get(qrParameter)
	if value == "" {
		return nil, ErrMissingParameter
	}

	digits := leadingDigits(value)
	if digits == 0 {
		return nil, ErrMalformedDrawNumber
	}

	drawNumber, err := strconv.Atoi(value[:digits])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDrawNumber, err)
	}

	rest := value[digits:]
	if !strings.HasPrefix(rest, qrSeparator) {
		return nil, ErrMalformedSeparator
	}

	// The part before the first separator is always empty; segments past
	// the fifth are ignored, not rejected.
	segments := strings.Split(rest, qrSeparator)[1:]
	if len(segments) > MaxCombinations {
		segments = segments[:MaxCombinations]
	}

	bundle := TicketBundle{}
	for _, segment := range segments {
		numbers, ok := parseSegment(segment)
		if !ok {
			continue
		}

		bundle = append(bundle, Combination{Label: Labels[len(bundle)], Numbers: numbers})
	}

	if len(bundle) == 0 {
		return nil, ErrDecodeFailed
	}

	return &DecodedTicket{DrawNumber: drawNumber, Bundle: bundle}, nil
}

// EncodeTicket renders a draw number and bundle back into the QR "v"
// parameter format. It is the inverse of DecodeQR for well-formed input.
func EncodeTicket(drawNumber int, bundle TicketBundle) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d", drawNumber)
	for _, c := range bundle {
		b.WriteString(qrSeparator)
		for _, n := range c.Numbers {
			fmt.Fprintf(&b, "%02d", n)
		}
	}

	return b.String()
}

func leadingDigits(s string) int {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}

	return i
}

// parseSegment walks the segment in non-overlapping two-character
// windows. Windows that are not a two-digit value in range are skipped;
// a trailing odd character is discarded. The segment is valid only if
// exactly six distinct numbers survive.
func parseSegment(segment string) (NumberSet, bool) {
	var numbers []int
	for i := 0; i+2 <= len(segment); i += 2 {
		n, err := strconv.Atoi(segment[i : i+2])
		if err != nil {
			continue
		}

		if n < MinNumber || n > MaxNumber {
			continue
		}

		numbers = append(numbers, n)
	}

	if len(numbers) != CombinationSize {
		return nil, false
	}

	set, err := NewNumberSet(numbers)
	if err != nil {
		return nil, false
	}

	return set, true
}
