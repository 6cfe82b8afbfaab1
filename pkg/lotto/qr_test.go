package lotto

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const qrBase = "https://m.dhlottery.co.kr/qr.do?method=winQr&v="

func Test_DecodeQR_singleCombination(t *testing.T) {
	ticket, err := DecodeQR(qrBase + "1194s040913182433")
	require.NoError(t, err)
	require.Equal(t, 1194, ticket.DrawNumber)
	require.Len(t, ticket.Bundle, 1)
	require.Equal(t, "A", ticket.Bundle[0].Label)
	require.Equal(t, NumberSet{4, 9, 13, 18, 24, 33}, ticket.Bundle[0].Numbers)
}

func Test_DecodeQR_multipleCombinations(t *testing.T) {
	ticket, err := DecodeQR(qrBase + "1100s010203040506s070809101112s131415161718")
	require.NoError(t, err)
	require.Equal(t, 1100, ticket.DrawNumber)
	require.Len(t, ticket.Bundle, 3)
	require.Equal(t, "A", ticket.Bundle[0].Label)
	require.Equal(t, "B", ticket.Bundle[1].Label)
	require.Equal(t, "C", ticket.Bundle[2].Label)
	require.Equal(t, NumberSet{7, 8, 9, 10, 11, 12}, ticket.Bundle[1].Numbers)
}

func Test_DecodeQR_missingParameter(t *testing.T) {
	_, err := DecodeQR("https://m.dhlottery.co.kr/qr.do?method=winQr")
	require.ErrorIs(t, err, ErrMissingParameter)

	_, err = DecodeQR("https://m.dhlottery.co.kr/qr.do?method=winQr&v=")
	require.ErrorIs(t, err, ErrMissingParameter)
}

func Test_DecodeQR_malformedDrawNumber(t *testing.T) {
	_, err := DecodeQR(qrBase + "abcs010203040506")
	require.ErrorIs(t, err, ErrMalformedDrawNumber)
}

func Test_DecodeQR_malformedSeparator(t *testing.T) {
	// Digit run consumes everything, no separator left.
	_, err := DecodeQR(qrBase + "1194010203040506")
	require.ErrorIs(t, err, ErrMalformedSeparator)

	_, err = DecodeQR(qrBase + "1194x010203040506")
	require.ErrorIs(t, err, ErrMalformedSeparator)
}

func Test_DecodeQR_invalidSegmentsDropped(t *testing.T) {
	// Second segment has a number out of range (99) and decodes to only
	// five valid numbers, so it is dropped while the others survive.
	ticket, err := DecodeQR(qrBase + "1194s010203040506s990203040506s131415161718")
	require.NoError(t, err)
	require.Len(t, ticket.Bundle, 2)
	require.Equal(t, NumberSet{1, 2, 3, 4, 5, 6}, ticket.Bundle[0].Numbers)
	require.Equal(t, NumberSet{13, 14, 15, 16, 17, 18}, ticket.Bundle[1].Numbers)
}

func Test_DecodeQR_oddLengthSegment(t *testing.T) {
	// An 11-character segment yields only five full windows.
	_, err := DecodeQR(qrBase + "1194s04091318243")
	require.ErrorIs(t, err, ErrDecodeFailed)
}

func Test_DecodeQR_duplicateNumbersDropped(t *testing.T) {
	// Six in-range windows that repeat a value are not six distinct
	// numbers, so the segment is dropped like any other invalid one.
	_, err := DecodeQR(qrBase + "1194s040404040404")
	require.ErrorIs(t, err, ErrDecodeFailed)

	ticket, err := DecodeQR(qrBase + "1194s040404040404s010203040506")
	require.NoError(t, err)
	require.Len(t, ticket.Bundle, 1)
	require.Equal(t, NumberSet{1, 2, 3, 4, 5, 6}, ticket.Bundle[0].Numbers)
}

func Test_DecodeQR_noSurvivingSegment(t *testing.T) {
	_, err := DecodeQR(qrBase + "1194s000000000000")
	require.ErrorIs(t, err, ErrDecodeFailed)
}

func Test_DecodeQR_segmentLimit(t *testing.T) {
	v := "1194"
	segments := []string{
		"010203040506", "070809101112", "131415161718",
		"192021222324", "252627282930", "313233343536",
	}
	for _, s := range segments {
		v += "s" + s
	}

	ticket, err := DecodeQR(qrBase + v)
	require.NoError(t, err)
	require.Len(t, ticket.Bundle, MaxCombinations)
	require.Equal(t, "E", ticket.Bundle[4].Label)
}

func Test_EncodeTicket_roundTrip(t *testing.T) {
	bundle := TicketBundle{
		{Label: "A", Numbers: NumberSet{4, 9, 13, 18, 24, 33}},
		{Label: "B", Numbers: NumberSet{1, 2, 3, 43, 44, 45}},
	}

	encoded := EncodeTicket(1194, bundle)
	require.Equal(t, "1194s040913182433s010203434445", encoded)

	decoded, err := DecodeQR(qrBase + encoded)
	require.NoError(t, err)
	require.Equal(t, 1194, decoded.DrawNumber)
	require.Equal(t, bundle, decoded.Bundle)
}
