package label

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/katalvlaran/puzzlegraph/core"
)

// MaxRunes is the longest label that fits into a NodeID.
const MaxRunes = 9

var (
	// ErrEmptyLabel is returned for blank labels.
	ErrEmptyLabel = errors.New("label: empty label")

	// ErrLabelTooLong is returned for labels over MaxRunes runes.
	ErrLabelTooLong = errors.New("label: label too long")

	// ErrInvalidRune is returned for runes whose code point is not two decimal digits.
	ErrInvalidRune = errors.New("label: invalid rune")

	// ErrInvalidID is returned by Decode for IDs no label encodes to.
	ErrInvalidID = errors.New("label: invalid id")
)

var upper = cases.Upper(language.Und)

// Encode returns the NodeID for s.
func Encode(s string) (core.NodeID, error) {
	s = upper.String(strings.TrimSpace(s))
	if s == "" {
		return 0, ErrEmptyLabel
	}
	if n := utf8.RuneCountInString(s); n > MaxRunes {
		return 0, fmt.Errorf("%w: %q has %d runes, max %d", ErrLabelTooLong, s, n, MaxRunes)
	}

	var id int64
	for _, r := range s {
		if r < 10 || r > 99 {
			return 0, fmt.Errorf("%w: %q in %q", ErrInvalidRune, r, s)
		}
		id = id*100 + int64(r)
	}

	return core.NodeID(id), nil
}

// MustEncode is Encode for compile-time constants; it panics on error.
func MustEncode(s string) core.NodeID {
	id, err := Encode(s)
	if err != nil {
		panic(err)
	}

	return id
}

// Decode returns the upper-case label that encodes to id.
func Decode(id core.NodeID) (string, error) {
	if id <= 0 {
		return "", fmt.Errorf("%w: %d", ErrInvalidID, id)
	}
	digits := strconv.FormatInt(int64(id), 10)
	if len(digits)%2 != 0 {
		return "", fmt.Errorf("%w: %d has an odd number of digits", ErrInvalidID, id)
	}

	var b strings.Builder
	for i := 0; i < len(digits); i += 2 {
		code := int(digits[i]-'0')*10 + int(digits[i+1]-'0')
		if code < 10 {
			return "", fmt.Errorf("%w: %d", ErrInvalidID, id)
		}
		b.WriteRune(rune(code))
	}

	return b.String(), nil
}

// Format renders id as its label, or as the decimal ID if it is not one.
// It fits pathcount.WithNodeFormatter.
func Format(id core.NodeID) string {
	s, err := Decode(id)
	if err != nil {
		return strconv.FormatInt(int64(id), 10)
	}

	return strings.ToLower(s)
}
