package uuidkit

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
)

const (
	standardLen  = 36
	shortenedLen = 32
)

// ParseStandard parses a UUID from its standard string representation:
// five hyphen-separated hex groups of lengths 8-4-4-4-12, for example
// "85a8b17f-8ca5-4061-aeb6-2f8a1a3bb60b". Hex digits may be upper or lower
// case. Unlike uuid.Parse, no other format is accepted: the length must be
// exactly 36, the hyphens must sit at offsets 8, 13, 18 and 23, and every
// remaining character must be a hex digit.
func ParseStandard(s string) (uuid.UUID, error) {
	if len(s) != standardLen {
		return uuid.Nil, &InvalidFormatError{Input: s}
	}
	if s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return uuid.Nil, &InvalidFormatError{Input: s}
	}

	// A stray hyphen cannot hide anywhere: every character outside the four
	// fixed offsets belongs to a hex group, and hex decoding rejects '-'.
	var b [16]byte
	if err := decodeHexGroup(b[0:4], s[0:8]); err != nil {
		return uuid.Nil, &InvalidFormatError{Input: s}
	}
	if err := decodeHexGroup(b[4:6], s[9:13]); err != nil {
		return uuid.Nil, &InvalidFormatError{Input: s}
	}
	if err := decodeHexGroup(b[6:8], s[14:18]); err != nil {
		return uuid.Nil, &InvalidFormatError{Input: s}
	}
	if err := decodeHexGroup(b[8:10], s[19:23]); err != nil {
		return uuid.Nil, &InvalidFormatError{Input: s}
	}
	if err := decodeHexGroup(b[10:16], s[24:36]); err != nil {
		return uuid.Nil, &InvalidFormatError{Input: s}
	}
	return uuid.UUID(b), nil
}

// ParseShortened parses a UUID from its shortened string representation: the
// same 32 hex digits as the standard form with the hyphens removed, for
// example "85a8b17f8ca54061aeb62f8a1a3bb60b". Hex digits may be upper or
// lower case. The length must be exactly 32.
func ParseShortened(s string) (uuid.UUID, error) {
	if len(s) != shortenedLen {
		return uuid.Nil, &InvalidFormatError{Input: s}
	}
	var b [16]byte
	if err := decodeHexGroup(b[:], s); err != nil {
		return uuid.Nil, &InvalidFormatError{Input: s}
	}
	return uuid.UUID(b), nil
}

// MustParseStandard is like ParseStandard but panics if the string cannot be
// parsed. It simplifies safe initialization of global variables.
func MustParseStandard(s string) uuid.UUID {
	id, err := ParseStandard(s)
	if err != nil {
		panic(fmt.Sprintf("uuidkit: ParseStandard(%q): %v", s, err))
	}
	return id
}

// MustParseShortened is like ParseShortened but panics if the string cannot
// be parsed.
func MustParseShortened(s string) uuid.UUID {
	id, err := ParseShortened(s)
	if err != nil {
		panic(fmt.Sprintf("uuidkit: ParseShortened(%q): %v", s, err))
	}
	return id
}

// StandardString returns the standard 36-character representation of id,
// delegating to the UUID's own canonical string form.
func StandardString(id uuid.UUID) string {
	return id.String()
}

// ShortenedString returns the shortened 32-character representation of id:
// lowercase hex, most-significant half first.
func ShortenedString(id uuid.UUID) string {
	return hex.EncodeToString(id[:])
}

// FromHalves assembles a UUID from its most-significant and least-significant
// 64-bit halves.
func FromHalves(msb, lsb uint64) uuid.UUID {
	var b [16]byte
	binary.BigEndian.PutUint64(b[0:8], msb)
	binary.BigEndian.PutUint64(b[8:16], lsb)
	return uuid.UUID(b)
}

// Halves splits a UUID into its most-significant and least-significant 64-bit
// halves.
func Halves(id uuid.UUID) (msb, lsb uint64) {
	return binary.BigEndian.Uint64(id[0:8]), binary.BigEndian.Uint64(id[8:16])
}

// decodeHexGroup decodes one hex group into a byte slice. encoding/hex
// accepts both upper and lower case digits, so no case normalization is
// needed.
func decodeHexGroup(dst []byte, src string) error {
	_, err := hex.Decode(dst, []byte(src))
	return err
}
