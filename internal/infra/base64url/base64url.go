// Package base64url implements the URL-safe, unpadded base64 text form used for
// session keys and OAuth state values.
package base64url

import (
	"encoding/base64"
	"strings"

	domainerrors "arena/internal/domain/errors"
)

// Encode returns the base64 form of data with '+' as '-', '/' as '_' and no '=' padding.
func Encode(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

// EncodeString encodes the UTF-8 bytes of s.
func EncodeString(s string) string {
	return Encode([]byte(s))
}

var toStandard = strings.NewReplacer("-", "+", "_", "/")

// Decode reverses Encode: '-' and '_' map back to '+' and '/', padding is
// restored and the result is decoded as standard base64. Input already in the
// standard alphabet, padded or not, decodes too.
// Anything else, or an impossible length, yields ErrDecodeFailed.
func Decode(s string) ([]byte, error) {
	std := toStandard.Replace(strings.TrimRight(s, "="))
	if rem := len(std) % 4; rem != 0 {
		std += strings.Repeat("=", 4-rem)
	}

	data, err := base64.StdEncoding.DecodeString(std)
	if err != nil {
		return nil, domainerrors.ErrDecodeFailed.WithDetails(err.Error())
	}

	return data, nil
}

// DecodeString decodes s and returns the result as text.
func DecodeString(s string) (string, error) {
	data, err := Decode(s)
	if err != nil {
		return "", err
	}

	return string(data), nil
}
