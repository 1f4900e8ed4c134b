package domain

import (
	"encoding/base64"
	"encoding/hex"
	"strings"
)

// Encoding renders a digest into a string that is safe to use as a file or directory name.
type Encoding string

const (
	// EncodingBase64 is standard base64 with padding and '/' removed.
	EncodingBase64 Encoding = "base64"
	// EncodingBase64URL is unpadded URL-safe base64.
	EncodingBase64URL Encoding = "base64url"
	// EncodingHex is lowercase hexadecimal. Use it on case-insensitive filesystems.
	EncodingHex Encoding = "hex"
)

// DefaultEncoding is the encoding used when none is configured.
const DefaultEncoding = EncodingBase64

// ParseEncoding validates an encoding name. An empty name selects DefaultEncoding.
func ParseEncoding(name string) (Encoding, error) {
	switch e := Encoding(strings.ToLower(strings.TrimSpace(name))); e {
	case "":
		return DefaultEncoding, nil
	case EncodingBase64, EncodingBase64URL, EncodingHex:
		return e, nil
	default:
		return "", InvalidValue("encoding", name)
	}
}

// Encode renders sum with the encoding. Unknown encodings fall back to DefaultEncoding.
func (e Encoding) Encode(sum []byte) string {
	switch e {
	case EncodingHex:
		return hex.EncodeToString(sum)
	case EncodingBase64URL:
		return base64.RawURLEncoding.EncodeToString(sum)
	default:
		s := base64.StdEncoding.EncodeToString(sum)
		s = strings.TrimRight(s, "=")
		return strings.ReplaceAll(s, "/", "")
	}
}

// String returns the encoding name.
func (e Encoding) String() string {
	return string(e)
}
