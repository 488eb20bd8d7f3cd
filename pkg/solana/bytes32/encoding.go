package bytes32

import (
	"encoding/hex"
	"strings"

	"github.com/pkg/errors"
)

type Encoding uint8

const (
	EncodingBase58 Encoding = iota
	EncodingHex
)

var ErrUnsupportedEncoding = errors.New("unsupported encoding")

// ParseEncoding resolves an encoding by name. Names are case insensitive.
func ParseEncoding(name string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "base58", "bs58":
		return EncodingBase58, nil
	case "hex", "base16":
		return EncodingHex, nil
	default:
		return 0, errors.Wrapf(ErrUnsupportedEncoding, "unknown encoding %q", name)
	}
}

func (e Encoding) String() string {
	switch e {
	case EncodingBase58:
		return "base58"
	case EncodingHex:
		return "hex"
	default:
		return "unknown"
	}
}

// Encode renders b as a display string using the provided encoding
func Encode(b Bytes32, encoding Encoding) (string, error) {
	switch encoding {
	case EncodingBase58:
		return b.ToBase58(), nil
	case EncodingHex:
		return hex.EncodeToString(b[:]), nil
	default:
		return "", ErrUnsupportedEncoding
	}
}

// Decode parses a display string produced by Encode with the same encoding
func Decode(value string, encoding Encoding) (Bytes32, error) {
	switch encoding {
	case EncodingBase58:
		return FromBase58(value)
	case EncodingHex:
		decoded, err := hex.DecodeString(value)
		if err != nil || len(value) == 0 {
			return Zero, errors.Wrapf(ErrInvalidEncoding, "error decoding %q as hex", value)
		}
		return FromBytes(decoded)
	default:
		return Zero, ErrUnsupportedEncoding
	}
}
