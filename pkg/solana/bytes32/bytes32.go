package bytes32

import (
	"bytes"
	"crypto/ed25519"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
)

const (
	// Size is the length, in bytes, of every value handled by this package
	Size = 32

	// MaxBase58Length is the longest base58 string a Size byte value encodes to
	MaxBase58Length = 44
)

var (
	ErrInvalidEncoding = errors.New("invalid encoding")
	ErrInvalidLength   = errors.New("invalid length")
)

// Bytes32 is a fixed-size 32 byte value, such as a hash or an ed25519 public key
type Bytes32 [Size]byte

// Zero is the all-zero value
var Zero Bytes32

// FromBytes copies value into a Bytes32
func FromBytes(value []byte) (Bytes32, error) {
	var b Bytes32
	if len(value) != Size {
		return b, errors.Wrapf(ErrInvalidLength, "expected %d bytes, got %d", Size, len(value))
	}
	copy(b[:], value)
	return b, nil
}

// FromBase58 parses the base58 display string of a Bytes32
func FromBase58(value string) (Bytes32, error) {
	var b Bytes32
	if len(value) == 0 {
		return b, errors.Wrap(ErrInvalidEncoding, "empty string")
	}
	if len(value) > MaxBase58Length {
		return b, errors.Wrapf(ErrInvalidLength, "base58 string of %d characters exceeds %d", len(value), MaxBase58Length)
	}

	decoded, err := base58.Decode(value)
	if err != nil {
		return b, errors.Wrapf(ErrInvalidEncoding, "error decoding %q as base58: %s", value, err.Error())
	}

	return FromBytes(decoded)
}

// MustFromBase58 is FromBase58 that panics on error. It's intended for
// package-level values.
func MustFromBase58(value string) Bytes32 {
	b, err := FromBase58(value)
	if err != nil {
		panic(err)
	}
	return b
}

// Equals returns whether all bytes of a and b match
func Equals(a, b Bytes32) bool {
	return a == b
}

// Equals returns whether all bytes of b and other match
func (b Bytes32) Equals(other Bytes32) bool {
	return Equals(b, other)
}

// IsZero returns whether every byte is zero
func (b Bytes32) IsZero() bool {
	return b == Zero
}

// ToBase58 returns the base58 display string
func (b Bytes32) ToBase58() string {
	return base58.Encode(b[:])
}

// String implements fmt.Stringer using the base58 display string
func (b Bytes32) String() string {
	return b.ToBase58()
}

// ToBytes returns a copy of the underlying bytes
func (b Bytes32) ToBytes() []byte {
	res := make([]byte, Size)
	copy(res, b[:])
	return res
}

// ToPublicKey returns a copy of the value as an ed25519.PublicKey
func (b Bytes32) ToPublicKey() ed25519.PublicKey {
	return ed25519.PublicKey(b.ToBytes())
}

// Compare orders values lexicographically by their bytes
func (b Bytes32) Compare(other Bytes32) int {
	return bytes.Compare(b[:], other[:])
}

// MarshalText implements encoding.TextMarshaler
func (b Bytes32) MarshalText() ([]byte, error) {
	return []byte(b.ToBase58()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (b *Bytes32) UnmarshalText(text []byte) error {
	decoded, err := FromBase58(string(text))
	if err != nil {
		return err
	}
	*b = decoded
	return nil
}
