package domain

import (
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/sha3"
)

// Address is a 20-byte account identifier in the external asset-transfer
// system. It keys every ledger map: assets, callers, and plugin custodial
// accounts are all addresses. Rendered as 0x-prefixed hex with an EIP-55
// style mixed-case checksum.
type Address [20]byte

// ZeroAddress is the all-zero address. It is never a valid caller, asset,
// or custodial account.
var ZeroAddress Address

// ParseAddress decodes a 0x-prefixed hex address. Input in a single case is
// accepted as-is; mixed-case input must carry a valid checksum.
func ParseAddress(s string) (Address, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
	}
	if len(s) != 40 {
		return Address{}, fmt.Errorf("address must be 40 hex characters, got %d", len(s))
	}

	raw, err := hex.DecodeString(s)
	if err != nil {
		return Address{}, fmt.Errorf("decoding address: %w", err)
	}

	var a Address
	copy(a[:], raw)

	if s != strings.ToLower(s) && s != strings.ToUpper(s) {
		if checksumHex(a) != s {
			return Address{}, fmt.Errorf("address checksum mismatch")
		}
	}
	return a, nil
}

// MustParseAddress is ParseAddress that panics on error. For wiring and tests.
func MustParseAddress(s string) Address {
	a, err := ParseAddress(s)
	if err != nil {
		panic(err)
	}
	return a
}

// Hex returns the checksummed 0x-prefixed hex form.
func (a Address) Hex() string {
	return "0x" + checksumHex(a)
}

func (a Address) String() string {
	return a.Hex()
}

// IsZero reports whether a is the zero address.
func (a Address) IsZero() bool {
	return a == ZeroAddress
}

// MarshalText implements encoding.TextMarshaler (used by encoding/json).
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Address) UnmarshalText(b []byte) error {
	parsed, err := ParseAddress(string(b))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// checksumHex returns the lowercase hex of a with the EIP-55 mixed-case
// checksum applied: a nibble is uppercased when the corresponding nibble of
// Keccak-256(lowercase hex) is >= 8.
func checksumHex(a Address) string {
	lower := hex.EncodeToString(a[:])

	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(lower))
	hash := h.Sum(nil)

	buf := []byte(lower)
	for i, c := range buf {
		if c < 'a' || c > 'f' {
			continue
		}
		nibble := hash[i/2]
		if i%2 == 0 {
			nibble >>= 4
		}
		if nibble&0x0f >= 8 {
			buf[i] = c - ('a' - 'A')
		}
	}
	return string(buf)
}
