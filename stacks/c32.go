// Package stacks implements the pieces of the Stacks wire format needed to
// assemble, sign and broadcast a send-many contract call: c32check address
// encoding, Clarity argument encoding and the SIP-005 transaction codec.
package stacks

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// Crockford base32 alphabet used by c32check.
const c32Alphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

// Address version bytes for standard (single-sig) and multisig principals.
const (
	AddressVersionMainnetSingleSig byte = 22 // SP...
	AddressVersionMainnetMultiSig  byte = 20 // SM...
	AddressVersionTestnetSingleSig byte = 26 // ST...
	AddressVersionTestnetMultiSig  byte = 21 // SN...
)

const (
	hash160Length  = 20
	checksumLength = 4
)

var ErrInvalidAddress = errors.New("invalid c32check address")

// c32normalize uppercases and maps the homoglyphs O, L and I to the digits
// they are read as.
var c32Replacer = strings.NewReplacer("O", "0", "L", "1", "I", "1")

func c32normalize(s string) string {
	return c32Replacer.Replace(strings.ToUpper(s))
}

// c32Checksum is the first 4 bytes of SHA256(SHA256(version || data)).
func c32Checksum(version byte, data []byte) []byte {
	first := sha256.Sum256(append([]byte{version}, data...))
	second := sha256.Sum256(first[:])
	return second[:checksumLength]
}

// DecodeAddress decodes a c32check address into its version byte and
// hash160, verifying the embedded checksum.
func DecodeAddress(addr string) (byte, [hash160Length]byte, error) {
	var hash [hash160Length]byte
	normalized := c32normalize(addr)
	if len(normalized) < 2 || normalized[0] != 'S' {
		return 0, hash, fmt.Errorf("%w: %q", ErrInvalidAddress, addr)
	}

	body := normalized[1:]
	version := strings.IndexByte(c32Alphabet, body[0])
	if version < 0 {
		return 0, hash, fmt.Errorf("%w: bad version character in %q", ErrInvalidAddress, addr)
	}

	n := new(big.Int)
	for i := 1; i < len(body); i++ {
		digit := strings.IndexByte(c32Alphabet, body[i])
		if digit < 0 {
			return 0, hash, fmt.Errorf("%w: bad character %q in %q", ErrInvalidAddress, body[i], addr)
		}
		n.Lsh(n, 5)
		n.Or(n, big.NewInt(int64(digit)))
	}
	if n.BitLen() > 8*(hash160Length+checksumLength) {
		return 0, hash, fmt.Errorf("%w: payload too long in %q", ErrInvalidAddress, addr)
	}

	payload := n.FillBytes(make([]byte, hash160Length+checksumLength))
	copy(hash[:], payload[:hash160Length])
	if !bytes.Equal(payload[hash160Length:], c32Checksum(byte(version), payload[:hash160Length])) {
		return 0, hash, fmt.Errorf("%w: checksum mismatch in %q", ErrInvalidAddress, addr)
	}
	return byte(version), hash, nil
}

// EncodeAddress renders a version byte and hash160 as a c32check address.
// Leading zero bytes of the payload are preserved as leading '0' digits,
// matching the canonical c32 form.
func EncodeAddress(version byte, hash [hash160Length]byte) string {
	payload := make([]byte, 0, hash160Length+checksumLength)
	payload = append(payload, hash[:]...)
	payload = append(payload, c32Checksum(version, hash[:])...)

	n := new(big.Int).SetBytes(payload)
	base := big.NewInt(32)
	rem := new(big.Int)
	var digits []byte
	for n.Sign() > 0 {
		n.DivMod(n, base, rem)
		digits = append(digits, c32Alphabet[rem.Int64()])
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}

	leadingZeros := 0
	for _, b := range payload {
		if b != 0 {
			break
		}
		leadingZeros++
	}
	return "S" + string(c32Alphabet[version]) + strings.Repeat("0", leadingZeros) + string(digits)
}

// ValidAddress reports whether addr is a well-formed c32check address whose
// version belongs to the network class of the given transaction version.
func ValidAddress(addr string, version TransactionVersion) bool {
	v, _, err := DecodeAddress(addr)
	if err != nil {
		return false
	}
	if version == TransactionVersionMainnet {
		return v == AddressVersionMainnetSingleSig || v == AddressVersionMainnetMultiSig
	}
	return v == AddressVersionTestnetSingleSig || v == AddressVersionTestnetMultiSig
}
