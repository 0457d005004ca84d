package stacks

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math/big"
	"sort"
)

// Clarity wire type tags. Only the types appearing in a send-many call are
// implemented.
const (
	clarityTypeUInt              byte = 0x01
	clarityTypeStandardPrincipal byte = 0x05
	clarityTypeList              byte = 0x0b
	clarityTypeTuple             byte = 0x0c
)

const maxClarityNameLength = 128

// ClarityValue is a serializable Clarity argument.
type ClarityValue interface {
	writeTo(buf *bytes.Buffer) error
}

// ClarityUInt is an unsigned 128-bit Clarity integer.
type ClarityUInt struct {
	value *big.Int
}

// NewClarityUInt parses a base-10 string into a Clarity uint.
func NewClarityUInt(decimal string) (ClarityUInt, error) {
	v, ok := new(big.Int).SetString(decimal, 10)
	if !ok || v.Sign() < 0 {
		return ClarityUInt{}, fmt.Errorf("not an unsigned integer: %q", decimal)
	}
	if v.BitLen() > 128 {
		return ClarityUInt{}, fmt.Errorf("uint overflows 128 bits: %q", decimal)
	}
	return ClarityUInt{value: v}, nil
}

func (u ClarityUInt) writeTo(buf *bytes.Buffer) error {
	buf.WriteByte(clarityTypeUInt)
	buf.Write(u.value.FillBytes(make([]byte, 16)))
	return nil
}

// ClarityPrincipal is a standard (non-contract) principal.
type ClarityPrincipal struct {
	version byte
	hash    [hash160Length]byte
}

// NewClarityPrincipal decodes a c32check address into a standard principal.
func NewClarityPrincipal(address string) (ClarityPrincipal, error) {
	version, hash, err := DecodeAddress(address)
	if err != nil {
		return ClarityPrincipal{}, err
	}
	return ClarityPrincipal{version: version, hash: hash}, nil
}

func (p ClarityPrincipal) writeTo(buf *bytes.Buffer) error {
	buf.WriteByte(clarityTypeStandardPrincipal)
	buf.WriteByte(p.version)
	buf.Write(p.hash[:])
	return nil
}

// ClarityTuple is a named-field record. Fields serialize in lexicographic
// key order, as the Clarity wire format requires.
type ClarityTuple map[string]ClarityValue

func (t ClarityTuple) writeTo(buf *bytes.Buffer) error {
	buf.WriteByte(clarityTypeTuple)
	if err := binary.Write(buf, binary.BigEndian, uint32(len(t))); err != nil {
		return err
	}
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if len(k) == 0 || len(k) > maxClarityNameLength {
			return fmt.Errorf("bad tuple key length: %q", k)
		}
		buf.WriteByte(byte(len(k)))
		buf.WriteString(k)
		if err := t[k].writeTo(buf); err != nil {
			return err
		}
	}
	return nil
}

// ClarityList is an ordered sequence of values.
type ClarityList []ClarityValue

func (l ClarityList) writeTo(buf *bytes.Buffer) error {
	buf.WriteByte(clarityTypeList)
	if err := binary.Write(buf, binary.BigEndian, uint32(len(l))); err != nil {
		return err
	}
	for _, v := range l {
		if err := v.writeTo(buf); err != nil {
			return err
		}
	}
	return nil
}
