package stacks

import (
	"bytes"
	"crypto/ecdsa"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/crypto/ripemd160"
)

// TransactionVersion selects the address and wire format class of a
// transaction.
type TransactionVersion byte

const (
	TransactionVersionMainnet TransactionVersion = 0x00
	TransactionVersionTestnet TransactionVersion = 0x80
)

// ChainID discriminates the production chain from test chains.
type ChainID uint32

const (
	ChainIDMainnet ChainID = 0x00000001
	ChainIDTestnet ChainID = 0x80000000
)

// SIP-005 wire constants for a standard single-signature contract call.
const (
	authTypeStandard        byte = 0x04
	hashModeP2PKH           byte = 0x00
	anchorModeAny           byte = 0x03
	postConditionModeAllow  byte = 0x01
	payloadTypeContractCall byte = 0x02

	pubKeyEncodingCompressed   byte = 0x00
	pubKeyEncodingUncompressed byte = 0x01

	signatureLength = 65
)

var (
	ErrInvalidSigningKey = errors.New("invalid signing key")
	ErrInvalidContractID = errors.New("invalid contract identifier")
)

// PrivateKey is a secp256k1 signing key plus the public key encoding it
// commits to. A 66-character hex key ending in "01" signs for the
// compressed public key, the wallet convention on Stacks.
type PrivateKey struct {
	key        *ecdsa.PrivateKey
	compressed bool
}

// ParsePrivateKey parses a 64- or 66-character hex private key.
func ParsePrivateKey(hexKey string) (*PrivateKey, error) {
	hexKey = strings.TrimPrefix(hexKey, "0x")
	compressed := false
	switch len(hexKey) {
	case 64:
	case 66:
		if !strings.HasSuffix(hexKey, "01") {
			return nil, fmt.Errorf("%w: 33-byte keys must end in 01", ErrInvalidSigningKey)
		}
		hexKey = hexKey[:64]
		compressed = true
	default:
		return nil, fmt.Errorf("%w: expected 32 or 33 hex-encoded bytes", ErrInvalidSigningKey)
	}
	key, err := crypto.HexToECDSA(hexKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSigningKey, err)
	}
	return &PrivateKey{key: key, compressed: compressed}, nil
}

// PublicKeyBytes returns the public key in the encoding the key commits to.
func (p *PrivateKey) PublicKeyBytes() []byte {
	if p.compressed {
		return crypto.CompressPubkey(&p.key.PublicKey)
	}
	return crypto.FromECDSAPub(&p.key.PublicKey)
}

// SignerHash is the hash160 of the encoded public key: the spending
// condition's signer field.
func (p *PrivateKey) SignerHash() [hash160Length]byte {
	return Hash160(p.PublicKeyBytes())
}

// Address derives the key's single-sig c32 address on the given network.
func (p *PrivateKey) Address(version TransactionVersion) string {
	addrVersion := AddressVersionTestnetSingleSig
	if version == TransactionVersionMainnet {
		addrVersion = AddressVersionMainnetSingleSig
	}
	return EncodeAddress(addrVersion, p.SignerHash())
}

// Hash160 is RIPEMD160(SHA256(b)).
func Hash160(b []byte) [hash160Length]byte {
	sha := sha256.Sum256(b)
	rip := ripemd160.New()
	rip.Write(sha[:])
	var out [hash160Length]byte
	copy(out[:], rip.Sum(nil))
	return out
}

// ContractID names a deployed contract: a deployer principal plus a
// contract name.
type ContractID struct {
	addressVersion byte
	addressHash    [hash160Length]byte
	Name           string
}

// ParseContractID parses a "<address>.<name>" contract identifier.
func ParseContractID(s string) (ContractID, error) {
	address, name, found := strings.Cut(s, ".")
	if !found {
		return ContractID{}, fmt.Errorf("%w: want <address>.<name>, got %q", ErrInvalidContractID, s)
	}
	version, hash, err := DecodeAddress(address)
	if err != nil {
		return ContractID{}, fmt.Errorf("%w: %v", ErrInvalidContractID, err)
	}
	if !validContractName(name) {
		return ContractID{}, fmt.Errorf("%w: bad contract name %q", ErrInvalidContractID, name)
	}
	return ContractID{addressVersion: version, addressHash: hash, Name: name}, nil
}

// String renders the identifier back in <address>.<name> form.
func (c ContractID) String() string {
	return EncodeAddress(c.addressVersion, c.addressHash) + "." + c.Name
}

func validContractName(name string) bool {
	if len(name) == 0 || len(name) > maxClarityNameLength {
		return false
	}
	for i := 0; i < len(name); i++ {
		ch := name[i]
		letter := (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
		digit := ch >= '0' && ch <= '9'
		if i == 0 && !letter {
			return false
		}
		if !letter && !digit && ch != '-' && ch != '_' {
			return false
		}
	}
	return true
}

// ContractCall is a standard-auth, single-signature contract-call
// transaction.
type ContractCall struct {
	Version TransactionVersion
	ChainID ChainID
	Nonce   uint64
	Fee     uint64

	signer      [hash160Length]byte
	keyEncoding byte
	signature   [signatureLength]byte

	Contract ContractID
	Function string
	Args     []ClarityValue
}

// NewContractCall builds an unsigned contract-call transaction.
func NewContractCall(version TransactionVersion, chainID ChainID, contract ContractID, function string, args []ClarityValue) *ContractCall {
	return &ContractCall{
		Version:  version,
		ChainID:  chainID,
		Contract: contract,
		Function: function,
		Args:     args,
	}
}

// Serialize renders the transaction in the SIP-005 wire format.
func (t *ContractCall) Serialize() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte(byte(t.Version))
	binary.Write(&buf, binary.BigEndian, uint32(t.ChainID))

	buf.WriteByte(authTypeStandard)
	buf.WriteByte(hashModeP2PKH)
	buf.Write(t.signer[:])
	binary.Write(&buf, binary.BigEndian, t.Nonce)
	binary.Write(&buf, binary.BigEndian, t.Fee)
	buf.WriteByte(t.keyEncoding)
	buf.Write(t.signature[:])

	buf.WriteByte(anchorModeAny)
	buf.WriteByte(postConditionModeAllow)
	binary.Write(&buf, binary.BigEndian, uint32(0)) // no post conditions

	buf.WriteByte(payloadTypeContractCall)
	buf.WriteByte(t.Contract.addressVersion)
	buf.Write(t.Contract.addressHash[:])
	if err := writeClarityName(&buf, t.Contract.Name); err != nil {
		return nil, err
	}
	if err := writeClarityName(&buf, t.Function); err != nil {
		return nil, err
	}
	binary.Write(&buf, binary.BigEndian, uint32(len(t.Args)))
	for _, arg := range t.Args {
		if err := arg.writeTo(&buf); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

func writeClarityName(buf *bytes.Buffer, name string) error {
	if len(name) == 0 || len(name) > maxClarityNameLength {
		return fmt.Errorf("bad name length: %q", name)
	}
	buf.WriteByte(byte(len(name)))
	buf.WriteString(name)
	return nil
}

// Sign computes the SIP-005 sighash over the fee and nonce already set on
// the transaction and attaches a recoverable secp256k1 signature. The
// signature is stored recovery-id first, as the wire format expects.
func (t *ContractCall) Sign(key *PrivateKey) error {
	t.signer = key.SignerHash()
	t.keyEncoding = pubKeyEncodingCompressed
	if !key.compressed {
		t.keyEncoding = pubKeyEncodingUncompressed
	}

	cleared := *t
	cleared.Fee = 0
	cleared.Nonce = 0
	cleared.signature = [signatureLength]byte{}
	raw, err := cleared.Serialize()
	if err != nil {
		return err
	}
	presign := sha512.Sum512_256(raw)

	msg := make([]byte, 0, len(presign)+1+8+8)
	msg = append(msg, presign[:]...)
	msg = append(msg, authTypeStandard)
	msg = binary.BigEndian.AppendUint64(msg, t.Fee)
	msg = binary.BigEndian.AppendUint64(msg, t.Nonce)
	sighash := sha512.Sum512_256(msg)

	sig, err := crypto.Sign(sighash[:], key.key) // r || s || recovery id
	if err != nil {
		return err
	}
	t.signature[0] = sig[64]
	copy(t.signature[1:], sig[:64])
	return nil
}

// TxID returns the transaction id of a serialized transaction: the hex of
// its SHA-512/256 digest.
func TxID(raw []byte) string {
	sum := sha512.Sum512_256(raw)
	return hex.EncodeToString(sum[:])
}
