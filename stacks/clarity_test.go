package stacks

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func serialize(t *testing.T, v ClarityValue) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, v.writeTo(&buf))
	return buf.Bytes()
}

func TestClarityUInt(t *testing.T) {
	u, err := NewClarityUInt("100")
	require.NoError(t, err)
	require.Equal(t,
		"01"+"00000000000000000000000000000064",
		hex.EncodeToString(serialize(t, u)))

	// max value fits, one past it does not
	_, err = NewClarityUInt("340282366920938463463374607431768211455")
	require.NoError(t, err)
	_, err = NewClarityUInt("340282366920938463463374607431768211456")
	require.Error(t, err)

	for _, bad := range []string{"", "-5", "5.0", "abc", "1e3"} {
		_, err := NewClarityUInt(bad)
		require.Error(t, err, bad)
	}
}

func TestClarityPrincipal(t *testing.T) {
	p, err := NewClarityPrincipal("STADMRP577SC3MCNP7T3PRSTZBJ75FJ59JGABZTW")
	require.NoError(t, err)
	require.Equal(t,
		"05"+"1a"+"14da62c539f2c1d195b1f43b633afae472be454c",
		hex.EncodeToString(serialize(t, p)))

	_, err = NewClarityPrincipal("STADMRP577SC3MCNP7T3PRSTZBJ75FJ59JGABZTX")
	require.ErrorIs(t, err, ErrInvalidAddress)
}

func TestClarityTupleKeyOrder(t *testing.T) {
	amount, err := NewClarityUInt("50")
	require.NoError(t, err)
	principal, err := NewClarityPrincipal("ST2WPFYAW85A0YK9ACJR8JGWPM19VWYF90J8P5ZTH")
	require.NoError(t, err)

	// keys serialize sorted regardless of map iteration order
	raw := serialize(t, ClarityTuple{"ustx": amount, "to": principal})
	require.Equal(t, byte(0x0c), raw[0])
	require.Equal(t, []byte{0, 0, 0, 2}, raw[1:5])
	require.Equal(t, byte(2), raw[5]) // len("to")
	require.Equal(t, "to", string(raw[6:8]))
	require.Equal(t, byte(0x05), raw[8]) // principal comes first
	idx := 8 + 1 + 21
	require.Equal(t, byte(4), raw[idx]) // len("ustx")
	require.Equal(t, "ustx", string(raw[idx+1:idx+5]))
	require.Equal(t, byte(0x01), raw[idx+5])
}

func TestClarityList(t *testing.T) {
	one, err := NewClarityUInt("1")
	require.NoError(t, err)
	two, err := NewClarityUInt("2")
	require.NoError(t, err)

	raw := serialize(t, ClarityList{one, two})
	require.Equal(t, byte(0x0b), raw[0])
	require.Equal(t, []byte{0, 0, 0, 2}, raw[1:5])
	require.Len(t, raw, 5+2*17)

	empty := serialize(t, ClarityList{})
	require.Equal(t, []byte{0x0b, 0, 0, 0, 0}, empty)
}
