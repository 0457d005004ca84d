package sendmany

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wileyj/send-many-stx-cli/stacks"
)

const (
	testAddr1 = "STADMRP577SC3MCNP7T3PRSTZBJ75FJ59JGABZTW"
	testAddr2 = "ST2WPFYAW85A0YK9ACJR8JGWPM19VWYF90J8P5ZTH"
)

func TestParseRecipients(t *testing.T) {
	recipients, err := ParseRecipients(
		[]string{testAddr1 + ",100", testAddr2 + ",50"},
		stacks.TransactionVersionTestnet)
	require.NoError(t, err)
	require.Equal(t, []Recipient{
		{Address: testAddr1, Amount: "100"},
		{Address: testAddr2, Amount: "50"},
	}, recipients)
}

func TestParseRecipientsKeepsOrderAndDuplicates(t *testing.T) {
	recipients, err := ParseRecipients(
		[]string{testAddr2 + ",1", testAddr1 + ",2", testAddr2 + ",1"},
		stacks.TransactionVersionTestnet)
	require.NoError(t, err)
	require.Len(t, recipients, 3)
	require.Equal(t, testAddr2, recipients[0].Address)
	require.Equal(t, testAddr1, recipients[1].Address)
	require.Equal(t, recipients[0], recipients[2])
}

func TestParseRecipientsAmountValidation(t *testing.T) {
	accepted := []string{"100", "1", "9", "10", "123456789012345678901234567890"}
	for _, amount := range accepted {
		_, err := ParseRecipients([]string{testAddr1 + "," + amount}, stacks.TransactionVersionTestnet)
		require.NoError(t, err, amount)
	}

	rejected := []string{"0100", "-5", "5.0", "0", "", "+5", "1_000", "ten", "1e3", " 5"}
	for _, amount := range rejected {
		_, err := ParseRecipients([]string{testAddr1 + "," + amount}, stacks.TransactionVersionTestnet)
		require.ErrorIs(t, err, ErrInvalidAmount, amount)
	}
}

func TestParseRecipientsAddressValidation(t *testing.T) {
	cases := []string{
		"STADMRP577SC3MCNP7T3PRSTZBJ75FJ59JGABZTX,100", // bad checksum
		"banana,100",
		",100",
		"100", // no comma: the whole token is taken as the address
	}
	for _, token := range cases {
		_, err := ParseRecipients([]string{token}, stacks.TransactionVersionTestnet)
		require.ErrorIs(t, err, ErrInvalidAddress, token)
		require.ErrorContains(t, err, token)
	}

	// testnet addresses are rejected on mainnet
	_, err := ParseRecipients([]string{testAddr1 + ",100"}, stacks.TransactionVersionMainnet)
	require.ErrorIs(t, err, ErrInvalidAddress)
}

func TestParseRecipientsFirstInvalidWins(t *testing.T) {
	_, err := ParseRecipients(
		[]string{testAddr1 + ",100", "bogus,5", testAddr2 + ",0100"},
		stacks.TransactionVersionTestnet)
	require.ErrorIs(t, err, ErrInvalidAddress)
	require.ErrorContains(t, err, "bogus,5")
}

func TestParseRecipientsEmpty(t *testing.T) {
	_, err := ParseRecipients(nil, stacks.TransactionVersionTestnet)
	require.Error(t, err)
}
