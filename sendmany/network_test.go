package sendmany

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wileyj/send-many-stx-cli/stacks"
)

func TestResolveNetwork(t *testing.T) {
	network, err := ResolveNetwork(NetworkMainnet, "")
	require.NoError(t, err)
	require.Equal(t, stacks.ChainIDMainnet, network.ChainID)
	require.Equal(t, stacks.TransactionVersionMainnet, network.Version)
	require.Equal(t, "https://stacks-node-api.mainnet.stacks.co", network.APIURL)

	network, err = ResolveNetwork(NetworkTestnet, "")
	require.NoError(t, err)
	require.Equal(t, stacks.ChainIDTestnet, network.ChainID)
	require.Equal(t, "https://stacks-node-api.testnet.stacks.co", network.APIURL)

	network, err = ResolveNetwork(NetworkMocknet, "")
	require.NoError(t, err)
	require.Equal(t, stacks.ChainIDTestnet, network.ChainID)
	require.Equal(t, "http://localhost:3999", network.APIURL)
}

func TestResolveNetworkEndpointOverride(t *testing.T) {
	network, err := ResolveNetwork(NetworkMainnet, "http://10.0.0.5:20443")
	require.NoError(t, err)
	require.Equal(t, "http://10.0.0.5:20443", network.APIURL)
	// only the endpoint changes
	require.Equal(t, stacks.ChainIDMainnet, network.ChainID)
	require.Equal(t, stacks.TransactionVersionMainnet, network.Version)

	// presets are value copies; the override must not stick
	network, err = ResolveNetwork(NetworkMainnet, "")
	require.NoError(t, err)
	require.Equal(t, "https://stacks-node-api.mainnet.stacks.co", network.APIURL)
}

func TestResolveNetworkUnknown(t *testing.T) {
	_, err := ResolveNetwork("devnet", "")
	require.ErrorIs(t, err, ErrUnknownNetwork)
}

func TestResolveContract(t *testing.T) {
	require.Equal(t, TestnetDefaultContract, ResolveContract(Testnet, ""))
	require.Equal(t, TestnetDefaultContract, ResolveContract(Mocknet, ""))
	require.Equal(t, MainnetDefaultContract, ResolveContract(Mainnet, ""))

	override := "SP3FBR2AGK5H9QBDH3EEN6DF8EK8JY7RX8QJ5SVTE.my-send-many"
	require.Equal(t, override, ResolveContract(Testnet, override))
	require.Equal(t, override, ResolveContract(Mainnet, override))
}
