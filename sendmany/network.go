package sendmany

import (
	"errors"
	"fmt"

	"github.com/wileyj/send-many-stx-cli/stacks"
)

// Network names accepted by the --network flag.
const (
	NetworkMocknet = "mocknet"
	NetworkTestnet = "testnet"
	NetworkMainnet = "mainnet"
)

// Network describes one member of the closed set of target networks.
type Network struct {
	Name    string
	Version stacks.TransactionVersion
	ChainID stacks.ChainID
	APIURL  string
}

// The three presets. Mocknet is a testnet-class chain on a local node.
var (
	Mocknet = Network{
		Name:    NetworkMocknet,
		Version: stacks.TransactionVersionTestnet,
		ChainID: stacks.ChainIDTestnet,
		APIURL:  "http://localhost:3999",
	}
	Testnet = Network{
		Name:    NetworkTestnet,
		Version: stacks.TransactionVersionTestnet,
		ChainID: stacks.ChainIDTestnet,
		APIURL:  "https://stacks-node-api.testnet.stacks.co",
	}
	Mainnet = Network{
		Name:    NetworkMainnet,
		Version: stacks.TransactionVersionMainnet,
		ChainID: stacks.ChainIDMainnet,
		APIURL:  "https://stacks-node-api.mainnet.stacks.co",
	}
)

var ErrUnknownNetwork = errors.New("unknown network")

// ResolveNetwork maps a network name to its preset, applying an optional
// endpoint override. The override never touches the chain id. Unknown
// names are rejected by the flag layer before this runs.
func ResolveNetwork(name, nodeURL string) (Network, error) {
	var network Network
	switch name {
	case NetworkMocknet:
		network = Mocknet
	case NetworkTestnet:
		network = Testnet
	case NetworkMainnet:
		network = Mainnet
	default:
		return Network{}, fmt.Errorf("%w: %q", ErrUnknownNetwork, name)
	}
	if nodeURL != "" {
		network.APIURL = nodeURL
	}
	return network, nil
}

// Default send-many contract identifiers, keyed by chain.
const (
	TestnetDefaultContract = "STB44HYPYAT2BB2QE513NSP81HTMYWBJP02HPGK6.send-many"

	// No production send-many contract is deployed yet, so the mainnet
	// default targets the boot address where no such contract exists.
	// Mainnet runs must pass --contractAddress.
	MainnetDefaultContract = "SP000000000000000000002Q6VF78.send-many"
)

// ResolveContract picks the effective contract identifier: an explicit
// override is used verbatim, otherwise the chain's built-in default.
func ResolveContract(network Network, override string) string {
	if override != "" {
		return override
	}
	if network.ChainID == stacks.ChainIDTestnet {
		return TestnetDefaultContract
	}
	return MainnetDefaultContract
}
