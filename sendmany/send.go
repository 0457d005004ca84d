package sendmany

import (
	"errors"
	"fmt"
	"io"

	"github.com/wileyj/send-many-stx-cli/stacks"
	"github.com/wileyj/send-many-stx-cli/utils"
)

// SendManyFunction is the contract function invoked for the bulk transfer.
const SendManyFunction = "send-many"

// DefaultFee is the flat default transaction fee in microstacks. Fee
// estimation would cost an extra network round trip, so the fee is always
// explicit.
const DefaultFee = 3000

var (
	ErrEncoding = errors.New("failed to encode contract call")
	ErrNonce    = errors.New("failed to resolve nonce")
)

// Options carries everything one run of the pipeline needs. A nil Nonce
// means the sender's next nonce is fetched from the node.
type Options struct {
	RecipientTokens []string
	PrivateKey      string
	NetworkName     string
	NodeURL         string
	ContractAddress string
	Broadcast       bool
	Verbose         bool
	Nonce           *uint64
	Fee             uint64
}

// Run executes the full pipeline: resolve the network, validate recipients,
// resolve the contract, assemble and sign the transaction, then print or
// broadcast it. The first failure aborts the run.
func Run(opts Options, newClient func(apiURL string) utils.Client, out io.Writer) error {
	network, err := ResolveNetwork(opts.NetworkName, opts.NodeURL)
	if err != nil {
		return err
	}

	recipients, err := ParseRecipients(opts.RecipientTokens, network.Version)
	if err != nil {
		return err
	}

	contract := ResolveContract(network, opts.ContractAddress)

	key, err := stacks.ParsePrivateKey(opts.PrivateKey)
	if err != nil {
		return err
	}

	client := newClient(network.APIURL)

	var nonce uint64
	if opts.Nonce != nil {
		nonce = *opts.Nonce
	} else {
		nonce, err = client.QueryNonce(key.Address(network.Version))
		if err != nil {
			return fmt.Errorf("%w: %v", ErrNonce, err)
		}
	}

	tx, err := AssembleTransaction(recipients, network, contract, key, nonce, opts.Fee)
	if err != nil {
		return err
	}

	raw, err := tx.Serialize()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncoding, err)
	}

	return Report(raw, network, client, opts.Broadcast, opts.Verbose, out)
}

// AssembleTransaction builds and signs the single send-many contract call.
// The recipient list becomes one Clarity list of {to, ustx} tuples, in
// input order.
func AssembleTransaction(recipients []Recipient, network Network, contract string, key *stacks.PrivateKey, nonce, fee uint64) (*stacks.ContractCall, error) {
	contractID, err := stacks.ParseContractID(contract)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncoding, err)
	}

	entries := make(stacks.ClarityList, 0, len(recipients))
	for _, r := range recipients {
		principal, err := stacks.NewClarityPrincipal(r.Address)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrEncoding, err)
		}
		amount, err := stacks.NewClarityUInt(r.Amount)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrEncoding, err)
		}
		entries = append(entries, stacks.ClarityTuple{
			"to":   principal,
			"ustx": amount,
		})
	}

	tx := stacks.NewContractCall(network.Version, network.ChainID, contractID, SendManyFunction, []stacks.ClarityValue{entries})
	tx.Nonce = nonce
	tx.Fee = fee
	if err := tx.Sign(key); err != nil {
		return nil, err
	}
	return tx, nil
}
