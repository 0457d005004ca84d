package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wileyj/send-many-stx-cli/sendmany"
	"github.com/wileyj/send-many-stx-cli/utils"
)

const (
	FlagPrivateKey      = "privateKey"
	FlagBroadcast       = "broadcast"
	FlagNetwork         = "network"
	FlagNodeURL         = "nodeUrl"
	FlagVerbose         = "verbose"
	FlagContractAddress = "contractAddress"
	FlagNonce           = "nonce"
	FlagFee             = "fee"
	FlagRecipientsFile  = "recipientsFile"
)

var (
	privateKey      string
	broadcast       bool
	networkName     string
	nodeURL         string
	verbose         bool
	contractAddress string
	nonce           uint64
	fee             uint64
	recipientsFile  string
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send-many-stx <address,amount> [address,amount ...]",
		Short: "Send STX to multiple recipients in a single transaction",
		Long: `Packages a list of recipients into one send-many contract call, signs it
with the supplied private key, and prints the raw transaction hex or
broadcasts it to a Stacks node.

There is no default send-many contract on mainnet yet; mainnet runs must
supply --contractAddress.

Example:
  send-many-stx STADMRP577SC3MCNP7T3PRSTZBJ75FJ59JGABZTW,100 \
    ST2WPFYAW85A0YK9ACJR8JGWPM19VWYF90J8P5ZTH,50 \
    -k <privateKey> -n testnet -b`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := buildOptions(cmd, args)
			if err != nil {
				return err
			}
			return sendmany.Run(*opts, func(apiURL string) utils.Client {
				return utils.NewNodeClient(apiURL)
			}, os.Stdout)
		},
	}

	cmd.Flags().StringVarP(&privateKey, FlagPrivateKey, "k", "", "hex-encoded sender private key (required)")
	cmd.Flags().BoolVarP(&broadcast, FlagBroadcast, "b", false, "broadcast the transaction instead of printing it")
	cmd.Flags().StringVarP(&networkName, FlagNetwork, "n", sendmany.NetworkTestnet, "target network: mocknet, testnet or mainnet")
	cmd.Flags().StringVarP(&nodeURL, FlagNodeURL, "u", "", "node API endpoint override")
	cmd.Flags().BoolVarP(&verbose, FlagVerbose, "v", false, "print labeled diagnostic lines")
	cmd.Flags().StringVarP(&contractAddress, FlagContractAddress, "c", "", "send-many contract identifier override")
	cmd.Flags().Uint64Var(&nonce, FlagNonce, 0, "explicit nonce (default: fetched from the node)")
	cmd.Flags().Uint64Var(&fee, FlagFee, sendmany.DefaultFee, "transaction fee in microstacks")
	cmd.Flags().StringVarP(&recipientsFile, FlagRecipientsFile, "f", "", "file with one address,amount per line")
	_ = cmd.MarkFlagRequired(FlagPrivateKey)

	return cmd
}

func buildOptions(cmd *cobra.Command, args []string) (*sendmany.Options, error) {
	switch networkName {
	case sendmany.NetworkMocknet, sendmany.NetworkTestnet, sendmany.NetworkMainnet:
	default:
		return nil, fmt.Errorf("invalid --%s %q: must be mocknet, testnet or mainnet", FlagNetwork, networkName)
	}

	tokens := append([]string{}, args...)
	if recipientsFile != "" {
		fromFile, err := sendmany.ReadRecipientTokens(recipientsFile)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, fromFile...)
	}
	if len(tokens) == 0 {
		return nil, errors.New("at least one address,amount recipient is required")
	}

	opts := &sendmany.Options{
		RecipientTokens: tokens,
		PrivateKey:      privateKey,
		NetworkName:     networkName,
		NodeURL:         nodeURL,
		ContractAddress: contractAddress,
		Broadcast:       broadcast,
		Verbose:         verbose,
		Fee:             fee,
	}
	if cmd.Flags().Changed(FlagNonce) {
		n := nonce
		opts.Nonce = &n
	}
	return opts, nil
}
