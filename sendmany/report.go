package sendmany

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/wileyj/send-many-stx-cli/stacks"
	"github.com/wileyj/send-many-stx-cli/utils"
)

// ExplorerURL is the public explorer page for a broadcast transaction.
func ExplorerURL(txid string, network Network) string {
	chain := NetworkTestnet
	if network.ChainID == stacks.ChainIDMainnet {
		chain = NetworkMainnet
	}
	return fmt.Sprintf("https://explorer.stacks.co/txid/0x%s?chain=%s", txid, chain)
}

// Report produces the run's final output. Verbose mode always emits the
// labeled serialized-transaction line first; a verbose line flushed before
// a broadcast failure is not retracted. Without --broadcast the unlabeled
// lowercase hex is the sole primary line, suitable for piping.
func Report(rawTx []byte, network Network, client utils.Client, broadcast, verbose bool, out io.Writer) error {
	txHex := hex.EncodeToString(rawTx)
	if verbose {
		fmt.Fprintf(out, "Serialized transaction: %s\n", txHex)
	}

	if !broadcast {
		fmt.Fprintln(out, txHex)
		return nil
	}

	txid, err := client.BroadcastTransaction(rawTx)
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(out, "Transaction id: %s\n", txid)
		fmt.Fprintf(out, "Explorer: %s\n", ExplorerURL(txid, network))
	} else {
		fmt.Fprintln(out, txid)
	}
	return nil
}
