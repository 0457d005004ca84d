// Package sendmany implements the bulk-transfer pipeline: recipient
// validation, network and contract resolution, transaction assembly and
// the broadcast/report step.
package sendmany

import (
	"errors"
	"fmt"
	"strings"

	"github.com/wileyj/send-many-stx-cli/stacks"
)

var (
	ErrInvalidAddress = errors.New("invalid recipient address")
	ErrInvalidAmount  = errors.New("invalid transfer amount")
)

// Recipient is one transfer line item: a validated address and the amount
// to send it, in microstacks. Duplicates are kept as independent transfers.
type Recipient struct {
	Address string
	Amount  string
}

// ParseRecipients validates raw "address,amount" tokens in order, failing
// on the first invalid one.
func ParseRecipients(tokens []string, version stacks.TransactionVersion) ([]Recipient, error) {
	if len(tokens) == 0 {
		return nil, errors.New("at least one address,amount recipient is required")
	}
	recipients := make([]Recipient, 0, len(tokens))
	for _, token := range tokens {
		address, amount, _ := strings.Cut(token, ",")
		if !stacks.ValidAddress(address, version) {
			return nil, fmt.Errorf("%w in %q", ErrInvalidAddress, token)
		}
		if !validAmount(amount) {
			return nil, fmt.Errorf("%w in %q: amount must be a positive integer with no leading zeros", ErrInvalidAmount, token)
		}
		recipients = append(recipients, Recipient{Address: address, Amount: amount})
	}
	return recipients, nil
}

// validAmount accepts exactly the strings matching [1-9][0-9]*.
func validAmount(s string) bool {
	if s == "" || s[0] == '0' {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
