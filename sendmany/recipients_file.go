package sendmany

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ReadRecipientTokens reads "address,amount" tokens from a line-oriented
// file. Blank lines and lines starting with # are skipped; validation
// happens later with the positional tokens.
func ReadRecipientTokens(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open recipients file: %w", err)
	}
	defer f.Close()

	var tokens []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		tokens = append(tokens, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read recipients file: %w", err)
	}
	return tokens, nil
}
