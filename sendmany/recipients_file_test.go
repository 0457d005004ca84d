package sendmany

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadRecipientTokens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recipients.txt")
	content := "# payout batch 7\n" +
		testAddr1 + ",100\n" +
		"\n" +
		"  " + testAddr2 + ",50  \n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	tokens, err := ReadRecipientTokens(path)
	require.NoError(t, err)
	require.Equal(t, []string{testAddr1 + ",100", testAddr2 + ",50"}, tokens)
}

func TestReadRecipientTokensMissingFile(t *testing.T) {
	_, err := ReadRecipientTokens(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
}
