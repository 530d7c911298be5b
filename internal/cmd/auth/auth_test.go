package auth

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"

	"github.com/rbansal42/snipper/internal/config"
	"github.com/rbansal42/snipper/internal/iostreams"
)

func execAuth(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	streams, in, out, _ := iostreams.Test()
	in.WriteString(stdin)

	cmd := NewCmdAuth(streams)
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	err := cmd.Execute()
	return out.String(), err
}

func TestLoginStatusLogout(t *testing.T) {
	keyring.MockInit()
	t.Setenv(config.TokenEnv, "")

	out, err := execAuth(t, "glpat-0123456789abcdef\n", "login", "--hostname", "gitlab.example.com", "--with-token")
	require.NoError(t, err)
	assert.Contains(t, out, "Stored token for gitlab.example.com")

	stored, err := config.GetToken("gitlab.example.com")
	require.NoError(t, err)
	assert.Equal(t, "glpat-0123456789abcdef", stored)

	out, err = execAuth(t, "", "status", "--hostname", "gitlab.example.com")
	require.NoError(t, err)
	assert.Contains(t, out, "Token available (keyring)")
	assert.Contains(t, out, "glpa**************cdef")
	assert.NotContains(t, out, "glpat-0123456789abcdef")

	out, err = execAuth(t, "", "token", "--hostname", "gitlab.example.com")
	require.NoError(t, err)
	assert.Equal(t, "glpat-0123456789abcdef\n", out)

	_, err = execAuth(t, "", "logout", "--hostname", "gitlab.example.com")
	require.NoError(t, err)

	_, err = config.GetToken("gitlab.example.com")
	assert.Error(t, err)
}

func TestLoginRejectsBadInput(t *testing.T) {
	keyring.MockInit()

	tests := []struct {
		name  string
		stdin string
		args  []string
	}{
		{name: "without --with-token", stdin: "abc", args: []string{"login", "--hostname", "gitlab.example.com"}},
		{name: "empty token", stdin: "  \n", args: []string{"login", "--hostname", "gitlab.example.com", "--with-token"}},
		{name: "token with newline inside", stdin: "abc\ndef", args: []string{"login", "--hostname", "gitlab.example.com", "--with-token"}},
		{name: "missing hostname", stdin: "abc", args: []string{"login", "--with-token"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execAuth(t, tt.stdin, tt.args...)
			assert.Error(t, err)

			_, getErr := config.GetToken("gitlab.example.com")
			assert.Error(t, getErr, "nothing should be stored")
		})
	}
}

func TestMaskToken(t *testing.T) {
	assert.Equal(t, "****", maskToken("abcd"))
	assert.Equal(t, "abcd****ijkl", maskToken("abcdefghijkl"))
}
