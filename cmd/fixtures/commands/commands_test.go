package commands

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/code-payments/code-fixtures/pkg/solana/bytes32"
	"github.com/code-payments/code-fixtures/pkg/solana/fixtures"
)

const (
	stakeHex = "06a1d8179137542a983437bdfe2a7ab2557f535c8a78722b68a49dc000000000"
	voteHex  = "0761481d357474bb7c4d7624ebd3bdb3d8355e73d11043fc0da3538000000000"
)

func run(t *testing.T, args ...string) (string, error) {
	cmd := NewRootCmd()

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T, contents string) string {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestGet(t *testing.T) {
	out, err := run(t, "get", fixtures.NameProgramIDStake, fixtures.NameSysvarRent)
	require.NoError(t, err)
	assert.Equal(t, "Stake11111111111111111111111111111111111111\nSysvarRent111111111111111111111111111111111\n", out)

	out, err = run(t, "get", "--encoding", "hex", fixtures.NameProgramIDStake)
	require.NoError(t, err)
	assert.Equal(t, stakeHex+"\n", out)

	_, err = run(t, "get", "unknown-name-xyz")
	assert.True(t, errors.Is(err, fixtures.ErrNotFound))

	_, err = run(t, "get")
	assert.Error(t, err)

	_, err = run(t, "get", "--encoding", "base64", fixtures.NameProgramIDStake)
	assert.True(t, errors.Is(err, bytes32.ErrUnsupportedEncoding))
}

func TestList(t *testing.T) {
	out, err := run(t, "list")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, fixtures.Default().Len())
	for i, entry := range fixtures.Default().Entries() {
		assert.Equal(t, []string{entry.Name, entry.Label}, strings.Fields(lines[i]))
	}

	out, err = run(t, "list", "--encoding", "hex")
	require.NoError(t, err)
	assert.Contains(t, out, stakeHex)
	assert.Contains(t, out, "Stake11111111111111111111111111111111111111")

	t.Setenv(showLabelsConfigEnvName, "false")
	out, err = run(t, "list", "--encoding", "hex")
	require.NoError(t, err)
	assert.Contains(t, out, stakeHex)
	assert.NotContains(t, out, "Stake11111111111111111111111111111111111111")
}

func TestEncodeDecode(t *testing.T) {
	out, err := run(t, "encode", voteHex)
	require.NoError(t, err)
	assert.Equal(t, "Vote111111111111111111111111111111111111111\n", out)

	for _, prefix := range []string{"0x", "0X"} {
		out, err = run(t, "encode", prefix+voteHex)
		require.NoError(t, err)
		assert.Equal(t, "Vote111111111111111111111111111111111111111\n", out)
	}

	_, err = run(t, "encode", "zz")
	assert.True(t, errors.Is(err, bytes32.ErrInvalidEncoding))

	_, err = run(t, "encode", "0000")
	assert.True(t, errors.Is(err, bytes32.ErrInvalidLength))

	out, err = run(t, "decode", "Stake11111111111111111111111111111111111111")
	require.NoError(t, err)
	expected := "0x06, 0xa1, 0xd8, 0x17, 0x91, 0x37, 0x54, 0x2a, 0x98, 0x34, 0x37, 0xbd,\n" +
		"0xfe, 0x2a, 0x7a, 0xb2, 0x55, 0x7f, 0x53, 0x5c, 0x8a, 0x78, 0x72, 0x2b,\n" +
		"0x68, 0xa4, 0x9d, 0xc0, 0x00, 0x00, 0x00, 0x00\n"
	assert.Equal(t, expected, out)

	out, err = run(t, "decode", "--encoding", "hex", stakeHex)
	require.NoError(t, err)
	assert.Equal(t, expected, out)

	_, err = run(t, "decode", "not base58!")
	assert.True(t, errors.Is(err, bytes32.ErrInvalidEncoding))

	_, err = run(t, "decode", "1111")
	assert.True(t, errors.Is(err, bytes32.ErrInvalidLength))
}

func TestWhois(t *testing.T) {
	out, err := run(t, "whois", "11111111111111111111111111111111")
	require.NoError(t, err)
	assert.Equal(t, fixtures.NameBytes32Base58One+"\n", out)

	out, err = run(t, "whois", "--encoding", "hex", voteHex)
	require.NoError(t, err)
	assert.Equal(t, fixtures.NameProgramIDVote+"\n", out)

	_, err = run(t, "whois", "So11111111111111111111111111111111111111112")
	assert.True(t, errors.Is(err, fixtures.ErrNotFound))
}

func TestConfigFile(t *testing.T) {
	path := writeConfig(t, `
log_level: debug
output_encoding: hex
fixtures:
  my-fixture: "So11111111111111111111111111111111111111112"
`)

	out, err := run(t, "--config", path, "get", "my-fixture")
	require.NoError(t, err)

	expected, err := bytes32.Encode(bytes32.MustFromBase58("So11111111111111111111111111111111111111112"), bytes32.EncodingHex)
	require.NoError(t, err)
	assert.Equal(t, expected+"\n", out)

	// The flag takes precedence over the configured encoding
	out, err = run(t, "--config", path, "--encoding", "base58", "get", "my-fixture")
	require.NoError(t, err)
	assert.Equal(t, "So11111111111111111111111111111111111111112\n", out)

	out, err = run(t, "--config", path, "--encoding", "base58", "whois", "So11111111111111111111111111111111111111112")
	require.NoError(t, err)
	assert.Equal(t, "my-fixture\n", out)
}

func TestConfigFile_Invalid(t *testing.T) {
	path := writeConfig(t, `
fixtures:
  bad-fixture: "1111"
`)
	_, err := run(t, "--config", path, "list")
	assert.True(t, errors.Is(err, bytes32.ErrInvalidLength))

	path = writeConfig(t, `
fixtures:
  sysvar-rent: "So11111111111111111111111111111111111111112"
`)
	_, err = run(t, "--config", path, "list")
	assert.True(t, errors.Is(err, fixtures.ErrDuplicateName))

	_, err = run(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "list")
	assert.Error(t, err)
}

func TestOutputEncodingEnv(t *testing.T) {
	t.Setenv("OUTPUT_ENCODING", "hex")

	out, err := run(t, "get", fixtures.NameProgramIDVote)
	require.NoError(t, err)
	assert.Equal(t, voteHex+"\n", out)

	out, err = run(t, "get", "--encoding", "base58", fixtures.NameProgramIDVote)
	require.NoError(t, err)
	assert.Equal(t, "Vote111111111111111111111111111111111111111\n", out)
}

func TestOutputEncodingPrecedence(t *testing.T) {
	path := writeConfig(t, `
output_encoding: hex
`)

	// The config file applies when nothing else is set
	out, err := run(t, "--config", path, "get", fixtures.NameProgramIDVote)
	require.NoError(t, err)
	assert.Equal(t, voteHex+"\n", out)

	// The environment overrides the config file
	t.Setenv("OUTPUT_ENCODING", "base58")
	out, err = run(t, "--config", path, "get", fixtures.NameProgramIDVote)
	require.NoError(t, err)
	assert.Equal(t, "Vote111111111111111111111111111111111111111\n", out)

	// The flag overrides the environment
	out, err = run(t, "--config", path, "--encoding", "hex", "get", fixtures.NameProgramIDVote)
	require.NoError(t, err)
	assert.Equal(t, voteHex+"\n", out)

	t.Setenv("OUTPUT_ENCODING", "base64")
	_, err = run(t, "get", fixtures.NameProgramIDVote)
	assert.True(t, errors.Is(err, bytes32.ErrUnsupportedEncoding))

	t.Setenv("OUTPUT_ENCODING", "")
	path = writeConfig(t, `
output_encoding: base64
`)
	_, err = run(t, "--config", path, "get", fixtures.NameProgramIDVote)
	assert.True(t, errors.Is(err, bytes32.ErrUnsupportedEncoding))
}
