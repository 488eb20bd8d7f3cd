package system

import (
	"bytes"
	"crypto/ed25519"

	"github.com/code-payments/code-fixtures/pkg/solana/fixtures"
)

var ProgramKey = [32]byte(fixtures.ProgramIDSystem)

var (
	StakeProgramKey  = fixtures.ProgramIDStake.ToPublicKey()
	VoteProgramKey   = fixtures.ProgramIDVote.ToPublicKey()
	ConfigProgramKey = fixtures.ProgramIDConfig.ToPublicKey()
)

var nativePrograms = []ed25519.PublicKey{
	ProgramKey[:],
	StakeProgramKey,
	VoteProgramKey,
	ConfigProgramKey,
}

// IsNativeProgram returns whether key is a program built into the runtime
func IsNativeProgram(key ed25519.PublicKey) bool {
	return contains(nativePrograms, key)
}

func contains(keys []ed25519.PublicKey, key ed25519.PublicKey) bool {
	for _, k := range keys {
		if bytes.Equal(k, key) {
			return true
		}
	}
	return false
}
