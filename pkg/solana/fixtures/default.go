package fixtures

import (
	"github.com/code-payments/code-fixtures/pkg/solana/bytes32"
)

const (
	NameBytes32Base58One   = "bytes32-bs58-1"
	NameBytes32Base58Two   = "bytes32-bs58-2"
	NameBytes32Base58Three = "bytes32-bs58-3"
	NameBytes32Base58Four  = "bytes32-bs58-4"
	NameBytes32Base58Five  = "bytes32-bs58-5"
	NameBytes32Base58Six   = "bytes32-bs58-6"

	NameProgramIDSystem = "program-id-system"
	NameProgramIDStake  = "program-id-stake"
	NameProgramIDVote   = "program-id-vote"
	NameProgramIDConfig = "program-id-config"

	NameSysvarRent              = "sysvar-rent"
	NameSysvarClock             = "sysvar-clock"
	NameSysvarRecentBlockhashes = "sysvar-recent-blockhashes"
)

var defaultTable = MustNew(
	Entry{Name: NameBytes32Base58One, Value: Bytes32Base58One, Label: "11111111111111111111111111111111"},
	Entry{Name: NameBytes32Base58Two, Value: Bytes32Base58Two, Label: "22222222222222222222222222222222222222222222"},
	Entry{Name: NameBytes32Base58Three, Value: Bytes32Base58Three, Label: "33333333333333333333333333333333333333333333"},
	Entry{Name: NameBytes32Base58Four, Value: Bytes32Base58Four, Label: "44444444444444444444444444444444444444444444"},
	Entry{Name: NameBytes32Base58Five, Value: Bytes32Base58Five, Label: "55555555555555555555555555555555555555555555"},
	Entry{Name: NameBytes32Base58Six, Value: Bytes32Base58Six, Label: "66666666666666666666666666666666666666666666"},

	Entry{Name: NameProgramIDSystem, Value: ProgramIDSystem, Label: "11111111111111111111111111111111"},
	Entry{Name: NameProgramIDStake, Value: ProgramIDStake, Label: "Stake11111111111111111111111111111111111111"},
	Entry{Name: NameProgramIDVote, Value: ProgramIDVote, Label: "Vote111111111111111111111111111111111111111"},
	Entry{Name: NameProgramIDConfig, Value: ProgramIDConfig, Label: "Config1111111111111111111111111111111111111"},

	Entry{Name: NameSysvarRent, Value: SysvarRent, Label: "SysvarRent111111111111111111111111111111111"},
	Entry{Name: NameSysvarClock, Value: SysvarClock, Label: "SysvarC1ock11111111111111111111111111111111"},
	Entry{Name: NameSysvarRecentBlockhashes, Value: SysvarRecentBlockhashes, Label: "SysvarRecentB1ockHashes11111111111111111111"},
)

// Default returns the table of well-known constants. It's built once and
// never modified.
func Default() *Table {
	return defaultTable
}

// Get looks up name in the default table
func Get(name string) (bytes32.Bytes32, error) {
	return defaultTable.Get(name)
}
