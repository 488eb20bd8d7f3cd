package system

import (
	"crypto/ed25519"

	"github.com/code-payments/code-fixtures/pkg/solana/fixtures"
)

var (
	// https://explorer.solana.com/address/11111111111111111111111111111111
	SystemAccount = fixtures.ProgramIDSystem.ToPublicKey()

	// RentSysVar points to the system variable "Rent"
	//
	// Source: https://github.com/solana-labs/solana/blob/f02a78d8fff2dd7297dc6ce6eb5a68a3002f5359/sdk/src/sysvar/rent.rs#L11
	RentSysVar = fixtures.SysvarRent.ToPublicKey()

	// RecentBlockhashesSysVar points to the system variable "Recent Blockhashes"
	//
	// Source: https://github.com/solana-labs/solana/blob/f02a78d8fff2dd7297dc6ce6eb5a68a3002f5359/sdk/src/sysvar/recent_blockhashes.rs#L12-L15
	RecentBlockhashesSysVar = fixtures.SysvarRecentBlockhashes.ToPublicKey()

	// ClockSysVar points to the system variable "Clock"
	ClockSysVar = fixtures.SysvarClock.ToPublicKey()
)

var sysvars = []ed25519.PublicKey{
	RentSysVar,
	RecentBlockhashesSysVar,
	ClockSysVar,
}

// IsSysVar returns whether key is one of the known system variables
func IsSysVar(key ed25519.PublicKey) bool {
	return contains(sysvars, key)
}
