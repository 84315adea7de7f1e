package types

import "cosmossdk.io/collections"

const (
	// ModuleName defines the module name
	ModuleName = "arena"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey is the message route for the module
	RouterKey = ModuleName

	// MemStoreKey defines the in-memory store key
	MemStoreKey = "mem_arena"

	// GovModuleName duplicates the gov module's name to avoid a dependency with x/gov.
	// It should be synced with the gov module's name if it is ever changed.
	GovModuleName = "gov"
)

const (
	// MsgServiceName and QueryServiceName identify the module's RPC services
	// for autocli and service registration.
	MsgServiceName   = "bonkarena.arena.v1.Msg"
	QueryServiceName = "bonkarena.arena.v1.Query"
)

var (
	// ParamsKey is the prefix to retrieve Params
	ParamsKey = collections.NewPrefix("params")

	// LeaderboardKey is the prefix for the singleton Leaderboard record
	LeaderboardKey = collections.NewPrefix("leaderboard")

	// SecretKeyKey is the prefix for the owner-managed derivation secret.
	// Stored apart from the Leaderboard so no read path ever serializes it.
	SecretKeyKey = collections.NewPrefix("secret")

	// SessionsKeyPrefix is the prefix for per-player game sessions
	SessionsKeyPrefix = collections.NewPrefix("sessions")
)

// KeyPrefix returns a key prefix from a string
func KeyPrefix(p string) []byte { return []byte(p) }
