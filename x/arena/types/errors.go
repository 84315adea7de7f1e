package types

import (
	errorsmod "cosmossdk.io/errors"
)

var (
	ErrInvalidRequest          = errorsmod.Register(ModuleName, 1, "invalid request")
	ErrUnauthorized            = errorsmod.Register(ModuleName, 2, "unauthorized")
	ErrInvalidConfiguration    = errorsmod.Register(ModuleName, 3, "invalid configuration")
	ErrAlreadyInitialized      = errorsmod.Register(ModuleName, 4, "leaderboard already initialized")
	ErrNotInitialized          = errorsmod.Register(ModuleName, 5, "leaderboard not initialized")
	ErrInsufficientFunds       = errorsmod.Register(ModuleName, 6, "insufficient funds")
	ErrNameTooLong             = errorsmod.Register(ModuleName, 7, "name too long")
	ErrSessionAlreadyActive    = errorsmod.Register(ModuleName, 8, "game session already active")
	ErrNoActiveSession         = errorsmod.Register(ModuleName, 9, "no active game session")
	ErrSessionExpired          = errorsmod.Register(ModuleName, 10, "game session expired")
	ErrSessionAlreadyCompleted = errorsmod.Register(ModuleName, 11, "score already logged")
	ErrInvalidGameKey          = errorsmod.Register(ModuleName, 12, "invalid game key")
	ErrNotEligible             = errorsmod.Register(ModuleName, 13, "not eligible for prize")
	ErrAlreadyClaimed          = errorsmod.Register(ModuleName, 14, "prize already claimed")
)
