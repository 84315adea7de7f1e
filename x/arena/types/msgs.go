package types

import (
	"context"
	fmt "fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MsgServer defines the module's state-transition operations.
type MsgServer interface {
	Initialize(ctx context.Context, msg *MsgInitialize) (*MsgInitializeResponse, error)
	SetSecretKey(ctx context.Context, msg *MsgSetSecretKey) (*MsgSetSecretKeyResponse, error)
	SetTokenPool(ctx context.Context, msg *MsgSetTokenPool) (*MsgSetTokenPoolResponse, error)
	StartGame(ctx context.Context, msg *MsgStartGame) (*MsgStartGameResponse, error)
	LogScore(ctx context.Context, msg *MsgLogScore) (*MsgLogScoreResponse, error)
	EndGame(ctx context.Context, msg *MsgEndGame) (*MsgEndGameResponse, error)
	ClaimPrize(ctx context.Context, msg *MsgClaimPrize) (*MsgClaimPrizeResponse, error)
	AddPrizePool(ctx context.Context, msg *MsgAddPrizePool) (*MsgAddPrizePoolResponse, error)
}

// Message type URLs used for simulation operation reporting.
const (
	TypeMsgInitialize   = "initialize"
	TypeMsgSetSecretKey = "set_secret_key"
	TypeMsgSetTokenPool = "set_token_pool"
	TypeMsgStartGame    = "start_game"
	TypeMsgLogScore     = "log_score"
	TypeMsgEndGame      = "end_game"
	TypeMsgClaimPrize   = "claim_prize"
	TypeMsgAddPrizePool = "add_prize_pool"
)

// MsgInitialize creates the singleton leaderboard. The first successful
// creator becomes the owner.
type MsgInitialize struct {
	Creator           string   `json:"creator"`
	EntryFee          uint64   `json:"entry_fee"`
	PrizeRatio        uint32   `json:"prize_ratio"`
	CommissionRatio   uint32   `json:"commission_ratio"`
	PrizeDistribution []uint32 `json:"prize_distribution"`
	TokenDenom        string   `json:"token_denom"`
}

type MsgInitializeResponse struct{}

// ValidateConfig checks the stateless configuration invariants.
func (msg *MsgInitialize) ValidateConfig() error {
	if msg.EntryFee == 0 {
		return fmt.Errorf("entry fee must be greater than 0")
	}
	if msg.PrizeRatio > 100 {
		return fmt.Errorf("prize ratio must be in [0,100], got %d", msg.PrizeRatio)
	}
	if msg.PrizeRatio+msg.CommissionRatio != 100 {
		return fmt.Errorf("prize ratio %d and commission ratio %d must sum to 100", msg.PrizeRatio, msg.CommissionRatio)
	}
	if len(msg.PrizeDistribution) > LeaderboardCapacity {
		return fmt.Errorf("prize distribution has %d ranks, capacity is %d", len(msg.PrizeDistribution), LeaderboardCapacity)
	}
	// Sum in uint64 so oversized weights cannot wrap past the limit.
	var total uint64
	for _, w := range msg.PrizeDistribution {
		total += uint64(w)
	}
	if total > 100 {
		return fmt.Errorf("prize distribution sums to %d, must not exceed 100", total)
	}
	if err := sdk.ValidateDenom(msg.TokenDenom); err != nil {
		return fmt.Errorf("invalid token denom: %w", err)
	}
	return nil
}

// MsgSetSecretKey rotates the key-derivation secret. Owner only.
type MsgSetSecretKey struct {
	Creator   string `json:"creator"`
	SecretKey []byte `json:"secret_key"`
}

type MsgSetSecretKeyResponse struct{}

// MsgSetTokenPool rebinds the custody denom. Owner only.
type MsgSetTokenPool struct {
	Creator    string `json:"creator"`
	TokenDenom string `json:"token_denom"`
}

type MsgSetTokenPoolResponse struct{}

// MsgStartGame pays the entry fee and opens a session for the creator.
type MsgStartGame struct {
	Creator string `json:"creator"`
	Name    string `json:"name"`
}

type MsgStartGameResponse struct {
	StartTime int64 `json:"start_time"`
}

// MsgLogScore submits a score with its proof key for the creator's open session.
type MsgLogScore struct {
	Creator string `json:"creator"`
	Score   uint64 `json:"score"`
	GameKey []byte `json:"game_key"`
}

type MsgLogScoreResponse struct {
	// Entered reports whether the score made the ranking table.
	Entered bool `json:"entered"`
	// Rank is the 0-based table position when Entered is true.
	Rank uint32 `json:"rank"`
}

// MsgEndGame closes the creator's open session scoreless, or, when sent by
// the owner with no open session, drains custody and closes the round.
type MsgEndGame struct {
	Creator string `json:"creator"`
}

type MsgEndGameResponse struct{}

// MsgClaimPrize pays out the creator's ranked share of the prize pool.
type MsgClaimPrize struct {
	Creator string `json:"creator"`
}

type MsgClaimPrizeResponse struct {
	Rank   uint32 `json:"rank"`
	Amount uint64 `json:"amount"`
}

// MsgAddPrizePool contributes to the prize pool. Open to any funded caller.
type MsgAddPrizePool struct {
	Creator string `json:"creator"`
	Amount  uint64 `json:"amount"`
}

type MsgAddPrizePoolResponse struct {
	PrizePool uint64 `json:"prize_pool"`
}
