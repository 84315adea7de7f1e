package types

import "sort"

const (
	// LeaderboardCapacity bounds the ranking table. The capacity is structural:
	// insertion never lets the table grow past it.
	LeaderboardCapacity = 10

	// SecretKeySize is the byte length of the derivation secret.
	SecretKeySize = 32

	// GameKeySize is the byte length of a derived game key (Keccak-256 digest).
	GameKeySize = 32

	// PlayerNamePrefix is prepended to the session name when a score enters
	// the ranking table.
	PlayerNamePrefix = "Player: "
)

// PlayerEntry is one row of the ranking table.
type PlayerEntry struct {
	Address string `json:"address"`
	Score   uint64 `json:"score"`
	Name    string `json:"name"`
	Claimed bool   `json:"claimed"`
}

// Leaderboard is the singleton arena record: configuration, pooled funds and
// the ranking table. The derivation secret is stored separately and is never
// part of this structure.
type Leaderboard struct {
	Owner             string        `json:"owner"`
	EntryFee          uint64        `json:"entry_fee"`
	PrizeRatio        uint32        `json:"prize_ratio"`
	CommissionRatio   uint32        `json:"commission_ratio"`
	PrizeDistribution []uint32      `json:"prize_distribution"`
	TokenDenom        string        `json:"token_denom"`
	PrizePool         uint64        `json:"prize_pool"`
	CommissionPool    uint64        `json:"commission_pool"`
	Players           []PlayerEntry `json:"players"`
}

// RankOf returns the 0-based rank of the given player, or -1 when the player
// is not on the table.
func (lb Leaderboard) RankOf(address string) int {
	for i, p := range lb.Players {
		if p.Address == address {
			return i
		}
	}
	return -1
}

// IsSorted reports whether the ranking table is in descending score order.
func (lb Leaderboard) IsSorted() bool {
	return sort.SliceIsSorted(lb.Players, func(i, j int) bool {
		return lb.Players[i].Score > lb.Players[j].Score
	})
}

// GameSession tracks one player's time-boxed run. A session is single-use:
// it is created by StartGame and consumed by LogScore or EndGame.
type GameSession struct {
	Player        string `json:"player"`
	Name          string `json:"name"`
	StartTime     int64  `json:"start_time"`
	GameCompleted bool   `json:"game_completed"`
}
