package types

import fmt "fmt"

// GenesisState is the arena module's genesis state.
type GenesisState struct {
	Params      Params        `json:"params"`
	Leaderboard *Leaderboard  `json:"leaderboard,omitempty"`
	SecretKey   []byte        `json:"secret_key,omitempty"`
	Sessions    []GameSession `json:"sessions,omitempty"`
}

// DefaultGenesis returns the default genesis state.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params: DefaultParams(),
	}
}

// Validate performs basic genesis state validation.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}
	if len(gs.SecretKey) != 0 && len(gs.SecretKey) != SecretKeySize {
		return fmt.Errorf("secret key must be %d bytes, got %d", SecretKeySize, len(gs.SecretKey))
	}
	if lb := gs.Leaderboard; lb != nil {
		if lb.Owner == "" {
			return fmt.Errorf("leaderboard owner cannot be empty")
		}
		if lb.EntryFee == 0 {
			return fmt.Errorf("entry fee must be greater than 0")
		}
		if lb.PrizeRatio+lb.CommissionRatio != 100 {
			return fmt.Errorf("prize ratio %d and commission ratio %d must sum to 100", lb.PrizeRatio, lb.CommissionRatio)
		}
		if len(lb.PrizeDistribution) > LeaderboardCapacity {
			return fmt.Errorf("prize distribution has %d ranks, capacity is %d", len(lb.PrizeDistribution), LeaderboardCapacity)
		}
		var total uint64
		for _, w := range lb.PrizeDistribution {
			total += uint64(w)
		}
		if total > 100 {
			return fmt.Errorf("prize distribution sums to %d, must not exceed 100", total)
		}
		if len(lb.Players) > LeaderboardCapacity {
			return fmt.Errorf("ranking table has %d entries, capacity is %d", len(lb.Players), LeaderboardCapacity)
		}
		if !lb.IsSorted() {
			return fmt.Errorf("ranking table is not sorted by descending score")
		}
	}
	seen := make(map[string]struct{}, len(gs.Sessions))
	for _, s := range gs.Sessions {
		if s.Player == "" {
			return fmt.Errorf("session player cannot be empty")
		}
		if _, ok := seen[s.Player]; ok {
			return fmt.Errorf("duplicate session for player %s", s.Player)
		}
		seen[s.Player] = struct{}{}
	}
	return nil
}
