package types

import "context"

// QueryServer defines the module's read paths.
type QueryServer interface {
	Params(ctx context.Context, req *QueryParamsRequest) (*QueryParamsResponse, error)
	Leaderboard(ctx context.Context, req *QueryLeaderboardRequest) (*QueryLeaderboardResponse, error)
	GameSession(ctx context.Context, req *QueryGameSessionRequest) (*QueryGameSessionResponse, error)
	PrizePools(ctx context.Context, req *QueryPrizePoolsRequest) (*QueryPrizePoolsResponse, error)
}

type QueryParamsRequest struct{}

type QueryParamsResponse struct {
	Params Params `json:"params"`
}

type QueryLeaderboardRequest struct{}

type QueryLeaderboardResponse struct {
	Leaderboard Leaderboard `json:"leaderboard"`
}

type QueryGameSessionRequest struct {
	Player string `json:"player"`
}

type QueryGameSessionResponse struct {
	Session GameSession `json:"session"`
}

type QueryPrizePoolsRequest struct{}

type QueryPrizePoolsResponse struct {
	PrizePool      uint64 `json:"prize_pool"`
	CommissionPool uint64 `json:"commission_pool"`
}
