package keeper

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Aronyu127/BonkArena/x/arena/types"
)

type queryServer struct {
	k Keeper
}

var _ types.QueryServer = (*queryServer)(nil)

// NewQueryServerImpl returns an implementation of the QueryServer interface
// for the provided Keeper.
func NewQueryServerImpl(k Keeper) types.QueryServer {
	return &queryServer{k: k}
}

func (q *queryServer) Params(ctx context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	params, err := q.k.getParams(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &types.QueryParamsResponse{Params: params}, nil
}

func (q *queryServer) Leaderboard(ctx context.Context, req *types.QueryLeaderboardRequest) (*types.QueryLeaderboardResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	lb, err := q.k.GetLeaderboard(ctx)
	if err != nil {
		return nil, status.Error(codes.NotFound, err.Error())
	}
	return &types.QueryLeaderboardResponse{Leaderboard: lb}, nil
}

func (q *queryServer) GameSession(ctx context.Context, req *types.QueryGameSessionRequest) (*types.QueryGameSessionResponse, error) {
	if req == nil || req.Player == "" {
		return nil, status.Error(codes.InvalidArgument, "player required")
	}
	session, found, err := q.k.GetSession(ctx, req.Player)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	if !found {
		return nil, status.Error(codes.NotFound, "no session for player")
	}
	return &types.QueryGameSessionResponse{Session: session}, nil
}

func (q *queryServer) PrizePools(ctx context.Context, req *types.QueryPrizePoolsRequest) (*types.QueryPrizePoolsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	lb, err := q.k.GetLeaderboard(ctx)
	if err != nil {
		return nil, status.Error(codes.NotFound, err.Error())
	}
	return &types.QueryPrizePoolsResponse{
		PrizePool:      lb.PrizePool,
		CommissionPool: lb.CommissionPool,
	}, nil
}
