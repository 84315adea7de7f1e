package keeper

import (
	"context"
	"strconv"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Aronyu127/BonkArena/x/arena/types"
)

// ClaimPrize handles the ClaimPrize message.
// It pays the caller's distribution-weighted share of the prize pool exactly
// once, debiting the pool by the paid amount so the tracked pools stay backed
// by custody.
func (k *msgServer) ClaimPrize(ctx context.Context, msg *types.MsgClaimPrize) (*types.MsgClaimPrizeResponse, error) {
	creatorAddr, err := k.addressCodec.StringToBytes(msg.Creator)
	if err != nil {
		return nil, errorsmod.Wrap(err, "invalid creator address")
	}

	lb, err := k.GetLeaderboard(ctx)
	if err != nil {
		return nil, err
	}

	rank := lb.RankOf(msg.Creator)
	if rank < 0 {
		return nil, errorsmod.Wrap(types.ErrNotEligible, "player is not on the leaderboard")
	}
	if lb.Players[rank].Claimed {
		return nil, errorsmod.Wrap(types.ErrAlreadyClaimed, "prize was already paid out")
	}
	if rank >= len(lb.PrizeDistribution) {
		return nil, errorsmod.Wrapf(types.ErrNotEligible, "rank %d is outside the prize distribution", rank)
	}

	amount := prizeShare(lb.PrizePool, lb.PrizeDistribution[rank])
	if amount > 0 {
		payout := sdk.NewCoins(sdk.NewCoin(lb.TokenDenom, math.NewIntFromUint64(amount)))
		if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, creatorAddr, payout); err != nil {
			return nil, errorsmod.Wrap(err, "failed to pay prize")
		}
	}

	lb.PrizePool -= amount
	lb.Players[rank].Claimed = true
	if err := k.assertPoolBacking(ctx, lb); err != nil {
		return nil, err
	}
	if err := k.SetLeaderboard(ctx, lb); err != nil {
		return nil, errorsmod.Wrap(err, "failed to update leaderboard")
	}

	k.Logger(ctx).Info("prize claimed", "player", msg.Creator, "rank", rank, "amount", amount)
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventPrizeClaimed,
			sdk.NewAttribute(types.AttrPlayer, msg.Creator),
			sdk.NewAttribute(types.AttrRank, strconv.Itoa(rank)),
			sdk.NewAttribute(types.AttrAmount, strconv.FormatUint(amount, 10)),
		),
	)

	return &types.MsgClaimPrizeResponse{Rank: uint32(rank), Amount: amount}, nil
}
