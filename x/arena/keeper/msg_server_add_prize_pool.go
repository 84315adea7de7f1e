package keeper

import (
	"context"
	"strconv"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Aronyu127/BonkArena/x/arena/types"
)

// AddPrizePool handles the AddPrizePool message.
// Any funded caller may contribute; the full amount goes to the prize side
// with no commission split. Safe to retry.
func (k *msgServer) AddPrizePool(ctx context.Context, msg *types.MsgAddPrizePool) (*types.MsgAddPrizePoolResponse, error) {
	creatorAddr, err := k.addressCodec.StringToBytes(msg.Creator)
	if err != nil {
		return nil, errorsmod.Wrap(err, "invalid creator address")
	}

	if msg.Amount == 0 {
		return nil, errorsmod.Wrap(types.ErrInvalidRequest, "amount must be greater than 0")
	}

	lb, err := k.GetLeaderboard(ctx)
	if err != nil {
		return nil, err
	}

	contribution := sdk.NewCoins(sdk.NewCoin(lb.TokenDenom, math.NewIntFromUint64(msg.Amount)))
	if !k.bankKeeper.SpendableCoins(ctx, creatorAddr).IsAllGTE(contribution) {
		return nil, errorsmod.Wrap(types.ErrInsufficientFunds, "cannot cover the contribution")
	}
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, creatorAddr, types.ModuleName, contribution); err != nil {
		return nil, errorsmod.Wrap(types.ErrInsufficientFunds, err.Error())
	}

	lb.PrizePool += msg.Amount
	if err := k.assertPoolBacking(ctx, lb); err != nil {
		return nil, err
	}
	if err := k.SetLeaderboard(ctx, lb); err != nil {
		return nil, errorsmod.Wrap(err, "failed to update leaderboard")
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventPrizePoolFunded,
			sdk.NewAttribute(types.AttrPlayer, msg.Creator),
			sdk.NewAttribute(types.AttrAmount, strconv.FormatUint(msg.Amount, 10)),
			sdk.NewAttribute(types.AttrPrizePool, strconv.FormatUint(lb.PrizePool, 10)),
		),
	)

	return &types.MsgAddPrizePoolResponse{PrizePool: lb.PrizePool}, nil
}
