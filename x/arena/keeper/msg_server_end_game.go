package keeper

import (
	"context"
	"strconv"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Aronyu127/BonkArena/x/arena/types"
)

// EndGame handles the EndGame message.
// A caller with an open session closes it without logging a score. The owner,
// when no session of theirs is open, instead closes the round: the entire
// custody balance is returned to the owner and both pools reset to zero.
func (k *msgServer) EndGame(ctx context.Context, msg *types.MsgEndGame) (*types.MsgEndGameResponse, error) {
	creatorAddr, err := k.addressCodec.StringToBytes(msg.Creator)
	if err != nil {
		return nil, errorsmod.Wrap(err, "invalid creator address")
	}

	session, found, err := k.GetSession(ctx, msg.Creator)
	if err != nil {
		return nil, errorsmod.Wrap(err, "failed to load session")
	}
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	if found && !session.GameCompleted {
		session.GameCompleted = true
		if err := k.SetSession(ctx, session); err != nil {
			return nil, errorsmod.Wrap(err, "failed to update session")
		}
		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventSessionClosed,
				sdk.NewAttribute(types.AttrPlayer, msg.Creator),
			),
		)
		return &types.MsgEndGameResponse{}, nil
	}

	lb, err := k.GetLeaderboard(ctx)
	if err != nil {
		return nil, err
	}
	if msg.Creator != lb.Owner {
		return nil, errorsmod.Wrap(types.ErrNoActiveSession, "nothing to end for this player")
	}

	// Round close: cash out custody to the owner.
	custody := k.custodyBalance(ctx, lb.TokenDenom)
	if custody.IsPositive() {
		if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, creatorAddr, sdk.NewCoins(custody)); err != nil {
			return nil, errorsmod.Wrap(err, "failed to drain custody")
		}
	}

	drained := lb.PrizePool + lb.CommissionPool
	lb.PrizePool = 0
	lb.CommissionPool = 0
	if err := k.SetLeaderboard(ctx, lb); err != nil {
		return nil, errorsmod.Wrap(err, "failed to update leaderboard")
	}

	k.Logger(ctx).Info("round closed", "owner", msg.Creator, "drained", custody.String())
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventRoundClosed,
			sdk.NewAttribute(types.AttrOwner, msg.Creator),
			sdk.NewAttribute(types.AttrAmount, strconv.FormatUint(drained, 10)),
		),
	)

	return &types.MsgEndGameResponse{}, nil
}
