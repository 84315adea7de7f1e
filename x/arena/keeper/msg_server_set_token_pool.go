package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Aronyu127/BonkArena/x/arena/types"
)

// SetTokenPool handles the SetTokenPool message.
// It rebinds the custody denom for the arena. Owner only.
func (k *msgServer) SetTokenPool(ctx context.Context, msg *types.MsgSetTokenPool) (*types.MsgSetTokenPoolResponse, error) {
	if _, err := k.addressCodec.StringToBytes(msg.Creator); err != nil {
		return nil, errorsmod.Wrap(err, "invalid creator address")
	}

	lb, err := k.GetLeaderboard(ctx)
	if err != nil {
		return nil, err
	}
	if msg.Creator != lb.Owner {
		return nil, errorsmod.Wrap(types.ErrUnauthorized, "only the owner can rebind the token pool")
	}

	if err := sdk.ValidateDenom(msg.TokenDenom); err != nil {
		return nil, errorsmod.Wrap(types.ErrInvalidRequest, err.Error())
	}

	lb.TokenDenom = msg.TokenDenom
	if err := k.SetLeaderboard(ctx, lb); err != nil {
		return nil, errorsmod.Wrap(err, "failed to update leaderboard")
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTokenPoolSet,
			sdk.NewAttribute(types.AttrOwner, msg.Creator),
			sdk.NewAttribute(types.AttrDenom, msg.TokenDenom),
		),
	)

	return &types.MsgSetTokenPoolResponse{}, nil
}
