package keeper

import (
	"context"
	"errors"
	"strconv"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Aronyu127/BonkArena/x/arena/types"
)

// Initialize handles the Initialize message.
// The first successful creator becomes the arena owner; the configuration is
// immutable afterwards except through the owner-only setters.
func (k *msgServer) Initialize(ctx context.Context, msg *types.MsgInitialize) (*types.MsgInitializeResponse, error) {
	if _, err := k.addressCodec.StringToBytes(msg.Creator); err != nil {
		return nil, errorsmod.Wrap(err, "invalid creator address")
	}

	if _, err := k.Leaderboard.Get(ctx); err == nil {
		return nil, errorsmod.Wrap(types.ErrAlreadyInitialized, "leaderboard already exists")
	} else if !errors.Is(err, collections.ErrNotFound) {
		return nil, errorsmod.Wrap(err, "failed to check leaderboard")
	}

	if err := msg.ValidateConfig(); err != nil {
		return nil, errorsmod.Wrap(types.ErrInvalidConfiguration, err.Error())
	}

	lb := types.Leaderboard{
		Owner:             msg.Creator,
		EntryFee:          msg.EntryFee,
		PrizeRatio:        msg.PrizeRatio,
		CommissionRatio:   msg.CommissionRatio,
		PrizeDistribution: msg.PrizeDistribution,
		TokenDenom:        msg.TokenDenom,
		PrizePool:         0,
		CommissionPool:    0,
		Players:           []types.PlayerEntry{},
	}
	if err := k.SetLeaderboard(ctx, lb); err != nil {
		return nil, errorsmod.Wrap(err, "failed to store leaderboard")
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventInitialized,
			sdk.NewAttribute(types.AttrOwner, msg.Creator),
			sdk.NewAttribute(types.AttrEntryFee, strconv.FormatUint(msg.EntryFee, 10)),
			sdk.NewAttribute(types.AttrDenom, msg.TokenDenom),
		),
	)

	return &types.MsgInitializeResponse{}, nil
}
