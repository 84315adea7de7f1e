package keeper

import (
	"context"
	"strconv"
	"unicode/utf8"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Aronyu127/BonkArena/x/arena/types"
)

// StartGame handles the StartGame message.
// It debits the entry fee into custody, splits it across the prize and
// commission pools, and opens a session for the player at block time.
func (k *msgServer) StartGame(ctx context.Context, msg *types.MsgStartGame) (*types.MsgStartGameResponse, error) {
	creatorAddr, err := k.addressCodec.StringToBytes(msg.Creator)
	if err != nil {
		return nil, errorsmod.Wrap(err, "invalid creator address")
	}

	lb, err := k.GetLeaderboard(ctx)
	if err != nil {
		return nil, err
	}

	params, err := k.getParams(ctx)
	if err != nil {
		return nil, errorsmod.Wrap(err, "failed to load params")
	}
	if uint32(utf8.RuneCountInString(msg.Name)) > params.MaxNameLength {
		return nil, errorsmod.Wrapf(types.ErrNameTooLong, "name exceeds %d characters", params.MaxNameLength)
	}

	if session, found, err := k.GetSession(ctx, msg.Creator); err != nil {
		return nil, errorsmod.Wrap(err, "failed to load session")
	} else if found && !session.GameCompleted {
		return nil, errorsmod.Wrap(types.ErrSessionAlreadyActive, "finish the current session first")
	}

	fee := sdk.NewCoins(sdk.NewCoin(lb.TokenDenom, math.NewIntFromUint64(lb.EntryFee)))
	if !k.bankKeeper.SpendableCoins(ctx, creatorAddr).IsAllGTE(fee) {
		return nil, errorsmod.Wrap(types.ErrInsufficientFunds, "cannot cover the entry fee")
	}
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, creatorAddr, types.ModuleName, fee); err != nil {
		return nil, errorsmod.Wrap(types.ErrInsufficientFunds, err.Error())
	}

	prizeAddition, commissionAddition := splitEntryFee(lb.EntryFee, lb.PrizeRatio)
	lb.PrizePool += prizeAddition
	lb.CommissionPool += commissionAddition
	if err := k.assertPoolBacking(ctx, lb); err != nil {
		return nil, err
	}
	if err := k.SetLeaderboard(ctx, lb); err != nil {
		return nil, errorsmod.Wrap(err, "failed to update leaderboard")
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	startTime := sdkCtx.BlockTime().Unix()
	session := types.GameSession{
		Player:        msg.Creator,
		Name:          msg.Name,
		StartTime:     startTime,
		GameCompleted: false,
	}
	if err := k.SetSession(ctx, session); err != nil {
		return nil, errorsmod.Wrap(err, "failed to create session")
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventGameStarted,
			sdk.NewAttribute(types.AttrPlayer, msg.Creator),
			sdk.NewAttribute(types.AttrName, msg.Name),
			sdk.NewAttribute(types.AttrStartTime, strconv.FormatInt(startTime, 10)),
			sdk.NewAttribute(types.AttrPrizePool, strconv.FormatUint(lb.PrizePool, 10)),
			sdk.NewAttribute(types.AttrCommissionPool, strconv.FormatUint(lb.CommissionPool, 10)),
		),
	)

	return &types.MsgStartGameResponse{StartTime: startTime}, nil
}
