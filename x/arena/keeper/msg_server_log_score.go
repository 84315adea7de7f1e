package keeper

import (
	"context"
	"strconv"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Aronyu127/BonkArena/x/arena/types"
)

// LogScore handles the LogScore message.
// The submitted game key must match the key re-derived from the session's
// start time, the player's address and the current secret. A verified score
// is ranked into the table; the session completes either way.
func (k *msgServer) LogScore(ctx context.Context, msg *types.MsgLogScore) (*types.MsgLogScoreResponse, error) {
	creatorAddr, err := k.addressCodec.StringToBytes(msg.Creator)
	if err != nil {
		return nil, errorsmod.Wrap(err, "invalid creator address")
	}

	session, found, err := k.GetSession(ctx, msg.Creator)
	if err != nil {
		return nil, errorsmod.Wrap(err, "failed to load session")
	}
	if !found {
		return nil, errorsmod.Wrap(types.ErrNoActiveSession, "start a game first")
	}
	if session.GameCompleted {
		return nil, errorsmod.Wrap(types.ErrSessionAlreadyCompleted, "session is single-use")
	}

	params, err := k.getParams(ctx)
	if err != nil {
		return nil, errorsmod.Wrap(err, "failed to load params")
	}
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	now := sdkCtx.BlockTime().Unix()
	if now-session.StartTime > int64(params.SessionTimeLimitSeconds) {
		return nil, errorsmod.Wrapf(types.ErrSessionExpired, "session started at %d", session.StartTime)
	}

	// A mismatch leaves the session open so the caller can retry with a
	// corrected key before expiry.
	ok, err := k.verifyGameKey(ctx, creatorAddr, session.StartTime, msg.GameKey)
	if err != nil {
		return nil, errorsmod.Wrap(err, "failed to verify game key")
	}
	if !ok {
		return nil, errorsmod.Wrap(types.ErrInvalidGameKey, "submitted key does not match the session")
	}

	lb, err := k.GetLeaderboard(ctx)
	if err != nil {
		return nil, err
	}

	entry := types.PlayerEntry{
		Address: msg.Creator,
		Score:   msg.Score,
		Name:    types.PlayerNamePrefix + session.Name,
		Claimed: false,
	}
	players, rank := insertRanked(lb.Players, entry)
	entered := rank >= 0
	if entered {
		lb.Players = players
		if err := k.SetLeaderboard(ctx, lb); err != nil {
			return nil, errorsmod.Wrap(err, "failed to update leaderboard")
		}
	}

	session.GameCompleted = true
	if err := k.SetSession(ctx, session); err != nil {
		return nil, errorsmod.Wrap(err, "failed to update session")
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventScoreLogged,
			sdk.NewAttribute(types.AttrPlayer, msg.Creator),
			sdk.NewAttribute(types.AttrScore, strconv.FormatUint(msg.Score, 10)),
			sdk.NewAttribute(types.AttrEntered, strconv.FormatBool(entered)),
		),
	)

	resp := &types.MsgLogScoreResponse{Entered: entered}
	if entered {
		resp.Rank = uint32(rank)
	}
	return resp, nil
}
