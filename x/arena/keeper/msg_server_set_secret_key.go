package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Aronyu127/BonkArena/x/arena/types"
)

// SetSecretKey handles the SetSecretKey message.
// It atomically replaces the key-derivation secret. Verification always uses
// the current secret, so rotating while sessions are open strands their
// already-issued proof keys.
func (k *msgServer) SetSecretKey(ctx context.Context, msg *types.MsgSetSecretKey) (*types.MsgSetSecretKeyResponse, error) {
	if _, err := k.addressCodec.StringToBytes(msg.Creator); err != nil {
		return nil, errorsmod.Wrap(err, "invalid creator address")
	}

	lb, err := k.GetLeaderboard(ctx)
	if err != nil {
		return nil, err
	}
	if msg.Creator != lb.Owner {
		return nil, errorsmod.Wrap(types.ErrUnauthorized, "only the owner can rotate the secret key")
	}

	if len(msg.SecretKey) != types.SecretKeySize {
		return nil, errorsmod.Wrapf(types.ErrInvalidRequest, "secret key must be %d bytes", types.SecretKeySize)
	}

	if err := k.SecretKey.Set(ctx, msg.SecretKey); err != nil {
		return nil, errorsmod.Wrap(err, "failed to store secret key")
	}

	// The event carries no key material.
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventSecretRotated,
			sdk.NewAttribute(types.AttrOwner, msg.Creator),
		),
	)

	return &types.MsgSetSecretKeyResponse{}, nil
}
