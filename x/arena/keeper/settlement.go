package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Aronyu127/BonkArena/x/arena/types"
)

// splitEntryFee divides an entry fee between the prize and commission pools.
// The prize side takes floor(fee * prizeRatio / 100); the commission side
// takes the rest, so any rounding remainder lands on the commission pool and
// the split always conserves the fee exactly.
func splitEntryFee(fee uint64, prizeRatio uint32) (prizeAddition, commissionAddition uint64) {
	prizeAddition = math.NewIntFromUint64(fee).
		MulRaw(int64(prizeRatio)).
		QuoRaw(100).
		Uint64()
	commissionAddition = fee - prizeAddition
	return prizeAddition, commissionAddition
}

// prizeShare computes floor(pool * weight / 100) for a distribution weight.
func prizeShare(pool uint64, weight uint32) uint64 {
	return math.NewIntFromUint64(pool).
		MulRaw(int64(weight)).
		QuoRaw(100).
		Uint64()
}

// assertPoolBacking verifies that the tracked pools never exceed the custody
// balance actually held by the module account. Every settlement mutation runs
// through this check before committing.
func (k Keeper) assertPoolBacking(ctx context.Context, lb types.Leaderboard) error {
	custody := k.bankKeeper.SpendableCoins(ctx, k.ModuleAddress()).AmountOf(lb.TokenDenom)
	tracked := math.NewIntFromUint64(lb.PrizePool).Add(math.NewIntFromUint64(lb.CommissionPool))
	if tracked.GT(custody) {
		return errorsmod.Wrapf(types.ErrInvalidRequest,
			"tracked pools %s exceed custody balance %s%s", tracked, custody, lb.TokenDenom)
	}
	return nil
}

// custodyBalance returns the module account's full balance of the custody denom.
func (k Keeper) custodyBalance(ctx context.Context, denom string) sdk.Coin {
	amount := k.bankKeeper.SpendableCoins(ctx, k.ModuleAddress()).AmountOf(denom)
	return sdk.NewCoin(denom, amount)
}
