package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"

	"github.com/Aronyu127/BonkArena/x/arena/types"
)

// InitGenesis initializes the module state from a genesis state.
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := k.Params.Set(ctx, genState.Params); err != nil {
		return err
	}
	if genState.Leaderboard != nil {
		if err := k.SetLeaderboard(ctx, *genState.Leaderboard); err != nil {
			return err
		}
	}
	if len(genState.SecretKey) == types.SecretKeySize {
		if err := k.SecretKey.Set(ctx, genState.SecretKey); err != nil {
			return err
		}
	}
	for _, session := range genState.Sessions {
		if err := k.SetSession(ctx, session); err != nil {
			return err
		}
	}
	return nil
}

// ExportGenesis exports the module state to a genesis state.
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	genesis := types.DefaultGenesis()

	params, err := k.getParams(ctx)
	if err != nil {
		return nil, err
	}
	genesis.Params = params

	lb, err := k.GetLeaderboard(ctx)
	if err == nil {
		genesis.Leaderboard = &lb
	} else if !errors.Is(err, types.ErrNotInitialized) {
		return nil, err
	}

	secret, err := k.SecretKey.Get(ctx)
	if err == nil {
		genesis.SecretKey = secret
	} else if !errors.Is(err, collections.ErrNotFound) {
		return nil, err
	}

	err = k.Sessions.Walk(ctx, nil, func(_ string, session types.GameSession) (bool, error) {
		genesis.Sessions = append(genesis.Sessions, session)
		return false, nil
	})
	if err != nil {
		return nil, err
	}

	return genesis, nil
}
