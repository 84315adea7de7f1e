package simulation

import (
	"math/rand"

	"github.com/cosmos/cosmos-sdk/baseapp"
	"github.com/cosmos/cosmos-sdk/client"
	sdk "github.com/cosmos/cosmos-sdk/types"
	simtypes "github.com/cosmos/cosmos-sdk/types/simulation"

	"github.com/Aronyu127/BonkArena/x/arena/keeper"
	"github.com/Aronyu127/BonkArena/x/arena/types"
)

func SimulateMsgStartGame(
	ak types.AuthKeeper,
	bk types.BankKeeper,
	k keeper.Keeper,
	txGen client.TxConfig,
) simtypes.Operation {
	return func(r *rand.Rand, app *baseapp.BaseApp, ctx sdk.Context, accs []simtypes.Account, chainID string,
	) (simtypes.OperationMsg, []simtypes.FutureOperation, error) {
		simAccount, _ := simtypes.RandomAcc(r, accs)
		msg := &types.MsgStartGame{
			Creator: simAccount.Address.String(),
			Name:    simtypes.RandStringOfLength(r, 8),
		}
		_ = msg

		// TODO: deliver the msg once the arena is initialized in sim genesis

		return simtypes.NoOpMsg(types.ModuleName, types.TypeMsgStartGame, "StartGame simulation not implemented"), nil, nil
	}
}
