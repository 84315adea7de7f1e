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

func SimulateMsgAddPrizePool(
	ak types.AuthKeeper,
	bk types.BankKeeper,
	k keeper.Keeper,
	txGen client.TxConfig,
) simtypes.Operation {
	return func(r *rand.Rand, app *baseapp.BaseApp, ctx sdk.Context, accs []simtypes.Account, chainID string,
	) (simtypes.OperationMsg, []simtypes.FutureOperation, error) {
		simAccount, _ := simtypes.RandomAcc(r, accs)
		msg := &types.MsgAddPrizePool{
			Creator: simAccount.Address.String(),
			Amount:  1 + r.Uint64()%1_000_000,
		}
		_ = msg

		// TODO: fund the sim account and deliver the msg

		return simtypes.NoOpMsg(types.ModuleName, types.TypeMsgAddPrizePool, "AddPrizePool simulation not implemented"), nil, nil
	}
}
