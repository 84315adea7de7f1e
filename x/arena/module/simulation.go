package module

import (
	"encoding/json"
	"math/rand"

	"github.com/cosmos/cosmos-sdk/types/module"
	simtypes "github.com/cosmos/cosmos-sdk/types/simulation"
	"github.com/cosmos/cosmos-sdk/x/simulation"

	arenasimulation "github.com/Aronyu127/BonkArena/x/arena/simulation"
	"github.com/Aronyu127/BonkArena/x/arena/types"
)

// GenerateGenesisState creates a randomized GenState of the module.
func (AppModule) GenerateGenesisState(simState *module.SimulationState) {
	arenaGenesis := types.GenesisState{
		Params: types.DefaultParams(),
	}
	bz, err := json.Marshal(&arenaGenesis)
	if err != nil {
		panic(err)
	}
	simState.GenState[types.ModuleName] = bz
}

// RegisterStoreDecoder registers a decoder.
func (am AppModule) RegisterStoreDecoder(_ simtypes.StoreDecoderRegistry) {}

// WeightedOperations returns all the arena module operations with their respective weights.
func (am AppModule) WeightedOperations(simState module.SimulationState) []simtypes.WeightedOperation {
	operations := make([]simtypes.WeightedOperation, 0)

	const (
		opWeightMsgStartGame          = "op_weight_msg_arena_start_game"
		defaultWeightMsgStartGame int = 100
	)
	var weightMsgStartGame int
	simState.AppParams.GetOrGenerate(opWeightMsgStartGame, &weightMsgStartGame, nil,
		func(_ *rand.Rand) {
			weightMsgStartGame = defaultWeightMsgStartGame
		},
	)
	operations = append(operations, simulation.NewWeightedOperation(
		weightMsgStartGame,
		arenasimulation.SimulateMsgStartGame(am.authKeeper, am.bankKeeper, am.keeper, simState.TxConfig),
	))

	const (
		opWeightMsgLogScore          = "op_weight_msg_arena_log_score"
		defaultWeightMsgLogScore int = 100
	)
	var weightMsgLogScore int
	simState.AppParams.GetOrGenerate(opWeightMsgLogScore, &weightMsgLogScore, nil,
		func(_ *rand.Rand) {
			weightMsgLogScore = defaultWeightMsgLogScore
		},
	)
	operations = append(operations, simulation.NewWeightedOperation(
		weightMsgLogScore,
		arenasimulation.SimulateMsgLogScore(am.authKeeper, am.bankKeeper, am.keeper, simState.TxConfig),
	))

	const (
		opWeightMsgAddPrizePool          = "op_weight_msg_arena_add_prize_pool"
		defaultWeightMsgAddPrizePool int = 50
	)
	var weightMsgAddPrizePool int
	simState.AppParams.GetOrGenerate(opWeightMsgAddPrizePool, &weightMsgAddPrizePool, nil,
		func(_ *rand.Rand) {
			weightMsgAddPrizePool = defaultWeightMsgAddPrizePool
		},
	)
	operations = append(operations, simulation.NewWeightedOperation(
		weightMsgAddPrizePool,
		arenasimulation.SimulateMsgAddPrizePool(am.authKeeper, am.bankKeeper, am.keeper, simState.TxConfig),
	))

	return operations
}

// ProposalMsgs returns msgs used for governance proposals for simulations.
func (am AppModule) ProposalMsgs(simState module.SimulationState) []simtypes.WeightedProposalMsg {
	return []simtypes.WeightedProposalMsg{}
}
