package module

import (
	autocliv1 "cosmossdk.io/api/cosmos/autocli/v1"

	"github.com/Aronyu127/BonkArena/x/arena/types"
)

// AutoCLIOptions implements the autocli.HasAutoCLIConfig interface.
func (am AppModule) AutoCLIOptions() *autocliv1.ModuleOptions {
	return &autocliv1.ModuleOptions{
		Query: &autocliv1.ServiceCommandDescriptor{
			Service: types.QueryServiceName,
			RpcCommandOptions: []*autocliv1.RpcCommandOptions{
				{
					RpcMethod: "Params",
					Use:       "params",
					Short:     "Shows the parameters of the module",
				},
				{
					RpcMethod: "Leaderboard",
					Use:       "leaderboard",
					Short:     "Shows the arena configuration and ranking table",
				},
				{
					RpcMethod:      "GameSession",
					Use:            "session [player]",
					Short:          "Shows a player's game session",
					PositionalArgs: []*autocliv1.PositionalArgDescriptor{{ProtoField: "player"}},
				},
				{
					RpcMethod: "PrizePools",
					Use:       "pools",
					Short:     "Shows the prize and commission pool balances",
				},
			},
		},
		Tx: &autocliv1.ServiceCommandDescriptor{
			Service:              types.MsgServiceName,
			EnhanceCustomCommand: true,
			RpcCommandOptions: []*autocliv1.RpcCommandOptions{
				{
					RpcMethod:      "StartGame",
					Use:            "start-game [name]",
					Short:          "Pay the entry fee and open a game session",
					PositionalArgs: []*autocliv1.PositionalArgDescriptor{{ProtoField: "name"}},
				},
				{
					RpcMethod:      "LogScore",
					Use:            "log-score [score] [game-key]",
					Short:          "Submit a score with its proof key",
					PositionalArgs: []*autocliv1.PositionalArgDescriptor{{ProtoField: "score"}, {ProtoField: "game_key"}},
				},
				{
					RpcMethod: "EndGame",
					Use:       "end-game",
					Short:     "Close the open session, or the round when sent by the owner",
				},
				{
					RpcMethod: "ClaimPrize",
					Use:       "claim-prize",
					Short:     "Claim the ranked share of the prize pool",
				},
				{
					RpcMethod:      "AddPrizePool",
					Use:            "add-prize-pool [amount]",
					Short:          "Contribute to the prize pool",
					PositionalArgs: []*autocliv1.PositionalArgDescriptor{{ProtoField: "amount"}},
				},
				{
					RpcMethod: "SetSecretKey",
					Skip:      true, // skipped because owner gated
				},
				{
					RpcMethod: "SetTokenPool",
					Skip:      true, // skipped because owner gated
				},
			},
		},
	}
}
