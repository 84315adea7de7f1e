package cli

import (
	"encoding/json"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/spf13/cobra"

	"github.com/Aronyu127/BonkArena/x/arena/types"
)

func GetQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the arena module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	cmd.AddCommand(getParamsCmd(), getLeaderboardCmd(), getSessionCmd())
	return cmd
}

func getParamsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "params",
		Short: "Shows the parameters of the module",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			bz, _, err := clientCtx.QueryStore(types.ParamsKey.Bytes(), types.StoreKey)
			if err != nil || len(bz) == 0 {
				// If unset or unavailable, fall back to defaults.
				out, _ := json.Marshal(types.DefaultParams())
				return clientCtx.PrintString(string(out) + "\n")
			}

			// Stored as JSON (collections codec).
			var p types.Params
			if err := json.Unmarshal(bz, &p); err != nil {
				return clientCtx.PrintString(string(bz) + "\n")
			}
			out, _ := json.Marshal(p)
			return clientCtx.PrintString(string(out) + "\n")
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

func getLeaderboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Shows the arena configuration, ranking table and pools",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			bz, _, err := clientCtx.QueryStore(types.LeaderboardKey.Bytes(), types.StoreKey)
			if err != nil {
				return err
			}
			if len(bz) == 0 {
				return clientCtx.PrintString("leaderboard not initialized\n")
			}

			var lb types.Leaderboard
			if err := json.Unmarshal(bz, &lb); err != nil {
				return clientCtx.PrintString(string(bz) + "\n")
			}
			out, _ := json.MarshalIndent(lb, "", "  ")
			return clientCtx.PrintString(string(out) + "\n")
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

func getSessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session [player]",
		Short: "Shows a player's game session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			key := append(types.SessionsKeyPrefix.Bytes(), []byte(args[0])...)
			bz, _, err := clientCtx.QueryStore(key, types.StoreKey)
			if err != nil {
				return err
			}
			if len(bz) == 0 {
				return clientCtx.PrintString("no session for player\n")
			}

			var s types.GameSession
			if err := json.Unmarshal(bz, &s); err != nil {
				return clientCtx.PrintString(string(bz) + "\n")
			}
			out, _ := json.Marshal(s)
			return clientCtx.PrintString(string(out) + "\n")
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}
