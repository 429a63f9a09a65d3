package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"

	"github.com/mintvault/cdp-chain/x/cdp/types"
)

// GetQueryCmd returns the cli query commands for the cdp module
func GetQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      fmt.Sprintf("Querying commands for the %s module", types.ModuleName),
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	cmd.AddCommand(
		GetCmdQueryConfig(),
		GetCmdQueryBasket(),
		GetCmdQueryPosition(),
		GetCmdQueryPositions(),
	)

	return cmd
}

// GetCmdQueryConfig queries the module config singleton.
func GetCmdQueryConfig() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Query the module's owner/collaborator/parameter config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}
			_ = clientCtx
			fmt.Println("Querying cdp config...")
			fmt.Println("Note: this module has no registered gRPC query service; route this query through an app-level ABCI query handler backed by keeper.NewQueryServerImpl, or use the node's REST query gateway.")
			return nil
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryBasket queries the singleton basket.
func GetCmdQueryBasket() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "basket",
		Short: "Query the basket",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}
			_ = clientCtx
			fmt.Println("Querying cdp basket...")
			fmt.Println("Note: this module has no registered gRPC query service; route this query through an app-level ABCI query handler backed by keeper.NewQueryServerImpl, or use the node's REST query gateway.")
			return nil
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryPosition queries a single position by owner and ID.
func GetCmdQueryPosition() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "position [owner] [position-id]",
		Short: "Query a position by owner and ID",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}
			_ = clientCtx

			id, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid position ID: %w", err)
			}

			fmt.Printf("Querying position %d owned by %s...\n", id, args[0])
			fmt.Println("Note: this module has no registered gRPC query service; route this query through an app-level ABCI query handler backed by keeper.NewQueryServerImpl, or use the node's REST query gateway.")
			return nil
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryPositions queries all positions, paginated by owner cursor.
func GetCmdQueryPositions() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "positions [flags]",
		Short: "Query all positions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}
			_ = clientCtx

			startAfter, err := cmd.Flags().GetString("start-after-owner")
			if err != nil {
				return err
			}
			limit, err := cmd.Flags().GetUint64("limit")
			if err != nil {
				return err
			}

			fmt.Printf("Querying positions (start-after-owner=%q, limit=%d)...\n", startAfter, limit)
			fmt.Println("Note: this module has no registered gRPC query service; route this query through an app-level ABCI query handler backed by keeper.NewQueryServerImpl, or use the node's REST query gateway.")
			return nil
		},
	}

	cmd.Flags().String("start-after-owner", "", "pagination cursor, the owner address to resume after")
	cmd.Flags().Uint64("limit", 100, "maximum number of positions to return")
	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}
