package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"

	"github.com/mintvault/cdp-chain/x/cdp/types"
)

// GetTxCmd returns the transaction commands for the cdp module
func GetTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      fmt.Sprintf("%s transactions subcommands", types.ModuleName),
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	cmd.AddCommand(
		CmdDeposit(),
		CmdWithdraw(),
		CmdIncreaseDebt(),
		CmdRepay(),
		CmdLiqRepay(),
		CmdClosePosition(),
		CmdLiquidate(),
		CmdAccrue(),
		CmdMintRevenue(),
		CmdCreateBasket(),
		CmdEditBasket(),
		CmdEditCAsset(),
		CmdUpdateConfig(),
	)

	return cmd
}

// parseAssets parses a comma-separated list of amount:denom pairs, e.g.
// "1000000:uatom,500000:uosmo".
func parseAssets(raw string) ([]types.Asset, error) {
	parts := strings.Split(raw, ",")
	assets := make([]types.Asset, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		pieces := strings.SplitN(p, ":", 2)
		if len(pieces) != 2 {
			return nil, fmt.Errorf("invalid asset %q, expected amount:denom", p)
		}
		amount, ok := math.NewIntFromString(pieces[0])
		if !ok {
			return nil, fmt.Errorf("invalid amount in %q", p)
		}
		assets = append(assets, types.NewAsset(types.NewNativeAssetInfo(pieces[1]), amount))
	}
	if len(assets) == 0 {
		return nil, fmt.Errorf("no assets parsed from %q", raw)
	}
	return assets, nil
}

// CmdDeposit deposits collateral into a position, opening one on first use.
func CmdDeposit() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deposit [funds] [flags]",
		Short: "Deposit collateral into a position",
		Long: `Deposit one or more collateral assets into a position, opening a new
position on the first deposit. funds is a comma-separated amount:denom list,
e.g. "1000000:uatom".

Example:
  cdpd tx cdp deposit 1000000:uatom --from alice
  cdpd tx cdp deposit 1000000:uatom --position-id 7 --from alice`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			funds, err := parseAssets(args[0])
			if err != nil {
				return err
			}

			positionID, err := cmd.Flags().GetUint64("position-id")
			if err != nil {
				return err
			}
			positionOwner, err := cmd.Flags().GetString("position-owner")
			if err != nil {
				return err
			}

			msg := &types.MsgDeposit{
				Sender:        clientCtx.GetFromAddress().String(),
				PositionID:    positionID,
				PositionOwner: positionOwner,
				Funds:         funds,
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().Uint64("position-id", 0, "existing position ID to deposit into (0 opens a new position)")
	cmd.Flags().String("position-owner", "", "owner of an existing position, if depositing on another's behalf")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdWithdraw withdraws collateral from a position.
func CmdWithdraw() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw [position-id] [assets] [flags]",
		Short: "Withdraw collateral from a position",
		Long: `Withdraw one or more collateral assets from a position, subject to the
post-withdrawal LTV check. assets is a comma-separated amount:denom list.

Example:
  cdpd tx cdp withdraw 7 500000:uatom --from alice`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			positionID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid position ID: %w", err)
			}
			assets, err := parseAssets(args[1])
			if err != nil {
				return err
			}
			sendTo, err := cmd.Flags().GetString("send-to")
			if err != nil {
				return err
			}

			msg := &types.MsgWithdraw{
				Sender:     clientCtx.GetFromAddress().String(),
				PositionID: positionID,
				Assets:     assets,
				SendTo:     sendTo,
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String("send-to", "", "address to send the withdrawn collateral to (defaults to sender)")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdIncreaseDebt borrows credit asset against a position, either a fixed
// amount or up to a target LTV.
func CmdIncreaseDebt() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "increase-debt [position-id] [flags]",
		Short: "Borrow credit asset against a position",
		Long: `Borrow credit asset against a position, either a fixed amount (--amount)
or up to a target loan-to-value ratio (--ltv).

Example:
  cdpd tx cdp increase-debt 7 --amount 500000 --from alice
  cdpd tx cdp increase-debt 7 --ltv 0.5 --from alice`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			positionID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid position ID: %w", err)
			}

			amountStr, err := cmd.Flags().GetString("amount")
			if err != nil {
				return err
			}
			ltvStr, err := cmd.Flags().GetString("ltv")
			if err != nil {
				return err
			}
			mintTo, err := cmd.Flags().GetString("mint-to")
			if err != nil {
				return err
			}

			var amount math.Int
			if amountStr != "" {
				var ok bool
				amount, ok = math.NewIntFromString(amountStr)
				if !ok {
					return fmt.Errorf("invalid amount: %s", amountStr)
				}
			}
			var ltv math.LegacyDec
			if ltvStr != "" {
				var err error
				ltv, err = math.LegacyNewDecFromStr(ltvStr)
				if err != nil {
					return fmt.Errorf("invalid ltv: %w", err)
				}
			}

			msg := &types.MsgIncreaseDebt{
				Sender:     clientCtx.GetFromAddress().String(),
				PositionID: positionID,
				Amount:     amount,
				LTV:        ltv,
				MintToAddr: mintTo,
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String("amount", "", "fixed amount of credit asset to borrow")
	cmd.Flags().String("ltv", "", "target loan-to-value ratio to borrow up to")
	cmd.Flags().String("mint-to", "", "address to mint the borrowed credit to (defaults to sender)")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdRepay repays credit asset against a position.
func CmdRepay() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repay [position-id] [amount] [flags]",
		Short: "Repay credit asset against a position",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			positionID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid position ID: %w", err)
			}
			amount, ok := math.NewIntFromString(args[1])
			if !ok {
				return fmt.Errorf("invalid amount: %s", args[1])
			}
			positionOwner, err := cmd.Flags().GetString("position-owner")
			if err != nil {
				return err
			}
			sendExcessTo, err := cmd.Flags().GetString("send-excess-to")
			if err != nil {
				return err
			}

			msg := &types.MsgRepay{
				Sender:        clientCtx.GetFromAddress().String(),
				PositionID:    positionID,
				PositionOwner: positionOwner,
				Funds:         amount,
				SendExcessTo:  sendExcessTo,
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String("position-owner", "", "owner of the position being repaid on behalf of")
	cmd.Flags().String("send-excess-to", "", "address to refund any overpayment to (defaults to sender)")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdLiqRepay repays credit asset against a position that is already mid
// liquidation, settling against the open LiquidationPropagation instead of
// the ordinary Repay path.
func CmdLiqRepay() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "liq-repay [position-id] [funds] [flags]",
		Short: "Repay credit asset against a position mid liquidation",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			positionID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid position ID: %w", err)
			}
			funds, ok := math.NewIntFromString(args[1])
			if !ok {
				return fmt.Errorf("invalid funds: %s", args[1])
			}

			msg := &types.MsgLiqRepay{
				Sender:     clientCtx.GetFromAddress().String(),
				PositionID: positionID,
				Funds:      funds,
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdClosePosition fully unwinds a position through the sell wall.
func CmdClosePosition() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "close-position [position-id] [max-spread] [flags]",
		Short: "Close a position, selling collateral to repay its debt in full",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			positionID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid position ID: %w", err)
			}
			maxSpread, err := math.LegacyNewDecFromStr(args[1])
			if err != nil {
				return fmt.Errorf("invalid max spread: %w", err)
			}
			sendTo, err := cmd.Flags().GetString("send-to")
			if err != nil {
				return err
			}

			msg := &types.MsgClosePosition{
				Sender:     clientCtx.GetFromAddress().String(),
				PositionID: positionID,
				MaxSpread:  maxSpread,
				SendTo:     sendTo,
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String("send-to", "", "address to send any refunded collateral to (defaults to sender)")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdLiquidate permissionlessly triggers the liquidation waterfall on an
// underwater position.
func CmdLiquidate() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "liquidate [position-owner] [position-id] [flags]",
		Short: "Liquidate an underwater position",
		Long: `Trigger the liquidation waterfall against an underwater position. Anyone
may call this; the caller is recorded as the liquidation fee recipient.

Example:
  cdpd tx cdp liquidate hodl1abc... 7 --from keeper-bot`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			positionID, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid position ID: %w", err)
			}

			msg := &types.MsgLiquidate{
				Sender:        clientCtx.GetFromAddress().String(),
				PositionOwner: args[0],
				PositionID:    positionID,
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdAccrue runs the idempotent public interest/rate accrual crank.
func CmdAccrue() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accrue [position-owner] [position-ids] [flags]",
		Short: "Accrue interest and redemption price drift for one or more positions",
		Long: `Run the permissionless accrual crank against a comma-separated list of
position IDs owned by position-owner.

Example:
  cdpd tx cdp accrue hodl1abc... 7,8,9 --from anyone`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			idStrs := strings.Split(args[1], ",")
			ids := make([]uint64, 0, len(idStrs))
			for _, s := range idStrs {
				id, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
				if err != nil {
					return fmt.Errorf("invalid position ID %q: %w", s, err)
				}
				ids = append(ids, id)
			}

			msg := &types.MsgAccrue{
				Sender:        clientCtx.GetFromAddress().String(),
				PositionOwner: args[0],
				PositionIDs:   ids,
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdMintRevenue mints accrued basket revenue, optionally repaying a
// position's debt directly with the proceeds.
func CmdMintRevenue() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mint-revenue [flags]",
		Short: "Mint accrued basket revenue (owner-only)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			sendTo, err := cmd.Flags().GetString("send-to")
			if err != nil {
				return err
			}
			repayFor, err := cmd.Flags().GetUint64("repay-for")
			if err != nil {
				return err
			}
			amountStr, err := cmd.Flags().GetString("amount")
			if err != nil {
				return err
			}

			var amount math.Int
			if amountStr != "" {
				var ok bool
				amount, ok = math.NewIntFromString(amountStr)
				if !ok {
					return fmt.Errorf("invalid amount: %s", amountStr)
				}
			}

			msg := &types.MsgMintRevenue{
				Sender:   clientCtx.GetFromAddress().String(),
				SendTo:   sendTo,
				RepayFor: repayFor,
				Amount:   amount,
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String("send-to", "", "address to mint revenue to (defaults to sender)")
	cmd.Flags().Uint64("repay-for", 0, "position ID to repay directly with the minted revenue instead of sending it")
	cmd.Flags().String("amount", "", "amount of revenue to mint (defaults to the full pending balance)")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdCreateBasket installs the module's singleton basket, owner-only and
// one-shot.
func CmdCreateBasket() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-basket [collateral] [credit-denom] [credit-price] [base-interest-rate] [flags]",
		Short: "Create the basket (owner-only, one-time)",
		Long: `Create the singleton basket. collateral is a comma-separated
amount:denom list describing the seed collateral type bounds (amount is
ignored, only the denom is used to register the collateral type).

Example:
  cdpd tx cdp create-basket 0:uatom ucredit 1.00 0.02 --from owner`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			collateral, err := parseAssets(args[0])
			if err != nil {
				return err
			}
			collateralTypes := make([]types.CAsset, len(collateral))
			maxBorrowLTV, err := cmd.Flags().GetString("max-borrow-ltv")
			if err != nil {
				return err
			}
			maxLTV, err := cmd.Flags().GetString("max-ltv")
			if err != nil {
				return err
			}
			borrowLTVDec, err := math.LegacyNewDecFromStr(maxBorrowLTV)
			if err != nil {
				return fmt.Errorf("invalid max-borrow-ltv: %w", err)
			}
			ltvDec, err := math.LegacyNewDecFromStr(maxLTV)
			if err != nil {
				return fmt.Errorf("invalid max-ltv: %w", err)
			}
			for i, c := range collateral {
				collateralTypes[i] = types.CAsset{
					Asset:        types.NewAsset(c.Info, math.ZeroInt()),
					MaxBorrowLTV: borrowLTVDec,
					MaxLTV:       ltvDec,
					RateIndex:    math.LegacyOneDec(),
				}
			}

			creditPrice, err := math.LegacyNewDecFromStr(args[2])
			if err != nil {
				return fmt.Errorf("invalid credit price: %w", err)
			}
			baseInterestRate, err := math.LegacyNewDecFromStr(args[3])
			if err != nil {
				return fmt.Errorf("invalid base interest rate: %w", err)
			}
			liqQueue, err := cmd.Flags().GetString("liq-queue")
			if err != nil {
				return err
			}

			msg := &types.MsgCreateBasket{
				Sender:           clientCtx.GetFromAddress().String(),
				CollateralTypes:  collateralTypes,
				CreditAsset:      types.NewAsset(types.NewNativeAssetInfo(args[1]), math.ZeroInt()),
				CreditPrice:      creditPrice,
				BaseInterestRate: baseInterestRate,
				LiqQueue:         liqQueue,
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String("max-borrow-ltv", "0.6", "max borrow LTV applied to every seeded collateral type")
	cmd.Flags().String("max-ltv", "0.8", "max LTV applied to every seeded collateral type")
	cmd.Flags().String("liq-queue", "", "address of the bid queue contract backing this basket")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdEditBasket updates basket-wide parameters, owner-only.
func CmdEditBasket() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit-basket [flags]",
		Short: "Edit basket-wide parameters (owner-only)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			var baseInterestRate math.LegacyDec
			if s, _ := cmd.Flags().GetString("base-interest-rate"); s != "" {
				baseInterestRate, err = math.LegacyNewDecFromStr(s)
				if err != nil {
					return fmt.Errorf("invalid base-interest-rate: %w", err)
				}
			}

			msg := &types.MsgEditBasket{
				Sender:           clientCtx.GetFromAddress().String(),
				BaseInterestRate: baseInterestRate,
				Frozen:           boolFlagPtr(cmd, "frozen"),
				NegativeRates:    boolFlagPtr(cmd, "negative-rates"),
				RevToStakers:     boolFlagPtr(cmd, "rev-to-stakers"),
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String("base-interest-rate", "", "new base interest rate")
	cmd.Flags().Bool("frozen", false, "set the basket's frozen flag")
	cmd.Flags().Bool("negative-rates", false, "set the basket's negative-rates flag")
	cmd.Flags().Bool("rev-to-stakers", false, "set the basket's revenue-to-stakers flag")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// boolFlagPtr returns a *bool only if the caller explicitly set the flag, so
// unset flags don't clobber an existing basket setting with a zero value.
func boolFlagPtr(cmd *cobra.Command, name string) *bool {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetBool(name)
	return &v
}

// CmdEditCAsset updates one registered collateral type's LTV bounds,
// owner-only.
func CmdEditCAsset() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit-casset [denom] [max-borrow-ltv] [max-ltv] [flags]",
		Short: "Edit a registered collateral type's LTV bounds (owner-only)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			maxBorrowLTV, err := math.LegacyNewDecFromStr(args[1])
			if err != nil {
				return fmt.Errorf("invalid max-borrow-ltv: %w", err)
			}
			maxLTV, err := math.LegacyNewDecFromStr(args[2])
			if err != nil {
				return fmt.Errorf("invalid max-ltv: %w", err)
			}

			msg := &types.MsgEditCAsset{
				Sender:       clientCtx.GetFromAddress().String(),
				Asset:        types.NewNativeAssetInfo(args[0]),
				MaxBorrowLTV: maxBorrowLTV,
				MaxLTV:       maxLTV,
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdUpdateConfig overwrites the module's owner/collaborator singleton.
func CmdUpdateConfig() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update-config [owner] [flags]",
		Short: "Update the module config singleton (owner-only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			cfg := types.DefaultConfig(args[0])

			msg := &types.MsgUpdateConfig{
				Sender: clientCtx.GetFromAddress().String(),
				Config: cfg,
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}
