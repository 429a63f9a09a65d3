package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/mintvault/cdp-chain/x/cdp/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the MsgServer interface for the
// provided Keeper.
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

func (ms msgServer) Deposit(goCtx context.Context, msg *types.MsgDeposit) (*types.MsgDepositResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, types.ErrUnauthorized
	}
	id, err := ms.Keeper.Deposit(ctx, sender, msg.PositionID, msg.PositionOwner, msg.Funds)
	if err != nil {
		return nil, err
	}
	return &types.MsgDepositResponse{PositionID: id}, nil
}

func (ms msgServer) Withdraw(goCtx context.Context, msg *types.MsgWithdraw) (*types.MsgWithdrawResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, types.ErrUnauthorized
	}
	if err := ms.Keeper.Withdraw(ctx, sender, msg.PositionID, msg.Assets, msg.SendTo); err != nil {
		return nil, err
	}
	return &types.MsgWithdrawResponse{Success: true}, nil
}

func (ms msgServer) IncreaseDebt(goCtx context.Context, msg *types.MsgIncreaseDebt) (*types.MsgIncreaseDebtResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, types.ErrUnauthorized
	}
	credit, err := ms.Keeper.IncreaseDebt(ctx, sender, msg.PositionID, msg.Amount, msg.LTV, msg.MintToAddr)
	if err != nil {
		return nil, err
	}
	return &types.MsgIncreaseDebtResponse{CreditAmount: credit}, nil
}

func (ms msgServer) Repay(goCtx context.Context, msg *types.MsgRepay) (*types.MsgRepayResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, types.ErrUnauthorized
	}
	remaining, err := ms.Keeper.Repay(ctx, sender, msg.PositionID, msg.PositionOwner, msg.Funds, msg.SendExcessTo)
	if err != nil {
		return nil, err
	}
	return &types.MsgRepayResponse{Remaining: remaining}, nil
}

func (ms msgServer) LiqRepay(goCtx context.Context, msg *types.MsgLiqRepay) (*types.MsgLiqRepayResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, types.ErrUnauthorized
	}
	released, err := ms.Keeper.LiqRepay(ctx, sender, msg.PositionID, msg.Funds)
	if err != nil {
		return nil, err
	}
	return &types.MsgLiqRepayResponse{CollateralReleased: released}, nil
}

func (ms msgServer) Accrue(goCtx context.Context, msg *types.MsgAccrue) (*types.MsgAccrueResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, types.ErrUnauthorized
	}
	accrued, err := ms.Keeper.Accrue(ctx, sender, msg.PositionOwner, msg.PositionIDs)
	if err != nil {
		return nil, err
	}
	return &types.MsgAccrueResponse{Accrued: accrued}, nil
}

func (ms msgServer) ClosePosition(goCtx context.Context, msg *types.MsgClosePosition) (*types.MsgClosePositionResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, types.ErrUnauthorized
	}
	sendTo := msg.SendTo
	if sendTo == "" {
		sendTo = msg.Sender
	}
	burned, refunded, err := ms.Keeper.ClosePosition(ctx, sender.String(), msg.PositionID, msg.MaxSpread, sendTo)
	if err != nil {
		return nil, err
	}
	return &types.MsgClosePositionResponse{CreditBurned: burned, Refunded: refunded}, nil
}

func (ms msgServer) Liquidate(goCtx context.Context, msg *types.MsgLiquidate) (*types.MsgLiquidateResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	stage, err := ms.Keeper.Liquidate(ctx, msg.PositionOwner, msg.PositionID, msg.Sender)
	if err != nil {
		return nil, err
	}
	return &types.MsgLiquidateResponse{Stage: string(stage)}, nil
}

func (ms msgServer) MintRevenue(goCtx context.Context, msg *types.MsgMintRevenue) (*types.MsgMintRevenueResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, types.ErrUnauthorized
	}
	minted, err := ms.Keeper.MintRevenue(ctx, sender, msg.SendTo, msg.RepayFor, msg.Amount)
	if err != nil {
		return nil, err
	}
	return &types.MsgMintRevenueResponse{Minted: minted}, nil
}

func (ms msgServer) UpdateConfig(goCtx context.Context, msg *types.MsgUpdateConfig) (*types.MsgUpdateConfigResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, types.ErrUnauthorized
	}
	if err := ms.Keeper.UpdateConfig(ctx, sender, msg.Config); err != nil {
		return nil, err
	}
	return &types.MsgUpdateConfigResponse{}, nil
}

func (ms msgServer) CreateBasket(goCtx context.Context, msg *types.MsgCreateBasket) (*types.MsgCreateBasketResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, types.ErrUnauthorized
	}
	if err := ms.Keeper.CreateBasket(ctx, sender, msg.CollateralTypes, msg.CreditAsset, msg.CreditPrice, msg.BaseInterestRate, msg.LiqQueue); err != nil {
		return nil, err
	}
	return &types.MsgCreateBasketResponse{}, nil
}

func (ms msgServer) EditBasket(goCtx context.Context, msg *types.MsgEditBasket) (*types.MsgEditBasketResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, types.ErrUnauthorized
	}
	if err := ms.Keeper.EditBasket(ctx, sender, msg.CollateralSupplyCaps, msg.MultiAssetSupplyCaps, msg.BaseInterestRate, msg.NegativeRates, msg.Frozen, msg.RevToStakers); err != nil {
		return nil, err
	}
	return &types.MsgEditBasketResponse{}, nil
}

func (ms msgServer) EditCAsset(goCtx context.Context, msg *types.MsgEditCAsset) (*types.MsgEditCAssetResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, types.ErrUnauthorized
	}
	if err := ms.Keeper.EditCAsset(ctx, sender, msg.Asset, msg.MaxBorrowLTV, msg.MaxLTV); err != nil {
		return nil, err
	}
	return &types.MsgEditCAssetResponse{}, nil
}

func (ms msgServer) CallbackBadDebtCheck(goCtx context.Context, msg *types.MsgCallbackBadDebtCheck) (*types.MsgCallbackBadDebtCheckResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, types.ErrUnauthorized
	}
	owner := ms.Keeper.FindBadDebtPositionOwner(ctx, msg.PositionID)
	resolved, err := ms.Keeper.CallbackBadDebtCheck(ctx, sender, owner, msg.PositionID)
	if err != nil {
		return nil, err
	}
	return &types.MsgCallbackBadDebtCheckResponse{Resolved: resolved}, nil
}
