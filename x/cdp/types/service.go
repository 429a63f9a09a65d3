package types

import (
	"context"
)

// MsgServer defines the cdp module's Msg service
type MsgServer interface {
	Deposit(context.Context, *MsgDeposit) (*MsgDepositResponse, error)
	Withdraw(context.Context, *MsgWithdraw) (*MsgWithdrawResponse, error)
	IncreaseDebt(context.Context, *MsgIncreaseDebt) (*MsgIncreaseDebtResponse, error)
	Repay(context.Context, *MsgRepay) (*MsgRepayResponse, error)
	LiqRepay(context.Context, *MsgLiqRepay) (*MsgLiqRepayResponse, error)
	Accrue(context.Context, *MsgAccrue) (*MsgAccrueResponse, error)
	ClosePosition(context.Context, *MsgClosePosition) (*MsgClosePositionResponse, error)
	Liquidate(context.Context, *MsgLiquidate) (*MsgLiquidateResponse, error)
	MintRevenue(context.Context, *MsgMintRevenue) (*MsgMintRevenueResponse, error)
	UpdateConfig(context.Context, *MsgUpdateConfig) (*MsgUpdateConfigResponse, error)
	CreateBasket(context.Context, *MsgCreateBasket) (*MsgCreateBasketResponse, error)
	EditBasket(context.Context, *MsgEditBasket) (*MsgEditBasketResponse, error)
	EditCAsset(context.Context, *MsgEditCAsset) (*MsgEditCAssetResponse, error)
	CallbackBadDebtCheck(context.Context, *MsgCallbackBadDebtCheck) (*MsgCallbackBadDebtCheckResponse, error)
}

// QueryServer defines the cdp module's read-only query service
type QueryServer interface {
	Config(context.Context, *QueryConfigRequest) (*QueryConfigResponse, error)
	Basket(context.Context, *QueryBasketRequest) (*QueryBasketResponse, error)
	Position(context.Context, *QueryPositionRequest) (*QueryPositionResponse, error)
	Positions(context.Context, *QueryPositionsRequest) (*QueryPositionsResponse, error)
}

type QueryConfigRequest struct{}
type QueryConfigResponse struct {
	Config Config `json:"config"`
}

type QueryBasketRequest struct{}
type QueryBasketResponse struct {
	Basket Basket `json:"basket"`
}

type QueryPositionRequest struct {
	Owner string `json:"owner"`
	ID    uint64 `json:"id"`
}
type QueryPositionResponse struct {
	Position Position `json:"position"`
}

type QueryPositionsRequest struct {
	StartAfterOwner string `json:"start_after_owner,omitempty"`
	Limit           uint64 `json:"limit,omitempty"`
}
type QueryPositionsResponse struct {
	Positions  []Position `json:"positions"`
	NextCursor string     `json:"next_cursor,omitempty"`
}
