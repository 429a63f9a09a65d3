package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/mintvault/cdp-chain/x/cdp/types"
)

type queryServer struct {
	Keeper
}

// NewQueryServerImpl returns an implementation of the QueryServer interface
// for the provided Keeper.
func NewQueryServerImpl(keeper Keeper) types.QueryServer {
	return &queryServer{Keeper: keeper}
}

var _ types.QueryServer = queryServer{}

func (qs queryServer) Config(goCtx context.Context, req *types.QueryConfigRequest) (*types.QueryConfigResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	return &types.QueryConfigResponse{Config: qs.Keeper.GetConfig(ctx)}, nil
}

func (qs queryServer) Basket(goCtx context.Context, req *types.QueryBasketRequest) (*types.QueryBasketResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	basket, ok := qs.Keeper.GetBasket(ctx)
	if !ok {
		return nil, types.ErrBasketNotFound
	}
	return &types.QueryBasketResponse{Basket: basket}, nil
}

func (qs queryServer) Position(goCtx context.Context, req *types.QueryPositionRequest) (*types.QueryPositionResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	position, ok := qs.Keeper.GetPosition(ctx, req.Owner, req.ID)
	if !ok {
		return nil, types.ErrPositionNotFound
	}
	return &types.QueryPositionResponse{Position: position}, nil
}

func (qs queryServer) Positions(goCtx context.Context, req *types.QueryPositionsRequest) (*types.QueryPositionsResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	positions, next := qs.Keeper.GetAllPositions(ctx, req.StartAfterOwner, req.Limit)
	return &types.QueryPositionsResponse{Positions: positions, NextCursor: next}, nil
}
