package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
)

// RegisterCodec registers concrete types on the LegacyAmino codec
func RegisterCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgDeposit{}, "cdp/Deposit", nil)
	cdc.RegisterConcrete(&MsgWithdraw{}, "cdp/Withdraw", nil)
	cdc.RegisterConcrete(&MsgIncreaseDebt{}, "cdp/IncreaseDebt", nil)
	cdc.RegisterConcrete(&MsgRepay{}, "cdp/Repay", nil)
	cdc.RegisterConcrete(&MsgLiqRepay{}, "cdp/LiqRepay", nil)
	cdc.RegisterConcrete(&MsgAccrue{}, "cdp/Accrue", nil)
	cdc.RegisterConcrete(&MsgClosePosition{}, "cdp/ClosePosition", nil)
	cdc.RegisterConcrete(&MsgLiquidate{}, "cdp/Liquidate", nil)
	cdc.RegisterConcrete(&MsgMintRevenue{}, "cdp/MintRevenue", nil)
	cdc.RegisterConcrete(&MsgUpdateConfig{}, "cdp/UpdateConfig", nil)
	cdc.RegisterConcrete(&MsgCreateBasket{}, "cdp/CreateBasket", nil)
	cdc.RegisterConcrete(&MsgEditBasket{}, "cdp/EditBasket", nil)
	cdc.RegisterConcrete(&MsgEditCAsset{}, "cdp/EditCAsset", nil)
	cdc.RegisterConcrete(&MsgCallbackBadDebtCheck{}, "cdp/CallbackBadDebtCheck", nil)
}

// RegisterInterfaces registers the module interfaces
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	// Hand-rolled message types don't go through protobuf interface registration.
}

var (
	Amino     = codec.NewLegacyAmino()
	ModuleCdc = codec.NewProtoCodec(cdctypes.NewInterfaceRegistry())
)

func init() {
	RegisterCodec(Amino)
	Amino.Seal()
}
