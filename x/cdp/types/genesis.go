package types

// GenesisState represents the cdp module's genesis state.
type GenesisState struct {
	Config    Config     `json:"config"`
	Basket    *Basket    `json:"basket,omitempty"`
	Positions []Position `json:"positions"`
}

// ProtoMessage implements proto.Message
func (gs *GenesisState) ProtoMessage() {}

// Reset implements proto.Message
func (gs *GenesisState) Reset() { *gs = GenesisState{} }

// String implements proto.Message
func (gs *GenesisState) String() string { return "cdp_genesis" }

// DefaultGenesisState returns the default (owner-less, basket-less) genesis state.
func DefaultGenesisState() *GenesisState {
	return &GenesisState{
		Config:    DefaultConfig(""),
		Positions: []Position{},
	}
}
