package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	// ModuleName defines the module name
	ModuleName = "cdp"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName

	// QuerierRoute defines the module's query routing key
	QuerierRoute = ModuleName

	// MemStoreKey defines the in-memory store key
	MemStoreKey = "mem_cdp"
)

// Store key prefixes
var (
	// ConfigKey stores the singleton engine configuration
	ConfigKey = []byte{0x01}

	// BasketKey stores the singleton collateral/credit basket
	BasketKey = []byte{0x02}

	// PositionPrefix stores positions keyed by (owner, id)
	PositionPrefix = []byte{0x03}

	// OwnerPositionCounterPrefix stores the next position id for an owner
	OwnerPositionCounterPrefix = []byte{0x04}

	// LiquidationPropagationPrefix stores in-flight liquidation continuations, keyed by reply id
	LiquidationPropagationPrefix = []byte{0x05}

	// WithdrawPropagationPrefix stores in-flight withdraw continuations, keyed by reply id
	WithdrawPropagationPrefix = []byte{0x06}

	// ClosePositionPropagationPrefix stores in-flight close-position continuations, keyed by reply id
	ClosePositionPropagationPrefix = []byte{0x07}

	// PositionLiquidationLockPrefix marks a position as having an in-flight liquidation
	PositionLiquidationLockPrefix = []byte{0x08}
)

// GetPositionKey returns the store key for a position identified by (owner, id)
func GetPositionKey(owner string, id uint64) []byte {
	key := append([]byte{}, PositionPrefix...)
	key = append(key, []byte(owner)...)
	key = append(key, []byte(":")...)
	return append(key, sdk.Uint64ToBigEndian(id)...)
}

// GetOwnerPositionPrefixKey returns the prefix covering every position owned by owner
func GetOwnerPositionPrefixKey(owner string) []byte {
	key := append([]byte{}, PositionPrefix...)
	key = append(key, []byte(owner)...)
	return append(key, []byte(":")...)
}

// GetOwnerPositionCounterKey returns the store key for an owner's next-id counter
func GetOwnerPositionCounterKey(owner string) []byte {
	return append(OwnerPositionCounterPrefix, []byte(owner)...)
}

// GetLiquidationPropagationKey returns the store key for a liquidation continuation record
func GetLiquidationPropagationKey(replyID string) []byte {
	return append(LiquidationPropagationPrefix, []byte(replyID)...)
}

// GetWithdrawPropagationKey returns the store key for a withdraw continuation record
func GetWithdrawPropagationKey(replyID string) []byte {
	return append(WithdrawPropagationPrefix, []byte(replyID)...)
}

// GetClosePositionPropagationKey returns the store key for a close-position continuation record
func GetClosePositionPropagationKey(replyID string) []byte {
	return append(ClosePositionPropagationPrefix, []byte(replyID)...)
}

// GetPositionLiquidationLockKey returns the store key for a position's in-flight liquidation lock
func GetPositionLiquidationLockKey(owner string, id uint64) []byte {
	key := append([]byte{}, PositionLiquidationLockPrefix...)
	key = append(key, []byte(owner)...)
	key = append(key, []byte(":")...)
	return append(key, sdk.Uint64ToBigEndian(id)...)
}
