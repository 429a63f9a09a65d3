// Package config loads node-level bootstrap defaults for the CDP engine
// from a YAML file or environment, the same way palaseus-Adrenochain's
// cmd/gochain wires viper for its node config: these values only seed
// genesis/CLI defaults, never override the on-chain Config singleton once
// the chain is running.
package config

import (
	"cosmossdk.io/math"
	"github.com/spf13/viper"

	"github.com/mintvault/cdp-chain/x/cdp/types"
)

// BootstrapDefaults holds the subset of types.Config fields a node operator
// plausibly wants to set before genesis (oracle endpoint timing, fee rates)
// without hand-editing the genesis JSON.
type BootstrapDefaults struct {
	TwapTimeframeSeconds   uint64
	OracleTimeLimitSeconds uint64
	CallerFeePercent       math.LegacyDec
	LiqFeePercent          math.LegacyDec
	CPCMultiplier          math.LegacyDec
	RateSlopeMultiplier    math.LegacyDec
	DebtMinimum            math.Int
	BaseDebtCapMultiplier  math.LegacyDec
}

// Load reads cdp.* keys from the process viper instance (already populated
// by the node binary's root command from its config file and environment)
// and falls back to types.DefaultConfig's values for anything unset.
func Load(v *viper.Viper) BootstrapDefaults {
	d := types.DefaultConfig("")
	out := BootstrapDefaults{
		TwapTimeframeSeconds:   d.TwapTimeframeSeconds,
		OracleTimeLimitSeconds: d.OracleTimeLimitSeconds,
		CallerFeePercent:       d.CallerFeePercent,
		LiqFeePercent:          d.LiqFeePercent,
		CPCMultiplier:          d.CPCMultiplier,
		RateSlopeMultiplier:    d.RateSlopeMultiplier,
		DebtMinimum:            d.DebtMinimum,
		BaseDebtCapMultiplier:  d.BaseDebtCapMultiplier,
	}
	if v == nil {
		return out
	}

	if v.IsSet("cdp.twap_timeframe_seconds") {
		out.TwapTimeframeSeconds = v.GetUint64("cdp.twap_timeframe_seconds")
	}
	if v.IsSet("cdp.oracle_time_limit_seconds") {
		out.OracleTimeLimitSeconds = v.GetUint64("cdp.oracle_time_limit_seconds")
	}
	if s := v.GetString("cdp.caller_fee_percent"); s != "" {
		if dec, err := math.LegacyNewDecFromStr(s); err == nil {
			out.CallerFeePercent = dec
		}
	}
	if s := v.GetString("cdp.liq_fee_percent"); s != "" {
		if dec, err := math.LegacyNewDecFromStr(s); err == nil {
			out.LiqFeePercent = dec
		}
	}
	if s := v.GetString("cdp.cpc_multiplier"); s != "" {
		if dec, err := math.LegacyNewDecFromStr(s); err == nil {
			out.CPCMultiplier = dec
		}
	}
	if s := v.GetString("cdp.rate_slope_multiplier"); s != "" {
		if dec, err := math.LegacyNewDecFromStr(s); err == nil {
			out.RateSlopeMultiplier = dec
		}
	}
	if s := v.GetString("cdp.debt_minimum"); s != "" {
		if amt, ok := math.NewIntFromString(s); ok {
			out.DebtMinimum = amt
		}
	}
	if s := v.GetString("cdp.base_debt_cap_multiplier"); s != "" {
		if dec, err := math.LegacyNewDecFromStr(s); err == nil {
			out.BaseDebtCapMultiplier = dec
		}
	}
	return out
}

// ApplyTo overlays the bootstrap defaults onto a genesis Config, leaving
// owner/collaborator addresses (set separately, per deployment) untouched.
func (d BootstrapDefaults) ApplyTo(cfg types.Config) types.Config {
	cfg.TwapTimeframeSeconds = d.TwapTimeframeSeconds
	cfg.OracleTimeLimitSeconds = d.OracleTimeLimitSeconds
	cfg.CallerFeePercent = d.CallerFeePercent
	cfg.LiqFeePercent = d.LiqFeePercent
	cfg.CPCMultiplier = d.CPCMultiplier
	cfg.RateSlopeMultiplier = d.RateSlopeMultiplier
	cfg.DebtMinimum = d.DebtMinimum
	cfg.BaseDebtCapMultiplier = d.BaseDebtCapMultiplier
	return cfg
}
