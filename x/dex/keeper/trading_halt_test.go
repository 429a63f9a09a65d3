package keeper_test

import (
	"testing"
)

// TestTradingHaltPreventsOrders tests that orders are rejected when trading is halted
func TestTradingHaltPreventsOrders(t *testing.T) {
	// This test would require a full test setup with equity keeper integration
	// For now, this demonstrates the expected behavior
	t.Skip("Requires full integration test setup with equity keeper")

	/*
		Expected test flow:
		1. Create a company and list it on DEX
		2. Create a market for the company's equity
		3. Place a valid order - should succeed
		4. Halt trading for the company (via equity keeper)
		5. Attempt to place another order - should be rejected with ErrTradingHalted
		6. Resume trading
		7. Place another order - should succeed

		Example assertions:
		- Before halt: order.Status == OrderStatusOpen
		- During halt: err == types.ErrTradingHalted
		- After resume: order.Status == OrderStatusOpen
	*/
}

// TestTradingHaltSkipsMatching tests that matching engine skips halted equity
func TestTradingHaltSkipsMatching(t *testing.T) {
	t.Skip("Requires full integration test setup with equity keeper")

	/*
		Expected test flow:
		1. Create a company and list it
		2. Place buy and sell orders that would normally match
		3. Halt trading
		4. Trigger matching engine
		5. Verify no trades were executed (orders remain open)
		6. Resume trading
		7. Trigger matching engine
		8. Verify trades were executed

		Example assertions:
		- During halt: len(trades) == 0, order.FilledQuantity == 0
		- After resume: len(trades) > 0, order.Status == OrderStatusFilled
	*/
}

// TestCancelOrdersForCompany tests bulk order cancellation when trading is halted
func TestCancelOrdersForCompany(t *testing.T) {
	t.Skip("Requires full integration test setup")

	/*
		Expected test flow:
		1. Create a company
		2. Place multiple open orders for the company's equity
		3. Call CancelOrdersForCompany
		4. Verify all orders are cancelled
		5. Verify funds are unlocked
		6. Verify cancellation events are emitted

		Example assertions:
		- Before: allOrders[i].Status == OrderStatusOpen
		- After: allOrders[i].Status == OrderStatusCancelled
		- Events emitted: "trading_halt_orders_cancelled" with correct count
	*/
}

// Example of what the actual test implementation would look like:
/*
func TestTradingHaltIntegration(t *testing.T) {
	// Setup test environment
	ctx := sdk.Context{}
	dexKeeper := keeper.NewKeeper(...)
	equityKeeper := equitykeeper.NewKeeper(...)

	// Create company
	companyID := uint64(1)
	symbol := "TESTCO"
	company := equitytypes.Company{
		ID:     companyID,
		Symbol: symbol,
		Status: equitytypes.CompanyStatusActive,
	}
	equityKeeper.SetCompany(ctx, company)

	// Create market
	err := dexKeeper.CreateMarket(ctx, symbol, "HODL", ...)
	require.NoError(t, err)

	// Place order before halt
	userAddr := sdk.AccAddress("user1")
	order1, err := dexKeeper.PlaceOrder(
		ctx,
		userAddr.String(),
		symbol+"/HODL",
		types.OrderSideBuy,
		types.OrderTypeLimit,
		types.TimeInForceGTC,
		math.NewInt(100),
		math.LegacyNewDec(10),
		math.LegacyZeroDec(),
		"",
	)
	require.NoError(t, err)
	require.Equal(t, types.OrderStatusOpen, order1.Status)

	// Halt trading
	halt := equitytypes.TradingHalt{
		CompanyID: companyID,
		HaltedAt:  ctx.BlockTime(),
		Reason:    "fraud investigation",
		HaltedBy:  "governance",
	}
	equityKeeper.SetTradingHalt(ctx, halt)

	// Verify trading is halted
	require.True(t, equityKeeper.IsTradingHalted(ctx, companyID))

	// Try to place order during halt
	_, err = dexKeeper.PlaceOrder(
		ctx,
		userAddr.String(),
		symbol+"/HODL",
		types.OrderSideBuy,
		types.OrderTypeLimit,
		types.TimeInForceGTC,
		math.NewInt(100),
		math.LegacyNewDec(10),
		math.LegacyZeroDec(),
		"",
	)
	require.Error(t, err)
	require.Equal(t, types.ErrTradingHalted, err)

	// Check events
	events := ctx.EventManager().Events()
	found := false
	for _, event := range events {
		if event.Type == types.EventTypeOrderRejected {
			for _, attr := range event.Attributes {
				if attr.Key == "reason" && attr.Value == "trading_halted" {
					found = true
					break
				}
			}
		}
	}
	require.True(t, found, "Expected order_rejected event with reason=trading_halted")

	// Cancel existing orders
	err = dexKeeper.CancelOrdersForCompany(ctx, companyID, symbol)
	require.NoError(t, err)

	// Verify order was cancelled
	retrievedOrder, found := dexKeeper.GetOrder(ctx, order1.ID)
	require.True(t, found)
	require.Equal(t, types.OrderStatusCancelled, retrievedOrder.Status)

	// Resume trading
	equityKeeper.DeleteTradingHalt(ctx, companyID)
	require.False(t, equityKeeper.IsTradingHalted(ctx, companyID))

	// Place order after resume
	order2, err := dexKeeper.PlaceOrder(
		ctx,
		userAddr.String(),
		symbol+"/HODL",
		types.OrderSideBuy,
		types.OrderTypeLimit,
		types.TimeInForceGTC,
		math.NewInt(100),
		math.LegacyNewDec(10),
		math.LegacyZeroDec(),
		"",
	)
	require.NoError(t, err)
	require.Equal(t, types.OrderStatusOpen, order2.Status)
}
*/
