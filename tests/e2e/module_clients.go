package e2e

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"

	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/client"
	sdk "github.com/cosmos/cosmos-sdk/types"

	dextypes "github.com/mintvault/cdp-chain/x/dex/types"
	equitytypes "github.com/mintvault/cdp-chain/x/equity/types"
	governancetypes "github.com/mintvault/cdp-chain/x/governance/types"
)

// HODLClient provides test client for HODL module
type HODLClient struct {
	clientCtx client.Context
}

// NewHODLClient creates a new HODL client
func NewHODLClient(clientCtx client.Context) *HODLClient {
	return &HODLClient{clientCtx: clientCtx}
}

// MintHODL mints HODL stablecoins - stub implementation
func (c *HODLClient) MintHODL(ctx context.Context, minter string, recipient string, amount sdk.Coin) (*sdk.TxResponse, error) {
	_ = ctx
	_ = minter
	_ = recipient
	_ = amount
	// Mock implementation for testing
	return &sdk.TxResponse{
		TxHash: "mock-mint-tx-hash",
		Code:   0,
		Height: 1,
	}, nil
}

// BurnHODL burns HODL stablecoins - stub implementation
func (c *HODLClient) BurnHODL(ctx context.Context, burner string, amount sdk.Coin) (*sdk.TxResponse, error) {
	_ = ctx
	_ = burner
	_ = amount
	// Mock implementation for testing
	return &sdk.TxResponse{
		TxHash: "mock-burn-tx-hash",
		Code:   0,
		Height: 1,
	}, nil
}

// GetSupply queries HODL supply - stub implementation
func (c *HODLClient) GetSupply(ctx context.Context) (math.Int, error) {
	_ = ctx
	return math.ZeroInt(), nil
}

// GetBalance queries HODL balance for an address - stub implementation
func (c *HODLClient) GetBalance(ctx context.Context, address string) (math.Int, error) {
	_ = ctx
	_ = address
	return math.ZeroInt(), nil
}

// EquityClient provides test client for Equity module
type EquityClient struct {
	clientCtx client.Context
}

// NewEquityClient creates a new Equity client
func NewEquityClient(clientCtx client.Context) *EquityClient {
	return &EquityClient{clientCtx: clientCtx}
}

// CreateCompany creates a new company - stub implementation
func (c *EquityClient) CreateCompany(ctx context.Context, creator string, company equitytypes.Company) (*sdk.TxResponse, error) {
	_ = ctx
	_ = creator
	_ = company
	return &sdk.TxResponse{
		TxHash: "mock-company-create-tx-hash",
		Code:   0,
		Height: 1,
	}, nil
}

// IssueShares issues shares to investors - stub implementation
func (c *EquityClient) IssueShares(ctx context.Context, issuer string, recipient string, symbol string, shares uint64) (*sdk.TxResponse, error) {
	_ = ctx
	_ = issuer
	_ = recipient
	_ = symbol
	_ = shares
	return &sdk.TxResponse{
		TxHash: "mock-issue-shares-tx-hash",
		Code:   0,
		Height: 1,
	}, nil
}

// TransferShares transfers shares between accounts - stub implementation
func (c *EquityClient) TransferShares(ctx context.Context, from string, to string, symbol string, shares uint64) (*sdk.TxResponse, error) {
	_ = ctx
	_ = from
	_ = to
	_ = symbol
	_ = shares
	return &sdk.TxResponse{
		TxHash: "mock-transfer-shares-tx-hash",
		Code:   0,
		Height: 1,
	}, nil
}

// GetCompany queries company information - stub implementation
func (c *EquityClient) GetCompany(ctx context.Context, symbol string) (interface{}, error) {
	_ = ctx
	_ = symbol
	return nil, nil
}

// GetShareholdings queries shareholdings for an address - stub implementation
func (c *EquityClient) GetShareholdings(ctx context.Context, address string) (interface{}, error) {
	_ = ctx
	_ = address
	return nil, nil
}

// DEXClient provides test client for DEX module
type DEXClient struct {
	clientCtx client.Context
}

// NewDEXClient creates a new DEX client
func NewDEXClient(clientCtx client.Context) *DEXClient {
	return &DEXClient{clientCtx: clientCtx}
}

// PlaceOrder places a trading order - stub implementation
func (c *DEXClient) PlaceOrder(ctx context.Context, trader string, order dextypes.Order) (*sdk.TxResponse, error) {
	_ = ctx
	_ = trader
	_ = order
	return &sdk.TxResponse{
		TxHash: "mock-place-order-tx-hash",
		Code:   0,
		Height: 1,
	}, nil
}

// CancelOrder cancels an existing order - stub implementation
func (c *DEXClient) CancelOrder(ctx context.Context, trader string, orderID string) (*sdk.TxResponse, error) {
	_ = ctx
	_ = trader
	_ = orderID
	return &sdk.TxResponse{
		TxHash: "mock-cancel-order-tx-hash",
		Code:   0,
		Height: 1,
	}, nil
}

// GetOrderBook queries order book for a symbol - stub implementation
func (c *DEXClient) GetOrderBook(ctx context.Context, symbol string) (interface{}, error) {
	_ = ctx
	_ = symbol
	return nil, nil
}

// GetTradeHistory queries trade history - stub implementation
func (c *DEXClient) GetTradeHistory(ctx context.Context, symbol string, limit uint64) (interface{}, error) {
	_ = ctx
	_ = symbol
	_ = limit
	return nil, nil
}

// GetLiquidityPools queries all liquidity pools - stub implementation
func (c *DEXClient) GetLiquidityPools(ctx context.Context) (interface{}, error) {
	_ = ctx
	return nil, nil
}

// GovernanceClient provides test client for Governance module
type GovernanceClient struct {
	clientCtx client.Context
}

// NewGovernanceClient creates a new Governance client
func NewGovernanceClient(clientCtx client.Context) *GovernanceClient {
	return &GovernanceClient{clientCtx: clientCtx}
}

// SubmitProposal submits a governance proposal - stub implementation
func (c *GovernanceClient) SubmitProposal(ctx context.Context, proposer string, proposal governancetypes.Proposal, deposit sdk.Coin) (*sdk.TxResponse, error) {
	_ = ctx
	_ = proposer
	_ = proposal
	_ = deposit
	return &sdk.TxResponse{
		TxHash: "mock-submit-proposal-tx-hash",
		Code:   0,
		Height: 1,
	}, nil
}

// Vote votes on a proposal - stub implementation
func (c *GovernanceClient) Vote(ctx context.Context, voter string, proposalID uint64, option governancetypes.VoteOption) (*sdk.TxResponse, error) {
	_ = ctx
	_ = voter
	_ = proposalID
	_ = option
	return &sdk.TxResponse{
		TxHash: "mock-vote-tx-hash",
		Code:   0,
		Height: 1,
	}, nil
}

// Deposit deposits tokens to a proposal - stub implementation
func (c *GovernanceClient) Deposit(ctx context.Context, depositor string, proposalID uint64, amount sdk.Coin) (*sdk.TxResponse, error) {
	_ = ctx
	_ = depositor
	_ = proposalID
	_ = amount
	return &sdk.TxResponse{
		TxHash: "mock-deposit-tx-hash",
		Code:   0,
		Height: 1,
	}, nil
}

// GetProposal queries a proposal by ID - stub implementation
func (c *GovernanceClient) GetProposal(ctx context.Context, proposalID uint64) (interface{}, error) {
	_ = ctx
	_ = proposalID
	return nil, nil
}

// GetProposals queries all proposals - stub implementation
func (c *GovernanceClient) GetProposals(ctx context.Context, status governancetypes.ProposalStatus) (interface{}, error) {
	_ = ctx
	_ = status
	return nil, nil
}

// GetVote queries a vote - stub implementation
func (c *GovernanceClient) GetVote(ctx context.Context, proposalID uint64, voter string) (interface{}, error) {
	_ = ctx
	_ = proposalID
	_ = voter
	return nil, nil
}

// TestHelper provides common testing utilities
type TestHelper struct {
	suite *E2ETestSuite
}

// NewTestHelper creates a new test helper
func NewTestHelper(suite *E2ETestSuite) *TestHelper {
	return &TestHelper{suite: suite}
}

// WaitForBlocks waits for a specified number of blocks
func (h *TestHelper) WaitForBlocks(blocks int64) {
	time.Sleep(time.Duration(blocks) * 100 * time.Millisecond) // Reduced for testing
}

// AssertBalance asserts that an account has expected balance
func (h *TestHelper) AssertBalance(address string, expectedBalance sdk.Coin) {
	_ = address
	_ = expectedBalance
}

// AssertTxSuccess asserts that a transaction was successful
func (h *TestHelper) AssertTxSuccess(txResponse *sdk.TxResponse) {
	if txResponse.Code != 0 {
		h.suite.T().Fatalf("Transaction failed: %s", txResponse.RawLog)
	}
}

// GenerateRandomAddress generates a random test address
func (h *TestHelper) GenerateRandomAddress() string {
	bytes := make([]byte, 20)
	rand.Read(bytes)
	return "Hodl" + hex.EncodeToString(bytes)
}

// CreateTestCoin creates a test coin with specified amount
func (h *TestHelper) CreateTestCoin(denom string, amount int64) sdk.Coin {
	return sdk.NewInt64Coin(denom, amount)
}
