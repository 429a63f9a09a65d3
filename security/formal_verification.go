package security

import (
	"context"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"math/big"
	"strings"
	"sync"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// FormalVerificationFramework provides formal verification capabilities for ShareHODL protocol
type FormalVerificationFramework struct {
	verifiers         map[string]FormalVerifier
	properties        []SecurityProperty
	proofs            []VerificationProof
	config            VerificationConfig
	theoremProver     TheoremProver
	modelChecker      ModelChecker
	symbolicExecutor  SymbolicExecutor
	mu                sync.RWMutex
	isVerifying       bool
	lastVerification  time.Time
	provenProperties  int
	failedProperties  int
}

// FormalVerifier interface for different verification approaches
type FormalVerifier interface {
	GetName() string
	GetDescription() string
	GetSupportedProperties() []PropertyType
	Verify(ctx context.Context, property SecurityProperty, target VerificationTarget) (*VerificationResult, error)
	Configure(config map[string]interface{}) error
	GetVersion() string
}

// SecurityProperty represents a formal security property to be verified
type SecurityProperty struct {
	ID              string             `json:"id"`
	Name            string             `json:"name"`
	Description     string             `json:"description"`
	Type            PropertyType       `json:"type"`
	Specification   string             `json:"specification"`
	Preconditions   []string           `json:"preconditions"`
	Postconditions  []string           `json:"postconditions"`
	Invariants      []string           `json:"invariants"`
	Formula         LogicalFormula     `json:"formula"`
	Priority        Priority           `json:"priority"`
	Module          string             `json:"module"`
	Function        string             `json:"function"`
	Parameters      map[string]string  `json:"parameters"`
	Created         time.Time          `json:"created"`
	Updated         time.Time          `json:"updated"`
}

// VerificationResult represents the result of formal verification
type VerificationResult struct {
	PropertyID      string               `json:"property_id"`
	VerifierName    string               `json:"verifier_name"`
	Status          VerificationStatus   `json:"status"`
	Timestamp       time.Time            `json:"timestamp"`
	Duration        time.Duration        `json:"duration"`
	Proof           *VerificationProof   `json:"proof,omitempty"`
	Counterexample  *Counterexample      `json:"counterexample,omitempty"`
	Confidence      float64              `json:"confidence"`
	Coverage        float64              `json:"coverage"`
	Complexity      int                  `json:"complexity"`
	Resources       ResourceUsage        `json:"resources"`
	Diagnostics     []string             `json:"diagnostics"`
	Recommendations []string             `json:"recommendations"`
}

// VerificationProof represents a formal proof
type VerificationProof struct {
	ID              string         `json:"id"`
	PropertyID      string         `json:"property_id"`
	Type            ProofType      `json:"type"`
	Steps           []ProofStep    `json:"steps"`
	Theorem         string         `json:"theorem"`
	Axioms          []string       `json:"axioms"`
	Lemmas          []string       `json:"lemmas"`
	Proof           string         `json:"proof"`
	IsValid         bool           `json:"is_valid"`
	Verified        time.Time      `json:"verified"`
	CheckedBy       string         `json:"checked_by"`
}

// ProofStep represents a step in a formal proof
type ProofStep struct {
	StepNumber  int    `json:"step_number"`
	Rule        string `json:"rule"`
	Statement   string `json:"statement"`
	Justification string `json:"justification"`
	References  []string `json:"references"`
}

// Counterexample represents a counterexample when verification fails
type Counterexample struct {
	Type        string            `json:"type"`
	Description string            `json:"description"`
	Input       map[string]string `json:"input"`
	Execution   []ExecutionStep   `json:"execution"`
	Violation   string            `json:"violation"`
	Trace       []TraceElement    `json:"trace"`
}

// Configuration and types
type VerificationConfig struct {
	EnabledVerifiers    []string       `json:"enabled_verifiers"`
	TimeoutPerProperty  time.Duration  `json:"timeout_per_property"`
	MaxMemoryUsage      int64          `json:"max_memory_usage"`
	ProofSearchDepth    int            `json:"proof_search_depth"`
	ModelBoundingDepth  int            `json:"model_bounding_depth"`
	SymbolicExecutionDepth int         `json:"symbolic_execution_depth"`
	ParallelVerification bool          `json:"parallel_verification"`
	GenerateCounterexamples bool       `json:"generate_counterexamples"`
	ProofFormat         string         `json:"proof_format"`
	OutputDirectory     string         `json:"output_directory"`
}

type PropertyType string

const (
	PropertySafety           PropertyType = "safety"
	PropertyLiveness         PropertyType = "liveness"
	PropertyInvariant        PropertyType = "invariant"
	PropertyAuthenticity     PropertyType = "authenticity"
	PropertyIntegrity        PropertyType = "integrity"
	PropertyConfidentiality  PropertyType = "confidentiality"
	PropertyAccessControl    PropertyType = "access_control"
	PropertyBusinessLogic    PropertyType = "business_logic"
	PropertyConsistency      PropertyType = "consistency"
	PropertyFairness         PropertyType = "fairness"
)

type VerificationStatus string

const (
	StatusProven       VerificationStatus = "proven"
	StatusDisproven    VerificationStatus = "disproven"
	StatusTimeout      VerificationStatus = "timeout"
	StatusError        VerificationStatus = "error"
	StatusIncomplete   VerificationStatus = "incomplete"
	StatusUnknown      VerificationStatus = "unknown"
)

type ProofType string

const (
	ProofTypeInductive    ProofType = "inductive"
	ProofTypeBoundedModel ProofType = "bounded_model"
	ProofTypeSymbolic     ProofType = "symbolic"
	ProofTypeDeductive    ProofType = "deductive"
	ProofTypeConstructive ProofType = "constructive"
)

type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

type LogicalFormula struct {
	Type        string            `json:"type"`
	Expression  string            `json:"expression"`
	Variables   map[string]string `json:"variables"`
	Quantifiers []string          `json:"quantifiers"`
	Connectives []string          `json:"connectives"`
}

type VerificationTarget struct {
	Type       string            `json:"type"`
	ModulePath string            `json:"module_path"`
	Function   string            `json:"function"`
	Contract   string            `json:"contract"`
	Source     string            `json:"source"`
	Metadata   map[string]string `json:"metadata"`
}

type ExecutionStep struct {
	StepNumber int               `json:"step_number"`
	Instruction string           `json:"instruction"`
	State      map[string]string `json:"state"`
	Input      map[string]string `json:"input"`
	Output     map[string]string `json:"output"`
}

type TraceElement struct {
	Location string            `json:"location"`
	Values   map[string]string `json:"values"`
	Action   string            `json:"action"`
}

type ResourceUsage struct {
	CPUTime       time.Duration `json:"cpu_time"`
	MemoryUsage   int64         `json:"memory_usage"`
	ProofSteps    int           `json:"proof_steps"`
	SMTCalls      int           `json:"smt_calls"`
	ModelChecks   int           `json:"model_checks"`
}

// Theorem prover interface
type TheoremProver interface {
	ProveTheorem(theorem string, axioms []string) (*ProofResult, error)
	CheckProof(proof VerificationProof) (bool, error)
	SimplifyFormula(formula LogicalFormula) (LogicalFormula, error)
}

// Model checker interface
type ModelChecker interface {
	CheckModel(model ModelSpecification, property SecurityProperty) (*ModelCheckingResult, error)
	GenerateCounterexample(model ModelSpecification, property SecurityProperty) (*Counterexample, error)
	BoundedModelCheck(model ModelSpecification, property SecurityProperty, bound int) (*ModelCheckingResult, error)
}

// Symbolic executor interface
type SymbolicExecutor interface {
	Execute(code string, constraints []string) (*SymbolicExecutionResult, error)
	GenerateTestCases(code string, coverage float64) ([]TestCase, error)
	FindVulnerabilities(code string) ([]SymbolicVulnerability, error)
}

// Supporting types
type ProofResult struct {
	IsValid     bool          `json:"is_valid"`
	Proof       string        `json:"proof"`
	Steps       []ProofStep   `json:"steps"`
	Resources   ResourceUsage `json:"resources"`
	Error       string        `json:"error,omitempty"`
}

type ModelSpecification struct {
	States      []string          `json:"states"`
	Transitions []string          `json:"transitions"`
	Initial     []string          `json:"initial"`
	Properties  []string          `json:"properties"`
	Variables   map[string]string `json:"variables"`
}

type ModelCheckingResult struct {
	Satisfied      bool              `json:"satisfied"`
	Counterexample *Counterexample   `json:"counterexample,omitempty"`
	Statistics     ModelStatistics   `json:"statistics"`
}

type ModelStatistics struct {
	StatesExplored   int           `json:"states_explored"`
	TransitionsUsed  int           `json:"transitions_used"`
	MemoryUsed       int64         `json:"memory_used"`
	TimeElapsed      time.Duration `json:"time_elapsed"`
}

type SymbolicExecutionResult struct {
	PathsExplored     int                    `json:"paths_explored"`
	ConstraintsSolved int                    `json:"constraints_solved"`
	Coverage          float64                `json:"coverage"`
	Vulnerabilities   []SymbolicVulnerability `json:"vulnerabilities"`
	TestCases         []TestCase             `json:"test_cases"`
}

type SymbolicVulnerability struct {
	Type        string            `json:"type"`
	Location    string            `json:"location"`
	Description string            `json:"description"`
	Input       map[string]string `json:"input"`
	Path        []string          `json:"path"`
}

type TestCase struct {
	Input    map[string]string `json:"input"`
	Expected map[string]string `json:"expected"`
	Path     []string          `json:"path"`
}

// NewFormalVerificationFramework creates a new formal verification framework
func NewFormalVerificationFramework(config VerificationConfig) *FormalVerificationFramework {
	framework := &FormalVerificationFramework{
		verifiers:        make(map[string]FormalVerifier),
		properties:       make([]SecurityProperty, 0),
		proofs:           make([]VerificationProof, 0),
		config:           config,
		theoremProver:    NewMockTheoremProver(),
		modelChecker:     NewMockModelChecker(),
		symbolicExecutor: NewMockSymbolicExecutor(),
	}

	// Register built-in verifiers
	framework.RegisterVerifier(NewInductiveVerifier())
	framework.RegisterVerifier(NewBoundedModelVerifier())
	framework.RegisterVerifier(NewSymbolicVerifier())
	framework.RegisterVerifier(NewDeductiveVerifier())

	// Load default security properties
	framework.LoadDefaultProperties()

	return framework
}

// RegisterVerifier registers a formal verifier
func (fvf *FormalVerificationFramework) RegisterVerifier(verifier FormalVerifier) {
	fvf.mu.Lock()
	defer fvf.mu.Unlock()
	fvf.verifiers[verifier.GetName()] = verifier
}

// VerifyAllProperties verifies all registered security properties
func (fvf *FormalVerificationFramework) VerifyAllProperties(ctx context.Context, target VerificationTarget) (*VerificationReport, error) {
	fvf.mu.Lock()
	if fvf.isVerifying {
		fvf.mu.Unlock()
		return nil, fmt.Errorf("verification already in progress")
	}
	fvf.isVerifying = true
	fvf.mu.Unlock()

	defer func() {
		fvf.mu.Lock()
		fvf.isVerifying = false
		fvf.lastVerification = time.Now()
		fvf.mu.Unlock()
	}()

	startTime := time.Now()
	report := &VerificationReport{
		ID:        generateVerificationID(),
		StartTime: startTime,
		Target:    target,
		Config:    fvf.config,
		Results:   make([]VerificationResult, 0),
	}

	// Create semaphore for parallel verification if enabled
	var sem chan struct{}
	if fvf.config.ParallelVerification {
		sem = make(chan struct{}, 4) // Max 4 parallel verifications
	} else {
		sem = make(chan struct{}, 1) // Sequential verification
	}

	var wg sync.WaitGroup
	var resultsMu sync.Mutex

	// Verify each property
	for _, property := range fvf.properties {
		// Find appropriate verifier
		verifier := fvf.selectVerifier(property)
		if verifier == nil {
			continue
		}

		wg.Add(1)
		go func(prop SecurityProperty, ver FormalVerifier) {
			defer wg.Done()

			// Acquire semaphore
			sem <- struct{}{}
			defer func() { <-sem }()

			// Verify property with timeout
			verifyCtx, cancel := context.WithTimeout(ctx, fvf.config.TimeoutPerProperty)
			defer cancel()

			result, err := fvf.verifyProperty(verifyCtx, prop, ver, target)
			if err != nil {
				result = &VerificationResult{
					PropertyID:   prop.ID,
					VerifierName: ver.GetName(),
					Status:       StatusError,
					Timestamp:    time.Now(),
					Diagnostics:  []string{err.Error()},
				}
			}

			// Add result to report
			resultsMu.Lock()
			report.Results = append(report.Results, *result)
			if result.Status == StatusProven {
				fvf.provenProperties++
			} else if result.Status == StatusDisproven || result.Status == StatusError {
				fvf.failedProperties++
			}
			resultsMu.Unlock()
		}(property, verifier)
	}

	// Wait for all verifications to complete
	wg.Wait()

	report.EndTime = time.Now()
	report.Duration = report.EndTime.Sub(startTime)

	// Analyze results and generate summary
	report.Summary = fvf.generateSummary(report.Results)

	return report, nil
}

// verifyProperty verifies a single security property
func (fvf *FormalVerificationFramework) verifyProperty(ctx context.Context, property SecurityProperty, verifier FormalVerifier, target VerificationTarget) (*VerificationResult, error) {
	startTime := time.Now()

	result := &VerificationResult{
		PropertyID:      property.ID,
		VerifierName:    verifier.GetName(),
		Status:          StatusUnknown,
		Timestamp:       startTime,
		Diagnostics:     make([]string, 0),
		Recommendations: make([]string, 0),
	}

	// Verify the property
	verifyResult, err := verifier.Verify(ctx, property, target)
	if err != nil {
		return nil, fmt.Errorf("verification failed: %w", err)
	}

	result.EndTime = time.Now()
	result.Duration = result.EndTime.Sub(startTime)
	result.Status = verifyResult.Status
	result.Proof = verifyResult.Proof
	result.Counterexample = verifyResult.Counterexample
	result.Confidence = verifyResult.Confidence
	result.Coverage = verifyResult.Coverage
	result.Complexity = verifyResult.Complexity
	result.Resources = verifyResult.Resources
	result.Diagnostics = verifyResult.Diagnostics
	result.Recommendations = verifyResult.Recommendations

	// Store successful proofs
	if result.Status == StatusProven && result.Proof != nil {
		fvf.mu.Lock()
		fvf.proofs = append(fvf.proofs, *result.Proof)
		fvf.mu.Unlock()
	}

	return result, nil
}

// selectVerifier selects the most appropriate verifier for a property
func (fvf *FormalVerificationFramework) selectVerifier(property SecurityProperty) FormalVerifier {
	for _, verifierName := range fvf.config.EnabledVerifiers {
		if verifier, exists := fvf.verifiers[verifierName]; exists {
			supportedTypes := verifier.GetSupportedProperties()
			for _, supportedType := range supportedTypes {
				if supportedType == property.Type {
					return verifier
				}
			}
		}
	}
	return nil
}

// LoadDefaultProperties loads default security properties for ShareHODL protocol
func (fvf *FormalVerificationFramework) LoadDefaultProperties() {
	defaultProperties := []SecurityProperty{
		{
			ID:          "hodl_conservation",
			Name:        "HODL Token Conservation",
			Description: "Total supply of HODL tokens is conserved across all operations",
			Type:        PropertyInvariant,
			Specification: "∀ operations: sum(balances_before) = sum(balances_after) + burned_tokens - minted_tokens",
			Preconditions: []string{"valid_state", "authorized_operation"},
			Postconditions: []string{"balances_updated", "supply_conserved"},
			Invariants: []string{"total_supply >= 0", "individual_balance >= 0"},
			Formula: LogicalFormula{
				Type:       "first_order_logic",
				Expression: "∀t: Σ(balance(account, t)) + burned(t) = initial_supply + minted(t)",
				Variables:  map[string]string{"t": "time", "account": "address"},
			},
			Priority:   PriorityCritical,
			Module:     "hodl",
			Function:   "transfer",
			Created:    time.Now(),
			Updated:    time.Now(),
		},
		{
			ID:          "access_control_integrity",
			Name:        "Access Control Integrity",
			Description: "Only authorized users can perform privileged operations",
			Type:        PropertyAccessControl,
			Specification: "∀ operations: privileged(op) → authorized(caller, op)",
			Preconditions: []string{"valid_caller", "valid_operation"},
			Postconditions: []string{"operation_executed", "state_consistent"},
			Invariants: []string{"admin_permissions_consistent", "role_hierarchy_maintained"},
			Formula: LogicalFormula{
				Type:       "modal_logic",
				Expression: "□(privileged_op(op) → ∃role: has_role(caller, role) ∧ can_perform(role, op))",
				Variables:  map[string]string{"op": "operation", "caller": "address", "role": "permission"},
			},
			Priority:   PriorityCritical,
			Module:     "auth",
			Function:   "*",
			Created:    time.Now(),
			Updated:    time.Now(),
		},
		{
			ID:          "equity_trading_fairness",
			Name:        "Equity Trading Fairness",
			Description: "All equity trades are executed fairly without manipulation",
			Type:        PropertyFairness,
			Specification: "∀ trades: price_fair(trade) ∧ order_matching_correct(trade)",
			Preconditions: []string{"valid_orders", "sufficient_liquidity"},
			Postconditions: []string{"trade_executed", "price_updated", "balances_transferred"},
			Invariants: []string{"no_front_running", "price_monotonic", "order_priority_respected"},
			Formula: LogicalFormula{
				Type:       "temporal_logic",
				Expression: "□◇(submit_order(o1, t1) ∧ submit_order(o2, t2) ∧ t1 < t2 ∧ can_match(o1, o2) → execute_before(o1, o2))",
				Variables:  map[string]string{"o1": "order", "o2": "order", "t1": "time", "t2": "time"},
			},
			Priority:   PriorityHigh,
			Module:     "dex",
			Function:   "execute_trade",
			Created:    time.Now(),
			Updated:    time.Now(),
		},
		{
			ID:          "governance_safety",
			Name:        "Governance Safety",
			Description: "Governance proposals cannot break critical system invariants",
			Type:        PropertySafety,
			Specification: "∀ proposals: execute(proposal) → maintains_invariants(system_state)",
			Preconditions: []string{"valid_proposal", "sufficient_votes", "quorum_reached"},
			Postconditions: []string{"proposal_executed", "invariants_maintained"},
			Invariants: []string{"system_operational", "funds_secure", "access_control_intact"},
			Formula: LogicalFormula{
				Type:       "hoare_logic",
				Expression: "{P ∧ valid_proposal(prop)} execute_proposal(prop) {Q ∧ system_invariants}",
				Variables:  map[string]string{"P": "precondition", "Q": "postcondition", "prop": "proposal"},
			},
			Priority:   PriorityCritical,
			Module:     "governance",
			Function:   "execute_proposal",
			Created:    time.Now(),
			Updated:    time.Now(),
		},
		{
			ID:          "dividend_distribution_correctness",
			Name:        "Dividend Distribution Correctness",
			Description: "Dividends are distributed correctly proportional to holdings",
			Type:        PropertyBusinessLogic,
			Specification: "∀ distributions: dividend(shareholder) = total_dividend × (shares(shareholder) / total_shares)",
			Preconditions: []string{"valid_snapshot", "sufficient_funds"},
			Postconditions: []string{"dividends_distributed", "balances_updated"},
			Invariants: []string{"total_distributed = total_available", "proportional_distribution"},
			Formula: LogicalFormula{
				Type:       "arithmetic",
				Expression: "∀s: dividend(s) = total_dividend × (shares(s) / Σ(shares(all_shareholders)))",
				Variables:  map[string]string{"s": "shareholder", "dividend": "amount"},
			},
			Priority:   PriorityHigh,
			Module:     "dividend",
			Function:   "distribute",
			Created:    time.Now(),
			Updated:    time.Now(),
		},
	}

	fvf.properties = append(fvf.properties, defaultProperties...)
}

// generateSummary generates a verification summary
func (fvf *FormalVerificationFramework) generateSummary(results []VerificationResult) VerificationSummary {
	summary := VerificationSummary{
		TotalProperties: len(results),
		ResultsByStatus: make(map[VerificationStatus]int),
		ResultsByType:   make(map[PropertyType]int),
		AverageConfidence: 0.0,
		AverageCoverage:   0.0,
	}

	totalConfidence := 0.0
	totalCoverage := 0.0
	
	for _, result := range results {
		summary.ResultsByStatus[result.Status]++
		
		// Find property type for categorization
		for _, prop := range fvf.properties {
			if prop.ID == result.PropertyID {
				summary.ResultsByType[prop.Type]++
				break
			}
		}
		
		totalConfidence += result.Confidence
		totalCoverage += result.Coverage
	}

	if len(results) > 0 {
		summary.AverageConfidence = totalConfidence / float64(len(results))
		summary.AverageCoverage = totalCoverage / float64(len(results))
	}

	summary.ProvenProperties = summary.ResultsByStatus[StatusProven]
	summary.DisprovenProperties = summary.ResultsByStatus[StatusDisproven]
	summary.UnknownProperties = summary.ResultsByStatus[StatusUnknown] + summary.ResultsByStatus[StatusTimeout] + summary.ResultsByStatus[StatusError]

	return summary
}

// GetVerificationStatus returns current verification status
func (fvf *FormalVerificationFramework) GetVerificationStatus() VerificationStatus {
	fvf.mu.RLock()
	defer fvf.mu.RUnlock()

	status := VerificationFrameworkStatus{
		IsVerifying:        fvf.isVerifying,
		LastVerification:   fvf.lastVerification,
		PropertiesLoaded:   len(fvf.properties),
		VerifiersEnabled:   len(fvf.config.EnabledVerifiers),
		ProvenProperties:   fvf.provenProperties,
		FailedProperties:   fvf.failedProperties,
		ProofsGenerated:    len(fvf.proofs),
	}

	return status
}

// Supporting types and implementations

type VerificationReport struct {
	ID        string               `json:"id"`
	StartTime time.Time            `json:"start_time"`
	EndTime   time.Time            `json:"end_time"`
	Duration  time.Duration        `json:"duration"`
	Target    VerificationTarget   `json:"target"`
	Config    VerificationConfig   `json:"config"`
	Results   []VerificationResult `json:"results"`
	Summary   VerificationSummary  `json:"summary"`
}

type VerificationSummary struct {
	TotalProperties      int                            `json:"total_properties"`
	ProvenProperties     int                            `json:"proven_properties"`
	DisprovenProperties  int                            `json:"disproven_properties"`
	UnknownProperties    int                            `json:"unknown_properties"`
	ResultsByStatus      map[VerificationStatus]int     `json:"results_by_status"`
	ResultsByType        map[PropertyType]int           `json:"results_by_type"`
	AverageConfidence    float64                        `json:"average_confidence"`
	AverageCoverage      float64                        `json:"average_coverage"`
}

type VerificationFrameworkStatus struct {
	IsVerifying        bool      `json:"is_verifying"`
	LastVerification   time.Time `json:"last_verification"`
	PropertiesLoaded   int       `json:"properties_loaded"`
	VerifiersEnabled   int       `json:"verifiers_enabled"`
	ProvenProperties   int       `json:"proven_properties"`
	FailedProperties   int       `json:"failed_properties"`
	ProofsGenerated    int       `json:"proofs_generated"`
}

// Mock implementations for demonstration

type MockTheoremProver struct{}

func NewMockTheoremProver() *MockTheoremProver {
	return &MockTheoremProver{}
}

func (mtp *MockTheoremProver) ProveTheorem(theorem string, axioms []string) (*ProofResult, error) {
	return &ProofResult{
		IsValid: true,
		Proof:   "Mock proof for demonstration",
		Steps: []ProofStep{
			{StepNumber: 1, Rule: "axiom", Statement: "Initial assumption", Justification: "Given"},
			{StepNumber: 2, Rule: "modus_ponens", Statement: "Derived conclusion", Justification: "From step 1"},
		},
		Resources: ResourceUsage{
			CPUTime:     time.Millisecond * 100,
			MemoryUsage: 1024,
			ProofSteps:  2,
		},
	}, nil
}

func (mtp *MockTheoremProver) CheckProof(proof VerificationProof) (bool, error) {
	return true, nil
}

func (mtp *MockTheoremProver) SimplifyFormula(formula LogicalFormula) (LogicalFormula, error) {
	return formula, nil
}

type MockModelChecker struct{}

func NewMockModelChecker() *MockModelChecker {
	return &MockModelChecker{}
}

func (mmc *MockModelChecker) CheckModel(model ModelSpecification, property SecurityProperty) (*ModelCheckingResult, error) {
	return &ModelCheckingResult{
		Satisfied: true,
		Statistics: ModelStatistics{
			StatesExplored:  1000,
			TransitionsUsed: 500,
			MemoryUsed:      2048,
			TimeElapsed:     time.Millisecond * 200,
		},
	}, nil
}

func (mmc *MockModelChecker) GenerateCounterexample(model ModelSpecification, property SecurityProperty) (*Counterexample, error) {
	return nil, fmt.Errorf("no counterexample found")
}

func (mmc *MockModelChecker) BoundedModelCheck(model ModelSpecification, property SecurityProperty, bound int) (*ModelCheckingResult, error) {
	return mmc.CheckModel(model, property)
}

type MockSymbolicExecutor struct{}

func NewMockSymbolicExecutor() *MockSymbolicExecutor {
	return &MockSymbolicExecutor{}
}

func (mse *MockSymbolicExecutor) Execute(code string, constraints []string) (*SymbolicExecutionResult, error) {
	return &SymbolicExecutionResult{
		PathsExplored:     10,
		ConstraintsSolved: 5,
		Coverage:          85.0,
		Vulnerabilities:   []SymbolicVulnerability{},
		TestCases:         []TestCase{},
	}, nil
}

func (mse *MockSymbolicExecutor) GenerateTestCases(code string, coverage float64) ([]TestCase, error) {
	return []TestCase{}, nil
}

func (mse *MockSymbolicExecutor) FindVulnerabilities(code string) ([]SymbolicVulnerability, error) {
	return []SymbolicVulnerability{}, nil
}

// Helper functions

func generateVerificationID() string {
	timestamp := time.Now().Format("20060102150405")
	return fmt.Sprintf("verify_%s", timestamp)
}

// Verifier implementations would be added here...