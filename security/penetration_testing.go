package security

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"strings"
	"sync"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// PenetrationTestSuite provides comprehensive penetration testing for ShareHODL protocol
type PenetrationTestSuite struct {
	testCases       []PenetrationTest
	results         []TestResult
	config          PenetrationTestConfig
	attackSimulator *AttackSimulator
	vulnerabilityScanner *VulnerabilityScanner
	mu              sync.RWMutex
	isRunning       bool
	progress        float64
}

// PenetrationTest defines a penetration test case
type PenetrationTest interface {
	GetName() string
	GetDescription() string
	GetCategory() TestCategory
	GetSeverity() RiskLevel
	Execute(ctx context.Context, target TestTarget) (*TestResult, error)
	GetPrerequisites() []string
	GetDuration() time.Duration
}

// TestResult represents the result of a penetration test
type TestResult struct {
	TestName      string           `json:"test_name"`
	Category      TestCategory     `json:"category"`
	Severity      RiskLevel        `json:"severity"`
	Status        TestStatus       `json:"status"`
	StartTime     time.Time        `json:"start_time"`
	EndTime       time.Time        `json:"end_time"`
	Duration      time.Duration    `json:"duration"`
	Success       bool             `json:"success"`
	Vulnerabilities []Vulnerability `json:"vulnerabilities"`
	Evidence      []TestEvidence  `json:"evidence"`
	Recommendations []string       `json:"recommendations"`
	RiskScore     float64         `json:"risk_score"`
	Details       map[string]interface{} `json:"details"`
	Error         string          `json:"error,omitempty"`
}

// Vulnerability represents a security vulnerability found during testing
type Vulnerability struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Severity    RiskLevel   `json:"severity"`
	CVSS        float64     `json:"cvss"`
	CVE         string      `json:"cve,omitempty"`
	Category    string      `json:"category"`
	Exploitable bool        `json:"exploitable"`
	Remediation string      `json:"remediation"`
	References  []string    `json:"references"`
	Evidence    TestEvidence `json:"evidence"`
	Discovered  time.Time   `json:"discovered"`
}

// TestEvidence represents evidence collected during testing
type TestEvidence struct {
	Type        string            `json:"type"`
	Description string            `json:"description"`
	Data        map[string]string `json:"data"`
	Artifacts   []string          `json:"artifacts"`
	Timestamp   time.Time         `json:"timestamp"`
}

// Configuration and enums
type TestCategory string

const (
	CategoryAuthentication   TestCategory = "authentication"
	CategoryAuthorization   TestCategory = "authorization"
	CategoryCryptography    TestCategory = "cryptography"
	CategoryBusinessLogic   TestCategory = "business_logic"
	CategoryInputValidation TestCategory = "input_validation"
	CategoryInjection       TestCategory = "injection"
	CategoryDenialOfService TestCategory = "denial_of_service"
	CategoryPrivilegeEscalation TestCategory = "privilege_escalation"
	CategoryDataExfiltration TestCategory = "data_exfiltration"
	CategoryNetworkSecurity TestCategory = "network_security"
)

type TestStatus string

const (
	StatusPending    TestStatus = "pending"
	StatusRunning    TestStatus = "running"
	StatusCompleted  TestStatus = "completed"
	StatusFailed     TestStatus = "failed"
	StatusSkipped    TestStatus = "skipped"
)

type PenetrationTestConfig struct {
	MaxConcurrentTests int           `json:"max_concurrent_tests"`
	TestTimeout       time.Duration `json:"test_timeout"`
	AttackIntensity   AttackIntensity `json:"attack_intensity"`
	TargetModules     []string      `json:"target_modules"`
	ExcludedTests     []string      `json:"excluded_tests"`
	ReportFormat      string        `json:"report_format"`
	SaveArtifacts     bool          `json:"save_artifacts"`
}

type AttackIntensity string

const (
	IntensityLow    AttackIntensity = "low"
	IntensityMedium AttackIntensity = "medium"
	IntensityHigh   AttackIntensity = "high"
	IntensityExtreme AttackIntensity = "extreme"
)

type TestTarget interface {
	GetEndpoint() string
	GetCredentials() map[string]string
	GetConfiguration() map[string]interface{}
}

// AttackSimulator simulates various attack scenarios
type AttackSimulator struct {
	scenarios map[string]AttackScenario
	intensity AttackIntensity
}

type AttackScenario interface {
	GetName() string
	GetDescription() string
	Execute(target TestTarget) (*AttackResult, error)
}

type AttackResult struct {
	Successful      bool              `json:"successful"`
	TimeToSuccess   time.Duration     `json:"time_to_success"`
	Method          string            `json:"method"`
	Evidence        map[string]string `json:"evidence"`
	ImpactLevel     string            `json:"impact_level"`
	Countermeasures []string          `json:"countermeasures"`
}

// VulnerabilityScanner identifies known vulnerabilities
type VulnerabilityScanner struct {
	scanners map[string]Scanner
	database VulnerabilityDatabase
}

type Scanner interface {
	GetName() string
	Scan(target interface{}) ([]Vulnerability, error)
}

type VulnerabilityDatabase interface {
	SearchBySignature(signature string) ([]Vulnerability, error)
	GetByID(id string) (*Vulnerability, error)
	UpdateDatabase() error
}

// NewPenetrationTestSuite creates a new penetration testing suite
func NewPenetrationTestSuite(config PenetrationTestConfig) *PenetrationTestSuite {
	suite := &PenetrationTestSuite{
		testCases: make([]PenetrationTest, 0),
		results:   make([]TestResult, 0),
		config:    config,
		attackSimulator: NewAttackSimulator(config.AttackIntensity),
		vulnerabilityScanner: NewVulnerabilityScanner(),
	}

	// Register test cases
	suite.RegisterTestCase(NewAuthenticationBypassTest())
	suite.RegisterTestCase(NewPrivilegeEscalationTest())
	suite.RegisterTestCase(NewInjectionAttackTest())
	suite.RegisterTestCase(NewBusinessLogicManipulationTest())
	suite.RegisterTestCase(NewDenialOfServiceTest())
	suite.RegisterTestCase(NewCryptographicWeaknessTest())
	suite.RegisterTestCase(NewDataExfiltrationTest())
	suite.RegisterTestCase(NewSmartContractVulnerabilityTest())
	suite.RegisterTestCase(NewGovernanceManipulationTest())
	suite.RegisterTestCase(NewTradingManipulationTest())

	return suite
}

// RegisterTestCase registers a new penetration test case
func (pts *PenetrationTestSuite) RegisterTestCase(test PenetrationTest) {
	pts.mu.Lock()
	defer pts.mu.Unlock()
	pts.testCases = append(pts.testCases, test)
}

// RunAllTests executes all registered penetration tests
func (pts *PenetrationTestSuite) RunAllTests(ctx context.Context, target TestTarget) (*PenetrationTestReport, error) {
	pts.mu.Lock()
	if pts.isRunning {
		pts.mu.Unlock()
		return nil, fmt.Errorf("test suite is already running")
	}
	pts.isRunning = true
	pts.progress = 0.0
	pts.mu.Unlock()

	defer func() {
		pts.mu.Lock()
		pts.isRunning = false
		pts.mu.Unlock()
	}()

	startTime := time.Now()
	report := &PenetrationTestReport{
		ID:        generateTestID(),
		StartTime: startTime,
		Config:    pts.config,
		Results:   make([]TestResult, 0),
	}

	// Create semaphore for concurrent test execution
	sem := make(chan struct{}, pts.config.MaxConcurrentTests)
	var wg sync.WaitGroup
	var resultsMu sync.Mutex

	totalTests := len(pts.testCases)
	completedTests := 0

	for _, testCase := range pts.testCases {
		// Check if test is excluded
		if pts.isTestExcluded(testCase.GetName()) {
			continue
		}

		wg.Add(1)
		go func(test PenetrationTest) {
			defer wg.Done()

			// Acquire semaphore
			sem <- struct{}{}
			defer func() { <-sem }()

			// Execute test with timeout
			testCtx, cancel := context.WithTimeout(ctx, pts.config.TestTimeout)
			defer cancel()

			result, err := pts.executeTest(testCtx, test, target)
			if err != nil {
				result = &TestResult{
					TestName:  test.GetName(),
					Category:  test.GetCategory(),
					Severity:  test.GetSeverity(),
					Status:    StatusFailed,
					StartTime: time.Now(),
					EndTime:   time.Now(),
					Success:   false,
					Error:     err.Error(),
				}
			}

			// Add result to report
			resultsMu.Lock()
			report.Results = append(report.Results, *result)
			completedTests++
			pts.progress = float64(completedTests) / float64(totalTests) * 100
			resultsMu.Unlock()
		}(testCase)
	}

	// Wait for all tests to complete
	wg.Wait()

	report.EndTime = time.Now()
	report.Duration = report.EndTime.Sub(startTime)
	report.Status = "completed"

	// Analyze results and generate summary
	pts.analyzeResults(report)

	return report, nil
}

// executeTest executes a single penetration test
func (pts *PenetrationTestSuite) executeTest(ctx context.Context, test PenetrationTest, target TestTarget) (*TestResult, error) {
	startTime := time.Now()
	
	result := &TestResult{
		TestName:        test.GetName(),
		Category:        test.GetCategory(),
		Severity:        test.GetSeverity(),
		Status:          StatusRunning,
		StartTime:       startTime,
		Vulnerabilities: make([]Vulnerability, 0),
		Evidence:        make([]TestEvidence, 0),
		Recommendations: make([]string, 0),
		Details:         make(map[string]interface{}),
	}

	// Check prerequisites
	if !pts.checkPrerequisites(test.GetPrerequisites()) {
		result.Status = StatusSkipped
		result.Error = "Prerequisites not met"
		return result, nil
	}

	// Execute the test
	testResult, err := test.Execute(ctx, target)
	if err != nil {
		return nil, fmt.Errorf("test execution failed: %w", err)
	}

	result.EndTime = time.Now()
	result.Duration = result.EndTime.Sub(startTime)
	result.Success = testResult.Success
	result.Vulnerabilities = testResult.Vulnerabilities
	result.Evidence = testResult.Evidence
	result.Recommendations = testResult.Recommendations
	result.RiskScore = testResult.RiskScore
	result.Details = testResult.Details
	result.Status = StatusCompleted

	return result, nil
}

// checkPrerequisites checks if test prerequisites are met
func (pts *PenetrationTestSuite) checkPrerequisites(prerequisites []string) bool {
	// Simplified prerequisite checking
	return true
}

// isTestExcluded checks if a test is excluded from execution
func (pts *PenetrationTestSuite) isTestExcluded(testName string) bool {
	for _, excluded := range pts.config.ExcludedTests {
		if excluded == testName {
			return true
		}
	}
	return false
}

// analyzeResults analyzes test results and generates summary
func (pts *PenetrationTestSuite) analyzeResults(report *PenetrationTestReport) {
	summary := &TestSummary{
		TotalTests:      len(report.Results),
		PassedTests:     0,
		FailedTests:     0,
		SkippedTests:    0,
		CriticalVulns:   0,
		HighVulns:       0,
		MediumVulns:     0,
		LowVulns:        0,
		OverallRiskScore: 0.0,
	}

	totalRiskScore := 0.0
	vulnCount := 0

	for _, result := range report.Results {
		switch result.Status {
		case StatusCompleted:
			if result.Success {
				summary.PassedTests++
			} else {
				summary.FailedTests++
			}
		case StatusSkipped:
			summary.SkippedTests++
		case StatusFailed:
			summary.FailedTests++
		}

		// Count vulnerabilities by severity
		for _, vuln := range result.Vulnerabilities {
			switch vuln.Severity {
			case RiskCritical:
				summary.CriticalVulns++
			case RiskHigh:
				summary.HighVulns++
			case RiskMedium:
				summary.MediumVulns++
			case RiskLow:
				summary.LowVulns++
			}
			vulnCount++
		}

		totalRiskScore += result.RiskScore
	}

	if len(report.Results) > 0 {
		summary.OverallRiskScore = totalRiskScore / float64(len(report.Results))
	}

	report.Summary = *summary
}

// GetProgress returns the current testing progress
func (pts *PenetrationTestSuite) GetProgress() float64 {
	pts.mu.RLock()
	defer pts.mu.RUnlock()
	return pts.progress
}

// IsRunning returns whether the test suite is currently running
func (pts *PenetrationTestSuite) IsRunning() bool {
	pts.mu.RLock()
	defer pts.mu.RUnlock()
	return pts.isRunning
}

// Supporting types and structs

type PenetrationTestReport struct {
	ID        string        `json:"id"`
	StartTime time.Time     `json:"start_time"`
	EndTime   time.Time     `json:"end_time"`
	Duration  time.Duration `json:"duration"`
	Status    string        `json:"status"`
	Config    PenetrationTestConfig `json:"config"`
	Results   []TestResult  `json:"results"`
	Summary   TestSummary   `json:"summary"`
}

type TestSummary struct {
	TotalTests       int     `json:"total_tests"`
	PassedTests      int     `json:"passed_tests"`
	FailedTests      int     `json:"failed_tests"`
	SkippedTests     int     `json:"skipped_tests"`
	CriticalVulns    int     `json:"critical_vulnerabilities"`
	HighVulns        int     `json:"high_vulnerabilities"`
	MediumVulns      int     `json:"medium_vulnerabilities"`
	LowVulns         int     `json:"low_vulnerabilities"`
	OverallRiskScore float64 `json:"overall_risk_score"`
}

// Factory functions for components

func NewAttackSimulator(intensity AttackIntensity) *AttackSimulator {
	return &AttackSimulator{
		scenarios: make(map[string]AttackScenario),
		intensity: intensity,
	}
}

func NewVulnerabilityScanner() *VulnerabilityScanner {
	return &VulnerabilityScanner{
		scanners: make(map[string]Scanner),
		database: &MockVulnerabilityDatabase{},
	}
}

// Mock implementations for testing

type MockVulnerabilityDatabase struct{}

func (mvd *MockVulnerabilityDatabase) SearchBySignature(signature string) ([]Vulnerability, error) {
	return []Vulnerability{}, nil
}

func (mvd *MockVulnerabilityDatabase) GetByID(id string) (*Vulnerability, error) {
	return nil, fmt.Errorf("vulnerability not found")
}

func (mvd *MockVulnerabilityDatabase) UpdateDatabase() error {
	return nil
}

// Test implementation examples

// AuthenticationBypassTest tests for authentication bypass vulnerabilities
type AuthenticationBypassTest struct{}

func NewAuthenticationBypassTest() *AuthenticationBypassTest {
	return &AuthenticationBypassTest{}
}

func (abt *AuthenticationBypassTest) GetName() string {
	return "authentication_bypass_test"
}

func (abt *AuthenticationBypassTest) GetDescription() string {
	return "Tests for authentication bypass vulnerabilities"
}

func (abt *AuthenticationBypassTest) GetCategory() TestCategory {
	return CategoryAuthentication
}

func (abt *AuthenticationBypassTest) GetSeverity() RiskLevel {
	return RiskHigh
}

func (abt *AuthenticationBypassTest) GetPrerequisites() []string {
	return []string{"network_access"}
}

func (abt *AuthenticationBypassTest) GetDuration() time.Duration {
	return time.Minute * 5
}

func (abt *AuthenticationBypassTest) Execute(ctx context.Context, target TestTarget) (*TestResult, error) {
	result := &TestResult{
		TestName:        abt.GetName(),
		Category:        abt.GetCategory(),
		Severity:        abt.GetSeverity(),
		Success:         true,
		Vulnerabilities: make([]Vulnerability, 0),
		Evidence:        make([]TestEvidence, 0),
		Recommendations: make([]string, 0),
		Details:         make(map[string]interface{}),
	}

	// Simulate authentication bypass testing
	bypassAttempts := []string{
		"admin:admin",
		"admin:",
		":admin",
		"' OR '1'='1",
		"admin' --",
	}

	for _, attempt := range bypassAttempts {
		// Simulate bypass attempt (would be real HTTP requests in actual implementation)
		if abt.attemptBypass(ctx, target, attempt) {
			vuln := Vulnerability{
				ID:          generateVulnerabilityID(),
				Name:        "Authentication Bypass",
				Description: "System vulnerable to authentication bypass using common techniques",
				Severity:    RiskCritical,
				CVSS:        9.8,
				Category:    "authentication",
				Exploitable: true,
				Remediation: "Implement proper authentication validation and input sanitization",
				References:  []string{"CWE-287", "OWASP-A01"},
				Discovered:  time.Now(),
				Evidence: TestEvidence{
					Type:        "exploit",
					Description: "Successful authentication bypass",
					Data:        map[string]string{"method": attempt},
					Timestamp:   time.Now(),
				},
			}
			result.Vulnerabilities = append(result.Vulnerabilities, vuln)
		}
	}

	if len(result.Vulnerabilities) > 0 {
		result.RiskScore = 95.0
		result.Recommendations = append(result.Recommendations,
			"Implement multi-factor authentication",
			"Use secure session management",
			"Implement proper input validation",
			"Regular security testing")
	} else {
		result.RiskScore = 5.0
	}

	return result, nil
}

func (abt *AuthenticationBypassTest) attemptBypass(ctx context.Context, target TestTarget, credentials string) bool {
	// Simulate bypass attempt - would make actual HTTP requests in real implementation
	// For demonstration, randomly return false (no bypass found)
	n, _ := rand.Int(rand.Reader, big.NewInt(10))
	return n.Int64() < 1 // 10% chance of finding vulnerability for demo
}

// Additional test implementations would follow similar patterns...
// For brevity, I'll include stubs for the other test types

type PrivilegeEscalationTest struct{}
type InjectionAttackTest struct{}
type BusinessLogicManipulationTest struct{}
type DenialOfServiceTest struct{}
type CryptographicWeaknessTest struct{}
type DataExfiltrationTest struct{}
type SmartContractVulnerabilityTest struct{}
type GovernanceManipulationTest struct{}
type TradingManipulationTest struct{}

// Factory functions for test implementations

func NewPrivilegeEscalationTest() PenetrationTest {
	return &PrivilegeEscalationTest{}
}

func NewInjectionAttackTest() PenetrationTest {
	return &InjectionAttackTest{}
}

func NewBusinessLogicManipulationTest() PenetrationTest {
	return &BusinessLogicManipulationTest{}
}

func NewDenialOfServiceTest() PenetrationTest {
	return &DenialOfServiceTest{}
}

func NewCryptographicWeaknessTest() PenetrationTest {
	return &CryptographicWeaknessTest{}
}

func NewDataExfiltrationTest() PenetrationTest {
	return &DataExfiltrationTest{}
}

func NewSmartContractVulnerabilityTest() PenetrationTest {
	return &SmartContractVulnerabilityTest{}
}

func NewGovernanceManipulationTest() PenetrationTest {
	return &GovernanceManipulationTest{}
}

func NewTradingManipulationTest() PenetrationTest {
	return &TradingManipulationTest{}
}

// Implement stubs for other test types (similar pattern as AuthenticationBypassTest)

func (pet *PrivilegeEscalationTest) GetName() string { return "privilege_escalation_test" }
func (pet *PrivilegeEscalationTest) GetDescription() string { return "Tests for privilege escalation vulnerabilities" }
func (pet *PrivilegeEscalationTest) GetCategory() TestCategory { return CategoryPrivilegeEscalation }
func (pet *PrivilegeEscalationTest) GetSeverity() RiskLevel { return RiskHigh }
func (pet *PrivilegeEscalationTest) GetPrerequisites() []string { return []string{"authenticated_access"} }
func (pet *PrivilegeEscalationTest) GetDuration() time.Duration { return time.Minute * 10 }
func (pet *PrivilegeEscalationTest) Execute(ctx context.Context, target TestTarget) (*TestResult, error) {
	// Implementation would test for privilege escalation vulnerabilities
	return &TestResult{
		TestName: pet.GetName(),
		Category: pet.GetCategory(),
		Severity: pet.GetSeverity(),
		Success:  true,
		RiskScore: 10.0, // Low risk score for demo
	}, nil
}

// Helper functions

func generateTestID() string {
	timestamp := time.Now().Format("20060102150405")
	return fmt.Sprintf("pentest_%s", timestamp)
}

func generateVulnerabilityID() string {
	timestamp := time.Now().Format("20060102150405")
	n, _ := rand.Int(rand.Reader, big.NewInt(1000))
	return fmt.Sprintf("vuln_%s_%d", timestamp, n.Int64())
}

// Additional test implementations would be added here for each vulnerability category...