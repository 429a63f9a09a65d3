package security

import (
	"crypto/rand"
	"fmt"
	"reflect"
	"runtime"
	"strings"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// CryptographyAuditor audits cryptographic implementations and practices
type CryptographyAuditor struct {
	name        string
	description string
}

func NewCryptographyAuditor() *CryptographyAuditor {
	return &CryptographyAuditor{
		name:        "cryptography_auditor",
		description: "Audits cryptographic implementations for security vulnerabilities",
	}
}

func (ca *CryptographyAuditor) GetName() string        { return ca.name }
func (ca *CryptographyAuditor) GetDescription() string { return ca.description }
func (ca *CryptographyAuditor) GetRiskLevel() RiskLevel { return RiskHigh }
func (ca *CryptographyAuditor) GetCategory() SecurityCategory { return CategoryCryptography }

func (ca *CryptographyAuditor) Audit(ctx sdk.Context, target interface{}) ([]SecurityFinding, error) {
	findings := make([]SecurityFinding, 0)
	pc, file, line, _ := runtime.Caller(1)

	// Test cryptographic entropy
	entropyFinding := ca.auditRandomEntropy()
	if entropyFinding != nil {
		entropyFinding.Location = CodeLocation{
			File:     file,
			Function: runtime.FuncForPC(pc).Name(),
			Line:     line,
			Module:   "security",
		}
		findings = append(findings, *entropyFinding)
	}

	// Test key strength requirements
	keyStrengthFinding := ca.auditKeyStrength()
	if keyStrengthFinding != nil {
		keyStrengthFinding.Location = CodeLocation{
			File:     file,
			Function: runtime.FuncForPC(pc).Name(),
			Line:     line,
			Module:   "security",
		}
		findings = append(findings, *keyStrengthFinding)
	}

	// Test hash function security
	hashFinding := ca.auditHashFunctions()
	if hashFinding != nil {
		hashFinding.Location = CodeLocation{
			File:     file,
			Function: runtime.FuncForPC(pc).Name(),
			Line:     line,
			Module:   "security",
		}
		findings = append(findings, *hashFinding)
	}

	return findings, nil
}

func (ca *CryptographyAuditor) auditRandomEntropy() *SecurityFinding {
	// Test cryptographic randomness
	buf := make([]byte, 32)
	_, err := rand.Read(buf)
	if err != nil {
		return &SecurityFinding{
			ID:          generateFindingID("crypto_entropy"),
			Timestamp:   time.Now(),
			AuditorName: ca.name,
			Category:    CategoryCryptography,
			RiskLevel:   RiskCritical,
			Title:       "Insufficient Cryptographic Entropy",
			Description: "System unable to generate cryptographically secure random numbers",
			Impact:      "Could lead to predictable keys and compromise of all cryptographic operations",
			Evidence: []Evidence{
				{
					Type:        "error",
					Description: "Random number generation failed",
					Data:        map[string]string{"error": err.Error()},
					Timestamp:   time.Now(),
				},
			},
			Remediation: "Ensure system has access to a cryptographically secure random number generator",
			Status:      StatusOpen,
		}
	}

	// Check for entropy quality (simplified)
	zeros := 0
	for _, b := range buf {
		if b == 0 {
			zeros++
		}
	}

	if zeros > 8 { // More than 25% zeros might indicate poor entropy
		return &SecurityFinding{
			ID:          generateFindingID("crypto_entropy_quality"),
			Timestamp:   time.Now(),
			AuditorName: ca.name,
			Category:    CategoryCryptography,
			RiskLevel:   RiskMedium,
			Title:       "Poor Entropy Quality",
			Description: "Random number generator may have poor entropy quality",
			Impact:      "Could reduce effectiveness of cryptographic operations",
			Evidence: []Evidence{
				{
					Type:        "analysis",
					Description: "High number of zero bytes in random sample",
					Data:        map[string]string{"zero_bytes": fmt.Sprintf("%d", zeros)},
					Timestamp:   time.Now(),
				},
			},
			Remediation: "Review random number generator configuration and entropy sources",
			Status:      StatusOpen,
		}
	}

	return nil
}

func (ca *CryptographyAuditor) auditKeyStrength() *SecurityFinding {
	// Audit minimum key strength requirements
	minKeySize := 256 // Minimum 256-bit keys required
	currentKeySize := 256 // Simulated current key size

	if currentKeySize < minKeySize {
		return &SecurityFinding{
			ID:          generateFindingID("crypto_key_strength"),
			Timestamp:   time.Now(),
			AuditorName: ca.name,
			Category:    CategoryCryptography,
			RiskLevel:   RiskHigh,
			Title:       "Insufficient Key Strength",
			Description: fmt.Sprintf("Cryptographic keys below minimum strength requirement of %d bits", minKeySize),
			Impact:      "Weak keys are vulnerable to brute force attacks",
			Evidence: []Evidence{
				{
					Type:        "measurement",
					Description: "Key strength analysis",
					Data: map[string]string{
						"current_key_size": fmt.Sprintf("%d", currentKeySize),
						"required_key_size": fmt.Sprintf("%d", minKeySize),
					},
					Timestamp: time.Now(),
				},
			},
			Remediation: fmt.Sprintf("Upgrade all cryptographic keys to minimum %d-bit strength", minKeySize),
			Status:      StatusOpen,
		}
	}

	return nil
}

func (ca *CryptographyAuditor) auditHashFunctions() *SecurityFinding {
	// Check for use of deprecated hash functions
	deprecatedHashes := []string{"md5", "sha1"}
	currentHash := "sha256" // Simulated current hash function

	for _, deprecated := range deprecatedHashes {
		if strings.Contains(strings.ToLower(currentHash), deprecated) {
			return &SecurityFinding{
				ID:          generateFindingID("crypto_deprecated_hash"),
				Timestamp:   time.Now(),
				AuditorName: ca.name,
				Category:    CategoryCryptography,
				RiskLevel:   RiskHigh,
				Title:       "Use of Deprecated Hash Function",
				Description: fmt.Sprintf("System uses deprecated hash function: %s", deprecated),
				Impact:      "Deprecated hash functions are vulnerable to collision attacks",
				Evidence: []Evidence{
					{
						Type:        "detection",
						Description: "Deprecated hash function identified",
						Data:        map[string]string{"hash_function": deprecated},
						Timestamp:   time.Now(),
					},
				},
				Remediation: "Replace deprecated hash functions with SHA-256 or stronger",
				Status:      StatusOpen,
			}
		}
	}

	return nil
}

// AccessControlAuditor audits access control mechanisms
type AccessControlAuditor struct {
	name        string
	description string
}

func NewAccessControlAuditor() *AccessControlAuditor {
	return &AccessControlAuditor{
		name:        "access_control_auditor",
		description: "Audits access control implementations and permissions",
	}
}

func (aca *AccessControlAuditor) GetName() string        { return aca.name }
func (aca *AccessControlAuditor) GetDescription() string { return aca.description }
func (aca *AccessControlAuditor) GetRiskLevel() RiskLevel { return RiskHigh }
func (aca *AccessControlAuditor) GetCategory() SecurityCategory { return CategoryAccessControl }

func (aca *AccessControlAuditor) Audit(ctx sdk.Context, target interface{}) ([]SecurityFinding, error) {
	findings := make([]SecurityFinding, 0)
	pc, file, line, _ := runtime.Caller(1)

	// Audit permission escalation risks
	escalationFinding := aca.auditPrivilegeEscalation()
	if escalationFinding != nil {
		escalationFinding.Location = CodeLocation{
			File:     file,
			Function: runtime.FuncForPC(pc).Name(),
			Line:     line,
			Module:   "security",
		}
		findings = append(findings, *escalationFinding)
	}

	// Audit default permissions
	defaultPermsFinding := aca.auditDefaultPermissions()
	if defaultPermsFinding != nil {
		defaultPermsFinding.Location = CodeLocation{
			File:     file,
			Function: runtime.FuncForPC(pc).Name(),
			Line:     line,
			Module:   "security",
		}
		findings = append(findings, *defaultPermsFinding)
	}

	// Audit session management
	sessionFinding := aca.auditSessionManagement()
	if sessionFinding != nil {
		sessionFinding.Location = CodeLocation{
			File:     file,
			Function: runtime.FuncForPC(pc).Name(),
			Line:     line,
			Module:   "security",
		}
		findings = append(findings, *sessionFinding)
	}

	return findings, nil
}

func (aca *AccessControlAuditor) auditPrivilegeEscalation() *SecurityFinding {
	// Check for potential privilege escalation vulnerabilities
	hasEscalationRisk := false // Simulated check

	if hasEscalationRisk {
		return &SecurityFinding{
			ID:          generateFindingID("access_privilege_escalation"),
			Timestamp:   time.Now(),
			AuditorName: aca.name,
			Category:    CategoryAccessControl,
			RiskLevel:   RiskCritical,
			Title:       "Privilege Escalation Vulnerability",
			Description: "Potential for users to escalate their privileges beyond intended scope",
			Impact:      "Attackers could gain unauthorized administrative access",
			Evidence: []Evidence{
				{
					Type:        "analysis",
					Description: "Privilege escalation path identified",
					Data:        map[string]string{"vulnerability_type": "privilege_escalation"},
					Timestamp:   time.Now(),
				},
			},
			Remediation: "Implement proper privilege boundaries and validation checks",
			Status:      StatusOpen,
		}
	}

	return nil
}

func (aca *AccessControlAuditor) auditDefaultPermissions() *SecurityFinding {
	// Check for overly permissive default permissions
	defaultPermsSecure := true // Simulated check

	if !defaultPermsSecure {
		return &SecurityFinding{
			ID:          generateFindingID("access_default_perms"),
			Timestamp:   time.Now(),
			AuditorName: aca.name,
			Category:    CategoryAccessControl,
			RiskLevel:   RiskMedium,
			Title:       "Overly Permissive Default Permissions",
			Description: "Default permissions grant more access than necessary",
			Impact:      "Users may have unintended access to sensitive operations",
			Evidence: []Evidence{
				{
					Type:        "configuration",
					Description: "Default permission analysis",
					Data:        map[string]string{"issue": "overly_permissive"},
					Timestamp:   time.Now(),
				},
			},
			Remediation: "Implement principle of least privilege for default permissions",
			Status:      StatusOpen,
		}
	}

	return nil
}

func (aca *AccessControlAuditor) auditSessionManagement() *SecurityFinding {
	// Audit session management security
	sessionTimeoutMinutes := 60 // Simulated session timeout
	maxTimeoutMinutes := 30     // Maximum allowed timeout

	if sessionTimeoutMinutes > maxTimeoutMinutes {
		return &SecurityFinding{
			ID:          generateFindingID("access_session_timeout"),
			Timestamp:   time.Now(),
			AuditorName: aca.name,
			Category:    CategoryAccessControl,
			RiskLevel:   RiskMedium,
			Title:       "Excessive Session Timeout",
			Description: fmt.Sprintf("Session timeout of %d minutes exceeds recommended maximum of %d minutes", sessionTimeoutMinutes, maxTimeoutMinutes),
			Impact:      "Long session timeouts increase risk of session hijacking",
			Evidence: []Evidence{
				{
					Type:        "configuration",
					Description: "Session timeout configuration",
					Data: map[string]string{
						"current_timeout": fmt.Sprintf("%d", sessionTimeoutMinutes),
						"max_recommended": fmt.Sprintf("%d", maxTimeoutMinutes),
					},
					Timestamp: time.Now(),
				},
			},
			Remediation: fmt.Sprintf("Reduce session timeout to maximum %d minutes", maxTimeoutMinutes),
			Status:      StatusOpen,
		}
	}

	return nil
}

// BusinessLogicAuditor audits business logic implementations
type BusinessLogicAuditor struct {
	name        string
	description string
}

func NewBusinessLogicAuditor() *BusinessLogicAuditor {
	return &BusinessLogicAuditor{
		name:        "business_logic_auditor",
		description: "Audits business logic for security vulnerabilities",
	}
}

func (bla *BusinessLogicAuditor) GetName() string        { return bla.name }
func (bla *BusinessLogicAuditor) GetDescription() string { return bla.description }
func (bla *BusinessLogicAuditor) GetRiskLevel() RiskLevel { return RiskHigh }
func (bla *BusinessLogicAuditor) GetCategory() SecurityCategory { return CategoryBusinessLogic }

func (bla *BusinessLogicAuditor) Audit(ctx sdk.Context, target interface{}) ([]SecurityFinding, error) {
	findings := make([]SecurityFinding, 0)
	pc, file, line, _ := runtime.Caller(1)

	// Audit transaction validation
	txValidationFinding := bla.auditTransactionValidation()
	if txValidationFinding != nil {
		txValidationFinding.Location = CodeLocation{
			File:     file,
			Function: runtime.FuncForPC(pc).Name(),
			Line:     line,
			Module:   "business_logic",
		}
		findings = append(findings, *txValidationFinding)
	}

	// Audit dividend calculations
	dividendFinding := bla.auditDividendCalculations()
	if dividendFinding != nil {
		dividendFinding.Location = CodeLocation{
			File:     file,
			Function: runtime.FuncForPC(pc).Name(),
			Line:     line,
			Module:   "business_logic",
		}
		findings = append(findings, *dividendFinding)
	}

	// Audit trading logic
	tradingFinding := bla.auditTradingLogic()
	if tradingFinding != nil {
		tradingFinding.Location = CodeLocation{
			File:     file,
			Function: runtime.FuncForPC(pc).Name(),
			Line:     line,
			Module:   "business_logic",
		}
		findings = append(findings, *tradingFinding)
	}

	return findings, nil
}

func (bla *BusinessLogicAuditor) auditTransactionValidation() *SecurityFinding {
	// Check transaction validation completeness
	validationComplete := true // Simulated check

	if !validationComplete {
		return &SecurityFinding{
			ID:          generateFindingID("business_tx_validation"),
			Timestamp:   time.Now(),
			AuditorName: bla.name,
			Category:    CategoryBusinessLogic,
			RiskLevel:   RiskHigh,
			Title:       "Incomplete Transaction Validation",
			Description: "Transaction validation logic may allow invalid transactions",
			Impact:      "Invalid transactions could compromise system integrity",
			Evidence: []Evidence{
				{
					Type:        "logic_analysis",
					Description: "Transaction validation gap identified",
					Data:        map[string]string{"validation_type": "transaction"},
					Timestamp:   time.Now(),
				},
			},
			Remediation: "Implement comprehensive transaction validation checks",
			Status:      StatusOpen,
		}
	}

	return nil
}

func (bla *BusinessLogicAuditor) auditDividendCalculations() *SecurityFinding {
	// Check dividend calculation precision and overflow protection
	hasOverflowProtection := true // Simulated check

	if !hasOverflowProtection {
		return &SecurityFinding{
			ID:          generateFindingID("business_dividend_overflow"),
			Timestamp:   time.Now(),
			AuditorName: bla.name,
			Category:    CategoryBusinessLogic,
			RiskLevel:   RiskMedium,
			Title:       "Potential Integer Overflow in Dividend Calculations",
			Description: "Dividend calculations may be vulnerable to integer overflow attacks",
			Impact:      "Could lead to incorrect dividend payments and financial losses",
			Evidence: []Evidence{
				{
					Type:        "code_analysis",
					Description: "Missing overflow protection in calculations",
					Data:        map[string]string{"calculation_type": "dividend"},
					Timestamp:   time.Now(),
				},
			},
			Remediation: "Implement safe math operations with overflow checking",
			Status:      StatusOpen,
		}
	}

	return nil
}

func (bla *BusinessLogicAuditor) auditTradingLogic() *SecurityFinding {
	// Check trading logic for manipulation vulnerabilities
	hasManipulationProtection := true // Simulated check

	if !hasManipulationProtection {
		return &SecurityFinding{
			ID:          generateFindingID("business_trading_manipulation"),
			Timestamp:   time.Now(),
			AuditorName: bla.name,
			Category:    CategoryBusinessLogic,
			RiskLevel:   RiskHigh,
			Title:       "Trading Logic Vulnerable to Manipulation",
			Description: "Trading algorithms may be exploitable for price manipulation",
			Impact:      "Attackers could manipulate prices and cause financial losses",
			Evidence: []Evidence{
				{
					Type:        "algorithm_analysis",
					Description: "Price manipulation vulnerability identified",
					Data:        map[string]string{"vulnerability_type": "price_manipulation"},
					Timestamp:   time.Now(),
				},
			},
			Remediation: "Implement anti-manipulation controls and circuit breakers",
			Status:      StatusOpen,
		}
	}

	return nil
}

// InputValidationAuditor audits input validation and sanitization
type InputValidationAuditor struct {
	name        string
	description string
}

func NewInputValidationAuditor() *InputValidationAuditor {
	return &InputValidationAuditor{
		name:        "input_validation_auditor",
		description: "Audits input validation and sanitization mechanisms",
	}
}

func (iva *InputValidationAuditor) GetName() string        { return iva.name }
func (iva *InputValidationAuditor) GetDescription() string { return iva.description }
func (iva *InputValidationAuditor) GetRiskLevel() RiskLevel { return RiskMedium }
func (iva *InputValidationAuditor) GetCategory() SecurityCategory { return CategoryInputValidation }

func (iva *InputValidationAuditor) Audit(ctx sdk.Context, target interface{}) ([]SecurityFinding, error) {
	findings := make([]SecurityFinding, 0)
	pc, file, line, _ := runtime.Caller(1)

	// Audit input sanitization
	sanitizationFinding := iva.auditInputSanitization()
	if sanitizationFinding != nil {
		sanitizationFinding.Location = CodeLocation{
			File:     file,
			Function: runtime.FuncForPC(pc).Name(),
			Line:     line,
			Module:   "input_validation",
		}
		findings = append(findings, *sanitizationFinding)
	}

	// Audit parameter validation
	paramValidationFinding := iva.auditParameterValidation()
	if paramValidationFinding != nil {
		paramValidationFinding.Location = CodeLocation{
			File:     file,
			Function: runtime.FuncForPC(pc).Name(),
			Line:     line,
			Module:   "input_validation",
		}
		findings = append(findings, *paramValidationFinding)
	}

	return findings, nil
}

func (iva *InputValidationAuditor) auditInputSanitization() *SecurityFinding {
	// Check for proper input sanitization
	hasSanitization := true // Simulated check

	if !hasSanitization {
		return &SecurityFinding{
			ID:          generateFindingID("input_sanitization"),
			Timestamp:   time.Now(),
			AuditorName: iva.name,
			Category:    CategoryInputValidation,
			RiskLevel:   RiskMedium,
			Title:       "Missing Input Sanitization",
			Description: "User inputs are not properly sanitized before processing",
			Impact:      "Could lead to injection attacks and data corruption",
			Evidence: []Evidence{
				{
					Type:        "code_review",
					Description: "Missing sanitization routines",
					Data:        map[string]string{"input_type": "user_data"},
					Timestamp:   time.Now(),
				},
			},
			Remediation: "Implement comprehensive input sanitization for all user inputs",
			Status:      StatusOpen,
		}
	}

	return nil
}

func (iva *InputValidationAuditor) auditParameterValidation() *SecurityFinding {
	// Check for parameter validation completeness
	hasCompleteValidation := true // Simulated check

	if !hasCompleteValidation {
		return &SecurityFinding{
			ID:          generateFindingID("input_param_validation"),
			Timestamp:   time.Now(),
			AuditorName: iva.name,
			Category:    CategoryInputValidation,
			RiskLevel:   RiskMedium,
			Title:       "Incomplete Parameter Validation",
			Description: "Function parameters are not fully validated",
			Impact:      "Invalid parameters could cause system errors or security issues",
			Evidence: []Evidence{
				{
					Type:        "static_analysis",
					Description: "Missing parameter validation checks",
					Data:        map[string]string{"validation_type": "parameter"},
					Timestamp:   time.Now(),
				},
			},
			Remediation: "Add comprehensive validation for all function parameters",
			Status:      StatusOpen,
		}
	}

	return nil
}

// DataProtectionAuditor audits data protection mechanisms
type DataProtectionAuditor struct {
	name        string
	description string
}

func NewDataProtectionAuditor() *DataProtectionAuditor {
	return &DataProtectionAuditor{
		name:        "data_protection_auditor",
		description: "Audits data protection and privacy mechanisms",
	}
}

func (dpa *DataProtectionAuditor) GetName() string        { return dpa.name }
func (dpa *DataProtectionAuditor) GetDescription() string { return dpa.description }
func (dpa *DataProtectionAuditor) GetRiskLevel() RiskLevel { return RiskHigh }
func (dpa *DataProtectionAuditor) GetCategory() SecurityCategory { return CategoryDataProtection }

func (dpa *DataProtectionAuditor) Audit(ctx sdk.Context, target interface{}) ([]SecurityFinding, error) {
	findings := make([]SecurityFinding, 0)
	pc, file, line, _ := runtime.Caller(1)

	// Audit data encryption
	encryptionFinding := dpa.auditDataEncryption()
	if encryptionFinding != nil {
		encryptionFinding.Location = CodeLocation{
			File:     file,
			Function: runtime.FuncForPC(pc).Name(),
			Line:     line,
			Module:   "data_protection",
		}
		findings = append(findings, *encryptionFinding)
	}

	// Audit PII handling
	piiFinding := dpa.auditPIIHandling()
	if piiFinding != nil {
		piiFinding.Location = CodeLocation{
			File:     file,
			Function: runtime.FuncForPC(pc).Name(),
			Line:     line,
			Module:   "data_protection",
		}
		findings = append(findings, *piiFinding)
	}

	return findings, nil
}

func (dpa *DataProtectionAuditor) auditDataEncryption() *SecurityFinding {
	// Check for proper data encryption
	dataEncrypted := true // Simulated check

	if !dataEncrypted {
		return &SecurityFinding{
			ID:          generateFindingID("data_encryption"),
			Timestamp:   time.Now(),
			AuditorName: dpa.name,
			Category:    CategoryDataProtection,
			RiskLevel:   RiskHigh,
			Title:       "Unencrypted Sensitive Data",
			Description: "Sensitive data is stored or transmitted without encryption",
			Impact:      "Data breaches could expose sensitive information",
			Evidence: []Evidence{
				{
					Type:        "data_analysis",
					Description: "Unencrypted data detected",
					Data:        map[string]string{"data_type": "sensitive"},
					Timestamp:   time.Now(),
				},
			},
			Remediation: "Implement encryption for all sensitive data at rest and in transit",
			Status:      StatusOpen,
		}
	}

	return nil
}

func (dpa *DataProtectionAuditor) auditPIIHandling() *SecurityFinding {
	// Check PII handling compliance
	piiCompliant := true // Simulated check

	if !piiCompliant {
		return &SecurityFinding{
			ID:          generateFindingID("data_pii_handling"),
			Timestamp:   time.Now(),
			AuditorName: dpa.name,
			Category:    CategoryDataProtection,
			RiskLevel:   RiskHigh,
			Title:       "Non-compliant PII Handling",
			Description: "Personally identifiable information is not handled according to privacy regulations",
			Impact:      "Could result in regulatory violations and privacy breaches",
			Evidence: []Evidence{
				{
					Type:        "compliance_check",
					Description: "PII handling non-compliance detected",
					Data:        map[string]string{"regulation": "GDPR"},
					Timestamp:   time.Now(),
				},
			},
			Remediation: "Implement GDPR-compliant PII handling procedures",
			Status:      StatusOpen,
		}
	}

	return nil
}

// NetworkSecurityAuditor audits network security configurations
type NetworkSecurityAuditor struct {
	name        string
	description string
}

func NewNetworkSecurityAuditor() *NetworkSecurityAuditor {
	return &NetworkSecurityAuditor{
		name:        "network_security_auditor",
		description: "Audits network security configurations and protocols",
	}
}

func (nsa *NetworkSecurityAuditor) GetName() string        { return nsa.name }
func (nsa *NetworkSecurityAuditor) GetDescription() string { return nsa.description }
func (nsa *NetworkSecurityAuditor) GetRiskLevel() RiskLevel { return RiskMedium }
func (nsa *NetworkSecurityAuditor) GetCategory() SecurityCategory { return CategoryNetworkSecurity }

func (nsa *NetworkSecurityAuditor) Audit(ctx sdk.Context, target interface{}) ([]SecurityFinding, error) {
	findings := make([]SecurityFinding, 0)
	pc, file, line, _ := runtime.Caller(1)

	// Audit TLS configuration
	tlsFinding := nsa.auditTLSConfiguration()
	if tlsFinding != nil {
		tlsFinding.Location = CodeLocation{
			File:     file,
			Function: runtime.FuncForPC(pc).Name(),
			Line:     line,
			Module:   "network_security",
		}
		findings = append(findings, *tlsFinding)
	}

	return findings, nil
}

func (nsa *NetworkSecurityAuditor) auditTLSConfiguration() *SecurityFinding {
	// Check TLS configuration
	tlsVersion := "1.3" // Simulated current TLS version
	minVersion := "1.2"

	if tlsVersion < minVersion {
		return &SecurityFinding{
			ID:          generateFindingID("network_tls_version"),
			Timestamp:   time.Now(),
			AuditorName: nsa.name,
			Category:    CategoryNetworkSecurity,
			RiskLevel:   RiskMedium,
			Title:       "Outdated TLS Version",
			Description: fmt.Sprintf("TLS version %s is below minimum required version %s", tlsVersion, minVersion),
			Impact:      "Outdated TLS versions are vulnerable to cryptographic attacks",
			Evidence: []Evidence{
				{
					Type:        "configuration",
					Description: "TLS version analysis",
					Data: map[string]string{
						"current_version": tlsVersion,
						"minimum_version": minVersion,
					},
					Timestamp: time.Now(),
				},
			},
			Remediation: fmt.Sprintf("Upgrade TLS to version %s or higher", minVersion),
			Status:      StatusOpen,
		}
	}

	return nil
}

// ComplianceAuditor audits regulatory compliance
type ComplianceAuditor struct {
	name        string
	description string
}

func NewComplianceAuditor() *ComplianceAuditor {
	return &ComplianceAuditor{
		name:        "compliance_auditor",
		description: "Audits regulatory and compliance requirements",
	}
}

func (ca *ComplianceAuditor) GetName() string        { return ca.name }
func (ca *ComplianceAuditor) GetDescription() string { return ca.description }
func (ca *ComplianceAuditor) GetRiskLevel() RiskLevel { return RiskHigh }
func (ca *ComplianceAuditor) GetCategory() SecurityCategory { return CategoryAuditLogging }

func (ca *ComplianceAuditor) Audit(ctx sdk.Context, target interface{}) ([]SecurityFinding, error) {
	findings := make([]SecurityFinding, 0)
	pc, file, line, _ := runtime.Caller(1)

	// Audit logging compliance
	loggingFinding := ca.auditLoggingCompliance()
	if loggingFinding != nil {
		loggingFinding.Location = CodeLocation{
			File:     file,
			Function: runtime.FuncForPC(pc).Name(),
			Line:     line,
			Module:   "compliance",
		}
		findings = append(findings, *loggingFinding)
	}

	return findings, nil
}

func (ca *ComplianceAuditor) auditLoggingCompliance() *SecurityFinding {
	// Check audit logging compliance
	loggingCompliant := true // Simulated check

	if !loggingCompliant {
		return &SecurityFinding{
			ID:          generateFindingID("compliance_logging"),
			Timestamp:   time.Now(),
			AuditorName: ca.name,
			Category:    CategoryAuditLogging,
			RiskLevel:   RiskMedium,
			Title:       "Non-compliant Audit Logging",
			Description: "Audit logging does not meet regulatory compliance requirements",
			Impact:      "Could result in regulatory violations and audit failures",
			Evidence: []Evidence{
				{
					Type:        "compliance_analysis",
					Description: "Audit logging compliance gap identified",
					Data:        map[string]string{"standard": "SOC2"},
					Timestamp:   time.Now(),
				},
			},
			Remediation: "Implement comprehensive audit logging meeting regulatory standards",
			Status:      StatusOpen,
		}
	}

	return nil
}

// Helper function to generate unique finding IDs
func generateFindingID(prefix string) string {
	timestamp := time.Now().Format("20060102150405")
	return fmt.Sprintf("%s_%s_%d", prefix, timestamp, time.Now().Nanosecond())
}