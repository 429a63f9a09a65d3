package security

import (
	"bufio"
	"context"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// StaticAnalysisScanner performs static code analysis
type StaticAnalysisScanner struct {
	name        string
	description string
	version     string
	patterns    map[string]*regexp.Regexp
}

func NewStaticAnalysisScanner() *StaticAnalysisScanner {
	scanner := &StaticAnalysisScanner{
		name:        "static_analysis_scanner",
		description: "Static code analysis for security vulnerabilities",
		version:     "1.0.0",
		patterns:    make(map[string]*regexp.Regexp),
	}

	// Compile security patterns
	scanner.compilePatterns()
	return scanner
}

func (sas *StaticAnalysisScanner) GetName() string        { return sas.name }
func (sas *StaticAnalysisScanner) GetDescription() string { return sas.description }
func (sas *StaticAnalysisScanner) GetVersion() string     { return sas.version }
func (sas *StaticAnalysisScanner) GetScanTypes() []ScanType {
	return []ScanType{ScanTypeStaticAnalysis, ScanTypeCodeQuality}
}

func (sas *StaticAnalysisScanner) Configure(config map[string]interface{}) error {
	// Configuration would be applied here
	return nil
}

func (sas *StaticAnalysisScanner) Scan(ctx context.Context, target ScanTarget) ([]ScanResult, error) {
	results := make([]ScanResult, 0)

	// Walk through the source code directory
	err := filepath.WalkDir(target.Path, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		// Skip directories and non-Go files for this example
		if d.IsDir() || !strings.HasSuffix(path, ".go") {
			return nil
		}

		// Scan file
		fileResults, err := sas.scanFile(path)
		if err != nil {
			return err
		}

		results = append(results, fileResults...)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to scan directory: %w", err)
	}

	return results, nil
}

func (sas *StaticAnalysisScanner) compilePatterns() {
	patterns := map[string]string{
		"hardcoded_password":    `(?i)(password|pwd|pass|secret|key)\s*[:=]\s*["'][^"']{8,}["']`,
		"sql_injection":         `(?i)(query|sql)\s*\+\s*[^+]*\+`,
		"command_injection":     `(?i)(exec|system|shell|cmd)\s*\(\s*[^)]*\+`,
		"path_traversal":        `\.\./|\.\.\`,
		"weak_crypto":           `(?i)(md5|sha1|des|rc4|crc32)\s*\(`,
		"insecure_random":       `math\.Rand|rand\.New|rand\.Intn`,
		"debug_code":            `(?i)(console\.log|print|debug|todo|fixme|hack)`,
		"unsafe_reflection":     `reflect\.ValueOf.*\.Call`,
		"race_condition":        `(?i)go\s+func.*\{.*\}.*[^}]\s*$`,
		"memory_leak":           `make\s*\(\s*\[\]\s*\w+\s*,\s*\w+\s*\)`,
	}

	for name, pattern := range patterns {
		compiled, err := regexp.Compile(pattern)
		if err == nil {
			sas.patterns[name] = compiled
		}
	}
}

func (sas *StaticAnalysisScanner) scanFile(filePath string) ([]ScanResult, error) {
	results := make([]ScanResult, 0)

	// Read file content
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	// Scan with pattern matching
	results = append(results, sas.scanWithPatterns(filePath, string(content))...)

	// Parse and analyze Go AST
	if strings.HasSuffix(filePath, ".go") {
		astResults, err := sas.analyzeGoAST(filePath, content)
		if err == nil {
			results = append(results, astResults...)
		}
	}

	return results, nil
}

func (sas *StaticAnalysisScanner) scanWithPatterns(filePath, content string) []ScanResult {
	results := make([]ScanResult, 0)
	lines := strings.Split(content, "\n")

	for patternName, pattern := range sas.patterns {
		matches := pattern.FindAllStringIndex(content, -1)
		for _, match := range matches {
			// Find line number
			lineNum := sas.findLineNumber(content, match[0])
			
			result := ScanResult{
				ID:              generateVulnerabilityID(),
				ScannerName:     sas.name,
				Timestamp:       time.Now(),
				Target:          filePath,
				VulnerabilityID: patternName,
				Title:           sas.getVulnerabilityTitle(patternName),
				Description:     sas.getVulnerabilityDescription(patternName),
				Severity:        sas.getVulnerabilitySeverity(patternName),
				Confidence:      sas.getConfidenceLevel(patternName),
				Category:        sas.getVulnerabilityCategory(patternName),
				Location: VulnLocation{
					FilePath:     filePath,
					LineNumber:   lineNum,
					CodeSnippet:  sas.getCodeSnippet(lines, lineNum),
				},
				Evidence: ScanEvidence{
					Type:        "pattern_match",
					Description: "Pattern matching detection",
					Data: map[string]string{
						"pattern":     pattern.String(),
						"match_text":  content[match[0]:match[1]],
					},
					Timestamp: time.Now(),
				},
				Remediation: sas.getRemediation(patternName),
				References:  sas.getReferences(patternName),
			}

			results = append(results, result)
		}
	}

	return results
}

func (sas *StaticAnalysisScanner) analyzeGoAST(filePath string, content []byte) ([]ScanResult, error) {
	results := make([]ScanResult, 0)

	// Parse Go source code
	fset := token.NewFileSet()
	node, err := parser.ParseFile(fset, filePath, content, parser.ParseComments)
	if err != nil {
		return results, err
	}

	// Analyze AST for security issues
	ast.Inspect(node, func(n ast.Node) bool {
		switch x := n.(type) {
		case *ast.CallExpr:
			// Check for dangerous function calls
			if result := sas.checkDangerousCall(fset, x); result != nil {
				result.Target = filePath
				results = append(results, *result)
			}
		case *ast.GenDecl:
			// Check for insecure variable declarations
			if result := sas.checkInsecureDecl(fset, x); result != nil {
				result.Target = filePath
				results = append(results, *result)
			}
		}
		return true
	})

	return results, nil
}

func (sas *StaticAnalysisScanner) checkDangerousCall(fset *token.FileSet, call *ast.CallExpr) *ScanResult {
	// Check function name
	if ident, ok := call.Fun.(*ast.Ident); ok {
		dangerousFunctions := map[string]string{
			"exec":     "Command execution function",
			"system":   "System command execution",
			"eval":     "Dynamic code evaluation",
			"unsafe":   "Unsafe memory operations",
		}

		if desc, isDangerous := dangerousFunctions[ident.Name]; isDangerous {
			pos := fset.Position(call.Pos())
			return &ScanResult{
				ID:              generateVulnerabilityID(),
				ScannerName:     sas.name,
				Timestamp:       time.Now(),
				VulnerabilityID: "dangerous_function_call",
				Title:           "Dangerous Function Call",
				Description:     desc,
				Severity:        RiskHigh,
				Confidence:      80.0,
				Category:        VulnCategoryBusinessLogic,
				Location: VulnLocation{
					LineNumber:   pos.Line,
					ColumnNumber: pos.Column,
					FunctionName: ident.Name,
				},
				Evidence: ScanEvidence{
					Type:        "ast_analysis",
					Description: "AST analysis detected dangerous function call",
					Data: map[string]string{
						"function": ident.Name,
						"location": pos.String(),
					},
					Timestamp: time.Now(),
				},
			}
		}
	}

	return nil
}

func (sas *StaticAnalysisScanner) checkInsecureDecl(fset *token.FileSet, decl *ast.GenDecl) *ScanResult {
	// Check for insecure variable declarations
	if decl.Tok == token.VAR {
		for _, spec := range decl.Specs {
			if valueSpec, ok := spec.(*ast.ValueSpec); ok {
				for _, value := range valueSpec.Values {
					if basicLit, ok := value.(*ast.BasicLit); ok {
						// Check for hardcoded secrets
						if sas.looksLikeSecret(basicLit.Value) {
							pos := fset.Position(basicLit.Pos())
							return &ScanResult{
								ID:              generateVulnerabilityID(),
								ScannerName:     sas.name,
								Timestamp:       time.Now(),
								VulnerabilityID: "hardcoded_secret",
								Title:           "Hardcoded Secret",
								Description:     "Potential hardcoded secret or credential",
								Severity:        RiskHigh,
								Confidence:      70.0,
								Category:        VulnCategoryHardcodedSecrets,
								Location: VulnLocation{
									LineNumber:   pos.Line,
									ColumnNumber: pos.Column,
								},
							}
						}
					}
				}
			}
		}
	}

	return nil
}

func (sas *StaticAnalysisScanner) looksLikeSecret(value string) bool {
	// Remove quotes
	value = strings.Trim(value, `"'`)
	
	// Check length and patterns that look like secrets
	if len(value) < 8 {
		return false
	}

	// Check for patterns typical of secrets
	patterns := []string{
		`^[A-Za-z0-9+/]{40,}={0,2}$`, // Base64-like
		`^[a-f0-9]{32,}$`,            // Hex
		`^[A-Z0-9]{20,}$`,            // All caps alphanumeric
	}

	for _, pattern := range patterns {
		matched, _ := regexp.MatchString(pattern, value)
		if matched {
			return true
		}
	}

	return false
}

// Helper methods for vulnerability details

func (sas *StaticAnalysisScanner) getVulnerabilityTitle(patternName string) string {
	titles := map[string]string{
		"hardcoded_password":    "Hardcoded Password",
		"sql_injection":         "SQL Injection Risk",
		"command_injection":     "Command Injection Risk",
		"path_traversal":        "Path Traversal",
		"weak_crypto":           "Weak Cryptography",
		"insecure_random":       "Insecure Random Number Generation",
		"debug_code":            "Debug Code in Production",
		"unsafe_reflection":     "Unsafe Reflection Usage",
		"race_condition":        "Potential Race Condition",
		"memory_leak":           "Potential Memory Leak",
	}
	
	if title, exists := titles[patternName]; exists {
		return title
	}
	return "Security Issue"
}

func (sas *StaticAnalysisScanner) getVulnerabilityDescription(patternName string) string {
	descriptions := map[string]string{
		"hardcoded_password":    "Hardcoded passwords in source code can be easily discovered by attackers",
		"sql_injection":         "Dynamic SQL query construction can lead to SQL injection vulnerabilities",
		"command_injection":     "Dynamic command construction can lead to command injection attacks",
		"path_traversal":        "Path traversal sequences can allow access to unauthorized files",
		"weak_crypto":           "Weak cryptographic algorithms are vulnerable to attacks",
		"insecure_random":       "Insecure random number generators produce predictable values",
		"debug_code":            "Debug code should not be present in production deployments",
		"unsafe_reflection":     "Unsafe reflection usage can lead to security vulnerabilities",
		"race_condition":        "Concurrent access without proper synchronization can cause race conditions",
		"memory_leak":           "Improper memory allocation can lead to memory leaks",
	}
	
	if desc, exists := descriptions[patternName]; exists {
		return desc
	}
	return "Security vulnerability detected"
}

func (sas *StaticAnalysisScanner) getVulnerabilitySeverity(patternName string) RiskLevel {
	severities := map[string]RiskLevel{
		"hardcoded_password":    RiskHigh,
		"sql_injection":         RiskHigh,
		"command_injection":     RiskCritical,
		"path_traversal":        RiskHigh,
		"weak_crypto":           RiskMedium,
		"insecure_random":       RiskMedium,
		"debug_code":            RiskLow,
		"unsafe_reflection":     RiskMedium,
		"race_condition":        RiskMedium,
		"memory_leak":           RiskLow,
	}
	
	if severity, exists := severities[patternName]; exists {
		return severity
	}
	return RiskMedium
}

func (sas *StaticAnalysisScanner) getConfidenceLevel(patternName string) float64 {
	confidence := map[string]float64{
		"hardcoded_password":    85.0,
		"sql_injection":         75.0,
		"command_injection":     80.0,
		"path_traversal":        90.0,
		"weak_crypto":           95.0,
		"insecure_random":       85.0,
		"debug_code":            70.0,
		"unsafe_reflection":     80.0,
		"race_condition":        60.0,
		"memory_leak":           65.0,
	}
	
	if conf, exists := confidence[patternName]; exists {
		return conf
	}
	return 50.0
}

func (sas *StaticAnalysisScanner) getVulnerabilityCategory(patternName string) VulnCategory {
	categories := map[string]VulnCategory{
		"hardcoded_password":    VulnCategoryHardcodedSecrets,
		"sql_injection":         VulnCategoryInjection,
		"command_injection":     VulnCategoryInjection,
		"path_traversal":        VulnCategoryInputValidation,
		"weak_crypto":           VulnCategoryCryptography,
		"insecure_random":       VulnCategoryCryptography,
		"debug_code":            VulnCategoryConfigurationError,
		"unsafe_reflection":     VulnCategoryBusinessLogic,
		"race_condition":        VulnCategoryRaceCondition,
		"memory_leak":           VulnCategoryMemoryCorruption,
	}
	
	if category, exists := categories[patternName]; exists {
		return category
	}
	return VulnCategoryBusinessLogic
}

func (sas *StaticAnalysisScanner) getRemediation(patternName string) string {
	remediations := map[string]string{
		"hardcoded_password":    "Store passwords in secure configuration or environment variables",
		"sql_injection":         "Use parameterized queries or prepared statements",
		"command_injection":     "Avoid dynamic command construction, use safe APIs",
		"path_traversal":        "Validate and sanitize file paths, use path.Clean()",
		"weak_crypto":           "Use strong cryptographic algorithms like AES-256, SHA-256",
		"insecure_random":       "Use cryptographically secure random number generators",
		"debug_code":            "Remove debug code before production deployment",
		"unsafe_reflection":     "Avoid reflection or implement proper input validation",
		"race_condition":        "Use proper synchronization mechanisms like mutexes",
		"memory_leak":           "Implement proper memory management and cleanup",
	}
	
	if remediation, exists := remediations[patternName]; exists {
		return remediation
	}
	return "Review and fix the identified security issue"
}

func (sas *StaticAnalysisScanner) getReferences(patternName string) []string {
	references := map[string][]string{
		"hardcoded_password":    {"CWE-798", "OWASP-A07"},
		"sql_injection":         {"CWE-89", "OWASP-A03"},
		"command_injection":     {"CWE-78", "OWASP-A03"},
		"path_traversal":        {"CWE-22", "OWASP-A01"},
		"weak_crypto":           {"CWE-327", "OWASP-A02"},
		"insecure_random":       {"CWE-338", "OWASP-A02"},
		"debug_code":            {"CWE-489"},
		"unsafe_reflection":     {"CWE-470"},
		"race_condition":        {"CWE-362"},
		"memory_leak":           {"CWE-401"},
	}
	
	if refs, exists := references[patternName]; exists {
		return refs
	}
	return []string{}
}

func (sas *StaticAnalysisScanner) findLineNumber(content string, offset int) int {
	lineNum := 1
	for i := 0; i < offset && i < len(content); i++ {
		if content[i] == '\n' {
			lineNum++
		}
	}
	return lineNum
}

func (sas *StaticAnalysisScanner) getCodeSnippet(lines []string, lineNum int) string {
	if lineNum <= 0 || lineNum > len(lines) {
		return ""
	}
	
	// Get context around the line
	start := lineNum - 3
	end := lineNum + 2
	
	if start < 1 {
		start = 1
	}
	if end > len(lines) {
		end = len(lines)
	}
	
	snippet := ""
	for i := start; i <= end; i++ {
		prefix := "  "
		if i == lineNum {
			prefix = "> "
		}
		snippet += fmt.Sprintf("%s%d: %s\n", prefix, i, lines[i-1])
	}
	
	return strings.TrimSpace(snippet)
}

// DependencyScanner scans for vulnerable dependencies
type DependencyScanner struct {
	name        string
	description string
	version     string
}

func NewDependencyScanner() *DependencyScanner {
	return &DependencyScanner{
		name:        "dependency_scanner",
		description: "Scans for vulnerable dependencies and licenses",
		version:     "1.0.0",
	}
}

func (ds *DependencyScanner) GetName() string        { return ds.name }
func (ds *DependencyScanner) GetDescription() string { return ds.description }
func (ds *DependencyScanner) GetVersion() string     { return ds.version }
func (ds *DependencyScanner) GetScanTypes() []ScanType {
	return []ScanType{ScanTypeDependency, ScanTypeLicense}
}

func (ds *DependencyScanner) Configure(config map[string]interface{}) error {
	return nil
}

func (ds *DependencyScanner) Scan(ctx context.Context, target ScanTarget) ([]ScanResult, error) {
	results := make([]ScanResult, 0)

	// Scan go.mod for dependencies
	goModPath := filepath.Join(target.Path, "go.mod")
	if _, err := os.Stat(goModPath); err == nil {
		goResults, err := ds.scanGoMod(goModPath)
		if err == nil {
			results = append(results, goResults...)
		}
	}

	return results, nil
}

func (ds *DependencyScanner) scanGoMod(goModPath string) ([]ScanResult, error) {
	results := make([]ScanResult, 0)

	file, err := os.Open(goModPath)
	if err != nil {
		return results, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		// Look for require statements
		if strings.HasPrefix(line, "require ") || (strings.Contains(line, "/") && !strings.HasPrefix(line, "//")) {
			if result := ds.checkDependency(line, goModPath, lineNum); result != nil {
				results = append(results, *result)
			}
		}
	}

	return results, nil
}

func (ds *DependencyScanner) checkDependency(line, filePath string, lineNum int) *ScanResult {
	// Simplified dependency vulnerability check
	// In a real implementation, this would query a vulnerability database
	
	vulnerableDeps := map[string]string{
		"github.com/dgrijalva/jwt-go": "JWT library with signature validation bypass",
		"github.com/gorilla/websocket": "Outdated websocket library with potential issues",
		"gopkg.in/yaml.v2": "YAML library with potential parsing vulnerabilities",
	}

	for vulnDep, description := range vulnerableDeps {
		if strings.Contains(line, vulnDep) {
			return &ScanResult{
				ID:              generateVulnerabilityID(),
				ScannerName:     ds.name,
				Timestamp:       time.Now(),
				Target:          filePath,
				VulnerabilityID: "vulnerable_dependency",
				Title:           "Vulnerable Dependency",
				Description:     description,
				Severity:        RiskHigh,
				Confidence:      90.0,
				Category:        VulnCategoryDependency,
				Location: VulnLocation{
					FilePath:   filePath,
					LineNumber: lineNum,
				},
				Evidence: ScanEvidence{
					Type:        "dependency_analysis",
					Description: "Vulnerable dependency detected",
					Data: map[string]string{
						"dependency": vulnDep,
						"line":       line,
					},
					Timestamp: time.Now(),
				},
				Remediation: "Update to latest secure version of the dependency",
			}
		}
	}

	return nil
}

// SecretsScanner scans for hardcoded secrets and credentials
type SecretsScanner struct {
	name        string
	description string
	version     string
	secretPatterns map[string]*regexp.Regexp
}

func NewSecretsScanner() *SecretsScanner {
	scanner := &SecretsScanner{
		name:        "secrets_scanner",
		description: "Scans for hardcoded secrets and credentials",
		version:     "1.0.0",
		secretPatterns: make(map[string]*regexp.Regexp),
	}

	scanner.compileSecretPatterns()
	return scanner
}

func (ss *SecretsScanner) GetName() string        { return ss.name }
func (ss *SecretsScanner) GetDescription() string { return ss.description }
func (ss *SecretsScanner) GetVersion() string     { return ss.version }
func (ss *SecretsScanner) GetScanTypes() []ScanType {
	return []ScanType{ScanTypeSecrets}
}

func (ss *SecretsScanner) Configure(config map[string]interface{}) error {
	return nil
}

func (ss *SecretsScanner) Scan(ctx context.Context, target ScanTarget) ([]ScanResult, error) {
	results := make([]ScanResult, 0)

	err := filepath.WalkDir(target.Path, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		// Skip binary files
		if ss.isBinaryFile(path) {
			return nil
		}

		fileResults, err := ss.scanFileForSecrets(path)
		if err == nil {
			results = append(results, fileResults...)
		}

		return nil
	})

	return results, err
}

func (ss *SecretsScanner) compileSecretPatterns() {
	patterns := map[string]string{
		"aws_access_key":    `AKIA[0-9A-Z]{16}`,
		"aws_secret_key":    `[0-9a-zA-Z/+]{40}`,
		"api_key":           `(?i)api[_-]?key['"]\s*[:=]\s*['"][0-9a-zA-Z]{20,}['"]`,
		"private_key":       `-----BEGIN.*PRIVATE KEY-----`,
		"password":          `(?i)password['"]\s*[:=]\s*['"][^'"]{8,}['"]`,
		"database_url":      `(?i)(postgres|mysql|mongodb)://[^:]+:[^@]+@`,
		"jwt_secret":        `(?i)jwt[_-]?secret['"]\s*[:=]\s*['"][^'"]{20,}['"]`,
		"github_token":      `ghp_[0-9a-zA-Z]{36}`,
		"slack_token":       `xox[baprs]-[0-9a-zA-Z-]{10,48}`,
		"google_api":        `AIza[0-9A-Za-z-_]{35}`,
	}

	for name, pattern := range patterns {
		compiled, err := regexp.Compile(pattern)
		if err == nil {
			ss.secretPatterns[name] = compiled
		}
	}
}

func (ss *SecretsScanner) scanFileForSecrets(filePath string) ([]ScanResult, error) {
	results := make([]ScanResult, 0)

	content, err := os.ReadFile(filePath)
	if err != nil {
		return results, err
	}

	contentStr := string(content)
	lines := strings.Split(contentStr, "\n")

	for patternName, pattern := range ss.secretPatterns {
		matches := pattern.FindAllStringIndex(contentStr, -1)
		for _, match := range matches {
			lineNum := ss.findLineNumber(contentStr, match[0])
			
			result := ScanResult{
				ID:              generateVulnerabilityID(),
				ScannerName:     ss.name,
				Timestamp:       time.Now(),
				Target:          filePath,
				VulnerabilityID: patternName,
				Title:           "Hardcoded Secret Detected",
				Description:     fmt.Sprintf("Potential %s found in source code", patternName),
				Severity:        RiskHigh,
				Confidence:      85.0,
				Category:        VulnCategoryHardcodedSecrets,
				Location: VulnLocation{
					FilePath:     filePath,
					LineNumber:   lineNum,
					CodeSnippet:  ss.getCodeSnippet(lines, lineNum),
				},
				Evidence: ScanEvidence{
					Type:        "pattern_match",
					Description: "Secret pattern detected",
					Data: map[string]string{
						"pattern_type": patternName,
						"match_text":   contentStr[match[0]:match[1]],
					},
					Timestamp: time.Now(),
				},
				Remediation: "Remove hardcoded secrets and use secure configuration management",
				References:  []string{"CWE-798", "OWASP-A07"},
			}

			results = append(results, result)
		}
	}

	return results, nil
}

func (ss *SecretsScanner) isBinaryFile(path string) bool {
	binaryExts := []string{".exe", ".dll", ".so", ".dylib", ".bin", ".jpg", ".png", ".gif", ".zip", ".tar", ".gz"}
	ext := strings.ToLower(filepath.Ext(path))
	
	for _, binExt := range binaryExts {
		if ext == binExt {
			return true
		}
	}
	
	return false
}

func (ss *SecretsScanner) findLineNumber(content string, offset int) int {
	lineNum := 1
	for i := 0; i < offset && i < len(content); i++ {
		if content[i] == '\n' {
			lineNum++
		}
	}
	return lineNum
}

func (ss *SecretsScanner) getCodeSnippet(lines []string, lineNum int) string {
	if lineNum <= 0 || lineNum > len(lines) {
		return ""
	}
	
	// Get context around the line (mask the secret)
	start := lineNum - 2
	end := lineNum + 1
	
	if start < 1 {
		start = 1
	}
	if end > len(lines) {
		end = len(lines)
	}
	
	snippet := ""
	for i := start; i <= end; i++ {
		prefix := "  "
		if i == lineNum {
			prefix = "> "
			// Mask the line with the secret
			snippet += fmt.Sprintf("%s%d: %s\n", prefix, i, "*** SECRET DETECTED ***")
		} else {
			snippet += fmt.Sprintf("%s%d: %s\n", prefix, i, lines[i-1])
		}
	}
	
	return strings.TrimSpace(snippet)
}

// Additional scanner implementations would follow similar patterns...
// CryptographyScanner and SmartContractScanner would be implemented here

// CryptographyScanner placeholder
type CryptographyScanner struct {
	name        string
	description string
	version     string
}

func NewCryptographyScanner() *CryptographyScanner {
	return &CryptographyScanner{
		name:        "cryptography_scanner",
		description: "Scans for cryptographic vulnerabilities",
		version:     "1.0.0",
	}
}

func (cs *CryptographyScanner) GetName() string        { return cs.name }
func (cs *CryptographyScanner) GetDescription() string { return cs.description }
func (cs *CryptographyScanner) GetVersion() string     { return cs.version }
func (cs *CryptographyScanner) GetScanTypes() []ScanType {
	return []ScanType{ScanTypeCryptography}
}

func (cs *CryptographyScanner) Configure(config map[string]interface{}) error {
	return nil
}

func (cs *CryptographyScanner) Scan(ctx context.Context, target ScanTarget) ([]ScanResult, error) {
	// Implementation would scan for cryptographic vulnerabilities
	return []ScanResult{}, nil
}

// SmartContractScanner placeholder
type SmartContractScanner struct {
	name        string
	description string
	version     string
}

func NewSmartContractScanner() *SmartContractScanner {
	return &SmartContractScanner{
		name:        "smart_contract_scanner",
		description: "Scans for smart contract vulnerabilities",
		version:     "1.0.0",
	}
}

func (scs *SmartContractScanner) GetName() string        { return scs.name }
func (scs *SmartContractScanner) GetDescription() string { return scs.description }
func (scs *SmartContractScanner) GetVersion() string     { return scs.version }
func (scs *SmartContractScanner) GetScanTypes() []ScanType {
	return []ScanType{ScanTypeSmartContract}
}

func (scs *SmartContractScanner) Configure(config map[string]interface{}) error {
	return nil
}

func (scs *SmartContractScanner) Scan(ctx context.Context, target ScanTarget) ([]ScanResult, error) {
	// Implementation would scan for smart contract vulnerabilities
	return []ScanResult{}, nil
}