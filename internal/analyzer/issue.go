// Package analyzer implements the diagnostic plugins: checks for BSL
// modules covering closing-comment mismatches, dead code left in
// comments, unused locals/parameters, duplicate branch conditions,
// inefficient string concatenation, empty exception handlers,
// Structure constructor misuse, and plain-text style checks for
// overlong and trailing-whitespace lines.
//
// Each plugin embeds visitor.BasePlugin and overrides only the hooks it
// needs, following the explicit (non-reflective) registration model from
// internal/visitor.
package analyzer

import "github.com/go-bsl/bslint/internal/token"

// Severity classifies how serious an Issue is.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityMinor    Severity = "minor"
	SeverityMajor    Severity = "major"
	SeverityCritical Severity = "critical"
)

// Kind identifies which plugin raised an Issue, used as the stable rule
// key in the emitted report.
type Kind string

const (
	KindClosingCommentMismatch Kind = "closing-comment-mismatch"
	KindCommentedOutCode       Kind = "commented-out-code"
	KindUnusedLocalVariable    Kind = "unused-local-variable"
	KindUnusedParameter        Kind = "unused-parameter"
	KindDuplicateCondition     Kind = "duplicate-condition"
	KindInefficientConcat      Kind = "inefficient-string-concat"
	KindEmptyExceptBlock       Kind = "empty-except-block"
	KindStructureCtorMisuse    Kind = "structure-constructor-misuse"
	KindLineTooLong            Kind = "line-too-long"
	KindTrailingWhitespace     Kind = "trailing-whitespace"
)

// Type classifies an Issue the way spec §3/§6 model it: Bug, Vulnerability,
// or CodeSmell, mirroring SonarQube's own issue-type vocabulary. The zero
// value (an empty Type) is reported as CODE_SMELL by internal/report,
// since every plugin in the current core set raises code smells rather
// than bugs or vulnerabilities.
type Type string

const (
	TypeCodeSmell     Type = "code-smell"
	TypeBug           Type = "bug"
	TypeVulnerability Type = "vulnerability"
)

// Issue is one diagnostic finding.
type Issue struct {
	Kind          Kind
	Type          Type
	Severity      Severity
	Message       string
	EffortMinutes int
	Place         token.Place
}
