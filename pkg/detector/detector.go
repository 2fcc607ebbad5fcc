package detector

import (
	"fmt"
	"regexp"

	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
)

// Signature is an immutable (pattern, label) pair matched against raw input.
type Signature struct {
	Label   string
	pattern *regexp.Regexp
}

// The canonical SQL injection signature table. Order matters: several
// patterns overlap on crafted input and only the first matching label is
// reported, so the table is evaluated top to bottom and the first hit wins.
var sqlSignatures = []Signature{
	{Label: "UNION/SELECT detected", pattern: regexp.MustCompile(`(?i)(\bUNION\b.*\bSELECT\b|\bSELECT\b.*\bFROM\b)`)},
	{Label: "INSERT/DROP detected", pattern: regexp.MustCompile(`(?i)(\bINSERT\b.*\bINTO\b|\bDROP\b.*\bTABLE\b)`)},
	{Label: "SQL comment detected", pattern: regexp.MustCompile(`(--|/\*|\*/)`)},
	{Label: "SQL escape sequence detected", pattern: regexp.MustCompile(`(?i)('\s*\)|'\s*OR|'\s*AND)`)},
	{Label: "UNION SELECT detected", pattern: regexp.MustCompile(`(?i)\bUNION\s+SELECT\b`)},
	{Label: "Boolean-based SQLi detected", pattern: regexp.MustCompile(`(?i)(\bOR\b\s*1\s*=\s*1|\bAND\b\s*1\s*=\s*1)`)},
	{Label: "Time-based SQLi detected", pattern: regexp.MustCompile(`(?i)(SLEEP\s*\(|BENCHMARK\s*\()`)},
	{Label: "Stacked query detected", pattern: regexp.MustCompile(`(?i);\s*(SELECT|INSERT|UPDATE|DELETE|DROP)`)},
	{Label: "Stored procedure detected", pattern: regexp.MustCompile(`(?i)(xp_|sp_)`)},
	{Label: "Type conversion detected", pattern: regexp.MustCompile(`(?i)(CAST\s*\(|CONVERT\s*\()`)},
}

// Result is the outcome of a single classification. The zero value means no
// signature matched.
type Result struct {
	Matched bool
	Label   string
}

// Config carries optional user-defined signatures. They are evaluated after
// the canonical table, in declared order.
type Config struct {
	CustomSignatures []struct {
		Name    string `mapstructure:"name"`
		Pattern string `mapstructure:"pattern"`
	} `mapstructure:"custom_signatures"`
}

// Detector classifies text input against an ordered signature list. It holds
// no mutable state after construction and is safe for concurrent use.
type Detector struct {
	logger     *logrus.Logger
	signatures []Signature
}

func NewDetector(logger *logrus.Logger) *Detector {
	return &Detector{
		logger:     logger,
		signatures: sqlSignatures,
	}
}

// NewDetectorFromSettings builds a detector with extra custom signatures
// decoded from configuration. Invalid patterns are a startup error.
func NewDetectorFromSettings(logger *logrus.Logger, settings map[string]interface{}) (*Detector, error) {
	var cfg Config
	if err := mapstructure.Decode(settings, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode detector settings: %w", err)
	}

	signatures := make([]Signature, 0, len(sqlSignatures)+len(cfg.CustomSignatures))
	signatures = append(signatures, sqlSignatures...)
	for _, custom := range cfg.CustomSignatures {
		if custom.Pattern == "" {
			return nil, fmt.Errorf("custom signature %q has an empty pattern", custom.Name)
		}
		pattern, err := regexp.Compile(custom.Pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid custom signature pattern %q: %w", custom.Name, err)
		}
		signatures = append(signatures, Signature{Label: custom.Name, pattern: pattern})
	}

	return &Detector{logger: logger, signatures: signatures}, nil
}

// Classify runs the input through the signature table and returns the label
// of the first satisfied signature. Matching is a substring regex search on
// the raw input; no decoding or normalization happens first, so encoded or
// obfuscated payloads are not detected. Any string is accepted, including
// the empty one, and the call never fails.
func (d *Detector) Classify(input string) Result {
	for _, sig := range d.signatures {
		if sig.pattern.MatchString(input) {
			d.logger.WithField("label", sig.Label).Debug("signature matched")
			return Result{Matched: true, Label: sig.Label}
		}
	}
	return Result{}
}
