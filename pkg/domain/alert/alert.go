package alert

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DetectionMode tells whether an alert was synthesized for demonstration or
// produced by the signature matcher.
type DetectionMode string

const (
	ModeSimulated DetectionMode = "simulated"
	ModeReal      DetectionMode = "real"
)

const (
	AttackTypeSQLInjection = "SQL INJECTION"

	// Rule priorities follow the original Snort convention: detections
	// produced by the matcher outrank synthetic drill traffic.
	RealDetectionPriority    = 8
	DefaultSimulatedPriority = 3

	// HighPriorityThreshold marks the floor for the stats view: alerts at
	// priority 7 and up count as high priority, so real detections always
	// qualify and simulated alerts can too.
	HighPriorityThreshold = 7

	// SummaryExcerptLen is the documented cap on how much of the offending
	// input is copied into an alert summary and detection response.
	SummaryExcerptLen = 100
)

func (m DetectionMode) Valid() bool {
	return m == ModeSimulated || m == ModeReal
}

type Alert struct {
	ID            uuid.UUID     `json:"id" gorm:"column:id"`
	AttackType    string        `json:"attack_type" gorm:"column:attack_type"`
	SourceIP      string        `json:"source_ip" gorm:"column:source_ip"`
	DestinationIP string        `json:"destination_ip" gorm:"column:destination_ip"`
	RulePriority  int           `json:"rule_priority" gorm:"column:rule_priority"`
	Summary       string        `json:"summary" gorm:"column:summary"`
	AlertTime     time.Time     `json:"alert_time" gorm:"column:alert_time"`
	DetectionMode DetectionMode `json:"detection_mode" gorm:"column:detection_mode"`
}

func (Alert) TableName() string {
	return "alerts"
}

// NewSimulatedAlert normalizes a synthetic alert for ingestion: the mode is
// forced to simulated regardless of what the caller sent, and an unset
// priority falls back to the default.
func NewSimulatedAlert(attackType, sourceIP, destinationIP, summary string, rulePriority int) *Alert {
	if rulePriority == 0 {
		rulePriority = DefaultSimulatedPriority
	}
	return &Alert{
		ID:            uuid.New(),
		AttackType:    attackType,
		SourceIP:      sourceIP,
		DestinationIP: destinationIP,
		RulePriority:  rulePriority,
		Summary:       summary,
		AlertTime:     time.Now(),
		DetectionMode: ModeSimulated,
	}
}

// NewDetectionAlert builds the alert recorded when the signature matcher
// fires. The summary embeds the matched label and an excerpt of the raw
// input, capped at SummaryExcerptLen characters.
func NewDetectionAlert(label, input, sourceIP, destinationIP string) *Alert {
	return &Alert{
		ID:            uuid.New(),
		AttackType:    AttackTypeSQLInjection,
		SourceIP:      sourceIP,
		DestinationIP: destinationIP,
		RulePriority:  RealDetectionPriority,
		Summary:       fmt.Sprintf("Detected: %s - Input: %s", label, Excerpt(input)),
		AlertTime:     time.Now(),
		DetectionMode: ModeReal,
	}
}

// Excerpt returns the first SummaryExcerptLen characters of the input. The
// truncation is an explicit contract: callers reading summaries must not
// assume they contain the full offending payload.
func Excerpt(input string) string {
	runes := []rune(input)
	if len(runes) <= SummaryExcerptLen {
		return input
	}
	return string(runes[:SummaryExcerptLen])
}
