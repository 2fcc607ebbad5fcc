package alert

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSimulatedAlert(t *testing.T) {
	a := NewSimulatedAlert("PORT SCAN", "10.0.0.1", "10.0.0.2", "nmap sweep", 0)

	assert.Equal(t, ModeSimulated, a.DetectionMode)
	assert.Equal(t, DefaultSimulatedPriority, a.RulePriority)
	assert.Equal(t, "PORT SCAN", a.AttackType)
	assert.NotEqual(t, "", a.ID.String())
	assert.False(t, a.AlertTime.IsZero())
}

func TestNewSimulatedAlert_ExplicitPriority(t *testing.T) {
	a := NewSimulatedAlert("DDOS", "10.0.0.1", "10.0.0.2", "flood", 6)
	assert.Equal(t, 6, a.RulePriority)
}

func TestNewDetectionAlert(t *testing.T) {
	a := NewDetectionAlert("SQL comment detected", "admin' OR 1=1 --", "1.2.3.4", "5.6.7.8")

	assert.Equal(t, AttackTypeSQLInjection, a.AttackType)
	assert.Equal(t, ModeReal, a.DetectionMode)
	assert.Equal(t, RealDetectionPriority, a.RulePriority)
	assert.Equal(t, "Detected: SQL comment detected - Input: admin' OR 1=1 --", a.Summary)
}

func TestNewDetectionAlert_TruncatesLongInput(t *testing.T) {
	input := strings.Repeat("A", 500) + "' OR 1=1"
	a := NewDetectionAlert("SQL escape sequence detected", input, "1.2.3.4", "5.6.7.8")

	assert.Contains(t, a.Summary, strings.Repeat("A", SummaryExcerptLen))
	assert.NotContains(t, a.Summary, strings.Repeat("A", SummaryExcerptLen+1))
}

func TestExcerpt(t *testing.T) {
	assert.Equal(t, "", Excerpt(""))
	assert.Equal(t, "short", Excerpt("short"))

	exact := strings.Repeat("x", SummaryExcerptLen)
	assert.Equal(t, exact, Excerpt(exact))

	long := strings.Repeat("x", SummaryExcerptLen+1)
	assert.Equal(t, exact, Excerpt(long))

	// Truncation counts characters, not bytes.
	wide := strings.Repeat("é", SummaryExcerptLen+10)
	assert.Equal(t, strings.Repeat("é", SummaryExcerptLen), Excerpt(wide))
}

func TestHighPriorityThreshold(t *testing.T) {
	// A simulated alert ingested at priority 7 is already high priority;
	// real detections sit above the floor by construction.
	sim := NewSimulatedAlert("DDOS", "10.0.0.1", "10.0.0.2", "flood", 7)
	assert.GreaterOrEqual(t, sim.RulePriority, HighPriorityThreshold)

	low := NewSimulatedAlert("PORT SCAN", "10.0.0.1", "10.0.0.2", "sweep", 0)
	assert.Less(t, low.RulePriority, HighPriorityThreshold)

	det := NewDetectionAlert("SQL comment detected", "x --", "1.2.3.4", "5.6.7.8")
	assert.GreaterOrEqual(t, det.RulePriority, HighPriorityThreshold)
}

func TestDetectionMode_Valid(t *testing.T) {
	assert.True(t, ModeSimulated.Valid())
	assert.True(t, ModeReal.Valid())
	assert.False(t, DetectionMode("").Valid())
	assert.False(t, DetectionMode("synthetic").Valid())
}
