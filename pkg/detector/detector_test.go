package detector

import (
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetector_Classify(t *testing.T) {
	d := NewDetector(logrus.New())

	tests := []struct {
		name          string
		input         string
		expectMatch   bool
		expectedLabel string
	}{
		{
			name:        "empty input",
			input:       "",
			expectMatch: false,
		},
		{
			name:        "benign input",
			input:       "hello world",
			expectMatch: false,
		},
		{
			name:          "select from",
			input:         "SELECT * FROM users",
			expectMatch:   true,
			expectedLabel: "UNION/SELECT detected",
		},
		{
			name:          "union select",
			input:         "1 UNION SELECT password FROM accounts",
			expectMatch:   true,
			expectedLabel: "UNION/SELECT detected",
		},
		{
			name:          "insert into",
			input:         "INSERT INTO logs VALUES ('x')",
			expectMatch:   true,
			expectedLabel: "INSERT/DROP detected",
		},
		{
			name:          "drop table via stacked query reports the earlier signature",
			input:         "1; DROP TABLE users;",
			expectMatch:   true,
			expectedLabel: "INSERT/DROP detected",
		},
		{
			name:          "comment outranks escape sequence",
			input:         "admin' OR 1=1 --",
			expectMatch:   true,
			expectedLabel: "SQL comment detected",
		},
		{
			name:          "block comment",
			input:         "foo /* bar */",
			expectMatch:   true,
			expectedLabel: "SQL comment detected",
		},
		{
			name:          "quote escape with AND",
			input:         "a' AND b",
			expectMatch:   true,
			expectedLabel: "SQL escape sequence detected",
		},
		{
			name:          "quote escape with closing paren",
			input:         "login' )",
			expectMatch:   true,
			expectedLabel: "SQL escape sequence detected",
		},
		{
			name:          "boolean tautology without quote",
			input:         "1 OR 1=1",
			expectMatch:   true,
			expectedLabel: "Boolean-based SQLi detected",
		},
		{
			name:          "sleep call",
			input:         "SLEEP(5)",
			expectMatch:   true,
			expectedLabel: "Time-based SQLi detected",
		},
		{
			name:          "benchmark call",
			input:         "BENCHMARK(1000000,MD5(1))",
			expectMatch:   true,
			expectedLabel: "Time-based SQLi detected",
		},
		{
			name:          "stacked update",
			input:         "1; UPDATE users SET admin=1",
			expectMatch:   true,
			expectedLabel: "Stacked query detected",
		},
		{
			name:          "extended stored procedure",
			input:         "EXEC xp_cmdshell 'dir'",
			expectMatch:   true,
			expectedLabel: "Stored procedure detected",
		},
		{
			name:          "system stored procedure",
			input:         "sp_help",
			expectMatch:   true,
			expectedLabel: "Stored procedure detected",
		},
		{
			name:          "cast call",
			input:         "CAST(userdata AS int)",
			expectMatch:   true,
			expectedLabel: "Type conversion detected",
		},
		{
			name:          "convert call",
			input:         "CONVERT(int, password)",
			expectMatch:   true,
			expectedLabel: "Type conversion detected",
		},
		{
			name:        "url encoded payload stays undetected",
			input:       "admin%27%20OR%201%3D1",
			expectMatch: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := d.Classify(tt.input)
			assert.Equal(t, tt.expectMatch, result.Matched)
			assert.Equal(t, tt.expectedLabel, result.Label)
		})
	}
}

func TestDetector_Classify_FirstMatchWins(t *testing.T) {
	d := NewDetector(logrus.New())

	// The contiguous UNION SELECT signature sits below the broader
	// UNION...SELECT one, so the broader label is always the one reported.
	result := d.Classify("UNION SELECT 1")
	assert.True(t, result.Matched)
	assert.Equal(t, "UNION/SELECT detected", result.Label)
}

func TestDetector_Classify_LogsMatchedLabel(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	d := NewDetector(logger)

	d.Classify("SELECT * FROM users")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "signature matched", entry.Message)
	assert.Equal(t, "UNION/SELECT detected", entry.Data["label"])

	// Safe input produces no log line.
	hook.Reset()
	d.Classify("hello world")
	assert.Nil(t, hook.LastEntry())
}

func TestDetector_Classify_CaseInsensitive(t *testing.T) {
	d := NewDetector(logrus.New())

	lower := d.Classify("union select * from t")
	upper := d.Classify("UNION SELECT * FROM T")
	assert.Equal(t, lower, upper)
	assert.True(t, lower.Matched)
	assert.Equal(t, "UNION/SELECT detected", lower.Label)
}

func TestDetector_Classify_Idempotent(t *testing.T) {
	d := NewDetector(logrus.New())

	input := "admin' OR 1=1 --"
	first := d.Classify(input)
	second := d.Classify(input)
	assert.Equal(t, first, second)
}

func TestDetector_Classify_Concurrent(t *testing.T) {
	d := NewDetector(logrus.New())

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.True(t, d.Classify("SELECT * FROM users").Matched)
				assert.False(t, d.Classify("hello world").Matched)
			}
		}()
	}
	wg.Wait()
}

func TestNewDetectorFromSettings(t *testing.T) {
	t.Run("custom signatures evaluated after the canonical table", func(t *testing.T) {
		d, err := NewDetectorFromSettings(logrus.New(), map[string]interface{}{
			"custom_signatures": []map[string]interface{}{
				{
					"name":    "Hex-encoded payload detected",
					"pattern": "(?i)0x[0-9a-f]{8,}",
				},
			},
		})
		require.NoError(t, err)

		result := d.Classify("value=0xdeadbeef99")
		assert.True(t, result.Matched)
		assert.Equal(t, "Hex-encoded payload detected", result.Label)

		// Canonical signatures still win when both match.
		result = d.Classify("SELECT 0xdeadbeef99 FROM t")
		assert.Equal(t, "UNION/SELECT detected", result.Label)
	})

	t.Run("no settings yields the canonical table", func(t *testing.T) {
		d, err := NewDetectorFromSettings(logrus.New(), nil)
		require.NoError(t, err)
		assert.Len(t, d.signatures, len(sqlSignatures))
	})

	t.Run("invalid pattern fails startup", func(t *testing.T) {
		_, err := NewDetectorFromSettings(logrus.New(), map[string]interface{}{
			"custom_signatures": []map[string]interface{}{
				{"name": "broken", "pattern": "("},
			},
		})
		assert.Error(t, err)
	})

	t.Run("empty pattern fails startup", func(t *testing.T) {
		_, err := NewDetectorFromSettings(logrus.New(), map[string]interface{}{
			"custom_signatures": []map[string]interface{}{
				{"name": "empty", "pattern": ""},
			},
		})
		assert.Error(t, err)
	})
}
