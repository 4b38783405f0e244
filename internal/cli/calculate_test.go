package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/agbru/limbcalc/internal/config"
)

// TestPrintExecutionConfig tests the PrintExecutionConfig function.
func TestPrintExecutionConfig(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	cfg := config.AppConfig{
		Op:         "xor",
		Timeout:    time.Minute,
		DestLen:    4,
		LeftSigned: true,
		Branchless: true,
	}

	PrintExecutionConfig(cfg, &buf)

	output := buf.String()

	if output == "" {
		t.Error("PrintExecutionConfig should produce output")
	}
	if len(output) < 50 {
		t.Errorf("PrintExecutionConfig output seems too short: %s", output)
	}
	for _, want := range []string{"xor", "signed", "unsigned", "branchless", "4"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, output)
		}
	}
}

// TestPrintExecutionMode tests the PrintExecutionMode function.
func TestPrintExecutionMode(t *testing.T) {
	t.Parallel()

	t.Run("Single evaluation mode", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		cfg := config.AppConfig{Op: "and"}

		PrintExecutionMode(cfg, &buf)

		output := buf.String()
		if !strings.Contains(output, "Single evaluation") {
			t.Errorf("Expected single evaluation mode, got: %s", output)
		}
	})

	t.Run("Verification mode", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		cfg := config.AppConfig{Verify: true, Workers: 4, Iterations: 100000}

		PrintExecutionMode(cfg, &buf)

		output := buf.String()
		if !strings.Contains(output, "Differential verification") {
			t.Errorf("Expected verification mode, got: %s", output)
		}
		if !strings.Contains(output, "100,000") {
			t.Errorf("Expected formatted case count, got: %s", output)
		}
	})
}
