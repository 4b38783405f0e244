package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/agbru/limbcalc/internal/limb"
	"github.com/agbru/limbcalc/internal/ui"
)

func TestWriteResultToFile(t *testing.T) {
	t.Parallel()
	// Create temporary directory
	tmpDir := t.TempDir()

	testCases := []struct {
		name        string
		outputFile  string
		expectError bool
		checkFunc   func(t *testing.T, filePath string)
	}{
		{
			name:        "Write result to file",
			outputFile:  filepath.Join(tmpDir, "result.txt"),
			expectError: false,
			checkFunc: func(t *testing.T, filePath string) {
				content, err := os.ReadFile(filePath)
				if err != nil {
					t.Fatalf("Failed to read output file: %v", err)
				}
				contentStr := string(content)
				if !strings.Contains(contentStr, "xor =") {
					t.Error("File should contain 'xor ='")
				}
				if !strings.Contains(contentStr, "ff,1") {
					t.Error("File should contain result 'ff,1'")
				}
				if !strings.Contains(contentStr, "# Limbs: 2") {
					t.Error("File should record the limb count")
				}
			},
		},
		{
			name:        "Empty output file (no write)",
			outputFile:  "",
			expectError: false,
			checkFunc:   nil, // No file should be created
		},
		{
			name:        "Create nested directory",
			outputFile:  filepath.Join(tmpDir, "nested", "dir", "result.txt"),
			expectError: false,
			checkFunc: func(t *testing.T, filePath string) {
				if _, err := os.Stat(filePath); err != nil {
					t.Errorf("File should exist in nested directory: %v", err)
				}
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			result := []limb.Limb{0xff, 0x1}
			config := OutputConfig{
				OutputFile: tc.outputFile,
			}

			err := WriteResultToFile(result, "xor", 100*time.Millisecond, config)

			if tc.expectError {
				if err == nil {
					t.Error("Expected error but got none")
				}
			} else {
				if err != nil {
					t.Errorf("Unexpected error: %v", err)
				}
				if tc.outputFile != "" && tc.checkFunc != nil {
					tc.checkFunc(t, tc.outputFile)
				}
			}
		})
	}
}

func TestFormatQuietResult(t *testing.T) {
	t.Parallel()

	t.Run("Hex limb list", func(t *testing.T) {
		t.Parallel()
		output := FormatQuietResult([]limb.Limb{0xff, 0x1})
		if output != "ff,1" {
			t.Errorf("Expected 'ff,1', got '%s'", output)
		}
	})

	t.Run("Empty result", func(t *testing.T) {
		t.Parallel()
		output := FormatQuietResult(nil)
		if output != "0" {
			t.Errorf("Expected '0', got '%s'", output)
		}
	})
}

func TestDisplayQuietResult(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	DisplayQuietResult(&buf, []limb.Limb{0x37})
	output := buf.String()
	if !strings.Contains(output, "37") {
		t.Errorf("Output should contain '37', got '%s'", output)
	}
}

func TestDisplayResult(t *testing.T) {
	// Initialize theme
	ui.InitTheme(false)

	long := make([]limb.Limb, TruncationLimit+8)
	for i := range long {
		long[i] = limb.Limb(i)
	}

	tests := []struct {
		name      string
		result    []limb.Limb
		verbose   bool
		details   bool
		showValue bool
		contains  []string
	}{
		{
			name:      "Details only",
			result:    []limb.Limb{0x3039},
			verbose:   false,
			details:   true,
			showValue: false,
			contains:  []string{"Result binary size:", "Detailed result analysis", "Calculation time", "Number of limbs"},
		},
		{
			name:      "ShowValue Output",
			result:    []limb.Limb{0x3039},
			verbose:   false,
			details:   false,
			showValue: true,
			contains:  []string{"Calculated value", "and =", "3039"},
		},
		{
			name:      "Truncated Output",
			result:    long,
			verbose:   false,
			details:   false,
			showValue: true,
			contains:  []string{"(truncated)", "Tip: use"},
		},
		{
			name:      "Verbose Output",
			result:    long,
			verbose:   true,
			details:   false,
			showValue: true,
			contains:  []string{"and ="}, // Should not be truncated
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			DisplayResult(tt.result, "and", time.Millisecond, tt.verbose, tt.details, tt.showValue, &buf)
			output := buf.String()
			for _, s := range tt.contains {
				if !strings.Contains(output, s) {
					t.Errorf("Expected output to contain %q, but got:\n%s", s, output)
				}
			}
		})
	}

	t.Run("Verbose output is not truncated", func(t *testing.T) {
		var buf bytes.Buffer
		DisplayResult(long, "and", time.Millisecond, true, false, true, &buf)
		if strings.Contains(buf.String(), "(truncated)") {
			t.Error("Verbose output should not be truncated")
		}
	})
}

func TestDisplayComparisonResult(t *testing.T) {
	t.Parallel()

	t.Run("Quiet prints the raw relation", func(t *testing.T) {
		var buf bytes.Buffer
		DisplayComparisonResult(&buf, -1, false, time.Millisecond, true)
		if strings.TrimSpace(buf.String()) != "-1" {
			t.Errorf("Expected '-1', got %q", buf.String())
		}
	})

	t.Run("Promoted mode labelled", func(t *testing.T) {
		var buf bytes.Buffer
		DisplayComparisonResult(&buf, 1, false, time.Millisecond, false)
		if !strings.Contains(buf.String(), "promoted") {
			t.Errorf("Expected 'promoted' label, got %q", buf.String())
		}
	})

	t.Run("Infinite mode labelled", func(t *testing.T) {
		var buf bytes.Buffer
		DisplayComparisonResult(&buf, 0, true, time.Millisecond, false)
		if !strings.Contains(buf.String(), "infinite") {
			t.Errorf("Expected 'infinite' label, got %q", buf.String())
		}
	})
}

func TestDisplayResultWithConfig(t *testing.T) {
	t.Parallel()
	result := []limb.Limb{0x37}
	tmpDir := t.TempDir()

	t.Run("Quiet mode", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		config := OutputConfig{
			Quiet: true,
		}
		err := DisplayResultWithConfig(&buf, result, "and", 100*time.Millisecond, config)
		if err != nil {
			t.Errorf("Unexpected error: %v", err)
		}
		output := buf.String()
		if !strings.Contains(output, "37") {
			t.Errorf("Quiet output should contain result, got '%s'", output)
		}
	})

	t.Run("Normal mode with file output", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		outputFile := filepath.Join(tmpDir, "test_output.txt")
		config := OutputConfig{
			OutputFile: outputFile,
			Quiet:      false,
		}
		err := DisplayResultWithConfig(&buf, result, "and", 100*time.Millisecond, config)
		if err != nil {
			t.Errorf("Unexpected error: %v", err)
		}
		// Check that file was created
		if _, err := os.Stat(outputFile); err != nil {
			t.Errorf("Output file should exist: %v", err)
		}
		// Check that success message was printed
		output := buf.String()
		if !strings.Contains(output, "Result saved to") {
			t.Errorf("Should show file save message, got '%s'", output)
		}
	})

	t.Run("Quiet mode with file output", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		outputFile := filepath.Join(tmpDir, "quiet_output.txt")
		config := OutputConfig{
			OutputFile: outputFile,
			Quiet:      true,
		}
		err := DisplayResultWithConfig(&buf, result, "and", 100*time.Millisecond, config)
		if err != nil {
			t.Errorf("Unexpected error: %v", err)
		}
		// Check that file was created
		if _, err := os.Stat(outputFile); err != nil {
			t.Errorf("Output file should exist: %v", err)
		}
		// In quiet mode, file save message should not appear
		output := buf.String()
		if strings.Contains(output, "Result saved to") {
			t.Error("Quiet mode should not show file save message")
		}
	})
}
