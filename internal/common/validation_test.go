package common

import (
	"strings"
	"testing"
)

func TestValidateOutputFormat(t *testing.T) {
	formats := []string{"json", "text", "markdown"}

	t.Run("accepts configured formats", func(t *testing.T) {
		for _, format := range formats {
			if err := ValidateOutputFormat(format, formats); err != nil {
				t.Errorf("expected %q to be accepted: %v", format, err)
			}
		}
	})

	t.Run("rejects unknown formats", func(t *testing.T) {
		for _, format := range []string{"xml", "yaml", "csv", ""} {
			err := ValidateOutputFormat(format, formats)
			if err == nil {
				t.Errorf("expected %q to be rejected", format)
				continue
			}
			if !strings.Contains(err.Error(), "unsupported output format") {
				t.Errorf("unexpected error message: %v", err)
			}
		}
	})

	t.Run("format matching is case sensitive", func(t *testing.T) {
		if err := ValidateOutputFormat("JSON", formats); err == nil {
			t.Error("expected uppercase format to be rejected")
		}
	})

	t.Run("no configured formats means no restrictions", func(t *testing.T) {
		if err := ValidateOutputFormat("anything", nil); err != nil {
			t.Errorf("expected any format with empty config: %v", err)
		}
	})
}

func TestGetSupportedFormats(t *testing.T) {
	formats := []string{"json", "text"}
	got := GetSupportedFormats(formats)
	if len(got) != 2 || got[0] != "json" || got[1] != "text" {
		t.Errorf("unexpected formats: %v", got)
	}
}
