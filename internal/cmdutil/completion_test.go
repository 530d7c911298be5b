package cmdutil

import (
	"testing"

	"github.com/spf13/cobra"
)

func TestStaticFlagCompletion(t *testing.T) {
	fn := StaticFlagCompletion(ModeNames)

	cmd := &cobra.Command{}
	result, directive := fn(cmd, nil, "")

	if directive != cobra.ShellCompDirectiveNoFileComp {
		t.Errorf("expected ShellCompDirectiveNoFileComp, got %v", directive)
	}

	if len(result) != len(ModeNames) {
		t.Errorf("expected %d values, got %d", len(ModeNames), len(result))
	}

	for i, v := range ModeNames {
		if result[i] != v {
			t.Errorf("expected result[%d] = %q, got %q", i, v, result[i])
		}
	}
}

func TestStaticFlagCompletionFiltering(t *testing.T) {
	fn := StaticFlagCompletion(VisibilityLevels)

	cmd := &cobra.Command{}

	tests := []struct {
		name       string
		toComplete string
		expected   []string
	}{
		{
			name:       "prefix match multiple",
			toComplete: "int",
			expected:   []string{"intern", "internal"},
		},
		{
			name:       "prefix match uppercase (case-insensitive)",
			toComplete: "P",
			expected:   []string{"private", "public"},
		},
		{
			name:       "prefix match single",
			toComplete: "pu",
			expected:   []string{"public"},
		},
		{
			name:       "no match",
			toComplete: "x",
			expected:   nil,
		},
		{
			name:       "exact match",
			toComplete: "internal",
			expected:   []string{"internal"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, directive := fn(cmd, nil, tt.toComplete)

			if directive != cobra.ShellCompDirectiveNoFileComp {
				t.Errorf("expected ShellCompDirectiveNoFileComp, got %v", directive)
			}

			if len(result) != len(tt.expected) {
				t.Errorf("expected %d results, got %d: %v", len(tt.expected), len(result), result)
				return
			}

			for i, v := range tt.expected {
				if result[i] != v {
					t.Errorf("expected result[%d] = %q, got %q", i, v, result[i])
				}
			}
		})
	}
}

func TestFilterPrefixMatchesKeyPartOnly(t *testing.T) {
	values := []string{"visibility\tdefault visibility", "http_timeout\trequest timeout in seconds"}

	result := filterPrefix(values, "v")
	if len(result) != 1 || result[0] != values[0] {
		t.Errorf("expected only the visibility entry, got %v", result)
	}

	result = filterPrefix(values, "default")
	if len(result) != 0 {
		t.Errorf("descriptions should not match, got %v", result)
	}
}
