package domain

import (
	"fmt"

	"github.com/pmezard/go-difflib/difflib"
)

const diffContextLines = 3

// UnifiedDiff renders a unified diff between two document versions.
// It returns an empty string when both versions are identical.
func UnifiedDiff(fromName, toName string, from, to []byte) (string, error) {
	if string(from) == string(to) {
		return "", nil
	}

	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(from)),
		B:        difflib.SplitLines(string(to)),
		FromFile: fromName,
		ToFile:   toName,
		Context:  diffContextLines,
	}

	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return "", fmt.Errorf("build diff: %w", err)
	}

	return text, nil
}
