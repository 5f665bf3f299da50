package controller

import (
	"bytes"
	"context"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "assetlink.dev/pkg/assetlink/internal/model"
)

// SimpleUI implements UI using the cobra command's output stream.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayStart announces the document about to be parsed.
func (s *SimpleUI) DisplayStart(ctx context.Context, source m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Start parsing %s ...\n", source)
}

// DisplayRewrite prints one "original --> replacement" progress line.
func (s *SimpleUI) DisplayRewrite(ctx context.Context, rewrite m.Rewrite) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s --> %s\n", rewrite.Original, rewrite.Replacement)
}

// DisplayDiff prints the dry-run diff.
func (s *SimpleUI) DisplayDiff(ctx context.Context, diff string) {
	if err := ctx.Err(); err != nil {
		return
	}

	if diff == "" {
		s.printf("No changes.\n")
		return
	}

	s.printf("\n%s", diff)
}

// DisplayResult prints the summary table and the final status lines.
func (s *SimpleUI) DisplayResult(ctx context.Context, result m.Result) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Successfully parsed file %q\n", result.Source)

	if result.Changed() {
		s.printf("\n%s\n", renderRewriteTable(result))
	}

	if result.DryRun {
		s.printf("Dry run: %q left unchanged\n", result.Output)
		return
	}

	s.printf("Successfully changed file %q\n", result.Output)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func renderRewriteTable(result m.Result) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Tag", "Original", "Static Path"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, rw := range result.Rewrites {
		table.Append([]string{string(rw.Tag), rw.Original, rw.Resolved})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Rewritten %d", len(result.Rewrites)),
		fmt.Sprintf("Skipped %d", result.Skipped),
		"",
	})

	table.Render()

	return tableBuffer.String()
}
