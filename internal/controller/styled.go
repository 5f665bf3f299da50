package controller

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	m "assetlink.dev/pkg/assetlink/internal/model"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true)
	originalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	arrowStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	newStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	warnStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	addedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	removedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// StyledUI implements UI with colored output for interactive terminals.
type StyledUI struct {
	cmd *cobra.Command
}

// NewStyledUI creates a new StyledUI.
func NewStyledUI(cmd *cobra.Command) *StyledUI {
	return &StyledUI{cmd: cmd}
}

// DisplayStart announces the document about to be parsed.
func (s *StyledUI) DisplayStart(ctx context.Context, source m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.println(headerStyle.Render(fmt.Sprintf("Start parsing %s ...", source)))
}

// DisplayRewrite prints one colored progress line.
func (s *StyledUI) DisplayRewrite(ctx context.Context, rewrite m.Rewrite) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.println(originalStyle.Render(rewrite.Original) + arrowStyle.Render(" --> ") + newStyle.Render(rewrite.Replacement))
}

// DisplayDiff prints the dry-run diff with added/removed lines colored.
func (s *StyledUI) DisplayDiff(ctx context.Context, diff string) {
	if err := ctx.Err(); err != nil {
		return
	}

	if diff == "" {
		s.println(warnStyle.Render("No changes."))
		return
	}

	s.println("")

	for _, line := range strings.Split(strings.TrimRight(diff, "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			s.println(headerStyle.Render(line))
		case strings.HasPrefix(line, "+"):
			s.println(addedStyle.Render(line))
		case strings.HasPrefix(line, "-"):
			s.println(removedStyle.Render(line))
		default:
			s.println(line)
		}
	}
}

// DisplayResult prints the summary table and the final status lines.
func (s *StyledUI) DisplayResult(ctx context.Context, result m.Result) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.println(successStyle.Render(fmt.Sprintf("Successfully parsed file %q", result.Source)))

	if result.Changed() {
		s.println("\n" + renderRewriteTable(result))
	}

	if result.DryRun {
		s.println(warnStyle.Render(fmt.Sprintf("Dry run: %q left unchanged", result.Output)))
		return
	}

	s.println(successStyle.Render(fmt.Sprintf("Successfully changed file %q", result.Output)))
}

func (s *StyledUI) println(line string) {
	_, _ = fmt.Fprintln(s.cmd.OutOrStdout(), line)
}
