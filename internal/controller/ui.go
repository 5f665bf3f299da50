// Package controller provides output adapters for displaying rewrite progress and results.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "assetlink.dev/pkg/assetlink/internal/model"
)

// UI defines the interface for reporting rewrite progress.
// Implementations can use different output methods (plain text, styled, etc).
type UI interface {
	DisplayStart(ctx context.Context, source m.Path)
	DisplayRewrite(ctx context.Context, rewrite m.Rewrite)
	DisplayDiff(ctx context.Context, diff string)
	DisplayResult(ctx context.Context, result m.Result)
}

// NewUI returns a styled UI for terminals and a plain one otherwise.
func NewUI(cmd *cobra.Command, isTTY bool) UI {
	if isTTY {
		return NewStyledUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
