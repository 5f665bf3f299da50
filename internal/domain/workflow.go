// Package domain implements asset reference classification and the document rewrite workflow.
package domain

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"assetlink.dev/pkg/assetlink/internal/adapter"
	"assetlink.dev/pkg/assetlink/internal/controller"
	m "assetlink.dev/pkg/assetlink/internal/model"
)

const defaultOutputPerm os.FileMode = 0o644

// ParseArgs contains the arguments for rewriting one document.
type ParseArgs struct {
	Source m.Path
	Output m.Path
	DryRun bool
	Report m.Path // optional YAML report destination
}

// Workflow defines the rewrite workflow driven by the CLI.
type Workflow interface {
	Parse(ctx context.Context, args ParseArgs) (m.Result, error)
}

type workflow struct {
	files     adapter.FileAdapter
	documents adapter.DocumentAdapter
	reports   adapter.ReportStore
	ui        controller.UI
	rewriter  Rewriter
	config    RewriteConfig
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	files adapter.FileAdapter,
	documents adapter.DocumentAdapter,
	reports adapter.ReportStore,
	ui controller.UI,
	rewriter Rewriter,
	config RewriteConfig,
) Workflow {
	return &workflow{
		files:     files,
		documents: documents,
		reports:   reports,
		ui:        ui,
		rewriter:  rewriter,
		config:    config,
	}
}

// Parse reads args.Source, rewrites its asset references and writes the result
// to args.Output. Nothing is written when any step before the write fails.
func (w *workflow) Parse(ctx context.Context, args ParseArgs) (m.Result, error) {
	result := m.Result{Source: args.Source, Output: args.Output, DryRun: args.DryRun}

	if err := ctx.Err(); err != nil {
		return result, err
	}

	if err := w.config.Validate(); err != nil {
		return result, err
	}

	content, err := w.files.ReadFile(args.Source)
	if err != nil {
		slog.Error("failed to read document", "path", args.Source, "error", err)
		return result, fmt.Errorf("%w: %s: %w", ErrInputNotFound, args.Source, err)
	}

	w.ui.DisplayStart(ctx, args.Source)

	doc, err := w.documents.Parse(w.config.StripLoadTag(content))
	if err != nil {
		return result, fmt.Errorf("parse %s: %w", args.Source, err)
	}

	rewrites, skipped := w.rewriter.RewriteDocument(doc)
	for _, rw := range rewrites {
		w.ui.DisplayRewrite(ctx, rw)
	}

	result.Rewrites = rewrites
	result.Skipped = skipped

	rendered, err := w.documents.Render(doc)
	if err != nil {
		return result, fmt.Errorf("render %s: %w", args.Source, err)
	}

	out := w.config.PrependLoadTag(rendered)

	if err := ctx.Err(); err != nil {
		return result, err
	}

	if args.DryRun {
		diff, err := UnifiedDiff(string(args.Source), string(args.Output), content, out)
		if err != nil {
			return result, err
		}

		result.Diff = diff
		w.ui.DisplayDiff(ctx, diff)
	} else if err := w.write(args.Output, out); err != nil {
		return result, err
	}

	if args.Report != "" {
		if err := w.reports.SaveReport(args.Report, result); err != nil {
			return result, fmt.Errorf("save report: %w", err)
		}
	}

	slog.Info("document rewritten",
		"source", args.Source,
		"output", args.Output,
		"rewrites", len(result.Rewrites),
		"skipped", result.Skipped,
		"dry_run", args.DryRun,
	)

	w.ui.DisplayResult(ctx, result)

	return result, nil
}

// write replaces the output file, keeping the permissions of an existing one.
func (w *workflow) write(output m.Path, content []byte) error {
	perm := defaultOutputPerm
	if info, err := w.files.FileInfo(output); err == nil {
		perm = info.Mode().Perm()
	}

	if err := w.files.WriteFile(output, content, perm); err != nil {
		slog.Error("failed to write document", "path", output, "error", err)
		return fmt.Errorf("%w: %s: %w", ErrWriteFailure, output, err)
	}

	return nil
}
