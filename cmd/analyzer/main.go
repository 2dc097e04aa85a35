package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mviana-dev/dreamflow/config"
	"github.com/mviana-dev/dreamflow/internal/analyzer"
	"github.com/mviana-dev/dreamflow/internal/entries"
	"github.com/mviana-dev/dreamflow/internal/logging"
	"github.com/mviana-dev/dreamflow/internal/report"
)

const defaultReportFile = "dream_analysis_report.md"

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	slog.Info("[Analyzer] Starting dream analysis...")

	batch := entries.Sample()
	if path := os.Getenv("DREAMS_FILE"); path != "" {
		loaded, err := entries.Load(path)
		if err != nil {
			slog.Error("[Analyzer] Failed to load dreams file",
				slog.String("path", path),
				slog.String("error", err.Error()))
			os.Exit(1)
		}
		batch = loaded
	}

	md := report.Generate(analyzer.New(), batch)

	out := os.Getenv("REPORT_FILE")
	if out == "" {
		out = defaultReportFile
	}
	if err := os.WriteFile(out, []byte(md), 0o644); err != nil {
		slog.Error("[Analyzer] Failed to write report",
			slog.String("path", out),
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	if htmlPath := os.Getenv("REPORT_HTML_FILE"); htmlPath != "" {
		if err := os.WriteFile(htmlPath, report.RenderHTML(md), 0o644); err != nil {
			slog.Error("[Analyzer] Failed to write HTML report",
				slog.String("path", htmlPath),
				slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	slog.Info("[Analyzer] Analysis complete",
		slog.Int("dreams", len(batch)),
		slog.String("report", out))

	fmt.Println(md)
}
