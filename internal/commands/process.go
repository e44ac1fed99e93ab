package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jamil1016/dailyreport/internal/buildinfo"
	"github.com/jamil1016/dailyreport/internal/config"
	"github.com/jamil1016/dailyreport/internal/export"
	"github.com/jamil1016/dailyreport/internal/ingest"
	"github.com/jamil1016/dailyreport/internal/report"
)

func newProcessCommand() *cobra.Command {
	var cfgPath string

	cmd := &cobra.Command{
		Use:   "process [folder]",
		Short: "Process a folder of POS exports into Daily_Report.xlsx",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			folder := ""
			if len(args) > 0 {
				folder = args[0]
			}
			return runProcess(cmd, folder, cfgPath)
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "dailyreport.yaml", "run configuration file")

	return cmd
}

// runProcess drives one run: resolve the folder, merge the exports,
// reconcile, and write the workbook. An invalid folder and an empty merge
// result end the run early without a workbook; only structural and write
// failures surface as command errors.
func runProcess(cmd *cobra.Command, folder, cfgPath string) error {
	out := cmd.OutOrStdout()
	printBanner(out)

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	if folder == "" {
		folder, err = promptFolder(cmd.InOrStdin(), out)
		if err != nil {
			return err
		}
	}
	absDir, err := filepath.Abs(folder)
	if err != nil {
		return fmt.Errorf("resolving path: %w", err)
	}
	info, err := os.Stat(absDir)
	if err != nil || !info.IsDir() {
		fmt.Fprintf(out, "[ERROR] Invalid folder path: %s\n", absDir)
		return nil
	}

	merged, ferrs, err := ingest.Merge(absDir, cfg.IngestOptions())
	if err != nil {
		return fmt.Errorf("scanning %s: %w", absDir, err)
	}
	for _, fe := range ferrs {
		fmt.Fprintf(out, "[ERROR] Could not read '%s': %v\n", fe.Name, fe.Err)
	}
	if merged.Len() == 0 {
		fmt.Fprintf(out, "[WARNING] No valid %s files found or all files failed to load.\n", cfg.Source.Extension)
		return nil
	}

	views, err := report.Build(merged)
	if err != nil {
		return err
	}

	path, err := export.Write(absDir, views, cfg.ExportOptions())
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "[INFO] Report saved to: %s\n", path)
	return nil
}

func printBanner(out io.Writer) {
	fmt.Fprintf(out, "%s %s\n", buildinfo.Name, buildinfo.Version)
	fmt.Fprintf(out, "Author: %s\n", buildinfo.Author)
	fmt.Fprintf(out, "License: %s\n\n", buildinfo.License)
}

func promptFolder(in io.Reader, out io.Writer) (string, error) {
	fmt.Fprint(out, "Input the folder path: ")
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("reading folder path: %w", err)
	}
	return strings.TrimSpace(line), nil
}
