package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"csvprof/adapters/excel"
	"csvprof/app"
	"csvprof/domain/report"
	"csvprof/domain/table"
	"csvprof/internal/config"
	"csvprof/internal/session"
	"csvprof/ports"
)

var (
	flagPreviewRows int
	flagBasicStats  bool
	flagMaxSizeMB   int
	flagJSON        bool
)

var processCmd = &cobra.Command{
	Use:   "process [file...]",
	Short: "Profile one or more CSV or xlsx files",
	Long: `Profile the given files and print one report per input. Use "-" to
read CSV text from stdin. Files are processed concurrently; each input owns
its own data and report.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runProcess,
}

func init() {
	processCmd.Flags().IntVar(&flagPreviewRows, "preview", table.DefaultPreviewRows, "number of preview rows in the report")
	processCmd.Flags().BoolVar(&flagBasicStats, "basic", false, "skip quartiles and full frequency tables")
	processCmd.Flags().IntVar(&flagMaxSizeMB, "max-size-mb", table.DefaultMaxSizeMB, "maximum input size in megabytes")
	processCmd.Flags().BoolVar(&flagJSON, "json", false, "print the JSON report instead of markdown")
	rootCmd.AddCommand(processCmd)
}

func runProcess(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	opts := cfg.ProcessOptions()
	if cmd.Flags().Changed("preview") {
		opts.PreviewRows = flagPreviewRows
	}
	if cmd.Flags().Changed("max-size-mb") {
		opts.MaxSizeBytes = flagMaxSizeMB * 1024 * 1024
	}
	if flagBasicStats {
		opts.AdvancedStats = false
	}

	svc := app.NewProcessService(session.NewStorage(), nil)

	outputs := make([]string, len(args))
	succeeded := make([]bool, len(args))

	g := new(errgroup.Group)
	g.SetLimit(4)
	for i, path := range args {
		i, path := i, path
		g.Go(func() error {
			rep, err := profileInput(svc, path, opts)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			out, err := render(rep)
			if err != nil {
				return err
			}
			outputs[i] = out
			succeeded[i] = rep.Success
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	failed := false
	for i, out := range outputs {
		if len(args) > 1 {
			fmt.Printf("==> %s\n", args[i])
		}
		fmt.Println(out)
		if !succeeded[i] {
			failed = true
		}
	}

	if failed {
		return fmt.Errorf("one or more inputs failed processing")
	}
	return nil
}

// profileInput routes an input to the right reader. Fatal data errors come
// back inside the report; the error return is for I/O and configuration.
func profileInput(svc ports.ProcessorPort, path string, opts table.ProcessOptions) (*report.ProcessingReport, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		records, err := excel.NewReader(path).ReadRecords(opts.MaxSizeBytes)
		if err != nil {
			return nil, err
		}
		rep, _, err := svc.ProcessRecords(records, opts)
		return rep, err
	}

	var text string
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		text = string(data)
	} else {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		text = string(data)
	}

	rep, _, err := svc.Process(text, opts)
	return rep, err
}

func render(rep *report.ProcessingReport) (string, error) {
	if !flagJSON {
		return rep.Markdown(), nil
	}
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
