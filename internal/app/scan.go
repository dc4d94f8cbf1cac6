package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/projlens/internal/analysis"
	"github.com/blackwell-systems/projlens/internal/config"
	"github.com/blackwell-systems/projlens/internal/render"
	"github.com/blackwell-systems/projlens/internal/scanner"
	"github.com/blackwell-systems/projlens/internal/store"
)

var (
	scanFlagFormat string
	scanFlagSave   bool
)

var scanCmd = &cobra.Command{
	Use:   "scan [root]",
	Short: "Scan a repository and report project health",
	Long: `Scan discovers all *.csproj files under the given root (default: the
current directory), extracts target framework, output type, nullable and
implicit-usings configuration, documentation settings, and dependency lists,
and renders a repository health report. Files that fail to parse are
reported but never abort the scan.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().StringVar(&scanFlagFormat, "format", "console", "Report format: console or markdown")
	scanCmd.Flags().BoolVar(&scanFlagSave, "save", false, "Save the scan to the local history database")

	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	root := "."
	if len(args) > 0 {
		root = args[0]
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("resolving root: %w", err)
	}

	s := scanner.New()
	s.SkipDirs = cfg.SkipSet()
	s.Workers = cfg.Workers
	if flagVerbose {
		s.Logf = func(format string, a ...any) {
			fmt.Fprintf(os.Stderr, format+"\n", a...)
		}
	}

	records := s.Scan(absRoot)

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	doc := analysis.BuildReport(records)
	doc.AddMeta("Root", absRoot)
	doc.AddMeta("Scanned", time.Now().Format(time.RFC3339))

	if scanFlagSave {
		db, err := store.Open(config.DBPath())
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer func() { _ = db.Close() }()

		id, err := db.SaveScan(absRoot, appVersion, records, analysis.Summarize(records))
		if err != nil {
			return fmt.Errorf("saving scan: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Saved scan #%d\n", id)
	}

	switch scanFlagFormat {
	case "markdown":
		fmt.Print(render.NewMarkdown().Render(doc))
	case "console":
		color := cfg.Output.Color && !flagNoColor && render.IsTerminal(os.Stdout)
		fmt.Print(render.NewConsole(color).Render(doc))
	default:
		return fmt.Errorf("unknown format %q (want console or markdown)", scanFlagFormat)
	}

	return nil
}
