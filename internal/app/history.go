package app

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/projlens/internal/config"
	"github.com/blackwell-systems/projlens/internal/render"
	"github.com/blackwell-systems/projlens/internal/report"
	"github.com/blackwell-systems/projlens/internal/store"
)

var historyFlagLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved scans",
	Long: `History lists scans previously saved with 'projlens scan --save',
newest first, with their summary counts.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyFlagLimit, "limit", 10, "Maximum number of scans to list (0 = all)")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	db, err := store.Open(config.DBPath())
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() { _ = db.Close() }()

	scans, err := db.ListScans(historyFlagLimit)
	if err != nil {
		return fmt.Errorf("listing scans: %w", err)
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(scans)
	}

	doc := report.NewDocument("Scan History")
	if len(scans) == 0 {
		doc.Add(&report.Paragraph{
			Text:  "No saved scans yet. Run 'projlens scan --save' to record one.",
			Style: report.StyleDim,
		})
	} else {
		tbl := &report.Table{
			Headers: []string{"#", "Taken At", "Root", "Projects", "Packages", "Errors"},
		}
		for _, s := range scans {
			tbl.AddRow(
				strconv.FormatInt(s.ID, 10),
				s.TakenAt.Local().Format("2006-01-02 15:04"),
				s.Root,
				strconv.Itoa(s.TotalProjects),
				strconv.Itoa(s.TotalPackages),
				strconv.Itoa(s.ErrorCount),
			)
		}
		doc.Add(tbl)
	}

	color := cfg.Output.Color && !flagNoColor && render.IsTerminal(os.Stdout)
	fmt.Print(render.NewConsole(color).Render(doc))
	return nil
}
