package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"topoconvert/internal/assets"
	"topoconvert/internal/codec"
	"topoconvert/internal/config"
	"topoconvert/internal/convert"
	"topoconvert/internal/domain"
	"topoconvert/internal/legacy"
	"topoconvert/internal/repository"
	"topoconvert/internal/repository/sqlite"
)

var log = logrus.New()

var rootFlags struct {
	name   string
	output string
	format string
	db     string
	debug  bool
}

var rootCmd = &cobra.Command{
	Use:   "topoconvert [topology file]",
	Short: "Convert legacy ini-style network topologies to portable project documents",
	Long: `topoconvert reads a legacy ini-style topology file, rebuilds the
node, port and link graph it describes, and writes the result as a new
project: a structured topology document plus the startup configurations
and artwork images the old project referenced.

If no topology file is given, topology.net in the current directory is
used. The project name defaults to the name of the directory holding
the topology file.
`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		source := "topology.net"
		if len(args) == 1 {
			source = args[0]
		}
		return runConvert(source)
	},
}

var historyFlags struct {
	db    string
	limit int
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent conversion runs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		dbPath := historyFlags.db
		if dbPath == "" {
			cfg, _, err := config.Load()
			if err != nil {
				return err
			}
			dbPath = cfg.HistoryDB
		}
		if dbPath == "" {
			return fmt.Errorf("no history database configured (set history_db or pass --db)")
		}

		repo, err := sqlite.New(dbPath)
		if err != nil {
			return err
		}
		defer repo.Close()

		runs, err := repo.ListRuns(context.Background(), historyFlags.limit)
		if err != nil {
			return err
		}
		for _, run := range runs {
			fmt.Printf("%s  %s  %-20s  %d nodes, %d links, %d warnings\n",
				run.CreatedAt.Format("2006-01-02 15:04:05"), run.ID, run.Name,
				run.Nodes, run.Links, len(run.Warnings))
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVarP(&rootFlags.name, "name", "n", "", "project name (default: topology directory name)")
	rootCmd.Flags().StringVarP(&rootFlags.output, "output", "o", "", "output directory (default: current directory)")
	rootCmd.Flags().StringVar(&rootFlags.format, "format", "json", "output format (json or yaml)")
	rootCmd.Flags().StringVar(&rootFlags.db, "db", "", "conversion history database path")
	rootCmd.Flags().BoolVar(&rootFlags.debug, "debug", false, "enable debug logging")

	historyCmd.Flags().StringVar(&historyFlags.db, "db", "", "conversion history database path")
	historyCmd.Flags().IntVar(&historyFlags.limit, "limit", 20, "maximum number of runs to list")
	rootCmd.AddCommand(historyCmd)
}

func runConvert(source string) error {
	cfg, cfgPath, err := config.Load()
	if err != nil {
		return err
	}
	if cfgPath != "" {
		log.WithField("path", cfgPath).Debug("loaded config file")
	}

	if rootFlags.debug {
		log.SetLevel(logrus.DebugLevel)
	} else if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	exporter, err := codec.ForFormat(rootFlags.format)
	if err != nil {
		return err
	}

	sourceAbs, err := filepath.Abs(source)
	if err != nil {
		return fmt.Errorf("resolve topology path: %w", err)
	}
	oldDir := filepath.Dir(sourceAbs)

	name := rootFlags.name
	if name == "" {
		name = projectName(sourceAbs)
	}

	top, err := legacy.Load(sourceAbs)
	if err != nil {
		return err
	}

	conv := convert.New(convert.Options{
		Server: domain.Server{
			Host:  cfg.Server.Host,
			ID:    cfg.Server.ID,
			Local: true,
			Port:  cfg.Server.Port,
		},
		Logger: log,
	})
	result, err := conv.Convert(top, name)
	if err != nil {
		return err
	}

	outDir := rootFlags.output
	if outDir == "" {
		outDir = cfg.Output
	}
	projectDir := filepath.Join(outDir, name)
	if _, err := os.Stat(projectDir); err == nil {
		return fmt.Errorf("output directory %s already exists", projectDir)
	}
	filesDir := filepath.Join(projectDir, name+"-files")
	if err := os.MkdirAll(filesDir, 0o755); err != nil {
		return fmt.Errorf("create project directory: %w", err)
	}

	docPath := filepath.Join(projectDir, name+documentExt(exporter.Format()))
	f, err := os.Create(docPath)
	if err != nil {
		return fmt.Errorf("create document: %w", err)
	}
	if err := exporter.Export(result.Document, f); err != nil {
		f.Close()
		return fmt.Errorf("write document: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write document: %w", err)
	}

	mgr := assets.NewManager(log)
	configReport, err := mgr.CopyConfigs(oldDir, filesDir, result.Configs)
	if err != nil {
		return err
	}
	imageReport, err := mgr.CopyImages(oldDir, filesDir, result.Images)
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"document": docPath,
		"nodes":    len(result.Nodes),
		"links":    len(result.Links),
		"configs":  configReport.CopiedConfigs,
		"images":   imageReport.CopiedImages,
	}).Info("conversion complete")
	fmt.Printf("Converted %s -> %s (%d nodes, %d links)\n",
		source, docPath, len(result.Nodes), len(result.Links))
	for _, w := range result.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}

	return recordRun(cfg, sourceAbs, name, result)
}

// projectName derives the project name from the directory holding the
// topology file, falling back to the file name for root-level files.
func projectName(sourceAbs string) string {
	dir := filepath.Base(filepath.Dir(sourceAbs))
	if dir != "." && dir != string(filepath.Separator) {
		return dir
	}
	base := filepath.Base(sourceAbs)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func documentExt(format string) string {
	if format == "yaml" {
		return ".yaml"
	}
	return ".gns3"
}

func recordRun(cfg *config.Config, source, name string, result *convert.Result) error {
	dbPath := rootFlags.db
	if dbPath == "" {
		dbPath = cfg.HistoryDB
	}
	if dbPath == "" {
		return nil
	}

	repo, err := sqlite.New(dbPath)
	if err != nil {
		return fmt.Errorf("open history database: %w", err)
	}
	defer repo.Close()

	run := &repository.Run{
		Source:   source,
		Name:     name,
		Nodes:    len(result.Nodes),
		Links:    len(result.Links),
		Warnings: result.Warnings,
	}
	if err := repo.RecordRun(context.Background(), run); err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	log.WithField("run_id", run.ID).Debug("recorded conversion run")
	return nil
}

func main() {
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	log.SetLevel(logrus.WarnLevel)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
