package main

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"hashnotes/internal/config"
	"hashnotes/internal/logging"
	"hashnotes/internal/markdown"
	"hashnotes/internal/service"
	"hashnotes/internal/storage"
)

var (
	notesDir string
	verbose  bool

	cfg    *config.AppConfig
	logger *log.Logger
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "hashnotes",
	Short: "Share Markdown notes addressed by the digest of their content",
	Long: `Hashnotes stores each note in a flat directory under the URL-safe
base64 SHA-256 digest of its text and serves it rendered as HTML.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg = config.Load()
		if notesDir != "" {
			cfg.Notes.Dir = notesDir
		}

		level := cfg.LogLevel
		if verbose {
			level = "debug"
		}
		logger = logging.New(os.Stderr, cfg.Location(), level)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&notesDir, "notes-dir", "", "Directory holding notes (overrides NOTES_DIR)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// openNotes opens the configured note directory. The caller closes the store.
func openNotes() (service.NoteService, *storage.DiskStorage, error) {
	store, err := storage.NewDisk(cfg.Notes.Dir)
	if err != nil {
		return nil, nil, err
	}
	logger.WithField("dir", store.Dir()).Debug("notes_opened")
	return service.NewNoteService(store, markdown.New(), cfg.Notes.MaxLength), store, nil
}

// readInput reads the named file, or stdin when no name or "-" is given.
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	b, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", args[0], err)
	}
	return b, nil
}
