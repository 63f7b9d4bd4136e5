package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-emlak-keeper/internal/config"
	"github.com/MKhiriev/go-emlak-keeper/internal/logger"
	"github.com/MKhiriev/go-emlak-keeper/models"
)

// cliContext carries what every subcommand needs. Config is loaded lazily:
// keygen and parse run without any environment.
type cliContext struct {
	configPath string
	verbose    bool

	cfg *config.StructuredConfig
	log *logger.Logger
}

func newRootCmd() *cobra.Command {
	cc := &cliContext{}

	root := &cobra.Command{
		Use:           "emlakctl",
		Short:         "Operator tools for the emlak contract import service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := "error"
			if cc.verbose {
				level = "debug"
			}
			cc.log = logger.NewLogger("emlakctl", logger.WithLevel(level))
		},
	}
	root.PersistentFlags().StringVarP(&cc.configPath, "config", "c", "", "path to a JSON config file")
	root.PersistentFlags().BoolVarP(&cc.verbose, "verbose", "v", false, "log debug output")

	root.AddCommand(
		newVersionCmd(),
		newKeygenCmd(),
		newHashTCCmd(cc),
		newExtractCmd(cc),
		newParseCmd(),
		newMigrateCmd(cc),
		newTokenCmd(cc),
	)

	return root
}

func (cc *cliContext) config() (*config.StructuredConfig, error) {
	if cc.cfg != nil {
		return cc.cfg, nil
	}

	cfg, err := config.GetToolConfig(cc.configPath)
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	cc.cfg = cfg

	return cfg, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the emlakctl version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "emlakctl %s\n", models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
		},
	}
}

// readInput reads a file argument; "-" or no argument means stdin.
func readInput(cmd *cobra.Command, args []string) (string, []byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		return "stdin", data, err
	}

	data, err := os.ReadFile(args[0])
	return filepath.Base(args[0]), data, err
}

func uploadedFile(name string, data []byte) models.UploadedFile {
	return models.UploadedFile{
		Name:        name,
		ContentType: mimetype.Detect(data).String(),
		Size:        int64(len(data)),
		Data:        data,
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
