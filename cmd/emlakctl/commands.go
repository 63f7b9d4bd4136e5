package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-emlak-keeper/internal/adapter"
	"github.com/MKhiriev/go-emlak-keeper/internal/crypto"
	"github.com/MKhiriev/go-emlak-keeper/internal/parser"
	"github.com/MKhiriev/go-emlak-keeper/internal/service"
	"github.com/MKhiriev/go-emlak-keeper/internal/store"
	"github.com/MKhiriev/go-emlak-keeper/internal/utils"
)

var errInvalidTC = errors.New("TC must be 11 digits")

func newKeygenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Generate a new 256-bit field encryption key (hex)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := crypto.GenerateEncryptionKey()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), key)
			return nil
		},
	}
}

func newHashTCCmd(cc *cliContext) *cobra.Command {
	return &cobra.Command{
		Use:   "hash-tc <tc>",
		Short: "Print the lookup hash of a TC number under the configured key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tc := strings.TrimSpace(args[0])
			if !utils.IsValidTC(tc) {
				return errInvalidTC
			}

			cfg, err := cc.config()
			if err != nil {
				return err
			}
			cipher, err := crypto.NewFieldCipher(cfg.App.EncryptionKey, cfg.App.TCHashSalt)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), cipher.HashTC(tc))
			return nil
		},
	}
}

func newExtractCmd(cc *cliContext) *cobra.Command {
	var textOnly, local bool

	cmd := &cobra.Command{
		Use:   "extract [file]",
		Short: "Extract text from a PDF, DOCX or EPUB document",
		Long: "Extract text from a document. The remote extraction endpoint is used when\n" +
			"ADAPTER_EXTRACTION_URL is set, unless --local is given.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, data, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			extractor := adapter.NewLocalExtractor(cc.log)
			if !local {
				cfg, err := cc.config()
				if err != nil {
					return err
				}
				if extractor, err = adapter.NewDocumentExtractor(cfg.Adapter, cc.log); err != nil {
					return err
				}
			}

			result, err := extractor.Extract(commandContext(cmd), uploadedFile(name, data))
			if err != nil {
				return err
			}

			if textOnly {
				fmt.Fprintln(cmd.OutOrStdout(), result.Text)
				return nil
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	}
	cmd.Flags().BoolVar(&textOnly, "text", false, "print only the extracted text")
	cmd.Flags().BoolVar(&local, "local", false, "always extract in-process")

	return cmd
}

func newParseCmd() *cobra.Command {
	var legacy bool

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse contract fields from plain text",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, data, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			parsed := parser.ParseContractFromText(string(data))
			if legacy {
				parsed = parsed.WithLegacyFields()
			}
			return printJSON(cmd.OutOrStdout(), parsed)
		},
	}
	cmd.Flags().BoolVar(&legacy, "legacy", false, "mirror values into the flat legacy keys")

	return cmd
}

func newMigrateCmd(cc *cliContext) *cobra.Command {
	var statusOnly bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cc.config()
			if err != nil {
				return err
			}

			db, err := store.ConnectDB(commandContext(cmd), cfg.Storage, cc.log)
			if err != nil {
				return err
			}
			defer db.Close()

			if !statusOnly {
				if err = db.Migrate(); err != nil {
					return err
				}
			}

			version, err := db.SchemaVersion()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s schema version: %d\n", cfg.Storage.Backend, version)
			return nil
		},
	}
	cmd.Flags().BoolVar(&statusOnly, "status", false, "only print the current schema version")

	return cmd
}

func newTokenCmd(cc *cliContext) *cobra.Command {
	var duration time.Duration

	cmd := &cobra.Command{
		Use:   "token <user-id>",
		Short: "Mint a bearer token for a CRM user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cc.config()
			if err != nil {
				return err
			}
			if cfg.App.TokenSignKey == "" {
				return errors.New("APP_TOKEN_SIGN_KEY is not set")
			}

			app := cfg.App
			if duration > 0 {
				app.TokenDuration = duration
			}

			token, err := service.NewAuthService(app, cc.log).CreateToken(commandContext(cmd), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token.SignedString)
			return nil
		},
	}
	cmd.Flags().DurationVar(&duration, "duration", 0, "token lifetime, overrides APP_TOKEN_DURATION")

	return cmd
}
