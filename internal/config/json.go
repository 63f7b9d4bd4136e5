package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON layout of the configuration.
type StructuredJSONConfig struct {
	App struct {
		EncryptionKey         string   `json:"encryption_key"`
		TCHashSalt            string   `json:"tc_hash_salt"`
		StorePlaintextDetails *bool    `json:"store_plaintext_details"`
		TokenSignKey          string   `json:"token_sign_key"`
		TokenIssuer           string   `json:"token_issuer"`
		TokenDuration         Duration `json:"token_duration"`
		ImportMaxBytes        int64    `json:"import_max_bytes"`
		ExtractMaxBytes       int64    `json:"extract_max_bytes"`
		Version               string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		Backend string `json:"backend"`
		DB      struct {
			DSN     string `json:"dsn"`
			Migrate bool   `json:"migrate"`
		} `json:"db,omitempty"`
		Files struct {
			DocumentsDir string `json:"documents_dir"`
		} `json:"files,omitempty"`
		Redis struct {
			Address    string   `json:"address"`
			Password   string   `json:"password"`
			DB         int      `json:"db"`
			WarningTTL Duration `json:"warning_ttl"`
		} `json:"redis,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		ExtractionURL   string   `json:"extraction_url"`
		ExtractionToken string   `json:"extraction_token"`
		RequestTimeout  Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Logging struct {
		Level      string `json:"level"`
		File       string `json:"file"`
		MaxSizeMB  int    `json:"max_size_mb"`
		MaxBackups int    `json:"max_backups"`
	} `json:"logging,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			EncryptionKey:         jsonCfg.App.EncryptionKey,
			TCHashSalt:            jsonCfg.App.TCHashSalt,
			StorePlaintextDetails: jsonCfg.App.StorePlaintextDetails,
			TokenSignKey:          jsonCfg.App.TokenSignKey,
			TokenIssuer:           jsonCfg.App.TokenIssuer,
			TokenDuration:         time.Duration(jsonCfg.App.TokenDuration),
			ImportMaxBytes:        jsonCfg.App.ImportMaxBytes,
			ExtractMaxBytes:       jsonCfg.App.ExtractMaxBytes,
			Version:               jsonCfg.App.Version,
		},
		Storage: Storage{
			Backend: jsonCfg.Storage.Backend,
			DB: DB{
				DSN:     jsonCfg.Storage.DB.DSN,
				Migrate: jsonCfg.Storage.DB.Migrate,
			},
			Files: Files{
				DocumentsDir: jsonCfg.Storage.Files.DocumentsDir,
			},
			Redis: Redis{
				Address:    jsonCfg.Storage.Redis.Address,
				Password:   jsonCfg.Storage.Redis.Password,
				DB:         jsonCfg.Storage.Redis.DB,
				WarningTTL: time.Duration(jsonCfg.Storage.Redis.WarningTTL),
			},
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		Adapter: Adapter{
			ExtractionURL:   jsonCfg.Adapter.ExtractionURL,
			ExtractionToken: jsonCfg.Adapter.ExtractionToken,
			RequestTimeout:  time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Logging: Logging{
			Level:      jsonCfg.Logging.Level,
			File:       jsonCfg.Logging.File,
			MaxSizeMB:  jsonCfg.Logging.MaxSizeMB,
			MaxBackups: jsonCfg.Logging.MaxBackups,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
