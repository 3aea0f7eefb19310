package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for JSON files. Durations
// are accepted as strings such as "30s" or as integer nanoseconds.
type StructuredJSONConfig struct {
	App struct {
		Environment   string   `json:"environment"`
		Version       string   `json:"version"`
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		UserTokenTTL  Duration `json:"user_token_ttl"`
		AdminTokenTTL Duration `json:"admin_token_ttl"`
		BcryptCost    int      `json:"bcrypt_cost"`
		PageSize      uint64   `json:"page_size"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN             string   `json:"dsn"`
			MaxOpenConns    int      `json:"max_open_conns"`
			MaxIdleConns    int      `json:"max_idle_conns"`
			ConnMaxLifetime Duration `json:"conn_max_lifetime"`
		} `json:"db,omitempty"`

		Redis struct {
			Address         string   `json:"address"`
			Password        string   `json:"password"`
			DB              int      `json:"db"`
			GeocodeCacheTTL Duration `json:"geocode_cache_ttl"`
		} `json:"redis,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		GRPCAddress     string   `json:"grpc_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		RateLimit       int64    `json:"rate_limit"`
		RateLimitWindow Duration `json:"rate_limit_window"`
	} `json:"server,omitempty"`

	Adapter struct {
		Geocoder struct {
			BaseURL        string   `json:"base_url"`
			APIKey         string   `json:"api_key"`
			RequestTimeout Duration `json:"request_timeout"`
			RetryCount     int      `json:"retry_count"`
			RetryWait      Duration `json:"retry_wait"`
		} `json:"geocoder,omitempty"`
	} `json:"adapter,omitempty"`

	Workers struct {
		AuditSchedule      string   `json:"audit_schedule"`
		AuditBatchSize     int      `json:"audit_batch_size"`
		AuditMaxAttempts   int      `json:"audit_max_attempts"`
		AuditDelay         Duration `json:"audit_delay"`
		LoginAuditDelay    Duration `json:"login_audit_delay"`
		TokenPruneSchedule string   `json:"token_prune_schedule"`
	} `json:"workers,omitempty"`

	Log struct {
		Level      string `json:"level"`
		File       string `json:"file"`
		MaxSizeMB  int    `json:"max_size_mb"`
		MaxBackups int    `json:"max_backups"`
		MaxAgeDays int    `json:"max_age_days"`
	} `json:"log,omitempty"`
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
			Environment:   jsonCfg.App.Environment,
			Version:       jsonCfg.App.Version,
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			UserTokenTTL:  time.Duration(jsonCfg.App.UserTokenTTL),
			AdminTokenTTL: time.Duration(jsonCfg.App.AdminTokenTTL),
			BcryptCost:    jsonCfg.App.BcryptCost,
			PageSize:      jsonCfg.App.PageSize,
		},
		Storage: Storage{
			DB: DB{
				DSN:             jsonCfg.Storage.DB.DSN,
				MaxOpenConns:    jsonCfg.Storage.DB.MaxOpenConns,
				MaxIdleConns:    jsonCfg.Storage.DB.MaxIdleConns,
				ConnMaxLifetime: time.Duration(jsonCfg.Storage.DB.ConnMaxLifetime),
			},
			Redis: Redis{
				Address:         jsonCfg.Storage.Redis.Address,
				Password:        jsonCfg.Storage.Redis.Password,
				DB:              jsonCfg.Storage.Redis.DB,
				GeocodeCacheTTL: time.Duration(jsonCfg.Storage.Redis.GeocodeCacheTTL),
			},
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			GRPCAddress:     jsonCfg.Server.GRPCAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			RateLimit:       jsonCfg.Server.RateLimit,
			RateLimitWindow: time.Duration(jsonCfg.Server.RateLimitWindow),
		},
		Adapter: Adapter{
			Geocoder: Geocoder{
				BaseURL:        jsonCfg.Adapter.Geocoder.BaseURL,
				APIKey:         jsonCfg.Adapter.Geocoder.APIKey,
				RequestTimeout: time.Duration(jsonCfg.Adapter.Geocoder.RequestTimeout),
				RetryCount:     jsonCfg.Adapter.Geocoder.RetryCount,
				RetryWait:      time.Duration(jsonCfg.Adapter.Geocoder.RetryWait),
			},
		},
		Workers: Workers{
			AuditSchedule:      jsonCfg.Workers.AuditSchedule,
			AuditBatchSize:     jsonCfg.Workers.AuditBatchSize,
			AuditMaxAttempts:   jsonCfg.Workers.AuditMaxAttempts,
			AuditDelay:         time.Duration(jsonCfg.Workers.AuditDelay),
			LoginAuditDelay:    time.Duration(jsonCfg.Workers.LoginAuditDelay),
			TokenPruneSchedule: jsonCfg.Workers.TokenPruneSchedule,
		},
		Log: Log{
			Level:      jsonCfg.Log.Level,
			File:       jsonCfg.Log.File,
			MaxSizeMB:  jsonCfg.Log.MaxSizeMB,
			MaxBackups: jsonCfg.Log.MaxBackups,
			MaxAgeDays: jsonCfg.Log.MaxAgeDays,
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
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
