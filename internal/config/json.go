package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the layout accepted by
// the -config file.
type StructuredJSONConfig struct {
	App struct {
		Version  string `json:"version"`
		LogLevel string `json:"log_level"`
	} `json:"app,omitempty"`

	Server struct {
		Host              string   `json:"host"`
		Port              int      `json:"port"`
		ShutdownTimeout   Duration `json:"shutdown_timeout"`
		ReadHeaderTimeout Duration `json:"read_header_timeout"`
	} `json:"server,omitempty"`

	CORS struct {
		Origins             []string `json:"origins"`
		Methods             []string `json:"methods"`
		AllowHeaders        []string `json:"allow_headers"`
		ExposeHeaders       []string `json:"expose_headers"`
		MaxAge              int      `json:"max_age"`
		SupportsCredentials bool     `json:"supports_credentials"`
		SendWildcard        bool     `json:"send_wildcard"`
	} `json:"cors,omitempty"`
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
			Version:  jsonCfg.App.Version,
			LogLevel: jsonCfg.App.LogLevel,
		},
		Server: Server{
			Host:              jsonCfg.Server.Host,
			Port:              jsonCfg.Server.Port,
			ShutdownTimeout:   time.Duration(jsonCfg.Server.ShutdownTimeout),
			ReadHeaderTimeout: time.Duration(jsonCfg.Server.ReadHeaderTimeout),
		},
		CORS: CORS{
			Origins:             jsonCfg.CORS.Origins,
			Methods:             jsonCfg.CORS.Methods,
			AllowHeaders:        jsonCfg.CORS.AllowHeaders,
			ExposeHeaders:       jsonCfg.CORS.ExposeHeaders,
			MaxAge:              jsonCfg.CORS.MaxAge,
			SupportsCredentials: jsonCfg.CORS.SupportsCredentials,
			SendWildcard:        jsonCfg.CORS.SendWildcard,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
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
