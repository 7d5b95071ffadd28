package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// ParseFlags parses the client command-line flags from args (without the
// program name).
//
// Flags:
//
//	-a backend base URL or host:port
//	-d sqlite database file for the credential pair
//	-c/-config json file path with configs
//	-log-file path of the JSON log file
//	-request-timeout outbound request timeout (e.g., "15s")
//	-boot-timeout session boot timeout (e.g., "20s")
func ParseFlags(args []string) (*StructuredConfig, error) {
	var (
		serverAddress  string
		databaseDSN    string
		jsonConfigPath string
		logFile        string
		requestTimeout time.Duration
		bootTimeout    time.Duration
	)

	fs := flag.NewFlagSet("collab-client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&serverAddress, "a", "", "Backend base URL or host:port")
	fs.StringVar(&databaseDSN, "d", "", "Credential database file")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	fs.DurationVar(&bootTimeout, "boot-timeout", 0, "Session boot timeout (e.g., 20s)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogFile:     logFile,
			BootTimeout: bootTimeout,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Adapter: Adapter{
			HTTPAddress:    serverAddress,
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
