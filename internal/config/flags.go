package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses configuration flags from args (without the program name).
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-request-timeout request timeout (e.g., "10s", "1m")
//	-shutdown-timeout graceful shutdown timeout (e.g., "5s")
//	-cors-origins comma-separated list of allowed CORS origins
//	-log-level log level (trace, debug, info, warn, error)
//	-db-driver database/sql driver name (pgx, sqlite3)
//	-d database DSN
//	-db-max-open-conns maximum number of open DB connections
//	-db-max-idle-conns maximum number of idle DB connections
//	-db-conn-max-lifetime maximum DB connection lifetime (e.g., "30m")
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("go-countries", flag.ContinueOnError)

	var serverAddress NetAddress
	var requestTimeout, shutdownTimeout, connMaxLifetime time.Duration
	var corsOrigins, logLevel string
	var dbDriver, databaseDSN string
	var maxOpenConns, maxIdleConns int
	var jsonConfigPath string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 10s, 1m)")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout (e.g., 5s)")
	fs.StringVar(&corsOrigins, "cors-origins", "", "Comma-separated list of allowed CORS origins")
	fs.StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	fs.StringVar(&dbDriver, "db-driver", "", "Database driver (pgx, sqlite3)")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.IntVar(&maxOpenConns, "db-max-open-conns", 0, "Maximum number of open DB connections")
	fs.IntVar(&maxIdleConns, "db-max-idle-conns", 0, "Maximum number of idle DB connections")
	fs.DurationVar(&connMaxLifetime, "db-conn-max-lifetime", 0, "Maximum DB connection lifetime (e.g., 30m)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
		},
		Storage: Storage{
			DB: DB{
				Driver:          dbDriver,
				DSN:             databaseDSN,
				MaxOpenConns:    maxOpenConns,
				MaxIdleConns:    maxIdleConns,
				ConnMaxLifetime: connMaxLifetime,
			},
		},
		Server: Server{
			HTTPAddress:        serverAddress.String(),
			RequestTimeout:     requestTimeout,
			ShutdownTimeout:    shutdownTimeout,
			CORSAllowedOrigins: splitList(corsOrigins),
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string so that the
// value does not shadow lower-priority sources.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form host:port and populates the NetAddress.
// The host may be empty (listen on all interfaces), "localhost" or an IP
// address; the port must be in range 1..65535.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}

// splitList splits a comma-separated flag value, dropping blank items.
// An empty input yields nil.
func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	list := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			list = append(list, p)
		}
	}

	return list
}
