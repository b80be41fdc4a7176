package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the server command-line flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-p port to listen on (overrides the port part of -a)
//	-d database DSN
//	-backend-dir directory holding the backend .env file
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-body-limit maximum request body size in bytes
func parseFlags(args []string) (*StructuredConfig, error) {
	var address NetAddress
	var port int
	var databaseDSN string
	var backendDir string
	var jsonConfigPath string
	var tokenSignKey string
	var bodyLimit int64

	fs := flag.NewFlagSet("sweet-shop-server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&address, "a", "Net address host:port")
	fs.IntVar(&port, "p", 0, "Port to listen on")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&backendDir, "backend-dir", "", "Directory holding the backend .env file")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.Int64Var(&bodyLimit, "body-limit", 0, "Maximum request body size in bytes")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	if port == 0 {
		port = address.Port
	}

	return &StructuredConfig{
		Runtime: Runtime{
			Port:       port,
			BackendDir: backendDir,
		},
		App: App{
			TokenSignKey: tokenSignKey,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			Host:      address.Host,
			BodyLimit: bodyLimit,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form host:port and populates the NetAddress.
// The host may be empty (all interfaces), "localhost" or an IP address.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(rawPort)
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
