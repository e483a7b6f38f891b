package config

import (
	"errors"
	"flag"
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

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a local API address in format [host]:[port]
//	-d local queue database path (SQLite file)
//	-remote remote store base URL
//	-remote-token opaque bearer token for the remote store
//	-remote-timeout per-request timeout for remote calls (e.g., "15s")
//	-sync-interval periodic sync pass interval (e.g., "1m")
//	-probe-interval connectivity probe interval (e.g., "15s")
//	-batch-size max transactions reconciled concurrently per batch
//	-max-retries retry ceiling before a transaction is parked
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var apiAddress NetAddress
	var databaseDSN string
	var remoteBaseURL string
	var remoteToken string
	var remoteTimeout time.Duration
	var syncInterval time.Duration
	var probeInterval time.Duration
	var batchSize int
	var maxRetries int
	var jsonConfigPath string

	flag.Var(&apiAddress, "a", "Local API net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Local queue database path")
	flag.StringVar(&remoteBaseURL, "remote", "", "Remote store base URL")
	flag.StringVar(&remoteToken, "remote-token", "", "Remote store bearer token")
	flag.DurationVar(&remoteTimeout, "remote-timeout", 0, "Remote request timeout (e.g., 15s)")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Periodic sync interval (e.g., 1m)")
	flag.DurationVar(&probeInterval, "probe-interval", 0, "Connectivity probe interval (e.g., 15s)")
	flag.IntVar(&batchSize, "batch-size", 0, "Max transactions per sync batch")
	flag.IntVar(&maxRetries, "max-retries", 0, "Retry ceiling for failed transactions")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		Remote: Remote{
			BaseURL:        remoteBaseURL,
			Token:          remoteToken,
			RequestTimeout: remoteTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress: apiAddress.String(),
		},
		Sync: Sync{
			Interval:      syncInterval,
			ProbeInterval: probeInterval,
			BatchSize:     batchSize,
			MaxRetries:    maxRetries,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
