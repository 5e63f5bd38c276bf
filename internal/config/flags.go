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
//	-a server address in format [host]:[port]
//	-u path to the user registry seed file
//	-c/-config json file path with configs
//	-session-secret hex-encoded session cookie key
//	-cookie-name session cookie name
//	-environment deployment environment (development|production)
//	-request-timeout request timeout (e.g., "30s", "1m")
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var usersFilePath string
	var jsonConfigPath string
	var sessionSecret string
	var cookieName string
	var environment string
	var requestTimeout time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&usersFilePath, "u", "", "User registry seed file path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&sessionSecret, "session-secret", "", "Session cookie key (hex)")
	flag.StringVar(&cookieName, "cookie-name", "", "Session cookie name")
	flag.StringVar(&environment, "environment", "", "Deployment environment (development|production)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			Environment:   environment,
			SessionSecret: sessionSecret,
			CookieName:    cookieName,
		},
		Storage: Storage{
			Users: Users{
				File: usersFilePath,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string so that the
// merge step can fall through to lower-priority sources.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost"
// or empty, and returns an error if the format or values are invalid.
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

	if host != "localhost" && host != "" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
