package config

import (
	"errors"
	"flag"
	"io"
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

// ParseFlags parses all configuration flags from args and returns the
// positional arguments that follow them.
//
// Flags:
//
//	-a stub server address in format [host]:[port]
//	-c/-config json file path with configs
//	-api-key API key sent with every request
//	-redirect-scheme deep-link scheme of the web authentication redirect
//	-api-url API base URL
//	-image-url poster image base URL
//	-auth-url web authentication site URL
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-log-level log level (debug, info, warn, error)
//	-log-file client log file path
//	-stub-user stub account username
//	-stub-password stub account password
//	-completion-buffer completion queue capacity
func ParseFlags(args []string) (*StructuredConfig, []string, error) {
	var serverAddress NetAddress
	var jsonConfigPath string
	var apiKey, redirectScheme, apiURL, imageURL, authURL string
	var requestTimeout time.Duration
	var logLevel, logFile string
	var stubUser, stubPassword string
	var completionBuffer int

	fs := flag.NewFlagSet("movie-manager", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&apiKey, "api-key", "", "API key")
	fs.StringVar(&redirectScheme, "redirect-scheme", "", "Web authentication redirect scheme")
	fs.StringVar(&apiURL, "api-url", "", "API base URL")
	fs.StringVar(&imageURL, "image-url", "", "Poster image base URL")
	fs.StringVar(&authURL, "auth-url", "", "Web authentication site URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&logFile, "log-file", "", "Client log file path")
	fs.StringVar(&stubUser, "stub-user", "", "Stub account username")
	fs.StringVar(&stubPassword, "stub-password", "", "Stub account password")
	fs.IntVar(&completionBuffer, "completion-buffer", 0, "Completion queue capacity")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return &StructuredConfig{
		App: App{
			APIKey:         apiKey,
			RedirectScheme: redirectScheme,
			LogLevel:       logLevel,
			LogFile:        logFile,
		},
		Adapter: Adapter{
			APIBaseURL:     apiURL,
			ImageBaseURL:   imageURL,
			AuthSiteURL:    authURL,
			RequestTimeout: requestTimeout,
		},
		Server: Server{
			HTTPAddress:  serverAddress.String(),
			StubUsername: stubUser,
			StubPassword: stubPassword,
		},
		Workers:      Workers{CompletionBuffer: completionBuffer},
		JSONFilePath: jsonConfigPath,
	}, fs.Args(), nil
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
