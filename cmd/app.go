// Package cmd implements the CLI application of the trading simulator.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/valutatrade"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	c.Register(c.CommandsCommand(), "")
	c.Register(&topicCmd{}, "")
	c.Register(&shellCmd{}, "")

	c.Register(&registerCmd{}, "accounts")
	c.Register(&loginCmd{}, "accounts")
	c.Register(&logoutCmd{}, "accounts")
	c.Register(&whoamiCmd{}, "accounts")
	c.Register(&changePasswordCmd{}, "accounts")

	c.Register(&showPortfolioCmd{}, "trading")
	c.Register(&buyCmd{}, "trading")
	c.Register(&sellCmd{}, "trading")

	c.Register(&getRateCmd{}, "rates")
	c.Register(&importRatesCmd{}, "rates")
}

// Environment variables giving the defaults of the global flags. They are
// also exported to extensions.
const (
	EnvDataDir   = "VT_DATA_DIR"
	EnvVerbose   = "VT_VERBOSE"
	EnvLogFormat = "VT_LOG_FORMAT"
	EnvPlain     = "VT_PLAIN"
)

// DefaultDataDir is where the JSON tables live unless told otherwise.
const DefaultDataDir = "data"

// Config holds the global options shared by every subcommand.
type Config struct {
	DataDir   string // directory of users.json, portfolios.json, rates.json and session.json
	Verbose   bool   // log at debug level instead of warn
	LogFormat string // "logfmt" or "json"
	Plain     bool   // print raw markdown instead of rendering it
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use a global variable.
var config = Config{DataDir: DefaultDataDir, LogFormat: "logfmt"}

// SetFlags loads the .env file of the working directory, if any, and
// registers the global flags on f with defaults taken from the environment.
func SetFlags(f *flag.FlagSet) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Warning: ignoring .env file: %v\n", err)
	}
	f.StringVar(&config.DataDir, "data-dir", getEnv(EnvDataDir, DefaultDataDir), "directory holding the JSON tables")
	f.BoolVar(&config.Verbose, "v", getEnvAsBool(EnvVerbose, false), "verbose logging on stderr")
	f.StringVar(&config.LogFormat, "log-format", getEnv(EnvLogFormat, "logfmt"), "log format: logfmt or json")
	f.BoolVar(&config.Plain, "plain", getEnvAsBool(EnvPlain, false), "print raw markdown instead of rendering it for the terminal")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

// Logger returns the stderr logger configured by the global flags.
func Logger() log.Logger {
	w := log.NewSyncWriter(os.Stderr)
	var logger log.Logger
	if config.LogFormat == "json" {
		logger = log.NewJSONLogger(w)
	} else {
		logger = log.NewLogfmtLogger(w)
	}
	allow := level.AllowWarn()
	if config.Verbose {
		allow = level.AllowDebug()
	}
	logger = level.NewFilter(logger, allow)
	return log.With(logger, "ts", log.DefaultTimestampUTC)
}

// OpenService is the central function to open the file tables of the data
// directory behind a Service.
func OpenService() *valutatrade.Service {
	logger := Logger()
	stores := valutatrade.OpenFileStores(config.DataDir)
	rates := valutatrade.NewLoggingRateStore(log.With(logger, "store", "rates"), stores.Rates)
	return valutatrade.NewService(stores.Accounts, stores.Portfolios, rates, logger)
}

// printMarkdown prints md to stdout, rendered for the terminal unless plain output was requested.
func printMarkdown(md string) {
	if config.Plain {
		fmt.Print(md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
