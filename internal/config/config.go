package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/linkup-social/linkup-header/internal/app"
	"github.com/pelletier/go-toml/v2"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	File    string
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envConfigFile    = "LINKUP_HEADER_CONFIG"
	envAPI           = "LINKUP_HEADER_API"
	envToken         = "LINKUP_HEADER_TOKEN"
	envDirectoryDB   = "LINKUP_HEADER_DIRECTORY_DB"
	envDirectorySeed = "LINKUP_HEADER_DIRECTORY_SEED"
	envWidth         = "LINKUP_HEADER_WIDTH"
	envHeight        = "LINKUP_HEADER_HEIGHT"
	envShowFooter    = "LINKUP_HEADER_FOOTER"
	envVerbose       = "LINKUP_HEADER_VERBOSE"
	envMaxResults    = "LINKUP_HEADER_MAX_RESULTS"
	envNavTimeout    = "LINKUP_HEADER_NAVIGATION_TIMEOUT"
	envFetchTimeout  = "LINKUP_HEADER_FETCH_TIMEOUT"
	envTrace         = "LINKUP_HEADER_TRACE"
	envLogFile       = "LINKUP_HEADER_LOG_FILE"
)

const (
	defaultMaxResults        = 8
	defaultNavigationTimeout = 5 * time.Second
	defaultFetchTimeout      = 15 * time.Second
)

// fileConfig mirrors the TOML file. Pointer fields tell "unset" apart from
// zero values so the file only overrides what it names.
type fileConfig struct {
	API               string `toml:"api"`
	Token             string `toml:"token"`
	DirectoryDB       string `toml:"directory_db"`
	DirectorySeed     string `toml:"directory_seed"`
	Width             *int   `toml:"width"`
	Height            *int   `toml:"height"`
	Footer            *bool  `toml:"footer"`
	Verbose           *bool  `toml:"verbose"`
	MaxResults        *int   `toml:"max_results"`
	NavigationTimeout string `toml:"navigation_timeout"`
	FetchTimeout      string `toml:"fetch_timeout"`
	Trace             *bool  `toml:"trace"`
	LogFile           string `toml:"log_file"`
}

type settings struct {
	api, token, directoryDB, directorySeed, logFile string

	width, height, maxResults int
	footer, verbose, trace    bool
	navTimeout, fetchTimeout  time.Duration
}

// Load parses configuration from CLI arguments, environment variables and
// the optional TOML file.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. Precedence is
// defaults, then the TOML file, then the environment, then flags.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	base := settings{
		maxResults:   defaultMaxResults,
		navTimeout:   defaultNavigationTimeout,
		fetchTimeout: defaultFetchTimeout,
	}
	file := configPathFromArgs(args)
	if file == "" {
		file = envOrDefault(env, envConfigFile, "")
	}
	if file != "" {
		if err := applyFile(&base, file); err != nil {
			return Config{}, err
		}
	}
	if err := applyEnv(&base, env); err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet("linkup-header", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	fs.String("config", file, "path to a TOML config file")
	api := fs.String("api", base.api, "LinkUp API base URL")
	token := fs.String("token", base.token, "session token sent as a bearer credential")
	directoryDB := fs.String("directory-db", base.directoryDB, "serve the user directory from this SQLite database")
	directorySeed := fs.String("directory-seed", base.directorySeed, "JSON file imported into the directory database at startup")
	width := fs.Int("width", base.width, "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", base.height, "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", base.footer, "enable footer hint row (disabled by default)")
	verbose := fs.Bool("verbose", base.verbose, "show collaborator errors as toasts")
	maxResults := fs.Int("max-results", base.maxResults, "maximum number of result rows shown at once")
	navTimeout := fs.Duration("navigation-timeout", base.navTimeout, "how long a selection waits for navigation")
	fetchTimeout := fs.Duration("fetch-timeout", base.fetchTimeout, "deadline for the directory fetch and logout calls")
	trace := fs.Bool("trace", base.trace, "enable verbose JSON trace logging")
	logFile := fs.String("log-file", base.logFile, "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := Config{
		App: app.Config{
			APIBaseURL:        strings.TrimSpace(*api),
			Token:             strings.TrimSpace(*token),
			DirectoryDB:       *directoryDB,
			DirectorySeed:     *directorySeed,
			Width:             *width,
			Height:            *height,
			ShowFooter:        *footer,
			Verbose:           *verbose,
			MaxResults:        *maxResults,
			NavigationTimeout: *navTimeout,
			FetchTimeout:      *fetchTimeout,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		File: file,
		Flags: map[string]string{
			"api":               *api,
			"token":             redact(*token),
			"directoryDB":       *directoryDB,
			"directorySeed":     *directorySeed,
			"width":             strconv.Itoa(*width),
			"height":            strconv.Itoa(*height),
			"footer":            strconv.FormatBool(*footer),
			"verbose":           strconv.FormatBool(*verbose),
			"maxResults":        strconv.Itoa(*maxResults),
			"navigationTimeout": navTimeout.String(),
			"fetchTimeout":      fetchTimeout.String(),
			"trace":             strconv.FormatBool(*trace),
			"logFile":           *logFile,
			"config":            file,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func applyFile(s *settings, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			row, col := decodeErr.Position()
			return fmt.Errorf("config file %s:%d:%d: %w", path, row, col, err)
		}
		return fmt.Errorf("config file %s: %w", path, err)
	}
	setString(&s.api, fc.API)
	setString(&s.token, fc.Token)
	setString(&s.directoryDB, fc.DirectoryDB)
	setString(&s.directorySeed, fc.DirectorySeed)
	setString(&s.logFile, fc.LogFile)
	if fc.Width != nil {
		s.width = *fc.Width
	}
	if fc.Height != nil {
		s.height = *fc.Height
	}
	if fc.MaxResults != nil {
		s.maxResults = *fc.MaxResults
	}
	if fc.Footer != nil {
		s.footer = *fc.Footer
	}
	if fc.Verbose != nil {
		s.verbose = *fc.Verbose
	}
	if fc.Trace != nil {
		s.trace = *fc.Trace
	}
	if err := setDuration(&s.navTimeout, fc.NavigationTimeout, "navigation_timeout"); err != nil {
		return fmt.Errorf("config file %s: %w", path, err)
	}
	if err := setDuration(&s.fetchTimeout, fc.FetchTimeout, "fetch_timeout"); err != nil {
		return fmt.Errorf("config file %s: %w", path, err)
	}
	return nil
}

func applyEnv(s *settings, env map[string]string) error {
	s.api = envOrDefault(env, envAPI, s.api)
	s.token = envOrDefault(env, envToken, s.token)
	s.directoryDB = envOrDefault(env, envDirectoryDB, s.directoryDB)
	s.directorySeed = envOrDefault(env, envDirectorySeed, s.directorySeed)
	s.logFile = envOrDefault(env, envLogFile, s.logFile)
	s.width = envOrInt(env, envWidth, s.width)
	s.height = envOrInt(env, envHeight, s.height)
	s.maxResults = envOrInt(env, envMaxResults, s.maxResults)
	s.footer = envOrBool(env, envShowFooter, s.footer)
	s.verbose = envOrBool(env, envVerbose, s.verbose)
	s.trace = envOrBool(env, envTrace, s.trace)
	if err := setDuration(&s.navTimeout, env[envNavTimeout], envNavTimeout); err != nil {
		return err
	}
	return setDuration(&s.fetchTimeout, env[envFetchTimeout], envFetchTimeout)
}

// configPathFromArgs finds --config before the full flag set exists, since
// the file supplies that flag set's defaults.
func configPathFromArgs(args []string) string {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return ""
		}
		name := strings.TrimLeft(arg, "-")
		if name == arg {
			continue
		}
		if value, ok := strings.CutPrefix(name, "config="); ok {
			return value
		}
		if name == "config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

func setString(dst *string, v string) {
	if strings.TrimSpace(v) != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, v, name string) error {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	*dst = d
	return nil
}

func redact(secret string) string {
	if secret == "" {
		return ""
	}
	return "<redacted>"
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	a := cfg.App
	if a.Width < 0 {
		return fmt.Errorf("width must be >= 0 (got %d)", a.Width)
	}
	if a.Height < 0 {
		return fmt.Errorf("height must be >= 0 (got %d)", a.Height)
	}
	if a.MaxResults <= 0 {
		return fmt.Errorf("max-results must be > 0 (got %d)", a.MaxResults)
	}
	if a.NavigationTimeout <= 0 {
		return fmt.Errorf("navigation-timeout must be > 0 (got %s)", a.NavigationTimeout)
	}
	if a.FetchTimeout <= 0 {
		return fmt.Errorf("fetch-timeout must be > 0 (got %s)", a.FetchTimeout)
	}
	if a.APIBaseURL == "" && a.DirectoryDB == "" {
		return errors.New("either --api or --directory-db is required")
	}
	if a.DirectorySeed != "" && a.DirectoryDB == "" {
		return errors.New("--directory-seed requires --directory-db")
	}
	return nil
}
