package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/lvwalk/graphio"
)

// ExitError carries the process exit code for a user-facing failure.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string { return e.Message }

// Config is the resolved walkgen configuration.
type Config struct {
	GraphPath string
	Format    string
	Synthetic string
	Directed  bool
	Weighted  bool

	P               float64
	Q               float64
	Epochs          int
	WalkLen         int
	SampleNeighbors int
	Workers         int
	Seed            int64
	BatchSize       int
	Sequential      bool

	Out         string
	RedisAddr   string
	RedisKey    string
	MetricsAddr string

	LogLevel  string
	LogFormat string
}

// envFileVar names the variable that points at the dotenv file.
const envFileVar = "LVWALK_ENV_FILE"

// DefaultConfig mirrors the usual node2vec command-line defaults.
func DefaultConfig() Config {
	return Config{
		Format:    "edgelist",
		P:         1,
		Q:         1,
		Epochs:    10,
		WalkLen:   80,
		Out:       "-",
		RedisKey:  "lvwalk:walks",
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Parse resolves the configuration from defaults, the dotenv file, environ
// (KEY=VALUE entries, os.Environ() in production) and finally args.
// The boolean result asks the caller to exit cleanly (help was printed).
func Parse(args []string, output io.Writer, environ []string) (*Config, bool, error) {
	cfg := DefaultConfig()

	env := make(map[string]string, len(environ))
	for _, item := range environ {
		k, v, ok := strings.Cut(item, "=")
		if ok {
			env[k] = v
		}
	}
	dotenv, err := readDotenv(env)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	for _, src := range []map[string]string{dotenv, env} {
		for k, v := range src {
			if err := cfg.applyEnv(k, v); err != nil {
				return nil, false, &ExitError{Code: 2, Message: err.Error()}
			}
		}
	}

	fset := flag.NewFlagSet("walkgen", flag.ContinueOnError)
	fset.SetOutput(output)
	fset.Usage = func() {
		fmt.Fprint(output, `
walkgen - generate a node2vec / DeepWalk random-walk corpus.

Usage:
  walkgen [options] (-graph FILE | -synthetic KIND:ARGS)

Every option can also be set through an LVWALK_* environment variable
(for example LVWALK_WALK_LEN) or a dotenv file ($LVWALK_ENV_FILE, default .env).

Options:
`)
		fset.PrintDefaults()
	}

	fset.StringVar(&cfg.GraphPath, "graph", cfg.GraphPath, "Path to the input graph file.")
	fset.StringVar(&cfg.Format, "format", cfg.Format, "Input format: 'adjlist' or 'edgelist'.")
	fset.StringVar(&cfg.Synthetic, "synthetic", cfg.Synthetic, "Generated graph instead of a file, e.g. 'cycle:100', 'grid:10x20', 'random:1000:0.01'.")
	fset.BoolVar(&cfg.Directed, "directed", cfg.Directed, "Treat the graph as directed.")
	fset.BoolVar(&cfg.Weighted, "weighted", cfg.Weighted, "Use edge weights.")
	fset.Float64Var(&cfg.P, "p", cfg.P, "Return parameter.")
	fset.Float64Var(&cfg.Q, "q", cfg.Q, "In-out parameter.")
	fset.IntVar(&cfg.Epochs, "epochs", cfg.Epochs, "Walks per vertex.")
	fset.IntVar(&cfg.WalkLen, "walk-len", cfg.WalkLen, "Maximum number of vertices per walk.")
	fset.IntVar(&cfg.SampleNeighbors, "sample-neighbors", cfg.SampleNeighbors, "Neighbor cap per vertex; 0 keeps every neighbor.")
	fset.IntVar(&cfg.Workers, "workers", cfg.Workers, "Worker goroutines; 0 uses GOMAXPROCS.")
	fset.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed; 0 uses the default seed.")
	fset.IntVar(&cfg.BatchSize, "batch-size", cfg.BatchSize, "Start vertices per parallel batch; 0 uses the default.")
	fset.BoolVar(&cfg.Sequential, "sequential", cfg.Sequential, "Generate walks on a single goroutine.")
	fset.StringVar(&cfg.Out, "out", cfg.Out, "Corpus file, '-' for stdout.")
	fset.StringVar(&cfg.RedisAddr, "redis-addr", cfg.RedisAddr, "Store walks in Redis at this address instead of -out.")
	fset.StringVar(&cfg.RedisKey, "redis-key", cfg.RedisKey, "Redis list receiving the walks.")
	fset.StringVar(&cfg.MetricsAddr, "metrics-addr", cfg.MetricsAddr, "Serve Prometheus metrics on this address, e.g. ':9100'.")
	fset.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Logging level: 'debug', 'info', 'warn' or 'error'.")
	fset.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log output format: 'text' or 'json'.")

	if err := fset.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if cfg.GraphPath == "" && fset.NArg() > 0 {
		cfg.GraphPath = fset.Arg(0)
	}
	if cfg.GraphPath == "" && cfg.Synthetic == "" {
		fset.Usage()
		return nil, true, nil
	}
	if err := cfg.validate(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return &cfg, false, nil
}

func (c *Config) validate() error {
	if c.GraphPath != "" && c.Synthetic != "" {
		return errors.New("-graph and -synthetic are mutually exclusive")
	}
	if _, err := graphio.ParseFormat(c.Format); err != nil {
		return err
	}
	c.LogFormat = strings.ToLower(c.LogFormat)
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return errors.New("invalid log-format: must be 'text' or 'json'")
	}
	c.LogLevel = strings.ToLower(c.LogLevel)
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return errors.New("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}
	if c.BatchSize < 0 || c.Workers < 0 {
		return errors.New("workers and batch-size must not be negative")
	}
	return nil
}

// readDotenv loads the dotenv file named by LVWALK_ENV_FILE, or ./.env when
// present.
func readDotenv(env map[string]string) (map[string]string, error) {
	path, explicit := env[envFileVar]
	if !explicit {
		path = ".env"
	}
	m, err := godotenv.Read(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return m, nil
}

// applyEnv sets the field behind one LVWALK_* variable. Unknown keys are ignored.
func (c *Config) applyEnv(key, val string) error {
	var err error
	switch key {
	case "LVWALK_GRAPH":
		c.GraphPath = val
	case "LVWALK_FORMAT":
		c.Format = val
	case "LVWALK_SYNTHETIC":
		c.Synthetic = val
	case "LVWALK_DIRECTED":
		c.Directed, err = strconv.ParseBool(val)
	case "LVWALK_WEIGHTED":
		c.Weighted, err = strconv.ParseBool(val)
	case "LVWALK_P":
		c.P, err = strconv.ParseFloat(val, 64)
	case "LVWALK_Q":
		c.Q, err = strconv.ParseFloat(val, 64)
	case "LVWALK_EPOCHS":
		c.Epochs, err = strconv.Atoi(val)
	case "LVWALK_WALK_LEN":
		c.WalkLen, err = strconv.Atoi(val)
	case "LVWALK_SAMPLE_NEIGHBORS":
		c.SampleNeighbors, err = strconv.Atoi(val)
	case "LVWALK_WORKERS":
		c.Workers, err = strconv.Atoi(val)
	case "LVWALK_SEED":
		c.Seed, err = strconv.ParseInt(val, 10, 64)
	case "LVWALK_BATCH_SIZE":
		c.BatchSize, err = strconv.Atoi(val)
	case "LVWALK_SEQUENTIAL":
		c.Sequential, err = strconv.ParseBool(val)
	case "LVWALK_OUT":
		c.Out = val
	case "LVWALK_REDIS_ADDR":
		c.RedisAddr = val
	case "LVWALK_REDIS_KEY":
		c.RedisKey = val
	case "LVWALK_METRICS_ADDR":
		c.MetricsAddr = val
	case "LVWALK_LOG_LEVEL":
		c.LogLevel = val
	case "LVWALK_LOG_FORMAT":
		c.LogFormat = val
	default:
		return nil
	}
	if err != nil {
		return fmt.Errorf("error parsing %s=%q: %w", key, val, err)
	}
	return nil
}
