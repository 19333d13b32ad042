// Package config loads per-exercise checker configuration from YAML with
// environment overrides.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/google/shlex"
	"gopkg.in/yaml.v3"

	appErr "corrector/pkg/errors"
	"corrector/pkg/locale"
	"corrector/pkg/utils/logger"
)

const (
	defaultTimeout       = 1 * time.Second
	defaultRunTimeout    = 10 * time.Second
	defaultMemoryLimitMB = 1024

	// TimeoutEnv overrides the supervision timeout (a Go duration string).
	TimeoutEnv = "CORRECTOR_TIMEOUT"
)

// DefaultCFlags are passed to the C compiler when an exercise does not
// override them.
var DefaultCFlags = []string{"-Wall", "-Wextra", "-O2"}

// CompileConfig holds the compile command template for compiled exercises.
// The template may reference {src}, {bin} and {cflags}.
type CompileConfig struct {
	CC     string   `yaml:"cc"`
	CFlags []string `yaml:"cflags"`
}

// MessagesConfig lets an exercise override specific diagnostic texts.
type MessagesConfig struct {
	TooSlow     string `yaml:"tooSlow"`
	PrintPrefix string `yaml:"printPrefix"`
}

// Exercise holds one check script's configuration.
type Exercise struct {
	// Language forces the diagnostic language ("en", "fr"); empty defers to
	// the environment.
	Language      string         `yaml:"language"`
	Timeout       time.Duration  `yaml:"timeout"`
	RunTimeout    time.Duration  `yaml:"runTimeout"`
	MemoryLimitMB int64          `yaml:"memoryLimitMB"`
	PrintPolicy   string         `yaml:"printPolicy"` // allowed, denied or hidden
	Compile       CompileConfig  `yaml:"compile"`
	Messages      MessagesConfig `yaml:"messages"`
	Logger        logger.Config  `yaml:"logger"`
}

// Default returns the configuration used when no file is provided.
// Environment overrides still apply.
func Default() *Exercise {
	cfg := &Exercise{}
	applyDefaults(cfg)
	applyEnv(cfg)
	return cfg
}

// Load reads an exercise configuration file, applies defaults and
// environment overrides.
func Load(path string) (*Exercise, error) {
	var cfg Exercise
	if err := loadYAML(path, &cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)
	applyEnv(&cfg)
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	if cfg.Language != "" {
		locale.Override(cfg.Language)
	}
	if cfg.Logger != (logger.Config{}) {
		if err := logger.Init(cfg.Logger); err != nil {
			return nil, appErr.Wrapf(err, appErr.ConfigInvalid, "init logger failed: %v", err)
		}
	}
	return &cfg, nil
}

func loadYAML(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return appErr.Wrapf(err, appErr.ConfigReadFailed, "read config file failed: %v", err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return appErr.Wrapf(err, appErr.ConfigParseFailed, "parse config file failed: %v", err)
	}
	return nil
}

func applyDefaults(cfg *Exercise) {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.RunTimeout <= 0 {
		cfg.RunTimeout = defaultRunTimeout
	}
	if cfg.MemoryLimitMB <= 0 {
		cfg.MemoryLimitMB = defaultMemoryLimitMB
	}
	if cfg.PrintPolicy == "" {
		cfg.PrintPolicy = "allowed"
	}
	if cfg.Compile.CC == "" {
		cfg.Compile.CC = "cc {cflags} {src} -o {bin}"
	}
	if len(cfg.Compile.CFlags) == 0 {
		cfg.Compile.CFlags = append([]string(nil), DefaultCFlags...)
	}
}

func applyEnv(cfg *Exercise) {
	if raw := os.Getenv(TimeoutEnv); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}
}

func validate(cfg *Exercise) error {
	switch cfg.PrintPolicy {
	case "allowed", "denied", "hidden":
	default:
		return appErr.Newf(appErr.ConfigInvalid, "unsupported print policy: %s", cfg.PrintPolicy)
	}
	return nil
}

// CompileCommand expands the compile template for the given source and
// binary paths and splits it into an argv.
func (c CompileConfig) CompileCommand(src, bin string) ([]string, error) {
	if strings.TrimSpace(c.CC) == "" {
		return nil, appErr.New(appErr.ConfigInvalid).WithMessage("compile command template is required")
	}
	expanded := c.CC
	expanded = strings.ReplaceAll(expanded, "{src}", src)
	expanded = strings.ReplaceAll(expanded, "{bin}", bin)
	expanded = strings.ReplaceAll(expanded, "{cflags}", strings.Join(c.CFlags, " "))
	fields, err := shlex.Split(expanded)
	if err != nil {
		return nil, appErr.Wrapf(err, appErr.ConfigInvalid, "parse compile template failed")
	}
	if len(fields) == 0 {
		return nil, appErr.New(appErr.ConfigInvalid).WithMessage("compile command is empty after expansion")
	}
	return fields, nil
}
