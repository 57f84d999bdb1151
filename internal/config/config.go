package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/alehua/zerosum/internal/executor/local"
	"github.com/alehua/zerosum/internal/task"
)

const (
	EnvConfigPath     = "ZEROSUM_CONFIG"
	DefaultConfigPath = "config.toml"

	defaultMaxTime = "10s"
	defaultLevel   = "info"
)

type Config struct {
	DSN         string       `toml:"dsn"`
	MetricsAddr string       `toml:"metrics_addr"`
	Workers     int          `toml:"workers"`
	Log         LogConfig    `toml:"log"`
	Tasks       []TaskConfig `toml:"tasks"`
}

type LogConfig struct {
	Development bool   `toml:"development"`
	Level       string `toml:"level"`
}

type TaskConfig struct {
	Name    string `toml:"name"`
	Cron    string `toml:"cron"`
	Cmd     string `toml:"cmd"`
	Values  []int  `toml:"values"`
	MaxTime string `toml:"max_time"`
}

// Path 配置文件路径, 优先使用环境变量
func Path() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	return DefaultConfigPath
}

func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}
	return Parse(string(data))
}

// Parse 解析 TOML 文本, 补齐默认值后校验
func Parse(data string) (Config, error) {
	var cfg Config
	if _, err := toml.Decode(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config parse failed: %w", err)
	}
	applyDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Workers == 0 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaultLevel
	}
	for i := range cfg.Tasks {
		if cfg.Tasks[i].Cmd == "" {
			cfg.Tasks[i].Cmd = local.ZeroSumCmd
		}
		if cfg.Tasks[i].MaxTime == "" {
			cfg.Tasks[i].MaxTime = defaultMaxTime
		}
	}
}

// Validate 返回所有的问题, 而不是第一个
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.DSN) == "" {
		errs = append(errs, errors.New("dsn is required"))
	}
	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("invalid workers %d (must be >= 0)", c.Workers))
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("invalid log level %q", c.Log.Level))
	}
	names := make(map[string]struct{}, len(c.Tasks))
	for i, tc := range c.Tasks {
		if _, err := tc.Task(); err != nil {
			errs = append(errs, fmt.Errorf("tasks[%d] invalid: %w", i, err))
			continue
		}
		if _, ok := names[tc.Name]; ok {
			errs = append(errs, fmt.Errorf("tasks[%d] invalid: duplicate name %q", i, tc.Name))
		}
		names[tc.Name] = struct{}{}
	}
	return errors.Join(errs...)
}

// Task 转换成调度器使用的任务, 统一交给本地执行器
func (tc TaskConfig) Task() (*task.Task, error) {
	maxTime, err := time.ParseDuration(tc.MaxTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %s max_time %q: %w", task.ErrInvalidTask, tc.Name, tc.MaxTime, err)
	}
	t := &task.Task{
		Config: task.Config{
			Name:    tc.Name,
			Cron:    tc.Cron,
			Type:    local.Name,
			Cmd:     tc.Cmd,
			Values:  tc.Values,
			MaxTime: maxTime,
		},
	}
	if err = t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}
