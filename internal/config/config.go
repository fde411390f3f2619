package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// UI 模式
const (
	ModeTUI  = "tui"
	ModeLine = "line"
)

// Config 客户端配置
type Config struct {
	UI    UIConfig    `yaml:"ui"`
	Game  GameConfig  `yaml:"game"`
	Sound SoundConfig `yaml:"sound"`
	Stats StatsConfig `yaml:"stats"`
	Redis RedisConfig `yaml:"redis"`
}

// UIConfig 界面配置
type UIConfig struct {
	Mode          string `yaml:"mode"`            // tui 或 line
	PlayerName    string `yaml:"player_name"`     // 显示名称
	BankerDelayMs int    `yaml:"banker_delay_ms"` // 庄家每张牌的间隔（毫秒）
}

// GameConfig 游戏配置
type GameConfig struct {
	Seed uint64 `yaml:"seed"` // 0 表示随机
}

// SoundConfig 音效配置
type SoundConfig struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir"`
}

// StatsConfig 统计存储配置
type StatsConfig struct {
	Backend    string `yaml:"backend"`     // memory 或 redis
	TTLMinutes int    `yaml:"ttl_minutes"` // Redis 中会话统计的保留时间
	TimeoutMs  int    `yaml:"timeout_ms"`  // 单次存储操作超时
}

// RedisConfig Redis 配置
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// BankerDelay 返回庄家出牌间隔
func (c *UIConfig) BankerDelay() time.Duration {
	return time.Duration(c.BankerDelayMs) * time.Millisecond
}

// TTL 返回统计过期时间
func (c *StatsConfig) TTL() time.Duration {
	return time.Duration(c.TTLMinutes) * time.Minute
}

// Timeout 返回存储超时时长
func (c *StatsConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutMs) * time.Millisecond
}

// Load 加载配置文件. A missing file is not an error: defaults are used.
// Environment variables (optionally from a .env file) override the file.
// The result is not validated: callers apply their flag overrides first and
// then call Validate.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, err
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse %s: %w", path, err)
			}
		}
	}

	// .env is optional
	_ = godotenv.Load()
	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	applyDefaults(cfg)
	return cfg, nil
}

// Default 返回默认配置
func Default() *Config {
	return &Config{
		UI: UIConfig{
			Mode:          ModeTUI,
			PlayerName:    "Player",
			BankerDelayMs: 700,
		},
		Sound: SoundConfig{
			Enabled: true,
			Dir:     "assets/sounds",
		},
		Stats: StatsConfig{
			Backend:    "memory",
			TTLMinutes: 24 * 60,
			TimeoutMs:  500,
		},
		Redis: RedisConfig{
			Addr: "localhost:6379",
		},
	}
}

// 设置默认值
func applyDefaults(cfg *Config) {
	def := Default()
	if cfg.UI.Mode == "" {
		cfg.UI.Mode = def.UI.Mode
	}
	if cfg.UI.PlayerName == "" {
		cfg.UI.PlayerName = def.UI.PlayerName
	}
	if cfg.UI.BankerDelayMs < 0 {
		cfg.UI.BankerDelayMs = 0
	}
	if cfg.Sound.Dir == "" {
		cfg.Sound.Dir = def.Sound.Dir
	}
	if cfg.Stats.Backend == "" {
		cfg.Stats.Backend = def.Stats.Backend
	}
	if cfg.Stats.TTLMinutes == 0 {
		cfg.Stats.TTLMinutes = def.Stats.TTLMinutes
	}
	if cfg.Stats.TimeoutMs == 0 {
		cfg.Stats.TimeoutMs = def.Stats.TimeoutMs
	}
	if cfg.Redis.Addr == "" {
		cfg.Redis.Addr = def.Redis.Addr
	}
}

// Validate 校验配置
func (c *Config) Validate() error {
	switch c.UI.Mode {
	case ModeTUI, ModeLine:
	default:
		return fmt.Errorf("ui.mode must be %q or %q, got %q", ModeTUI, ModeLine, c.UI.Mode)
	}
	switch c.Stats.Backend {
	case "memory", "redis":
	default:
		return fmt.Errorf("stats.backend must be memory or redis, got %q", c.Stats.Backend)
	}
	return nil
}

// applyEnv 读取 PONTOON_* 环境变量
func applyEnv(cfg *Config) error {
	if v, ok := os.LookupEnv("PONTOON_MODE"); ok {
		cfg.UI.Mode = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := os.LookupEnv("PONTOON_PLAYER_NAME"); ok {
		cfg.UI.PlayerName = v
	}
	if v, ok := os.LookupEnv("PONTOON_SEED"); ok {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("PONTOON_SEED: %w", err)
		}
		cfg.Game.Seed = seed
	}
	if v, ok := os.LookupEnv("PONTOON_SOUND"); ok {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("PONTOON_SOUND: %w", err)
		}
		cfg.Sound.Enabled = enabled
	}
	if v, ok := os.LookupEnv("PONTOON_STATS_BACKEND"); ok {
		cfg.Stats.Backend = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := os.LookupEnv("PONTOON_REDIS_ADDR"); ok {
		cfg.Redis.Addr = v
	}
	if v, ok := os.LookupEnv("PONTOON_REDIS_PASSWORD"); ok {
		cfg.Redis.Password = v
	}
	if v, ok := os.LookupEnv("PONTOON_REDIS_DB"); ok {
		db, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("PONTOON_REDIS_DB: %w", err)
		}
		cfg.Redis.DB = db
	}
	return nil
}
