package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"github.com/adrg/xdg"
)

var cfgFile = "xiangqi-local/config.json"

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("config error: %s", e.err)
}

// ServerConfig 本地服务的监听与静态资源目录
type ServerConfig struct {
	Addr         string `json:"addr"`
	WebDir       string `json:"web_dir"`
	MobileWebDir string `json:"mobile_web_dir"`
	OpenBrowser  bool   `json:"open_browser"`
}

// ReplayConfig 自动复盘的节奏；定时器本身在前端/TUI，这里只存参数
type ReplayConfig struct {
	TickMs int  `json:"tick_ms"`
	Sound  bool `json:"sound"`
}

type Config struct {
	Server ServerConfig `json:"server"`
	Replay ReplayConfig `json:"replay"`
}

var DefaultConfig = Config{
	Server: ServerConfig{
		Addr:         ":2999",
		WebDir:       "./web",
		MobileWebDir: "./web_mobile",
		OpenBrowser:  true,
	},
	Replay: ReplayConfig{
		TickMs: 800,
		Sound:  true,
	},
}

// InitConfig 从 xdg 配置目录读配置；没有配置文件时用默认值
func InitConfig() (*Config, error) {
	config := DefaultConfig
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err == nil {
		readCfgFile(absPath, &config)
	}
	if err = config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return &InvalidConfig{err: "server.addr must not be empty"}
	}
	if c.Replay.TickMs < 100 {
		return &InvalidConfig{err: "replay.tick_ms must be at least 100"}
	}
	return nil
}

// Save 写回 xdg 配置目录
func (c *Config) Save() error {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(absPath, data, fs.FileMode(0644))
}

func readCfgFile(path string, config *Config) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	// 解析失败就保持默认值，不让坏配置挡着启动
	_ = json.Unmarshal(data, config)
}
