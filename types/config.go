// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/json"
	"os"

	tml "github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Config 运行配置
type Config struct {
	Title   string   `toml:"Title"`
	Log     *Log     `toml:"log"`
	Store   *Store   `toml:"store"`
	Metrics *Metrics `toml:"metrics"`
}

// Log 日志配置
type Log struct {
	Loglevel        string `toml:"loglevel"`
	LogConsoleLevel string `toml:"logConsoleLevel"`
	LogFile         string `toml:"logFile"`
	MaxFileSize     uint32 `toml:"maxFileSize"`
	MaxBackups      uint32 `toml:"maxBackups"`
	MaxAge          uint32 `toml:"maxAge"`
	LocalTime       bool   `toml:"localTime"`
	Compress        bool   `toml:"compress"`
	CallerFile      bool   `toml:"callerFile"`
	CallerFunction  bool   `toml:"callerFunction"`
}

// Store 数据库配置
type Store struct {
	Driver  string `toml:"driver"`
	DbPath  string `toml:"dbPath"`
	DbCache int32  `toml:"dbCache"`
}

// Metrics 统计数据配置
type Metrics struct {
	EnableMetrics bool   `toml:"enableMetrics"`
	DataEmitMode  string `toml:"dataEmitMode"`
	// Duration 输出间隔，单位秒
	Duration int64 `toml:"duration"`
	// ListenAddr prometheus 模式下 /metrics 的监听地址
	ListenAddr string `toml:"listenAddr"`
}

// ConfigSubModule 子模块配置，按名称保存 json 编码后的配置
type ConfigSubModule struct {
	Exec map[string][]byte
}

type subModule struct {
	Exec map[string]interface{} `toml:"exec"`
}

var cfgstring = `
Title="local"

[log]
# 日志级别，支持debug(dbug)/info/warn/error(eror)/crit
loglevel = "info"
logConsoleLevel = "error"
# 日志文件名，可带目录，为空时只输出到控制台
logFile = ""
maxFileSize = 300
maxBackups = 100
maxAge = 28
localTime = true
compress = true
callerFile = false
callerFunction = false

[store]
driver="memdb"
dbPath="datadir"
dbCache=64

[exec.sub.coins]
faucet=true

[exec.sub.arena]
initializer=""

[metrics]
enableMetrics=false
dataEmitMode="log"
duration=10
listenAddr="localhost:9101"
`

// GetDefaultCfgstring 默认配置
func GetDefaultCfgstring() string {
	return cfgstring
}

// ReadConfigFile 读取配置文件
func ReadConfigFile(path string) (*Config, *ConfigSubModule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, errors.Wrap(err, "ReadConfigFile")
	}
	return InitCfgString(string(data))
}

// InitCfgString 从字符串初始化配置
func InitCfgString(cfgstring string) (*Config, *ConfigSubModule, error) {
	var cfg Config
	if _, err := tml.Decode(cfgstring, &cfg); err != nil {
		return nil, nil, errors.Wrap(err, "decode config")
	}
	fillDefaultConfig(&cfg)
	var sub subModule
	if _, err := tml.Decode(cfgstring, &sub); err != nil {
		return nil, nil, errors.Wrap(err, "decode sub config")
	}
	subcfg, err := parseSubModule(&sub)
	if err != nil {
		return nil, nil, err
	}
	return &cfg, subcfg, nil
}

func fillDefaultConfig(cfg *Config) {
	if cfg.Log == nil {
		cfg.Log = &Log{}
	}
	if cfg.Store == nil {
		cfg.Store = &Store{}
	}
	if cfg.Store.Driver == "" {
		cfg.Store.Driver = "memdb"
	}
	if cfg.Metrics == nil {
		cfg.Metrics = &Metrics{}
	}
	if cfg.Metrics.Duration <= 0 {
		cfg.Metrics.Duration = 10
	}
}

func parseSubModule(cfg *subModule) (*ConfigSubModule, error) {
	var subcfg ConfigSubModule
	subcfg.Exec = make(map[string][]byte)
	sub, ok := cfg.Exec["sub"]
	if !ok {
		return &subcfg, nil
	}
	items, ok := sub.(map[string]interface{})
	if !ok {
		return nil, errors.Wrap(ErrInvalidParam, "exec.sub")
	}
	for k, v := range items {
		data, err := json.Marshal(v)
		if err != nil {
			return nil, errors.Wrapf(err, "exec.sub.%s", k)
		}
		subcfg.Exec[k] = data
	}
	return &subcfg, nil
}

// MustDecode 解码子模块配置
func MustDecode(data []byte, v interface{}) {
	if data == nil {
		return
	}
	err := json.Unmarshal(data, v)
	if err != nil {
		panic(err)
	}
}
