package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"retab/pkg/model"
)

// Config 配置文件结构体
type Config struct {
	Version string `yaml:"version"`

	Sqlite struct {
		Dsn    string `yaml:"dsn"`
		Prefix string `yaml:"prefix"`
	} `yaml:"sqlite"`

	Log struct {
		Level  string   `yaml:"level"`
		Writer []string `yaml:"writer"`
		File   string   `yaml:"file"`
	} `yaml:"log"`

	Naming struct {
		MethodPrefix bool `yaml:"method_prefix"`
		QueryString  bool `yaml:"query_string"`
		NormalizeIDs bool `yaml:"normalize_ids"`
		AuthHint     bool `yaml:"auth_hint"`
		MaxLength    int  `yaml:"max_length"`
	} `yaml:"naming"`
}

// NewConfig 创建默认配置
func NewConfig() *Config {
	c := &Config{Version: "1.0.0"}
	c.Sqlite.Dsn = "db.sqlite3"
	c.Sqlite.Prefix = "retab_"
	c.Log.Level = "info"
	c.Log.Writer = []string{"console"}
	c.Log.File = "retab.log"

	opt := model.DefaultOptions()
	c.Naming.MethodPrefix = opt.IncludeMethodPrefix
	c.Naming.QueryString = opt.IncludeQueryString
	c.Naming.NormalizeIDs = opt.NormalizeIDs
	c.Naming.AuthHint = opt.IncludeAuthHint
	c.Naming.MaxLength = opt.MaxLabelLength
	return c
}

// Load 从文件加载配置，未设置的字段保持默认值
func Load(path string) (*Config, error) {
	c := NewConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}
	return c, nil
}

// Options 将naming配置块转换为引擎选项
func (c *Config) Options() model.Options {
	return model.Options{
		IncludeMethodPrefix: c.Naming.MethodPrefix,
		IncludeQueryString:  c.Naming.QueryString,
		NormalizeIDs:        c.Naming.NormalizeIDs,
		IncludeAuthHint:     c.Naming.AuthHint,
		MaxLabelLength:      c.Naming.MaxLength,
	}
}
