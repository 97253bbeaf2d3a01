package config

import (
	"fmt"
	"os"

	"linkedList/lib/logger"

	"gopkg.in/yaml.v3"
)

var (
	TaskAll = "all"
	Tasks   = []string{"task1", "task2", "task3"}
)

// Properties 定义了全局的配置
type Properties struct {
	Task string `yaml:"task"` // 要运行的演示场景，all表示全部

	LogLevel      string `yaml:"log-level"`       // 诊断日志级别
	LogFile       string `yaml:"log-file"`        // 诊断日志文件，为空则只写stderr
	LogMaxSize    int    `yaml:"log-max-size"`    // 单个日志文件的大小上限，单位MB
	LogMaxBackups int    `yaml:"log-max-backups"` // 保留的旧日志文件个数
	LogMaxAge     int    `yaml:"log-max-age"`     // 旧日志保留天数
	LogCompress   bool   `yaml:"log-compress"`    // 是否压缩旧日志

	// 配置文件的路径。
	CfPath string `yaml:"-"`
}

var Global *Properties

func init() {
	Global = Default()
}

// Default 返回默认配置
func Default() *Properties {
	return &Properties{
		Task:          TaskAll,
		LogLevel:      "info",
		LogMaxSize:    10,
		LogMaxBackups: 3,
		LogMaxAge:     7,
	}
}

// Load 读取yaml配置文件，文件中没有出现的字段保留默认值
func Load(path string) (*Properties, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config.load %s: %w", path, err)
	}
	props := Default()
	if err := yaml.Unmarshal(b, props); err != nil {
		return nil, fmt.Errorf("config.load %s: %w", path, err)
	}
	props.CfPath = path
	if err := props.Validate(); err != nil {
		return nil, err
	}
	return props, nil
}

// SetupConfig 加载配置文件并替换全局配置，path为空时使用默认配置
func SetupConfig(path string) error {
	if path == "" {
		Global = Default()
		return nil
	}
	props, err := Load(path)
	if err != nil {
		return err
	}
	Global = props
	return nil
}

func (p *Properties) Validate() error {
	if p.Task == TaskAll {
		return nil
	}
	for _, t := range Tasks {
		if p.Task == t {
			return nil
		}
	}
	return fmt.Errorf("config: unknown task %q", p.Task)
}

// Logger 转换成logger的配置
func (p *Properties) Logger() logger.Config {
	return logger.Config{
		Level:      p.LogLevel,
		File:       p.LogFile,
		MaxSize:    p.LogMaxSize,
		MaxBackups: p.LogMaxBackups,
		MaxAge:     p.LogMaxAge,
		Compress:   p.LogCompress,
	}
}
