package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

// AppConfig 全局配置实例
var AppConfig *Config

// Config 应用配置结构
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Audit    AuditConfig    `yaml:"audit"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port         string        `yaml:"port"`
	Mode         string        `yaml:"mode"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	RateLimit    int           `yaml:"rate_limit"` // 每分钟请求数
}

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
	LogLevel        string        `yaml:"log_level"`
}

// RedisConfig Redis配置
type RedisConfig struct {
	Addr         string        `yaml:"addr"`
	Password     string        `yaml:"password"`
	DB           int           `yaml:"db"`
	PoolSize     int           `yaml:"pool_size"`
	DialTimeout  time.Duration `yaml:"dial_timeout"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// AuditConfig 审核相关配置
type AuditConfig struct {
	LatencyWindowDays int `yaml:"latency_window_days"` // 人工审核耗时统计窗口
	TrendDays         int `yaml:"trend_days"`          // 举报趋势默认天数
}

// InitConfig 初始化配置：默认值 -> 配置文件 -> 环境变量，后者覆盖前者
func InitConfig() error {
	if err := godotenv.Load(); err != nil {
		log.Printf("未找到 .env 文件，使用系统环境变量: %v", err)
	}

	config := &Config{}
	setDefaults(config)

	if err := loadFromFile(config); err != nil {
		log.Printf("配置文件加载失败，使用默认配置: %v", err)
	}

	loadFromEnv(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("配置校验失败: %w", err)
	}

	AppConfig = config
	return nil
}

// GetConfig 获取全局配置
func GetConfig() *Config {
	if AppConfig == nil {
		config := &Config{}
		setDefaults(config)
		loadFromEnv(config)
		AppConfig = config
	}
	return AppConfig
}

// setDefaults 设置默认值
func setDefaults(config *Config) {
	config.Server.Port = "8802"
	config.Server.Mode = "debug"
	config.Server.ReadTimeout = 30 * time.Second
	config.Server.WriteTimeout = 30 * time.Second
	config.Server.RateLimit = 1000

	config.Database.MaxIdleConns = 10
	config.Database.MaxOpenConns = 100
	config.Database.ConnMaxLifetime = time.Hour
	config.Database.LogLevel = "warn"

	config.Redis.Addr = "localhost:6379"
	config.Redis.DB = 0
	config.Redis.PoolSize = 10
	config.Redis.DialTimeout = 5 * time.Second
	config.Redis.ReadTimeout = 3 * time.Second
	config.Redis.WriteTimeout = 3 * time.Second

	config.Audit.LatencyWindowDays = 7
	config.Audit.TrendDays = 7
}

// loadFromFile 从配置文件加载
func loadFromFile(config *Config) error {
	configFile := os.Getenv("CONFIG_FILE")
	if configFile == "" {
		configFile = "config/config.yaml"
	}

	data, err := os.ReadFile(configFile)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, config)
}

// loadFromEnv 从环境变量加载
func loadFromEnv(config *Config) {
	if port := os.Getenv("SERVER_PORT"); port != "" {
		config.Server.Port = port
	}
	if mode := os.Getenv("GIN_MODE"); mode != "" {
		config.Server.Mode = mode
	}

	// 兼容旧的环境变量名 Mysql
	if dsn := os.Getenv("Mysql"); dsn != "" {
		config.Database.DSN = dsn
	} else if dsn := os.Getenv("MYSQL_DSN"); dsn != "" {
		config.Database.DSN = dsn
	}

	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		config.Redis.Addr = addr
	}
	if password := os.Getenv("REDIS_PASSWORD"); password != "" {
		config.Redis.Password = password
	}
	if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
		if db, err := strconv.Atoi(dbStr); err == nil {
			config.Redis.DB = db
		}
	}
}

// validateConfig 验证配置
func validateConfig(config *Config) error {
	if config.Database.DSN == "" {
		return fmt.Errorf("数据库DSN未配置，请设置环境变量 MYSQL_DSN 或配置文件中的 database.dsn")
	}
	if _, err := strconv.Atoi(strings.TrimPrefix(config.Server.Port, ":")); err != nil {
		return fmt.Errorf("无效的服务端口: %s", config.Server.Port)
	}
	return nil
}
