package config

import (
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// DBConfig 数据库配置
type DBConfig struct {
	URI  string `yaml:"uri"`
	Name string `yaml:"name"`
}

// JWTConfig JWT配置
type JWTConfig struct {
	Secret string `yaml:"secret"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port string `yaml:"port"`
}

// MQConfig 消息队列配置
type MQConfig struct {
	URL string `yaml:"url"`
}

// CORSConfig 跨域配置
type CORSConfig struct {
	Origins string `yaml:"origins"`
}

type Config struct {
	Server ServerConfig `yaml:"server"`
	DB     DBConfig     `yaml:"db"`
	JWT    JWTConfig    `yaml:"jwt"`
	MQ     MQConfig     `yaml:"mq"`
	CORS   CORSConfig   `yaml:"cors"`
}

func Load() *Config {
	f, err := os.Open("config.yaml")
	if err != nil {
		log.Fatalf("failed to open config.yaml: %v", err)
	}
	defer f.Close()

	var cfg Config
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&cfg); err != nil {
		log.Fatalf("failed to decode config.yaml: %v", err)
	}

	// 环境变量覆盖
	OverrideDBFromEnv(&cfg.DB)
	OverrideJWTFromEnv(&cfg.JWT)
	OverrideServerFromEnv(&cfg.Server)
	OverrideMQFromEnv(&cfg.MQ)
	OverrideCORSFromEnv(&cfg.CORS)
	return &cfg
}

// OverrideDBFromEnv 从环境变量覆盖数据库配置
func OverrideDBFromEnv(cfg *DBConfig) {
	if uri := os.Getenv("DB_URI"); uri != "" {
		cfg.URI = uri
	}
	if name := os.Getenv("DB_NAME"); name != "" {
		cfg.Name = name
	}
}

// OverrideJWTFromEnv 从环境变量覆盖JWT配置
func OverrideJWTFromEnv(cfg *JWTConfig) {
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		cfg.Secret = secret
	}
}

// OverrideServerFromEnv 从环境变量覆盖服务器配置
func OverrideServerFromEnv(cfg *ServerConfig) {
	if port := os.Getenv("SERVER_PORT"); port != "" {
		cfg.Port = port
	}
}

// OverrideMQFromEnv 从环境变量覆盖MQ配置
func OverrideMQFromEnv(cfg *MQConfig) {
	if url := os.Getenv("MQ_URL"); url != "" {
		cfg.URL = url
	}
}

// OverrideCORSFromEnv 从环境变量覆盖跨域配置
func OverrideCORSFromEnv(cfg *CORSConfig) {
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		cfg.Origins = origins
	}
}
