package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

const DEFAULT_GEMINI_MODEL = "gemini-2.0-flash"
const DEFAULT_SERVER_ADDR = ":8000"

type AppConfig struct {
	Logging         LoggingConfig         `yaml:"logging"`
	Widget          WidgetConfig          `yaml:"widget"`
	Server          ServerConfig          `yaml:"server"`
	GenerationQuota GenerationQuotaConfig `yaml:"generation_quota"`
	Mongo           MongoConfig           `yaml:"mongo"`
	Redis           RedisConfig           `yaml:"redis"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// WidgetConfig 는 주제 위젯이 호출할 지식 생성 서버 정보를 담는다.
type WidgetConfig struct {
	// ServerURL 이 비어 있으면 위젯은 네트워크 호출 없이 설정 누락 오류를 보여준다.
	ServerURL string `yaml:"server_url"`

	// RequestTimeout 이 0 이면 httpclient 기본값을 사용한다.
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

type ServerConfig struct {
	Addr           string   `yaml:"addr"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	GeminiModel    string   `yaml:"gemini_model"`
	GeminiApiKey   string   `yaml:"-"`
}

// GenerationQuotaConfig 는 지식 생성용 LLM 호출에 대한 속도/일일 한도를 정의한다.
type GenerationQuotaConfig struct {
	// RequestsPerMinute 는 분당 최대 요청 수이다. 0 이하면 제한 없음으로 간주한다.
	RequestsPerMinute int `yaml:"requests_per_minute"`

	// RequestsPerDay 는 일일 최대 요청 수이다. 0 이하면 제한 없음으로 간주한다.
	RequestsPerDay int `yaml:"requests_per_day"`
}

type MongoConfig struct {
	URI      string `yaml:"uri"`
	Database string `yaml:"database"`
}

// RedisConfig 가 설정되면 일일 생성 한도를 서버 인스턴스끼리 공유한다.
type RedisConfig struct {
	URL       string `yaml:"url"`
	KeyPrefix string `yaml:"key_prefix"`
}

var config *AppConfig

// InitApp 은 현재 디렉터리에서 위로 올라가며 찾은 config.yaml 과 .env 를 읽는다.
// 설정 파일이 없으면 기본값과 환경변수만으로 동작한다.
func InitApp() {
	InitAppFrom(GetBasePath())
}

// InitAppFrom 은 지정한 디렉터리의 .env 와 config.yaml 을 읽어 전역 설정을 초기화한다.
func InitAppFrom(dir string) {
	c, err := Load(dir)
	if err != nil {
		panic(err)
	}
	config = c
}

// Load 는 전역 상태를 건드리지 않고 설정을 읽어 반환한다.
func Load(dir string) (*AppConfig, error) {
	// load environment variables
	_ = godotenv.Load(filepath.Join(dir, ENV_FILE))

	var c AppConfig
	data, err := os.ReadFile(filepath.Join(dir, CONFIG_FILE))
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &c); err != nil {
			return nil, err
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, err
	}

	applyEnv(&c)
	applyDefaults(&c)
	return &c, nil
}

func applyEnv(c *AppConfig) {
	if v := strings.TrimSpace(os.Getenv("SERVER_URL")); v != "" {
		c.Widget.ServerURL = v
	}
	if v := strings.TrimSpace(os.Getenv("LOG_LEVEL")); v != "" {
		c.Logging.Level = v
	}
	if v := strings.TrimSpace(os.Getenv("MONGO_URI")); v != "" {
		c.Mongo.URI = v
	}
	if v := strings.TrimSpace(os.Getenv("REDIS_URL")); v != "" {
		c.Redis.URL = v
	}
	c.Server.GeminiApiKey = strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
	if c.Server.GeminiApiKey == "" {
		c.Server.GeminiApiKey = strings.TrimSpace(os.Getenv("GOOGLE_API_KEY"))
	}
}

func applyDefaults(c *AppConfig) {
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Server.Addr == "" {
		c.Server.Addr = DEFAULT_SERVER_ADDR
	}
	if c.Server.GeminiModel == "" {
		c.Server.GeminiModel = DEFAULT_GEMINI_MODEL
	}
	if len(c.Server.AllowedOrigins) == 0 {
		c.Server.AllowedOrigins = []string{"*"}
	}
	if c.Mongo.Database == "" {
		c.Mongo.Database = "today_knowledge"
	}
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return cwd
}
