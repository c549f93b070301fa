package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Server config
const SERVER_ADDRESS = ":8080"
const SERVER_SHUTDOWN_TIMEOUT = 5 * time.Second

// Planner config
const DEFAULT_DAILY_HOURS = 6
const MIN_DAILY_HOURS = 1
const MAX_DAILY_HOURS = 12

// Default planner inputs
const DEFAULT_SUBJECTS = "Math,1,8\nPhysics,2,6\nAI,1,5\nC++,2,4\nEnglish,3,3"
const DEFAULT_WEAK_AREAS = "Math: Calculus, AI: Machine Learning"
const DEFAULT_PREREQUISITES = "AI: Python, Math: Algebra, C++: Basic Programming"

// Plan refresher config
const PLAN_REFRESHER_SCHEDULE_SECONDS = 30

// Config file paths
const DEFAULT_CONFIG_FILE = "planner.yaml"
const DEFAULT_ENV_FILE = ".env"

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const PLAN_REQUEST_RESOURCE = "plan_request.yaml"

// Config is the runtime configuration. Zero values fall back to the defaults above.
type Config struct {
	ServerAddress  string `yaml:"server_address"`
	DailyHours     int    `yaml:"daily_hours"`
	InputPath      string `yaml:"input_path"`
	RefreshSeconds int    `yaml:"refresh_seconds"`
	ChartPath      string `yaml:"chart_path"`
}

// RefreshInterval is the plan refresher tick.
func (c Config) RefreshInterval() time.Duration {
	return time.Duration(c.RefreshSeconds) * time.Second
}

// LoadConfig reads the YAML config file ($CONFIG_PATH or planner.yaml) after
// loading an optional .env file, then applies PLANNER_* environment overrides
// and defaults. A missing config file is not an error.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(DEFAULT_ENV_FILE); err == nil {
		log.Printf("Loaded environment from %s", DEFAULT_ENV_FILE)
	}

	configPath := DEFAULT_CONFIG_FILE
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		configPath = envPath
	}
	return LoadConfigFromFile(configPath)
}

// LoadConfigFromFile is LoadConfig without the .env step.
func LoadConfigFromFile(configPath string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(configPath)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("error parsing %s: %w", configPath, err)
		}
		log.Printf("Loaded config from %s", configPath)
	case os.IsNotExist(err):
		log.Printf("No config file at %s, using defaults", configPath)
	default:
		return Config{}, fmt.Errorf("failed to read %s: %w", configPath, err)
	}

	envOverride(&cfg.ServerAddress, "PLANNER_SERVER_ADDRESS")
	envOverride(&cfg.InputPath, "PLANNER_INPUT_PATH")
	envOverride(&cfg.ChartPath, "PLANNER_CHART_PATH")
	if err := envOverrideInt(&cfg.DailyHours, "PLANNER_DAILY_HOURS"); err != nil {
		return Config{}, err
	}
	if err := envOverrideInt(&cfg.RefreshSeconds, "PLANNER_REFRESH_SECONDS"); err != nil {
		return Config{}, err
	}

	applyDefaults(&cfg)
	if err := ValidateDailyHours(cfg.DailyHours); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.ServerAddress == "" {
		cfg.ServerAddress = SERVER_ADDRESS
	}
	if cfg.DailyHours == 0 {
		cfg.DailyHours = DEFAULT_DAILY_HOURS
	}
	if cfg.RefreshSeconds <= 0 {
		cfg.RefreshSeconds = PLAN_REFRESHER_SCHEDULE_SECONDS
	}
}

func envOverride(target *string, key string) {
	if v := os.Getenv(key); v != "" {
		*target = v
	}
}

func envOverrideInt(target *int, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return &ConfigurationError{Field: key, Value: v, Reason: "not an integer"}
	}
	*target = n
	return nil
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resourceFile string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resourceFile)
}
