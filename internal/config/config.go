package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App               App               `mapstructure:",squash"`
	Server            Server            `mapstructure:",squash"`
	Database          Database          `mapstructure:",squash"`
	Commerce          Commerce          `mapstructure:",squash"`
	ReportCache       ReportCache       `mapstructure:",squash"`
	MonthlyReportSync MonthlyReportSync `mapstructure:",squash"`
	DefaultStoreIDs   []int64           `mapstructure:"-"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Commerce guarda as credenciais e limites da API de comércio upstream
type Commerce struct {
	BaseURL           string `mapstructure:"commerce_base_url"`
	AccessToken       string `mapstructure:"commerce_access_token"`
	SecretAccessToken string `mapstructure:"commerce_secret_access_token"`
	PageSize          int    `mapstructure:"commerce_page_size"`
	TimeoutSeconds    int    `mapstructure:"commerce_timeout_seconds"`
	StoreIDs          string `mapstructure:"commerce_store_ids"`
}

type ReportCache struct {
	TTLSeconds int `mapstructure:"report_cache_ttl_seconds"`
	Capacity   int `mapstructure:"report_cache_capacity"`
}

type MonthlyReportSync struct {
	CronSchedule string `mapstructure:"monthly_report_sync_cron"`
	Enabled      bool   `mapstructure:"monthly_report_sync_enabled"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/sales")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("COMMERCE_BASE_URL", "https://api.example.com.br/v1")
	viper.SetDefault("COMMERCE_ACCESS_TOKEN", "your_access_token")
	viper.SetDefault("COMMERCE_SECRET_ACCESS_TOKEN", "your_secret_access_token")
	viper.SetDefault("COMMERCE_PAGE_SIZE", 100)      // tamanho de página da API de vendas
	viper.SetDefault("COMMERCE_TIMEOUT_SECONDS", 30) // timeout por chamada upstream
	viper.SetDefault("COMMERCE_STORE_IDS", "428885,338180")

	viper.SetDefault("REPORT_CACHE_TTL_SECONDS", 60) // 0 desabilita o cache de relatórios
	viper.SetDefault("REPORT_CACHE_CAPACITY", 32)

	viper.SetDefault("MONTHLY_REPORT_SYNC_CRON", "0 5 1 * *") // primeiro dia do mês às 5h
	viper.SetDefault("MONTHLY_REPORT_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.DefaultStoreIDs, err = parseStoreIDs(config.Commerce.StoreIDs)
	if err != nil {
		return nil, fmt.Errorf("COMMERCE_STORE_IDS inválido: %w", err)
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// parseStoreIDs converte a lista CSV de lojas configurada em IDs numéricos
func parseStoreIDs(raw string) ([]int64, error) {
	ids := make([]int64, 0)

	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, err
		}

		ids = append(ids, id)
	}

	return ids, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
