package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config reúne tudo que o serviço lê do ambiente.
type Config struct {
	Porta string `envconfig:"PORT" default:"8080"`

	DBHost    string `envconfig:"DB_HOST" default:"localhost"`
	DBPorta   string `envconfig:"DB_PORT" default:"5432"`
	DBUsuario string `envconfig:"DB_USER" default:"postgres"`
	DBSenha   string `envconfig:"DB_PASSWORD" default:""`
	DBNome    string `envconfig:"DB_NAME" default:"cotacoes"`
	DBSSLMode string `envconfig:"DB_SSLMODE" default:"disable"`

	JWTSecret string `envconfig:"JWT_SECRET" required:"true"`

	DiretorioUploads string `envconfig:"UPLOADS_DIR" default:"./uploads"`
	WebhookAlertaURL string `envconfig:"WEBHOOK_ALERTA_URL" default:""`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`
}

// Carregar lê o .env (se existir) e popula a Config a partir das variáveis de
// ambiente.
func Carregar() (*Config, error) {
	// Em produção as variáveis vêm do ambiente; o .env é só conveniência local.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("erro ao carregar configuração: %w", err)
	}
	return &cfg, nil
}

// DSN monta a string de conexão do Postgres.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPorta, c.DBUsuario, c.DBSenha, c.DBNome, c.DBSSLMode,
	)
}
