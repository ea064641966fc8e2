package config

import "time"

type Config struct {
	Environment    Environment
	Log            Log
	HTTP           HTTPServer
	BaseURL        string `env:"BASE_URL" envDefault:"http://localhost:3000"`
	DatabaseDriver string `env:"DATABASE_DRIVER" envDefault:"sqlite"`
	DatabaseURL    string `env:"DATABASE_URL" envDefault:"donations.db"`

	Stripe       Stripe `envPrefix:"STRIPE_"`
	Notification Notification
}

type Stripe struct {
	SecretKey     string `env:"SECRET_KEY"`
	WebhookSecret string `env:"WEBHOOK_SECRET"`
	// zero disables the timestamp window check
	WebhookTolerance time.Duration `env:"WEBHOOK_TOLERANCE" envDefault:"5m"`
	Currency         string        `env:"CURRENCY" envDefault:"usd"`
	SuccessPath      string        `env:"SUCCESS_PATH" envDefault:"/donate/success"`
	CancelPath       string        `env:"CANCEL_PATH" envDefault:"/donate"`
}

type Notification struct {
	AdminEmails     []string `env:"ADMIN_EMAILS" envSeparator:","`
	SendgridAPIKey  string   `env:"SENDGRID_API_KEY"`
	FromEmail       string   `env:"MAIL_FROM_EMAIL" envDefault:"noreply@nourishlaredo.com"`
	FromName        string   `env:"MAIL_FROM_NAME" envDefault:"Nourish Laredo"`
	SlackWebhookURL string   `env:"SLACK_WEBHOOK_URL"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	// json or console; empty picks json in production and console elsewhere
	Format string `env:"LOG_FORMAT"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}

func (e Environment) IsProduction() bool {
	return e.Name == "production"
}
