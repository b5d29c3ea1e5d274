package config

import (
	"github.com/kelseyhightower/envconfig"
)

type Env struct {
	AppAddr string `envconfig:"APP_ADDR" default:":8080"`
	GinMode string `envconfig:"GIN_MODE" default:""`

	// StoreDriver selects the backing stores: "memory" or "mysql".
	StoreDriver string `envconfig:"STORE_DRIVER" default:"memory"`
	MySQLDSN    string `envconfig:"MYSQL_DSN" default:""`

	// CaseFoldEmails makes duplicate and cancellation lookups compare
	// emails case-insensitively. Sanitized keys still keep the original
	// case, so flipping this on an existing dataset can split profiles.
	CaseFoldEmails bool `envconfig:"BOOKING_CASE_FOLD_EMAILS" default:"false"`

	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
}

func LoadEnv() (Env, error) {
	var e Env
	err := envconfig.Process("", &e)
	return e, err
}
