package config

import (
	"os"
	"strings"

	"github.com/hasnain-sayyid/CargoVan-Connect/internal/utils"
)

type Env struct {
	AppAddr            string
	GinMode            string
	DBDSN              string
	JWTSecret          string
	CORSAllowedOrigins []string
}

func LoadEnv() Env {
	origins := []string{}
	for _, o := range strings.Split(os.Getenv("CORS_ALLOWED_ORIGINS"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			origins = append(origins, o)
		}
	}

	return Env{
		AppAddr: utils.FirstNonEmpty(os.Getenv("APP_ADDR"), ":8000"),
		GinMode: strings.TrimSpace(os.Getenv("GIN_MODE")),
		DBDSN: utils.FirstNonEmpty(os.Getenv("DB_DSN"),
			"root:@tcp(127.0.0.1:3306)/cargovan_connect?parseTime=true&loc=Local&charset=utf8mb4&timeout=5s&readTimeout=30s&writeTimeout=30s"),
		JWTSecret:          utils.FirstNonEmpty(os.Getenv("JWT_SECRET"), "super-secret-key-change-me"),
		CORSAllowedOrigins: origins,
	}
}
