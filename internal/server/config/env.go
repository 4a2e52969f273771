package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config values from the process environment. A .env
// file in the working directory is loaded first when present; a missing
// file is not an error.
//
// Recognized variables: ADDRESS, DATABASE_DSN, S3_ROOT_USER,
// S3_ROOT_PASSWORD, S3_BUCKET, S3_REGION, S3_BASE_ENDPOINT,
// S3_PUBLIC_BASE_URL, MAX_UPLOAD_BYTES, MONTHLY_QUOTA_BYTES,
// HISTORY_MONTHS.
func parseEnv(config *Config) {
	_ = godotenv.Load()

	setString := func(name string, dst *string) {
		if v, ok := os.LookupEnv(name); ok {
			*dst = v
		}
	}
	setInt64 := func(name string, dst *int64) {
		if v, ok := os.LookupEnv(name); ok {
			if n, err := strconv.ParseInt(v, 10, 64); err == nil {
				*dst = n
			}
		}
	}

	setString("ADDRESS", &config.EndpointAddrHTTP)
	setString("DATABASE_DSN", &config.DatabaseDSN)
	setString("S3_ROOT_USER", &config.S3RootUser)
	setString("S3_ROOT_PASSWORD", &config.S3RootPassword)
	setString("S3_BUCKET", &config.S3Bucket)
	setString("S3_REGION", &config.S3Region)
	setString("S3_BASE_ENDPOINT", &config.S3BaseEndpoint)
	setString("S3_PUBLIC_BASE_URL", &config.S3PublicBaseURL)

	setInt64("MAX_UPLOAD_BYTES", &config.MaxUploadBytes)
	setInt64("MONTHLY_QUOTA_BYTES", &config.MonthlyQuotaBytes)

	if v, ok := os.LookupEnv("HISTORY_MONTHS"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			config.HistoryMonths = n
		}
	}
}
