package config

import (
	"log"
	"os"
)

type Config struct {
	Port        string
	MySQLDSN    string
	JWTSecret   string
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string
	S3Region    string
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		if def == "" {
			log.Fatalf("missing env %s", key)
		}
		return def
	}
	return v
}

func Load() Config {
	return Config{
		Port:        getenv("PORT", "6900"),
		MySQLDSN:    getenv("MYSQL_DSN", ""),
		JWTSecret:   getenv("JWT_SECRET", ""),
		S3Endpoint:  getenv("S3_ENDPOINT", ""),
		S3AccessKey: getenv("S3_ACCESS_KEY_ID", ""),
		S3SecretKey: getenv("S3_SECRET_ACCESS_KEY", ""),
		S3Bucket:    getenv("S3_BUCKET", "bitcast-media"),
		S3Region:    getenv("S3_REGION", "eu-north-1"),
	}
}
