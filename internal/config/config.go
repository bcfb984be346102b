package config

import "os"

type Config struct {
	HTTPAddr        string
	MongoURI        string
	MongoDB         string
	MongoCollection string
	UploadDir       string
	MaxUploadMB     int
	GelfAddr        string
	AnalyzerEnabled bool
}

func Load() *Config {
	return &Config{
		HTTPAddr:        getEnv("APP_ADDR", ":8000"),
		MongoURI:        getEnv("MONGO_URI", "mongodb://127.0.0.1:27017"),
		MongoDB:         getEnv("MONGO_DB", "test"),
		MongoCollection: getEnv("MONGO_COLLECTION", "TruthTell"),
		UploadDir:       getEnv("UPLOAD_DIR", "uploads/videos"),
		MaxUploadMB:     getEnvInt("MAX_UPLOAD_MB", 100),
		GelfAddr:        getEnv("GELF_ADDR", ""),
		AnalyzerEnabled: getEnvBool("ANALYZER_ENABLED", false),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n := 0
	for _, c := range v {
		if c < '0' || c > '9' {
			return fallback
		}
		n = n*10 + int(c-'0')
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	switch os.Getenv(key) {
	case "1", "true", "TRUE", "True", "yes":
		return true
	case "0", "false", "FALSE", "False", "no":
		return false
	}
	return fallback
}
