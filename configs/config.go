// configs/config.go
package configs

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv" // Memuat environment variables dari file .env.
)

// File ini bertanggung jawab memuat konfigurasi aplikasi dari environment variables
// menjadi struct bertipe. Config dikembalikan ke pemanggil (main) lalu disuntikkan
// ke komponen yang membutuhkan, tidak disimpan di variabel global paket.

// ====================================================================================
// Struct Konfigurasi
// ====================================================================================

type Config struct {
	App     AppConfig
	DB      DBConfig
	JWT     JWTConfig
	Log     LogConfig
	Seed    SeedConfig
	Gemini  GeminiConfig
	S3      S3Config
	SMTP    SMTPConfig
	LockJob LockJobConfig
}

type AppConfig struct {
	Port         string
	AllowOrigins string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type JWTConfig struct {
	Secret string
	TTL    time.Duration
	Issuer string
}

type LogConfig struct {
	Level          string
	Format         string // "json" atau human-readable
	FileEnabled    bool
	FilePath       string
	FileMaxSizeMB  int
	FileMaxBackups int
	FileMaxAgeDays int
	FileCompress   bool
}

// SeedConfig mengatur prosedur seeding (CLI maupun HTTP trigger).
type SeedConfig struct {
	CatalogPath     string // Kosong = katalog bawaan (embedded).
	DefaultPassword string // Dipakai untuk user katalog tanpa password eksplisit.
	TriggerToken    string // Token header X-Seed-Token untuk bootstrap tanpa JWT admin.
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type S3Config struct {
	Bucket    string
	Region    string
	Endpoint  string
	PathStyle bool
	PublicURL string // Prefix URL publik objek (CDN / endpoint MinIO).
}

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

type LockJobConfig struct {
	Interval    time.Duration
	// UnlockGrace: lama record yang kuncinya dibuka tetap bisa diedit sebelum dikunci lagi.
	UnlockGrace time.Duration
}

// Enabled melaporkan apakah fitur opsional dikonfigurasi.
func (c GeminiConfig) Enabled() bool { return c.APIKey != "" }
func (c S3Config) Enabled() bool     { return c.Bucket != "" }
func (c SMTPConfig) Enabled() bool   { return c.Host != "" }

// DSN membangun connection string pgx. Password tidak ikut di versi loggable.
func (c DBConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func (c DBConfig) LoggableDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Name, c.SSLMode)
}

// ====================================================================================
// Fungsi Pemuatan Konfigurasi
// ====================================================================================

// requiredVars adalah variabel lingkungan yang wajib ada agar aplikasi bisa berjalan.
var requiredVars = []string{
	"DB_HOST",
	"DB_PORT",
	"DB_USER",
	"DB_PASSWORD",
	"DB_NAME",
	"JWT_SECRET",
}

// Load membaca file .env (jika ada), memvalidasi variabel wajib, lalu membangun Config.
// Dipanggil sebelum logger siap, jadi pesan status ditulis langsung ke Stderr.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// Bukan kondisi fatal: variabel bisa saja diset langsung di environment (Docker, systemd).
		fmt.Fprintln(os.Stderr, "[WARN] No .env file found or error loading it. Reading environment variables directly.")
	} else {
		fmt.Fprintln(os.Stderr, "[INFO] Loaded environment variables from .env file.")
	}

	var missing []string
	for _, name := range requiredVars {
		if _, ok := os.LookupEnv(name); !ok {
			missing = append(missing, name)
			continue
		}
		// DB_PASSWORD boleh kosong, yang penting variabelnya ada.
		if name != "DB_PASSWORD" && os.Getenv(name) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	cfg := &Config{
		App: AppConfig{
			Port:         getEnv("APP_PORT", "3000"),
			AllowOrigins: getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173, http://127.0.0.1:5173"),
		},
		DB: DBConfig{
			Host:     os.Getenv("DB_HOST"),
			Port:     os.Getenv("DB_PORT"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		JWT: JWTConfig{
			Secret: os.Getenv("JWT_SECRET"),
			TTL:    time.Duration(getEnvInt("JWT_TTL_HOURS", 72)) * time.Hour,
			Issuer: getEnv("JWT_ISSUER", "wisata-dashboard"),
		},
		Log: LogConfig{
			Level:          getEnv("LOG_LEVEL", "info"),
			Format:         os.Getenv("LOG_FORMAT"),
			FileEnabled:    getEnvBool("LOG_FILE_ENABLED", false),
			FilePath:       getEnv("LOG_FILE_PATH", "./logs/app.log"),
			FileMaxSizeMB:  getEnvInt("LOG_FILE_MAX_SIZE_MB", 100),
			FileMaxBackups: getEnvInt("LOG_FILE_MAX_BACKUPS", 5),
			FileMaxAgeDays: getEnvInt("LOG_FILE_MAX_AGE_DAYS", 30),
			FileCompress:   getEnvBool("LOG_FILE_COMPRESS", false),
		},
		Seed: SeedConfig{
			CatalogPath:     os.Getenv("SEED_CATALOG_PATH"),
			DefaultPassword: getEnv("SEED_DEFAULT_PASSWORD", "wisata123"),
			TriggerToken:    os.Getenv("SEED_TRIGGER_TOKEN"),
		},
		Gemini: GeminiConfig{
			APIKey: os.Getenv("GEMINI_API_KEY"),
			Model:  getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		},
		S3: S3Config{
			Bucket:    os.Getenv("S3_BUCKET"),
			Region:    getEnv("S3_REGION", "us-east-1"),
			Endpoint:  os.Getenv("S3_ENDPOINT"),
			PathStyle: getEnvBool("S3_PATH_STYLE", false),
			PublicURL: os.Getenv("S3_PUBLIC_URL"),
		},
		SMTP: SMTPConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     getEnvInt("SMTP_PORT", 587),
			User:     os.Getenv("SMTP_USER"),
			Password: os.Getenv("SMTP_PASSWORD"),
			From:     getEnv("SMTP_FROM", "noreply@wisata.local"),
		},
		LockJob: LockJobConfig{
			Interval:    getEnvDuration("LOCK_JOB_INTERVAL", 24*time.Hour),
			UnlockGrace: getEnvDuration("LOCK_UNLOCK_GRACE", 7*24*time.Hour),
		},
	}
	return cfg, nil
}

// ====================================================================================
// Helper pembacaan env
// ====================================================================================

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
		fmt.Fprintf(os.Stderr, "[WARN] Invalid integer for %s ('%s'), using default %d\n", key, v, def)
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
		fmt.Fprintf(os.Stderr, "[WARN] Invalid duration for %s ('%s'), using default %s\n", key, v, def)
	}
	return def
}
