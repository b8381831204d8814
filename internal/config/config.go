package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type OwnershipPolicy string

const (
	// only the recorded owner may mutate the entity
	OwnerOnly OwnershipPolicy = "owner"
	// any authenticated user may mutate the entity
	AnyAuthenticated OwnershipPolicy = "authenticated"
)

func (p OwnershipPolicy) valid() bool {
	return p == OwnerOnly || p == AnyAuthenticated
}

const (
	DriverPQ  = "postgres"
	DriverPGX = "pgx"

	StorageMinIO = "minio"
	StorageLocal = "local"
)

type DB struct {
	Driver       string
	Host         string
	Port         string
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
	Migrate      bool
}

var dsnEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

// dsnValue quotes v for a key/value connection string.
func dsnValue(v string) string {
	return "'" + dsnEscaper.Replace(v) + "'"
}

// DSN returns a key/value connection string understood by both lib/pq and pgx.
func (d DB) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		dsnValue(d.Host), dsnValue(d.Port), dsnValue(d.User),
		dsnValue(d.Password), dsnValue(d.Name), dsnValue(d.SSLMode),
	)
}

type MinIO struct {
	Endpoint   string
	AccessKey  string
	SecretKey  string
	BucketName string
	UseSSL     bool
	Region     string
	PublicURL  string
	Folder     string
}

type Storage struct {
	Backend       string
	MinIO         MinIO
	UploadDir     string
	StaticDir     string
	PublicBaseURL string
	MaxRetries    int
}

type SMTP struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Enabled reports whether enough settings are present to deliver mail.
func (s SMTP) Enabled() bool {
	return s.Host != "" && s.Username != "" && s.Password != ""
}

type Ownership struct {
	Post     OwnershipPolicy
	Resource OwnershipPolicy
	Club     OwnershipPolicy
}

type Config struct {
	ServerPort           int
	LogLevel             string
	RequestTimeout       time.Duration
	DB                   DB
	Storage              Storage
	SMTP                 SMTP
	Ownership            Ownership
	JWTSecretKey         string
	AccessTokenDuration  time.Duration
	VerificationTokenTTL time.Duration
	FrontendURL          string
	CORSAllowedOrigins   []string
	MaxUploadSize        int64
	AuthRateLimit        float64
	AuthRateBurst        int
}

var defaultCORSOrigins = []string{
	"https://college-blog-seven.vercel.app",
	"http://localhost:5173",
	"http://localhost:8000",
}

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return fallback
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil || duration <= 0 {
		return fallback
	}
	return duration
}

func parseMaxUploadSize(value string) int64 {
	size, err := strconv.ParseInt(value, 10, 64)
	if err != nil || size <= 0 {
		return 10 * 1024 * 1024
	}
	return size
}

func LoadDB() DB {
	return DB{
		Driver:       getEnv("DB_DRIVER", DriverPQ),
		Host:         getEnv("DB_HOST", "localhost"),
		Port:         getEnv("DB_PORT", "5432"),
		User:         getEnv("DB_USER", "postgres"),
		Password:     getEnv("DB_PASSWORD", "password"),
		Name:         getEnv("DB_NAME", "collegeblog"),
		SSLMode:      getEnv("DB_SSLMODE", "disable"),
		MaxOpenConns: getEnvAsInt("DB_MAX_OPEN_CONNS", 25),
		MaxIdleConns: getEnvAsInt("DB_MAX_IDLE_CONNS", 5),
		Migrate:      getEnvBool("RUN_MIGRATIONS", true),
	}
}

func LoadStorage() Storage {
	return Storage{
		Backend: getEnv("STORAGE_BACKEND", StorageLocal),
		MinIO: MinIO{
			Endpoint:   getEnv("MINIO_ENDPOINT", "localhost:9000"),
			AccessKey:  getEnv("MINIO_ACCESS_KEY", "minioadmin"),
			SecretKey:  getEnv("MINIO_SECRET_KEY", "minioadmin"),
			BucketName: getEnv("MINIO_BUCKET_NAME", "images"),
			UseSSL:     getEnvBool("MINIO_USE_SSL", false),
			Region:     getEnv("MINIO_REGION", "us-east-1"),
			PublicURL:  getEnv("MINIO_PUBLIC_URL", ""),
			Folder:     getEnv("MINIO_FOLDER", "college-blog"),
		},
		UploadDir:     getEnv("UPLOAD_DIR", "static/uploads"),
		StaticDir:     getEnv("STATIC_DIR", "static"),
		PublicBaseURL: strings.TrimSuffix(getEnv("PUBLIC_BASE_URL", "http://localhost:8000"), "/"),
		MaxRetries:    getEnvAsInt("UPLOAD_MAX_RETRIES", 3),
	}
}

func LoadSMTP() SMTP {
	username := getEnv("EMAIL_USERNAME", "")
	return SMTP{
		Host:     getEnv("EMAIL_HOST", ""),
		Port:     getEnvAsInt("EMAIL_PORT", 587),
		Username: username,
		Password: getEnv("EMAIL_PASSWORD", ""),
		From:     getEnv("EMAIL_FROM", username),
	}
}

func LoadOwnership() Ownership {
	return Ownership{
		Post:     OwnershipPolicy(strings.ToLower(getEnv("POST_OWNERSHIP", string(OwnerOnly)))),
		Resource: OwnershipPolicy(strings.ToLower(getEnv("RESOURCE_OWNERSHIP", string(AnyAuthenticated)))),
		Club:     OwnershipPolicy(strings.ToLower(getEnv("CLUB_OWNERSHIP", string(AnyAuthenticated)))),
	}
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	return &Config{
		ServerPort:           getEnvAsInt("SERVER_PORT", 8000),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		RequestTimeout:       parseDuration(getEnv("REQUEST_TIMEOUT", "30s"), 30*time.Second),
		DB:                   LoadDB(),
		Storage:              LoadStorage(),
		SMTP:                 LoadSMTP(),
		Ownership:            LoadOwnership(),
		JWTSecretKey:         getEnv("JWT_SECRET_KEY", ""),
		AccessTokenDuration:  parseDuration(getEnv("ACCESS_TOKEN_DURATION", "30m"), 30*time.Minute),
		VerificationTokenTTL: parseDuration(getEnv("VERIFICATION_TOKEN_TTL", "1h"), time.Hour),
		FrontendURL:          strings.TrimSuffix(getEnv("FRONTEND_URL", "http://localhost:5173"), "/"),
		CORSAllowedOrigins:   getEnvList("CORS_ALLOWED_ORIGINS", defaultCORSOrigins),
		MaxUploadSize:        parseMaxUploadSize(getEnv("MAX_UPLOAD_SIZE", "10485760")),
		AuthRateLimit:        getEnvAsFloat("AUTH_RATE_LIMIT", 5),
		AuthRateBurst:        getEnvAsInt("AUTH_RATE_BURST", 10),
	}
}

// Validate reports every setting the process cannot start without.
func (c *Config) Validate() error {
	var errs []error

	if c.JWTSecretKey == "" {
		errs = append(errs, errors.New("JWT_SECRET_KEY is not set"))
	}
	if c.DB.Driver != DriverPQ && c.DB.Driver != DriverPGX {
		errs = append(errs, fmt.Errorf("DB_DRIVER must be %q or %q, got %q", DriverPQ, DriverPGX, c.DB.Driver))
	}
	if c.Storage.Backend != StorageMinIO && c.Storage.Backend != StorageLocal {
		errs = append(errs, fmt.Errorf("STORAGE_BACKEND must be %q or %q, got %q", StorageMinIO, StorageLocal, c.Storage.Backend))
	}
	for name, policy := range map[string]OwnershipPolicy{
		"POST_OWNERSHIP":     c.Ownership.Post,
		"RESOURCE_OWNERSHIP": c.Ownership.Resource,
		"CLUB_OWNERSHIP":     c.Ownership.Club,
	} {
		if !policy.valid() {
			errs = append(errs, fmt.Errorf("%s must be %q or %q, got %q", name, OwnerOnly, AnyAuthenticated, policy))
		}
	}
	if c.AuthRateLimit <= 0 || c.AuthRateBurst < 1 {
		errs = append(errs, errors.New("AUTH_RATE_LIMIT must be positive and AUTH_RATE_BURST at least 1"))
	}
	if c.Storage.MaxRetries < 1 {
		errs = append(errs, errors.New("UPLOAD_MAX_RETRIES must be at least 1"))
	}

	return errors.Join(errs...)
}
