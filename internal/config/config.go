package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type HTTPServer struct {
	Host string
	Port string
	// gin mode: debug, release or test
	Mode string
}

type RedisCache struct {
	Host     string
	Port     string
	Password string
	Key      string
	TTL      time.Duration
}

// Enabled reports whether lookup results should be cached in redis.
func (c RedisCache) Enabled() bool {
	return c.Host != ""
}

type Postgres struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// Enabled reports whether the option catalog should be read from postgres.
func (c Postgres) Enabled() bool {
	return c.Host != ""
}

type Lookup struct {
	Endpoint  string
	UserAgent string
	Timeout   time.Duration
}

type Session struct {
	// Idle websocket sessions are closed after this long without a message.
	IdleTimeout time.Duration
}

type Config struct {
	HTTP     HTTPServer
	Redis    RedisCache
	Postgres Postgres
	Lookup   Lookup
	Session  Session
}

const logtag = "[config]"

func Load() *Config {
	configPath := flag.String("config", "", "path env file")
	flag.Parse()

	if *configPath != "" {
		if err := godotenv.Load(*configPath); err != nil {
			log.Fatalf("%s err loading env from file : %v", logtag, err)
		}
		log.Printf("%s using env from : %s", logtag, *configPath)
	} else {
		log.Printf("%s using env from .env", logtag)
		_ = godotenv.Load()
	}

	cfg := FromEnv()

	log.Printf("%s backend config : %+v\n", logtag, cfg)
	return cfg
}

// FromEnv builds the config from the current environment only.
func FromEnv() *Config {
	return &Config{
		HTTP:     *newHTTP(),
		Redis:    *newRedis(),
		Postgres: *newPostgres(),
		Lookup:   *newLookup(),
		Session:  *newSession(),
	}
}

func newHTTP() *HTTPServer {
	return &HTTPServer{
		Port: getenv("HTTP_PORT", "8050"),
		Host: getenv("HTTP_HOST", "localhost"),
		Mode: getenv("HTTP_MODE", "debug"),
	}
}

func newRedis() *RedisCache {
	return &RedisCache{
		Host:     getenv("REDIS_HOST", ""),
		Port:     getenv("REDIS_PORT", "6379"),
		Password: getenv("REDIS_PASSWORD", ""),
		Key:      getenv("REDIS_LOOKUP_KEY", "movie_lookup"),
		TTL:      getduration("REDIS_LOOKUP_TTL", time.Hour),
	}
}

func newPostgres() *Postgres {
	return &Postgres{
		Host:     getenv("DB_HOST", ""),
		Port:     getenv("DB_PORT", "5432"),
		User:     getenv("DB_USER", "admin"),
		Password: getenv("DB_PASSWORD", "shared"),
		DBName:   getenv("DB_NAME", "prefform"),
		SSLMode:  getenv("DB_SSLMODE", "disable"),
	}
}

func newLookup() *Lookup {
	return &Lookup{
		Endpoint:  getenv("LOOKUP_ENDPOINT", "https://query.wikidata.org/sparql"),
		UserAgent: getenv("LOOKUP_USER_AGENT", "prefform/1.0 (movie preference form)"),
		Timeout:   getduration("LOOKUP_TIMEOUT", 10*time.Second),
	}
}

func newSession() *Session {
	return &Session{
		IdleTimeout: getduration("SESSION_IDLE_TIMEOUT", 30*time.Minute),
	}
}

func getenv(key, defaultValue string) string {
	val := os.Getenv(key)
	if val == "" {
		fmt.Printf("%s %s undefined. Using default value %s\n", logtag, key, defaultValue)
		return defaultValue
	}
	fmt.Printf("%s %s = %s\n", logtag, key, val)
	return val
}

// Accepts Go durations ("90s") or plain seconds ("90").
func getduration(key string, defaultValue time.Duration) time.Duration {
	raw := getenv(key, defaultValue.String())
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(raw); err == nil {
		return time.Duration(secs) * time.Second
	}
	fmt.Printf("%s %s has invalid duration %q. Using default value %s\n", logtag, key, raw, defaultValue)
	return defaultValue
}
