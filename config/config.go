package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Contact transports.
const (
	TransportLog    = "log"
	TransportResend = "resend"
	TransportSES    = "ses"
)

// Config is the resolved runtime configuration.
type Config struct {
	AppEnv   string
	LogLevel string
	HTTPAddr string

	Site      SiteConfig
	CMS       CMSConfig
	RedisURL  string
	PageView  PageViewConfig
	Contact   ContactConfig
	RateLimit RateLimitConfig

	OTLPEndpoint string
}

type SiteConfig struct {
	ExtendedPages bool
	BaseURL       string
	// ProgressiveSections renders dynamic sections as loading placeholders
	// that the browser fills from their fragment routes.
	ProgressiveSections bool
}

type CMSConfig struct {
	BaseURL  string
	APIKey   string
	SiteID   string
	Timeout  time.Duration
	PageSize int
	CacheTTL time.Duration
}

type PageViewConfig struct {
	LoadTimeout time.Duration
}

type ContactConfig struct {
	Transport    string
	To           string
	From         string
	ResendAPIKey string
	AWSRegion    string
}

type RateLimitConfig struct {
	Max    int
	Window time.Duration
	Block  time.Duration
}

// IsProduction reports whether APP_ENV selects production behaviour.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

var defaults = map[string]string{
	"APP_ENV":               "development",
	"LOG_LEVEL":             "info",
	"HTTP_ADDR":             ":8080",
	"SITE_EXTENDED_PAGES":   "true",
	"SITE_BASE_URL":         "http://localhost:8080",
	"CMS_BASE_URL":          "https://www.wixapis.com",
	"CMS_API_KEY":           "",
	"CMS_SITE_ID":           "",
	"CMS_TIMEOUT":           "5s",
	"CMS_PAGE_SIZE":         "100",
	"CMS_CACHE_TTL":         "60s",
	"REDIS_URL":             "",
	"PAGEVIEW_LOAD_TIMEOUT": "8s",
	"CONTACT_TRANSPORT":     TransportLog,
	"CONTACT_TO":            "",
	"CONTACT_FROM":          "",
	"RESEND_API_KEY":        "",
	"AWS_REGION":            "us-east-1",
	"RATE_LIMIT_MAX":        "5",
	"RATE_LIMIT_WINDOW":     "10m",
	"RATE_LIMIT_BLOCK":      "30m",

	"SITE_PROGRESSIVE_SECTIONS":   "false",
	"OTEL_EXPORTER_OTLP_ENDPOINT": "",
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present; path, when set, names an explicit
// config file that must exist.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("load .env: %w", err)
		}
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	return FromViper(v)
}

// FromViper resolves and validates a Config from v.
func FromViper(v *viper.Viper) (*Config, error) {
	r := reader{v: v}
	cfg := &Config{
		AppEnv:   strings.ToLower(r.str("APP_ENV")),
		LogLevel: strings.ToLower(r.str("LOG_LEVEL")),
		HTTPAddr: r.str("HTTP_ADDR"),
		Site: SiteConfig{
			ExtendedPages: r.boolean("SITE_EXTENDED_PAGES"),
			BaseURL:       strings.TrimRight(r.str("SITE_BASE_URL"), "/"),

			ProgressiveSections: r.boolean("SITE_PROGRESSIVE_SECTIONS"),
		},
		CMS: CMSConfig{
			BaseURL:  strings.TrimRight(r.str("CMS_BASE_URL"), "/"),
			APIKey:   r.str("CMS_API_KEY"),
			SiteID:   r.str("CMS_SITE_ID"),
			Timeout:  r.duration("CMS_TIMEOUT"),
			PageSize: r.integer("CMS_PAGE_SIZE"),
			CacheTTL: r.duration("CMS_CACHE_TTL"),
		},
		RedisURL: r.str("REDIS_URL"),
		PageView: PageViewConfig{
			LoadTimeout: r.duration("PAGEVIEW_LOAD_TIMEOUT"),
		},
		Contact: ContactConfig{
			Transport:    strings.ToLower(r.str("CONTACT_TRANSPORT")),
			To:           r.str("CONTACT_TO"),
			From:         r.str("CONTACT_FROM"),
			ResendAPIKey: r.str("RESEND_API_KEY"),
			AWSRegion:    r.str("AWS_REGION"),
		},
		RateLimit: RateLimitConfig{
			Max:    r.integer("RATE_LIMIT_MAX"),
			Window: r.duration("RATE_LIMIT_WINDOW"),
			Block:  r.duration("RATE_LIMIT_BLOCK"),
		},
		OTLPEndpoint: r.str("OTEL_EXPORTER_OTLP_ENDPOINT"),
	}

	if len(r.errs) > 0 {
		return nil, errors.Join(r.errs...)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints.
func (c *Config) Validate() error {
	var errs []error

	if c.HTTPAddr == "" {
		errs = append(errs, errors.New("HTTP_ADDR must not be empty"))
	}
	if u, err := url.Parse(c.CMS.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("CMS_BASE_URL %q is not an absolute URL", c.CMS.BaseURL))
	}
	if c.CMS.Timeout <= 0 {
		errs = append(errs, errors.New("CMS_TIMEOUT must be positive"))
	}
	if c.CMS.PageSize <= 0 {
		errs = append(errs, errors.New("CMS_PAGE_SIZE must be positive"))
	}
	if c.CMS.CacheTTL < 0 {
		errs = append(errs, errors.New("CMS_CACHE_TTL must not be negative"))
	}
	if c.PageView.LoadTimeout < 0 {
		errs = append(errs, errors.New("PAGEVIEW_LOAD_TIMEOUT must not be negative"))
	}
	if c.RateLimit.Max <= 0 || c.RateLimit.Window <= 0 || c.RateLimit.Block < 0 {
		errs = append(errs, errors.New("RATE_LIMIT_MAX and RATE_LIMIT_WINDOW must be positive and RATE_LIMIT_BLOCK not negative"))
	}

	switch c.Contact.Transport {
	case TransportLog:
	case TransportResend:
		if c.Contact.ResendAPIKey == "" {
			errs = append(errs, errors.New("RESEND_API_KEY is required when CONTACT_TRANSPORT=resend"))
		}
		if c.Contact.To == "" || c.Contact.From == "" {
			errs = append(errs, errors.New("CONTACT_TO and CONTACT_FROM are required when CONTACT_TRANSPORT=resend"))
		}
	case TransportSES:
		if c.Contact.AWSRegion == "" {
			errs = append(errs, errors.New("AWS_REGION is required when CONTACT_TRANSPORT=ses"))
		}
		if c.Contact.To == "" || c.Contact.From == "" {
			errs = append(errs, errors.New("CONTACT_TO and CONTACT_FROM are required when CONTACT_TRANSPORT=ses"))
		}
	default:
		errs = append(errs, fmt.Errorf("CONTACT_TRANSPORT %q is not one of log, resend, ses", c.Contact.Transport))
	}

	return errors.Join(errs...)
}

// reader collects conversion errors instead of letting viper coerce bad
// values to zero.
type reader struct {
	v    *viper.Viper
	errs []error
}

func (r *reader) str(key string) string {
	return strings.TrimSpace(r.v.GetString(key))
}

func (r *reader) duration(key string) time.Duration {
	raw := r.str(key)
	if raw == "" {
		return 0
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%s: invalid duration %q", key, raw))
		return 0
	}
	return d
}

func (r *reader) integer(key string) int {
	raw := r.str(key)
	n, err := strconv.Atoi(raw)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%s: invalid integer %q", key, raw))
		return 0
	}
	return n
}

func (r *reader) boolean(key string) bool {
	raw := r.str(key)
	b, err := strconv.ParseBool(raw)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%s: invalid boolean %q", key, raw))
		return false
	}
	return b
}
