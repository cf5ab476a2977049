package configs

import (
	"context"
	"fmt"
	"os"
	"time"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"github.com/joeshaw/envdecode"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
	secretspb "google.golang.org/genproto/googleapis/cloud/secretmanager/v1"
	"gopkg.in/yaml.v2"
)

const envPrefix = "GASTIMATOR"

type Maps struct {
	APIKey            string `yaml:"apiKey" env:"GOOGLE_MAPS_API_KEY"`
	BaseURL           string `yaml:"baseUrl" env:"GOOGLE_MAPS_BASE_URL"`
	Country           string `yaml:"country" env:"AUTOCOMPLETE_COUNTRY"`
	RequestsPerSecond int    `yaml:"requestsPerSecond" env:"GOOGLE_MAPS_RATE_LIMIT"`
}

type Config struct {
	Maps          Maps          `yaml:"maps"`
	Currency      string        `yaml:"currency" env:"CURRENCY"`
	LookupTimeout time.Duration `yaml:"lookupTimeout" env:"LOOKUP_TIMEOUT"`
	LogLevel      string        `yaml:"logLevel" env:"LOG_LEVEL"`
	NsqdAddress   string        `yaml:"nsqdAddress" env:"NSQD_ADDRESS"`
	Server        struct {
		Port           int      `yaml:"port" env:"SERVER_PORT"`
		AllowedOrigins []string `yaml:"allowedOrigins" env:"ALLOWED_ORIGINS"`
	} `yaml:"server"`
	Session struct {
		TTL time.Duration `yaml:"ttl" env:"SESSION_TTL"`
	} `yaml:"session"`
	CredentialsFile string `yaml:"-" env:"GOOGLE_APPLICATION_CREDENTIALS"`
}

// New returns a Config holding the defaults; Read, ReadServerConfig and
// ReadEnv override them in that order.
func New() *Config {
	c := &Config{
		Currency:      "CAD",
		LookupTimeout: 10 * time.Second,
		LogLevel:      "info",
	}
	c.Maps.Country = "ca"
	c.Maps.RequestsPerSecond = 50
	c.Server.Port = 3030
	c.Session.TTL = 30 * time.Minute
	return c
}

func (c *Config) Read(configFile string) error {
	// YAML
	f, err := os.Open(configFile)
	if err != nil {
		return errors.Wrap(err, "Config.Read")
	}
	defer f.Close()

	if err = yaml.NewDecoder(f).Decode(c); err != nil {
		return errors.Wrapf(err, "Config.Read: decode %s", configFile)
	}
	return nil
}

func (c *Config) ReadEnv() error {
	if err := envconfig.Process(envPrefix, c); err != nil {
		return errors.Wrap(err, "Config.ReadEnv")
	}
	if err := envdecode.Decode(c); err != nil && err != envdecode.ErrNoTargetFieldsAreSet {
		return errors.Wrap(err, "Config.ReadEnv")
	}
	return nil
}

// ReadServerConfig merges the YAML document stored in the Secret Manager
// secret version into c.
func (c *Config) ReadServerConfig(ctx context.Context, secret string) error {
	var opts []option.ClientOption
	if len(c.CredentialsFile) > 0 {
		opts = append(opts, option.WithCredentialsFile(c.CredentialsFile))
	}
	client, err := secretmanager.NewClient(ctx, opts...)
	if err != nil {
		return errors.Wrap(err, "Config.ReadServerConfig")
	}
	defer client.Close()

	request := &secretspb.AccessSecretVersionRequest{
		Name: secret,
	}

	response, err := client.AccessSecretVersion(ctx, request)
	if err != nil {
		return errors.Wrapf(err, "Config.ReadServerConfig: access %s", secret)
	}
	return c.unmarshal(response.Payload.Data)
}

func (c *Config) unmarshal(data []byte) error {
	if err := yaml.Unmarshal(data, c); err != nil {
		return errors.Wrap(err, "Config.unmarshal")
	}
	return nil
}

func (c *Config) Validate() error {
	if len(c.Maps.APIKey) == 0 {
		return errors.New("GOOGLE_MAPS_API_KEY is required")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return errors.Errorf("invalid server port %d", c.Server.Port)
	}
	return nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

func (c *Config) String() (s string) {
	key := "<unset>"
	if len(c.Maps.APIKey) > 0 {
		key = "<redacted>"
	}
	s = fmt.Sprintf("Port:%d, MapsAPIKey:%s, MapsBaseURL:%s, Country:%s, Currency:%s, LookupTimeout:%v, SessionTTL:%v, NSQD_ADDRESS:%s",
		c.Server.Port, key, c.Maps.BaseURL, c.Maps.Country, c.Currency, c.LookupTimeout, c.Session.TTL, c.NsqdAddress)
	return
}
