package config

import (
	"encoding/json"
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv  = "LISTMENDER_CONFIG"
	accessTokenEnv = "MAL_ACCESS_TOKEN"
	tokenFileEnv   = "MAL_TOKEN_FILE"
	ownerEnv       = "LISTMENDER_OWNER"

	defaultWait = time.Second
)

// Config holds high-level settings required across the application.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	MAL     MALConfig     `yaml:"mal"`
	Review  ReviewConfig  `yaml:"review"`
}

// LoggingConfig selects log verbosity and output format.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MALConfig wires the MyAnimeList endpoints and credentials. The access
// token must have been acquired out of band; authentication flows are out of
// scope. When AccessToken is empty the token is read from TokenFile, the
// JSON file the OAuth tooling writes ({"access_token": "..."}).
type MALConfig struct {
	APIBaseURL  string `yaml:"apiBaseUrl"`
	SiteBaseURL string `yaml:"siteBaseUrl"`
	AccessToken string `yaml:"accessToken"`
	TokenFile   string `yaml:"tokenFile"`
	Owner       string `yaml:"owner"`
}

// ReviewConfig controls the review session's pacing and gating.
type ReviewConfig struct {
	AutoSkip bool   `yaml:"autoSkip"`
	Wait     string `yaml:"wait"`
	Limit    int    `yaml:"limit"`
}

// WaitDuration resolves the configured inter-entry pause.
func (r ReviewConfig) WaitDuration() time.Duration {
	if r.Wait == "" {
		return defaultWait
	}
	d, err := time.ParseDuration(r.Wait)
	if err != nil {
		log.Printf("config: invalid wait %q, reverting to %s", r.Wait, defaultWait)
		return defaultWait
	}
	return d
}

// Load reads YAML configuration (if present) and applies environment
// overrides. An empty path falls back to the LISTMENDER_CONFIG variable.
func Load(path string) Config {
	cfg := defaultConfig()

	if path == "" {
		path = os.Getenv(configPathEnv)
	}
	if path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()
	cfg.resolveToken()

	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(accessTokenEnv); v != "" {
		c.MAL.AccessToken = v
	}

	if v := os.Getenv(tokenFileEnv); v != "" {
		c.MAL.TokenFile = v
	}

	if v := os.Getenv(ownerEnv); v != "" {
		c.MAL.Owner = v
	}
}

// resolveToken fills AccessToken from the token file when no explicit token
// was configured. A missing or malformed file is reported but not fatal
// here; the application refuses to start without a token.
func (c *Config) resolveToken() {
	if c.MAL.AccessToken != "" || c.MAL.TokenFile == "" {
		return
	}

	raw, err := os.ReadFile(c.MAL.TokenFile)
	if err != nil {
		log.Printf("config: cannot read token file %s: %v", c.MAL.TokenFile, err)
		return
	}

	var token struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(raw, &token); err != nil {
		log.Printf("config: cannot parse token file %s: %v", c.MAL.TokenFile, err)
		return
	}

	c.MAL.AccessToken = token.AccessToken
}

func mergeConfig(base, override Config) Config {
	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}
	if override.Logging.Format != "" {
		base.Logging.Format = override.Logging.Format
	}

	if override.MAL.APIBaseURL != "" {
		base.MAL.APIBaseURL = override.MAL.APIBaseURL
	}
	if override.MAL.SiteBaseURL != "" {
		base.MAL.SiteBaseURL = override.MAL.SiteBaseURL
	}
	if override.MAL.AccessToken != "" {
		base.MAL.AccessToken = override.MAL.AccessToken
	}
	if override.MAL.TokenFile != "" {
		base.MAL.TokenFile = override.MAL.TokenFile
	}
	if override.MAL.Owner != "" {
		base.MAL.Owner = override.MAL.Owner
	}

	if override.Review.AutoSkip {
		base.Review.AutoSkip = true
	}
	if override.Review.Wait != "" {
		base.Review.Wait = override.Review.Wait
	}
	if override.Review.Limit > 0 {
		base.Review.Limit = override.Review.Limit
	}

	return base
}

func defaultConfig() Config {
	return Config{
		Logging: LoggingConfig{Level: "info", Format: "text"},
		MAL: MALConfig{
			APIBaseURL:  "https://api.myanimelist.net/v2",
			SiteBaseURL: "https://myanimelist.net",
			TokenFile:   "token.json",
			Owner:       "@me",
		},
		Review: ReviewConfig{
			Wait:  "1s",
			Limit: 1000,
		},
	}
}
