package storage

import (
	"strings"
	"time"
)

// Config describes the S3-compatible endpoint the object theme backend writes to.
type Config struct {
	// Endpoint may carry an http:// or https:// scheme; UseSSL decides the protocol.
	Endpoint  string `mapstructure:"endpoint" default:"localhost:9000"`
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	UseSSL    bool   `mapstructure:"use_ssl" default:"false"`
	Bucket    string `mapstructure:"bucket" default:"toolbox"`
	// Prefix is the folder every object key is placed under.
	Prefix string `mapstructure:"prefix" default:"preferences"`
	// Region is only used when the bucket has to be created.
	Region         string `mapstructure:"region" default:""`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" default:"30"`
}

// Host returns Endpoint without its scheme, the form minio expects.
func (c Config) Host() string {
	host := strings.TrimPrefix(c.Endpoint, "http://")
	return strings.TrimPrefix(host, "https://")
}

// Timeout returns the dial and response timeout, 30 seconds when unset.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}
