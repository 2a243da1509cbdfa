package storage

// Config holds configuration for the storage provider.
type Config struct {
	// Endpoint is the URL of the storage service.
	Endpoint string `mapstructure:"endpoint" default:"localhost:9000"`
	// AccessKey is the access key ID for authentication.
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	// UseSSL indicates whether to use SSL/TLS for connections.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Bucket is the name of the bucket holding the storefront assets.
	Bucket string `mapstructure:"bucket" default:"storefront"`
	// Region is the location of the bucket (e.g., us-east-1).
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// FeedObject is the object key of the pipe-delimited product feed.
	FeedObject string `mapstructure:"feed_object" default:"feed/listing_products.txt"`
	// FeedFallbackURL is an optional HTTP URL fetched when the bucket
	// read fails. Empty disables the fallback.
	FeedFallbackURL string `mapstructure:"feed_fallback_url" default:""`
}
