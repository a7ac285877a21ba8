package config

// ObjectStoreConfig configures the optional S3-compatible snapshot store.
// When Bucket is empty, snapshot offload is disabled and archives live only
// inside the sandbox.
type ObjectStoreConfig struct {
	Bucket          string
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	UsePathStyle    bool
}

// Enabled reports whether object-store offload is configured.
func (c *ObjectStoreConfig) Enabled() bool {
	return c != nil && c.Bucket != ""
}

// LoadObjectStoreConfig reads object store configuration from the environment.
func LoadObjectStoreConfig() *ObjectStoreConfig {
	return &ObjectStoreConfig{
		Bucket:          getEnvOrDefault("SANDBOX_S3_BUCKET", ""),
		Region:          getEnvOrDefault("SANDBOX_S3_REGION", "us-east-1"),
		Endpoint:        getEnvOrDefault("SANDBOX_S3_ENDPOINT", ""),
		AccessKeyID:     getEnvOrDefault("SANDBOX_S3_ACCESS_KEY_ID", ""),
		SecretAccessKey: getEnvOrDefault("SANDBOX_S3_SECRET_ACCESS_KEY", ""),
		UsePathStyle:    getEnvBool("SANDBOX_S3_USE_PATH_STYLE", false),
	}
}
