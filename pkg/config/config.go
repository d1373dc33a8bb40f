package config

import "time"

// Config aggregates the runtime configuration for the API process.
// It is loaded once in main and passed into the adapters explicitly;
// nothing else reads the environment after startup.
type Config struct {
	// Port is the HTTP listen port.
	Port string

	// Mongo holds document store connection settings.
	Mongo MongoConfig

	// Mail holds SMTP settings for the contact notification channel.
	Mail MailConfig

	// Cloudinary holds credentials for the image blob store.
	Cloudinary CloudinaryConfig

	// CORSAllowedOrigins is the origin whitelist. The single element "*"
	// allows any origin.
	CORSAllowedOrigins []string
}

// MongoConfig holds document store connection settings.
type MongoConfig struct {
	// URI is the MongoDB connection string. Required.
	URI string
	// Database is the database name.
	Database string
	// ConnectTimeout bounds the startup ping.
	ConnectTimeout time.Duration
}

// MailConfig holds SMTP settings for the notification channel.
// The channel is disabled when Username is empty.
type MailConfig struct {
	Host     string
	Port     int
	Username string
	// Password is an app password, not the account password.
	Password string
	// To is the fixed operational recipient for contact notifications.
	To      string
	Timeout time.Duration
}

// Enabled reports whether the mail channel is configured.
func (c MailConfig) Enabled() bool {
	return c.Username != ""
}

// CloudinaryConfig holds credentials for the image blob store.
// Uploads are disabled (a no-op store is used) when CloudName is empty.
type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
	// Folder is the remote folder images are uploaded into.
	Folder string
}

// Enabled reports whether blob store credentials are configured.
func (c CloudinaryConfig) Enabled() bool {
	return c.CloudName != ""
}

// Load reads the full application configuration from the environment.
func Load() Config {
	return Config{
		Port: GetEnvString("PORT", "5000"),
		Mongo: MongoConfig{
			URI:            GetEnvString("MONGODB_URI", ""),
			Database:       GetEnvString("MONGODB_DATABASE", "contactsDB"),
			ConnectTimeout: GetEnvDuration("MONGODB_CONNECT_TIMEOUT", 5*time.Second),
		},
		Mail: MailConfig{
			Host:     GetEnvString("MAIL_HOST", "smtp.gmail.com"),
			Port:     GetEnvInt("MAIL_PORT", 587),
			Username: GetEnvString("MAIL_USER", ""),
			Password: GetEnvString("MAIL_PASSWORD", ""),
			To:       GetEnvString("MAIL_TO", GetEnvString("MAIL_USER", "")),
			Timeout:  GetEnvDuration("MAIL_TIMEOUT", 15*time.Second),
		},
		Cloudinary: CloudinaryConfig{
			CloudName: GetEnvString("CLOUDINARY_CLOUD_NAME", ""),
			APIKey:    GetEnvString("CLOUDINARY_API_KEY", ""),
			APISecret: GetEnvString("CLOUDINARY_API_SECRET", ""),
			Folder:    GetEnvString("CLOUDINARY_FOLDER", "news"),
		},
		CORSAllowedOrigins: GetEnvStringList("CORS_ALLOWED_ORIGINS", []string{"*"}),
	}
}
