package config

import "time"

const (
	EnvironmentProduction  = "production"
	EnvironmentDevelopment = "development"
)

const (
	defaultEnvironment     = EnvironmentDevelopment
	defaultUserTokenTTL    = 60 * time.Minute
	defaultAdminTokenTTL   = 30 * time.Minute
	defaultBcryptCost      = 10
	defaultPageSize        = 10
	defaultRequestTimeout  = 30 * time.Second
	defaultRateLimitWindow = time.Minute

	defaultMaxOpenConns    = 10
	defaultMaxIdleConns    = 4
	defaultConnMaxLifetime = 30 * time.Minute
	defaultGeocodeCacheTTL = 24 * time.Hour

	defaultGeocoderTimeout    = 10 * time.Second
	defaultGeocoderRetryCount = 2
	defaultGeocoderRetryWait  = 100 * time.Millisecond

	defaultAuditSchedule      = "@every 1s"
	defaultAuditBatchSize     = 50
	defaultAuditMaxAttempts   = 3
	defaultAuditDelay         = 5 * time.Second
	defaultLoginAuditDelay    = 2 * time.Second
	defaultTokenPruneSchedule = "@hourly"

	defaultLogLevel = "debug"
)

// setDefaults fills zero-valued settings that have a sensible default.
func (cfg *StructuredConfig) setDefaults() {
	setDefault(&cfg.App.Environment, defaultEnvironment)
	setDefault(&cfg.App.UserTokenTTL, defaultUserTokenTTL)
	setDefault(&cfg.App.AdminTokenTTL, defaultAdminTokenTTL)
	setDefault(&cfg.App.BcryptCost, defaultBcryptCost)
	setDefault(&cfg.App.PageSize, defaultPageSize)

	setDefault(&cfg.Server.RequestTimeout, defaultRequestTimeout)
	setDefault(&cfg.Server.RateLimitWindow, defaultRateLimitWindow)

	setDefault(&cfg.Storage.DB.MaxOpenConns, defaultMaxOpenConns)
	setDefault(&cfg.Storage.DB.MaxIdleConns, defaultMaxIdleConns)
	setDefault(&cfg.Storage.DB.ConnMaxLifetime, defaultConnMaxLifetime)
	setDefault(&cfg.Storage.Redis.GeocodeCacheTTL, defaultGeocodeCacheTTL)

	setDefault(&cfg.Adapter.Geocoder.RequestTimeout, defaultGeocoderTimeout)
	setDefault(&cfg.Adapter.Geocoder.RetryCount, defaultGeocoderRetryCount)
	setDefault(&cfg.Adapter.Geocoder.RetryWait, defaultGeocoderRetryWait)

	setDefault(&cfg.Workers.AuditSchedule, defaultAuditSchedule)
	setDefault(&cfg.Workers.AuditBatchSize, defaultAuditBatchSize)
	setDefault(&cfg.Workers.AuditMaxAttempts, defaultAuditMaxAttempts)
	setDefault(&cfg.Workers.AuditDelay, defaultAuditDelay)
	setDefault(&cfg.Workers.LoginAuditDelay, defaultLoginAuditDelay)
	setDefault(&cfg.Workers.TokenPruneSchedule, defaultTokenPruneSchedule)

	setDefault(&cfg.Log.Level, defaultLogLevel)
}

func setDefault[T comparable](field *T, value T) {
	var zero T
	if *field == zero {
		*field = value
	}
}
