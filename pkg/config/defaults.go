package config

import "time"

const (
	StorageMongo  = "mongo"
	StorageMemory = "memory"
)

const (
	DefaultStorageDriver = StorageMongo

	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "careconnect"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultPort     = "8080"
	DefaultLogLevel = "info"

	DefaultRateLimitRequests = 30
	DefaultRateLimitWindow   = 1 * time.Minute

	DefaultRequestTimeout = 30 * time.Second
	DefaultMaxRequestSize = 64 * 1024 // 64KB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	// bcrypt.MinCost is 4, bcrypt.MaxCost is 31.
	DefaultBcryptCost = 12
	MinBcryptCost     = 4
	MaxBcryptCost     = 31

	DefaultEventsEnabled     = false
	DefaultRegistrationTopic = "careconnect.registrations"
)
