package main

import (
	"careconnect/internal/registrations/events"
	registrationshandler "careconnect/internal/registrations/handler"
	registrationsrepo "careconnect/internal/registrations/repository"
	registrationsservice "careconnect/internal/registrations/service"
	"careconnect/internal/registrations/validator"
	settingshandler "careconnect/internal/settings/handler"
	settingsrepo "careconnect/internal/settings/repository"
	settingsservice "careconnect/internal/settings/service"
	"careconnect/pkg/app"
	"careconnect/pkg/config"
	"careconnect/pkg/contracts"
	"careconnect/pkg/kafka"
	kafka_config "careconnect/pkg/kafka/config"
	kafka_middleware "careconnect/pkg/kafka/middleware"
)

const ServiceName = "careconnect"

func main() {
	cfg := config.Load(ServiceName)
	defer cfg.GracefulShutdown()

	application := app.NewApplication()

	registrationRepo, settingsStore := initStorage(cfg)

	publisher, producer := initPublisher(cfg)

	registrationService := registrationsservice.NewRegistrationService(
		registrationRepo,
		validator.NewRegisterFormValidator(cfg.Log),
		publisher,
		cfg,
	)
	settingsService := settingsservice.NewSettingsService(settingsStore, cfg)

	application.SetApp(cfg,
		registrationshandler.NewHealthHandler(cfg.Client, cfg.Log),
		registrationshandler.NewRegistrationHandler(registrationService, cfg.Log),
		settingshandler.NewSettingsHandler(settingsService, cfg.Log),
	)
	if producer != nil {
		application.OnShutdown(producer)
	}

	application.Run()
}

func initStorage(cfg *config.Config) (registrationsrepo.RegistrationRepository, settingsrepo.KeyValueStore) {
	if !cfg.UsesMongo() {
		cfg.Log.Warn("Using in-memory storage; data is lost on restart")
		return registrationsrepo.NewMemoryRegistrationRepository(), settingsrepo.NewMemorySettingsRepository()
	}

	cfg.SetMongo()
	return registrationsrepo.NewMongoRegistrationRepository(cfg), settingsrepo.NewMongoSettingsRepository(cfg)
}

func initPublisher(cfg *config.Config) (events.Publisher, contracts.Closer) {
	if !cfg.EventsEnabled {
		cfg.Log.Info("Registration events disabled")
		return events.NewNoopPublisher(), nil
	}

	kafkaCfg, err := kafka_config.Load()
	if err != nil {
		cfg.Log.Fatal("Invalid Kafka configuration", "error", err)
	}
	kafkaCfg.LogConfiguration(cfg.Log)

	producer, err := kafka.NewProducer(kafkaCfg, cfg.RegistrationTopic, cfg.Log)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka producer", "error", err)
	}
	if kafkaCfg.EnableMiddleware {
		producer.Use(kafka_middleware.LoggingProducerMiddleware(cfg.Log))
	}

	cfg.Log.Info("Registration events enabled", "topic", cfg.RegistrationTopic)
	return events.NewKafkaPublisher(producer), producer
}
