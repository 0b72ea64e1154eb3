package events

import (
	"context"
	"time"

	"careconnect/pkg/kafka"
	"careconnect/pkg/middleware"
	"careconnect/pkg/model"
)

const (
	EventRegistrationCreated = "registration.created"
	SchemaVersion            = "1"
	Source                   = "careconnect"
)

type RegistrationCreated struct {
	Email        string           `json:"email"`
	FirstName    string           `json:"firstName"`
	LastName     string           `json:"lastName"`
	State        string           `json:"state"`
	AllowedRoles []model.UserRole `json:"allowedRoles"`
	CreatedAt    time.Time        `json:"createdAt"`
}

type Publisher interface {
	RegistrationCreated(ctx context.Context, reg *model.Registration) error
}

type messagePublisher interface {
	Publish(ctx context.Context, msg kafka.Message) error
}

type kafkaPublisher struct {
	producer messagePublisher
}

// NewKafkaPublisher emits registration events keyed by email, so events for
// one account land on one partition.
func NewKafkaPublisher(producer messagePublisher) Publisher {
	return &kafkaPublisher{producer: producer}
}

func (p *kafkaPublisher) RegistrationCreated(ctx context.Context, reg *model.Registration) error {
	msg, err := kafka.NewMessage().
		WithKey(reg.Email).
		WithEventID("").
		WithEventType(EventRegistrationCreated).
		WithSchemaVersion(SchemaVersion).
		WithSource(Source).
		WithCorrelationID(middleware.RequestID(ctx)).
		WithValue(RegistrationCreated{
			Email:        reg.Email,
			FirstName:    reg.FirstName,
			LastName:     reg.LastName,
			State:        reg.State,
			AllowedRoles: reg.AllowedRoles,
			CreatedAt:    reg.CreatedAt,
		}).
		Build()
	if err != nil {
		return err
	}
	return p.producer.Publish(ctx, msg)
}

type noopPublisher struct{}

func NewNoopPublisher() Publisher {
	return noopPublisher{}
}

func (noopPublisher) RegistrationCreated(context.Context, *model.Registration) error {
	return nil
}
