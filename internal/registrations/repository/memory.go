package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	registrationserrors "careconnect/internal/registrations/errors"
	mongotx "careconnect/pkg/db/mongo"
	"careconnect/pkg/model"

	"github.com/google/uuid"
)

type memoryRegistrationRepository struct {
	mu      sync.Mutex
	byEmail map[string]model.Registration
}

// NewMemoryRegistrationRepository returns a process-local store. Transactions
// hold the store lock, so a check-then-insert inside one is atomic.
func NewMemoryRegistrationRepository() RegistrationRepository {
	return &memoryRegistrationRepository{
		byEmail: make(map[string]model.Registration),
	}
}

type txKey struct{}

func (r *memoryRegistrationRepository) lock(ctx context.Context) func() {
	if ctx.Value(txKey{}) == r {
		return func() {}
	}
	r.mu.Lock()
	return r.mu.Unlock
}

func (r *memoryRegistrationRepository) Create(ctx context.Context, reg *model.Registration) error {
	unlock := r.lock(ctx)
	defer unlock()

	if _, ok := r.byEmail[reg.Email]; ok {
		return fmt.Errorf("%w: %s", registrationserrors.ErrEmailTaken, reg.Email)
	}

	reg.ID = uuid.NewString()
	reg.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)

	stored := *reg
	stored.AllowedRoles = append([]model.UserRole(nil), reg.AllowedRoles...)
	r.byEmail[reg.Email] = stored
	return nil
}

func (r *memoryRegistrationRepository) FindByEmail(ctx context.Context, email string) (*model.Registration, error) {
	unlock := r.lock(ctx)
	defer unlock()

	reg, ok := r.byEmail[email]
	if !ok {
		return nil, fmt.Errorf("%w: %s", registrationserrors.ErrNotFound, email)
	}
	reg.AllowedRoles = append([]model.UserRole(nil), reg.AllowedRoles...)
	return &reg, nil
}

func (r *memoryRegistrationRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	unlock := r.lock(ctx)
	defer unlock()

	_, ok := r.byEmail[email]
	return ok, nil
}

func (r *memoryRegistrationRepository) ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return mongotx.Inline{}.ExecuteTransaction(context.WithValue(ctx, txKey{}, r), fn)
}
