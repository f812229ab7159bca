package userservice

import (
	"context"

	userdb "github.com/Black-And-White-Club/miniclub/app/modules/user/infrastructure/repositories"
)

// ------------------------
// Fake User Repo
// ------------------------

// FakeUserRepository is an in-memory userdb.Repository with programmable overrides.
type FakeUserRepository struct {
	trace []string

	players map[string]*userdb.Player
	order   []string

	GetFunc    func(ctx context.Context, email string) (*userdb.Player, error)
	ModifyFunc func(ctx context.Context, email string, fn userdb.ModifyFunc) (*userdb.Player, error)
	ListFunc   func(ctx context.Context) ([]*userdb.Player, error)
}

// NewFakeUserRepository initializes an empty FakeUserRepository.
func NewFakeUserRepository() *FakeUserRepository {
	return &FakeUserRepository{
		trace:   []string{},
		players: map[string]*userdb.Player{},
	}
}

// Trace returns the sequence of method calls made to the fake.
func (f *FakeUserRepository) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeUserRepository) record(step string) {
	f.trace = append(f.trace, step)
}

// --- Repository Interface Implementation ---

func (f *FakeUserRepository) Get(ctx context.Context, email string) (*userdb.Player, error) {
	f.record("Get")
	if f.GetFunc != nil {
		return f.GetFunc(ctx, email)
	}
	p, ok := f.players[email]
	if !ok {
		return nil, userdb.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *FakeUserRepository) Modify(ctx context.Context, email string, fn userdb.ModifyFunc) (*userdb.Player, error) {
	f.record("Modify")
	if f.ModifyFunc != nil {
		return f.ModifyFunc(ctx, email, fn)
	}
	var current *userdb.Player
	if p, ok := f.players[email]; ok {
		cp := *p
		current = &cp
	}
	next, err := fn(current)
	if err != nil {
		return nil, err
	}
	if current == nil {
		f.order = append(f.order, email)
	}
	stored := *next
	f.players[email] = &stored
	return next, nil
}

func (f *FakeUserRepository) List(ctx context.Context) ([]*userdb.Player, error) {
	f.record("List")
	if f.ListFunc != nil {
		return f.ListFunc(ctx)
	}
	out := make([]*userdb.Player, 0, len(f.order))
	for _, email := range f.order {
		cp := *f.players[email]
		out = append(out, &cp)
	}
	return out, nil
}
