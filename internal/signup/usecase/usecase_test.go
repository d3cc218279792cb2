package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shandysiswandi/unifydesk/internal/pkg/goerror"
	"github.com/shandysiswandi/unifydesk/internal/pkg/idempotency"
	"github.com/shandysiswandi/unifydesk/internal/pkg/instrument"
	"github.com/shandysiswandi/unifydesk/internal/pkg/validator"
	"github.com/shandysiswandi/unifydesk/internal/signup/entity"
)

type fakeStore struct {
	usernames map[string]bool
	emails    map[string]bool
	phones    map[string]bool

	created  []entity.NewUser
	sessions []entity.Session
	hashes   []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		usernames: map[string]bool{},
		emails:    map[string]bool{},
		phones:    map[string]bool{},
	}
}

func (f *fakeStore) ExistsUserByUsername(_ context.Context, username string) (bool, error) {
	return f.usernames[username], nil
}

func (f *fakeStore) ExistsUserByEmail(_ context.Context, email string) (bool, error) {
	return f.emails[email], nil
}

func (f *fakeStore) ExistsUserByPhone(_ context.Context, phone string) (bool, error) {
	return f.phones[phone], nil
}

func (f *fakeStore) NewSignup(_ context.Context, user entity.NewUser, sess entity.Session, hash string) error {
	f.created = append(f.created, user)
	f.sessions = append(f.sessions, sess)
	f.hashes = append(f.hashes, hash)
	f.usernames[user.Username] = true
	f.emails[user.Email] = true
	f.phones[user.Phone] = true
	return nil
}

type fakeMessenger struct {
	published []UserRegisteredEvent
	err       error
}

func (f *fakeMessenger) PublishUserRegistered(_ context.Context, msg UserRegisteredEvent) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, msg)
	return nil
}

type fakeIdemp struct {
	states map[string]idempotency.State
}

func (f *fakeIdemp) Acquire(_ context.Context, key string, _ time.Duration) (idempotency.State, error) {
	if st, ok := f.states[key]; ok {
		return st, nil
	}
	f.states[key] = idempotency.StateInProgress
	return idempotency.StateNone, nil
}

func (f *fakeIdemp) MarkCompleted(_ context.Context, key string, _ time.Duration) error {
	f.states[key] = idempotency.StateCompleted
	return nil
}

func (f *fakeIdemp) MarkFailed(_ context.Context, key string, _ time.Duration) error {
	f.states[key] = idempotency.StateFailed
	return nil
}

func (f *fakeIdemp) Exec(ctx context.Context, key string, fn func(context.Context) error, _ ...idempotency.Option) error {
	state, err := f.Acquire(ctx, key, 0)
	if err != nil {
		return err
	}

	switch state {
	case idempotency.StateInProgress:
		return idempotency.ErrAlreadyInProgress
	case idempotency.StateCompleted:
		return idempotency.ErrAlreadyCompleted
	case idempotency.StateFailed:
		return idempotency.ErrAlreadyFailed
	}

	if err := fn(ctx); err != nil {
		_ = f.MarkFailed(ctx, key, 0)
		return err
	}

	return f.MarkCompleted(ctx, key, 0)
}

type fakeHash struct{}

func (fakeHash) Hash(plaintext string) ([]byte, error) { return []byte("hashed:" + plaintext), nil }
func (fakeHash) Verify(hashed, plaintext string) bool  { return hashed == "hashed:"+plaintext }

type fakeClock struct{ now time.Time }

func (f *fakeClock) Now() time.Time { return f.now }

type seqID struct{ last int64 }

func (s *seqID) Generate() int64 {
	s.last++
	return s.last
}

type fixedSID struct{ v string }

func (s fixedSID) Generate() string { return s.v }

func validInput() SignupInput {
	return SignupInput{
		Username:      "johndoe",
		Email:         "john@example.com",
		Phone:         "9876543210",
		Password:      "Secret123!",
		FirstName:     "John",
		LastName:      "Doe",
		Gender:        "male",
		DateOfBirth:   "1990-05-20",
		Nationality:   "Indian",
		State:         "Karnataka",
		City:          "Bengaluru",
		Address:       "42 MG Road",
		EmailVerified: true,
		PhoneVerified: true,
	}
}

func newTestUsecase(t *testing.T, store *fakeStore, msgr *fakeMessenger, clk *fakeClock) *Usecase {
	t.Helper()

	v, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("new validator: %v", err)
	}

	return New(Dependency{
		RepoDB:        store,
		RepoMessaging: msgr,
		Idempotency:   &fakeIdemp{states: map[string]idempotency.State{}},
		Validator:     v,
		Bcrypt:        fakeHash{},
		UID:           &seqID{},
		SID:           fixedSID{v: "sess-0001"},
		Clock:         clk,
		Instrument:    instrument.NewNoop(),
	})
}

func TestSignupSuccess(t *testing.T) {
	store := newFakeStore()
	msgr := &fakeMessenger{}
	clk := &fakeClock{now: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)}
	uc := newTestUsecase(t, store, msgr, clk)

	out, err := uc.Signup(t.Context(), validInput())
	if err != nil {
		t.Fatalf("signup: %v", err)
	}

	if out.SessionID != "sess-0001" {
		t.Fatalf("session id = %q", out.SessionID)
	}
	if want := clk.now.Add(entity.SessionTTL); !out.ExpiresAt.Equal(want) {
		t.Fatalf("session expires at = %v, want %v", out.ExpiresAt, want)
	}

	if len(store.created) != 1 {
		t.Fatalf("created %d users, want 1", len(store.created))
	}
	if store.hashes[0] != "hashed:Secret123!" {
		t.Fatalf("stored hash = %q", store.hashes[0])
	}
	if !store.created[0].EmailVerified || !store.created[0].PhoneVerified {
		t.Fatal("verified flags not persisted")
	}

	if len(msgr.published) != 1 || msgr.published[0].Username != "johndoe" {
		t.Fatalf("unexpected publishes: %+v", msgr.published)
	}
}

func TestSignupNormalizes(t *testing.T) {
	store := newFakeStore()
	clk := &fakeClock{now: time.Now()}
	uc := newTestUsecase(t, store, &fakeMessenger{}, clk)

	in := validInput()
	in.Username = "  JohnDoe "
	in.Email = "John@Example.COM"
	in.Nationality = ""

	if _, err := uc.Signup(t.Context(), in); err != nil {
		t.Fatalf("signup: %v", err)
	}

	user := store.created[0]
	if user.Username != "johndoe" || user.Email != "john@example.com" {
		t.Fatalf("not normalized: %+v", user)
	}
	if user.Nationality != "Indian" {
		t.Fatalf("nationality = %q, want default Indian", user.Nationality)
	}
}

func TestSignupValidation(t *testing.T) {
	clk := &fakeClock{now: time.Now()}
	uc := newTestUsecase(t, newFakeStore(), &fakeMessenger{}, clk)

	mutate := []func(*SignupInput){
		func(in *SignupInput) { in.Username = "ab" },
		func(in *SignupInput) { in.Username = "john doe!" },
		func(in *SignupInput) { in.Email = "not-an-email" },
		func(in *SignupInput) { in.Phone = "12345" },
		func(in *SignupInput) { in.Password = "short" },
		func(in *SignupInput) { in.Gender = "unknown" },
		func(in *SignupInput) { in.DateOfBirth = "20-05-1990" },
		func(in *SignupInput) { in.Address = "" },
	}

	for i, fn := range mutate {
		in := validInput()
		fn(&in)

		_, err := uc.Signup(t.Context(), in)

		var gerr *goerror.Error
		if !errors.As(err, &gerr) || gerr.Type() != goerror.TypeValidation {
			t.Fatalf("case %d: err = %v, want validation error", i, err)
		}
	}
}

func TestSignupConflicts(t *testing.T) {
	clk := &fakeClock{now: time.Now()}

	cases := []struct {
		name string
		seed func(*fakeStore)
		want error
	}{
		{"username", func(s *fakeStore) { s.usernames["johndoe"] = true }, entity.ErrUsernameTaken},
		{"email", func(s *fakeStore) { s.emails["john@example.com"] = true }, entity.ErrEmailTaken},
		{"phone", func(s *fakeStore) { s.phones["9876543210"] = true }, entity.ErrPhoneTaken},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := newFakeStore()
			tc.seed(store)
			uc := newTestUsecase(t, store, &fakeMessenger{}, clk)

			_, err := uc.Signup(t.Context(), validInput())
			if !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}
			if len(store.created) != 0 {
				t.Fatal("user created despite conflict")
			}
		})
	}
}

func TestSignupIdempotencyReplay(t *testing.T) {
	store := newFakeStore()
	clk := &fakeClock{now: time.Now()}
	uc := newTestUsecase(t, store, &fakeMessenger{}, clk)

	in := validInput()
	in.IdempotencyKey = "req-123"

	if _, err := uc.Signup(t.Context(), in); err != nil {
		t.Fatalf("first signup: %v", err)
	}

	// Same key again: the account must not be created twice.
	in2 := validInput()
	in2.Username = "janedoe"
	in2.Email = "jane@example.com"
	in2.Phone = "9876500000"
	in2.IdempotencyKey = "req-123"

	_, err := uc.Signup(t.Context(), in2)

	var gerr *goerror.Error
	if !errors.As(err, &gerr) || gerr.Code() != goerror.CodeConflict {
		t.Fatalf("err = %v, want conflict", err)
	}
	if len(store.created) != 1 {
		t.Fatalf("created %d users, want 1", len(store.created))
	}
}

func TestCheckAvailability(t *testing.T) {
	store := newFakeStore()
	store.usernames["taken"] = true
	clk := &fakeClock{now: time.Now()}
	uc := newTestUsecase(t, store, &fakeMessenger{}, clk)

	out, err := uc.CheckUsername(t.Context(), CheckUsernameInput{Username: "taken"})
	if err != nil {
		t.Fatalf("check username: %v", err)
	}
	if out.Available {
		t.Fatal("taken username reported available")
	}

	out, err = uc.CheckUsername(t.Context(), CheckUsernameInput{Username: "free"})
	if err != nil {
		t.Fatalf("check username: %v", err)
	}
	if !out.Available {
		t.Fatal("free username reported unavailable")
	}

	if _, err := uc.CheckPhone(t.Context(), CheckPhoneInput{Phone: "12ab"}); err == nil {
		t.Fatal("malformed phone accepted")
	}
}
