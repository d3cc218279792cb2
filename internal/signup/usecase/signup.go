package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/shandysiswandi/unifydesk/internal/pkg/goerror"
	"github.com/shandysiswandi/unifydesk/internal/pkg/idempotency"
	"github.com/shandysiswandi/unifydesk/internal/signup/entity"
)

type SignupInput struct {
	Username      string `validate:"required,min=3,max=20,alphanum"`
	Email         string `validate:"required,email"`
	Phone         string `validate:"required,len=10,numeric"`
	Password      string `validate:"required,password"`
	FirstName     string `validate:"required,min=1,max=50,alphaspace"`
	LastName      string `validate:"required,min=1,max=50,alphaspace"`
	Gender        string `validate:"required,oneof=male female other"`
	DateOfBirth   string `validate:"required,datetime=2006-01-02"`
	Nationality   string `validate:"required,max=50"`
	State         string `validate:"required,max=100"`
	City          string `validate:"required,max=100"`
	Address       string `validate:"required,max=255"`
	EmailVerified bool
	PhoneVerified bool

	// IdempotencyKey comes from the Idempotency-Key header; empty disables
	// the replay guard.
	IdempotencyKey string
}

type SignupOutput struct {
	UserID    int64
	Username  string
	SessionID string
	ExpiresAt time.Time
}

func (s *Usecase) Signup(ctx context.Context, in SignupInput) (*SignupOutput, error) {
	ctx, span := s.startSpan(ctx, "Signup")
	defer span.End()

	in.Username = strings.TrimSpace(strings.ToLower(in.Username))
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	in.Phone = strings.TrimSpace(in.Phone)
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	if in.Nationality == "" {
		in.Nationality = "Indian"
	}

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	if in.IdempotencyKey == "" {
		return s.signup(ctx, in)
	}

	var out *SignupOutput
	err := s.idemp.Exec(ctx, "signup:"+in.IdempotencyKey, func(ctx context.Context) error {
		o, err := s.signup(ctx, in)
		out = o
		return err
	})

	switch {
	case errors.Is(err, idempotency.ErrAlreadyInProgress):
		return nil, goerror.NewBusiness("Signup request is already being processed", goerror.CodeConflict)
	case errors.Is(err, idempotency.ErrAlreadyCompleted):
		return nil, goerror.NewBusiness("Signup request was already processed", goerror.CodeConflict)
	case errors.Is(err, idempotency.ErrAlreadyFailed):
		return nil, goerror.NewBusiness("Previous signup attempt failed. Retry with a new Idempotency-Key.", goerror.CodeConflict)
	case err != nil:
		return nil, err
	}

	return out, nil
}

func (s *Usecase) signup(ctx context.Context, in SignupInput) (*SignupOutput, error) {
	if err := s.ensureUnique(ctx, in); err != nil {
		return nil, err
	}

	hashedPassword, err := s.bcrypt.Hash(in.Password)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash password", "error", err)
		return nil, goerror.NewServer(err)
	}

	user := entity.NewUser{
		ID:            s.uid.Generate(),
		Username:      in.Username,
		Email:         in.Email,
		Phone:         in.Phone,
		FirstName:     in.FirstName,
		LastName:      in.LastName,
		Gender:        in.Gender,
		DateOfBirth:   in.DateOfBirth,
		Nationality:   in.Nationality,
		State:         in.State,
		City:          in.City,
		Address:       in.Address,
		EmailVerified: in.EmailVerified,
		PhoneVerified: in.PhoneVerified,
	}

	sess := entity.Session{
		ID:        s.uid.Generate(),
		SessionID: s.sid.Generate(),
		UserID:    user.ID,
		ExpiresAt: s.clock.Now().Add(entity.SessionTTL),
	}

	if err := s.repoDB.NewSignup(ctx, user, sess, string(hashedPassword)); err != nil {
		if errors.Is(err, goerror.ErrConflict) {
			return nil, goerror.NewBusiness("Account already exists", goerror.CodeConflict)
		}
		slog.ErrorContext(ctx, "failed to repo signup", "username", user.Username, "error", err)
		return nil, goerror.NewServer(err)
	}

	if err := s.repoMessaging.PublishUserRegistered(ctx, UserRegisteredEvent{
		UserID:    user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to publish user registered", "user_id", user.ID, "error", err)
	}

	return &SignupOutput{
		UserID:    user.ID,
		Username:  user.Username,
		SessionID: sess.SessionID,
		ExpiresAt: sess.ExpiresAt,
	}, nil
}

func (s *Usecase) ensureUnique(ctx context.Context, in SignupInput) error {
	taken, err := s.repoDB.ExistsUserByUsername(ctx, in.Username)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo check username", "username", in.Username, "error", err)
		return goerror.NewServer(err)
	}
	if taken {
		return goerror.NewBusinessWrap(entity.ErrUsernameTaken, "Username already taken", goerror.CodeConflict)
	}

	taken, err = s.repoDB.ExistsUserByEmail(ctx, in.Email)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo check email", "email", in.Email, "error", err)
		return goerror.NewServer(err)
	}
	if taken {
		return goerror.NewBusinessWrap(entity.ErrEmailTaken, "Email already registered", goerror.CodeConflict)
	}

	taken, err = s.repoDB.ExistsUserByPhone(ctx, in.Phone)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo check phone", "phone", in.Phone, "error", err)
		return goerror.NewServer(err)
	}
	if taken {
		return goerror.NewBusinessWrap(entity.ErrPhoneTaken, "Phone already registered", goerror.CodeConflict)
	}

	return nil
}
