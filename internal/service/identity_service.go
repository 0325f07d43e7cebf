package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"

	"github.com/GulfDevInnovations/royal-academy/internal/apperrors"
	"github.com/GulfDevInnovations/royal-academy/internal/model"
	"github.com/GulfDevInnovations/royal-academy/internal/repository"
)

// Principal is the caller as asserted by the identity provider's token.
type Principal struct {
	Subject string
	Email   string
}

// AuthStatus is the answer to "who is calling and can they book".
type AuthStatus struct {
	Authenticated bool    `json:"authenticated"`
	StudentID     *string `json:"studentId"`
	NoProfile     bool    `json:"noProfile,omitempty"`
}

// PasswordHashCost is the bcrypt cost for passwords stored at registration.
const PasswordHashCost = 12

// Registration is the profile a new student fills in after signing up with the identity
// provider. Password is optional; the provider owns the credential.
type Registration struct {
	FirstName   string
	LastName    string
	Phone       string
	Password    string
	DateOfBirth *time.Time
	Gender      *model.Gender
}

// IdentityService links identity-provider principals to academy accounts.
type IdentityService struct {
	store    *repository.Store
	users    repository.UserRepository
	hashCost int
	now      func() time.Time
}

func NewIdentityService(store *repository.Store) *IdentityService {
	return &IdentityService{
		store:    store,
		users:    store.Users,
		hashCost: PasswordHashCost,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Check reports whether p is authenticated and which student profile it owns. A principal
// without an academy account or student profile is authenticated with NoProfile set.
// Deactivated accounts are Forbidden.
func (s *IdentityService) Check(ctx context.Context, p *Principal) (*AuthStatus, error) {
	if p == nil || (p.Email == "" && p.Subject == "") {
		return &AuthStatus{Authenticated: false}, nil
	}

	u, err := s.lookup(ctx, p)
	if errors.Is(err, repository.ErrNotFound) {
		return &AuthStatus{Authenticated: true, NoProfile: true}, nil
	}
	if err != nil {
		return nil, storeErr("auth check", err)
	}
	if !u.IsActive {
		return nil, apperrors.Forbidden("account is inactive")
	}
	if u.StudentProfile == nil {
		return &AuthStatus{Authenticated: true, NoProfile: true}, nil
	}

	id := u.StudentProfile.ID.String()
	return &AuthStatus{Authenticated: true, StudentID: &id}, nil
}

// StudentID returns the student profile id owned by p.
func (s *IdentityService) StudentID(ctx context.Context, p *Principal) (uuid.UUID, error) {
	st, err := s.Check(ctx, p)
	if err != nil {
		return uuid.Nil, err
	}
	if !st.Authenticated {
		return uuid.Nil, apperrors.New(apperrors.CodeUnauthenticated, "sign in to book")
	}
	if st.StudentID == nil {
		return uuid.Nil, apperrors.NotFound("no student profile for this account")
	}
	return uuid.MustParse(*st.StudentID), nil
}

// lookup finds the account by email first, then by subject when it is a uuid.
func (s *IdentityService) lookup(ctx context.Context, p *Principal) (*model.User, error) {
	if p.Email != "" {
		u, err := s.users.FindByEmail(ctx, p.Email)
		if err == nil || !errors.Is(err, repository.ErrNotFound) {
			return u, err
		}
	}
	id, err := uuid.Parse(p.Subject)
	if err != nil {
		return nil, repository.ErrNotFound
	}
	return s.users.FindByID(ctx, id)
}

// Register provisions the academy account for p: a STUDENT user keyed by the token subject
// plus its student profile, written in one transaction. The account stays unverified until
// MarkVerified. An existing account for the subject or email is a Conflict.
func (s *IdentityService) Register(ctx context.Context, p *Principal, r Registration) (*AuthStatus, error) {
	if p == nil || p.Subject == "" {
		return nil, apperrors.New(apperrors.CodeUnauthenticated, "sign in to register")
	}
	userID, err := uuid.Parse(p.Subject)
	if err != nil {
		return nil, apperrors.InvalidArgument("token subject must be a uuid")
	}
	email := repository.NormalizeEmail(p.Email)
	if email == "" {
		return nil, apperrors.InvalidArgument("token carries no email")
	}
	first, last := strings.TrimSpace(r.FirstName), strings.TrimSpace(r.LastName)
	if first == "" || last == "" {
		return nil, apperrors.InvalidArgument("first and last name are required")
	}

	var hash string
	if r.Password != "" {
		h, err := bcrypt.GenerateFromPassword([]byte(r.Password), s.hashCost)
		if err != nil {
			return nil, apperrors.InvalidArgument("password cannot be hashed")
		}
		hash = string(h)
	}

	profile := &model.StudentProfile{
		FirstName: first,
		LastName:  last,
		Gender:    r.Gender,
	}
	if r.DateOfBirth != nil {
		dob := datatypes.Date(*r.DateOfBirth)
		profile.DateOfBirth = &dob
	}
	u := &model.User{
		ID:             userID,
		Email:          email,
		Phone:          strings.TrimSpace(r.Phone),
		PasswordHash:   hash,
		Role:           model.RoleStudent,
		IsActive:       true,
		IsVerified:     false,
		StudentProfile: profile,
	}

	err = s.store.Transaction(ctx, func(tx *repository.Store) error {
		if _, err := tx.Users.FindByID(ctx, userID); err == nil {
			return apperrors.New(apperrors.CodeConflict, "account already exists")
		} else if !errors.Is(err, repository.ErrNotFound) {
			return storeErr("register: find user", err)
		}
		if _, err := tx.Users.FindByEmail(ctx, email); err == nil {
			return apperrors.New(apperrors.CodeConflict, "an account with this email already exists")
		} else if !errors.Is(err, repository.ErrNotFound) {
			return storeErr("register: find email", err)
		}
		return storeErr("register: create user", tx.Users.Create(ctx, u))
	})
	if err != nil {
		return nil, err
	}

	id := profile.ID.String()
	return &AuthStatus{Authenticated: true, StudentID: &id}, nil
}

// MarkVerified records that p confirmed their email: the account becomes verified and
// active.
func (s *IdentityService) MarkVerified(ctx context.Context, p *Principal) (*AuthStatus, error) {
	if p == nil || (p.Email == "" && p.Subject == "") {
		return nil, apperrors.New(apperrors.CodeUnauthenticated, "sign in to verify")
	}
	u, err := s.lookup(ctx, p)
	if err != nil {
		return nil, storeErr("mark verified", err)
	}
	if err := s.users.MarkVerified(ctx, u.ID, s.now()); err != nil {
		return nil, storeErr("mark verified", err)
	}
	return s.Check(ctx, p)
}
