package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/GulfDevInnovations/royal-academy/internal/apperrors"
	"github.com/GulfDevInnovations/royal-academy/internal/calendar"
	"github.com/GulfDevInnovations/royal-academy/internal/model"
	"github.com/GulfDevInnovations/royal-academy/internal/testutil"
)

func TestIdentityService_Check(t *testing.T) {
	a := testutil.NewAcademy(t)
	ids := NewIdentityService(a.Store)
	ctx := context.Background()

	t.Run("anonymous", func(t *testing.T) {
		st, err := ids.Check(ctx, nil)
		if err != nil {
			t.Fatalf("Check: %v", err)
		}
		if st.Authenticated || st.StudentID != nil {
			t.Fatalf("unexpected status: %+v", st)
		}
	})

	t.Run("student by email", func(t *testing.T) {
		st, err := ids.Check(ctx, &Principal{Subject: "idp|123", Email: "  Fatima@Example.com "})
		if err != nil {
			t.Fatalf("Check: %v", err)
		}
		if !st.Authenticated || st.StudentID == nil || *st.StudentID != a.Student.ID.String() {
			t.Fatalf("unexpected status: %+v", st)
		}
	})

	t.Run("student by subject", func(t *testing.T) {
		st, err := ids.Check(ctx, &Principal{Subject: a.StudentUser.ID.String()})
		if err != nil {
			t.Fatalf("Check: %v", err)
		}
		if st.StudentID == nil || *st.StudentID != a.Student.ID.String() {
			t.Fatalf("unexpected status: %+v", st)
		}
	})

	t.Run("teacher has no student profile", func(t *testing.T) {
		st, err := ids.Check(ctx, &Principal{Email: "sara@royalacademy.om"})
		if err != nil {
			t.Fatalf("Check: %v", err)
		}
		if !st.Authenticated || !st.NoProfile || st.StudentID != nil {
			t.Fatalf("unexpected status: %+v", st)
		}
	})

	t.Run("unknown account", func(t *testing.T) {
		st, err := ids.Check(ctx, &Principal{Subject: uuid.NewString(), Email: "nobody@example.com"})
		if err != nil {
			t.Fatalf("Check: %v", err)
		}
		if !st.Authenticated || !st.NoProfile {
			t.Fatalf("unexpected status: %+v", st)
		}
	})
}

func TestIdentityService_InactiveAccount(t *testing.T) {
	a := testutil.NewAcademy(t)
	if err := a.DB.Model(&model.User{}).Where("id = ?", a.StudentUser.ID).Update("is_active", false).Error; err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	_, err := NewIdentityService(a.Store).Check(context.Background(), &Principal{Email: "fatima@example.com"})
	if !errors.Is(err, apperrors.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestIdentityService_StudentID(t *testing.T) {
	a := testutil.NewAcademy(t)
	ids := NewIdentityService(a.Store)
	ctx := context.Background()

	id, err := ids.StudentID(ctx, &Principal{Email: "fatima@example.com"})
	if err != nil {
		t.Fatalf("StudentID: %v", err)
	}
	if id != a.Student.ID {
		t.Fatalf("StudentID = %s, want %s", id, a.Student.ID)
	}

	if _, err := ids.StudentID(ctx, &Principal{}); !errors.Is(err, apperrors.ErrUnauthenticated) {
		t.Fatalf("anonymous: expected unauthenticated, got %v", err)
	}
	if _, err := ids.StudentID(ctx, &Principal{Email: "sara@royalacademy.om"}); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("teacher: expected not found, got %v", err)
	}
}

func TestIdentityService_Register(t *testing.T) {
	a := testutil.NewAcademy(t)
	ids := NewIdentityService(a.Store)
	ids.hashCost = bcrypt.MinCost
	ctx := context.Background()

	subject := uuid.New()
	dob := time.Date(2012, 5, 14, 0, 0, 0, 0, time.UTC)
	gender := model.GenderFemale
	p := &Principal{Subject: subject.String(), Email: " Layla@Example.com"}

	st, err := ids.Register(ctx, p, Registration{
		FirstName:   " Layla ",
		LastName:    "Al-Harthy",
		Phone:       "+968 9000 0000",
		Password:    "Layla@1234",
		DateOfBirth: &dob,
		Gender:      &gender,
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if !st.Authenticated || st.StudentID == nil {
		t.Fatalf("unexpected status: %+v", st)
	}

	u, err := a.Store.Users.FindByID(ctx, subject)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if u.Email != "layla@example.com" || u.Role != model.RoleStudent || !u.IsActive || u.IsVerified || u.EmailVerifiedAt != nil {
		t.Fatalf("unexpected user: %+v", u)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("Layla@1234")); err != nil {
		t.Fatalf("password hash does not match: %v", err)
	}
	if u.StudentProfile == nil || u.StudentProfile.ID.String() != *st.StudentID || u.StudentProfile.FirstName != "Layla" {
		t.Fatalf("unexpected profile: %+v", u.StudentProfile)
	}
	if u.StudentProfile.DateOfBirth == nil || calendar.FormatDate(time.Time(*u.StudentProfile.DateOfBirth)) != "2012-05-14" {
		t.Fatalf("date of birth not stored: %v", u.StudentProfile.DateOfBirth)
	}

	id, err := ids.StudentID(ctx, p)
	if err != nil || id.String() != *st.StudentID {
		t.Fatalf("StudentID = %s, %v", id, err)
	}
}

func TestIdentityService_RegisterRejects(t *testing.T) {
	a := testutil.NewAcademy(t)
	ids := NewIdentityService(a.Store)
	ids.hashCost = bcrypt.MinCost
	ctx := context.Background()
	profile := Registration{FirstName: "Layla", LastName: "Al-Harthy"}

	cases := []struct {
		name    string
		p       *Principal
		profile Registration
		want    error
	}{
		{name: "anonymous", p: nil, profile: profile, want: apperrors.ErrUnauthenticated},
		{name: "subject not a uuid", p: &Principal{Subject: "idp|123", Email: "layla@example.com"}, profile: profile, want: apperrors.ErrInvalidArgument},
		{name: "no email", p: &Principal{Subject: uuid.NewString()}, profile: profile, want: apperrors.ErrInvalidArgument},
		{name: "blank name", p: &Principal{Subject: uuid.NewString(), Email: "layla@example.com"}, profile: Registration{FirstName: " ", LastName: "X"}, want: apperrors.ErrInvalidArgument},
		{name: "existing subject", p: &Principal{Subject: a.StudentUser.ID.String(), Email: "new@example.com"}, profile: profile, want: apperrors.ErrConflict},
		{name: "existing email", p: &Principal{Subject: uuid.NewString(), Email: "FATIMA@example.com"}, profile: profile, want: apperrors.ErrConflict},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ids.Register(ctx, tc.p, tc.profile); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
	if n := a.Count(t, &model.StudentProfile{}, ""); n != 1 {
		t.Fatalf("student profiles = %d, want 1", n)
	}
}

func TestIdentityService_MarkVerified(t *testing.T) {
	a := testutil.NewAcademy(t)
	ids := NewIdentityService(a.Store)
	ids.hashCost = bcrypt.MinCost
	at := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	ids.now = func() time.Time { return at }
	ctx := context.Background()

	subject := uuid.New()
	p := &Principal{Subject: subject.String(), Email: "layla@example.com"}
	if _, err := ids.Register(ctx, p, Registration{FirstName: "Layla", LastName: "Al-Harthy"}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := a.DB.Model(&model.User{}).Where("id = ?", subject).Update("is_active", false).Error; err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	st, err := ids.MarkVerified(ctx, p)
	if err != nil {
		t.Fatalf("MarkVerified: %v", err)
	}
	if !st.Authenticated || st.StudentID == nil {
		t.Fatalf("unexpected status: %+v", st)
	}

	u, err := a.Store.Users.FindByID(ctx, subject)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if !u.IsVerified || !u.IsActive || u.EmailVerifiedAt == nil || !u.EmailVerifiedAt.Equal(at) {
		t.Fatalf("unexpected user: verified=%v active=%v at=%v", u.IsVerified, u.IsActive, u.EmailVerifiedAt)
	}

	if _, err := ids.MarkVerified(ctx, &Principal{Subject: uuid.NewString(), Email: "nobody@example.com"}); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("unknown account: expected not found, got %v", err)
	}
	if _, err := ids.MarkVerified(ctx, nil); !errors.Is(err, apperrors.ErrUnauthenticated) {
		t.Fatalf("anonymous: expected unauthenticated, got %v", err)
	}
}
