package auth_test

import (
	"errors"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	"github.com/frahmantamala/payroll-engine/internal/auth"
)

func TestAuthService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Auth Service Suite")
}

// Mock repository for testing
type mockAuthRepository struct {
	passwordsByEmail map[string]string
	userIDsByEmail   map[string]string
	users            map[int64]*auth.User
	lookupError      error
}

func newMockAuthRepository() *mockAuthRepository {
	return &mockAuthRepository{
		passwordsByEmail: make(map[string]string),
		userIDsByEmail:   make(map[string]string),
		users:            make(map[int64]*auth.User),
	}
}

func (m *mockAuthRepository) GetPasswordForEmail(email string) (string, string, error) {
	if m.lookupError != nil {
		return "", "", m.lookupError
	}
	hash, exists := m.passwordsByEmail[email]
	if !exists {
		return "", "", errors.New("user not found")
	}
	return hash, m.userIDsByEmail[email], nil
}

func (m *mockAuthRepository) GetUserWithPermissions(userID int64) (*auth.User, error) {
	user, exists := m.users[userID]
	if !exists {
		return nil, errors.New("user not found")
	}
	return user, nil
}

const (
	testAccessSecret  = "test-access-secret-for-specs-only-000000"
	testRefreshSecret = "test-refresh-secret-for-specs-only-0000"
)

var _ = Describe("AuthService", func() {
	var (
		service *auth.Service
		repo    *mockAuthRepository
	)

	BeforeEach(func() {
		repo = newMockAuthRepository()
		tokenGen := auth.NewJWTTokenGenerator(testAccessSecret, testRefreshSecret, 15*time.Minute, 168*time.Hour)
		service = auth.NewService(repo, tokenGen, bcrypt.MinCost)

		hash, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.MinCost)
		Expect(err).ToNot(HaveOccurred())
		repo.passwordsByEmail["admin@mail.com"] = string(hash)
		repo.userIDsByEmail["admin@mail.com"] = "1"
	})

	Describe("Authenticate", func() {
		It("should issue tokens for valid credentials", func() {
			tokens, err := service.Authenticate(auth.LoginDTO{
				Email:    "admin@mail.com",
				Password: "correct-password",
			})

			Expect(err).ToNot(HaveOccurred())
			Expect(tokens.AccessToken).ToNot(BeEmpty())
			Expect(tokens.RefreshToken).ToNot(BeEmpty())
			Expect(tokens.AccessToken).ToNot(Equal(tokens.RefreshToken))
		})

		It("should reject a wrong password", func() {
			_, err := service.Authenticate(auth.LoginDTO{
				Email:    "admin@mail.com",
				Password: "wrong-password",
			})

			Expect(err).To(MatchError(auth.ErrInvalidCredentials))
		})

		It("should reject an unknown email with the same error", func() {
			_, err := service.Authenticate(auth.LoginDTO{
				Email:    "nobody@mail.com",
				Password: "correct-password",
			})

			Expect(err).To(MatchError(auth.ErrInvalidCredentials))
		})

		It("should reject an empty login", func() {
			_, err := service.Authenticate(auth.LoginDTO{})
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("token round trip", func() {
		It("should validate an access token it just issued", func() {
			tokens, err := service.Authenticate(auth.LoginDTO{
				Email:    "admin@mail.com",
				Password: "correct-password",
			})
			Expect(err).ToNot(HaveOccurred())

			claims, err := service.ValidateAccessToken(tokens.AccessToken)
			Expect(err).ToNot(HaveOccurred())
			Expect(claims.UserID).To(Equal("1"))
			Expect(claims.Email).To(Equal("admin@mail.com"))
		})

		It("should reject garbage tokens", func() {
			_, err := service.ValidateAccessToken("not.a.token")
			Expect(err).To(MatchError(auth.ErrInvalidToken))
		})

		It("should reject a token signed with a different secret", func() {
			otherGen := auth.NewJWTTokenGenerator("a-completely-different-secret-000000000", testRefreshSecret, 15*time.Minute, 168*time.Hour)
			token, err := otherGen.GenerateAccessToken("1", "admin@mail.com")
			Expect(err).ToNot(HaveOccurred())

			_, err = service.ValidateAccessToken(token)
			Expect(err).To(MatchError(auth.ErrInvalidToken))
		})
	})

	Describe("RefreshTokens", func() {
		It("should issue a fresh pair from a valid refresh token", func() {
			tokens, err := service.Authenticate(auth.LoginDTO{
				Email:    "admin@mail.com",
				Password: "correct-password",
			})
			Expect(err).ToNot(HaveOccurred())

			refreshed, err := service.RefreshTokens(tokens.RefreshToken)
			Expect(err).ToNot(HaveOccurred())
			Expect(refreshed.AccessToken).ToNot(BeEmpty())
			Expect(refreshed.RefreshToken).ToNot(BeEmpty())
		})

		It("should reject an invalid refresh token", func() {
			_, err := service.RefreshTokens("bogus")
			Expect(err).To(MatchError(auth.ErrInvalidToken))
		})
	})

	Describe("HashPassword", func() {
		It("should produce a hash that verifies against the password", func() {
			hash, err := service.HashPassword("new-password")
			Expect(err).ToNot(HaveOccurred())
			Expect(auth.VerifyPassword(hash, "new-password")).To(Succeed())
			Expect(auth.VerifyPassword(hash, "other-password")).To(HaveOccurred())
		})
	})
})

var _ = Describe("User permissions", func() {
	newUser := func(perms ...string) *auth.User {
		return &auth.User{ID: 1, Email: "someone@mail.com", Permissions: perms}
	}

	It("should grant payroll processing to holders of the permission", func() {
		Expect(newUser(auth.PermissionProcessPayroll).CanProcessPayroll()).To(BeTrue())
		Expect(newUser(auth.PermissionExportPayroll).CanProcessPayroll()).To(BeFalse())
	})

	It("should let admin pass every check", func() {
		admin := newUser(auth.PermissionAdmin)
		Expect(admin.CanProcessPayroll()).To(BeTrue())
		Expect(admin.CanExportPayroll()).To(BeTrue())
		Expect(admin.IsAdmin()).To(BeTrue())
	})

	It("should deny a user with no permissions", func() {
		user := newUser()
		Expect(user.CanProcessPayroll()).To(BeFalse())
		Expect(user.CanExportPayroll()).To(BeFalse())
		Expect(user.IsAdmin()).To(BeFalse())
	})
})
