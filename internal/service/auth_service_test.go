package service

import (
	"errors"
	"testing"

	"connection_monitor/internal/models"

	"golang.org/x/crypto/bcrypt"
)

// authRepoStub satisfies repository.Authorization.
type authRepoStub struct {
	createID  int
	createErr error
	user      *models.User
	getErr    error

	lastCreateUsername string
	lastCreateHash     string
}

func (s *authRepoStub) Create(username, hash string) (int, error) {
	s.lastCreateUsername = username
	s.lastCreateHash = hash
	return s.createID, s.createErr
}

func (s *authRepoStub) GetByUsername(username string) (*models.User, error) {
	return s.user, s.getErr
}

const testSigningKey = "test-signing-key"

func TestAuthService_SignUp(t *testing.T) {
	t.Parallel()

	t.Run("hashes password before storing", func(t *testing.T) {
		t.Parallel()
		repo := &authRepoStub{createID: 42}
		svc := NewAuthService(repo, testSigningKey)

		id, err := svc.SignUp("alice", "s3cret")
		if err != nil {
			t.Fatalf("SignUp: %v", err)
		}
		if id != 42 {
			t.Fatalf("id: want 42, got %d", id)
		}
		if repo.lastCreateHash == "s3cret" || repo.lastCreateHash == "" {
			t.Fatalf("password must be stored hashed, got %q", repo.lastCreateHash)
		}
		if err := bcrypt.CompareHashAndPassword([]byte(repo.lastCreateHash), []byte("s3cret")); err != nil {
			t.Fatalf("stored hash does not verify: %v", err)
		}
	})

	t.Run("rejects empty password", func(t *testing.T) {
		t.Parallel()
		svc := NewAuthService(&authRepoStub{}, testSigningKey)
		if _, err := svc.SignUp("alice", "   "); err == nil {
			t.Fatal("expected error for blank password")
		}
	})
}

func TestAuthService_GenerateAndParseToken(t *testing.T) {
	t.Parallel()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	repo := &authRepoStub{user: &models.User{ID: 7, Username: "alice", PasswordHash: string(hash)}}
	svc := NewAuthService(repo, testSigningKey)

	token, err := svc.GenerateToken("alice", "s3cret")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if token == "" {
		t.Fatal("empty token")
	}

	userID, err := svc.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if userID != 7 {
		t.Fatalf("userID: want 7, got %d", userID)
	}
}

func TestAuthService_GenerateToken_Errors(t *testing.T) {
	t.Parallel()

	hash, _ := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)

	cases := []struct {
		name     string
		repo     *authRepoStub
		password string
		wantErr  error
	}{
		{
			name:     "unknown user",
			repo:     &authRepoStub{user: nil},
			password: "s3cret",
			wantErr:  ErrUserNotFound,
		},
		{
			name:     "wrong password",
			repo:     &authRepoStub{user: &models.User{ID: 7, PasswordHash: string(hash)}},
			password: "wrong",
			wantErr:  ErrInvalidPassword,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			svc := NewAuthService(tc.repo, testSigningKey)
			if _, err := svc.GenerateToken("alice", tc.password); !errors.Is(err, tc.wantErr) {
				t.Fatalf("want %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestAuthService_ParseToken_RejectsForeignKey(t *testing.T) {
	t.Parallel()

	issuer := NewAuthService(&authRepoStub{}, "key-one")
	token, err := issuer.issueToken(7)
	if err != nil {
		t.Fatalf("issueToken: %v", err)
	}

	verifier := NewAuthService(&authRepoStub{}, "key-two")
	if _, err := verifier.ParseToken(token); err == nil {
		t.Fatal("token signed with another key must not parse")
	}
}
