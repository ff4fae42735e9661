package usecase

import (
	"context"
	"time"

	"contact_backend/internal/feature/auth/domain"
	"contact_backend/internal/feature/auth/domain/entity"
)

// mockUserRepository is a function-field implementation of UserRepository.
// Unset functions fall back to "not found" or success.
type mockUserRepository struct {
	CreateFunc                func(ctx context.Context, user *entity.User) error
	FindByEmailFunc           func(ctx context.Context, email string) (*entity.User, error)
	FindByIDFunc              func(ctx context.Context, id uint) (*entity.User, error)
	EmailTakenFunc            func(ctx context.Context, email string, exceptID uint) (bool, error)
	UpdateFunc                func(ctx context.Context, user *entity.User) error
	DeactivateFunc            func(ctx context.Context, id uint) error
	FindDeactivatedBeforeFunc func(ctx context.Context, cutoff time.Time) ([]uint, error)
	HardDeleteFunc            func(ctx context.Context, id uint) error
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	user.ID = 1
	return nil
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, domain.ErrUserNotFound
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrUserNotFound
}

func (m *mockUserRepository) EmailTaken(ctx context.Context, email string, exceptID uint) (bool, error) {
	if m.EmailTakenFunc != nil {
		return m.EmailTakenFunc(ctx, email, exceptID)
	}
	return false, nil
}

func (m *mockUserRepository) Update(ctx context.Context, user *entity.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, user)
	}
	return nil
}

func (m *mockUserRepository) Deactivate(ctx context.Context, id uint) error {
	if m.DeactivateFunc != nil {
		return m.DeactivateFunc(ctx, id)
	}
	return nil
}

func (m *mockUserRepository) FindDeactivatedBefore(ctx context.Context, cutoff time.Time) ([]uint, error) {
	if m.FindDeactivatedBeforeFunc != nil {
		return m.FindDeactivatedBeforeFunc(ctx, cutoff)
	}
	return nil, nil
}

func (m *mockUserRepository) HardDelete(ctx context.Context, id uint) error {
	if m.HardDeleteFunc != nil {
		return m.HardDeleteFunc(ctx, id)
	}
	return nil
}

// mockRevocationStore records revoked entries in memory.
type mockRevocationStore struct {
	entries           []*entity.RevokedToken
	RevokeFunc        func(ctx context.Context, entry *entity.RevokedToken) error
	IsRevokedFunc     func(ctx context.Context, token string) (bool, error)
	DeleteExpiredFunc func(ctx context.Context) (int64, error)
}

func (m *mockRevocationStore) Revoke(ctx context.Context, entry *entity.RevokedToken) error {
	if m.RevokeFunc != nil {
		return m.RevokeFunc(ctx, entry)
	}
	m.entries = append(m.entries, entry)
	return nil
}

func (m *mockRevocationStore) IsRevoked(ctx context.Context, token string) (bool, error) {
	if m.IsRevokedFunc != nil {
		return m.IsRevokedFunc(ctx, token)
	}
	hash := entity.HashToken(token)
	for _, e := range m.entries {
		if e.TokenHash == hash {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockRevocationStore) DeleteExpired(ctx context.Context) (int64, error) {
	if m.DeleteExpiredFunc != nil {
		return m.DeleteExpiredFunc(ctx)
	}
	return 0, nil
}

type mockContactStore struct {
	CountByOwnerFunc  func(ctx context.Context, userID uint) (int64, error)
	DeleteByOwnerFunc func(ctx context.Context, userID uint) (int64, error)
}

func (m *mockContactStore) CountByOwner(ctx context.Context, userID uint) (int64, error) {
	if m.CountByOwnerFunc != nil {
		return m.CountByOwnerFunc(ctx, userID)
	}
	return 0, nil
}

func (m *mockContactStore) DeleteByOwner(ctx context.Context, userID uint) (int64, error) {
	if m.DeleteByOwnerFunc != nil {
		return m.DeleteByOwnerFunc(ctx, userID)
	}
	return 0, nil
}

type mockTokenIssuer struct {
	GenerateTokenFunc func(userID uint) (string, time.Time, error)
}

func (m *mockTokenIssuer) GenerateToken(userID uint) (string, time.Time, error) {
	if m.GenerateTokenFunc != nil {
		return m.GenerateTokenFunc(userID)
	}
	return "mock-jwt-token", time.Now().Add(time.Hour), nil
}

type mockTokenVerifier struct {
	ParseTokenFunc func(token string) (*entity.TokenClaims, error)
}

func (m *mockTokenVerifier) ParseToken(token string) (*entity.TokenClaims, error) {
	return m.ParseTokenFunc(token)
}

// fakeHasher prefixes the plaintext; it keeps tests fast and deterministic.
type fakeHasher struct {
	verifyCalls int
	HashFunc    func(plaintext string) (string, error)
}

func (f *fakeHasher) Hash(plaintext string) (string, error) {
	if f.HashFunc != nil {
		return f.HashFunc(plaintext)
	}
	return "hashed:" + plaintext, nil
}

func (f *fakeHasher) Verify(plaintext, digest string) bool {
	f.verifyCalls++
	return digest != "" && digest == "hashed:"+plaintext
}
