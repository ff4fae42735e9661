package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contact_backend/internal/feature/contact/domain"
	"contact_backend/internal/feature/contact/domain/entity"
)

// memRepo is an in-memory ContactRepository.
type memRepo struct {
	nextID  uint
	rows    map[uint]entity.Contact
	updates int
}

func newMemRepo() *memRepo {
	return &memRepo{nextID: 1, rows: map[uint]entity.Contact{}}
}

func (m *memRepo) Create(_ context.Context, c *entity.Contact) error {
	c.ID = m.nextID
	m.nextID++
	m.rows[c.ID] = *c
	return nil
}

func (m *memRepo) FindByIDAndOwner(_ context.Context, id, ownerID uint) (*entity.Contact, error) {
	c, ok := m.rows[id]
	if !ok || c.UserID != ownerID {
		return nil, domain.ErrContactNotFound
	}
	return &c, nil
}

func (m *memRepo) ListByOwner(_ context.Context, ownerID uint) ([]entity.Contact, error) {
	out := []entity.Contact{}
	for id := uint(1); id < m.nextID; id++ {
		if c, ok := m.rows[id]; ok && c.UserID == ownerID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memRepo) Update(ctx context.Context, id, ownerID uint, patch entity.ContactPatch) (*entity.Contact, error) {
	c, err := m.FindByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	m.updates++
	patch.Apply(c)
	m.rows[id] = *c
	return c, nil
}

func (m *memRepo) DeleteByIDAndOwner(ctx context.Context, id, ownerID uint) error {
	if _, err := m.FindByIDAndOwner(ctx, id, ownerID); err != nil {
		return err
	}
	delete(m.rows, id)
	return nil
}

func strPtr(s string) *string { return &s }

func TestContactUsecase_Create(t *testing.T) {
	t.Run("owner comes from the caller", func(t *testing.T) {
		uc := NewContactUsecase(newMemRepo())

		c, err := uc.Create(context.Background(), 7, &entity.Contact{UserID: 99, Name: "Ko Ko", Phone: "0912345678", Email: strPtr("koko@gmail.com")})
		require.NoError(t, err)
		assert.Equal(t, uint(7), c.UserID)
		assert.NotZero(t, c.ID)
	})

	t.Run("round trip", func(t *testing.T) {
		uc := NewContactUsecase(newMemRepo())

		created, err := uc.Create(context.Background(), 1, &entity.Contact{Name: "Ko Ko", Phone: "0912345678", Email: strPtr("koko@gmail.com")})
		require.NoError(t, err)

		got, err := uc.Get(context.Background(), 1, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Ko Ko", got.Name)
		assert.Equal(t, "0912345678", got.Phone)
		assert.Equal(t, "koko@gmail.com", *got.Email)
	})

	tests := []struct {
		name    string
		contact entity.Contact
		wantErr error
	}{
		{"blank name", entity.Contact{Name: "  ", Phone: "0912345678"}, domain.ErrNameRequired},
		{"letters in phone", entity.Contact{Name: "A", Phone: "09-abc"}, domain.ErrInvalidPhone},
		{"empty phone", entity.Contact{Name: "A"}, domain.ErrInvalidPhone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.contact
			_, err := NewContactUsecase(newMemRepo()).Create(context.Background(), 1, &c)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestContactUsecase_OwnershipIsNotFound(t *testing.T) {
	repo := newMemRepo()
	uc := NewContactUsecase(repo)
	ctx := context.Background()

	c, err := uc.Create(ctx, 1, &entity.Contact{Name: "A's friend", Phone: "123456"})
	require.NoError(t, err)

	_, err = uc.Get(ctx, 2, c.ID)
	assert.ErrorIs(t, err, domain.ErrContactNotFound)

	_, err = uc.Update(ctx, 2, c.ID, entity.ContactPatch{Name: strPtr("mine now")})
	assert.ErrorIs(t, err, domain.ErrContactNotFound)

	assert.ErrorIs(t, uc.Delete(ctx, 2, c.ID), domain.ErrContactNotFound)

	list, err := uc.List(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, list)

	got, err := uc.Get(ctx, 1, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "A's friend", got.Name)
}

func TestContactUsecase_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("partial update keeps other fields", func(t *testing.T) {
		uc := NewContactUsecase(newMemRepo())
		c, err := uc.Create(ctx, 1, &entity.Contact{Name: "Ko Ko", Phone: "0912345678", Email: strPtr("koko@gmail.com")})
		require.NoError(t, err)

		updated, err := uc.Update(ctx, 1, c.ID, entity.ContactPatch{Phone: strPtr("+95912345678")})
		require.NoError(t, err)
		assert.Equal(t, "Ko Ko", updated.Name)
		assert.Equal(t, "+95912345678", updated.Phone)
		assert.Equal(t, "koko@gmail.com", *updated.Email)
	})

	t.Run("invalid phone", func(t *testing.T) {
		repo := newMemRepo()
		uc := NewContactUsecase(repo)
		c, err := uc.Create(ctx, 1, &entity.Contact{Name: "Ko Ko", Phone: "0912345678"})
		require.NoError(t, err)

		_, err = uc.Update(ctx, 1, c.ID, entity.ContactPatch{Phone: strPtr("call me")})
		assert.ErrorIs(t, err, domain.ErrInvalidPhone)
		assert.Zero(t, repo.updates)
	})

	t.Run("blank name", func(t *testing.T) {
		uc := NewContactUsecase(newMemRepo())
		c, err := uc.Create(ctx, 1, &entity.Contact{Name: "Ko Ko", Phone: "0912345678"})
		require.NoError(t, err)

		_, err = uc.Update(ctx, 1, c.ID, entity.ContactPatch{Name: strPtr("")})
		assert.ErrorIs(t, err, domain.ErrNameRequired)
	})

	t.Run("empty patch returns the current contact", func(t *testing.T) {
		repo := newMemRepo()
		uc := NewContactUsecase(repo)
		c, err := uc.Create(ctx, 1, &entity.Contact{Name: "Ko Ko", Phone: "0912345678"})
		require.NoError(t, err)

		got, err := uc.Update(ctx, 1, c.ID, entity.ContactPatch{})
		require.NoError(t, err)
		assert.Equal(t, "Ko Ko", got.Name)
		assert.Zero(t, repo.updates)
	})
}

func TestContactUsecase_Delete(t *testing.T) {
	ctx := context.Background()
	uc := NewContactUsecase(newMemRepo())
	c, err := uc.Create(ctx, 1, &entity.Contact{Name: "Ko Ko", Phone: "0912345678"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, 1, c.ID))
	_, err = uc.Get(ctx, 1, c.ID)
	assert.ErrorIs(t, err, domain.ErrContactNotFound)
}
