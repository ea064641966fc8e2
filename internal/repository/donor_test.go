package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"donation-backend/internal/model"
	"donation-backend/internal/testutil"
)

func TestDonorUpsertLastWriteWins(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	repo := NewDonorRepository(db)

	first, err := repo.Upsert(ctx, db, &model.Donor{Email: "a@x.com", FirstName: "Jane", LastName: "Doe", Phone: "555-0100"})
	require.NoError(t, err)

	second, err := repo.Upsert(ctx, db, &model.Donor{Email: "a@x.com", FirstName: "Madonna"})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Madonna", second.FirstName)
	assert.Equal(t, "", second.LastName)
	assert.Equal(t, "555-0100", second.Phone)

	var count int64
	require.NoError(t, db.Model(&model.Donor{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestDonorEmailIsCaseSensitive(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	repo := NewDonorRepository(db)

	lower, err := repo.Upsert(ctx, db, &model.Donor{Email: "a@x.com"})
	require.NoError(t, err)
	upper, err := repo.Upsert(ctx, db, &model.Donor{Email: "A@x.com"})
	require.NoError(t, err)

	assert.NotEqual(t, lower.ID, upper.ID)

	found, err := repo.FindByEmail(ctx, "A@x.com")
	require.NoError(t, err)
	assert.Equal(t, upper.ID, found.ID)
}
