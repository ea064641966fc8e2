package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"donation-backend/internal/model"
	"donation-backend/internal/testutil"
)

func newDonation(reference string, status model.DonationStatus) *model.Donation {
	return &model.Donation{
		ID:                   uuid.NewString(),
		Amount:               5000,
		Currency:             "USD",
		Status:               status,
		Processor:            model.ProcessorStripe,
		ProcessorReferenceID: reference,
	}
}

func TestDonationCreateIfAbsent(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	repo := NewDonationRepository(db)

	created, err := repo.CreateIfAbsent(ctx, db, newDonation("in_1", model.DonationStatusSucceeded))
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.CreateIfAbsent(ctx, db, newDonation("in_1", model.DonationStatusSucceeded))
	require.NoError(t, err)
	assert.False(t, created)

	count, err := repo.CountByReference(ctx, model.ProcessorStripe, "in_1")
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestDonationUniquePerProcessorReference(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	repo := NewDonationRepository(db)

	require.NoError(t, repo.Create(ctx, db, newDonation("cs_test_1", model.DonationStatusPending)))
	assert.Error(t, repo.Create(ctx, db, newDonation("cs_test_1", model.DonationStatusPending)))

	other := newDonation("cs_test_1", model.DonationStatusPending)
	other.Processor = "other"
	assert.NoError(t, repo.Create(ctx, db, other))
}

func TestDonationTransition(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	repo := NewDonationRepository(db)
	donors := NewDonorRepository(db)

	donation := newDonation("cs_test_1", model.DonationStatusPending)
	require.NoError(t, repo.Create(ctx, db, donation))

	donor, err := donors.Upsert(ctx, db, &model.Donor{Email: "a@x.com", FirstName: "Jane", LastName: "Doe"})
	require.NoError(t, err)

	require.NoError(t, repo.Transition(ctx, db, donation.ID, model.DonationStatusPending, model.DonationStatusSucceeded, &donor.ID))

	stored, err := repo.FindByReference(ctx, db, model.ProcessorStripe, "cs_test_1")
	require.NoError(t, err)
	assert.Equal(t, model.DonationStatusSucceeded, stored.Status)
	require.NotNil(t, stored.DonorID)
	assert.Equal(t, donor.ID, *stored.DonorID)

	err = repo.Transition(ctx, db, donation.ID, model.DonationStatusPending, model.DonationStatusSucceeded, nil)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDonationFindByReferenceMissing(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewDonationRepository(db)

	_, err := repo.FindByReference(context.Background(), db, model.ProcessorStripe, "cs_missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
