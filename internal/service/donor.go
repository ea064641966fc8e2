package service

import (
	"context"
	"donation-backend/internal/model"
	"donation-backend/internal/repository"
	"fmt"
	"strings"
	"unicode"

	"gorm.io/gorm"
)

// DonorIdentity is the payer information a processor reports with a payment.
type DonorIdentity struct {
	Email string
	Name  string
	Phone string
}

type DonorResolver interface {
	// Resolve returns the canonical donor for identity, or nil for an anonymous payment.
	Resolve(ctx context.Context, tx *gorm.DB, identity DonorIdentity) (*model.Donor, error)
}

type donorResolverImpl struct {
	donorRepo repository.DonorRepository
}

func NewDonorResolver(donorRepo repository.DonorRepository) DonorResolver {
	return &donorResolverImpl{
		donorRepo: donorRepo,
	}
}

func (r *donorResolverImpl) Resolve(ctx context.Context, tx *gorm.DB, identity DonorIdentity) (*model.Donor, error) {
	if strings.TrimSpace(identity.Email) == "" {
		return nil, nil
	}

	firstName, lastName := SplitName(identity.Name)

	donor, err := r.donorRepo.Upsert(ctx, tx, &model.Donor{
		Email:     identity.Email,
		FirstName: firstName,
		LastName:  lastName,
		Phone:     identity.Phone,
	})
	if err != nil {
		return nil, fmt.Errorf("upsert donor: %w", err)
	}

	return donor, nil
}

// SplitName splits a display name at its first whitespace run.
// "Jane Doe" -> ("Jane", "Doe"), "Madonna" -> ("Madonna", "").
func SplitName(name string) (string, string) {
	name = strings.TrimSpace(name)

	idx := strings.IndexFunc(name, unicode.IsSpace)
	if idx < 0 {
		return name, ""
	}

	return name[:idx], strings.TrimLeftFunc(name[idx:], unicode.IsSpace)
}
