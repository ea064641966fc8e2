package model

import "time"

type DonationStatus string

const (
	DonationStatusPending   DonationStatus = "pending"
	DonationStatusSucceeded DonationStatus = "succeeded"
	DonationStatusFailed    DonationStatus = "failed"
)

const ProcessorStripe = "stripe"

type Donation struct {
	ID                   string         `gorm:"primaryKey;size:36;not null"`
	Amount               int64          `gorm:"not null"` // minor currency unit
	Currency             string         `gorm:"size:8;not null"`
	Status               DonationStatus `gorm:"size:16;index;not null"`
	Processor            string         `gorm:"size:32;not null;uniqueIndex:ux_donations_processor_reference,priority:1"`
	ProcessorReferenceID string         `gorm:"size:255;not null;uniqueIndex:ux_donations_processor_reference,priority:2"` // session or invoice id
	Recurring            bool           `gorm:"not null;default:false"`
	SubscriptionID       string         `gorm:"size:255;index"`

	DonorID *uint `gorm:"index"`
	Donor   *Donor
	EventID *uint `gorm:"index"`
	Event   *Event

	CreatedAt time.Time
	UpdatedAt time.Time
}

type Donor struct {
	ID        uint   `gorm:"primaryKey"`
	Email     string `gorm:"size:255;uniqueIndex;not null"`
	FirstName string `gorm:"size:128;not null;default:''"`
	LastName  string `gorm:"size:128;not null;default:''"`
	Phone     string `gorm:"size:32"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type SubscriptionStatus string

const (
	SubscriptionStatusActive    SubscriptionStatus = "active"
	SubscriptionStatusCancelled SubscriptionStatus = "cancelled"
)

// RecurringSubscription tracks a processor subscription behind recurring donations.
type RecurringSubscription struct {
	SubscriptionID string             `gorm:"primaryKey;size:255;not null"`
	CustomerID     string             `gorm:"size:255;index"`
	Status         SubscriptionStatus `gorm:"size:16;index;not null"`
	Amount         int64              // minor currency unit of the first paid invoice
	Currency       string             `gorm:"size:8"`

	DonorID *uint `gorm:"index"`
	Donor   *Donor

	CancelledAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type WebhookEvent struct {
	EventID     string `gorm:"primaryKey;size:128;not null"`
	EventType   string `gorm:"size:64;index"`
	ProcessedAt time.Time
	CreatedAt   time.Time
}

// Models lists every table owned by the service, in migration order.
func Models() []any {
	return []any{
		&Event{},
		&Partner{},
		&Donor{},
		&Donation{},
		&RecurringSubscription{},
		&WebhookEvent{},
		&VolunteerProfile{},
		&ContactMessage{},
		&PartnerInquiry{},
		&NewsletterSubscriber{},
	}
}
