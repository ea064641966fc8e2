package model

import "time"

// Event is a community event or campaign a donation can be attributed to.
type Event struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Date        time.Time `gorm:"index;not null" json:"date"`
	Location    string    `gorm:"size:255" json:"location"`
	ImageURL    string    `gorm:"size:512" json:"image_url,omitempty"`
	IsHighlight bool      `gorm:"not null;default:false" json:"is_highlight"`
	CreatedAt   time.Time `json:"created_at"`
}

// Partner is an organisation shown on the public partners page.
type Partner struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Website   string    `gorm:"size:512" json:"website,omitempty"`
	LogoURL   string    `gorm:"size:512" json:"logo_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type VolunteerProfile struct {
	ID           uint   `gorm:"primaryKey"`
	FullName     string `gorm:"size:255;not null"`
	Email        string `gorm:"size:255;index;not null"`
	Phone        string `gorm:"size:32"`
	Availability string `gorm:"size:255"`
	Message      string `gorm:"type:text"`
	CreatedAt    time.Time
}

type ContactMessage struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:255;not null"`
	Email     string `gorm:"size:255;index;not null"`
	Subject   string `gorm:"size:255"`
	Message   string `gorm:"type:text;not null"`
	CreatedAt time.Time
}

type PartnershipType string

const (
	PartnershipSponsorship PartnershipType = "sponsorship"
	PartnershipInKind      PartnershipType = "in_kind"
	PartnershipVolunteer   PartnershipType = "volunteer"
	PartnershipOther       PartnershipType = "other"
)

var partnershipLabels = map[PartnershipType]string{
	PartnershipSponsorship: "Sponsorship",
	PartnershipInKind:      "In-Kind Donation",
	PartnershipVolunteer:   "Volunteer Group",
	PartnershipOther:       "Other",
}

func (p PartnershipType) Label() string {
	if label, ok := partnershipLabels[p]; ok {
		return label
	}
	return string(p)
}

type PartnerInquiry struct {
	ID               uint            `gorm:"primaryKey"`
	OrganizationName string          `gorm:"size:255;not null"`
	ContactName      string          `gorm:"size:255;not null"`
	Email            string          `gorm:"size:255;index;not null"`
	Phone            string          `gorm:"size:32"`
	Website          string          `gorm:"size:512"`
	PartnershipType  PartnershipType `gorm:"size:32;not null"`
	Message          string          `gorm:"type:text"`
	CreatedAt        time.Time
}

type NewsletterSubscriber struct {
	ID        uint   `gorm:"primaryKey"`
	Email     string `gorm:"size:255;uniqueIndex;not null"`
	CreatedAt time.Time
}
