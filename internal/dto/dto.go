package dto

type CheckoutRequest struct {
	Amount    int64  `json:"amount" validate:"required,gt=0"` // minor currency unit
	Email     string `json:"email" validate:"omitempty,email"`
	Name      string `json:"name" validate:"omitempty,max=255"`
	Recurring bool   `json:"recurring"`
	EventID   *uint  `json:"event_id"`
}

type CheckoutResponse struct {
	SessionID string `json:"session_id"`
	URL       string `json:"url"`
}

type VolunteerSignupRequest struct {
	FullName     string `json:"full_name" validate:"required,max=255"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"omitempty,max=32"`
	Availability string `json:"availability" validate:"omitempty,max=255"`
	Message      string `json:"message"`
}

type ContactRequest struct {
	Name    string `json:"name" validate:"required,max=255"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"omitempty,max=255"`
	Message string `json:"message" validate:"required"`
}

type PartnerInquiryRequest struct {
	OrganizationName string `json:"organization_name" validate:"required,max=255"`
	ContactName      string `json:"contact_name" validate:"required,max=255"`
	Email            string `json:"email" validate:"required,email"`
	Phone            string `json:"phone" validate:"omitempty,max=32"`
	Website          string `json:"website" validate:"omitempty,url"`
	PartnershipType  string `json:"partnership_type" validate:"required,oneof=sponsorship in_kind volunteer other"`
	Message          string `json:"message"`
}

type NewsletterRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
