package ports

import "github.com/lifelink/lifelink-api/internal/core/domain"

// DonorFilter narrows the donor registry. Empty fields match everything.
type DonorFilter struct {
	BloodType string
	Location  string
}

// ViewContent is the payload rendered for the session's current view.
type ViewContent struct {
	View domain.View
	Kind string
	Data any
}

type DirectoryService interface {
	Centers(query string) []domain.Center
	Doctors(query, specialty string) []domain.Doctor
	Specialties() []string
	Donors(filter DonorFilter) []domain.Account
	Overview() domain.Overview
	BookAppointment(accountID, doctorID string) (domain.Booking, error)
	ViewContent(state domain.SessionState) (*ViewContent, error)
}
