package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lifelink/lifelink-api/internal/core/domain"
	"github.com/lifelink/lifelink-api/internal/core/ports"
)

const urgentCenters = 2

// DirectoryService serves the read-only listings behind each view.
type DirectoryService struct {
	store   ports.AccountStore
	centers []domain.Center
	doctors []domain.Doctor
	now     func() time.Time
}

func NewDirectoryService(store ports.AccountStore, centers []domain.Center, doctors []domain.Doctor) *DirectoryService {
	return &DirectoryService{store: store, centers: centers, doctors: doctors, now: time.Now}
}

// Centers matches query against name or address, ignoring case.
func (s *DirectoryService) Centers(query string) []domain.Center {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]domain.Center, 0, len(s.centers))
	for _, c := range s.centers {
		if q == "" || contains(c.Name, q) || contains(c.Address, q) {
			out = append(out, c)
		}
	}
	return out
}

// Doctors matches query against name or hospital and filters by specialty.
func (s *DirectoryService) Doctors(query, specialty string) []domain.Doctor {
	q := strings.ToLower(strings.TrimSpace(query))
	spec := strings.TrimSpace(specialty)
	out := make([]domain.Doctor, 0, len(s.doctors))
	for _, d := range s.doctors {
		if q != "" && !contains(d.Name, q) && !contains(d.Hospital, q) {
			continue
		}
		if spec != "" && spec != domain.AllSpecialties && d.Specialty != spec {
			continue
		}
		out = append(out, d)
	}
	return out
}

// BookAppointment acknowledges a booking with doctorID. Nothing is stored;
// the acknowledgement expires after domain.BookingAckWindow.
func (s *DirectoryService) BookAppointment(accountID, doctorID string) (domain.Booking, error) {
	id := strings.TrimSpace(doctorID)
	for _, d := range s.doctors {
		if d.ID != id {
			continue
		}
		now := s.now().UTC()
		return domain.Booking{
			ID:           uuid.NewString(),
			DoctorID:     d.ID,
			DoctorName:   d.Name,
			Hospital:     d.Hospital,
			Availability: d.Availability,
			AccountID:    accountID,
			BookedAt:     now,
			ExpiresAt:    now.Add(domain.BookingAckWindow),
		}, nil
	}
	return domain.Booking{}, fmt.Errorf("%w: %s", domain.ErrDoctorNotFound, id)
}

// Specialties is "All" followed by each distinct specialty in catalog order.
func (s *DirectoryService) Specialties() []string {
	seen := make(map[string]struct{}, len(s.doctors))
	out := []string{domain.AllSpecialties}
	for _, d := range s.doctors {
		if _, ok := seen[d.Specialty]; ok {
			continue
		}
		seen[d.Specialty] = struct{}{}
		out = append(out, d.Specialty)
	}
	return out
}

// Donors lists donor accounts; blood type must match exactly, location is a
// case-insensitive substring.
func (s *DirectoryService) Donors(filter ports.DonorFilter) []domain.Account {
	bt := strings.TrimSpace(filter.BloodType)
	loc := strings.ToLower(strings.TrimSpace(filter.Location))

	var out []domain.Account
	for _, a := range s.store.Accounts() {
		if a.Role != domain.RoleDonor {
			continue
		}
		if bt != "" && a.BloodType != bt {
			continue
		}
		if loc != "" && !contains(a.Location, loc) {
			continue
		}
		a.Password = ""
		out = append(out, a)
	}
	return out
}

// Overview totals the roster; donation figures only count donors.
func (s *DirectoryService) Overview() domain.Overview {
	accounts := s.store.Accounts()
	ov := domain.Overview{TotalUsers: len(accounts)}
	for _, a := range accounts {
		if a.Role != domain.RoleDonor {
			continue
		}
		ov.TotalDonors++
		ov.TotalDonations += a.TotalDonations
		ov.TotalLivesSaved += a.LivesSaved
	}
	return ov
}

// DonorDashboard is the donor landing payload.
type DonorDashboard struct {
	Badge        string          `json:"badge"`
	Account      domain.Account  `json:"account"`
	UrgentNeeds  []domain.Center `json:"urgent_needs"`
	HasDonations bool            `json:"has_donations"`
}

// AdminOverview is the admin landing payload.
type AdminOverview struct {
	Stats domain.Overview  `json:"stats"`
	Users []domain.Account `json:"users"`
}

// Profile is the shared profile payload.
type Profile struct {
	Account  domain.Account `json:"account"`
	Initials string         `json:"initials"`
}

// Placeholder marks a view that has no content yet.
type Placeholder struct {
	Message string `json:"message"`
}

// ViewContent renders the payload for the session's current view.
func (s *DirectoryService) ViewContent(state domain.SessionState) (*ports.ViewContent, error) {
	if !state.LoggedIn() {
		return nil, domain.ErrNotAuthenticated
	}
	acc := *state.Account
	acc.Password = ""
	content := &ports.ViewContent{View: state.View}

	switch {
	case state.View == domain.ViewProfile:
		content.Kind, content.Data = "profile", Profile{Account: acc, Initials: acc.Initials()}
	case acc.Role == domain.RoleAdmin:
		content.Kind, content.Data = "admin_overview", AdminOverview{Stats: s.Overview(), Users: s.publicAccounts()}
	case acc.Role == domain.RoleHospital && state.View == domain.ViewFindDonor:
		content.Kind, content.Data = "donor_registry", s.Donors(ports.DonorFilter{})
	case acc.Role == domain.RoleHospital && state.View == domain.ViewDashboard:
		content.Kind, content.Data = "placeholder", Placeholder{Message: "Hospital Request Dashboard (Under Construction)"}
	case state.View == domain.ViewDashboard:
		content.Kind, content.Data = "donor_dashboard", s.donorDashboard(acc)
	case state.View == domain.ViewDonate:
		content.Kind, content.Data = "centers", s.Centers("")
	case state.View == domain.ViewAppointments:
		content.Kind, content.Data = "doctors", s.Doctors("", domain.AllSpecialties)
	default:
		return nil, fmt.Errorf("%w: no content for view %q", domain.ErrInvalidInput, state.View)
	}
	return content, nil
}

func (s *DirectoryService) donorDashboard(acc domain.Account) DonorDashboard {
	badge := "New Donor"
	if acc.TotalDonations > 10 {
		badge = "Elite Donor"
	}
	n := urgentCenters
	if n > len(s.centers) {
		n = len(s.centers)
	}
	urgent := make([]domain.Center, n)
	copy(urgent, s.centers[:n])
	return DonorDashboard{
		Badge:        badge,
		Account:      acc,
		UrgentNeeds:  urgent,
		HasDonations: acc.TotalDonations > 0,
	}
}

func (s *DirectoryService) publicAccounts() []domain.Account {
	accounts := s.store.Accounts()
	for i := range accounts {
		accounts[i].Password = ""
	}
	return accounts
}

// contains reports whether lowered needle occurs in s, ignoring case.
func contains(s, loweredNeedle string) bool {
	return strings.Contains(strings.ToLower(s), loweredNeedle)
}
