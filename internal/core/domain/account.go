package domain

import (
	"strings"
)

// Role selects an account's default view and navigation permissions.
type Role string

const (
	RoleDonor    Role = "DONOR"
	RoleAdmin    Role = "ADMIN"
	RoleHospital Role = "HOSPITAL"
)

// Roles lists every role in a stable order.
var Roles = []Role{RoleDonor, RoleAdmin, RoleHospital}

// ParseRole accepts any casing and surrounding whitespace.
func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	switch r {
	case RoleDonor, RoleAdmin, RoleHospital:
		return r, true
	}
	return "", false
}

// AccountStatus is the donor availability flag shown in directories.
type AccountStatus string

const (
	StatusActive   AccountStatus = "Active"
	StatusInactive AccountStatus = "Inactive"
)

const (
	// DefaultPassword is assigned when registration leaves the password blank.
	DefaultPassword = "1234"
	// NeverDonated is the lastDonationDate of a freshly registered donor.
	NeverDonated = "Never"
	// Unknown fills optional registration fields left blank.
	Unknown = "Unknown"
)

// Account is a registered identity. The JSON layout is the persisted roster
// format, so field order and names must not change.
type Account struct {
	ID               string        `json:"id"`
	Name             string        `json:"name"`
	Email            string        `json:"email"`
	Password         string        `json:"password,omitempty"`
	BloodType        string        `json:"bloodType"`
	Role             Role          `json:"role"`
	TotalDonations   int           `json:"totalDonations"`
	LivesSaved       int           `json:"livesSaved"`
	LastDonationDate string        `json:"lastDonationDate"`
	Location         string        `json:"location,omitempty"`
	Status           AccountStatus `json:"status"`
}

// FirstName is the first whitespace-separated word of the account name.
func (a Account) FirstName() string {
	fields := strings.Fields(a.Name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// Initials takes the first letter of the first two name words, upper-cased.
func (a Account) Initials() string {
	fields := strings.Fields(a.Name)
	var b strings.Builder
	for i := 0; i < len(fields) && i < 2; i++ {
		r := []rune(fields[i])
		b.WriteString(strings.ToUpper(string(r[0])))
	}
	return b.String()
}

// NormalizeEmail trims whitespace and lowercases, which is how emails are
// compared everywhere.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NormalizePassword trims surrounding whitespace only.
func NormalizePassword(s string) string {
	return strings.TrimSpace(s)
}

// SeedAccounts returns a fresh copy of the initial roster used whenever the
// persisted slot is missing or unreadable.
func SeedAccounts() []Account {
	return []Account{
		{
			ID: "1", Name: "Alex Johnson", Email: "alex@test.com", Password: "1234",
			BloodType: "O+", Role: RoleDonor, TotalDonations: 12, LivesSaved: 36,
			LastDonationDate: "2023-10-15", Location: "Gulou District, Nanjing", Status: StatusActive,
		},
		{
			ID: "2", Name: "Li Wei", Email: "liwei@test.com", Password: "1234",
			BloodType: "A-", Role: RoleDonor, TotalDonations: 5, LivesSaved: 15,
			LastDonationDate: "2023-11-20", Location: "Xuanwu District, Nanjing", Status: StatusActive,
		},
		{
			ID: "3", Name: "Chen Yu", Email: "chen@test.com", Password: "1234",
			BloodType: "B+", Role: RoleDonor, TotalDonations: 2, LivesSaved: 6,
			LastDonationDate: "2024-01-05", Location: "Jianye District, Nanjing", Status: StatusActive,
		},
		{
			ID: "admin", Name: "System Admin", Email: "admin@lifelink.com", Password: "1234",
			BloodType: "AB+", Role: RoleAdmin,
			LastDonationDate: "-", Location: "Nanjing HQ", Status: StatusActive,
		},
		{
			ID: "hosp1", Name: "Drum Tower Hospital", Email: "hospital@lifelink.com", Password: "1234",
			BloodType: "-", Role: RoleHospital,
			LastDonationDate: "-", Location: "Gulou District, Nanjing", Status: StatusActive,
		},
	}
}
