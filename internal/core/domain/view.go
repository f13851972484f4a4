package domain

import "strings"

// View is a named screen the router can select.
type View string

const (
	ViewDashboard      View = "DASHBOARD"
	ViewDonate         View = "DONATE"
	ViewAppointments   View = "APPOINTMENTS"
	ViewProfile        View = "PROFILE"
	ViewSystemOverview View = "SYSTEM_OVERVIEW"
	ViewUserManagement View = "USER_MANAGEMENT"
	ViewFindDonor      View = "FIND_DONOR"
)

var knownViews = map[View]struct{}{
	ViewDashboard:      {},
	ViewDonate:         {},
	ViewAppointments:   {},
	ViewProfile:        {},
	ViewSystemOverview: {},
	ViewUserManagement: {},
	ViewFindDonor:      {},
}

// ParseView returns the empty view for anything unrecognised; the router
// clamps it to the role default.
func ParseView(s string) View {
	v := View(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := knownViews[v]; !ok {
		return ""
	}
	return v
}

// MenuItem is one sidebar entry.
type MenuItem struct {
	View  View   `json:"view"`
	Label string `json:"label"`
}

// SessionState is a point-in-time snapshot of one client session.
type SessionState struct {
	SessionID  string     `json:"session_id"`
	Account    *Account   `json:"-"`
	View       View       `json:"view,omitempty"`
	Menu       []MenuItem `json:"menu,omitempty"`
	ShowBack   bool       `json:"show_back"`
	Generation uint64     `json:"generation"`
}

// LoggedIn reports whether the snapshot carries an authenticated account.
func (s SessionState) LoggedIn() bool {
	return s.Account != nil
}
