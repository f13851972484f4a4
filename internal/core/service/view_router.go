package service

import (
	"github.com/lifelink/lifelink-api/internal/api/metrics"
	"github.com/lifelink/lifelink-api/internal/core/domain"
)

// roleRoute is one row of the routing table.
type roleRoute struct {
	defaultView domain.View
	menu        []domain.MenuItem
}

// routes is keyed by role; adding a role means adding a row, not a branch.
var routes = map[domain.Role]roleRoute{
	domain.RoleAdmin: {
		defaultView: domain.ViewSystemOverview,
		menu: []domain.MenuItem{
			{View: domain.ViewSystemOverview, Label: "System Overview"},
			{View: domain.ViewUserManagement, Label: "Manage Users"},
		},
	},
	domain.RoleHospital: {
		defaultView: domain.ViewFindDonor,
		menu: []domain.MenuItem{
			{View: domain.ViewFindDonor, Label: "Find Donors"},
			{View: domain.ViewDashboard, Label: "My Requests"},
			{View: domain.ViewProfile, Label: "Hospital Profile"},
		},
	},
	domain.RoleDonor: {
		defaultView: domain.ViewDashboard,
		menu: []domain.MenuItem{
			{View: domain.ViewDashboard, Label: "Dashboard"},
			{View: domain.ViewDonate, Label: "Find Center"},
			{View: domain.ViewAppointments, Label: "Appointments"},
			{View: domain.ViewProfile, Label: "Profile"},
		},
	},
}

// ViewRouter maps a role and a requested view to the view the role may see.
// It is stateless; the zero value is ready to use.
type ViewRouter struct{}

func NewViewRouter() *ViewRouter {
	return &ViewRouter{}
}

// DefaultView is the landing view for role. Unknown roles land on the
// donor dashboard.
func (ViewRouter) DefaultView(role domain.Role) domain.View {
	if r, ok := routes[role]; ok {
		return r.defaultView
	}
	return domain.ViewDashboard
}

// AllowedViews returns a copy of role's menu in display order.
func (ViewRouter) AllowedViews(role domain.Role) []domain.MenuItem {
	r, ok := routes[role]
	if !ok {
		return nil
	}
	out := make([]domain.MenuItem, len(r.menu))
	copy(out, r.menu)
	return out
}

// Permits reports whether role may open view. Profile is open to everyone.
func (ViewRouter) Permits(role domain.Role, view domain.View) bool {
	if view == domain.ViewProfile {
		return true
	}
	for _, item := range routes[role].menu {
		if item.View == view {
			return true
		}
	}
	return false
}

// Navigate returns requested when role may see it, otherwise the role's
// default view. Clamping is silent.
func (vr ViewRouter) Navigate(role domain.Role, requested domain.View) domain.View {
	if vr.Permits(role, requested) {
		return requested
	}
	metrics.NavigationClampedTotal.WithLabelValues(string(role)).Inc()
	return vr.DefaultView(role)
}

// ShowBack reports whether the "return to default" affordance applies.
func (vr ViewRouter) ShowBack(role domain.Role, current domain.View) bool {
	return current != vr.DefaultView(role)
}
