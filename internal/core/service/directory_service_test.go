package service

import (
	"errors"
	"testing"
	"time"

	"github.com/lifelink/lifelink-api/internal/core/domain"
	"github.com/lifelink/lifelink-api/internal/core/ports"
)

func newTestDirectory(t *testing.T) *DirectoryService {
	t.Helper()
	store, _ := newSeededStore(t)
	return NewDirectoryService(store, domain.Centers(), domain.Doctors())
}

func TestDirectoryService_Centers(t *testing.T) {
	d := newTestDirectory(t)

	if got := d.Centers(""); len(got) != 3 {
		t.Fatalf("expected all 3 centres, got %d", len(got))
	}
	if got := d.Centers("gulou"); len(got) != 2 {
		t.Fatalf("expected 2 centres in Gulou, got %d", len(got))
	}
	if got := d.Centers("FIRST"); len(got) != 1 || got[0].ID != "c3" {
		t.Fatalf("expected c3, got %+v", got)
	}
}

func TestDirectoryService_Doctors(t *testing.T) {
	d := newTestDirectory(t)

	if got := d.Doctors("", domain.AllSpecialties); len(got) != 6 {
		t.Fatalf("expected 6 doctors, got %d", len(got))
	}
	if got := d.Doctors("", "Hematology"); len(got) != 2 {
		t.Fatalf("expected 2 hematologists, got %d", len(got))
	}
	if got := d.Doctors("drum tower", "Transfusion Medicine"); len(got) != 1 || got[0].ID != "d5" {
		t.Fatalf("expected d5, got %+v", got)
	}
}

func TestDirectoryService_Specialties(t *testing.T) {
	got := newTestDirectory(t).Specialties()
	want := []string{"All", "Hematology", "Cardiology", "General Practice", "Transfusion Medicine", "Internal Medicine"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestDirectoryService_Donors(t *testing.T) {
	d := newTestDirectory(t)

	all := d.Donors(ports.DonorFilter{})
	if len(all) != 3 {
		t.Fatalf("expected 3 donors, got %d", len(all))
	}
	for _, a := range all {
		if a.Password != "" {
			t.Fatalf("donor listing leaked a password")
		}
	}

	if got := d.Donors(ports.DonorFilter{BloodType: "A-"}); len(got) != 1 || got[0].ID != "2" {
		t.Fatalf("expected Li Wei, got %+v", got)
	}
	if got := d.Donors(ports.DonorFilter{Location: "gulou"}); len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("expected Alex, got %+v", got)
	}
}

func TestDirectoryService_Overview(t *testing.T) {
	ov := newTestDirectory(t).Overview()
	want := domain.Overview{TotalUsers: 5, TotalDonors: 3, TotalDonations: 19, TotalLivesSaved: 57}
	if ov != want {
		t.Fatalf("expected %+v, got %+v", want, ov)
	}
}

func TestDirectoryService_ViewContent(t *testing.T) {
	d := newTestDirectory(t)
	store := d.store

	alex, _ := store.FindByEmail("alex@test.com")
	admin, _ := store.FirstWithRole(domain.RoleAdmin)
	hosp, _ := store.FirstWithRole(domain.RoleHospital)

	cases := []struct {
		account domain.Account
		view    domain.View
		kind    string
	}{
		{alex, domain.ViewDashboard, "donor_dashboard"},
		{alex, domain.ViewDonate, "centers"},
		{alex, domain.ViewAppointments, "doctors"},
		{alex, domain.ViewProfile, "profile"},
		{admin, domain.ViewSystemOverview, "admin_overview"},
		{admin, domain.ViewUserManagement, "admin_overview"},
		{hosp, domain.ViewFindDonor, "donor_registry"},
		{hosp, domain.ViewDashboard, "placeholder"},
	}
	for _, tc := range cases {
		acc := tc.account
		content, err := d.ViewContent(domain.SessionState{Account: &acc, View: tc.view})
		if err != nil {
			t.Fatalf("%s/%s: %v", acc.Role, tc.view, err)
		}
		if content.Kind != tc.kind {
			t.Fatalf("%s/%s: kind %s, want %s", acc.Role, tc.view, content.Kind, tc.kind)
		}
	}

	dash, _ := d.ViewContent(domain.SessionState{Account: &alex, View: domain.ViewDashboard})
	dd := dash.Data.(DonorDashboard)
	if dd.Badge != "Elite Donor" || len(dd.UrgentNeeds) != 2 || dd.Account.Password != "" {
		t.Fatalf("unexpected dashboard: %+v", dd)
	}

	if _, err := d.ViewContent(domain.SessionState{}); err == nil {
		t.Fatalf("expected error for signed-out state")
	}
}

func TestDirectoryService_BookAppointment(t *testing.T) {
	d := newTestDirectory(t)
	fixed := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	d.now = func() time.Time { return fixed }

	b, err := d.BookAppointment("1", " d5 ")
	if err != nil {
		t.Fatalf("BookAppointment: %v", err)
	}
	if b.DoctorID != "d5" || b.DoctorName != "Dr. Zhou Jie" || b.AccountID != "1" || b.ID == "" {
		t.Fatalf("unexpected booking %+v", b)
	}
	if !b.BookedAt.Equal(fixed) || b.ExpiresAt.Sub(b.BookedAt) != domain.BookingAckWindow {
		t.Fatalf("unexpected times %v %v", b.BookedAt, b.ExpiresAt)
	}

	if _, err := d.BookAppointment("1", "d99"); !errors.Is(err, domain.ErrDoctorNotFound) {
		t.Fatalf("expected ErrDoctorNotFound, got %v", err)
	}
}
