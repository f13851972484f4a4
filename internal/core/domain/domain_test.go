package domain

import (
	"errors"
	"testing"
)

func TestParseRole(t *testing.T) {
	for in, want := range map[string]Role{"donor": RoleDonor, " ADMIN ": RoleAdmin, "Hospital": RoleHospital} {
		got, ok := ParseRole(in)
		if !ok || got != want {
			t.Fatalf("ParseRole(%q) = %q, %v", in, got, ok)
		}
	}
	if _, ok := ParseRole("nurse"); ok {
		t.Fatalf("expected unknown role to be rejected")
	}
}

func TestParseView(t *testing.T) {
	if got := ParseView(" find_donor "); got != ViewFindDonor {
		t.Fatalf("expected FIND_DONOR, got %q", got)
	}
	if got := ParseView("SETTINGS"); got != "" {
		t.Fatalf("expected empty view for unknown input, got %q", got)
	}
}

func TestParseTheme(t *testing.T) {
	if _, ok := ParseTheme("dark"); !ok {
		t.Fatalf("dark rejected")
	}
	if _, ok := ParseTheme("Dark"); ok {
		t.Fatalf("theme values are exact")
	}
}

func TestNormalizeEmail(t *testing.T) {
	if got := NormalizeEmail("  JANE@X.com\t"); got != "jane@x.com" {
		t.Fatalf("got %q", got)
	}
}

func TestAccountNames(t *testing.T) {
	a := Account{Name: "  jane   van doe "}
	if a.FirstName() != "jane" {
		t.Fatalf("FirstName = %q", a.FirstName())
	}
	if a.Initials() != "JV" {
		t.Fatalf("Initials = %q", a.Initials())
	}
	if (Account{}).Initials() != "" || (Account{}).FirstName() != "" {
		t.Fatalf("empty name should yield empty values")
	}
}

func TestSeedAccounts_FreshCopy(t *testing.T) {
	a := SeedAccounts()
	a[0].Name = "changed"
	if SeedAccounts()[0].Name == "changed" {
		t.Fatalf("SeedAccounts shares state between calls")
	}
	roles := map[Role]int{}
	for _, acc := range SeedAccounts() {
		roles[acc.Role]++
	}
	if roles[RoleDonor] != 3 || roles[RoleAdmin] != 1 || roles[RoleHospital] != 1 {
		t.Fatalf("unexpected seed composition: %v", roles)
	}
}

func TestRoleLookupError(t *testing.T) {
	var err error = &RoleLookupError{Role: RoleDonor}
	if !errors.Is(err, ErrNoAccountForRole) {
		t.Fatalf("expected errors.Is to match ErrNoAccountForRole")
	}
	if err.Error() != "no donor account found" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}
