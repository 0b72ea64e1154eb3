package model

import "testing"

func TestStateOptions(t *testing.T) {
	options := StateOptions()

	if len(options) != 59 {
		t.Errorf("expected 59 entries (50 states, DC, 5 territories, 3 military), got %d", len(options))
	}

	seen := make(map[string]bool)
	for _, opt := range options {
		if len(opt.Code) != 2 {
			t.Errorf("code %q is not two letters", opt.Code)
		}
		if seen[opt.Code] {
			t.Errorf("duplicate code %q", opt.Code)
		}
		seen[opt.Code] = true
		if opt.Name == "" {
			t.Errorf("code %q has empty name", opt.Code)
		}
	}

	for _, code := range []string{"CA", "NY", "IL", "DC", "PR", "AA", "AE", "AP"} {
		if !seen[code] {
			t.Errorf("expected code %q in table", code)
		}
	}

	if options[0].Code != "AL" || options[len(options)-1].Code != "AP" {
		t.Errorf("table order changed: first=%s last=%s", options[0].Code, options[len(options)-1].Code)
	}
}

func TestStateOptions_ReturnsCopy(t *testing.T) {
	options := StateOptions()
	options[0].Code = "ZZ"

	if StateOptions()[0].Code != "AL" {
		t.Error("mutating the returned slice changed the table")
	}
	if IsStateCode("ZZ") {
		t.Error("mutated code became valid")
	}
}

func TestIsStateCode(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"IL", true},
		{"VI", true},
		{"XX", false},
		{"il", false},
		{" IL", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if got := IsStateCode(tt.code); got != tt.want {
				t.Errorf("IsStateCode(%q) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}

func TestRegistrationRole_AllowedRoles(t *testing.T) {
	tests := []struct {
		role   RegistrationRole
		want   []UserRole
		wantOK bool
	}{
		{RegistrationRoleCaregiver, []UserRole{RoleCaregiver}, true},
		{RegistrationRolePatient, []UserRole{RolePatient}, true},
		{RegistrationRoleBoth, []UserRole{RoleCaregiver, RolePatient}, true},
		{"admin", nil, false},
		{"", nil, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			got, ok := tt.role.AllowedRoles()
			if ok != tt.wantOK {
				t.Fatalf("AllowedRoles() ok = %v, want %v", ok, tt.wantOK)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("AllowedRoles() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("AllowedRoles()[%d] = %s, want %s", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestInitialRegisterData(t *testing.T) {
	data := InitialRegisterData()
	if data != (RegisterFormData{}) {
		t.Errorf("expected every field empty, got %+v", data)
	}
}
