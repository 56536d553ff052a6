package listing

import (
	"strings"
	"testing"
)

func TestStatus_IsValid(t *testing.T) {
	if !StatusSale.IsValid() || !StatusRent.IsValid() {
		t.Error("sale/rent reported invalid")
	}
	if Status("lease").IsValid() {
		t.Error("unknown status reported valid")
	}
}

func TestListing_HasFeature(t *testing.T) {
	l := Listing{Features: []string{"pool", "gym"}}
	if !l.HasFeature("gym") {
		t.Error("HasFeature(gym) = false")
	}
	if l.HasFeature("garden") {
		t.Error("HasFeature(garden) = true")
	}
	empty := Listing{}
	if empty.HasFeature("pool") {
		t.Error("HasFeature on empty set = true")
	}
}

func TestListing_Validate(t *testing.T) {
	negative := -1
	tests := []struct {
		name    string
		l       Listing
		wantErr string
	}{
		{"valid", Listing{ID: "a", Status: StatusSale, Price: 100}, ""},
		{"missing id", Listing{Status: StatusSale}, "id is required"},
		{"bad status", Listing{ID: "a", Status: "lease"}, "unknown status"},
		{"negative price", Listing{ID: "a", Status: StatusSale, Price: -1}, "price"},
		{"negative beds", Listing{ID: "a", Status: StatusRent, Beds: &negative}, "beds"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.l.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() = %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Validate() = %v, want substring %q", err, tt.wantErr)
			}
		})
	}
}
