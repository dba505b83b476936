package enums

import "testing"

func TestParseOrderStatus(t *testing.T) {
	valid := []string{"pending", "processing", "shipped", "completed", "cancelled"}
	for _, v := range valid {
		status, err := ParseOrderStatus(v)
		if err != nil {
			t.Fatalf("ParseOrderStatus(%q) returned error: %v", v, err)
		}
		if status.String() != v {
			t.Fatalf("ParseOrderStatus(%q) = %q", v, status)
		}
	}

	if _, err := ParseOrderStatus("delivered"); err == nil {
		t.Fatal("expected error for unknown status")
	}
	if _, err := ParseOrderStatus(""); err == nil {
		t.Fatal("expected error for empty status")
	}
	if _, err := ParseOrderStatus("Pending"); err == nil {
		t.Fatal("expected error for wrong case")
	}
}
