package enums

import "testing"

func TestParsePaymentStatus(t *testing.T) {
	status, err := ParsePaymentStatus(" Success ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != PaymentStatusSuccess {
		t.Fatalf("expected success, got %s", status)
	}

	if _, err := ParsePaymentStatus("settled"); err == nil {
		t.Fatal("expected error for unknown status")
	}
}

func TestPaymentStatusIsValid(t *testing.T) {
	for _, status := range []PaymentStatus{PaymentStatusPending, PaymentStatusSuccess, PaymentStatusFailed} {
		if !status.IsValid() {
			t.Fatalf("expected %s to be valid", status)
		}
	}
	if PaymentStatus("").IsValid() {
		t.Fatal("empty status should be invalid")
	}
}
