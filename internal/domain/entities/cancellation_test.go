package entities

import "testing"

func TestCancellationFeePercent(t *testing.T) {
	cases := []struct {
		name      string
		days      int
		emergency bool
		want      float64
	}{
		{"30 days or more", 45, false, 0.05},
		{"exactly 30", 30, false, 0.05},
		{"15 to 29", 20, false, 0.15},
		{"7 to 14", 10, false, 0.25},
		{"3 to 6", 4, false, 0.50},
		{"under 3", 2, false, 0.75},
		{"same day", 0, false, 0.75},
		{"emergency overrides table", 45, true, 0.10},
		{"emergency last minute", 1, true, 0.10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CancellationFeePercent(tc.days, tc.emergency); got != tc.want {
				t.Fatalf("CancellationFeePercent(%d, %v) = %v, want %v", tc.days, tc.emergency, got, tc.want)
			}
		})
	}
}

func TestApplyFee(t *testing.T) {
	t.Run("20 days before travel", func(t *testing.T) {
		r := CancellationRequest{OriginalAmount: 1000, DaysBeforeTravel: 20}
		r.ApplyFee()
		if r.CancellationFee != 150 || r.RefundAmount != 850 {
			t.Fatalf("unexpected fee/refund: %v/%v", r.CancellationFee, r.RefundAmount)
		}
	})

	t.Run("2 days before travel", func(t *testing.T) {
		r := CancellationRequest{OriginalAmount: 1000, DaysBeforeTravel: 2}
		r.ApplyFee()
		if r.CancellationFee != 750 || r.RefundAmount != 250 {
			t.Fatalf("unexpected fee/refund: %v/%v", r.CancellationFee, r.RefundAmount)
		}
	})

	t.Run("emergency flat 10 percent", func(t *testing.T) {
		r := CancellationRequest{OriginalAmount: 1000, DaysBeforeTravel: 2, IsEmergency: true}
		r.ApplyFee()
		if r.CancellationFee != 100 || r.RefundAmount != 900 {
			t.Fatalf("unexpected fee/refund: %v/%v", r.CancellationFee, r.RefundAmount)
		}
	})

	t.Run("refund never negative", func(t *testing.T) {
		r := CancellationRequest{OriginalAmount: 0, DaysBeforeTravel: 0}
		r.ApplyFee()
		if r.RefundAmount < 0 {
			t.Fatalf("negative refund: %v", r.RefundAmount)
		}
	})
}

func TestRefundMethodFor(t *testing.T) {
	cases := []struct {
		method PaymentMethod
		want   RefundMethod
	}{
		{PaymentMethodCard, RefundMethodOriginalPayment},
		{PaymentMethodMobileBanking, RefundMethodMobileBanking},
		{PaymentMethodBankTransfer, RefundMethodBankTransfer},
		{PaymentMethodCash, RefundMethodCash},
		{PaymentMethod("voucher"), RefundMethodBankTransfer},
	}
	for _, tc := range cases {
		if got := RefundMethodFor(tc.method); got != tc.want {
			t.Fatalf("RefundMethodFor(%s) = %s, want %s", tc.method, got, tc.want)
		}
	}
}
