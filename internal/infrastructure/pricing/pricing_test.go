package pricing

import (
	"context"
	"errors"
	"testing"

	"travelops/internal/domain/entities"
)

func TestBasePriceService_TotalAmount(t *testing.T) {
	svc := NewBasePriceService()
	pkg := entities.TravelPackage{ID: "p-1", BasePrice: 200}

	t.Run("base price times headcount", func(t *testing.T) {
		total, err := svc.TotalAmount(context.Background(), pkg, 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if total != 400 {
			t.Fatalf("expected 400, got %v", total)
		}
	})

	t.Run("group discount at ten people", func(t *testing.T) {
		total, err := svc.TotalAmount(context.Background(), pkg, 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if total != 1800 {
			t.Fatalf("expected 1800, got %v", total)
		}
	})

	t.Run("nine people pay full price", func(t *testing.T) {
		total, err := svc.TotalAmount(context.Background(), pkg, 9)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if total != 1800 {
			t.Fatalf("expected 1800, got %v", total)
		}
	})

	t.Run("zero people", func(t *testing.T) {
		if _, err := svc.TotalAmount(context.Background(), pkg, 0); !errors.Is(err, ErrInvalidHeadcount) {
			t.Fatalf("expected ErrInvalidHeadcount, got %v", err)
		}
	})
}
