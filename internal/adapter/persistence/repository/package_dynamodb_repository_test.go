package repository

import "testing"

func TestReserveSeatsCondition(t *testing.T) {
	t.Run("condition compares the counter against a precomputed bound", func(t *testing.T) {
		cond, limit, ok := reserveSeatsCondition(5, 3)
		if !ok {
			t.Fatalf("expected reservation to be possible")
		}
		// Condition expressions only allow operand-comparator-operand, so the
		// guard must not contain arithmetic.
		if cond != "#current_bookings <= :limit" {
			t.Fatalf("unexpected condition: %s", cond)
		}
		if limit != 2 {
			t.Fatalf("expected limit 2, got %d", limit)
		}
	})

	t.Run("count filling the package exactly", func(t *testing.T) {
		_, limit, ok := reserveSeatsCondition(5, 5)
		if !ok || limit != 0 {
			t.Fatalf("expected ok with limit 0, got ok=%v limit=%d", ok, limit)
		}
	})

	t.Run("count beyond capacity", func(t *testing.T) {
		if _, _, ok := reserveSeatsCondition(5, 6); ok {
			t.Fatalf("expected reservation to be rejected outright")
		}
	})
}
