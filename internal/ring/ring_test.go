package ring

import "testing"

func TestAppendBelowCapacityKeepsOrder(t *testing.T) {
	b := New[int](5)
	for i := 1; i <= 3; i++ {
		b.Append(i)
	}

	got := b.Snapshot()
	want := []int{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("expected %d elements, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("position %d: expected %d, got %d", i, want[i], got[i])
		}
	}
}

func TestAppendAtCapacityEvictsOldest(t *testing.T) {
	b := New[string](2)
	b.Append("a")
	b.Append("b")
	b.Append("c")

	got := b.Snapshot()
	if len(got) != 2 {
		t.Fatalf("expected 2 elements, got %d", len(got))
	}
	if got[0] != "b" || got[1] != "c" {
		t.Fatalf("expected [b c], got %v", got)
	}
}

func TestLengthNeverExceedsCapacity(t *testing.T) {
	for _, capacity := range []int{1, 2, 7, 20, 50} {
		b := New[int](capacity)
		for i := 0; i < capacity*3+1; i++ {
			b.Append(i)
			if b.Len() > capacity {
				t.Fatalf("capacity %d: length %d exceeds capacity", capacity, b.Len())
			}
		}

		got := b.Snapshot()
		if len(got) != capacity {
			t.Fatalf("capacity %d: expected full buffer, got %d", capacity, len(got))
		}
		// Survivors are the most recent appends in insertion order.
		first := capacity*3 + 1 - capacity
		for i, v := range got {
			if v != first+i {
				t.Fatalf("capacity %d: position %d: expected %d, got %d", capacity, i, first+i, v)
			}
		}
	}
}

func TestCapacityClampedToOne(t *testing.T) {
	for _, capacity := range []int{0, -3} {
		b := New[int](capacity)
		if b.Cap() != 1 {
			t.Fatalf("expected clamped capacity 1, got %d", b.Cap())
		}
		b.Append(1)
		b.Append(2)
		got := b.Snapshot()
		if len(got) != 1 || got[0] != 2 {
			t.Fatalf("expected [2], got %v", got)
		}
	}
}

func TestSnapshotIsIndependent(t *testing.T) {
	b := New[int](3)
	b.Append(1)
	b.Append(2)

	snap := b.Snapshot()
	snap[0] = 99

	again := b.Snapshot()
	if again[0] != 1 {
		t.Fatalf("mutating a snapshot leaked into the buffer: got %d", again[0])
	}
}
