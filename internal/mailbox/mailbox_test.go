package mailbox

import (
	"context"
	"testing"
	"time"
)

func TestPutThenTake(t *testing.T) {
	mb := New[int]()
	mb.Put(42)

	got, ok := mb.Take(context.Background())
	if !ok || got != 42 {
		t.Fatalf("Take() = %d, %v; want 42, true", got, ok)
	}
	if mb.HasJob() {
		t.Error("mailbox should be empty after Take")
	}
}

func TestLatestJobWins(t *testing.T) {
	mb := New[string]()
	mb.Put("first")
	mb.Put("second")
	mb.Put("third")

	got, ok := mb.Take(context.Background())
	if !ok || got != "third" {
		t.Fatalf("Take() = %q, %v; want third, true", got, ok)
	}
	if mb.HasJob() {
		t.Error("coalesced puts must leave a single job")
	}
}

func TestTakeBlocksUntilPut(t *testing.T) {
	mb := New[int]()

	done := make(chan int, 1)
	go func() {
		v, _ := mb.Take(context.Background())
		done <- v
	}()

	time.Sleep(20 * time.Millisecond)
	mb.Put(7)

	select {
	case v := <-done:
		if v != 7 {
			t.Fatalf("Take() = %d, want 7", v)
		}
	case <-time.After(time.Second):
		t.Fatal("Take() did not wake up after Put")
	}
}

func TestTakeReturnsOnCancel(t *testing.T) {
	mb := New[int]()
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan bool, 1)
	go func() {
		_, ok := mb.Take(ctx)
		done <- ok
	}()

	cancel()

	select {
	case ok := <-done:
		if ok {
			t.Fatal("Take() reported a job after cancellation")
		}
	case <-time.After(time.Second):
		t.Fatal("Take() did not return after cancellation")
	}
}
