package game

import "testing"

func TestFrameClock_TickOrder(t *testing.T) {
	c := NewFrameClock()
	var order []string
	c.Subscribe(func(dt float64) { order = append(order, "particles") })
	c.Subscribe(func(dt float64) { order = append(order, "tweens") })

	c.Tick(16)
	c.Tick(16)

	want := []string{"particles", "tweens", "particles", "tweens"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
	if c.Elapsed() != 32 || c.Frames() != 2 {
		t.Errorf("Elapsed=%v Frames=%d, want 32/2", c.Elapsed(), c.Frames())
	}
}

func TestFrameClock_Unsubscribe(t *testing.T) {
	c := NewFrameClock()
	total := 0.0
	unsubscribe := c.Subscribe(func(dt float64) { total += dt })

	c.Tick(10)
	unsubscribe()
	unsubscribe()
	c.Tick(10)

	if total != 10 {
		t.Errorf("total = %v, want 10", total)
	}
}

// 在 tick 中订阅/退订不影响本次 tick 的其余订阅者
func TestFrameClock_MutationDuringTick(t *testing.T) {
	c := NewFrameClock()
	calls := map[string]int{}

	var unsubB func()
	c.Subscribe(func(dt float64) {
		calls["a"]++
		if calls["a"] == 1 {
			unsubB()
			c.Subscribe(func(dt float64) { calls["late"]++ })
		}
	})
	unsubB = c.Subscribe(func(dt float64) { calls["b"]++ })
	c.Subscribe(func(dt float64) { calls["c"]++ })

	c.Tick(1)
	if calls["b"] != 0 || calls["c"] != 1 || calls["late"] != 0 {
		t.Errorf("first tick calls = %v", calls)
	}
	c.Tick(1)
	if calls["a"] != 2 || calls["c"] != 2 || calls["late"] != 1 {
		t.Errorf("second tick calls = %v", calls)
	}
}
