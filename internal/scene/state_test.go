package scene

import "testing"

func TestTransition(t *testing.T) {
	tests := []struct {
		from   State
		event  Event
		want   State
		wantOK bool
	}{
		{Boot, EventBooted, Preloading, true},
		{Preloading, EventLoaded, StartMenu, true},
		{Preloading, EventLoadFailed, LoadFailed, true},
		{LoadFailed, EventConfirm, Preloading, true},
		{StartMenu, EventConfirm, Playing, true},
		{Playing, EventHazardHit, GameOver, true},
		{GameOver, EventConfirm, StartMenu, true},

		{Boot, EventConfirm, Boot, false},
		{Preloading, EventConfirm, Preloading, false},
		{StartMenu, EventHazardHit, StartMenu, false},
		{Playing, EventConfirm, Playing, false},
		{GameOver, EventHazardHit, GameOver, false},
	}

	for _, tt := range tests {
		t.Run(tt.from.String()+"/"+tt.event.String(), func(t *testing.T) {
			got, ok := Transition(tt.from, tt.event)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Transition(%v, %v) = (%v, %v), expected (%v, %v)",
					tt.from, tt.event, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestGameOverIsNeverTerminal(t *testing.T) {
	// Every state has a way out
	for s := Boot; s <= LoadFailed; s++ {
		if len(transitions[s]) == 0 {
			t.Errorf("state %v has no outgoing transition", s)
		}
	}
}

func TestScopeReleasesInReverse(t *testing.T) {
	var order []int
	var s scope
	for i := 1; i <= 3; i++ {
		s.add(func() { order = append(order, i) })
	}
	if s.len() != 3 {
		t.Fatalf("len() = %d, expected 3", s.len())
	}

	s.release()
	s.release()

	want := []int{3, 2, 1}
	if len(order) != len(want) {
		t.Fatalf("release order = %v, expected %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("release order = %v, expected %v", order, want)
		}
	}
}
