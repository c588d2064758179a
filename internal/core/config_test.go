package core

import (
	"errors"
	"testing"
)

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in       string
		expected Difficulty
		wantErr  bool
	}{
		{"easy", DifficultyEasy, false},
		{"Normal", DifficultyNormal, false},
		{" HARD ", DifficultyHard, false},
		{"nightmare", DifficultyNormal, true},
		{"", DifficultyNormal, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseDifficulty(tc.in)
			if got != tc.expected {
				t.Errorf("ParseDifficulty(%q) = %v, expected %v", tc.in, got, tc.expected)
			}
			if tc.wantErr && !errors.Is(err, ErrInvalidDifficulty) {
				t.Errorf("ParseDifficulty(%q) error = %v, expected ErrInvalidDifficulty", tc.in, err)
			}
			if !tc.wantErr && err != nil {
				t.Errorf("ParseDifficulty(%q) unexpected error: %v", tc.in, err)
			}
		})
	}
}

func TestDifficultyTextRoundTrip(t *testing.T) {
	for _, d := range Difficulties {
		text, err := d.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v) error: %v", d, err)
		}
		var got Difficulty
		if err := got.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q) error: %v", text, err)
		}
		if got != d {
			t.Errorf("round trip of %v = %v", d, got)
		}
	}
}

func TestDifficultyUnmarshalUnknownFallsBack(t *testing.T) {
	d := DifficultyHard
	if err := d.UnmarshalText([]byte("insane")); err != nil {
		t.Fatalf("UnmarshalText error: %v", err)
	}
	if d != DifficultyNormal {
		t.Errorf("unknown difficulty decoded as %v, expected normal", d)
	}
}

func TestDifficultyNext(t *testing.T) {
	if DifficultyEasy.Next() != DifficultyNormal {
		t.Error("Easy.Next() should be Normal")
	}
	if DifficultyHard.Next() != DifficultyEasy {
		t.Error("Hard.Next() should wrap to Easy")
	}
	if DifficultyEasy.Prev() != DifficultyHard {
		t.Error("Easy.Prev() should wrap to Hard")
	}
	if DifficultyHard.Prev() != DifficultyNormal {
		t.Error("Hard.Prev() should be Normal")
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionFire)
	f.SetPointer(120, 45)

	if !f.Has(ActionFire) {
		t.Error("Has(ActionFire) should be true after Set")
	}
	if f.Has(ActionLaunch) {
		t.Error("Has(ActionLaunch) should be false")
	}

	clone := f.Clone()
	f.Clear()

	if f.Has(ActionFire) {
		t.Error("Clear should remove actions")
	}
	if f.PointerX != 120 || f.PointerY != 45 {
		t.Error("Clear should keep the pointer position")
	}
	if !clone.Has(ActionFire) || clone.PointerX != 120 {
		t.Error("Clone should be independent of the original")
	}

	var zero InputFrame
	if zero.Has(ActionPause) {
		t.Error("zero InputFrame should report no actions")
	}
}

func TestInputFrameEmpty(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionNone)
	if !f.Empty() || f.Has(ActionNone) {
		t.Error("ActionNone should never be stored")
	}

	f.Set(ActionQuit)
	if f.Empty() || !f.Has(ActionQuit) {
		t.Error("Set(ActionQuit) should be stored")
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionNone:   "None",
		ActionLaunch: "Launch",
		ActionShot3:  "Shot3",
		ActionQuit:   "Quit",
		Action(200):  "Unknown",
	}
	for a, want := range tests {
		if got := a.String(); got != want {
			t.Errorf("Action(%d).String() = %q, expected %q", a, got, want)
		}
	}
}

func TestDrawListAppend(t *testing.T) {
	var d DrawList
	d.Rect(1, 2, 3, 4, ColorRed)
	d.Circle(5, 6, 7, ColorBlue)
	d.Line(0, 450, 800, ColorRed)

	if len(d.Items) != 3 {
		t.Fatalf("len(Items) = %d, expected 3", len(d.Items))
	}
	if d.Items[0].Kind != DrawRect || d.Items[0].W != 3 {
		t.Errorf("Items[0] = %+v, expected rect", d.Items[0])
	}
	if d.Items[1].Kind != DrawCircle || d.Items[1].Radius != 7 {
		t.Errorf("Items[1] = %+v, expected circle", d.Items[1])
	}
	if d.Items[2].Kind != DrawLine || d.Items[2].Y != 450 {
		t.Errorf("Items[2] = %+v, expected line", d.Items[2])
	}
}
