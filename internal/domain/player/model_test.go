package player

import "testing"

func TestParseTeam(t *testing.T) {
	cases := []struct {
		raw     string
		want    Team
		wantErr bool
	}{
		{raw: "Time A", want: TeamA},
		{raw: " time b ", want: TeamB},
		{raw: "Time C", wantErr: true},
		{raw: "", wantErr: true},
	}

	for _, tc := range cases {
		got, err := ParseTeam(tc.raw)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("ParseTeam(%q): expected error", tc.raw)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseTeam(%q): %v", tc.raw, err)
		}
		if got != tc.want {
			t.Fatalf("ParseTeam(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestPlayer_Validate(t *testing.T) {
	if err := (Player{Name: "Ana", Team: TeamA}).Validate(); err != nil {
		t.Fatalf("expected valid player: %v", err)
	}
	if err := (Player{Name: "  ", Team: TeamA}).Validate(); err == nil {
		t.Fatalf("expected blank name to fail")
	}
	if err := (Player{Name: "Ana", Team: "Time Z"}).Validate(); err == nil {
		t.Fatalf("expected unknown team to fail")
	}
}

func TestCountByTeam(t *testing.T) {
	counts := CountByTeam([]Player{
		{Name: "Ana", Team: TeamA},
		{Name: "Bia", Team: TeamA},
		{Name: "Caio", Team: TeamB},
	})
	if counts[TeamA] != 2 || counts[TeamB] != 1 {
		t.Fatalf("unexpected counts: %v", counts)
	}

	empty := CountByTeam(nil)
	if len(empty) != 2 || empty[TeamA] != 0 || empty[TeamB] != 0 {
		t.Fatalf("expected zeroed counts for both teams, got %v", empty)
	}
}
