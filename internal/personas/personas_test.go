package personas

import "testing"

func TestNicheFromTag(t *testing.T) {
	cases := []struct {
		tag  string
		want string
	}{
		{"nutrition-webinar", NicheNutrition},
		{"fitness-optin", NicheFitness},
		{"womens_health-lead", NicheWomensHealth},
		{"NUTRITION-QUIZ", NicheNutrition},
		{"  fitness-masterclass  ", NicheFitness},
		{"nutrition", NicheNutrition},
		{"crypto-webinar", NicheGeneral},
		{"", NicheGeneral},
	}

	for _, tc := range cases {
		t.Run(tc.tag, func(t *testing.T) {
			if got := NicheFromTag(tc.tag); got != tc.want {
				t.Fatalf("NicheFromTag(%q)=%q, want %q", tc.tag, got, tc.want)
			}
		})
	}
}

func TestRostersAndScripts(t *testing.T) {
	for _, niche := range AllNiches() {
		roster := ZombiesFor(niche)
		if len(roster) == 0 {
			t.Fatalf("niche %q has an empty zombie roster", niche)
		}
		for _, z := range roster {
			found, ok := ZombieByKey(z.Key)
			if !ok || found.Name != z.Name {
				t.Fatalf("ZombieByKey(%q) did not round-trip", z.Key)
			}
		}

		script := ScriptFor(niche)
		if len(script) == 0 {
			t.Fatalf("niche %q has no day script", niche)
		}
		for i, day := range script {
			if day.DayNumber != i {
				t.Fatalf("niche %q day %d has DayNumber %d, want contiguous from 0", niche, i, day.DayNumber)
			}
		}
		if TotalLessons(niche) != len(script) {
			t.Fatalf("TotalLessons(%q)=%d, want %d", niche, TotalLessons(niche), len(script))
		}
	}
}

func TestUnknownNicheFallsBackToGeneral(t *testing.T) {
	if got := ZombiesFor("astrology"); len(got) == 0 || got[0].Key != ZombiesFor(NicheGeneral)[0].Key {
		t.Fatalf("unknown niche should use the general roster")
	}
	if _, ok := DayFor("astrology", 0); !ok {
		t.Fatalf("unknown niche should use the general script")
	}
	if _, ok := DayFor(NicheGeneral, 99); ok {
		t.Fatalf("day past the end of the script should not resolve")
	}
}
