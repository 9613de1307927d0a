package types

import (
	"testing"
	"time"
)

func TestScholarshipState(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	future := now.Add(24 * time.Hour)
	past := now.Add(-24 * time.Hour)

	cases := []struct {
		name string
		pod  Pod
		want string
	}{
		{
			name: "used wins over everything",
			pod:  Pod{ScholarshipUsed: true, ScholarshipExpiresAt: &future, MasterclassDay: 9},
			want: ScholarshipUsed,
		},
		{
			name: "open window is active",
			pod:  Pod{ScholarshipExpiresAt: &future},
			want: ScholarshipActive,
		},
		{
			name: "past window is expired",
			pod:  Pod{ScholarshipExpiresAt: &past},
			want: ScholarshipExpired,
		},
		{
			name: "now equal to expiry is expired",
			pod:  Pod{ScholarshipExpiresAt: &now},
			want: ScholarshipExpired,
		},
		{
			name: "expired window wins over day eligibility",
			pod:  Pod{ScholarshipExpiresAt: &past, MasterclassDay: 9},
			want: ScholarshipExpired,
		},
		{
			name: "day 8 with no window is pending",
			pod:  Pod{MasterclassDay: 8},
			want: ScholarshipPending,
		},
		{
			name: "early day with no window is none",
			pod:  Pod{MasterclassDay: 3},
			want: ScholarshipNone,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.pod.ScholarshipState(now)
			if got != tc.want {
				t.Fatalf("ScholarshipState()=%q, want %q", got, tc.want)
			}
		})
	}
}

func TestPhase(t *testing.T) {
	passing := 80
	failing := 79

	cases := []struct {
		name string
		pod  Pod
		want string
	}{
		{name: "no exam score", pod: Pod{}, want: PodPhasePre},
		{name: "failing score", pod: Pod{ExamScore: &failing}, want: PodPhasePre},
		{name: "passing score at boundary", pod: Pod{ExamScore: &passing}, want: PodPhasePost},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.pod.Phase(); got != tc.want {
				t.Fatalf("Phase()=%q, want %q", got, tc.want)
			}
		})
	}
}

func TestDeadlineAt(t *testing.T) {
	started := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	pod := Pod{StartedAt: started}
	want := started.Add(48 * time.Hour)
	if got := pod.DeadlineAt(); !got.Equal(want) {
		t.Fatalf("DeadlineAt()=%v, want %v", got, want)
	}
}
