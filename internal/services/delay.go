package services

import (
	"math/rand"
	"time"
)

// Response delays keep scheduled AI replies feeling human: the coach answers
// within the hour, the peer drifts in later. Nothing downstream depends on
// reproducibility, so no seeding.
const (
	sarahDelayMinMinutes = 15
	sarahDelayMaxMinutes = 60

	zombieDelayMinMinutes = 60
	zombieDelayMaxMinutes = 180
)

type DelayCalculator interface {
	SarahDelay() time.Duration
	ZombieDelay() time.Duration
}

type delayCalculator struct{}

func NewDelayCalculator() DelayCalculator {
	return delayCalculator{}
}

func (delayCalculator) SarahDelay() time.Duration {
	return randomMinutes(sarahDelayMinMinutes, sarahDelayMaxMinutes)
}

func (delayCalculator) ZombieDelay() time.Duration {
	return randomMinutes(zombieDelayMinMinutes, zombieDelayMaxMinutes)
}

func randomMinutes(min, max int) time.Duration {
	n := min + rand.Intn(max-min+1)
	return time.Duration(n) * time.Minute
}
