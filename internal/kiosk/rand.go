package kiosk

import "math/rand"

// Rand supplies the random draws the kiosk displays (order numbers,
// delivery ETAs). Injectable so tests pin the values.
type Rand interface {
	Intn(n int) int
}

type SystemRand struct{}

func (SystemRand) Intn(n int) int { return rand.Intn(n) }
