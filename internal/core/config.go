package core

// Frame-rate bounds accepted by the host loop.
const (
	DefaultTickRate = 60
	MaxTickRate     = 240
)

// RuntimeConfig describes the host terminal a duel is shown on.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second
	Seed     int64 // RNG seed for pattern generation; 0 = time based
}

// Normalized fills unset fields: an 80x24 screen and the default tick rate.
// Tick rates above MaxTickRate are capped.
func (c RuntimeConfig) Normalized() RuntimeConfig {
	if c.ScreenW <= 0 {
		c.ScreenW = 80
	}
	if c.ScreenH <= 0 {
		c.ScreenH = 24
	}
	switch {
	case c.TickRate <= 0:
		c.TickRate = DefaultTickRate
	case c.TickRate > MaxTickRate:
		c.TickRate = MaxTickRate
	}
	return c
}
