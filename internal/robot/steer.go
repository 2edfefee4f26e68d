package robot

// Steering is the adjustment chosen by the obstacle policy.
type Steering struct {
	Advance bool
	Turn    float64
}

// Steer advances one unit while the forward sensor is clear and otherwise
// turns by turnStep degrees. Left and right readings are reported but do not
// change the turn.
func Steer(s Sensors, turnStep float64) Steering {
	if !s.Forward {
		return Steering{Advance: true}
	}
	return Steering{Turn: turnStep}
}
