package breakout

// Sound identifies an audio cue fired by the engine.
type Sound int

const (
	SoundWall Sound = iota
	SoundPaddle
	SoundBrick
	SoundLifeLost
	SoundPowerUp
	SoundGameOver
	SoundMusic // background loop, started with each new game
)

// String returns the cue name.
func (s Sound) String() string {
	switch s {
	case SoundWall:
		return "wall"
	case SoundPaddle:
		return "paddle"
	case SoundBrick:
		return "brick"
	case SoundLifeLost:
		return "life_lost"
	case SoundPowerUp:
		return "powerup"
	case SoundGameOver:
		return "game_over"
	case SoundMusic:
		return "music"
	default:
		return "unknown"
	}
}

// SoundPlayer plays cues fire-and-forget. Implementations must not block the tick.
type SoundPlayer interface {
	Play(s Sound)
}

// NopSound is a SoundPlayer that plays nothing.
type NopSound struct{}

func (NopSound) Play(Sound) {}
