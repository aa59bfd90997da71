package system

import "github.com/milk9111/mistwood/ecs"

// NewGameplayScheduler returns the systems of a stage in tick order. Player
// physics settles before anything else moves, and triggers see the final
// positions of the tick.
func NewGameplayScheduler(input *InputSystem, trigger *TriggerSystem) *ecs.Scheduler {
	return ecs.NewScheduler(
		input,
		NewPlayerControllerSystem(),
		NewPhysicsSystem(),
		NewPlayerStateSystem(),
		NewRespawnSystem(),
		NewAnimationSystem(),
		NewHazardSystem(),
		NewScrollSystem(),
		NewFadeSystem(),
		NewParticleSystem(),
		trigger,
	)
}
