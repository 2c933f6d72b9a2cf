package loop

import (
	"github.com/tomz197/whuacamole/internal/object"
)

// Step advances the game by one fixed tick with the given input.
func (s *State) Step(in object.Input) {
	s.Input = in
	if in.Quit {
		s.Running = false
		return
	}

	switch s.GameState {
	case GameStateIntro:
		if in.AnyKey() {
			s.GameState = GameStateRunning
			s.log.Info("game started")
		}
	case GameStateRunning:
		s.updateRunning()
	}
}

// updateRunning is one tick of gameplay: physics, projectiles, scoring,
// spawning, growth and finally input events.
func (s *State) updateRunning() {
	s.Tick++
	p := s.Player

	p.Steer(s.Input)
	p.SolveWindowCollisions()
	p.Move()

	s.updateProjectiles()
	s.checkScore()

	if s.Tick%s.Config.SpawnInterval == 0 {
		s.spawnProjectile()
	}

	p.Grow()

	if s.Input.Grow {
		p.Growing = true
	}
}

// updateProjectiles advances every group and drops the ones that left the
// display or reached the avatar.
func (s *State) updateProjectiles() {
	view := s.Config.View()
	center := s.Player.Center()

	kept := s.Projectiles[:0] // reuse backing array
	for _, pro := range s.Projectiles {
		pro.UpdatePositions()
		if pro.MovingOutsideView(view) {
			s.log.Debug("projectile left view", "type", projectileKind(pro))
			continue
		}
		if pro.CheckCollisionWithPoint(center, s.Player.Radius) {
			s.Hits++
			s.log.Info("hit", "type", projectileKind(pro), "hits", s.Hits)
			continue
		}
		kept = append(kept, pro)
	}
	clear(s.Projectiles[len(kept):])
	s.Projectiles = kept
}

// checkScore collects the target when the avatar circle reaches it.
func (s *State) checkScore() {
	if !s.Target.TouchedBy(s.Player.Center(), s.Player.Radius) {
		return
	}
	s.Target = object.NewTarget(s.Config, s.rng)
	s.Score++
	s.Player.ResetRadius()
	s.log.Info("point collected", "score", s.Score)
}

// spawnProjectile adds a new group away from the player.
func (s *State) spawnProjectile() {
	pro := s.spawner.Next(s.Player.Pos)
	s.Projectiles = append(s.Projectiles, pro)
	s.log.Debug("projectile spawned", "type", projectileKind(pro), "count", pro.Remaining(), "active", len(s.Projectiles))
}

// projectileKind names a projectile for logging.
func projectileKind(p object.Projectile) string {
	switch p.(type) {
	case *object.Sinusoid:
		return "sinusoid"
	case *object.Circle:
		return "circle"
	default:
		return "unknown"
	}
}

// Draw renders the avatar, target and projectiles relative to the window.
func (s *State) Draw(surface object.Surface) error {
	ctx := object.DrawContext{
		Surface: surface,
		Camera:  s.Camera(),
	}
	if err := s.Player.Draw(ctx); err != nil {
		return err
	}
	if err := s.Target.Draw(ctx); err != nil {
		return err
	}
	for _, pro := range s.Projectiles {
		if err := pro.Draw(ctx); err != nil {
			return err
		}
	}
	return nil
}
