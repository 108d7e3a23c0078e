package entity

import (
	"math"
	"testing"
)

func TestPlayerArrivesWithinTolerance(t *testing.T) {
	p := NewPlayer("Runner", 10, 10)
	p.SetMoveTarget(10.05, 10)

	p.Update()

	if _, _, ok := p.MoveTarget(); ok {
		t.Fatal("expected move target to be cleared on arrival")
	}
	if p.VX != 0 || p.VY != 0 {
		t.Fatalf("expected zero velocity after arrival, got (%f, %f)", p.VX, p.VY)
	}
	if p.X != 10 || p.Y != 10 {
		t.Fatalf("expected position unchanged, got (%f, %f)", p.X, p.Y)
	}
}

func TestPlayerVelocityTowardsDistantTarget(t *testing.T) {
	p := NewPlayer("Runner", 10, 10)
	p.SetMoveTarget(13, 14) // 5 units away

	p.Update()

	speed := math.Hypot(p.VX, p.VY)
	if math.Abs(speed-p.Speed()) > 1e-9 {
		t.Fatalf("expected speed %f, got %f", p.Speed(), speed)
	}
	if math.Abs(p.VX/speed-0.6) > 1e-9 || math.Abs(p.VY/speed-0.8) > 1e-9 {
		t.Fatalf("expected direction (0.6, 0.8), got (%f, %f)", p.VX/speed, p.VY/speed)
	}
	if p.Facing != FacingSouth {
		t.Fatalf("expected facing south, got %s", p.Facing)
	}
}

func TestPlayerSpeedScalesWithAgility(t *testing.T) {
	p := NewPlayer("Runner", 0, 0)
	p.Agility = 10
	if want := 0.06 * 1.2; math.Abs(p.Speed()-want) > 1e-12 {
		t.Fatalf("expected speed %f, got %f", want, p.Speed())
	}
}

func TestPlayerUpdateKeepsInvariants(t *testing.T) {
	p := NewPlayer("Runner", 99.99, 0.01)
	p.VX, p.VY = 0.5, -0.5
	p.Energy = p.MaxEnergy

	for i := 0; i < 10; i++ {
		p.Update()
		if p.X < WorldMin || p.X > WorldMax || p.Y < WorldMin || p.Y > WorldMax {
			t.Fatalf("position escaped bounds: (%f, %f)", p.X, p.Y)
		}
		if p.Energy < 0 || p.Energy > p.MaxEnergy {
			t.Fatalf("energy out of range: %f", p.Energy)
		}
		if p.Health < 0 || p.Health > p.MaxHealth {
			t.Fatalf("health out of range: %d", p.Health)
		}
	}
	if p.X != WorldMax || p.Y != WorldMin {
		t.Fatalf("expected clamp to corner, got (%f, %f)", p.X, p.Y)
	}
}

func TestPlayerRegeneratesEnergyWhenIdle(t *testing.T) {
	p := NewPlayer("Runner", 5, 5)
	p.Energy = 10

	p.Update()
	if p.Energy <= 10 {
		t.Fatalf("expected idle regeneration, got %f", p.Energy)
	}

	p.Energy = 10
	p.VX = 0.01
	p.Update()
	if p.Energy != 10 {
		t.Fatalf("expected no regeneration while moving, got %f", p.Energy)
	}
}

func TestPlayerHealthAndEnergyBounds(t *testing.T) {
	p := NewPlayer("Runner", 0, 0)
	p.TakeDamage(500)
	if p.Health != 0 {
		t.Fatalf("expected health floored at 0, got %d", p.Health)
	}
	p.Heal(500)
	if p.Health != p.MaxHealth {
		t.Fatalf("expected health capped at max, got %d", p.Health)
	}
	if p.UseEnergy(p.MaxEnergy + 1) {
		t.Fatal("expected UseEnergy to fail when insufficient")
	}
	if !p.UseEnergy(20) || p.Energy != 30 {
		t.Fatalf("expected energy 30 after spending 20, got %f", p.Energy)
	}
	p.RestoreEnergy(100)
	if p.Energy != p.MaxEnergy {
		t.Fatalf("expected energy capped at max, got %f", p.Energy)
	}
}

func TestPlayerLevelsUp(t *testing.T) {
	p := NewPlayer("Runner", 0, 0)
	p.Health = 1

	p.AddExperience(260) // 100 for lvl2, 150 for lvl3, 10 left

	if p.Level != 3 {
		t.Fatalf("expected level 3, got %d", p.Level)
	}
	if p.Experience != 10 {
		t.Fatalf("expected 10 leftover exp, got %d", p.Experience)
	}
	if p.ExperienceToLevel != 225 {
		t.Fatalf("expected next threshold 225, got %d", p.ExperienceToLevel)
	}
	if p.MaxHealth != 120 || p.Health != 120 {
		t.Fatalf("expected refilled 120 health, got %d/%d", p.Health, p.MaxHealth)
	}
	if p.MaxEnergy != 60 || p.Energy != 60 {
		t.Fatalf("expected refilled 60 energy, got %f/%f", p.Energy, p.MaxEnergy)
	}
}

func TestDeriveFacing(t *testing.T) {
	cases := []struct {
		dx, dy float64
		want   Facing
	}{
		{1, 0, FacingEast},
		{-1, 0, FacingWest},
		{0, 1, FacingSouth},
		{0, -1, FacingNorth},
		{1, 1, FacingEast},   // tie goes horizontal
		{-1, -1, FacingWest}, // tie goes horizontal
		{0.2, -0.9, FacingNorth},
		{0, 0, FacingSouth},
	}
	for _, tc := range cases {
		if got := DeriveFacing(tc.dx, tc.dy, FacingSouth); got != tc.want {
			t.Fatalf("DeriveFacing(%v, %v) = %s, want %s", tc.dx, tc.dy, got, tc.want)
		}
	}
}
