// Package config centralizes all tunable game parameters.
package config

import "time"

// View resolution - the visible play field in world units.
// Actual rendering scales to fit the terminal or window.
const (
	ViewWidth  = 600
	ViewHeight = 700
)

// Max render resolution in terminal cells. Larger terminals get a centred,
// bordered play field instead of huge half-blocks.
const (
	MaxRenderCols = 120
	MaxRenderRows = 70
)

// Scoring
const (
	ScoreEnemy = 100
)

// Player
const (
	InitialLives       = 3
	PlayerRespawnDelay = 2 * time.Second
)

// Enemies
const (
	EnemyMax            = 4
	EnemySpawnInterval  = time.Second
	EnemyFireRate       = 1.0 // Expected volleys per second
	FormationMembersMax = 2   // Enemies sharing one formation template
)

// Collisions
const (
	CollisionCellSize = 80.0 // Broad phase cell size in world units
)

// Shutdown
const (
	ShutdownDisplayTime = 10 * time.Second // How long the shutdown message shows before disconnecting
)

// Inactivity
const (
	InactivityWarnUser       = 90 * time.Second
	InactivityDisconnectUser = 120 * time.Second
)

// Frame pacing
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
	MaxDelta        = 60 * time.Millisecond // Longer frames are simulated as this
)
