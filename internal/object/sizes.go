package object

// SpriteScale shrinks every sprite size below to its on-screen size.
const SpriteScale = 0.5

// Collision and draw sizes in world units.
const (
	PlayerWidth       = 144 * SpriteScale
	PlayerHeight      = 75 * SpriteScale
	EnemyWidth        = 144 * SpriteScale
	EnemyHeight       = 75 * SpriteScale
	PlayerLaserWidth  = 9 * SpriteScale
	PlayerLaserHeight = 54 * SpriteScale
	EnemyLaserWidth   = 17 * SpriteScale
	EnemyLaserHeight  = 55 * SpriteScale
)

// LaserMargin is how far past the view edge a laser travels before it is removed.
const LaserMargin = 200.0
