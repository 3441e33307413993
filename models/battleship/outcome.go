package battleship

import (
	cerr "github.com/saeidalz13/seabattle/internal/error"
)

// Result of AddShip. Anything but PlacementOK leaves the board untouched.
type PlacementStatus uint8

const (
	PlacementOK PlacementStatus = iota
	PlacementOutOfBounds
	PlacementCollision
)

func (p PlacementStatus) String() string {
	switch p {
	case PlacementOK:
		return "ok"
	case PlacementOutOfBounds:
		return "out of bounds"
	case PlacementCollision:
		return "collision"
	default:
		return "unknown"
	}
}

type ShotStatus uint8

const (
	ShotAccepted ShotStatus = iota
	ShotOutOfBounds
	ShotAlreadyTargeted
)

type ShotResult uint8

const (
	ShotResultNone ShotResult = iota
	ShotResultMiss
	ShotResultHit
	ShotResultSunk
)

func (r ShotResult) String() string {
	switch r {
	case ShotResultMiss:
		return "miss"
	case ShotResultHit:
		return "hit"
	case ShotResultSunk:
		return "sunk"
	default:
		return "none"
	}
}

// ShotOutcome is what Board.Shoot hands back. Result is only
// meaningful when Status is ShotAccepted.
type ShotOutcome struct {
	Target    Coordinates
	Status    ShotStatus
	Result    ShotResult
	SunkShip  *Ship
	dimension int
}

func (o ShotOutcome) Accepted() bool {
	return o.Status == ShotAccepted
}

// Hit and Sunk both let the shooter fire again.
func (o ShotOutcome) ShootAgain() bool {
	return o.Accepted() && (o.Result == ShotResultHit || o.Result == ShotResultSunk)
}

// Err describes a rejected shot; nil for accepted ones.
func (o ShotOutcome) Err() error {
	switch o.Status {
	case ShotOutOfBounds:
		return cerr.ErrCoordinatesOutOfBound(o.Target.Row, o.Target.Col, o.dimension)
	case ShotAlreadyTargeted:
		return cerr.ErrCoordinatesAlreadyTargeted(o.Target.Row, o.Target.Col)
	default:
		return nil
	}
}
