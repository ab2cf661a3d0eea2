package wireframe

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrSurfaceEmpty is reported when the surface has no drawable area.
	ErrSurfaceEmpty = errors.New("wireframe: surface has zero size")

	// ErrInvalidOptions is the cause of every option validation failure.
	ErrInvalidOptions = errors.New("wireframe: invalid options")

	errNilSurface = errors.New("wireframe: nil surface")
)

// InvalidGeometryError reports a face that references a vertex outside the vertex list.
type InvalidGeometryError struct {
	Face        int
	Position    int
	Index       int
	VertexCount int
}

func (e *InvalidGeometryError) Error() string {
	return fmt.Sprintf("wireframe: face %d position %d references vertex %d (have %d vertices)",
		e.Face, e.Position, e.Index, e.VertexCount)
}

// SurfaceUnavailableError is reported through Options.OnError when a frame cannot be
// drawn. The loop that produced it has already stopped.
type SurfaceUnavailableError struct {
	Generation uuid.UUID
	Err        error
}

func (e *SurfaceUnavailableError) Error() string {
	return fmt.Sprintf("wireframe: surface unavailable: %v", e.Err)
}

func (e *SurfaceUnavailableError) Unwrap() error { return e.Err }
