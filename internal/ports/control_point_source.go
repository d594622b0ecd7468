package ports

import "github.com/normgirm/addisland-locator/internal/domain"

// Port: supplies the deployed calibration control-point set. Backed by a
// loaded configuration table so the calibration region can be swapped
// without touching transform logic.
type ControlPointSource interface {
	ControlPoints() ([]domain.ControlPoint, error)
}
