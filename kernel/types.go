// SPDX-License-Identifier: MIT

package kernel

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/skinrelax/weights"
)

// Kind selects a smoothing kernel.
type Kind int

const (
	// Laplacian replaces a vertex with the mean of its 1-ring.
	Laplacian Kind = iota
	// RBF replaces a vertex with a distance-weighted mean of its 1-ring.
	RBF
	// Biharmonic blends the means of the 1-ring and the 2-ring.
	Biharmonic
	// Relax moves a vertex toward the mean of its 1-ring by a factor.
	Relax
)

var kindNames = [...]string{"laplacian", "rbf", "biharmonic", "relax"}

// String returns the lower-case kernel name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind maps a case-insensitive name to a Kind.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}
	return 0, weights.NewParameterError("kernel", s, "unknown kernel")
}

// RBFFunc selects the radial basis function of the RBF kernel.
type RBFFunc int

const (
	// Gaussian is exp(−d²/(2σ²)).
	Gaussian RBFFunc = iota
	// Linear is max(1 − d, 0).
	Linear
	// InverseDistance is 1/dᵖ.
	InverseDistance
)

var rbfNames = [...]string{"gaussian", "linear", "inverse_distance"}

// String returns the snake-case function name.
func (f RBFFunc) String() string {
	if f < 0 || int(f) >= len(rbfNames) {
		return fmt.Sprintf("RBFFunc(%d)", int(f))
	}
	return rbfNames[f]
}

// ParseRBFFunc maps a case-insensitive name to an RBFFunc. Both
// "inverse_distance" and "inverse-distance" are accepted.
func ParseRBFFunc(s string) (RBFFunc, error) {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for i, n := range rbfNames {
		if n == name {
			return RBFFunc(i), nil
		}
	}
	return 0, weights.NewParameterError("rbf.function", s, "unknown radial basis function")
}

// Default kernel parameters.
const (
	DefaultSigma             = 1.0
	DefaultPower             = 2.0
	DefaultFirstOrderWeight  = 0.75
	DefaultSecondOrderWeight = 0.25
	DefaultRelaxationFactor  = 0.5

	// BiharmonicTolerance bounds |first + second − 1|.
	BiharmonicTolerance = 1e-5
)

// RBFParams configures the RBF kernel.
type RBFParams struct {
	Func RBFFunc
	// Sigma is the gaussian width; used by Gaussian only.
	Sigma float64
	// Power is the distance exponent; used by InverseDistance only.
	Power float64
}

// Weight evaluates the radial basis function at distance d.
// InverseDistance returns +Inf at d == 0.
func (p RBFParams) Weight(d float64) float64 {
	switch p.Func {
	case Gaussian:
		return math.Exp(-(d * d) / (2 * p.Sigma * p.Sigma))
	case Linear:
		return math.Max(1-d, 0)
	case InverseDistance:
		if d == 0 {
			return math.Inf(1)
		}
		return 1 / math.Pow(d, p.Power)
	default:
		return 0
	}
}

// BiharmonicParams holds the first- and second-order blend weights.
type BiharmonicParams struct {
	FirstOrder  float64
	SecondOrder float64
}

// RelaxParams holds the relaxation factor f ∈ (0, 1].
type RelaxParams struct {
	Factor float64
}

// Spec is a kernel selection with the parameters of every kernel kind.
// Only the parameters of Kind are consulted.
type Spec struct {
	Kind       Kind
	RBF        RBFParams
	Biharmonic BiharmonicParams
	Relax      RelaxParams
}

// DefaultSpec returns a Spec of kind k with default parameters for all kinds.
func DefaultSpec(k Kind) Spec {
	return Spec{
		Kind:       k,
		RBF:        RBFParams{Func: Gaussian, Sigma: DefaultSigma, Power: DefaultPower},
		Biharmonic: BiharmonicParams{FirstOrder: DefaultFirstOrderWeight, SecondOrder: DefaultSecondOrderWeight},
		Relax:      RelaxParams{Factor: DefaultRelaxationFactor},
	}
}

// Validate checks the parameters of s.Kind.
// Returns *weights.ParameterError (matches weights.ErrInvalidParameter).
func (s Spec) Validate() error {
	switch s.Kind {
	case Laplacian:
		return nil
	case RBF:
		return s.RBF.validate()
	case Biharmonic:
		sum := s.Biharmonic.FirstOrder + s.Biharmonic.SecondOrder
		if math.IsNaN(sum) || math.Abs(sum-1) > BiharmonicTolerance {
			return weights.NewParameterError("biharmonic.first_order_weight+second_order_weight", sum, "must sum to 1.0")
		}
		return nil
	case Relax:
		f := s.Relax.Factor
		if !(f > 0 && f <= 1) {
			return weights.NewParameterError("relax.relaxation_factor", f, "must be in (0, 1]")
		}
		return nil
	default:
		return weights.NewParameterError("kernel", int(s.Kind), "unknown kernel")
	}
}

func (p RBFParams) validate() error {
	switch p.Func {
	case Gaussian:
		if !(p.Sigma > 0) || math.IsInf(p.Sigma, 0) {
			return weights.NewParameterError("rbf.sigma", p.Sigma, "must be finite and > 0")
		}
	case Linear:
	case InverseDistance:
		if !(p.Power > 0) || math.IsInf(p.Power, 0) {
			return weights.NewParameterError("rbf.power", p.Power, "must be finite and > 0")
		}
	default:
		return weights.NewParameterError("rbf.function", int(p.Func), "unknown radial basis function")
	}
	return nil
}

// NeedsSecondOrder reports whether the kernel reads 2-ring neighbors.
func (s Spec) NeedsSecondOrder() bool { return s.Kind == Biharmonic }

// NeedsPositions reports whether the kernel reads vertex positions.
func (s Spec) NeedsPositions() bool { return s.Kind == RBF }

// PositionProvider returns static vertex positions.
type PositionProvider interface {
	Positions(vertices []weights.VertexIndex) (map[weights.VertexIndex]r3.Vec, error)
}
