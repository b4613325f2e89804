// SPDX-License-Identifier: MIT

package relax

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/skinrelax/kernel"
	"github.com/katalvlaran/skinrelax/weights"
)

// Config is the caller-facing configuration of one session.
type Config struct {
	// Iterations is the number of kernel rounds; 0 leaves weights unchanged.
	Iterations int `yaml:"iterations"`

	// Kernel is one of laplacian, rbf, biharmonic, relax.
	Kernel string `yaml:"kernel"`

	RBF        RBFConfig        `yaml:"rbf"`
	Biharmonic BiharmonicConfig `yaml:"biharmonic"`
	Relax      RelaxConfig      `yaml:"relax"`

	// OnlyUnlockInfluences conserves the unlocked mass of every vertex and
	// keeps locked influences unchanged.
	OnlyUnlockInfluences bool `yaml:"only_unlock_influences"`

	// BlendWeights interpolates from the original (→0) to the smoothed (1)
	// weights. Must be in (0, 1].
	BlendWeights float64 `yaml:"blend_weights"`
}

// RBFConfig holds RBF kernel parameters.
type RBFConfig struct {
	// Function is one of gaussian, linear, inverse_distance.
	Function string  `yaml:"function"`
	Sigma    float64 `yaml:"sigma"`
	Power    float64 `yaml:"power"`
}

// BiharmonicConfig holds the biharmonic blend weights; they must sum to 1.
type BiharmonicConfig struct {
	FirstOrderWeight  float64 `yaml:"first_order_weight"`
	SecondOrderWeight float64 `yaml:"second_order_weight"`
}

// RelaxConfig holds the relax kernel factor in (0, 1].
type RelaxConfig struct {
	RelaxationFactor float64 `yaml:"relaxation_factor"`
}

// DefaultConfig returns one Laplacian round, full blend, no lock conservation,
// and the default parameters of every other kernel.
func DefaultConfig() Config {
	return Config{
		Iterations: 1,
		Kernel:     kernel.Laplacian.String(),
		RBF: RBFConfig{
			Function: kernel.Gaussian.String(),
			Sigma:    kernel.DefaultSigma,
			Power:    kernel.DefaultPower,
		},
		Biharmonic: BiharmonicConfig{
			FirstOrderWeight:  kernel.DefaultFirstOrderWeight,
			SecondOrderWeight: kernel.DefaultSecondOrderWeight,
		},
		Relax:                RelaxConfig{RelaxationFactor: kernel.DefaultRelaxationFactor},
		OnlyUnlockInfluences: false,
		BlendWeights:         1.0,
	}
}

// KernelSpec converts the kernel section into a validated kernel.Spec.
func (c Config) KernelSpec() (kernel.Spec, error) {
	kind, err := kernel.ParseKind(c.Kernel)
	if err != nil {
		return kernel.Spec{}, err
	}
	spec := kernel.Spec{
		Kind: kind,
		Biharmonic: kernel.BiharmonicParams{
			FirstOrder:  c.Biharmonic.FirstOrderWeight,
			SecondOrder: c.Biharmonic.SecondOrderWeight,
		},
		Relax: kernel.RelaxParams{Factor: c.Relax.RelaxationFactor},
	}
	if kind == kernel.RBF {
		fn, err := kernel.ParseRBFFunc(c.RBF.Function)
		if err != nil {
			return kernel.Spec{}, err
		}
		spec.RBF = kernel.RBFParams{Func: fn, Sigma: c.RBF.Sigma, Power: c.RBF.Power}
	}
	if err := spec.Validate(); err != nil {
		return kernel.Spec{}, err
	}

	return spec, nil
}

// Validate checks every field. Errors match weights.ErrInvalidParameter.
func (c Config) Validate() error {
	if c.Iterations < 0 {
		return weights.NewParameterError("iterations", c.Iterations, "must be ≥ 0")
	}
	if !(c.BlendWeights > 0 && c.BlendWeights <= 1) {
		return weights.NewParameterError("blend_weights", c.BlendWeights, "must be in (0, 1]")
	}
	_, err := c.KernelSpec()

	return err
}

// ParseConfig decodes a YAML document over DefaultConfig and validates it.
// Unknown keys are rejected. An empty document yields the defaults.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("relax: config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("relax: config: %w", err)
	}

	return cfg, nil
}

// LoadConfig reads and parses the YAML file at path. An empty path yields
// DefaultConfig.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("relax: open config: %w", err)
	}

	return ParseConfig(data)
}
