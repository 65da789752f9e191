package staticconfig

import (
	"github.com/go-logr/logr"

	"github.com/arloliu/sja1105/errs"
	"github.com/arloliu/sja1105/format"
	"github.com/arloliu/sja1105/internal/options"
	"github.com/arloliu/sja1105/packing"
)

// settings is shared by Assembler and Parser.
type settings struct {
	engine       packing.Engine
	logger       logr.Logger
	family       format.Family
	strictLength bool
}

func defaultSettings() settings {
	return settings{
		engine: packing.DefaultEngine(),
		logger: logr.Discard(),
	}
}

// Option configures an Assembler or a Parser.
type Option = options.Option[*settings]

// WithEngine sets the packing engine, and so the quirk mode, of the image.
func WithEngine(engine packing.Engine) Option {
	return options.NoError(func(s *settings) {
		s.engine = engine
	})
}

// WithQuirks is shorthand for WithEngine(packing.NewEngine(q)).
func WithQuirks(q packing.Quirks) Option {
	return options.NoError(func(s *settings) {
		s.engine = packing.NewEngine(q)
	})
}

// WithLogger sets the logger. Per-table tracing is logged at V(1).
func WithLogger(logger logr.Logger) Option {
	return options.NoError(func(s *settings) {
		s.logger = logger
	})
}

// WithFamily overrides the family derived from the device id. It allows
// images of unreleased or misprogrammed device ids to be handled.
func WithFamily(family format.Family) Option {
	return options.New(func(s *settings) error {
		if family == format.FamilyUnknown {
			return errs.ErrUnknownDevice
		}
		s.family = family

		return nil
	})
}

// WithStrictLength makes the parser fail with errs.ErrTableLengthMismatch
// instead of warning and realigning. The assembler ignores it.
func WithStrictLength(strict bool) Option {
	return options.NoError(func(s *settings) {
		s.strictLength = strict
	})
}

func (s *settings) resolveFamily(id format.DeviceID) format.Family {
	if s.family != format.FamilyUnknown {
		return s.family
	}

	return id.Family()
}
