package config

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

func parseConstraint(s string) (*semver.Constraints, error) {
	c, err := semver.NewConstraint(s)
	if err != nil {
		return nil, fmt.Errorf("invalid constraint %q: %w", s, err)
	}
	return c, nil
}

// CheckVersion enforces required_version against the running formatter
// version. Development builds without a semver version are not checked.
func (c Config) CheckVersion(running string) error {
	if c.RequiredVersion == "" {
		return nil
	}
	constraint, err := parseConstraint(c.RequiredVersion)
	if err != nil {
		return err
	}
	v, err := semver.NewVersion(running)
	if err != nil {
		return nil
	}
	if ok, errs := constraint.Validate(v); !ok {
		msg := ""
		if len(errs) > 0 {
			msg = ": " + errs[0].Error()
		}
		return fmt.Errorf("%w (%s, running %s)%s", ErrVersionPinned, c.RequiredVersion, v, msg)
	}
	return nil
}
