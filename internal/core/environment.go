package core

import "strings"

// Environment is the deployment stage the storefront core runs in.
// It only drives logger setup; pricing never depends on it.
type Environment string

const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Testing     Environment = "testing"
	Production  Environment = "production"
)

func (e Environment) String() string {
	return string(e)
}

// IsProduction reports whether the environment corresponds to production.
func (e Environment) IsProduction() bool {
	return e == Production
}

// Decode lets envconfig parse ENVIRONMENT straight into an Environment.
func (e *Environment) Decode(v string) error {
	*e = ParseEnvironment(v)
	return nil
}

// ParseEnvironment normalises the provided value into one of the known environments.
// Matching ignores case and surrounding spaces; unknown values fall back to Development.
func ParseEnvironment(v string) Environment {
	switch env := Environment(strings.ToLower(strings.TrimSpace(v))); env {
	case Production, Staging, Testing:
		return env
	case "prod":
		return Production
	default:
		return Development
	}
}
