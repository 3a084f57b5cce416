package valueobjects

import "fmt"

type Environment string

const (
	EnvironmentProduction  Environment = "production"
	EnvironmentStaging     Environment = "staging"
	EnvironmentDevelopment Environment = "development"
)

var validEnvironments = map[Environment]bool{
	EnvironmentProduction:  true,
	EnvironmentStaging:     true,
	EnvironmentDevelopment: true,
}

func (e Environment) String() string {
	return string(e)
}

func (e Environment) IsValid() bool {
	return validEnvironments[e]
}

func NewEnvironment(s string) (Environment, error) {
	e := Environment(s)
	if !e.IsValid() {
		return "", fmt.Errorf("invalid environment: %s", s)
	}
	return e, nil
}
