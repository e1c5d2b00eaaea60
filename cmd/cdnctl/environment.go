package main

import (
	"fmt"

	"github.com/spf13/pflag"
)

type EnvironmentFlag string

const (
	EnvironmentProd  EnvironmentFlag = "prod"
	EnvironmentStage EnvironmentFlag = "stage"
	EnvironmentDev   EnvironmentFlag = "dev"
	EnvironmentLocal EnvironmentFlag = "local"
)

var (
	_               pflag.Value = (*EnvironmentFlag)(nil)
	allEnvironments             = []EnvironmentFlag{EnvironmentProd, EnvironmentStage, EnvironmentDev, EnvironmentLocal}
)

// Set implements pflag.Value.
func (e *EnvironmentFlag) Set(val string) error {
	for _, env := range allEnvironments {
		if val == string(env) {
			*e = env
			return nil
		}
	}
	return fmt.Errorf("invalid environment %q, valid values are %v", val, allEnvironments)
}

// String implements pflag.Value.
func (e *EnvironmentFlag) String() string {
	if e == nil {
		return ""
	}
	return string(*e)
}

// Type implements pflag.Value.
func (e *EnvironmentFlag) Type() string {
	return "Environment"
}
