package model

// Environment names.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// Scope carries the authenticated identity through use cases.
type Scope struct {
	UserID string
	Email  string
}
