package config

// Version system:
// vMAJOR.MINOR.PATCH

// Centralized version control
const (
	// Executable
	Main_version = "v1.1.0"

	// Components
	Benchmark    = "v1.1.0" // Timing harness and sweep runner
	Sorting      = "v1.0.0"
	Ran_Int_Gen  = "v1.0.0" // Formerly "Ran_DNA_Gen"
	Results      = "v1.0.0"
	Sanity_check = "v1.1.0"
)
