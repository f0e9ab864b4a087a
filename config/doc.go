// SPDX-License-Identifier: MIT

// Package config loads region generator parameters from YAML.
//
// A parameter file looks like:
//
//	seed: 8
//	variety: 4
//	size: 9
//	steps: 9
//
// Missing keys keep the values from Default. Unknown keys are rejected so
// typos do not silently fall back to defaults.
package config
