// Package config provides centralized configuration management for the
// cleaning tool. It handles loading configuration from multiple sources,
// validation, and the conventional directory layout.
//
// # Configuration Sources
//
// Configuration is loaded from the following sources in order of
// precedence:
//
//	1. Environment variables (highest priority)
//	2. Configuration file (YAML)
//	3. Built-in defaults (lowest priority)
//
// Command-line flags are applied by the caller on top of the loaded
// configuration and therefore win over all three.
//
// # Environment Variables
//
// Environment variables are namespaced with the SALESCLEAN_ prefix and
// cover paths and logging only:
//
//	SALESCLEAN_INPUT_PATH=data/raw/sales_data_raw.csv
//	SALESCLEAN_OUTPUT_PATH=data/processed/sales_data_clean.csv
//	SALESCLEAN_LOG_LEVEL=debug
//	SALESCLEAN_LOG_OUTPUT=both
//
// # Path Management
//
// The Paths type describes the conventional layout rooted at the working
// directory: raw input under data/raw, cleaned output under
// data/processed, logs under logs. EnsureDirectories creates the layout
// on first run.
package config
