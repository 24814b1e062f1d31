package config

// Application constants
const (
	AppName    = "salesclean"
	AppVersion = "1.2.0"

	// EnvPrefix namespaces the environment variables: SALESCLEAN_INPUT_PATH,
	// SALESCLEAN_OUTPUT_PATH, SALESCLEAN_LOG_LEVEL and friends.
	EnvPrefix = "SALESCLEAN"

	// Conventional file names inside the data layout
	DefaultInputFile  = "sales_data_raw.csv"
	DefaultOutputFile = "sales_data_clean.csv"
	DefaultLogFile    = "salesclean.log"
)
