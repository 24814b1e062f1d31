// Package cleaner holds the two transformation stages of the pipeline:
// column normalization and required-field filtering.
//
// NormalizeColumns standardizes column names to their canonical
// lower_underscore form and strips leading and trailing whitespace from
// every text cell. CleanRequiredFields then drops every row whose
// required columns do not all hold a present, numeric, non-negative
// value.
//
// Both functions leave their input table untouched and return a new one,
// so a caller can keep the raw table around for inspection after a run.
package cleaner
