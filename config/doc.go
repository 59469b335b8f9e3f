// Package config loads molfrag runtime configuration from an optional YAML
// file and MOLFRAG_* environment variables, with defaults taken from
// settings.Default.
//
// Environment variables follow MOLFRAG_<SECTION>_<FIELD>, for example
// MOLFRAG_FRAGMENTER_MAX_CHAIN_LENGTH or MOLFRAG_LOG_LEVEL.
package config
