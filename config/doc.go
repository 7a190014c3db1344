// Package config provides settings loading and validation for applications
// embedding optkit.
//
// It uses Viper to load settings from a YAML file and environment
// variables, with .env support via godotenv. Environment variables override
// file values using the OPTKIT_ prefix with underscore-separated paths
// (e.g., OPTKIT_LOGGING_LEVEL).
//
// # Usage
//
//	var s config.Settings
//	err := config.Load("my-app", &s, config.WithConfigFile("config.yml"))
package config
