// Package config loads configuration for applications composing injection
// containers, and exposes configuration entries as a value source for
// injection keys.
//
// It uses Viper to read a config.yml, godotenv to load .env files, and maps
// environment variables onto nested keys (LOGGING_LEVEL -> logging.level).
//
// # Loading
//
//	var settings config.Settings
//	err := config.LoadConfig("my-service", &settings)
//
// Paths are resolved against the working directory of the calling
// application. Without an explicit file, config.yml is searched in
// cmd/<service>/ (up to two parent directories), then config/, then the
// working directory; .env.<service> and .env are searched the same way.
//
// # Composition root
//
//	root, err := config.Bootstrap(ctx, "my-service")
//	defer root.Shutdown(ctx)
//	timeout := injection.Get(root.Values, TimeoutKey)
//
// Bootstrap initializes the global logger and the meter provider from
// Settings, and returns Values whose keys without an override are read from
// the section named by source.prefix ("injection" by default). A key named
// "timeout" is then read from injection.timeout.
//
// # Keys from configuration
//
//	v, _ := config.Load("my-service")
//	src := config.NewSource(v, "injection")
//	values := injection.New(injection.WithMissHandler(src.MissHandler()))
package config
