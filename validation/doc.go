// Package validation validates configuration structs using struct tags and
// github.com/go-playground/validator/v10.
//
//	type Settings struct {
//	    Name string `mapstructure:"name" validate:"required"`
//	}
//	err := validation.Validate(settings)
//
// Field names in errors follow the mapstructure tag, so messages use the same
// dotted paths as the configuration file.
package validation
