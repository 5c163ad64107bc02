// Package loader provides the plugin-like feature loading system.
//
// Each toolbox widget (radix, ipv4, chmod, color, timestamp, calculator) and the theme
// preference is a Feature that registers its own route group.
//
// # Feature Interface
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// # Manager
//
// The Manager holds the registry of available features. It handles:
//   - Registration of features via Register()
//   - Loading of enabled features via LoadAll()
package loader
