// Package conf implements the configuration of django-develop itself, with
// drop-in file support.
//
// # Usage
//
// The global Configuration variable is automatically loaded at package initialization:
//
//	import "github.com/PiDelport/django-develop/internal/conf"
//
//	func main() {
//	    fmt.Println(conf.Configuration.InstanceName)
//	}
//
// For custom configuration loading (e.g., testing), use ConfigSource:
//
//	cs := &conf.ConfigSource{
//	    Path:      "/custom/path/config.toml",
//	    DropInDir: "/custom/path/config.toml.d",
//	}
//	config, err := cs.Read()
//
// # Load Order
//
// Config is loaded and applied in three layers:
//
//  1. Embedded defaults (defaults.toml)
//  2. Main config file: $XDG_CONFIG_HOME/django-develop/config.toml
//  3. Drop-in files: $XDG_CONFIG_HOME/django-develop/config.toml.d/*.toml, in
//     lexicographic order
//
// # Keys
//
//   - log-level: ERROR, WARN, INFO, DEBUG or TRACE
//   - search-path: extra roots searched for settings modules
//   - python: interpreter used to run Django instead of the virtualenv's
//   - instance-name: name of the instance directory inside the virtualenv
//
// # Internal Architecture
//
//   - configDTO: internal struct with pointer fields for TOML parsing.
//     Pointers allow distinguishing "not set" (nil) from "set to zero value".
//
//   - Config: public struct with value fields. Has Update() method
//     to apply DTO values.
//
//   - ConfigSource: orchestrates loading from multiple sources and manages
//     their merging.
package conf
