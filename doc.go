// Package explicon provides configuration values that are either given literally
// or read from an environment variable when resolved.
//
// Quick Start:
//
//	type Config struct {
//	    Port     explicon.Sourced[int]    `json:"port"`     // 8080 or {"env": "APP_PORT"}
//	    Password explicon.Sourced[string] `json:"password"` // {"env": "DB_PASSWORD"}
//	}
//
//	port, err := explicon.Resolve(cfg.Port)
//	pass := explicon.ResolveFromStringOr(cfg.Password, "")
//
// Sourced decodes from JSON, YAML (gopkg.in/yaml.v3) and TOML (NewTOMLDecoder), and
// from generic maps through the sourcedhook package.
//
// Resolution helpers: Resolve, ResolveOrDefault, ResolveOr, ResolveAndValidate for
// Parseable types; ResolveFromString, ResolveFromStringOr, ResolveFromStringAndValidate
// for StringConstructible types; ResolveText, ResolveTextOr, ResolveTextAndValidate for
// types whose pointer implements encoding.TextUnmarshaler (netip.Addr, big.Int); and
// Sourced.ResolveFunc with ResolveFuncOr / ResolveFuncAndValidate for anything else.
//
// See example_test.go for detailed usage.
package explicon
