package explicon_test

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/Azhovan/explicon"
	"gopkg.in/yaml.v3"
)

// Example demonstrates decoding a mix of literal and environment-sourced values.
func Example() {
	type Config struct {
		Host string                   `yaml:"host"`
		Port explicon.Sourced[int]    `yaml:"port"`
		User explicon.Sourced[string] `yaml:"user"`
		Mode explicon.Sourced[string] `yaml:"mode"`
		TLS  explicon.Sourced[bool]   `yaml:"tls"`
	}

	os.Setenv("EXAMPLE_DB_USER", "testuser")
	os.Setenv("EXAMPLE_DB_PORT", "5433")
	defer func() {
		os.Unsetenv("EXAMPLE_DB_USER")
		os.Unsetenv("EXAMPLE_DB_PORT")
	}()

	doc := `
host: localhost
port:
  env: EXAMPLE_DB_PORT
user:
  env: EXAMPLE_DB_USER
mode: dev
tls:
  env: EXAMPLE_DB_TLS
`
	var cfg Config
	if err := yaml.Unmarshal([]byte(doc), &cfg); err != nil {
		log.Fatal(err)
	}

	port, err := explicon.Resolve(cfg.Port)
	if err != nil {
		log.Fatal(err)
	}
	user, err := explicon.Resolve(cfg.User)
	if err != nil {
		log.Fatal(err)
	}
	mode, err := explicon.ResolveAndValidate(cfg.Mode, explicon.OneOf("dev", "prod"))
	if err != nil {
		log.Fatal(err)
	}
	tls := explicon.ResolveOr(cfg.TLS, true)

	fmt.Printf("Host: %s\n", cfg.Host)
	fmt.Printf("Port: %d\n", port)
	fmt.Printf("User: %s\n", user)
	fmt.Printf("Mode: %s\n", mode)
	fmt.Printf("TLS: %t\n", tls)

	// Output:
	// Host: localhost
	// Port: 5433
	// User: testuser
	// Mode: dev
	// TLS: true
}

// ExampleResolve_missing shows the error for an unset variable.
func ExampleResolve_missing() {
	_, err := explicon.Resolve(explicon.Env[int]("EXAMPLE_UNSET_VARIABLE"))

	fmt.Println(err)
	fmt.Println(explicon.IsVarLookupFailed(err))

	// Output:
	// error while resolving env var EXAMPLE_UNSET_VARIABLE: environment variable not found
	// true
}

// ExampleResolveFromString shows resolving a type that is built from raw text.
func ExampleResolveFromString() {
	type Token []byte

	lookup := explicon.MapLookup(map[string]string{"API_TOKEN": "s3cr3t"})

	token, err := explicon.ResolveFromString(explicon.Env[Token]("API_TOKEN"), explicon.WithLookup(lookup))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(len(token))

	// Output:
	// 6
}

// ExampleSourced_MarshalJSON shows both encoded shapes.
func ExampleSourced_MarshalJSON() {
	out, err := json.Marshal(map[string]explicon.Sourced[int]{
		"direct": explicon.Value(42),
		"env":    explicon.Env[int]("APP_PORT"),
	})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(out))

	// Output:
	// {"direct":42,"env":{"env":"APP_PORT"}}
}
