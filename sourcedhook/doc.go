// Package sourcedhook decodes explicon.Sourced fields with mapstructure.
//
// Data shaped like {"env": "NAME"} becomes an Env reference; anything else is
// decoded into the field's value type.
//
// Example:
//
//	v := viper.New()
//	// ... read config ...
//	err := v.Unmarshal(&cfg, viper.DecodeHook(sourcedhook.DecodeHook(sourcedhook.Options{})))
package sourcedhook
