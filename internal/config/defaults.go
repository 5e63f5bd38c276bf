package config

import "time"

// Built-in defaults used when no other configuration source provides a value.
const (
	DefaultHTTPAddress    = ":8080"
	DefaultUsersFile      = "users.json"
	DefaultCookieName     = "session"
	DefaultEnvironment    = EnvDevelopment
	DefaultRequestTimeout = 30 * time.Second
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Environment: DefaultEnvironment,
			CookieName:  DefaultCookieName,
		},
		Storage: Storage{
			Users: Users{
				File: DefaultUsersFile,
			},
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
	}
}
