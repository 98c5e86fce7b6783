package domain

// Config represents the healthgain configuration loaded from healthgain.yaml.
type Config struct {
	Defaults DefaultsConfig
	Paths    PathsConfig
	Exports  ExportsConfig
	Server   ServerConfig
}

type DefaultsConfig struct {
	Locale Locale
}

type PathsConfig struct {
	ExportsDir string
}

type ExportsConfig struct {
	// Index appends one JSON line per saved result to <exports>/index.jsonl.
	Index bool
}

type ServerConfig struct {
	Addr string
}

// DefaultConfig provides sane defaults if healthgain.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Defaults: DefaultsConfig{
			Locale: LocaleEN,
		},
		Paths: PathsConfig{
			ExportsDir: "exports",
		},
		Exports: ExportsConfig{
			Index: true,
		},
		Server: ServerConfig{
			Addr: "127.0.0.1:8080",
		},
	}
}
