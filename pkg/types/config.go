package types

// Config holds the settings the CLI loads from config.yaml.
type Config struct {
	// StorePath is the path of the JSON document holding the collection.
	// Empty means "use the resolution chain default".
	StorePath string `json:"store_path" yaml:"store_path"`

	// Username and Password are the librarian credentials checked by login.
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
}

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.Username == "" {
		return ErrUsernameEmpty
	}
	if c.Password == "" {
		return ErrPasswordEmpty
	}
	return nil
}
