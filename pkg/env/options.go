package env

// Option configures a Loader.
type Option func(*Loader)

// WithFiles replaces the file names read by the Loader, in processing order.
func WithFiles(files ...string) Option {
	return func(l *Loader) {
		l.files = files
	}
}

// WithEnviron replaces the process environment accessors.
// Tests use it to load into a map instead of os.Environ.
func WithEnviron(lookupEnv func(string) (string, bool), setenv func(string, string) error) Option {
	return func(l *Loader) {
		l.lookupEnv = lookupEnv
		l.setenv = setenv
	}
}
