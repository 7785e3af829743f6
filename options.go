package docbuild

type buildConfig struct {
	limits      Limits
	compression Compression
}

func newBuildConfig(opts []BuildOption) buildConfig {
	cfg := buildConfig{
		limits:      defaultLimits(),
		compression: CompStore,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.limits = cfg.limits.withDefaults()
	return cfg
}

type BuildOption func(*buildConfig)

func WithLimits(l Limits) BuildOption {
	return func(c *buildConfig) { c.limits = l }
}

// WithCompression selects the ZIP entry compression method. The default is
// CompStore. The ODT mimetype entry is always stored regardless, as the
// OpenDocument format requires it to be readable by magic-byte sniffing.
func WithCompression(comp Compression) BuildOption {
	return func(c *buildConfig) { c.compression = comp }
}
