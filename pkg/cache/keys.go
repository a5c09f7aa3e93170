package cache

// Keyer derives cache keys for rendered output.
type Keyer interface {
	RenderKey(scene []byte, opts RenderKeyOpts) string
}

// RenderKeyOpts holds everything besides the scene bytes that changes the
// rendered document.
type RenderKeyOpts struct {
	Format    string `json:"format"`              // scene format: toml, yaml or json
	Precision *int   `json:"precision,omitempty"` // overrides the scene's number precision
	Grouping  bool   `json:"grouping,omitempty"`
	Version   string `json:"version,omitempty"` // builder version, so upgrades invalidate entries
}

// DefaultKeyer produces keys of the form "render:<sha256>".
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// RenderKey hashes the scene together with opts.
func (DefaultKeyer) RenderKey(scene []byte, opts RenderKeyOpts) string {
	return hashKey("render", Hash(scene), opts)
}

// ScopedKeyer wraps a Keyer with a prefix, isolating deployments that share
// one backend:
//
//	keyer := cache.NewScopedKeyer(nil, "svgbuild:staging:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix. A nil inner uses DefaultKeyer.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// RenderKey returns the inner key with the prefix prepended.
func (k *ScopedKeyer) RenderKey(scene []byte, opts RenderKeyOpts) string {
	return k.prefix + k.inner.RenderKey(scene, opts)
}
