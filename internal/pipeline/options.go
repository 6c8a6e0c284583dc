package pipeline

// Options are resolved from the command line before the first stage runs.
type Options struct {
	PreferBeta    bool
	PlaceDirectly bool
	DoNotSymlink  bool
	Disable       bool
	// ExplicitName is the positional name argument, empty when omitted.
	ExplicitName string
}

// ShouldSymlink reports whether the add-on gets linked into the add-ons
// directory. Direct placement never links.
func (o Options) ShouldSymlink() bool {
	return !o.DoNotSymlink && !o.PlaceDirectly
}

// ShouldEnable reports whether the enable hook runs. An add-on that Local
// cannot see (neither placed nor linked) is never enabled.
func (o Options) ShouldEnable() bool {
	return !o.Disable && (o.PlaceDirectly || o.ShouldSymlink())
}
