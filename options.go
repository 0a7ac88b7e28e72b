package cheapruler

type options struct {
	arctangent Arctangent
}

// Option configures a Ruler.
type Option func(*options)

// WithArctangent selects the arctangent used by Bearing.
// The default is ArctangentExact.
func WithArctangent(a Arctangent) Option {
	return func(o *options) {
		o.arctangent = a
	}
}
