package tween

// Target is anything with named numeric properties a tween can animate.
type Target interface {
	// Get returns the current value of prop, or false if prop is unknown.
	Get(prop string) (float64, bool)
	// Set assigns prop. Unknown properties are ignored.
	Set(prop string, v float64)
}

// Fields adapts plain float64 variables to Target.
//
//	var scaleX, scaleY float64 = 1, 1
//	target := tween.Fields{"x": &scaleX, "y": &scaleY}
type Fields map[string]*float64

// Get implements Target.
func (f Fields) Get(prop string) (float64, bool) {
	p, ok := f[prop]
	if !ok || p == nil {
		return 0, false
	}
	return *p, true
}

// Set implements Target.
func (f Fields) Set(prop string, v float64) {
	if p, ok := f[prop]; ok && p != nil {
		*p = v
	}
}

// Values maps property names to destination values. A single value is a
// plain endpoint; several values are control points visited in order, with
// the start value prepended when the tween starts.
type Values map[string][]float64

// To is shorthand for single-endpoint Values.
func To(props map[string]float64) Values {
	v := make(Values, len(props))
	for k, x := range props {
		v[k] = []float64{x}
	}
	return v
}
