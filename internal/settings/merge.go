package settings

// Step is one transformation of a configuration. A Step must not modify the
// Map it is given; it returns the transformed copy.
type Step func(Map) Map

// CopyConstants copies every constant in base over the configuration,
// replacing values already there.
func CopyConstants(base Map) Step {
	return func(in Map) Map {
		out := in.Clone()
		for name, value := range base {
			if IsConstant(name) {
				out[name] = value
			}
		}
		return out
	}
}

// SuppressEmpty removes each of names whose value is not Truthy.
func SuppressEmpty(names ...string) Step {
	return func(in Map) Map {
		out := in.Clone()
		for _, name := range names {
			if v, ok := out[name]; ok && !Truthy(v) {
				delete(out, name)
			}
		}
		return out
	}
}

// SuppressDefaults removes all names in defaults, but only when every one of
// them is present and equal to its default. A partial match changes nothing.
func SuppressDefaults(defaults Map) Step {
	return func(in Map) Map {
		out := in.Clone()
		for name, def := range defaults {
			v, ok := out[name]
			if !ok || !Equal(v, def) {
				return out
			}
		}
		for name := range defaults {
			delete(out, name)
		}
		return out
	}
}

// FillDefaults sets each default that is still missing. Existing values,
// including ones the base set to a falsy value outside CoreNames, are kept.
func FillDefaults(defaults func() Map) Step {
	return func(in Map) Map {
		out := in.Clone()
		for name, value := range defaults() {
			if _, ok := out[name]; !ok {
				out[name] = value
			}
		}
		return out
	}
}

// Force sets name to value unconditionally.
func Force(name string, value any) Step {
	return func(in Map) Map {
		out := in.Clone()
		out[name] = value
		return out
	}
}

// Merger applies an ordered list of Steps to a configuration.
type Merger struct {
	Steps []Step
}

// NewMerger returns the development settings pipeline for base and the
// instance directory at instance:
//
//  1. copy the base constants
//  2. drop empty CoreNames
//  3. drop the email settings if they are all Django's global defaults
//  4. fill in DevelopmentDefaults
//  5. force DEBUG on
func NewMerger(base Map, instance string) *Merger {
	return &Merger{
		Steps: []Step{
			CopyConstants(base),
			SuppressEmpty(CoreNames...),
			SuppressDefaults(EmailGlobalDefaults()),
			FillDefaults(func() Map { return DevelopmentDefaults(instance) }),
			Force(Debug, true),
		},
	}
}

// Apply runs every step in order over a copy of in and returns the result.
func (m *Merger) Apply(in Map) Map {
	out := in.Clone()
	for _, step := range m.Steps {
		out = step(out)
	}
	return out
}

// Merge applies the pipeline to target in place. target does not need to be
// empty; merging the same base twice yields the same result as merging once.
func (m *Merger) Merge(target Map) {
	out := m.Apply(target)
	for name := range target {
		if _, ok := out[name]; !ok {
			delete(target, name)
		}
	}
	for name, value := range out {
		target[name] = value
	}
}

// Merge populates target from base with the development defaults for the
// instance directory at instance.
func Merge(base, target Map, instance string) {
	NewMerger(base, instance).Merge(target)
}
