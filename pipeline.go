package typo

import (
	"github.com/tsawler/typo/clean"
	"github.com/tsawler/typo/french"
)

// Pipeline applies a sequence of transformations. Each configuration
// method returns a new Pipeline, so a Pipeline can be built once and
// shared, including across goroutines.
//
// Whitespace is always collapsed first, before the named steps.
type Pipeline struct {
	steps  []Transform
	french french.Formatter

	// Accumulated error (fail-fast)
	err error
}

// New returns an empty Pipeline using the default French settings.
func New() *Pipeline {
	return &Pipeline{french: french.New()}
}

// clone creates a copy of the Pipeline with its own step list.
func (p *Pipeline) clone() *Pipeline {
	return &Pipeline{
		steps:  append([]Transform(nil), p.steps...),
		french: p.french,
		err:    p.err,
	}
}

// Then appends the named transformations. An unknown name makes every
// later call to Apply fail with [ErrUnknownTransform].
func (p *Pipeline) Then(names ...string) *Pipeline {
	np := p.clone()
	for _, name := range names {
		if np.err != nil {
			break
		}
		t, err := Lookup(name)
		if err != nil {
			np.err = err
			break
		}
		np.steps = append(np.steps, t)
	}
	return np
}

// ThenFunc appends a custom transformation.
func (p *Pipeline) ThenFunc(name string, fn func(string) string) *Pipeline {
	np := p.clone()
	np.steps = append(np.steps, Transform{Name: name, apply: plain(fn)})
	return np
}

// French sets the formatter used by the format_french and
// format_french_tex steps.
func (p *Pipeline) French(f french.Formatter) *Pipeline {
	np := p.clone()
	np.french = f
	return np
}

// Err returns the first configuration error, if any.
func (p *Pipeline) Err() error {
	return p.err
}

// Names returns the names of the steps, in order.
func (p *Pipeline) Names() []string {
	names := make([]string, len(p.steps))
	for i, t := range p.steps {
		names[i] = t.Name
	}
	return names
}

// Apply runs the pipeline on s.
func (p *Pipeline) Apply(s string) (string, error) {
	if p.err != nil {
		return "", p.err
	}
	return p.apply(s), nil
}

// Func returns the pipeline as a plain function, for use with
// htmldoc.Format.
func (p *Pipeline) Func() (func(string) string, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.apply, nil
}

func (p *Pipeline) apply(s string) string {
	s = clean.Whitespaces(s)
	for _, t := range p.steps {
		s = t.apply(p.french, s)
	}
	return s
}
