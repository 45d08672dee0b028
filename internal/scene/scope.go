package scene

// scope collects release functions for resources acquired together and
// runs them in reverse order. Releasing an empty scope is a no-op, so a
// scope can be released from every exit path.
type scope struct {
	releases []func()
}

func (s *scope) add(release func()) {
	s.releases = append(s.releases, release)
}

// destroyer registers destruction of a renderer handle and returns it.
func (s *scope) destroyer(r Renderer, h Handle) Handle {
	s.add(func() { r.Destroy(h) })
	return h
}

func (s *scope) release() {
	for i := len(s.releases) - 1; i >= 0; i-- {
		s.releases[i]()
	}
	s.releases = nil
}

func (s *scope) len() int {
	return len(s.releases)
}
