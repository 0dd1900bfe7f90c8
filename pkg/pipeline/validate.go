package pipeline

// Validate eagerly resolves every descriptor without invoking anything and
// returns the first resolution error found. Construction never validates;
// this is an opt-in check for callers who prefer misconfiguration to
// surface before the first invocation.
func Validate(steps ...Step) error {
	for _, step := range steps {
		_, err := step.resolve()
		if err != nil {
			return err
		}
	}

	return nil
}
