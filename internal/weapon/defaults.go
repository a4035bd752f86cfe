package weapon

// Built-in weapons used when no configuration file provides any.
func Builtin() []Profile {
	return []Profile{
		{
			ID:            "revolver",
			DisplayName:   "Revolver",
			Length:        3,
			AvailableKeys: Symbols("a", "s", "d", "f", "j", "k", "l"),
			InputWindowMs: 3000,
		},
		{
			ID:            "rifle",
			DisplayName:   "Rifle",
			Length:        4,
			AvailableKeys: Symbols("q", "w", "e", "r", "u", "i", "o", "p"),
			InputWindowMs: 4000,
		},
		{
			ID:            "shotgun",
			DisplayName:   "Shotgun",
			Length:        2,
			AvailableKeys: Symbols("z", "x", "c", "v", "b", "n", "m"),
			InputWindowMs: 2000,
		},
	}
}

// MustBuiltinSet returns the built-in weapons as a Set.
// Panics if the built-in table is invalid, which is a programming error.
func MustBuiltinSet() *Set {
	s, err := NewSet(Builtin()...)
	if err != nil {
		panic(err)
	}
	return s
}
