package quips

import "chucknorris/internal/domain"

// builtin is the default collection. Order matters: indices address it.
var builtin = [...]domain.Template{
	"When Alexander Bell invented the telephone, he had three missed calls from {name}.",
	"Fear of spiders is arachnophobia, fear of tight spaces is claustrophobia, fear of {name} is called logic.",
	"{name} doesn't call the wrong number. You answer the wrong phone.",
	"There used to be a street named after {name}, but it was changed because nobody crosses {name} and lives.",
	"Ghosts sit around the campfire and tell {name} stories.",
	"{name} has already been to Mars. That's why there are no signs of life.",
	"{name} won American Idol using only sign language.",
}

// Default returns a Store over the built-in collection.
func Default() *Store {
	return &Store{templates: builtin[:]}
}
