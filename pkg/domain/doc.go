// Package domain contains the entities of a theme declaration and of its
// resolved form: content globs, font stacks, plugins, palettes, themes and
// safelist rules. These types are free of parsing and transport concerns so
// they can be shared by the resolver, the document codecs and the API.
package domain
