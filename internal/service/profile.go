package service

import "maps"

// Attribute names with meaning beyond pass-through.
const (
	AttrHost     = "host"
	AttrHostAddr = "hostaddr"
	AttrPort     = "port"
	AttrUser     = "user"
	AttrDBName   = "dbname"
)

// Profile is one named service from a service file. It is read-only once loaded.
type Profile struct {
	name  string
	attrs map[string]string
}

// NewProfile copies attrs so later changes by the caller do not leak in.
func NewProfile(name string, attrs map[string]string) Profile {
	return Profile{name: name, attrs: maps.Clone(attrs)}
}

func (p Profile) Name() string { return p.name }

// Get returns the value of an attribute and whether it was set.
func (p Profile) Get(key string) (string, bool) {
	v, ok := p.attrs[key]
	return v, ok
}

// Value returns the attribute value, or "" when it is not set.
func (p Profile) Value(key string) string {
	return p.attrs[key]
}

// Attributes returns a copy of all attributes.
func (p Profile) Attributes() map[string]string {
	return maps.Clone(p.attrs)
}
