package entity

// State is one selectable region in the signup form, identified by its ISO2
// code as used by the upstream lookup provider.
type State struct {
	Name string
	Code string
}
