package transmute

// NameSource supplies optional human-readable names for numeric ids.
// A false second return means no name is known; the corresponding output
// field is simply left empty. Implementations must be safe for concurrent
// use since matches are transformed in parallel.
type NameSource interface {
	Champion(id int) (string, bool)
	Item(id int) (string, bool)
	SummonerSpell(id int) (string, bool)
	Rune(id int) (string, bool)
	RuneTree(id int) (string, bool)
}

// nameOrEmpty resolves a name through an optional lookup function
func nameOrEmpty(lookup func(int) (string, bool), id int) string {
	if lookup == nil {
		return ""
	}
	name, ok := lookup(id)
	if !ok {
		return ""
	}
	return name
}
