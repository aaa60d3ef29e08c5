package app

// Usage is printed when the binary runs without arguments.
const Usage = "Usage: thikana -q query_string"

// QueryFromArgs returns the value following the last "-q" flag and whether
// one was found. The final argument is never treated as a flag, so a
// trailing "-q" is ignored. An explicit empty value (-q "") counts as found.
func QueryFromArgs(args []string) (string, bool) {
	var (
		query string
		found bool
	)
	for i := 0; i < len(args)-1; i++ {
		if args[i] == "-q" {
			query = args[i+1]
			found = true
		}
	}
	return query, found
}
