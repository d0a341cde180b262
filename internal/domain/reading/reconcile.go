package reading

// NewPosts returns the posts of fetched whose link does not appear in
// previous, keeping fetched order. Links are compared exactly.
// Neither input is modified.
func NewPosts(previous, fetched []Post) []Post {
	if len(fetched) == 0 {
		return nil
	}
	known := make(map[string]struct{}, len(previous))
	for _, p := range previous {
		known[p.Link] = struct{}{}
	}

	var fresh []Post
	for _, p := range fetched {
		if _, ok := known[p.Link]; ok {
			continue
		}
		fresh = append(fresh, p)
	}
	return fresh
}
