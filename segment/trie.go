package segment

import "unicode/utf8"

// trieMatcher is a rune trie. MatchAt walks the trie along the text and
// remembers the deepest node which terminates a phrase.
type trieMatcher struct {
	root  *trieNode
	count int
	nodes int
}

type trieNode struct {
	children map[rune]*trieNode
	terminal bool
}

// NewTrieMatcher creates a matcher from a set of phrases, using a trie.
// It finds the same matches as a matcher created by NewMatcher.
func NewTrieMatcher(phrases []string) Matcher {
	m := &trieMatcher{root: &trieNode{}}
	for _, p := range distinct(phrases) {
		m.insert(p)
	}
	tracer().Debugf("trie matcher with %d phrases in %d nodes", m.count, m.nodes)
	return m
}

func (m *trieMatcher) insert(phrase string) {
	node := m.root
	for _, r := range phrase {
		if node.children == nil {
			node.children = make(map[rune]*trieNode)
		}
		next, ok := node.children[r]
		if !ok {
			next = &trieNode{}
			node.children[r] = next
			m.nodes++
		}
		node = next
	}
	node.terminal = true
	m.count++
}

func (m *trieMatcher) MatchAt(text string, offset int) (string, bool) {
	if !validOffset(text, offset) {
		return "", false
	}
	node, end := m.root, -1
	for i := offset; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if r == utf8.RuneError && size == 1 {
			break // phrases are valid UTF-8
		}
		if node = node.children[r]; node == nil {
			break
		}
		i += size
		if node.terminal {
			end = i
		}
	}
	if end < 0 {
		return "", false
	}
	return text[offset:end], true
}

func (m *trieMatcher) Len() int {
	return m.count
}
