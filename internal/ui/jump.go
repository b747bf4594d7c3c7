package ui

import (
	"github.com/sahilm/fuzzy"
	"github.com/yildizm/NanoLab/internal/nav"
)

const maxJumpMatches = 5

// matchPages returns registered pages whose id or title fuzzy-matches
// query, best match first. An empty query matches nothing.
func matchPages(reg *nav.Registry, query string) []nav.Page {
	if query == "" {
		return nil
	}
	search := make([]string, reg.Len())
	for i := range search {
		p := reg.Page(i)
		search[i] = string(p.ID()) + " " + p.Title()
	}

	matches := fuzzy.Find(query, search)
	pages := make([]nav.Page, 0, min(len(matches), maxJumpMatches))
	for _, match := range matches {
		if len(pages) == maxJumpMatches {
			break
		}
		pages = append(pages, reg.Page(match.Index))
	}
	return pages
}
