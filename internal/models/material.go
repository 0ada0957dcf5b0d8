package models

import "strings"

// LinkList is an ordered, duplicate free list of material URLs
type LinkList []string

// ParseLinkList splits a comma joined list, trimming blanks and dropping duplicates
func ParseLinkList(joined string) LinkList {
	if strings.TrimSpace(joined) == "" {
		return LinkList{}
	}
	return LinkList(strings.Split(joined, ",")).Dedupe()
}

// Dedupe returns the list without blanks or repeats, first occurrence wins
func (l LinkList) Dedupe() LinkList {
	seen := make(map[string]struct{}, len(l))
	out := make(LinkList, 0, len(l))
	for _, link := range l {
		link = strings.TrimSpace(link)
		if link == "" {
			continue
		}
		if _, ok := seen[link]; ok {
			continue
		}
		seen[link] = struct{}{}
		out = append(out, link)
	}
	return out
}

// Merge appends other to l and dedupes the result
func (l LinkList) Merge(other LinkList) LinkList {
	merged := make(LinkList, 0, len(l)+len(other))
	merged = append(merged, l...)
	merged = append(merged, other...)
	return merged.Dedupe()
}

// String joins the list for storage
func (l LinkList) String() string {
	return strings.Join(l, ",")
}
