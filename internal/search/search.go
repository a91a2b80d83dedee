// Package search filters and sorts task and bug lists the way a user looks
// for them: fuzzy text matching and pinyin matching for Chinese texts.
package search

import (
	"strings"
	"unicode"

	"github.com/mozillazg/go-pinyin"
	"github.com/sahilm/fuzzy"

	"github.com/slok/zentao/internal/model"
)

// Tasks returns the tasks matching the query, best fuzzy matches first followed
// by the pinyin only matches. An empty query returns all the tasks.
func Tasks(tasks []model.Task, query string) []model.Task {
	idx := find(query, len(tasks), func(i int) []string {
		t := tasks[i]
		return []string{t.Title, t.Project, t.AssignedTo, string(t.Status)}
	})
	if idx == nil {
		return tasks
	}

	res := make([]model.Task, 0, len(idx))
	for _, i := range idx {
		res = append(res, tasks[i])
	}
	return res
}

// Bugs returns the bugs matching the query, see Tasks.
func Bugs(bugs []model.Bug, query string) []model.Bug {
	idx := find(query, len(bugs), func(i int) []string {
		b := bugs[i]
		return []string{b.Title, b.Product, b.AssignedTo, string(b.Status), b.OpenedBy}
	})
	if idx == nil {
		return bugs
	}

	res := make([]model.Bug, 0, len(idx))
	for _, i := range idx {
		res = append(res, bugs[i])
	}
	return res
}

// fieldsSource adapts the searchable fields of a list to a fuzzy source.
type fieldsSource struct {
	n      int
	fields func(i int) []string
}

func (f fieldsSource) String(i int) string { return strings.Join(f.fields(i), " ") }
func (f fieldsSource) Len() int            { return f.n }

// find returns the matching indexes, nil means no filtering at all.
func find(query string, n int, fields func(i int) []string) []int {
	query = strings.TrimSpace(query)
	if query == "" || n == 0 {
		return nil
	}

	res := []int{}
	seen := map[int]bool{}
	for _, m := range fuzzy.FindFrom(query, fieldsSource{n: n, fields: fields}) {
		seen[m.Index] = true
		res = append(res, m.Index)
	}

	for i := range n {
		if seen[i] {
			continue
		}
		for _, f := range fields(i) {
			if PinyinMatch(f, query) {
				res = append(res, i)
				break
			}
		}
	}

	return res
}

var (
	fullArgs    = newPinyinArgs(pinyin.Normal)
	initialArgs = newPinyinArgs(pinyin.FirstLetter)
)

func newPinyinArgs(style int) pinyin.Args {
	a := pinyin.NewArgs()
	a.Style = style
	a.Fallback = func(r rune, _ pinyin.Args) []string {
		return []string{string(unicode.ToLower(r))}
	}
	return a
}

// PinyinMatch returns true when the query matches the text written in pinyin,
// either with full syllables (`zhifu`) or with their initials (`zf`).
// Texts without Chinese characters never match.
func PinyinMatch(text, query string) bool {
	if !hasHan(text) {
		return false
	}

	query = strings.ToLower(strings.Join(strings.Fields(query), ""))
	if query == "" {
		return false
	}

	full := strings.Join(pinyin.LazyPinyin(text, fullArgs), "")
	if strings.Contains(full, query) {
		return true
	}

	initials := strings.Join(pinyin.LazyPinyin(text, initialArgs), "")
	return strings.Contains(initials, query)
}

func hasHan(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Han, r) {
			return true
		}
	}
	return false
}
