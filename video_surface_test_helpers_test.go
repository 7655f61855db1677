package main

import "strings"

func (s *recordingSurface) count(kind string) int {
	n := 0
	for _, op := range s.ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

func (s *recordingSurface) texts() []string {
	var out []string
	for _, op := range s.ops {
		if op.Kind == "text" {
			out = append(out, op.Text)
		}
	}
	return out
}

func (s *recordingSurface) hasText(substr string) bool {
	for _, t := range s.texts() {
		if strings.Contains(t, substr) {
			return true
		}
	}
	return false
}
