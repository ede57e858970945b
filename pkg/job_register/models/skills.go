package models

import "strings"

// DefaultSkillTags matches the tag set of the original portal.
var DefaultSkillTags = []string{"HTML", "CSS", "JavaScript"}

// SkillRegistry is the set of tags certificates can be filed under. The set
// is configuration, not code: new skills are added via SKILL_TAGS without a
// core change. Tags are case-sensitive because blob paths embed them.
type SkillRegistry struct {
	ordered []string
	tags    map[string]struct{}
}

func NewSkillRegistry(tags []string) *SkillRegistry {
	r := &SkillRegistry{tags: make(map[string]struct{}, len(tags))}
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := r.tags[tag]; ok {
			continue
		}
		r.tags[tag] = struct{}{}
		r.ordered = append(r.ordered, tag)
	}
	return r
}

// ParseSkillRegistry builds a registry from a comma separated list, falling
// back to the default tag set when the list is empty.
func ParseSkillRegistry(raw string) *SkillRegistry {
	if strings.TrimSpace(raw) == "" {
		return NewSkillRegistry(DefaultSkillTags)
	}
	return NewSkillRegistry(strings.Split(raw, ","))
}

func (r *SkillRegistry) Contains(tag string) bool {
	_, ok := r.tags[tag]
	return ok
}

// Tags returns the registered tags in registration order.
func (r *SkillRegistry) Tags() []string {
	out := make([]string, len(r.ordered))
	copy(out, r.ordered)
	return out
}
