package policy

import (
	"path"
	"regexp"
	"strings"
)

// rule is one entry of the classification table. Rules are evaluated in
// order and the first matching rule decides the role.
type rule struct {
	role  Role
	match func(p, base string) bool
}

var (
	heroNameRe  = regexp.MustCompile(`^hero\d+\.(png|jpe?g)$`)
	heroCarRe   = regexp.MustCompile(`^herosearchcar\.jpe?g$`)
	slideNameRe = regexp.MustCompile(`^slide-\d`)
	iconNameRe  = regexp.MustCompile(`^(logo|favicon)\.(png|jpe?g)$`)
)

var rules = []rule{
	{RoleHero, func(p, base string) bool {
		return heroNameRe.MatchString(base) ||
			heroCarRe.MatchString(base) ||
			hasSegment(p, "slides") ||
			slideNameRe.MatchString(base)
	}},
	{RoleCategory, func(p, _ string) bool {
		return containsAny(p, "categories/", "megamenu/", "banner", "departments/", "card", "homepage-categories")
	}},
	{RoleIcon, func(p, base string) bool {
		return iconNameRe.MatchString(base) ||
			containsAny(p, "brands/", "languages/", "avatars/")
	}},
}

// Classify maps a path relative to the image root to its sizing policy.
// Matching is case-insensitive and treats `\` and `/` alike.
func Classify(relPath string) Policy {
	p := normalize(relPath)
	base := path.Base(p)
	for _, r := range rules {
		if r.match(p, base) {
			return Get(r.role)
		}
	}
	return Get(RoleDefault)
}

func normalize(relPath string) string {
	return strings.ToLower(strings.ReplaceAll(relPath, `\`, "/"))
}

// hasSegment reports whether dir appears as a directory segment of p.
func hasSegment(p, dir string) bool {
	return strings.HasPrefix(p, dir+"/") || strings.Contains(p, "/"+dir+"/")
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
