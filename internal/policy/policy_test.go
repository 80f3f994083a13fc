package policy

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		path string
		want Role
	}{
		{"Hero1.jpg", RoleHero},
		{"hero12.png", RoleHero},
		{"HeroSearchCar.JPEG", RoleHero},
		{"slides/banner-category.jpg", RoleHero},
		{`home\Slides\summer.png`, RoleHero},
		{"slide-3-sale.jpg", RoleHero},
		{"hero.jpg", RoleDefault},
		{"heroes/one.jpg", RoleDefault},
		{"categories/brakes.jpg", RoleCategory},
		{"megamenu/engine.png", RoleCategory},
		{"promo/banner-summer.jpg", RoleCategory},
		{"Departments/tires.jpg", RoleCategory},
		{"gift-card.png", RoleCategory},
		{"homepage-categories/oil.jpg", RoleCategory},
		{"logo.png", RoleIcon},
		{"static/favicon.jpg", RoleIcon},
		{"brands/bosch.png", RoleIcon},
		{`languages\en.png`, RoleIcon},
		{"avatars/user-1.png", RoleIcon},
		{"brands/card-partner.png", RoleCategory},
		{"products/filter.jpg", RoleDefault},
		{"logo-dark.png", RoleDefault},
	}

	for _, tt := range tests {
		got := Classify(tt.path)
		if got.Role != tt.want {
			t.Errorf("Classify(%q) = %s, want %s", tt.path, got.Role, tt.want)
		}
	}
}

func TestClassify_Widths(t *testing.T) {
	hero := Classify("public/images/Hero1.jpg")
	if hero.MaxWidth != 1920 || !hero.Hero {
		t.Errorf("hero policy: got %+v", hero)
	}
	cat := Classify("categories/a.jpg")
	if cat.MaxWidth != 800 || cat.Hero {
		t.Errorf("category policy: got %+v", cat)
	}
	icon := Classify("brands/a.png")
	if icon.MaxWidth != 400 || icon.Hero {
		t.Errorf("icon policy: got %+v", icon)
	}
	def := Classify("misc/a.png")
	if def.MaxWidth != 800 || def.Hero {
		t.Errorf("default policy: got %+v", def)
	}
}

func TestClassify_Deterministic(t *testing.T) {
	paths := []string{"slides/banner-category.jpg", "avatars/x.png", "a/b/c.jpeg"}
	for _, p := range paths {
		first := Classify(p)
		for i := 0; i < 5; i++ {
			if got := Classify(p); got != first {
				t.Fatalf("Classify(%q) changed between calls: %+v vs %+v", p, first, got)
			}
		}
	}
}

func TestSpecFor(t *testing.T) {
	tests := []struct {
		role    Role
		format  Format
		quality int
		budget  int
	}{
		{RoleHero, FormatWebP, 78, 150 * 1024},
		{RoleHero, FormatAVIF, 58, 0},
		{RoleCategory, FormatWebP, 75, 0},
		{RoleIcon, FormatAVIF, 55, 0},
		{RoleDefault, FormatWebP, 75, 0},
	}
	for _, tt := range tests {
		s := SpecFor(Get(tt.role), tt.format)
		if s.Quality != tt.quality {
			t.Errorf("%s/%s quality: got %d, want %d", tt.role, tt.format, s.Quality, tt.quality)
		}
		if s.TargetMaxBytes != tt.budget {
			t.Errorf("%s/%s budget: got %d, want %d", tt.role, tt.format, s.TargetMaxBytes, tt.budget)
		}
		if s.MaxWidth != Get(tt.role).MaxWidth {
			t.Errorf("%s/%s max width: got %d", tt.role, tt.format, s.MaxWidth)
		}
	}
}

func TestRetryQuality(t *testing.T) {
	if got := (EncodeSpec{Quality: 78}).RetryQuality(); got != 63 {
		t.Errorf("78: got %d, want 63", got)
	}
	if got := (EncodeSpec{Quality: 70}).RetryQuality(); got != 60 {
		t.Errorf("70: got %d, want floor 60", got)
	}
}

func TestHasBudget(t *testing.T) {
	if (EncodeSpec{Format: FormatAVIF, TargetMaxBytes: 100}).HasBudget() {
		t.Error("avif must never be budgeted")
	}
	if (EncodeSpec{Format: FormatWebP}).HasBudget() {
		t.Error("webp without target must not be budgeted")
	}
	if !(EncodeSpec{Format: FormatWebP, TargetMaxBytes: 100}).HasBudget() {
		t.Error("webp with target must be budgeted")
	}
}
