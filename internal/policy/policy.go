package policy

// Role is the presentation role an image plays on the storefront.
type Role string

const (
	RoleHero     Role = "hero"
	RoleCategory Role = "category"
	RoleIcon     Role = "icon"
	RoleDefault  Role = "default"
)

// Role widths. A policy's MaxWidth is always one of these.
const (
	HeroWidth     = 1920
	CategoryWidth = 800
	IconWidth     = 400
	DefaultWidth  = 800
)

// Policy is the sizing policy derived from a file's relative path.
type Policy struct {
	Role     Role
	MaxWidth int  // downscale target, never upscaled
	Hero     bool // only hero images carry a byte budget
}

// Built-in policies, one per role.
var policies = map[Role]Policy{
	RoleHero:     {Role: RoleHero, MaxWidth: HeroWidth, Hero: true},
	RoleCategory: {Role: RoleCategory, MaxWidth: CategoryWidth},
	RoleIcon:     {Role: RoleIcon, MaxWidth: IconWidth},
	RoleDefault:  {Role: RoleDefault, MaxWidth: DefaultWidth},
}

// Get returns the policy for a role. Falls back to the default policy if unknown.
func Get(role Role) Policy {
	if p, ok := policies[role]; ok {
		return p
	}
	return policies[RoleDefault]
}
