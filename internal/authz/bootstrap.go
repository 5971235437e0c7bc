package authz

import "fmt"

// RoleSeed is one built-in role with its default policies.
type RoleSeed struct {
	Role     string
	Policies []Policy
}

// BuiltinRoleSeeds returns the default role matrix. The admin role
// covers every back-office object except admin account management,
// which stays with super_admin.
func BuiltinRoleSeeds() []RoleSeed {
	return []RoleSeed{
		{
			Role: "admin",
			Policies: []Policy{
				{Object: "/admin/dashboard/stats", Action: "GET"},
				{Object: "/admin/products", Action: "*"},
				{Object: "/admin/products/:id", Action: "*"},
				{Object: "/admin/products/:id/display-overrides", Action: "PUT"},
				{Object: "/admin/categories", Action: "*"},
				{Object: "/admin/categories/tree", Action: "GET"},
				{Object: "/admin/categories/parents", Action: "GET"},
				{Object: "/admin/categories/:id", Action: "*"},
				{Object: "/admin/orders", Action: "GET"},
				{Object: "/admin/orders/:id", Action: "GET"},
				{Object: "/admin/orders/:id/status", Action: "PUT"},
				{Object: "/admin/users", Action: "GET"},
				{Object: "/admin/users/:id", Action: "*"},
				{Object: "/admin/reviews", Action: "GET"},
				{Object: "/admin/reviews/:id", Action: "DELETE"},
				{Object: "/admin/quotes", Action: "GET"},
				{Object: "/admin/quotes/:id", Action: "*"},
				{Object: "/admin/quotes/:id/status", Action: "PUT"},
				{Object: "/admin/blog/categories", Action: "*"},
				{Object: "/admin/blog/categories/:id", Action: "*"},
				{Object: "/admin/blog/posts", Action: "*"},
				{Object: "/admin/blog/posts/:id", Action: "*"},
				{Object: "/admin/blog/posts/:id/comments", Action: "GET"},
				{Object: "/admin/blog/comments/:id", Action: "DELETE"},
				{Object: "/admin/blog/comments/:id/approve", Action: "PUT"},
				{Object: "/admin/home/hero-slides", Action: "*"},
				{Object: "/admin/home/hero-slides/:id", Action: "*"},
				{Object: "/admin/home/banners", Action: "*"},
				{Object: "/admin/home/banners/:id", Action: "*"},
				{Object: "/admin/home/carousels", Action: "*"},
				{Object: "/admin/home/carousels/:id", Action: "*"},
				{Object: "/admin/home/content-blocks", Action: "*"},
				{Object: "/admin/home/content-blocks/:id", Action: "*"},
				{Object: "/admin/display-settings", Action: "*"},
			},
		},
	}
}

// BootstrapBuiltinRoles seeds the default policies, skipping rules that
// already exist.
func (s *Service) BootstrapBuiltinRoles() error {
	if s == nil || s.enforcer == nil {
		return fmt.Errorf("authz service unavailable")
	}

	for _, seed := range BuiltinRoleSeeds() {
		role, err := NormalizeRole(seed.Role)
		if err != nil {
			return err
		}
		for _, policy := range seed.Policies {
			action := NormalizeAction(policy.Action)
			if action == "" {
				return fmt.Errorf("builtin policy action is required")
			}
			if _, err := s.enforcer.AddPolicy(role, NormalizeObject(policy.Object), action); err != nil {
				return fmt.Errorf("add builtin policy failed: %w", err)
			}
		}
	}
	return nil
}
