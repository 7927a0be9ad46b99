package models

// AuthorProfile is the local display identity attached to published posts.
// It lives in a client cookie, not in the content store.
type AuthorProfile struct {
	Name   string `json:"name" form:"name"`
	Role   string `json:"role" form:"role"`
	Bio    string `json:"bio" form:"bio"`
	Avatar string `json:"avatar" form:"avatar"`
}

// DefaultAuthorProfile is used whenever no stored profile exists or the stored
// payload fails to parse.
func DefaultAuthorProfile() AuthorProfile {
	return AuthorProfile{
		Name:   "Admin Lumetric",
		Role:   "Editor Chefe",
		Bio:    "Especialista em Estratégias de Dominação de Mercado. Transformo dados brutos em narrativas que vendem milhões.",
		Avatar: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?auto=format&fit=crop&q=80&w=200",
	}
}
