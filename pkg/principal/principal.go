package principal

type contextKey string

const (
	PrincipalContextKey contextKey = "principal"
)

// Principal identifies the authenticated caller for downstream handlers.
type Principal struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}
