package config

type SecurityLevel int

const (
	SecurityPublic SecurityLevel = iota // No authentication
	SecurityAccess                      // Bearer access token required
)

// EndpointSecurityConfig maps route names to their required security level.
// Route names are assigned when the router is built.
var EndpointSecurityConfig = map[string]SecurityLevel{
	// Auth
	"auth.register": SecurityPublic,
	"auth.login":    SecurityPublic,
	"auth.me":       SecurityAccess,

	// Equipment
	"equipment.create": SecurityAccess,
	"equipment.list":   SecurityPublic,
	"equipment.get":    SecurityPublic,
	"equipment.mine":   SecurityAccess,
	"categories.list":  SecurityPublic,

	// Rental requests
	"requests.create":   SecurityAccess,
	"requests.received": SecurityAccess,
	"requests.sent":     SecurityAccess,
	"requests.get":      SecurityAccess,
	"requests.status":   SecurityAccess,

	// Messages
	"messages.send": SecurityAccess,
	"messages.list": SecurityAccess,

	// Operations
	"health":  SecurityPublic,
	"metrics": SecurityPublic,
}

// GetSecurityLevel returns the level for a route name. Unknown routes
// require an access token.
func GetSecurityLevel(route string) SecurityLevel {
	if level, ok := EndpointSecurityConfig[route]; ok {
		return level
	}
	return SecurityAccess
}
