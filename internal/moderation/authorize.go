package moderation

import (
	"fmt"
	"slices"
)

// Decision is the outcome of the authorization gate. Reason is shown to the
// issuer verbatim when Allowed is false.
type Decision struct {
	Allowed bool
	Reason  string
}

// Issuer carries everything the gate needs to know about who invoked a
// command. The caller resolves role names and permission bits; the gate
// itself performs no I/O.
type Issuer struct {
	RoleNames      []string
	Administrator  bool
	ManageMessages bool
}

// Authorize decides whether the issuer may run the named command.
//
// "ping" is always allowed. Every other command requires the configured role
// name or the administrator permission, either one. "purge" additionally
// requires the manage-messages permission even after the first check passes.
func Authorize(issuer Issuer, commandName, requiredRole string) Decision {
	if commandName == "ping" {
		return Decision{Allowed: true}
	}

	hasRole := slices.Contains(issuer.RoleNames, requiredRole)
	if !hasRole && !issuer.Administrator {
		return Decision{
			Reason: fmt.Sprintf("You need the **%s** role or Administrator permissions to run this command.", requiredRole),
		}
	}

	if commandName == "purge" && !issuer.ManageMessages {
		return Decision{
			Reason: `You must also have the "Manage Messages" permission to use the purge command.`,
		}
	}

	return Decision{Allowed: true}
}
