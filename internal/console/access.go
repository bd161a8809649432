package console

import "yatube-api/internal/models"

// Entity identifies an admin console section.
type Entity string

const (
	EntityUsers    Entity = "users"
	EntityGroups   Entity = "groups"
	EntityPosts    Entity = "posts"
	EntityComments Entity = "comments"
)

// Action is a console operation on an entity.
type Action string

const (
	ActionView   Action = "view"
	ActionCreate Action = "create"
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
)

// capabilities is the single source of truth for console permissions:
// per entity, which roles may view and which may write. Roles are not a
// total order here; each entity names its allow-list explicitly.
var capabilities = map[Entity]struct {
	view  []string
	write []string
}{
	EntityUsers: {
		view:  []string{models.RoleRoot, models.RoleAdmin},
		write: []string{models.RoleRoot},
	},
	EntityGroups: {
		view:  []string{models.RoleRoot, models.RoleAdmin, models.RoleModerator},
		write: []string{models.RoleRoot, models.RoleAdmin},
	},
	EntityPosts: {
		view:  []string{models.RoleRoot, models.RoleAdmin, models.RoleModerator},
		write: []string{models.RoleRoot, models.RoleAdmin, models.RoleModerator},
	},
	EntityComments: {
		view:  []string{models.RoleRoot, models.RoleAdmin, models.RoleModerator},
		write: []string{models.RoleRoot, models.RoleAdmin, models.RoleModerator},
	},
}

// CanAccess consults the capability table. Create, edit and delete all
// fall under the entity's write list.
func CanAccess(role string, entity Entity, action Action) bool {
	capability, ok := capabilities[entity]
	if !ok {
		return false
	}

	allowed := capability.view
	if action != ActionView {
		allowed = capability.write
	}

	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}

// consoleRoles lists the roles allowed to log into the console at all.
var consoleRoles = []string{models.RoleModerator, models.RoleAdmin, models.RoleRoot}

func isConsoleRole(role string) bool {
	for _, r := range consoleRoles {
		if r == role {
			return true
		}
	}
	return false
}
