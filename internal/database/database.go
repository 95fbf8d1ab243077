package database

import (
	sq "github.com/Masterminds/squirrel"
)

// PSQL is the shared statement builder with PostgreSQL placeholders.
var PSQL = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	RolesTable      = "roles"
	GroupsTable     = "groups"
	EventsTable     = "events"
	EventRolesTable = "event_roles"
	UsersTable      = "users"
	RoleUsersTable  = "role_users"
	BlogPostsTable  = "blog_posts"
)
