package utils

type contextKey string

const (
	UserIDKey   contextKey = "user_id"
	UserNameKey contextKey = "name"
	UserRoleKey contextKey = "role"
)
