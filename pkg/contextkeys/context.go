package contextkeys

// Custom key type avoids collisions with other context users.
type contextKey string

// DBContextKey is the key under which the request-scoped *gorm.DB handle
// (pool or transaction) is stored in the context.
const DBContextKey = contextKey("db")
