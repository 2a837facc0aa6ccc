package pkguid

// StringID is satisfied by UUID.
type StringID interface {
	Generate() string
}

// NumberID is satisfied by Snowflake; dataset ids come from it.
type NumberID interface {
	Generate() int64
}
