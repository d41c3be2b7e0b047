package kwords

const (
	Insert = "insert"
	Select = "select"

	MetaPrefix = "."
	Exit       = ".exit"
	Stats      = ".stats"
)

var MetaCommands = map[string]struct{}{
	Exit:  {},
	Stats: {},
}
