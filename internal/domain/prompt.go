package domain

// Access is what the prompt knows about write permission on the current
// directory.
type Access int

const (
	AccessUnknown Access = iota
	AccessWritable
	AccessReadonly
)

// PromptChar is the final character of the prompt.
type PromptChar struct {
	Symbol string
	Access Access
}

// NewPromptChar picks "#" for the superuser and "$" for everyone else.
func NewPromptChar(superuser bool, access Access) PromptChar {
	symbol := "$"
	if superuser {
		symbol = "#"
	}
	return PromptChar{Symbol: symbol, Access: access}
}
