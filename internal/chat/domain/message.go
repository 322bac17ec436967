package domain

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

func ValidRole(r string) bool {
	return r == RoleSystem || r == RoleUser || r == RoleAssistant
}
