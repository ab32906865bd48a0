package notifications

const (
	TypeInfo    = "info"
	TypeSuccess = "success"
	TypeWarning = "warning"
	TypeError   = "error"
)

func ValidType(ntype string) bool {
	switch ntype {
	case TypeInfo, TypeSuccess, TypeWarning, TypeError:
		return true
	}
	return false
}
