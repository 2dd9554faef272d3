package enums

// ToastKind classifies a transient notification.
type ToastKind string

const (
	ToastKindSuccess ToastKind = "success"
	ToastKindError   ToastKind = "error"
	ToastKindInfo    ToastKind = "info"
)

// String implements fmt.Stringer.
func (k ToastKind) String() string {
	return string(k)
}

// IsValid reports whether the value is a known ToastKind.
func (k ToastKind) IsValid() bool {
	switch k {
	case ToastKindSuccess, ToastKindError, ToastKindInfo:
		return true
	}
	return false
}
