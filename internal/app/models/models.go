package models

// StringPtr returns a pointer to a copy of s
func StringPtr(s string) *string {
	return &s
}

// SameMentorRef compares two optional mentor references
func SameMentorRef(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
