package entity

// CheckOwnership is the single authorization rule of the system: a resource
// may only be mutated by its owner. denied names the resource-specific
// forbidden kind returned on mismatch.
func CheckOwnership(callerID, ownerID int64, denied *DomainError) error {
	if callerID != ownerID {
		return denied
	}
	return nil
}
