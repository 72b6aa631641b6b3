package builder

import "fmt"

// validateIDs rejects empty IDs and, when distinct is set, repeated IDs.
// Complexity: O(n) time, O(n) space.
func validateIDs(method string, ids []string, distinct bool) error {
	seen := make(map[string]struct{}, len(ids))
	for i, id := range ids {
		if id == "" {
			return fmt.Errorf("%s: ids[%d]: %w", method, i, ErrEmptyID)
		}
		if !distinct {
			continue
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%s: ids[%d]=%q: %w", method, i, id, ErrDuplicateID)
		}
		seen[id] = struct{}{}
	}

	return nil
}
