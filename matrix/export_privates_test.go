// SPDX-License-Identifier: MIT

package matrix

// Test bridge (white-box) for storage invariants.
//
// Purpose:
//   - Let matrix_test assert the sparsity invariant directly on the backing
//     maps without widening the production API.

// StoredRows_TestOnly returns the number of row maps currently allocated.
func StoredRows_TestOnly(m *Sparse) int { return len(m.data) }

// HasStoredZero_TestOnly reports whether any stored value is zero or any
// row map is empty; both violate the sparsity invariant.
func HasStoredZero_TestOnly(m *Sparse) bool {
	for _, cols := range m.data {
		if len(cols) == 0 {
			return true
		}
		for _, v := range cols {
			if v == 0 {
				return true
			}
		}
	}

	return false
}
