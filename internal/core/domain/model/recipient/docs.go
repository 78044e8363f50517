// Package recipient provides the Recipient aggregate: the person or company a
// delivery is addressed to.
//
// Key business rules:
//   - A recipient has a non-blank name and a valid kernel.Address
//   - Identity is assigned by the store; a new recipient has ID 0 until persisted
//   - Updates are partial: only the fields present in a Patch change, and the
//     result must still satisfy the rules above
package recipient
