// Package errors holds error helpers shared by the zorder packages.
package errors

import "errors"

// Collection accumulates errors so a validation pass can report every problem
// at once instead of stopping at the first. The zero value is ready to use.
// It is not safe for concurrent use.
type Collection struct {
	errors []error
}

// Add records err. Nil errors are ignored, so results can be passed straight in:
//
//	var errs errors.Collection
//	errs.Add(validateName(l))
//	errs.Add(validateZ(l))
//	return errs.GetError()
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Clear drops every recorded error.
func (c *Collection) Clear() {
	c.errors = nil
}

// HasError reports whether anything has been recorded.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// Len returns the number of recorded errors.
func (c *Collection) Len() int {
	return len(c.errors)
}

// GetError returns nil when empty, the error itself when there is exactly one,
// and an errors.Join of all of them otherwise. The joined error matches each
// recorded error with errors.Is.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
