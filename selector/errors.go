package selector

import "errors"

// ErrPartOrder is returned when a part of lower rank is appended after a
// part of higher rank. Check with errors.Is.
var ErrPartOrder = errors.New("selector parts must follow the order: element, id, class, attribute, pseudo-class, pseudo-element")

// ErrPartCount is returned when a once-only part is appended twice on the
// same builder. Check with errors.Is.
var ErrPartCount = errors.New("element, id and pseudo-element may appear at most once per selector")
