package cors

import "errors"

// ErrInvalidPolicy is returned by [NewPolicy] when the options are
// incomplete or malformed. The concrete reason is wrapped around it.
var ErrInvalidPolicy = errors.New("invalid cors policy")
