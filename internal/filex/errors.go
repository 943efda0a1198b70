package filex

import "errors"

// ErrTooLarge is returned by ReadLimited when the file exceeds the limit.
var ErrTooLarge = errors.New("file exceeds size limit")
