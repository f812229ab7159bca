package mirror

import "errors"

// ErrMirrorUnavailable wraps every relay failure: credentials, network, quota,
// timeout or a missing spreadsheet. Callers log it and carry on.
var ErrMirrorUnavailable = errors.New("remote mirror unavailable")
