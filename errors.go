package itemqa

import "errors"

// ErrNoProposer is returned by Escalate when no repair proposer is
// registered under the configured name.
var ErrNoProposer = errors.New("itemqa: no repair proposer configured")
