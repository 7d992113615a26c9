package cli

import "time"

// timeNow is a test seam.
var timeNow = time.Now
