package service

import "time"

// timeNow is swapped in tests that pin the local date.
var timeNow = time.Now
