package timezone

import "time"

var Location *time.Location

func init() {
	var err error
	Location, err = time.LoadLocation("America/New_York")
	if err != nil {
		panic(err)
	}
}

// the bureaus render report dates in eastern time, so scraped_at
// and store timestamps are pinned there regardless of where the
// server happens to run
func Now() time.Time {
	return time.Now().In(Location)
}
