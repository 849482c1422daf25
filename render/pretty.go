package render

import (
	"fmt"
	"time"
)

// PrettySize renders a byte count with binary units, integer-valued and
// at most four digits ("10 B  ", "2 KiB", "4 MiB"). Unit names are padded
// so right-aligned sizes line up.
func PrettySize(size uint64) string {
	switch {
	case size <= 9999:
		return fmt.Sprintf("%d B  ", size)
	case size <= 9999<<10:
		return fmt.Sprintf("%d KiB", size>>10)
	case size <= 9999<<20:
		return fmt.Sprintf("%d MiB", size>>20)
	case size <= 9999<<30:
		return fmt.Sprintf("%d GiB", size>>30)
	default:
		return fmt.Sprintf("%d TiB", size>>40)
	}
}

const (
	// an average month is 2629746 seconds; the approximation only kicks
	// in past 25 months, where the error does not show
	secsPerMonth = 2629746
	secsPerYear  = 31556952
)

// PrettyTime renders how long ago t was, in the coarsest unit that keeps
// the count below 100. Future timestamps clamp to "just now".
func PrettyTime(now time.Time, t time.Time) string {
	secs := int64(now.Sub(t) / time.Second)
	switch {
	case secs < 5:
		return "just now     "
	case secs <= 99:
		return fmt.Sprintf("%d seconds ago  ", secs)
	case secs <= 60*60:
		return fmt.Sprintf("%d minutes ago  ", secs/60)
	case secs <= 24*60*60:
		return fmt.Sprintf("%d hours ago    ", secs/3600)
	case secs <= 99*24*60*60:
		return fmt.Sprintf("%d days ago     ", secs/86400)
	case secs <= 99*7*24*60*60:
		return fmt.Sprintf("%d weeks ago    ", secs/604800)
	case secs <= 99*secsPerMonth:
		return fmt.Sprintf("%d months ago   ", secs/secsPerMonth)
	case secs <= 99*secsPerYear:
		return fmt.Sprintf("%d years ago    ", secs/secsPerYear)
	default:
		return fmt.Sprintf("%d centuries ago", secs/(100*secsPerYear))
	}
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	default:
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
}
