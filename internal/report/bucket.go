package report

import (
	"math"
	"regexp"
	"strconv"
)

// Morning and afternoon window bounds, inclusive, in local civil hours.
// Hours outside both windows exist in the source series but contribute to no
// bucket.
const (
	morningStart   = 6
	morningEnd     = 11
	afternoonStart = 12
	afternoonEnd   = 17
)

var hourlyStampPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}`)

// DayBuckets holds the qualifying samples of one calendar date, split by
// period and kept in original time order. Order matters: representative-value
// selection breaks ties on first occurrence.
type DayBuckets struct {
	Morning   []float64
	Afternoon []float64
}

// BucketHourly groups an hourly series into per-date morning/afternoon
// buckets. times and values must run in parallel; a length mismatch (which
// includes a series missing from the payload entirely) fails with
// *ShapeError. Individual samples are forgiving: a malformed timestamp, an
// out-of-window hour, or a nil/non-finite value drops that sample and nothing
// else.
func BucketHourly(times []string, values []*float64, series string) (map[string]*DayBuckets, error) {
	if len(values) != len(times) {
		return nil, &ShapeError{Series: series, Want: len(times), Got: len(values)}
	}

	buckets := make(map[string]*DayBuckets)
	for i, stamp := range times {
		if !hourlyStampPattern.MatchString(stamp) {
			continue
		}
		hour, err := strconv.Atoi(stamp[11:13])
		if err != nil {
			continue
		}

		morning := hour >= morningStart && hour <= morningEnd
		afternoon := hour >= afternoonStart && hour <= afternoonEnd
		if !morning && !afternoon {
			continue
		}

		v := values[i]
		if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
			continue
		}

		date := stamp[:10]
		day, ok := buckets[date]
		if !ok {
			day = &DayBuckets{}
			buckets[date] = day
		}
		if morning {
			day.Morning = append(day.Morning, *v)
		} else {
			day.Afternoon = append(day.Afternoon, *v)
		}
	}
	return buckets, nil
}
