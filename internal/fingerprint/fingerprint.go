package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strconv"
	"time"

	"github.com/limbo/stravadictos/pkg/entity"
	"github.com/limbo/stravadictos/pkg/timeutil"
)

// Compute digests a raw field mapping together with the logical day the
// activity is being recorded under. Keys are sorted first: the feed does
// not guarantee a stable field order between fetches, so naive
// concatenation would break equality. The same physical activity seen on
// two logical days deliberately produces two different fingerprints.
func Compute(fields map[string]string, day time.Time) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	h := sha256.New()
	for _, k := range keys {
		h.Write([]byte(k))
		h.Write([]byte{'='})
		h.Write([]byte(fields[k]))
		h.Write([]byte{';'})
	}
	h.Write([]byte("day=" + day.Format(timeutil.DayFormat)))
	return hex.EncodeToString(h.Sum(nil))
}

// Fields projects a feed entry into the canonical mapping fed to Compute.
func Fields(act entity.RawActivity) map[string]string {
	return map[string]string{
		"athlete":      act.Athlete,
		"name":         act.Name,
		"sport_type":   act.SportType,
		"distance":     strconv.FormatFloat(act.Distance, 'f', -1, 64),
		"elapsed_secs": strconv.FormatInt(act.ElapsedSecs, 10),
	}
}
