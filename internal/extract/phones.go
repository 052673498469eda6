package extract

import (
	"github.com/Andylue11/RFMS-PDF-Xtracr--sub000/internal/entity"
	"github.com/Andylue11/RFMS-PDF-Xtracr--sub000/internal/template"
	"github.com/Andylue11/RFMS-PDF-Xtracr--sub000/internal/utils"
)

// harvestPhones assigns every phone-shaped token, in document order, to the
// first empty bucket (phone, mobile, work, home, supervisor mobile, alternate
// contact phone) and the rest to extra_phones. Position decides the bucket,
// not the label the number sits next to. Only the extra_phones overflow is
// deduplicated; the normalizer filters it against the buckets.
func harvestPhones(text string, rec *entity.Record) {
	buckets := rec.PhoneBuckets()
	extra := make(map[string]struct{}, len(rec.ExtraPhones))
	for _, p := range rec.ExtraPhones {
		extra[utils.Digits(p)] = struct{}{}
	}

	for _, number := range template.Phone.FindAllString(text, -1) {
		placed := false
		for _, b := range buckets {
			if *b == "" {
				*b = number
				placed = true
				break
			}
		}
		if placed {
			continue
		}
		d := utils.Digits(number)
		if _, dup := extra[d]; dup {
			continue
		}
		extra[d] = struct{}{}
		rec.ExtraPhones = append(rec.ExtraPhones, number)
	}
}
